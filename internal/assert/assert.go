// Package assert implements the SDK's debug assertions.
//
// Assertions flag programming errors (ending a manual sample twice, emitting
// on an unavailable profiler, ...). They are not part of the recoverable
// error taxonomy. Building with the unity_release tag compiles them out.
package assert

import (
	"fmt"
	"sync"
)

// Handler receives the message of a failed assertion.
type Handler func(msg string)

var (
	mu      sync.RWMutex
	handler Handler = panicHandler
)

func panicHandler(msg string) {
	panic("unity-native: assertion failed: " + msg)
}

// That reports a violation when cond is false.
func That(cond bool, format string, args ...any) {
	if !Enabled || cond {
		return
	}
	Fail(format, args...)
}

// Fail reports a violation unconditionally (when assertions are enabled).
func Fail(format string, args ...any) {
	if !Enabled {
		return
	}
	mu.RLock()
	h := handler
	mu.RUnlock()
	h(fmt.Sprintf(format, args...))
}

// SetHandler replaces the violation handler and returns a function restoring
// the previous one. A nil handler restores the default panicking handler.
func SetHandler(h Handler) (restore func()) {
	if h == nil {
		h = panicHandler
	}
	mu.Lock()
	prev := handler
	handler = h
	mu.Unlock()
	return func() {
		mu.Lock()
		handler = prev
		mu.Unlock()
	}
}
