package hosttest

import (
	"sync"

	"github.com/reglet-dev/unity-native-go/ffi"
)

// Entry is one recorded host log call.
type Entry struct {
	Message string
	File    string
	Type    ffi.LogType
	Line    int32
}

// Log is a fake IUnityLog table.
type Log struct {
	table   ffi.Log
	entries []Entry
	mu      sync.Mutex
}

// NewLog returns a log table that records every message.
func NewLog() *Log {
	l := &Log{}
	l.table.Log = l.log
	return l
}

// Table returns the raw table. Tests may clear its fields to simulate
// hosts missing functions.
func (l *Log) Table() *ffi.Log {
	return &l.table
}

// Entries returns the recorded messages in order.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) log(logType ffi.LogType, message, fileName *byte, fileLine int32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{
		Type:    logType,
		Message: ffi.GoString(message),
		File:    ffi.GoString(fileName),
		Line:    fileLine,
	})
}
