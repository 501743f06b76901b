package ffi

import (
	"errors"
	"strings"
	"unsafe"
)

// ErrNul is returned when a string bound for the host contains a NUL byte.
var ErrNul = errors.New("string contains an interior NUL byte")

// CString returns s as a NUL-terminated byte slice. Interior NUL bytes are
// rejected since the host would silently truncate at them.
func CString(s string) ([]byte, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, ErrNul
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b, nil
}

// SanitizedCString is like CString but replaces every NUL byte with
// placeholder instead of failing.
func SanitizedCString(s, placeholder string) []byte {
	if strings.IndexByte(s, 0) >= 0 {
		s = strings.ReplaceAll(s, "\x00", placeholder)
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// GoString copies a NUL-terminated string owned by the host.
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}
