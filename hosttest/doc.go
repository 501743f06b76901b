// Package hosttest provides an in-process fake host for testing plugins.
//
// Host serves interface tables by GUID the way the real host does, and the
// Log and Profiler fakes record every call that crosses the boundary so tests
// can assert on exact event sequences and payload bytes.
package hosttest
