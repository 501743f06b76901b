// Package ffi mirrors the host's C interface tables as Go structures.
//
// The layouts here follow the host headers (IUnityInterfaces.h, IUnityLog.h,
// IUnityProfiler.h). A C-export shim is expected to fill these tables with
// functions that forward to the real host pointers. Nothing in this package
// checks that a pointer handed over by the host actually references the
// declared table: that is the trust boundary of the whole SDK.
package ffi
