package profiler

import "github.com/reglet-dev/unity-native-go/ffi"

// ThreadID identifies a thread registered with the host profiler.
type ThreadID uint64

// CurrentThread stands for the calling thread in UnregisterThread.
const CurrentThread ThreadID = 0

// RegisterCurrentThread makes the calling OS thread visible to the host
// profiler under group and name. Both names must be ASCII without NUL
// bytes; they are checked before anything reaches the host.
//
// Goroutines migrate between threads, so call runtime.LockOSThread first
// and pair every registration with UnregisterThread.
func (p *Profiler) RegisterCurrentThread(group, name string) (ThreadID, error) {
	if !isASCII(group) || !isASCII(name) {
		return 0, ErrNonASCII
	}
	cgroup, err := ffi.CString(group)
	if err != nil {
		return 0, err
	}
	cname, err := ffi.CString(name)
	if err != nil {
		return 0, err
	}
	if p.raw.RegisterThread == nil {
		return 0, &MissingFunctionError{Function: "RegisterThread"}
	}

	var id uint64
	if code := p.raw.RegisterThread(&id, &cgroup[0], &cname[0]); code != 0 {
		return 0, &HostError{Op: "RegisterThread", Code: code}
	}
	return ThreadID(id), nil
}

// UnregisterThread removes a thread registration.
func (p *Profiler) UnregisterThread(id ThreadID) error {
	if p.raw.UnregisterThread == nil {
		return &MissingFunctionError{Function: "UnregisterThread"}
	}
	if code := p.raw.UnregisterThread(uint64(id)); code != 0 {
		return &HostError{Op: "UnregisterThread", Code: code}
	}
	return nil
}

// UnregisterCurrentThread removes the calling thread's registration.
func (p *Profiler) UnregisterCurrentThread() error {
	return p.UnregisterThread(CurrentThread)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
