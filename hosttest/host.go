package hosttest

import (
	"sync"
	"unsafe"

	"github.com/reglet-dev/unity-native-go/ffi"
	"github.com/reglet-dev/unity-native-go/guid"
)

// Host is a fake root interface table.
type Host struct {
	tables  map[guid.GUID]unsafe.Pointer
	raw     ffi.Interfaces
	lookups []guid.GUID
	mu      sync.Mutex
}

// NewHost returns a host with no interfaces registered.
func NewHost() *Host {
	h := &Host{tables: make(map[guid.GUID]unsafe.Pointer)}
	h.raw.GetInterface = h.get
	h.raw.RegisterInterface = h.Provide
	return h
}

// Provide registers table under id. A nil table makes lookups return null.
func (h *Host) Provide(id guid.GUID, table unsafe.Pointer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.tables[id] = table
}

// ProvideLog registers l under the log interface GUID.
func (h *Host) ProvideLog(l *Log) {
	h.Provide(ffi.LogGUID, unsafe.Pointer(l.Table()))
}

// ProvideProfiler registers p under the profiler interface GUID.
func (h *Host) ProvideProfiler(p *Profiler) {
	h.Provide(ffi.ProfilerV2GUID, unsafe.Pointer(p.Table()))
}

// UseSplitLookup removes GetInterface so only the split-GUID lookup remains,
// as on older hosts.
func (h *Host) UseSplitLookup() {
	h.raw.GetInterface = nil
	h.raw.GetInterfaceSplit = func(high, low uint64) unsafe.Pointer {
		return h.get(guid.New(high, low))
	}
}

// RemoveLookup removes every lookup function from the root table.
func (h *Host) RemoveLookup() {
	h.raw.GetInterface = nil
	h.raw.GetInterfaceSplit = nil
}

// Handle returns the root table to pass to the plugin load hook.
func (h *Host) Handle() *ffi.Interfaces {
	return &h.raw
}

// Lookups returns the GUIDs requested so far, in order.
func (h *Host) Lookups() []guid.GUID {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]guid.GUID, len(h.lookups))
	copy(out, h.lookups)
	return out
}

func (h *Host) get(id guid.GUID) unsafe.Pointer {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lookups = append(h.lookups, id)
	return h.tables[id]
}
