package hosttest

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/reglet-dev/unity-native-go/ffi"
)

// Call operations recorded by Profiler.
const (
	OpCreateCategory   = "CreateCategory"
	OpCreateMarker     = "CreateMarker"
	OpSetMetadataName  = "SetMarkerMetadataName"
	OpRegisterThread   = "RegisterThread"
	OpUnregisterThread = "UnregisterThread"
)

// Call is one recorded non-emission host call.
type Call struct {
	Op       string
	Marker   string
	Name     string
	Group    string
	Index    int32
	Count    int32
	ThreadID uint64
	Category uint16
	Flags    uint16
	Type     uint8
	Unit     uint8
}

// Data is a copied metadata element of an emitted event.
type Data struct {
	Bytes []byte
	Size  uint32
	Type  uint8
}

// Event is one recorded EmitEvent call.
type Event struct {
	Marker string
	Data   []Data
	Type   uint16
	Count  uint16
	// NullData is set when the metadata array pointer was nil.
	NullData bool
}

// Profiler is a fake IUnityProfilerV2 table.
type Profiler struct {
	table ffi.ProfilerV2

	available      atomic.Bool
	enabled        atomic.Bool
	isEnabledCalls atomic.Int64

	mu               sync.Mutex
	markers          []*ffi.MarkerDesc
	names            [][]byte
	calls            []Call
	events           []Event
	createMarkerCode int32
	metadataFailAt   int32
	metadataFailCode int32
	registerCode     int32
	unregisterCode   int32
	nextCategory     uint16
	nextThreadID     uint64
}

// NewProfiler returns an available, enabled profiler with every function
// installed.
func NewProfiler() *Profiler {
	p := &Profiler{
		metadataFailAt: -1,
		nextCategory:   100,
		nextThreadID:   1,
	}
	p.available.Store(true)
	p.enabled.Store(true)

	p.table = ffi.ProfilerV2{
		CreateCategory:        p.createCategory,
		CreateMarker:          p.createMarker,
		SetMarkerMetadataName: p.setMarkerMetadataName,
		EmitEvent:             p.emitEvent,
		IsEnabled: func() int32 {
			p.isEnabledCalls.Add(1)
			return boolInt(p.enabled.Load())
		},
		IsAvailable: func() int32 {
			return boolInt(p.available.Load())
		},
		RegisterThread:   p.registerThread,
		UnregisterThread: p.unregisterThread,
	}
	return p
}

// Table returns the raw table. Tests may clear its fields to simulate
// hosts missing functions.
func (p *Profiler) Table() *ffi.ProfilerV2 {
	return &p.table
}

// SetAvailable controls what IsAvailable reports.
func (p *Profiler) SetAvailable(v bool) { p.available.Store(v) }

// SetEnabled controls what IsEnabled reports, like attaching or detaching
// an external profiling tool.
func (p *Profiler) SetEnabled(v bool) { p.enabled.Store(v) }

// IsEnabledCalls returns how many times the host enabled check ran.
func (p *Profiler) IsEnabledCalls() int64 { return p.isEnabledCalls.Load() }

// FailCreateMarker makes every following CreateMarker return code.
func (p *Profiler) FailCreateMarker(code int32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.createMarkerCode = code
}

// FailMetadataAt makes SetMarkerMetadataName return code for slot index.
func (p *Profiler) FailMetadataAt(index int32, code int32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.metadataFailAt = index
	p.metadataFailCode = code
}

// FailRegisterThread makes RegisterThread return code.
func (p *Profiler) FailRegisterThread(code int32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.registerCode = code
}

// FailUnregisterThread makes UnregisterThread return code.
func (p *Profiler) FailUnregisterThread(code int32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.unregisterCode = code
}

// Calls returns every recorded non-emission call in order.
func (p *Profiler) Calls() []Call {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Call, len(p.calls))
	copy(out, p.calls)
	return out
}

// Events returns every emitted event in order.
func (p *Profiler) Events() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Event, len(p.events))
	copy(out, p.events)
	return out
}

// Markers returns the descriptors created so far.
func (p *Profiler) Markers() []*ffi.MarkerDesc {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*ffi.MarkerDesc, len(p.markers))
	copy(out, p.markers)
	return out
}

// ResetEvents discards recorded events.
func (p *Profiler) ResetEvents() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = nil
}

func (p *Profiler) createCategory(category *uint16, name *byte, _ uint32) int32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextCategory
	p.nextCategory++
	*category = id
	p.calls = append(p.calls, Call{Op: OpCreateCategory, Name: ffi.GoString(name), Category: id})
	return 0
}

func (p *Profiler) createMarker(desc **ffi.MarkerDesc, name *byte, category, flags uint16, count int32) int32 {
	p.mu.Lock()
	defer p.mu.Unlock()

	markerName := ffi.GoString(name)
	p.calls = append(p.calls, Call{
		Op:       OpCreateMarker,
		Name:     markerName,
		Category: category,
		Flags:    flags,
		Count:    count,
	})
	if p.createMarkerCode != 0 {
		return p.createMarkerCode
	}

	owned := append([]byte(markerName), 0)
	p.names = append(p.names, owned)
	d := &ffi.MarkerDesc{
		ID:         uint16(len(p.markers)),
		Flags:      flags,
		CategoryID: category,
		Name:       &owned[0],
	}
	p.markers = append(p.markers, d)
	*desc = d
	return 0
}

func (p *Profiler) setMarkerMetadataName(desc *ffi.MarkerDesc, index int32, name *byte, dataType, unit uint8) int32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, Call{
		Op:     OpSetMetadataName,
		Marker: ffi.GoString(desc.Name),
		Index:  index,
		Name:   ffi.GoString(name),
		Type:   dataType,
		Unit:   unit,
	})
	if p.metadataFailAt == index {
		return p.metadataFailCode
	}
	return 0
}

func (p *Profiler) emitEvent(desc *ffi.MarkerDesc, eventType, count uint16, metadata *ffi.MarkerData) {
	ev := Event{
		Marker:   ffi.GoString(desc.Name),
		Type:     eventType,
		Count:    count,
		NullData: metadata == nil,
	}
	if metadata != nil {
		for _, md := range unsafe.Slice(metadata, int(count)) {
			var raw []byte
			if md.Size > 0 {
				raw = append([]byte(nil), unsafe.Slice((*byte)(md.Ptr), int(md.Size))...)
			}
			ev.Data = append(ev.Data, Data{Type: md.Type, Size: md.Size, Bytes: raw})
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
}

func (p *Profiler) registerThread(threadID *uint64, groupName, name *byte) int32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	call := Call{Op: OpRegisterThread, Group: ffi.GoString(groupName), Name: ffi.GoString(name)}
	if p.registerCode != 0 {
		p.calls = append(p.calls, call)
		return p.registerCode
	}
	call.ThreadID = p.nextThreadID
	*threadID = p.nextThreadID
	p.nextThreadID++
	p.calls = append(p.calls, call)
	return 0
}

func (p *Profiler) unregisterThread(threadID uint64) int32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, Call{Op: OpUnregisterThread, ThreadID: threadID})
	return p.unregisterCode
}

func boolInt(v bool) int32 {
	if v {
		return 1
	}
	return 0
}
