package profiler

import "github.com/reglet-dev/unity-native-go/ffi"

// Marker is a named event point registered with the host.
// The host owns the descriptor for the lifetime of the process.
type Marker struct {
	desc  *ffi.MarkerDesc
	shape Shape
}

// Name reads the marker name back from the host descriptor.
func (m *Marker) Name() string {
	if m.desc == nil {
		return ""
	}
	return ffi.GoString(m.desc.Name)
}

// Shape returns the metadata shape the marker was created with.
func (m *Marker) Shape() Shape {
	return m.shape
}

// SampleScope opens a scoped sample. Close it with End, usually deferred.
// The marker must have been created without metadata.
func (m *Marker) SampleScope(p *Profiler) *ScopedSample {
	return m.SampleScopeWithMeta(p)
}

// SampleScopeWithMeta opens a scoped sample whose begin event carries
// values, one per slot of the marker's shape.
func (m *Marker) SampleScopeWithMeta(p *Profiler, values ...Value) *ScopedSample {
	return m.sampleScope(p, metaOrEmpty(values))
}

// SampleManual opens a sample that must be closed with EndSample and
// released with Release.
func (m *Marker) SampleManual(p *Profiler) *ManualSample {
	return m.SampleManualWithMeta(p)
}

// SampleManualWithMeta is SampleManual with a metadata-carrying begin event.
func (m *Marker) SampleManualWithMeta(p *Profiler, values ...Value) *ManualSample {
	return m.sampleManual(p, metaOrEmpty(values))
}

// Run executes fn inside a scoped sample. The end event is emitted however
// fn returns, panics included.
func (m *Marker) Run(p *Profiler, fn func()) {
	s := m.SampleScope(p)
	defer s.End()
	fn()
}

// RunWithMeta is Run with a metadata-carrying begin event.
func (m *Marker) RunWithMeta(p *Profiler, values []Value, fn func()) {
	s := m.SampleScopeWithMeta(p, values...)
	defer s.End()
	fn()
}

// SingleTimeless emits one instant event with no duration.
func (m *Marker) SingleTimeless(p *Profiler) {
	m.SingleTimelessWithMeta(p)
}

// SingleTimelessWithMeta emits one instant event carrying values.
func (m *Marker) SingleTimelessWithMeta(p *Profiler, values ...Value) {
	if !p.IsEnabled() {
		return
	}
	p.emitEvent(m, ffi.EventTypeSingle, metaOrEmpty(values))
}

func (m *Marker) begin(p *Profiler, meta []Value) bool {
	if !p.IsEnabled() {
		return false
	}
	p.emitEvent(m, ffi.EventTypeBegin, meta)
	return true
}

// metaOrEmpty turns "no values" into an empty, non-nil list so the begin
// event is still checked against the marker's shape. A nil list is kept for
// end events, which never carry metadata.
func metaOrEmpty(values []Value) []Value {
	if values == nil {
		return []Value{}
	}
	return values
}
