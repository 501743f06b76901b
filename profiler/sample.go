package profiler

import (
	"runtime"

	"github.com/reglet-dev/unity-native-go/ffi"
	"github.com/reglet-dev/unity-native-go/internal/assert"
)

// ScopedSample is an open begin/end pair closed by End.
//
// A sample opened while the profiler was disabled holds no marker and
// never emits anything.
type ScopedSample struct {
	marker   *Marker
	profiler *Profiler
	done     bool
}

func (m *Marker) sampleScope(p *Profiler, meta []Value) *ScopedSample {
	if !m.begin(p, meta) {
		return &ScopedSample{}
	}
	return &ScopedSample{marker: m, profiler: p}
}

// Enabled reports whether the sample emitted its begin event.
func (s *ScopedSample) Enabled() bool {
	return s.marker != nil
}

// End emits the end event. Only the first call has an effect, so End can be
// deferred and also called early.
func (s *ScopedSample) End() {
	if s.marker == nil || s.done {
		return
	}
	s.done = true
	s.profiler.emitEvent(s.marker, ffi.EventTypeEnd, nil)
}

// ManualSample is an open begin/end pair whose end is emitted explicitly,
// possibly far from where it began.
//
// EndSample must be called exactly once and Release once the sample is no
// longer used. Ending twice, releasing an unended sample, or letting an
// unended sample be garbage collected without Release is reported as an
// assertion failure. The last check runs on the collector's cleanup
// goroutine.
type ManualSample struct {
	marker   *Marker
	profiler *Profiler
	state    *manualState
}

type manualState struct {
	ended    bool
	released bool
}

func (m *Marker) sampleManual(p *Profiler, meta []Value) *ManualSample {
	if !m.begin(p, meta) {
		return &ManualSample{}
	}
	s := &ManualSample{marker: m, profiler: p, state: &manualState{}}
	if assert.Enabled {
		name := m.Name()
		runtime.AddCleanup(s, func(st *manualState) {
			assert.That(st.ended || st.released,
				"profiler sample of marker %s dropped without end", name)
		}, s.state)
	}
	return s
}

// Enabled reports whether the sample emitted its begin event.
func (s *ManualSample) Enabled() bool {
	return s.marker != nil
}

// Ended reports whether EndSample has run on an enabled sample.
func (s *ManualSample) Ended() bool {
	return s.state != nil && s.state.ended
}

// EndSample emits the end event.
func (s *ManualSample) EndSample() {
	if s.marker == nil {
		return
	}
	if s.state.ended {
		assert.Fail("profiler sample of marker %s ended multiple times", s.marker.Name())
		return
	}
	s.state.ended = true
	s.profiler.emitEvent(s.marker, ffi.EventTypeEnd, nil)
}

// Release marks the sample as no longer used and checks it was ended.
func (s *ManualSample) Release() {
	if s.marker == nil || s.state.released {
		return
	}
	s.state.released = true
	assert.That(s.state.ended, "profiler sample of marker %s not ended", s.marker.Name())
}
