// Package profiler wraps the host profiler interface (IUnityProfilerV2).
//
// Markers are registered once and sampled many times. A sample emits a begin
// event when it is opened and a matching end event when it is closed:
//
//	marker, err := prof.CreateMarker("Plugin.Update")
//	...
//	s := marker.SampleScope(prof)
//	defer s.End()
//
// Every sampling entry point first checks IsEnabled; when the profiler is
// unavailable or no tool is attached the returned sample is disabled and all
// of its operations are no-ops.
//
// Metadata-carrying markers are created with a Shape, and each sample passes
// one Value per slot of that shape.
package profiler
