package profiler

import (
	"runtime"
	"unsafe"

	unity "github.com/reglet-dev/unity-native-go"
	"github.com/reglet-dev/unity-native-go/ffi"
	"github.com/reglet-dev/unity-native-go/internal/assert"
)

// Descriptor resolves the profiler through unity.Get.
var Descriptor = unity.NewDescriptor("IUnityProfilerV2", ffi.ProfilerV2GUID, fromRaw)

// Profiler is the facade over the host profiler table.
//
// Queries and event emission are safe from any goroutine. Marker and
// category creation must be serialized by the caller, typically by doing it
// once during plugin load.
type Profiler struct {
	raw       *ffi.ProfilerV2
	available bool
}

// FromInterfaces resolves the profiler from the host registry.
func FromInterfaces(i *unity.Interfaces) (*Profiler, error) {
	return unity.Get(i, Descriptor)
}

// fromRaw samples availability once: the host does not change it while a
// plugin is loaded.
func fromRaw(raw *ffi.ProfilerV2) (*Profiler, error) {
	if raw.IsAvailable == nil {
		return nil, ErrMissingAvailableFn
	}
	return &Profiler{
		raw:       raw,
		available: raw.IsAvailable() != 0,
	}, nil
}

// Available reports whether the host build has a profiler at all.
func (p *Profiler) Available() bool {
	return p.available
}

// IsEnabled reports whether events are currently being recorded. It asks
// the host on every call since tools attach and detach during a session.
func (p *Profiler) IsEnabled() bool {
	if !p.available || p.raw.IsEnabled == nil {
		return false
	}
	return p.raw.IsEnabled() != 0
}

// CreateCategory registers a custom marker category.
func (p *Profiler) CreateCategory(name string) (CategoryID, error) {
	if p.raw.CreateCategory == nil {
		return 0, &MissingFunctionError{Function: "CreateCategory"}
	}
	cname, err := ffi.CString(name)
	if err != nil {
		return 0, err
	}
	var id uint16
	if code := p.raw.CreateCategory(&id, &cname[0], 0); code != 0 {
		return 0, &HostError{Op: "CreateCategory", Code: code}
	}
	return CategoryID(id), nil
}

// CreateMarker registers a marker without metadata.
// Markers are not cached; create each name once and keep the result.
func (p *Profiler) CreateMarker(name string, opts ...MarkerOption) (*Marker, error) {
	return p.CreateMarkerWithData(name, NoMetadata, opts...)
}

// CreateMarkerWithData registers a marker whose events carry shape.
//
// The base marker is created first, then every slot is registered in
// declaration order. The first host failure aborts with a
// *CreateMarkerError; slots registered before it are not rolled back.
func (p *Profiler) CreateMarkerWithData(name string, shape Shape, opts ...MarkerOption) (*Marker, error) {
	assert.That(shape.Len() <= MaxSlots,
		"cannot handle more than %d metadata items, %d given", MaxSlots, shape.Len())

	cfg := defaultMarkerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if p.raw.CreateMarker == nil {
		return nil, &MissingFunctionError{Function: "CreateMarker"}
	}
	if shape.Len() > 0 && p.raw.SetMarkerMetadataName == nil {
		return nil, &MissingFunctionError{Function: "SetMarkerMetadataName"}
	}

	cname, err := ffi.CString(name)
	if err != nil {
		return nil, err
	}

	var desc *ffi.MarkerDesc
	code := p.raw.CreateMarker(&desc, &cname[0], uint16(cfg.category), uint16(cfg.flags), int32(shape.Len()))
	if code != 0 {
		return nil, &CreateMarkerError{Marker: name, Stage: StageMarker, Code: code}
	}

	for i, slot := range shape.slots {
		// Slot names were checked for NUL by NewShape.
		sname, _ := ffi.CString(slot.Name)
		code := p.raw.SetMarkerMetadataName(desc, int32(i), &sname[0], uint8(slot.Type), uint8(slot.Unit))
		if code != 0 {
			return nil, &CreateMarkerError{Marker: name, Stage: StageMetadata, Index: i, Code: code}
		}
	}

	return &Marker{desc: desc, shape: shape}, nil
}

// emitEvent sends one event for m to the host. values is nil for events
// without metadata (end events, plain markers).
//
// Callers check IsEnabled first; emitting on an unavailable profiler or
// with values that do not fit the marker's shape is a programming error.
func (p *Profiler) emitEvent(m *Marker, kind uint16, values []Value) {
	assert.That(p.available, "profiler event emitted while the profiler is unavailable")
	assert.That(m != nil && m.desc != nil, "profiler event emitted on a marker without descriptor")
	assert.That(p.raw.EmitEvent != nil, "profiler table has no EmitEvent function")
	if m == nil || m.desc == nil || p.raw.EmitEvent == nil {
		return
	}

	if len(values) > MaxSlots {
		assert.Fail("marker %s: cannot emit more than %d metadata items, %d given", m.Name(), MaxSlots, len(values))
		values = nil
	}
	if values != nil {
		if err := m.shape.Check(values); err != nil {
			assert.Fail("marker %s: %v", m.Name(), err)
			values = nil
		}
	}

	// Some host versions reject a zero-length array that is not null.
	if len(values) == 0 {
		p.raw.EmitEvent(m.desc, kind, 0, nil)
		return
	}

	var pinner runtime.Pinner
	defer pinner.Unpin()

	data := make([]ffi.MarkerData, len(values))
	for i, v := range values {
		buf := v.Encode()
		data[i] = ffi.MarkerData{
			Type: uint8(v.typ),
			Size: uint32(len(buf)),
		}
		if len(buf) > 0 {
			pinner.Pin(&buf[0])
			data[i].Ptr = unsafe.Pointer(&buf[0])
		}
	}
	pinner.Pin(&data[0])

	p.raw.EmitEvent(m.desc, kind, uint16(len(data)), &data[0])
}
