package unity

import (
	"unsafe"

	"github.com/reglet-dev/unity-native-go/ffi"
	"github.com/reglet-dev/unity-native-go/guid"
)

// Interfaces wraps the host's root interface table.
// It holds no mutable state after New, so it can be shared freely between
// goroutines; the host guarantees its lookup function is reentrant.
type Interfaces struct {
	raw *ffi.Interfaces
}

// New wraps the root table received by the plugin load hook.
// The table must stay valid for as long as the plugin is loaded.
func New(raw *ffi.Interfaces) (*Interfaces, error) {
	if raw == nil {
		return nil, ErrNullHandle
	}
	return &Interfaces{raw: raw}, nil
}

// Raw returns the underlying host table.
func (i *Interfaces) Raw() *ffi.Interfaces {
	return i.raw
}

// lookup asks the host for the table registered under id.
// A host without any lookup function behaves as if it returned null.
func (i *Interfaces) lookup(id guid.GUID) unsafe.Pointer {
	switch {
	case i.raw.GetInterface != nil:
		return i.raw.GetInterface(id)
	case i.raw.GetInterfaceSplit != nil:
		return i.raw.GetInterfaceSplit(id.High, id.Low)
	default:
		return nil
	}
}

// Get resolves the capability described by d.
//
// A nil table from the host yields a *LookupError (errors.Is ErrNullPtr);
// a table the facade rejects yields a *ConversionError. Neither is
// transient: a capability missing on this host stays missing.
func Get[T any, R any](i *Interfaces, d Descriptor[T, R]) (T, error) {
	var zero T

	ptr := i.lookup(d.guid)
	if ptr == nil {
		return zero, &LookupError{Interface: d.name, GUID: d.guid}
	}

	facade, err := d.fromRaw((*R)(ptr))
	if err != nil {
		return zero, &ConversionError{Interface: d.name, GUID: d.guid, Err: err}
	}
	return facade, nil
}
