package unity

import "github.com/reglet-dev/unity-native-go/guid"

// Descriptor binds a facade type T to the raw host table type R it wraps
// and to the GUID the host registers that table under.
//
// Facade packages export one Descriptor each; it is the only thing needed to
// make a new capability resolvable through Get.
type Descriptor[T any, R any] struct {
	fromRaw func(*R) (T, error)
	name    string
	guid    guid.GUID
}

// NewDescriptor declares a capability. fromRaw receives a non-nil pointer
// and may reject tables missing functions the facade relies on.
func NewDescriptor[T any, R any](name string, id guid.GUID, fromRaw func(*R) (T, error)) Descriptor[T, R] {
	return Descriptor[T, R]{
		name:    name,
		guid:    id,
		fromRaw: fromRaw,
	}
}

// Name returns the host interface name, used in errors.
func (d Descriptor[T, R]) Name() string {
	return d.name
}

// GUID returns the identifier the host registers the interface under.
func (d Descriptor[T, R]) GUID() guid.GUID {
	return d.guid
}
