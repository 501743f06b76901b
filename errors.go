package unity

import (
	"errors"
	"fmt"

	"github.com/reglet-dev/unity-native-go/guid"
)

var (
	// ErrNullHandle is returned by New when the host passes a nil root table.
	ErrNullHandle = errors.New("null interfaces handle")

	// ErrNullPtr means the host returned nothing for a requested interface.
	// The capability is not present on this host version.
	ErrNullPtr = errors.New("host returned a null interface pointer")
)

// LookupError reports that the host has no table for the requested GUID.
// It always wraps ErrNullPtr.
type LookupError struct {
	Interface string
	GUID      guid.GUID
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("interface %s (%s): %v", e.Interface, e.GUID, ErrNullPtr)
}

func (e *LookupError) Unwrap() error {
	return ErrNullPtr
}

// ConversionError reports that the host returned a table that could not be
// adapted into a facade. Err is the facade-specific cause.
type ConversionError struct {
	Err       error
	Interface string
	GUID      guid.GUID
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion of interface %s (%s) failed: %v", e.Interface, e.GUID, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
