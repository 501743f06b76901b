package profiler

import (
	"errors"
	"fmt"

	"github.com/reglet-dev/unity-native-go/ffi"
)

var (
	// ErrMissingAvailableFn is returned when the host table has no
	// IsAvailable function. The facade cannot be built on such a host.
	ErrMissingAvailableFn = errors.New("cannot check for profiler availability because the function pointer is missing")

	// ErrNonASCII is returned when a group or thread name is not pure ASCII.
	ErrNonASCII = errors.New("group or thread name contains non-ASCII characters")

	// ErrNul is returned when a name bound for the host contains NUL bytes.
	ErrNul = ffi.ErrNul
)

// Stage identifies which host call failed while creating a marker.
type Stage string

const (
	StageMarker   Stage = "marker"
	StageMetadata Stage = "metadata"
)

// CreateMarkerError carries the code returned by the host while creating a
// marker. For StageMetadata, Index is the slot that failed; the host-side
// marker is left partially configured.
type CreateMarkerError struct {
	Marker string
	Stage  Stage
	Index  int
	Code   int32
}

func (e *CreateMarkerError) Error() string {
	if e.Stage == StageMetadata {
		return fmt.Sprintf("host error %d creating metadata slot %d of marker %q", e.Code, e.Index, e.Marker)
	}
	return fmt.Sprintf("host error %d creating marker %q", e.Code, e.Marker)
}

// HostError carries a non-zero code returned by a host profiler call.
type HostError struct {
	Op   string
	Code int32
}

func (e *HostError) Error() string {
	return fmt.Sprintf("profiler %s: host returned error code %d", e.Op, e.Code)
}

// MissingFunctionError reports a host table without a function the
// operation needs.
type MissingFunctionError struct {
	Function string
}

func (e *MissingFunctionError) Error() string {
	return fmt.Sprintf("profiler table has no %s function", e.Function)
}
