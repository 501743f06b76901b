// Package guid provides the 128-bit identifiers the host uses to key its
// capability interfaces.
package guid

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GUID identifies one versioned host interface. On the wire it travels as
// two 64-bit halves passed by value.
type GUID struct {
	High uint64
	Low  uint64
}

// New builds a GUID from its two halves.
func New(high, low uint64) GUID {
	return GUID{High: high, Low: low}
}

// Parse reads a GUID in canonical 8-4-4-4-12 hex form. The first 16 hex
// digits form the high half, the remaining 16 the low half.
func Parse(s string) (GUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return GUID{}, fmt.Errorf("invalid GUID %q: %w", s, err)
	}
	return FromBytes(u), nil
}

// MustParse is like Parse but panics on malformed input.
// Intended for package-level interface declarations.
func MustParse(s string) GUID {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

// FromBytes interprets 16 big-endian bytes as a GUID.
func FromBytes(b [16]byte) GUID {
	return GUID{
		High: binary.BigEndian.Uint64(b[:8]),
		Low:  binary.BigEndian.Uint64(b[8:]),
	}
}

// Bytes returns the big-endian byte form of g.
func (g GUID) Bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], g.High)
	binary.BigEndian.PutUint64(b[8:], g.Low)
	return b
}

// IsZero reports whether g is the all-zero GUID.
func (g GUID) IsZero() bool {
	return g.High == 0 && g.Low == 0
}

// String formats g in upper-case canonical form, the way the host headers
// spell interface GUIDs.
func (g GUID) String() string {
	u := uuid.UUID(g.Bytes())
	return strings.ToUpper(u.String())
}
