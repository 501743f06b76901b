package profiler

import (
	"encoding/binary"
	"math"
	"strings"
)

// Value is one metadata payload. The zero Value holds nothing and matches
// no slot.
type Value struct {
	str  string
	blob []byte
	bits uint64
	typ  DataType
}

// Int32 wraps a 32-bit signed payload.
func Int32(v int32) Value { return Value{typ: DataTypeInt32, bits: uint64(uint32(v))} }

// Uint32 wraps a 32-bit unsigned payload.
func Uint32(v uint32) Value { return Value{typ: DataTypeUint32, bits: uint64(v)} }

// Int64 wraps a 64-bit signed payload.
func Int64(v int64) Value { return Value{typ: DataTypeInt64, bits: uint64(v)} }

// Uint64 wraps a 64-bit unsigned payload.
func Uint64(v uint64) Value { return Value{typ: DataTypeUint64, bits: v} }

// Float wraps a single-precision payload.
func Float(v float32) Value { return Value{typ: DataTypeFloat, bits: uint64(math.Float32bits(v))} }

// Double wraps a double-precision payload.
func Double(v float64) Value { return Value{typ: DataTypeDouble, bits: math.Float64bits(v)} }

// Bytes wraps an opaque blob. The slice is not copied.
func Bytes(b []byte) Value { return Value{typ: DataTypeBlob8, blob: b} }

// NewString wraps a string payload. The host receives strings
// NUL-terminated, so an interior NUL fails with ErrNul.
func NewString(s string) (Value, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return Value{}, ErrNul
	}
	return Value{typ: DataTypeString, str: s}, nil
}

// MustString is like NewString but panics on error.
func MustString(s string) Value {
	v, err := NewString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Type returns the slot type the value fills.
func (v Value) Type() DataType {
	return v.typ
}

// Encode returns the host-native byte layout of v: 4 or 8 native-endian
// bytes for numbers, NUL-terminated bytes for strings, the raw bytes for
// blobs.
func (v Value) Encode() []byte {
	switch v.typ {
	case DataTypeInt32, DataTypeUint32, DataTypeFloat:
		return binary.NativeEndian.AppendUint32(make([]byte, 0, 4), uint32(v.bits))
	case DataTypeInt64, DataTypeUint64, DataTypeDouble:
		return binary.NativeEndian.AppendUint64(make([]byte, 0, 8), v.bits)
	case DataTypeString:
		b := make([]byte, len(v.str)+1)
		copy(b, v.str)
		return b
	case DataTypeBlob8:
		return append([]byte(nil), v.blob...)
	default:
		return nil
	}
}
