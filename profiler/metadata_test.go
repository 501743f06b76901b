package profiler

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShape(t *testing.T) {
	tests := []struct {
		name    string
		slots   []Slot
		wantErr error
	}{
		{name: "empty", slots: nil},
		{name: "mixed", slots: []Slot{
			NewSlot("count", DataTypeInt32, UnitCount),
			NewSlot("label", DataTypeString, UnitUndefined),
			NewSlot("blob", DataTypeBlob8, UnitBytes),
		}},
		{name: "reserved type is registrable", slots: []Slot{NewSlot("id", DataTypeInstanceID, UnitUndefined)}},
		{name: "missing name", slots: []Slot{NewSlot("", DataTypeInt32, UnitUndefined)}, wantErr: ErrInvalidSlot},
		{name: "nul in name", slots: []Slot{NewSlot("a\x00b", DataTypeInt32, UnitUndefined)}, wantErr: ErrNul},
		{name: "unknown type", slots: []Slot{NewSlot("x", DataType(10), UnitUndefined)}, wantErr: ErrInvalidSlot},
		{name: "unknown unit", slots: []Slot{NewSlot("x", DataTypeInt32, Unit(9))}, wantErr: ErrInvalidSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, err := NewShape(tt.slots...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.slots), shape.Len())
		})
	}
}

func TestShape_IsImmutable(t *testing.T) {
	slots := []Slot{NewSlot("a", DataTypeInt32, UnitUndefined)}
	shape := MustShape(slots...)
	slots[0].Name = "changed"

	got := shape.Slots()
	got[0].Name = "changed too"
	assert.Equal(t, "a", shape.Slot(0).Name)
}

func TestMustShape_Panics(t *testing.T) {
	assert.Panics(t, func() { MustShape(NewSlot("", DataTypeInt32, UnitUndefined)) })
}

func TestShape_Check(t *testing.T) {
	shape := MustShape(
		NewSlot("count", DataTypeInt32, UnitCount),
		NewSlot("label", DataTypeString, UnitUndefined),
	)

	assert.NoError(t, shape.Check([]Value{Int32(1), MustString("x")}))
	assert.ErrorIs(t, shape.Check([]Value{Int32(1)}), ErrShapeMismatch)
	assert.ErrorIs(t, shape.Check([]Value{Int64(1), MustString("x")}), ErrShapeMismatch)
	assert.ErrorIs(t, shape.Check([]Value{Int32(1), {}}), ErrShapeMismatch)
	assert.NoError(t, NoMetadata.Check(nil))
}

func TestValue_EncodeWidths(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		typ   DataType
		want  []byte
	}{
		{"int32", Int32(-2), DataTypeInt32, binary.NativeEndian.AppendUint32(nil, uint32(0xFFFFFFFE))},
		{"uint32", Uint32(42), DataTypeUint32, binary.NativeEndian.AppendUint32(nil, 42)},
		{"int64", Int64(-1), DataTypeInt64, binary.NativeEndian.AppendUint64(nil, math.MaxUint64)},
		{"uint64", Uint64(1 << 40), DataTypeUint64, binary.NativeEndian.AppendUint64(nil, 1<<40)},
		{"float", Float(1.5), DataTypeFloat, binary.NativeEndian.AppendUint32(nil, math.Float32bits(1.5))},
		{"double", Double(2.25), DataTypeDouble, binary.NativeEndian.AppendUint64(nil, math.Float64bits(2.25))},
		{"string", MustString("ok"), DataTypeString, []byte("ok\x00")},
		{"empty string", MustString(""), DataTypeString, []byte{0}},
		{"blob", Bytes([]byte{1, 2, 3}), DataTypeBlob8, []byte{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.typ, tt.value.Type())
			assert.Equal(t, tt.want, tt.value.Encode())
		})
	}
}

func TestValue_EncodeCopiesBlob(t *testing.T) {
	src := []byte{9, 9}
	enc := Bytes(src).Encode()
	enc[0] = 0
	assert.Equal(t, byte(9), src[0])
}

func TestNewString_RejectsNul(t *testing.T) {
	_, err := NewString("a\x00")
	assert.ErrorIs(t, err, ErrNul)
	assert.Panics(t, func() { MustString("\x00") })
}

func TestDataType_Taxonomy(t *testing.T) {
	assert.Equal(t, "int32", DataTypeInt32.String())
	assert.Equal(t, "DataType(10)", DataType(10).String())
	assert.True(t, DataTypeString16.Reserved())
	assert.True(t, DataTypeGfxResourceID.Reserved())
	assert.False(t, DataTypeBlob8.Reserved())
	assert.True(t, UnitFrequencyHz.Known())
	assert.False(t, Unit(6).Known())
}
