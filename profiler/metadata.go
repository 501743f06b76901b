package profiler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DataType is the host type tag of a metadata slot.
type DataType uint8

const (
	DataTypeInstanceID    DataType = 1
	DataTypeInt32         DataType = 2
	DataTypeUint32        DataType = 3
	DataTypeInt64         DataType = 4
	DataTypeUint64        DataType = 5
	DataTypeFloat         DataType = 6
	DataTypeDouble        DataType = 7
	DataTypeString        DataType = 8
	DataTypeString16      DataType = 9
	DataTypeBlob8         DataType = 11
	DataTypeGfxResourceID DataType = 12
)

var dataTypeNames = map[DataType]string{
	DataTypeInstanceID:    "instance-id",
	DataTypeInt32:         "int32",
	DataTypeUint32:        "uint32",
	DataTypeInt64:         "int64",
	DataTypeUint64:        "uint64",
	DataTypeFloat:         "float",
	DataTypeDouble:        "double",
	DataTypeString:        "string",
	DataTypeString16:      "string16",
	DataTypeBlob8:         "blob8",
	DataTypeGfxResourceID: "gfx-resource-id",
}

func (t DataType) String() string {
	if name, ok := dataTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("DataType(%d)", uint8(t))
}

// Known reports whether t is a tag the host defines.
func (t DataType) Known() bool {
	_, ok := dataTypeNames[t]
	return ok
}

// Reserved reports whether t is a host-reserved kind that Value cannot hold.
func (t DataType) Reserved() bool {
	switch t {
	case DataTypeInstanceID, DataTypeString16, DataTypeGfxResourceID:
		return true
	}
	return false
}

// Unit describes how the profiler UI presents a slot's value.
type Unit uint8

const (
	UnitUndefined   Unit = 0
	UnitNanoseconds Unit = 1
	UnitBytes       Unit = 2
	UnitCount       Unit = 3
	UnitPercent     Unit = 4
	UnitFrequencyHz Unit = 5
)

// Known reports whether u is a unit the host defines.
func (u Unit) Known() bool {
	return u <= UnitFrequencyHz
}

// MaxSlots bounds the arity of a shape; the host counts slots in 16 bits.
const MaxSlots = 1<<16 - 2

var (
	// ErrInvalidSlot is returned by NewShape for a malformed slot.
	ErrInvalidSlot = errors.New("invalid metadata slot")

	// ErrShapeMismatch means values do not fit a marker's shape.
	ErrShapeMismatch = errors.New("metadata values do not match marker shape")
)

// Slot describes one named, typed metadata field.
type Slot struct {
	Name string   `validate:"required,nonul"`
	Type DataType `validate:"datatype"`
	Unit Unit     `validate:"unit"`
}

// NewSlot is shorthand for a Slot literal.
func NewSlot(name string, typ DataType, unit Unit) Slot {
	return Slot{Name: name, Type: typ, Unit: unit}
}

// Shape is the ordered schema a marker's events carry. It is fixed when the
// marker is created and every emission must match it.
type Shape struct {
	slots []Slot
}

// NoMetadata is the empty shape used by plain markers.
var NoMetadata = Shape{}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("nonul", func(fl validator.FieldLevel) bool {
		return !strings.Contains(fl.Field().String(), "\x00")
	})
	_ = v.RegisterValidation("datatype", func(fl validator.FieldLevel) bool {
		return DataType(fl.Field().Uint()).Known()
	})
	_ = v.RegisterValidation("unit", func(fl validator.FieldLevel) bool {
		return Unit(fl.Field().Uint()).Known()
	})
	return v
}

// NewShape validates slots and builds a shape from them.
// A slot name containing NUL fails with ErrNul; any other malformed slot
// fails with ErrInvalidSlot.
func NewShape(slots ...Slot) (Shape, error) {
	for i, slot := range slots {
		if err := validate.Struct(slot); err != nil {
			return Shape{}, slotError(i, err)
		}
	}
	return Shape{slots: append([]Slot(nil), slots...)}, nil
}

// MustShape is like NewShape but panics on error.
// Intended for package-level marker declarations.
func MustShape(slots ...Slot) Shape {
	s, err := NewShape(slots...)
	if err != nil {
		panic(err)
	}
	return s
}

func slotError(i int, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("metadata slot %d: %w: %v", i, ErrInvalidSlot, err)
	}
	fe := verrs[0]
	if fe.Tag() == "nonul" {
		return fmt.Errorf("metadata slot %d name: %w", i, ErrNul)
	}
	return fmt.Errorf("metadata slot %d: %w: %s failed %q", i, ErrInvalidSlot, fe.Field(), fe.Tag())
}

// Len returns the number of slots.
func (s Shape) Len() int {
	return len(s.slots)
}

// Slot returns slot i.
func (s Shape) Slot(i int) Slot {
	return s.slots[i]
}

// Slots returns a copy of the slots in declaration order.
func (s Shape) Slots() []Slot {
	return append([]Slot(nil), s.slots...)
}

// Check reports whether values fit s: same count, same type per slot.
func (s Shape) Check(values []Value) error {
	if len(values) != len(s.slots) {
		return fmt.Errorf("%w: %d values for %d slots", ErrShapeMismatch, len(values), len(s.slots))
	}
	for i, v := range values {
		if v.typ != s.slots[i].Type {
			return fmt.Errorf("%w: slot %d %q wants %s, got %s",
				ErrShapeMismatch, i, s.slots[i].Name, s.slots[i].Type, v.typ)
		}
	}
	return nil
}
