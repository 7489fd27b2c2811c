package wire

import (
	"fmt"
	"math"
)

// WireType is the low three bits of a field tag.
type WireType uint8

const (
	Varint          WireType = 0
	Fixed64         WireType = 1
	LengthDelimited WireType = 2
	StartGroup      WireType = 3 // legacy, rejected
	EndGroup        WireType = 4 // legacy, rejected
	Fixed32         WireType = 5
)

func (t WireType) String() string {
	switch t {
	case Varint:
		return "varint"
	case Fixed64:
		return "fixed64"
	case LengthDelimited:
		return "length-delimited"
	case StartGroup:
		return "start-group"
	case EndGroup:
		return "end-group"
	case Fixed32:
		return "fixed32"
	default:
		return fmt.Sprintf("wiretype(%d)", uint8(t))
	}
}

// FieldTag is a decoded field key.
type FieldTag struct {
	Number   uint32
	WireType WireType
}

func (t FieldTag) String() string {
	return fmt.Sprintf("%d:%s", t.Number, t.WireType)
}

// ParseFieldTag decodes one varint and splits it into field number and wire
// type. Field number 0 and reserved wire types are returned as-is; only a
// field number that does not fit in 32 bits is an error.
func (c *Cursor) ParseFieldTag() (FieldTag, error) {
	start := c.pos
	v, err := c.DecodeVarint()
	if err != nil {
		return FieldTag{}, err
	}

	num := v >> 3
	if num > math.MaxUint32 {
		c.pos = start
		return FieldTag{}, ErrOverflow.Wrapf("field number %d at offset %d", num, start)
	}

	return FieldTag{Number: uint32(num), WireType: WireType(v & 7)}, nil
}
