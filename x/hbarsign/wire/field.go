package wire

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field is one decoded (number, wire type, payload) triple.
//
// Varint carries the value for Varint fields and the raw bits for fixed
// fields. Bytes aliases the input buffer for LengthDelimited fields.
type Field struct {
	Tag    FieldTag
	Offset int
	Varint uint64
	Bytes  []byte
}

// NextField decodes the tag and payload of the next field.
func (c *Cursor) NextField() (Field, error) {
	start := c.pos
	tag, err := c.ParseFieldTag()
	if err != nil {
		return Field{}, err
	}

	f := Field{Tag: tag, Offset: start}
	switch tag.WireType {
	case Varint:
		f.Varint, err = c.DecodeVarint()
	case Fixed64:
		f.Varint, err = c.ReadFixed64()
	case LengthDelimited:
		f.Bytes, err = c.ReadLengthDelimited()
	case Fixed32:
		var v uint32
		v, err = c.ReadFixed32()
		f.Varint = uint64(v)
	default:
		err = ErrWireType.Wrapf("field %d uses %s at offset %d", tag.Number, tag.WireType, start)
	}
	if err != nil {
		c.pos = start
		return Field{}, err
	}
	return f, nil
}

// Walk calls visit for every top-level field of buf, in wire order. It stops
// at the first decode error or the first error returned by visit.
func Walk(buf []byte, visit func(Field) error) error {
	c := NewCursor(buf)
	for !c.Done() {
		f, err := c.NextField()
		if err != nil {
			return err
		}
		if err := visit(f); err != nil {
			return err
		}
	}
	return nil
}

// Expect fails unless the field was encoded with wt.
func (f Field) Expect(wt WireType) error {
	if f.Tag.WireType != wt {
		return ErrWireType.Wrapf("field %d: want %s, got %s", f.Tag.Number, wt, f.Tag.WireType)
	}
	return nil
}

// Uint64 returns a uint64 varint field.
func (f Field) Uint64() (uint64, error) {
	if err := f.Expect(Varint); err != nil {
		return 0, err
	}
	return f.Varint, nil
}

// Int64 returns an int64 varint field (two's complement).
func (f Field) Int64() (int64, error) {
	if err := f.Expect(Varint); err != nil {
		return 0, err
	}
	return int64(f.Varint), nil
}

// Sint64 returns a zigzag encoded sint64 field.
func (f Field) Sint64() (int64, error) {
	if err := f.Expect(Varint); err != nil {
		return 0, err
	}
	return protowire.DecodeZigZag(f.Varint), nil
}

// Int32 returns an int32 varint field. Negative values are sign extended on
// the wire, anything outside the int32 range is rejected.
func (f Field) Int32() (int32, error) {
	v, err := f.Int64()
	if err != nil {
		return 0, err
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, ErrOverflow.Wrapf("field %d: %d out of int32 range", f.Tag.Number, v)
	}
	return int32(v), nil
}

// Uint32 returns a uint32 varint field.
func (f Field) Uint32() (uint32, error) {
	v, err := f.Uint64()
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint32 {
		return 0, ErrOverflow.Wrapf("field %d: %d out of uint32 range", f.Tag.Number, v)
	}
	return uint32(v), nil
}

// Bool returns a bool varint field.
func (f Field) Bool() (bool, error) {
	if err := f.Expect(Varint); err != nil {
		return false, err
	}
	return protowire.DecodeBool(f.Varint), nil
}

// Message returns the payload of a length-delimited field.
func (f Field) Message() ([]byte, error) {
	if err := f.Expect(LengthDelimited); err != nil {
		return nil, err
	}
	return f.Bytes, nil
}

// FieldSet records which singular fields have been seen in one message.
type FieldSet map[uint32]struct{}

// Once marks the field as seen and fails if it already was.
func (s FieldSet) Once(f Field) error {
	if _, ok := s[f.Tag.Number]; ok {
		return ErrDuplicate.Wrapf("field %d at offset %d", f.Tag.Number, f.Offset)
	}
	s[f.Tag.Number] = struct{}{}
	return nil
}

// Has reports whether the field number was seen.
func (s FieldSet) Has(num uint32) bool {
	_, ok := s[num]
	return ok
}
