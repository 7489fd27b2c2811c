package wire

// SkipField advances past one field value of the given wire type without
// interpreting it. Groups and reserved wire types are never skipped.
func (c *Cursor) SkipField(wt WireType) error {
	switch wt {
	case Varint:
		_, err := c.DecodeVarint()
		return err
	case Fixed64:
		return c.advance(8)
	case LengthDelimited:
		_, err := c.ReadLengthDelimited()
		return err
	case Fixed32:
		return c.advance(4)
	default:
		return ErrWireType.Wrapf("cannot skip %s at offset %d", wt, c.pos)
	}
}
