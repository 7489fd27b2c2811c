package wire

// MaxVarintLen is the longest encoding of a 64-bit varint.
const MaxVarintLen = 10

// DecodeVarint reads one base-128 varint, least significant group first.
//
// The cursor does not move on failure.
func (c *Cursor) DecodeVarint() (uint64, error) {
	var val uint64
	data := c.buf[c.pos:]
	for i := 0; i < MaxVarintLen; i++ {
		if i >= len(data) {
			return 0, ErrTruncated.Wrapf("varint at offset %d", c.pos)
		}
		b := data[i]
		if i == MaxVarintLen-1 && b > 1 {
			// the tenth group may only carry bit 63
			return 0, ErrOverflow.Wrapf("varint at offset %d", c.pos)
		}
		val |= uint64(b&0x7F) << (uint(i) * 7)
		if b < 0x80 {
			c.pos += i + 1
			return val, nil
		}
	}
	return 0, ErrOverflow.Wrapf("varint at offset %d", c.pos)
}

// DecodeVarint decodes a varint from the front of data and returns the value
// and the number of bytes consumed.
func DecodeVarint(data []byte) (uint64, int, error) {
	c := NewCursor(data)
	v, err := c.DecodeVarint()
	if err != nil {
		return 0, 0, err
	}
	return v, c.Pos(), nil
}
