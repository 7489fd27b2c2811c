package wire

import (
	"encoding/binary"
)

// Cursor is a read position over a byte slice it does not own.
//
// Every advance is checked against the bytes that remain before the slice is
// touched, so a claimed length can never take the position past the end.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor returns a cursor positioned at the start of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the current read offset.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the size of the underlying view.
func (c *Cursor) Len() int { return len(c.buf) }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.buf) - c.pos }

// Done reports whether every byte has been consumed.
func (c *Cursor) Done() bool { return c.pos >= len(c.buf) }

func (c *Cursor) advance(n uint64) error {
	if n > uint64(c.Remaining()) {
		return ErrTruncated.Wrapf("need %d bytes at offset %d, have %d", n, c.pos, c.Remaining())
	}
	c.pos += int(n)
	return nil
}

// ReadBytes returns the next n bytes as a sub-slice of the view.
func (c *Cursor) ReadBytes(n uint64) ([]byte, error) {
	start := c.pos
	if err := c.advance(n); err != nil {
		return nil, err
	}
	return c.buf[start:c.pos:c.pos], nil
}

// ReadLengthDelimited reads a varint length followed by that many bytes.
func (c *Cursor) ReadLengthDelimited() ([]byte, error) {
	start := c.pos
	n, err := c.DecodeVarint()
	if err != nil {
		return nil, err
	}
	b, err := c.ReadBytes(n)
	if err != nil {
		c.pos = start
		return nil, err
	}
	return b, nil
}

// ReadFixed64 reads a little-endian 64-bit value.
func (c *Cursor) ReadFixed64() (uint64, error) {
	b, err := c.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadFixed32 reads a little-endian 32-bit value.
func (c *Cursor) ReadFixed32() (uint32, error) {
	b, err := c.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}
