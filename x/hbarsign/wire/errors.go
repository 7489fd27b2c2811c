package wire

import (
	sdkerrors "cosmossdk.io/errors"
)

// Codespace is the error codespace of the wire decoder.
const Codespace = "wire"

var (
	ErrTruncated     = sdkerrors.Register(Codespace, 2, "unexpected end of buffer")
	ErrOverflow      = sdkerrors.Register(Codespace, 3, "varint overflows 64 bits")
	ErrWireType      = sdkerrors.Register(Codespace, 4, "unsupported wire type")
	ErrFieldNotFound = sdkerrors.Register(Codespace, 5, "field not found")
	ErrCapacity      = sdkerrors.Register(Codespace, 6, "destination buffer too small")
	ErrDuplicate     = sdkerrors.Register(Codespace, 7, "duplicate field")
)
