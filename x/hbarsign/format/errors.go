package format

import (
	sdkerrors "cosmossdk.io/errors"
)

// Codespace is the error codespace of the amount formatter.
const Codespace = "format"

var (
	ErrBufferTooSmall      = sdkerrors.Register(Codespace, 2, "destination buffer too small")
	ErrValueTooLarge       = sdkerrors.Register(Codespace, 3, "value wider than 256 bits")
	ErrEmptyValue          = sdkerrors.Register(Codespace, 4, "empty value")
	ErrUnsupportedDecimals = sdkerrors.Register(Codespace, 5, "unsupported number of decimals")
	ErrInvalidDigits       = sdkerrors.Register(Codespace, 6, "invalid decimal digits")
)
