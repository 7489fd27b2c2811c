package erc20

import (
	sdkerrors "cosmossdk.io/errors"
)

// Codespace is the error codespace of the ABI decoder.
const Codespace = "erc20"

var (
	ErrInvalidLength       = sdkerrors.Register(Codespace, 2, "invalid calldata length")
	ErrUnsupportedSelector = sdkerrors.Register(Codespace, 3, "unsupported function selector")
	ErrBufferTooSmall      = sdkerrors.Register(Codespace, 4, "destination buffer too small")
)
