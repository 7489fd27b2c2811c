package types

import (
	sdkerrors "cosmossdk.io/errors"
)

var (
	// ErrMalformedInput is the only error returned across the engine boundary.
	ErrMalformedInput = sdkerrors.Register(ModuleName, 1100, "malformed input")

	ErrDecode              = sdkerrors.Register(ModuleName, 1101, "invalid transaction body encoding")
	ErrUnsupportedBody     = sdkerrors.Register(ModuleName, 1102, "unsupported transaction body")
	ErrInvalidTransfer     = sdkerrors.Register(ModuleName, 1103, "invalid transfer")
	ErrInvalidUpdate       = sdkerrors.Register(ModuleName, 1104, "invalid account update")
	ErrInvalidContractCall = sdkerrors.Register(ModuleName, 1105, "invalid contract call")
	ErrInvalidAmount       = sdkerrors.Register(ModuleName, 1106, "invalid amount")
	ErrInvalidMemo         = sdkerrors.Register(ModuleName, 1107, "invalid memo")
	ErrInvalidEntityID     = sdkerrors.Register(ModuleName, 1108, "invalid entity id")
	ErrInvalidToken        = sdkerrors.Register(ModuleName, 1109, "invalid token metadata")
	ErrInvalidPayload      = sdkerrors.Register(ModuleName, 1110, "invalid sign payload")
)
