package types

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/format"
)

// MaxTokenNameLength bounds the display name of a token.
const MaxTokenNameLength = 32

// TokenInfo is static metadata about a known token.
type TokenInfo struct {
	ID         EntityID
	EVMAddress common.Address
	Ticker     string
	Name       string
	Decimals   uint32
}

// Validate checks the metadata against the display limits.
func (t TokenInfo) Validate() error {
	if t.Ticker == "" || len(t.Ticker) > format.MaxTickerLength {
		return ErrInvalidToken.Wrapf("%s: ticker %q must be 1..%d bytes", t.ID, t.Ticker, format.MaxTickerLength)
	}
	if len(t.Name) > MaxTokenNameLength {
		return ErrInvalidToken.Wrapf("%s: name %q longer than %d bytes", t.ID, t.Name, MaxTokenNameLength)
	}
	if err := ValidateDecimals(t.Decimals); err != nil {
		return ErrInvalidToken.Wrapf("%s: %s", t.ID, err)
	}
	return nil
}
