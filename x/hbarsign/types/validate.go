package types

import (
	"strings"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"

	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/format"
)

// ValidateBasic enforces the transfer shapes the signer can present: at most
// two hbar legs, at most one token list, never both kinds at once, and a
// token list has exactly two legs without NFT movements.
func (b *CryptoTransferBody) ValidateBasic() error {
	if len(b.Transfers) > 2 {
		return ErrInvalidTransfer.Wrapf("%d hbar transfers, at most 2 supported", len(b.Transfers))
	}
	if len(b.TokenTransfers) > 1 {
		return ErrInvalidTransfer.Wrapf("%d token transfer lists, at most 1 supported", len(b.TokenTransfers))
	}
	if len(b.Transfers) > 0 && len(b.TokenTransfers) > 0 {
		return ErrInvalidTransfer.Wrap("hbar and token transfers in one transaction")
	}
	if len(b.TokenTransfers) == 1 {
		list := b.TokenTransfers[0]
		if len(list.Transfers) != 2 {
			return ErrInvalidTransfer.Wrapf("token transfer has %d legs, want 2", len(list.Transfers))
		}
		if list.NFTTransfers > 0 {
			return ErrInvalidTransfer.Wrapf("token transfer carries %d nft transfers", list.NFTTransfers)
		}
		if list.ExpectedDecimals != nil {
			if err := ValidateDecimals(*list.ExpectedDecimals); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidateBasic rejects an explicitly zero target account and any key
// rotation.
func (b *CryptoUpdateBody) ValidateBasic() error {
	if b.AccountIDToUpdate != nil && b.AccountIDToUpdate.IsZero() {
		return ErrInvalidUpdate.Wrap("account to update is 0.0.0")
	}
	if b.HasKey {
		return ErrInvalidUpdate.Wrap("key rotation is not supported")
	}
	return nil
}

// ValidateBasic checks the call envelope. The function parameters are
// interpreted separately.
func (b *ContractCallBody) ValidateBasic() error {
	n := len(b.FunctionParameters)
	if n < 4 || n > MaxFunctionParametersSize {
		return ErrInvalidContractCall.Wrapf("function parameters are %d bytes, want 4..%d", n, MaxFunctionParametersSize)
	}
	if b.Gas < 0 {
		return ErrInvalidContractCall.Wrapf("negative gas %d", b.Gas)
	}
	if b.Amount < 0 {
		return ErrInvalidContractCall.Wrapf("negative amount %d", b.Amount)
	}

	switch b.ContractID.Kind {
	case ContractIDNum:
	case ContractIDEVMAddress:
		if len(b.ContractID.EVMAddress) != common.AddressLength {
			return ErrInvalidContractCall.Wrapf("evm address is %d bytes, want %d", len(b.ContractID.EVMAddress), common.AddressLength)
		}
	default:
		return ErrInvalidContractCall.Wrap("contract id is not set")
	}
	return nil
}

// ValidateBasic requires at least one token.
func (b *TokenAssociationBody) ValidateBasic() error {
	if len(b.Tokens) == 0 {
		return ErrUnsupportedBody.Wrap("no tokens")
	}
	return nil
}

// ValidateMemo rejects memos the network would refuse or the display could
// misrender: longer than MaxMemoSize bytes, not UTF-8, or carrying NUL.
func ValidateMemo(memo string) error {
	if len(memo) > MaxMemoSize {
		return ErrInvalidMemo.Wrapf("memo is %d bytes, max %d", len(memo), MaxMemoSize)
	}
	if !utf8.ValidString(memo) {
		return ErrInvalidMemo.Wrap("memo is not valid utf-8")
	}
	if strings.IndexByte(memo, 0) >= 0 {
		return ErrInvalidMemo.Wrap("memo contains NUL")
	}
	return nil
}

// ValidateDecimals rejects token decimals outside the supported range.
func ValidateDecimals(decimals uint32) error {
	if decimals >= format.MaxTokenDecimals {
		return ErrInvalidAmount.Wrapf("%d decimals, max %d", decimals, format.MaxTokenDecimals-1)
	}
	return nil
}
