package erc20

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	_ "embed"
)

const (
	// TransferMethod defines the ABI method name of the ERC-20 transfer call.
	TransferMethod = "transfer"
	// TransferSelector is the big-endian selector of transfer(address,uint256).
	TransferSelector uint32 = 0xa9059cbb

	SelectorSize       = 4
	WordSize           = 32
	AddressSize        = common.AddressLength
	AddressPaddingSize = WordSize - AddressSize

	// TransferCalldataSize is the exact length of a transfer call: selector,
	// address word and amount word.
	TransferCalldataSize = SelectorSize + 2*WordSize
)

var (
	// Embed abi json file to the executable binary. Needed when importing as dependency.
	//
	//go:embed abi.json
	f   []byte
	ABI abi.ABI
)

func init() {
	var err error
	ABI, err = abi.JSON(bytes.NewReader(f))
	if err != nil {
		panic(err)
	}

	method, ok := ABI.Methods[TransferMethod]
	if !ok {
		panic("erc20: abi has no transfer method")
	}
	if got := binary.BigEndian.Uint32(method.ID); got != TransferSelector {
		panic(fmt.Sprintf("erc20: transfer selector is 0x%08x, want 0x%08x", got, TransferSelector))
	}
}

// Uint256 is a 256-bit unsigned big-endian integer word.
type Uint256 [WordSize]byte

// Int returns the word as a holiman/uint256 integer.
func (u Uint256) Int() *uint256.Int {
	return new(uint256.Int).SetBytes32(u[:])
}

// IsZero reports whether every byte of the word is zero.
func (u Uint256) IsZero() bool {
	return u == Uint256{}
}

// TransferCalldata is a decoded transfer(address,uint256) call.
type TransferCalldata struct {
	To     common.Address
	Amount Uint256
}

// Selector returns the big-endian function selector of calldata.
func Selector(calldata []byte) (uint32, error) {
	if len(calldata) < SelectorSize {
		return 0, ErrInvalidLength.Wrapf("calldata is %d bytes, selector needs %d", len(calldata), SelectorSize)
	}
	return binary.BigEndian.Uint32(calldata[:SelectorSize]), nil
}

// ParseTransferFunction decodes calldata of exactly TransferCalldataSize
// bytes carrying the transfer selector.
//
// The recipient is the last AddressSize bytes of the first argument word.
// The leading padding bytes are not inspected.
func ParseTransferFunction(calldata []byte) (TransferCalldata, error) {
	if len(calldata) != TransferCalldataSize {
		return TransferCalldata{}, ErrInvalidLength.Wrapf("transfer calldata is %d bytes, want %d", len(calldata), TransferCalldataSize)
	}

	selector, err := Selector(calldata)
	if err != nil {
		return TransferCalldata{}, err
	}
	if selector != TransferSelector {
		return TransferCalldata{}, ErrUnsupportedSelector.Wrapf("0x%08x", selector)
	}

	var tc TransferCalldata
	addressWord := calldata[SelectorSize : SelectorSize+WordSize]
	copy(tc.To[:], addressWord[AddressPaddingSize:])
	copy(tc.Amount[:], calldata[SelectorSize+WordSize:])
	return tc, nil
}

// PackTransfer encodes a transfer(address,uint256) call with the embedded ABI.
func PackTransfer(to common.Address, amount *big.Int) ([]byte, error) {
	return ABI.Pack(TransferMethod, to, amount)
}
