package erc20

import (
	"encoding/hex"

	"github.com/ethereum/go-ethereum/common"

	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/format"
)

const (
	// AddressHexSize is the length of a 0x-prefixed address.
	AddressHexSize = 2 + 2*AddressSize
	// WordHexSize is the length of a 0x-prefixed 32-byte word.
	WordHexSize = 2 + 2*WordSize
)

func toHex(b []byte, out []byte) (int, error) {
	need := 2 + hex.EncodedLen(len(b))
	if len(out) < need {
		return 0, ErrBufferTooSmall.Wrapf("need %d bytes, have %d", need, len(out))
	}
	out[0], out[1] = '0', 'x'
	hex.Encode(out[2:], b)
	return need, nil
}

// AddressToHex writes addr as 0x followed by 40 lowercase hex digits. out
// must be at least AddressHexSize bytes.
func AddressToHex(addr common.Address, out []byte) (int, error) {
	return toHex(addr[:], out)
}

// WordToHex writes word as 0x followed by 64 lowercase hex digits. out must
// be at least WordHexSize bytes.
func WordToHex(word Uint256, out []byte) (int, error) {
	return toHex(word[:], out)
}

// AddressHex returns the lowercase, non-checksummed rendering of addr.
func AddressHex(addr common.Address) string {
	var buf [AddressHexSize]byte
	n, _ := AddressToHex(addr, buf[:])
	return string(buf[:n])
}

// WordHex returns the lowercase rendering of word.
func WordHex(word Uint256) string {
	var buf [WordHexSize]byte
	n, _ := WordToHex(word, buf[:])
	return string(buf[:n])
}

// WordToAmount renders word as an unsigned decimal integer.
func WordToAmount(word Uint256) (string, error) {
	return format.Uint256String(word[:])
}
