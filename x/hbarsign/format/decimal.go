package format

import (
	"encoding/binary"
)

const (
	// Uint256Size is the width of a 256-bit big-endian integer.
	Uint256Size = 32
	// MaxUint256DecimalLength is the number of digits in 2^256-1.
	MaxUint256DecimalLength = 78

	limbCount = Uint256Size / 2
)

// Uint256ToDecimal writes the decimal rendering of a big-endian unsigned
// integer of 1 to 32 bytes into out and returns the number of bytes written.
//
// Digits are produced by repeated division of sixteen 16-bit limbs by ten.
// out may be exactly MaxUint256DecimalLength long; a shorter out that cannot
// hold the result fails with ErrBufferTooSmall and is left untouched.
func Uint256ToDecimal(value []byte, out []byte) (int, error) {
	if len(value) == 0 {
		return 0, ErrEmptyValue
	}
	if len(value) > Uint256Size {
		return 0, ErrValueTooLarge.Wrapf("%d bytes", len(value))
	}

	var padded [Uint256Size]byte
	copy(padded[Uint256Size-len(value):], value)

	var limbs [limbCount]uint16
	for i := range limbs {
		limbs[i] = binary.BigEndian.Uint16(padded[2*i:])
	}

	var scratch [MaxUint256DecimalLength]byte
	pos := len(scratch)
	for !limbsZero(&limbs) {
		var rem uint32
		for i := range limbs {
			cur := rem<<16 | uint32(limbs[i])
			limbs[i] = uint16(cur / 10)
			rem = cur % 10
		}
		pos--
		scratch[pos] = '0' + byte(rem)
	}
	if pos == len(scratch) {
		pos--
		scratch[pos] = '0'
	}

	digits := scratch[pos:]
	if len(out) < len(digits) {
		return 0, ErrBufferTooSmall.Wrapf("need %d bytes, have %d", len(digits), len(out))
	}
	return copy(out, digits), nil
}

func limbsZero(limbs *[limbCount]uint16) bool {
	for _, l := range limbs {
		if l != 0 {
			return false
		}
	}
	return true
}

// Uint256String is Uint256ToDecimal into a string.
func Uint256String(value []byte) (string, error) {
	var buf [MaxUint256DecimalLength]byte
	n, err := Uint256ToDecimal(value, buf[:])
	if err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}
