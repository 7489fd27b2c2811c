package wire

import (
	"bytes"

	errorsmod "cosmossdk.io/errors"
)

const (
	// CryptoUpdateField is the cryptoUpdateAccount body inside TransactionBody.
	CryptoUpdateField uint32 = 15
	// AccountMemoField is the memo StringValue inside CryptoUpdateTransactionBody.
	AccountMemoField uint32 = 14
	// WrapperValueField is the single value field of the well-known wrapper
	// messages (StringValue, BoolValue, Int32Value ...).
	WrapperValueField uint32 = 1
)

// FieldPath is a sequence of length-delimited field numbers, outermost first.
type FieldPath []uint32

// AccountMemoPath locates the account memo string of an account update:
//
//	TransactionBody
//	  15: cryptoUpdateAccount (CryptoUpdateTransactionBody)
//	    14: memo (google.protobuf.StringValue)
//	      1: value
var AccountMemoPath = FieldPath{CryptoUpdateField, AccountMemoField, WrapperValueField}

// ExtractPath walks buf along path and returns the payload of the innermost
// field. At every level the first occurrence of the path element decides the
// outcome; fields before it are skipped without being interpreted.
func ExtractPath(buf []byte, path FieldPath) ([]byte, error) {
	cur := buf
	for depth, num := range path {
		payload, err := findLengthDelimited(cur, num)
		if err != nil {
			return nil, errorsmod.Wrapf(err, "path element %d (field %d)", depth, num)
		}
		cur = payload
	}
	return cur, nil
}

func findLengthDelimited(buf []byte, num uint32) ([]byte, error) {
	c := NewCursor(buf)
	for !c.Done() {
		tag, err := c.ParseFieldTag()
		if err != nil {
			return nil, err
		}
		if tag.Number != num {
			if err := c.SkipField(tag.WireType); err != nil {
				return nil, err
			}
			continue
		}
		if tag.WireType != LengthDelimited {
			return nil, ErrWireType.Wrapf("field %d uses %s", num, tag.WireType)
		}
		return c.ReadLengthDelimited()
	}
	return nil, ErrFieldNotFound
}

// ExtractNestedString copies the string found at {CryptoUpdateField, target,
// WrapperValueField} into out and returns the number of bytes written.
//
// The copy stops at len(out) bytes and at the first NUL byte, silently
// truncating; callers compare n with the full value from ExtractPath to
// detect either. A found but empty value returns (0, nil), a missing field
// returns ErrFieldNotFound, and an empty out returns ErrCapacity.
func ExtractNestedString(buf []byte, target uint32, out []byte) (int, error) {
	if len(out) == 0 {
		return 0, ErrCapacity
	}

	value, err := ExtractPath(buf, FieldPath{CryptoUpdateField, target, WrapperValueField})
	if err != nil {
		return 0, err
	}

	if i := bytes.IndexByte(value, 0); i >= 0 {
		value = value[:i]
	}
	return copy(out, value), nil
}
