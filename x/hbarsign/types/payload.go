package types

import (
	"encoding/binary"
)

// KeyIndexSize is the little-endian key index that prefixes a sign payload.
const KeyIndexSize = 4

// SplitSignPayload separates a sign request into the key index and the raw
// TransactionBody bytes. The body aliases payload.
func SplitSignPayload(payload []byte) (uint32, []byte, error) {
	if len(payload) < KeyIndexSize {
		return 0, nil, ErrInvalidPayload.Wrapf("payload is %d bytes, need at least %d", len(payload), KeyIndexSize)
	}
	return binary.LittleEndian.Uint32(payload), payload[KeyIndexSize:], nil
}
