package testutil

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// TransactionBody data field numbers.
const (
	ContractCallField        protowire.Number = 7
	CryptoCreateAccountField protowire.Number = 11
	CryptoTransferField      protowire.Number = 14
	CryptoUpdateAccountField protowire.Number = 15
	TokenMintField           protowire.Number = 37
	TokenBurnField           protowire.Number = 38
	TokenAssociateField      protowire.Number = 40
	TokenDissociateField     protowire.Number = 41
)

// Body builds a TransactionBody. The zero value is an empty body.
type Body struct {
	buf []byte
}

// NewBody returns a body paid by 0.0.payer through node 0.0.3 with the given
// fee.
func NewBody(payer int64, fee uint64) *Body {
	b := &Body{}
	return b.TransactionID(AccountID(0, 0, payer)).Node(AccountID(0, 0, 3)).Fee(fee).ValidDuration(120)
}

func (b *Body) TransactionID(payer []byte) *Body {
	b.buf = AppendBytes(b.buf, 1, TransactionID(payer))
	return b
}

func (b *Body) Node(account []byte) *Body {
	b.buf = AppendBytes(b.buf, 2, account)
	return b
}

func (b *Body) Fee(fee uint64) *Body {
	b.buf = AppendVarint(b.buf, 3, fee)
	return b
}

func (b *Body) ValidDuration(seconds int64) *Body {
	b.buf = AppendBytes(b.buf, 4, Duration(seconds))
	return b
}

func (b *Body) Memo(memo string) *Body {
	b.buf = AppendString(b.buf, 6, memo)
	return b
}

// Data appends a data oneof variant.
func (b *Body) Data(num protowire.Number, msg []byte) *Body {
	b.buf = AppendBytes(b.buf, num, msg)
	return b
}

// Raw appends pre-encoded bytes.
func (b *Body) Raw(raw []byte) *Body {
	b.buf = append(b.buf, raw...)
	return b
}

// Bytes returns a copy of the encoded body.
func (b *Body) Bytes() []byte {
	out := make([]byte, len(b.buf))
	copy(out, b.buf)
	return out
}
