// Package testutil builds HAPI wire payloads for tests.
package testutil

import (
	"google.golang.org/protobuf/encoding/protowire"
)

func AppendVarint(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func AppendInt64(b []byte, num protowire.Number, v int64) []byte {
	return AppendVarint(b, num, uint64(v))
}

func AppendSint64(b []byte, num protowire.Number, v int64) []byte {
	return AppendVarint(b, num, protowire.EncodeZigZag(v))
}

func AppendBool(b []byte, num protowire.Number, v bool) []byte {
	return AppendVarint(b, num, protowire.EncodeBool(v))
}

func AppendBytes(b []byte, num protowire.Number, v []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func AppendString(b []byte, num protowire.Number, v string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

// entity encodes shard/realm/num the way proto3 does, omitting zeros.
func entity(shard, realm, num int64) []byte {
	var b []byte
	if shard != 0 {
		b = AppendInt64(b, 1, shard)
	}
	if realm != 0 {
		b = AppendInt64(b, 2, realm)
	}
	if num != 0 {
		b = AppendInt64(b, 3, num)
	}
	return b
}

func AccountID(shard, realm, num int64) []byte { return entity(shard, realm, num) }

func TokenID(shard, realm, num int64) []byte { return entity(shard, realm, num) }

// ContractNum encodes a numbered ContractID. The number is always written
// so the oneof member is present.
func ContractNum(shard, realm, num int64) []byte {
	b := entity(shard, realm, 0)
	return AppendInt64(b, 3, num)
}

func ContractEVMAddress(addr []byte) []byte {
	return AppendBytes(nil, 4, addr)
}

func Timestamp(seconds int64, nanos int32) []byte {
	var b []byte
	if seconds != 0 {
		b = AppendInt64(b, 1, seconds)
	}
	if nanos != 0 {
		b = AppendInt64(b, 2, int64(nanos))
	}
	return b
}

func Duration(seconds int64) []byte { return Timestamp(seconds, 0) }

func BoolValue(v bool) []byte { return AppendBool(nil, 1, v) }

func Int32Value(v int32) []byte { return AppendInt64(nil, 1, int64(v)) }

func UInt32Value(v uint32) []byte { return AppendVarint(nil, 1, uint64(v)) }

func UInt64Value(v uint64) []byte { return AppendVarint(nil, 1, v) }

func StringValue(v string) []byte { return AppendString(nil, 1, v) }

func TransactionID(payer []byte) []byte {
	b := AppendBytes(nil, 1, Timestamp(1700000000, 1))
	return AppendBytes(b, 2, payer)
}

func AccountAmount(account []byte, amount int64) []byte {
	b := AppendBytes(nil, 1, account)
	return AppendSint64(b, 2, amount)
}

func TransferList(legs ...[]byte) []byte {
	var b []byte
	for _, leg := range legs {
		b = AppendBytes(b, 1, leg)
	}
	return b
}

func TokenTransferList(token []byte, expectedDecimals *uint32, legs ...[]byte) []byte {
	b := AppendBytes(nil, 1, token)
	for _, leg := range legs {
		b = AppendBytes(b, 2, leg)
	}
	if expectedDecimals != nil {
		b = AppendBytes(b, 4, UInt32Value(*expectedDecimals))
	}
	return b
}

// CryptoTransfer encodes a CryptoTransferTransactionBody. A nil transfers
// list is omitted.
func CryptoTransfer(transfers []byte, tokenLists ...[]byte) []byte {
	var b []byte
	if transfers != nil {
		b = AppendBytes(b, 1, transfers)
	}
	for _, list := range tokenLists {
		b = AppendBytes(b, 2, list)
	}
	return b
}

func ContractCall(contractID []byte, gas, amount int64, params []byte) []byte {
	b := AppendBytes(nil, 1, contractID)
	b = AppendInt64(b, 2, gas)
	b = AppendInt64(b, 3, amount)
	return AppendBytes(b, 4, params)
}

func TokenMint(token []byte, amount uint64) []byte {
	b := AppendBytes(nil, 1, token)
	return AppendVarint(b, 2, amount)
}

func TokenBurn(token []byte, amount uint64) []byte {
	b := AppendBytes(nil, 1, token)
	return AppendVarint(b, 2, amount)
}

func TokenAssociation(account []byte, tokens ...[]byte) []byte {
	var b []byte
	if account != nil {
		b = AppendBytes(b, 1, account)
	}
	for _, t := range tokens {
		b = AppendBytes(b, 2, t)
	}
	return b
}
