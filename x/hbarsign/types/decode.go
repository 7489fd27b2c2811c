package types

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/wire"
)

// This file decodes the subset of the HAPI TransactionBody schema the signer
// supports. Groups are rejected, and a singular field (or oneof member) that
// appears more than once is rejected rather than merged, so every decoded
// value has exactly one source in the raw bytes.
//
// TransactionBody:
//	1: TransactionID transactionID
//	2: AccountID nodeAccountID
//	3: uint64 transactionFee
//	4: Duration transactionValidDuration
//	5: bool generateRecord (ignored)
//	6: string memo
//	73: Key batch_key (ignored)
//	1001: repeated CustomFeeLimit max_custom_fees (ignored)
//
// Every other top-level number is taken as a member of the data oneof, so an
// unknown member next to a supported one is two data fields.

// UnmarshalTransactionBody decodes raw TransactionBody bytes.
func UnmarshalTransactionBody(data []byte) (*TransactionBody, error) {
	body := &TransactionBody{}
	var dataField uint32

	err := decodeMessage(data, "TransactionBody", func(f wire.Field, seen wire.FieldSet) error {
		num := f.Tag.Number
		switch {
		case num == FieldTransactionID:
			msg, err := singularMessage(seen, f)
			if err != nil {
				return err
			}
			body.TransactionID, err = unmarshalTransactionID(msg)
			return err

		case num == FieldNodeAccountID:
			msg, err := singularMessage(seen, f)
			if err != nil {
				return err
			}
			body.NodeAccountID, err = unmarshalAccountID(msg)
			return err

		case num == FieldTransactionFee:
			if err := seen.Once(f); err != nil {
				return err
			}
			var err error
			body.TransactionFee, err = f.Uint64()
			return err

		case num == FieldTransactionValidDuration:
			msg, err := singularMessage(seen, f)
			if err != nil {
				return err
			}
			body.ValidDurationSeconds, err = unmarshalDuration(msg)
			return err

		case num == FieldMemo:
			msg, err := singularMessage(seen, f)
			if err != nil {
				return err
			}
			body.Memo = string(msg)
			return nil

		case isIgnoredField(num):
			return nil
		}

		if dataField != 0 {
			return ErrDecode.Wrapf("data fields %d and %d are both set", dataField, num)
		}
		dataField = num
		return body.unmarshalData(f)
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (b *TransactionBody) unmarshalData(f wire.Field) error {
	msg, err := f.Message()
	if err != nil {
		return err
	}

	switch f.Tag.Number {
	case FieldContractCall:
		b.Data = BodyContractCall
		b.ContractCall, err = unmarshalContractCall(msg)
	case FieldCryptoCreateAccount:
		b.Data = BodyCryptoCreate
		b.CryptoCreate, err = unmarshalCryptoCreate(msg)
	case FieldCryptoTransfer:
		b.Data = BodyCryptoTransfer
		b.CryptoTransfer, err = unmarshalCryptoTransfer(msg)
	case FieldCryptoUpdateAccount:
		b.Data = BodyCryptoUpdate
		b.CryptoUpdate, err = unmarshalCryptoUpdate(msg)
	case FieldTokenMint:
		b.Data = BodyTokenMint
		b.TokenMint, err = unmarshalTokenMint(msg)
	case FieldTokenBurn:
		b.Data = BodyTokenBurn
		b.TokenBurn, err = unmarshalTokenBurn(msg)
	case FieldTokenAssociate:
		b.Data = BodyTokenAssociate
		b.TokenAssociate, err = unmarshalTokenAssociation(msg, "TokenAssociateTransactionBody")
	case FieldTokenDissociate:
		b.Data = BodyTokenDissociate
		b.TokenDissociate, err = unmarshalTokenAssociation(msg, "TokenDissociateTransactionBody")
	default:
		b.Data = BodyUnsupported
		b.UnsupportedField = f.Tag.Number
	}
	return err
}

func decodeMessage(data []byte, name string, visit func(f wire.Field, seen wire.FieldSet) error) error {
	seen := wire.FieldSet{}
	if err := wire.Walk(data, func(f wire.Field) error { return visit(f, seen) }); err != nil {
		return errorsmod.Wrap(err, name)
	}
	return nil
}

func singularMessage(seen wire.FieldSet, f wire.Field) ([]byte, error) {
	if err := seen.Once(f); err != nil {
		return nil, err
	}
	return f.Message()
}

// exclusive fails when two members of the same oneof are present.
func exclusive(seen wire.FieldSet, a, b uint32) error {
	if seen.Has(a) && seen.Has(b) {
		return ErrDecode.Wrapf("oneof fields %d and %d are both set", a, b)
	}
	return nil
}

func entityPart(f wire.Field) (uint64, error) {
	v, err := f.Int64()
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, ErrInvalidEntityID.Wrapf("field %d is negative: %d", f.Tag.Number, v)
	}
	return uint64(v), nil
}

// unmarshalEntity decodes the shard (1), realm (2) and number (3) shared by
// AccountID, TokenID and the numbered form of ContractID. Other fields go to
// extra when it is not nil.
func unmarshalEntity(data []byte, name string, extra func(f wire.Field, seen wire.FieldSet) error) (EntityID, error) {
	var id EntityID
	err := decodeMessage(data, name, func(f wire.Field, seen wire.FieldSet) error {
		var dst *uint64
		switch f.Tag.Number {
		case 1:
			dst = &id.Shard
		case 2:
			dst = &id.Realm
		case 3:
			dst = &id.Num
		default:
			if extra != nil {
				return extra(f, seen)
			}
			return nil
		}
		if err := seen.Once(f); err != nil {
			return err
		}
		v, err := entityPart(f)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	})
	return id, err
}

// AccountID:
//
//	1: int64 shardNum
//	2: int64 realmNum
//	3: int64 accountNum
//	4: bytes alias (rejected)
func unmarshalAccountID(data []byte) (EntityID, error) {
	return unmarshalEntity(data, "AccountID", func(f wire.Field, _ wire.FieldSet) error {
		if f.Tag.Number == 4 {
			return ErrUnsupportedBody.Wrap("account alias")
		}
		return nil
	})
}

func unmarshalTokenID(data []byte) (EntityID, error) {
	return unmarshalEntity(data, "TokenID", nil)
}

// ContractID:
//
//	1: int64 shardNum
//	2: int64 realmNum
//	3: int64 contractNum (oneof contract)
//	4: bytes evm_address (oneof contract)
func unmarshalContractID(data []byte) (ContractID, error) {
	var cid ContractID
	err := decodeMessage(data, "ContractID", func(f wire.Field, seen wire.FieldSet) error {
		num := f.Tag.Number
		if num < 1 || num > 4 {
			return nil
		}
		if err := seen.Once(f); err != nil {
			return err
		}
		if err := exclusive(seen, 3, 4); err != nil {
			return err
		}

		var err error
		switch num {
		case 1:
			cid.Shard, err = entityPart(f)
		case 2:
			cid.Realm, err = entityPart(f)
		case 3:
			cid.Kind = ContractIDNum
			cid.Num, err = entityPart(f)
		case 4:
			cid.Kind = ContractIDEVMAddress
			cid.EVMAddress, err = f.Message()
		}
		return err
	})
	if err != nil {
		return ContractID{}, err
	}
	return cid, nil
}

// Timestamp and Duration:
//
//	1: int64 seconds
//	2: int32 nanos
func unmarshalTimestamp(data []byte) (Timestamp, error) {
	var ts Timestamp
	err := decodeMessage(data, "Timestamp", func(f wire.Field, seen wire.FieldSet) error {
		var err error
		switch f.Tag.Number {
		case 1:
			if err = seen.Once(f); err == nil {
				ts.Seconds, err = f.Int64()
			}
		case 2:
			if err = seen.Once(f); err == nil {
				ts.Nanos, err = f.Int32()
			}
		}
		return err
	})
	return ts, err
}

func unmarshalDuration(data []byte) (int64, error) {
	ts, err := unmarshalTimestamp(data)
	if err != nil {
		return 0, errorsmod.Wrap(err, "Duration")
	}
	return ts.Seconds, nil
}

// wrapperValue returns field 1 of a well-known wrapper message. An absent
// value decodes as the zero value of wt.
func wrapperValue(data []byte, name string, wt wire.WireType) (wire.Field, error) {
	value := wire.Field{Tag: wire.FieldTag{Number: wire.WrapperValueField, WireType: wt}}
	err := decodeMessage(data, name, func(f wire.Field, seen wire.FieldSet) error {
		if f.Tag.Number != wire.WrapperValueField {
			return nil
		}
		if err := seen.Once(f); err != nil {
			return err
		}
		if err := f.Expect(wt); err != nil {
			return err
		}
		value = f
		return nil
	})
	return value, err
}

func unmarshalBoolValue(data []byte) (bool, error) {
	f, err := wrapperValue(data, "BoolValue", wire.Varint)
	if err != nil {
		return false, err
	}
	return f.Bool()
}

func unmarshalInt32Value(data []byte) (int32, error) {
	f, err := wrapperValue(data, "Int32Value", wire.Varint)
	if err != nil {
		return 0, err
	}
	return f.Int32()
}

func unmarshalUInt32Value(data []byte) (uint32, error) {
	f, err := wrapperValue(data, "UInt32Value", wire.Varint)
	if err != nil {
		return 0, err
	}
	return f.Uint32()
}

func unmarshalUInt64Value(data []byte) (uint64, error) {
	f, err := wrapperValue(data, "UInt64Value", wire.Varint)
	if err != nil {
		return 0, err
	}
	return f.Uint64()
}

// TransactionID:
//
//	1: Timestamp transactionValidStart
//	2: AccountID accountID
//	3: bool scheduled
//	4: int32 nonce
func unmarshalTransactionID(data []byte) (TransactionID, error) {
	var id TransactionID
	err := decodeMessage(data, "TransactionID", func(f wire.Field, seen wire.FieldSet) error {
		if f.Tag.Number < 1 || f.Tag.Number > 4 {
			return nil
		}
		if err := seen.Once(f); err != nil {
			return err
		}

		var err error
		switch f.Tag.Number {
		case 1:
			var msg []byte
			if msg, err = f.Message(); err == nil {
				id.ValidStart, err = unmarshalTimestamp(msg)
			}
		case 2:
			var msg []byte
			if msg, err = f.Message(); err == nil {
				id.AccountID, err = unmarshalAccountID(msg)
			}
		case 3:
			id.Scheduled, err = f.Bool()
		case 4:
			id.Nonce, err = f.Int32()
		}
		return err
	})
	return id, err
}
