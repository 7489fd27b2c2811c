package types

import (
	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/wire"
)

// ContractCallTransactionBody:
//
//	1: ContractID contractID
//	2: int64 gas
//	3: int64 amount
//	4: bytes functionParameters
func unmarshalContractCall(data []byte) (*ContractCallBody, error) {
	b := &ContractCallBody{}
	err := decodeMessage(data, "ContractCallTransactionBody", func(f wire.Field, seen wire.FieldSet) error {
		num := f.Tag.Number
		if num < 1 || num > 4 {
			return nil
		}
		if err := seen.Once(f); err != nil {
			return err
		}

		var err error
		switch num {
		case 1:
			var msg []byte
			if msg, err = f.Message(); err == nil {
				b.ContractID, err = unmarshalContractID(msg)
			}
		case 2:
			b.Gas, err = f.Int64()
		case 3:
			b.Amount, err = f.Int64()
		case 4:
			b.FunctionParameters, err = f.Message()
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// TokenMintTransactionBody:
//
//	1: TokenID token
//	2: uint64 amount
//	3: repeated bytes metadata
func unmarshalTokenMint(data []byte) (*TokenMintBody, error) {
	b := &TokenMintBody{}
	err := decodeMessage(data, "TokenMintTransactionBody", func(f wire.Field, seen wire.FieldSet) error {
		var err error
		switch f.Tag.Number {
		case 1:
			var msg []byte
			if msg, err = singularMessage(seen, f); err == nil {
				b.Token, err = unmarshalTokenID(msg)
			}
		case 2:
			if err = seen.Once(f); err == nil {
				b.Amount, err = f.Uint64()
			}
		case 3:
			if _, err = f.Message(); err == nil {
				b.Metadata++
			}
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// TokenBurnTransactionBody:
//
//	1: TokenID token
//	2: uint64 amount
//	3: repeated int64 serialNumbers (packed or not)
func unmarshalTokenBurn(data []byte) (*TokenBurnBody, error) {
	b := &TokenBurnBody{}
	err := decodeMessage(data, "TokenBurnTransactionBody", func(f wire.Field, seen wire.FieldSet) error {
		var err error
		switch f.Tag.Number {
		case 1:
			var msg []byte
			if msg, err = singularMessage(seen, f); err == nil {
				b.Token, err = unmarshalTokenID(msg)
			}
		case 2:
			if err = seen.Once(f); err == nil {
				b.Amount, err = f.Uint64()
			}
		case 3:
			var n int
			if n, err = countVarints(f); err == nil {
				b.SerialNumbers += n
			}
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// countVarints counts the elements of a repeated varint field.
func countVarints(f wire.Field) (int, error) {
	switch f.Tag.WireType {
	case wire.Varint:
		return 1, nil
	case wire.LengthDelimited:
		c := wire.NewCursor(f.Bytes)
		n := 0
		for !c.Done() {
			if _, err := c.DecodeVarint(); err != nil {
				return 0, err
			}
			n++
		}
		return n, nil
	default:
		return 0, wire.ErrWireType.Wrapf("field %d: repeated varint uses %s", f.Tag.Number, f.Tag.WireType)
	}
}

// TokenAssociateTransactionBody and TokenDissociateTransactionBody:
//
//	1: AccountID account
//	2: repeated TokenID tokens
func unmarshalTokenAssociation(data []byte, name string) (*TokenAssociationBody, error) {
	b := &TokenAssociationBody{}
	err := decodeMessage(data, name, func(f wire.Field, seen wire.FieldSet) error {
		switch f.Tag.Number {
		case 1:
			msg, err := singularMessage(seen, f)
			if err != nil {
				return err
			}
			id, err := unmarshalAccountID(msg)
			if err != nil {
				return err
			}
			b.Account = &id
		case 2:
			msg, err := f.Message()
			if err != nil {
				return err
			}
			id, err := unmarshalTokenID(msg)
			if err != nil {
				return err
			}
			b.Tokens = append(b.Tokens, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}
