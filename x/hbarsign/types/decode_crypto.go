package types

import (
	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/wire"
)

// CryptoTransferTransactionBody:
//
//	1: TransferList transfers
//	2: repeated TokenTransferList tokenTransfers
func unmarshalCryptoTransfer(data []byte) (*CryptoTransferBody, error) {
	b := &CryptoTransferBody{}
	err := decodeMessage(data, "CryptoTransferTransactionBody", func(f wire.Field, seen wire.FieldSet) error {
		switch f.Tag.Number {
		case 1:
			msg, err := singularMessage(seen, f)
			if err != nil {
				return err
			}
			b.Transfers, err = unmarshalTransferList(msg)
			return err
		case 2:
			msg, err := f.Message()
			if err != nil {
				return err
			}
			list, err := unmarshalTokenTransferList(msg)
			if err != nil {
				return err
			}
			b.TokenTransfers = append(b.TokenTransfers, list)
		}
		return nil
	})
	return b, err
}

// TransferList:
//
//	1: repeated AccountAmount accountAmounts
func unmarshalTransferList(data []byte) ([]AccountAmount, error) {
	var legs []AccountAmount
	err := decodeMessage(data, "TransferList", func(f wire.Field, _ wire.FieldSet) error {
		if f.Tag.Number != 1 {
			return nil
		}
		msg, err := f.Message()
		if err != nil {
			return err
		}
		leg, err := unmarshalAccountAmount(msg)
		if err != nil {
			return err
		}
		legs = append(legs, leg)
		return nil
	})
	return legs, err
}

// AccountAmount:
//
//	1: AccountID accountID
//	2: sint64 amount
//	3: bool is_approval
func unmarshalAccountAmount(data []byte) (AccountAmount, error) {
	var aa AccountAmount
	err := decodeMessage(data, "AccountAmount", func(f wire.Field, seen wire.FieldSet) error {
		var err error
		switch f.Tag.Number {
		case 1:
			var msg []byte
			if msg, err = singularMessage(seen, f); err == nil {
				aa.AccountID, err = unmarshalAccountID(msg)
			}
		case 2:
			if err = seen.Once(f); err == nil {
				aa.Amount, err = f.Sint64()
			}
		case 3:
			if err = seen.Once(f); err == nil {
				aa.IsApproval, err = f.Bool()
			}
		}
		return err
	})
	return aa, err
}

// TokenTransferList:
//
//	1: TokenID token
//	2: repeated AccountAmount transfers
//	3: repeated NftTransfer nftTransfers
//	4: UInt32Value expected_decimals
func unmarshalTokenTransferList(data []byte) (TokenTransferList, error) {
	var list TokenTransferList
	err := decodeMessage(data, "TokenTransferList", func(f wire.Field, seen wire.FieldSet) error {
		switch f.Tag.Number {
		case 1:
			msg, err := singularMessage(seen, f)
			if err != nil {
				return err
			}
			list.Token, err = unmarshalTokenID(msg)
			return err
		case 2:
			msg, err := f.Message()
			if err != nil {
				return err
			}
			leg, err := unmarshalAccountAmount(msg)
			if err != nil {
				return err
			}
			list.Transfers = append(list.Transfers, leg)
		case 3:
			if _, err := f.Message(); err != nil {
				return err
			}
			list.NFTTransfers++
		case 4:
			msg, err := singularMessage(seen, f)
			if err != nil {
				return err
			}
			decimals, err := unmarshalUInt32Value(msg)
			if err != nil {
				return err
			}
			list.ExpectedDecimals = &decimals
		}
		return nil
	})
	return list, err
}

// CryptoUpdateTransactionBody:
//
//	2: AccountID accountIDToUpdate
//	3: Key key
//	4: AccountID proxyAccountID (deprecated)
//	5: int32 proxyFraction (deprecated)
//	6: uint64 sendRecordThreshold / 11: UInt64Value wrapper (deprecated)
//	7: uint64 receiveRecordThreshold / 12: UInt64Value wrapper (deprecated)
//	8: Duration autoRenewPeriod
//	9: Timestamp expirationTime
//	10: bool receiverSigRequired / 13: BoolValue wrapper
//	14: StringValue memo (presence only)
//	15: Int32Value max_automatic_token_associations
//	16: AccountID staked_account_id / 17: int64 staked_node_id
//	18: BoolValue decline_reward
func unmarshalCryptoUpdate(data []byte) (*CryptoUpdateBody, error) {
	b := &CryptoUpdateBody{}
	err := decodeMessage(data, "CryptoUpdateTransactionBody", func(f wire.Field, seen wire.FieldSet) error {
		num := f.Tag.Number
		if num < 2 || num > 18 {
			return nil
		}
		if err := seen.Once(f); err != nil {
			return err
		}
		for _, pair := range [][2]uint32{{6, 11}, {7, 12}, {10, 13}, {16, 17}} {
			if err := exclusive(seen, pair[0], pair[1]); err != nil {
				return err
			}
		}

		switch num {
		case 5:
			v, err := f.Int32()
			b.ProxyFraction = &v
			return err
		case 6, 7:
			v, err := f.Uint64()
			b.setRecordThreshold(num == 6, v)
			return err
		case 10:
			v, err := f.Bool()
			b.ReceiverSigRequired = &v
			return err
		case 17:
			v, err := f.Int64()
			b.StakedID = StakedID{Kind: StakedNode, Node: v}
			return err
		}

		msg, err := f.Message()
		if err != nil {
			return err
		}
		switch num {
		case 2:
			var id EntityID
			id, err = unmarshalAccountID(msg)
			b.AccountIDToUpdate = &id
		case 3:
			b.HasKey = true
		case 4:
			var id EntityID
			id, err = unmarshalAccountID(msg)
			b.ProxyAccountID = &id
		case 8:
			var v int64
			v, err = unmarshalDuration(msg)
			b.AutoRenewPeriod = &v
		case 9:
			var ts Timestamp
			ts, err = unmarshalTimestamp(msg)
			b.ExpirationTime = &ts
		case 11, 12:
			var v uint64
			v, err = unmarshalUInt64Value(msg)
			b.setRecordThreshold(num == 11, v)
		case 13:
			var v bool
			v, err = unmarshalBoolValue(msg)
			b.ReceiverSigRequired = &v
		case 14:
			_, err = wrapperValue(msg, "StringValue", wire.LengthDelimited)
			b.HasMemo = true
		case 15:
			var v int32
			v, err = unmarshalInt32Value(msg)
			b.MaxAutomaticTokenAssociations = &v
		case 16:
			var id EntityID
			id, err = unmarshalAccountID(msg)
			b.StakedID = StakedID{Kind: StakedAccount, Account: id}
		case 18:
			var v bool
			v, err = unmarshalBoolValue(msg)
			b.DeclineReward = &v
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (b *CryptoUpdateBody) setRecordThreshold(send bool, v uint64) {
	if send {
		b.SendRecordThreshold = &v
	} else {
		b.ReceiveRecordThreshold = &v
	}
}

// CryptoCreateTransactionBody:
//
//	1: Key key
//	2: uint64 initialBalance
//	8: bool receiverSigRequired
//	9: Duration autoRenewPeriod
//	13: string memo
//	14: int32 max_automatic_token_associations
//	15: AccountID staked_account_id / 16: int64 staked_node_id
//	17: bool decline_reward
//	18: bytes alias
func unmarshalCryptoCreate(data []byte) (*CryptoCreateBody, error) {
	b := &CryptoCreateBody{}
	err := decodeMessage(data, "CryptoCreateTransactionBody", func(f wire.Field, seen wire.FieldSet) error {
		num := f.Tag.Number
		if num < 1 || num > 18 {
			return nil
		}
		if err := seen.Once(f); err != nil {
			return err
		}
		if err := exclusive(seen, 15, 16); err != nil {
			return err
		}

		var err error
		switch num {
		case 1:
			_, err = f.Message()
			b.HasKey = true
		case 2:
			b.InitialBalance, err = f.Uint64()
		case 8:
			b.ReceiverSigRequired, err = f.Bool()
		case 9:
			var msg []byte
			if msg, err = f.Message(); err == nil {
				var v int64
				v, err = unmarshalDuration(msg)
				b.AutoRenewPeriod = &v
			}
		case 13:
			var msg []byte
			msg, err = f.Message()
			b.Memo = string(msg)
		case 14:
			b.MaxAutomaticTokenAssociations, err = f.Int32()
		case 15:
			var msg []byte
			if msg, err = f.Message(); err == nil {
				var id EntityID
				id, err = unmarshalAccountID(msg)
				b.StakedID = StakedID{Kind: StakedAccount, Account: id}
			}
		case 16:
			var v int64
			v, err = f.Int64()
			b.StakedID = StakedID{Kind: StakedNode, Node: v}
		case 17:
			b.DeclineReward, err = f.Bool()
		case 18:
			_, err = f.Message()
			b.HasAlias = true
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}
