package types

import (
	"fmt"
)

// Timestamp is a google.protobuf.Timestamp-shaped point in time.
type Timestamp struct {
	Seconds int64
	Nanos   int32
}

// TransactionID identifies the paying account and the valid start.
type TransactionID struct {
	ValidStart Timestamp
	AccountID  EntityID
	Scheduled  bool
	Nonce      int32
}

// TransactionBody is the decoded subset of a HAPI TransactionBody.
//
// Exactly one of the body pointers is set when Data names a supported
// variant; Data is BodyUnsupported with UnsupportedField set otherwise.
type TransactionBody struct {
	TransactionID        TransactionID
	NodeAccountID        EntityID
	TransactionFee       uint64
	ValidDurationSeconds int64
	Memo                 string

	Data             BodyKind
	UnsupportedField uint32

	ContractCall    *ContractCallBody
	CryptoCreate    *CryptoCreateBody
	CryptoTransfer  *CryptoTransferBody
	CryptoUpdate    *CryptoUpdateBody
	TokenMint       *TokenMintBody
	TokenBurn       *TokenBurnBody
	TokenAssociate  *TokenAssociationBody
	TokenDissociate *TokenAssociationBody
}

// Operator returns the paying account.
func (b *TransactionBody) Operator() EntityID {
	return b.TransactionID.AccountID
}

// AccountAmount is one leg of a transfer list.
type AccountAmount struct {
	AccountID  EntityID
	Amount     int64
	IsApproval bool
}

// TokenTransferList moves one token between accounts.
type TokenTransferList struct {
	Token            EntityID
	Transfers        []AccountAmount
	NFTTransfers     int
	ExpectedDecimals *uint32
}

// CryptoTransferBody is a cryptoTransfer data variant.
type CryptoTransferBody struct {
	Transfers      []AccountAmount
	TokenTransfers []TokenTransferList
}

// StakedIDKind tags the staked_id oneof.
type StakedIDKind uint8

const (
	StakedNone StakedIDKind = iota
	StakedAccount
	StakedNode
)

// StakedID is the stake target of a create or update.
type StakedID struct {
	Kind    StakedIDKind
	Account EntityID
	Node    int64
}

// IsSet reports whether a stake target is present.
func (s StakedID) IsSet() bool {
	return s.Kind != StakedNone
}

// IsUnstake reports whether the target is the unstake sentinel: account
// 0.0.0 or node -1.
func (s StakedID) IsUnstake() bool {
	switch s.Kind {
	case StakedAccount:
		return s.Account.IsZero()
	case StakedNode:
		return s.Node == UnstakeNodeID
	default:
		return false
	}
}

func (s StakedID) String() string {
	switch s.Kind {
	case StakedAccount:
		return s.Account.String()
	case StakedNode:
		return fmt.Sprintf("Node %d", s.Node)
	default:
		return "-"
	}
}

// CryptoUpdateBody is a cryptoUpdateAccount data variant. Optional fields
// are nil when absent. The account memo value is not materialized here; see
// wire.AccountMemoPath.
type CryptoUpdateBody struct {
	AccountIDToUpdate             *EntityID
	HasKey                        bool
	ProxyAccountID                *EntityID
	ProxyFraction                 *int32
	SendRecordThreshold           *uint64
	ReceiveRecordThreshold        *uint64
	AutoRenewPeriod               *int64
	ExpirationTime                *Timestamp
	ReceiverSigRequired           *bool
	HasMemo                       bool
	MaxAutomaticTokenAssociations *int32
	StakedID                      StakedID
	DeclineReward                 *bool
}

// CryptoCreateBody is a cryptoCreateAccount data variant.
type CryptoCreateBody struct {
	HasKey                        bool
	InitialBalance                uint64
	ReceiverSigRequired           bool
	AutoRenewPeriod               *int64
	Memo                          string
	MaxAutomaticTokenAssociations int32
	StakedID                      StakedID
	DeclineReward                 bool
	HasAlias                      bool
}

// ContractCallBody is a contractCall data variant.
type ContractCallBody struct {
	ContractID         ContractID
	Gas                int64
	Amount             int64
	FunctionParameters []byte
}

// TokenMintBody is a tokenMint data variant.
type TokenMintBody struct {
	Token    EntityID
	Amount   uint64
	Metadata int
}

// TokenBurnBody is a tokenBurn data variant.
type TokenBurnBody struct {
	Token         EntityID
	Amount        uint64
	SerialNumbers int
}

// TokenAssociationBody is a tokenAssociate or tokenDissociate data variant.
type TokenAssociationBody struct {
	Account *EntityID
	Tokens  []EntityID
}
