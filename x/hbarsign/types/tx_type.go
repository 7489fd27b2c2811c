package types

// TransactionType is the derived classification of a transaction body.
type TransactionType uint8

const (
	Unknown TransactionType = iota
	Verify
	Create
	Update
	Transfer
	Associate
	Dissociate
	TokenTransfer
	TokenMint
	TokenBurn
	ContractCall
)

var transactionTypeNames = map[TransactionType]string{
	Unknown:       "unknown",
	Verify:        "verify",
	Create:        "create",
	Update:        "update",
	Transfer:      "transfer",
	Associate:     "associate",
	Dissociate:    "dissociate",
	TokenTransfer: "token_transfer",
	TokenMint:     "token_mint",
	TokenBurn:     "token_burn",
	ContractCall:  "contract_call",
}

func (t TransactionType) String() string {
	if s, ok := transactionTypeNames[t]; ok {
		return s
	}
	return "invalid"
}

// UpdateType refines Update.
type UpdateType uint8

const (
	UpdateGeneric UpdateType = iota
	UpdateStake
	UpdateUnstake
)

func (u UpdateType) String() string {
	switch u {
	case UpdateGeneric:
		return "generic"
	case UpdateStake:
		return "stake"
	case UpdateUnstake:
		return "unstake"
	default:
		return "invalid"
	}
}

// BodyKind tags which TransactionBody data variant is populated.
type BodyKind uint8

const (
	BodyNone BodyKind = iota
	BodyContractCall
	BodyCryptoCreate
	BodyCryptoTransfer
	BodyCryptoUpdate
	BodyTokenMint
	BodyTokenBurn
	BodyTokenAssociate
	BodyTokenDissociate
	BodyUnsupported
)

func (k BodyKind) String() string {
	switch k {
	case BodyNone:
		return "none"
	case BodyContractCall:
		return "contractCall"
	case BodyCryptoCreate:
		return "cryptoCreateAccount"
	case BodyCryptoTransfer:
		return "cryptoTransfer"
	case BodyCryptoUpdate:
		return "cryptoUpdateAccount"
	case BodyTokenMint:
		return "tokenMint"
	case BodyTokenBurn:
		return "tokenBurn"
	case BodyTokenAssociate:
		return "tokenAssociate"
	case BodyTokenDissociate:
		return "tokenDissociate"
	default:
		return "unsupported"
	}
}
