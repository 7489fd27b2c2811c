package types

const (
	// ModuleName defines the module name
	ModuleName = "hbarsign"
)

// TransactionBody field numbers.
const (
	FieldTransactionID            uint32 = 1
	FieldNodeAccountID            uint32 = 2
	FieldTransactionFee           uint32 = 3
	FieldTransactionValidDuration uint32 = 4
	FieldGenerateRecord           uint32 = 5
	FieldMemo                     uint32 = 6
	FieldContractCall             uint32 = 7
	FieldCryptoCreateAccount      uint32 = 11
	FieldCryptoTransfer           uint32 = 14
	FieldCryptoUpdateAccount      uint32 = 15
	FieldTokenMint                uint32 = 37
	FieldTokenBurn                uint32 = 38
	FieldTokenAssociate           uint32 = 40
	FieldTokenDissociate          uint32 = 41
	FieldBatchKey                 uint32 = 73
	FieldMaxCustomFees            uint32 = 1001
)

const (
	// MaxMemoSize is the longest transaction or account memo the network accepts.
	MaxMemoSize = 100
	// MaxFunctionParametersSize bounds contract call parameters.
	MaxFunctionParametersSize = 1024
	// VerifyAccountFee is the fee, in tinybar, that marks a zero-value
	// transfer as an account verification.
	VerifyAccountFee = 1
	// UnstakeNodeID is the staked node id that clears a stake.
	UnstakeNodeID int64 = -1
)

// isIgnoredField reports whether num is a known TransactionBody field that
// carries no data and has no bearing on the review.
func isIgnoredField(num uint32) bool {
	switch num {
	case FieldGenerateRecord, FieldBatchKey, FieldMaxCustomFees:
		return true
	}
	return false
}
