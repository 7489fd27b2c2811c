package types

import (
	"fmt"
)

// Presentation titles.
const (
	TitleKey                 = "With key"
	TitleOperator            = "Operator"
	TitleAccount             = "Account"
	TitleFrom                = "From"
	TitleTo                  = "To"
	TitleAmount              = "Amount"
	TitleRawAmount           = "Raw token amount"
	TitleBalance             = "Balance"
	TitleToken               = "Token"
	TitleTokenID             = "Token ID"
	TitleContract            = "Contract"
	TitleGasLimit            = "Gas limit"
	TitleHbarSent            = "HBAR sent"
	TitleUpdating            = "Updating"
	TitleStakeTo             = "Stake to"
	TitleCollectRewards      = "Collect rewards?"
	TitleAutoRenewPeriod     = "Auto renew period"
	TitleExpiration          = "Account expires"
	TitleReceiverSigRequired = "Receiver signature required?"
	TitleMaxAutoAssociations = "Max auto token association"
	TitleAccountMemo         = "Account memo"
	TitleMetadata            = "Metadata entries"
	TitleSerialNumbers       = "Serial numbers"
	TitleMaxFees             = "Max fees"
	TitleMemo                = "Memo"
)

// Field is one (title, value) pair shown before signing.
type Field struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// Review is the validated presentation record of one transaction. Every
// value in it has passed validation.
type Review struct {
	Type       TransactionType `json:"-"`
	UpdateType UpdateType      `json:"-"`
	Summary    string          `json:"summary"`
	KeyIndex   uint32          `json:"key_index"`
	Fields     []Field         `json:"fields"`
}

// TypeName is the transaction type, refined by the update subtype.
func (r *Review) TypeName() string {
	if r.Type == Update {
		return fmt.Sprintf("%s_%s", r.Type, r.UpdateType)
	}
	return r.Type.String()
}

// Get returns the value of the first field with the given title.
func (r *Review) Get(title string) (string, bool) {
	for _, f := range r.Fields {
		if f.Title == title {
			return f.Value, true
		}
	}
	return "", false
}

// Values returns every value recorded under title, in order.
func (r *Review) Values(title string) []string {
	var out []string
	for _, f := range r.Fields {
		if f.Title == title {
			out = append(out, f.Value)
		}
	}
	return out
}
