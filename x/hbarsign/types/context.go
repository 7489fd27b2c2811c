package types

import (
	"fmt"
)

// SigningContext is the working state of one transaction review.
//
// It is owned by a single review, cleared with Begin before classification
// starts and with Reset when the transaction is rejected, so nothing from a
// previous or rejected transaction can be observed.
type SigningContext struct {
	KeyIndex   uint32
	Type       TransactionType
	UpdateType UpdateType
	Summary    string

	// TransferFrom and TransferTo index the sender and recipient legs.
	TransferFrom int
	TransferTo   int

	Token      TokenInfo
	TokenKnown bool

	fields []Field
}

// NewSigningContext returns an empty context.
func NewSigningContext() *SigningContext {
	return &SigningContext{}
}

// Reset clears every field.
func (c *SigningContext) Reset() {
	*c = SigningContext{fields: c.fields[:0]}
	clear(c.fields[:cap(c.fields)])
}

// Begin resets the context for a new transaction signed with keyIndex and
// records the key field.
func (c *SigningContext) Begin(keyIndex uint32) {
	c.Reset()
	c.KeyIndex = keyIndex
	c.Add(TitleKey, fmt.Sprintf("#%d", keyIndex))
}

// Add appends a presentation field.
func (c *SigningContext) Add(title, value string) {
	c.fields = append(c.fields, Field{Title: title, Value: value})
}

// AddIf appends the field only when value is not empty.
func (c *SigningContext) AddIf(title, value string) {
	if value != "" {
		c.Add(title, value)
	}
}

// Fields returns the fields recorded so far.
func (c *SigningContext) Fields() []Field {
	return c.fields
}

// Review returns a copy of the presentation record that does not alias the
// context.
func (c *SigningContext) Review() *Review {
	fields := make([]Field, len(c.fields))
	copy(fields, c.fields)
	return &Review{
		Type:       c.Type,
		UpdateType: c.UpdateType,
		Summary:    c.Summary,
		KeyIndex:   c.KeyIndex,
		Fields:     fields,
	}
}
