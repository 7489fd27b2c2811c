package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSigningContext(t *testing.T) {
	ctx := NewSigningContext()
	ctx.Begin(7)
	require.Equal(t, uint32(7), ctx.KeyIndex)
	require.Equal(t, []Field{{Title: TitleKey, Value: "#7"}}, ctx.Fields())

	ctx.Type = Update
	ctx.UpdateType = UpdateStake
	ctx.Summary = "Update Account"
	ctx.Add(TitleOperator, "0.0.1")
	ctx.AddIf(TitleMemo, "")
	ctx.AddIf(TitleAccountMemo, "hi")

	review := ctx.Review()
	require.Equal(t, "update_stake", review.TypeName())
	require.Equal(t, "Update Account", review.Summary)
	require.Len(t, review.Fields, 3)
	v, ok := review.Get(TitleAccountMemo)
	require.True(t, ok)
	require.Equal(t, "hi", v)
	_, ok = review.Get(TitleMemo)
	require.False(t, ok)

	// the review must not alias the context
	backing := ctx.Fields()[:cap(ctx.Fields())]
	ctx.Reset()
	require.Empty(t, ctx.Fields())
	require.Equal(t, Unknown, ctx.Type)
	require.Zero(t, ctx.KeyIndex)
	for _, f := range backing {
		require.Equal(t, Field{}, f)
	}
	require.Equal(t, "0.0.1", review.Fields[1].Value)

	ctx.Begin(1)
	require.Equal(t, []Field{{Title: TitleKey, Value: "#1"}}, ctx.Fields())
}

func TestReviewValues(t *testing.T) {
	r := &Review{Type: Associate, Fields: []Field{
		{Title: TitleToken, Value: "USDC"},
		{Title: TitleTokenID, Value: "0.0.1"},
		{Title: TitleToken, Value: "0.0.2"},
	}}
	require.Equal(t, "associate", r.TypeName())
	require.Equal(t, []string{"USDC", "0.0.2"}, r.Values(TitleToken))
	require.Nil(t, r.Values(TitleMemo))
}

func TestTokenInfoValidate(t *testing.T) {
	valid := TokenInfo{ID: NewEntityID(0, 0, 1), Ticker: "USDC", Name: "USD Coin", Decimals: 6}
	require.NoError(t, valid.Validate())

	bad := valid
	bad.Ticker = ""
	require.ErrorIs(t, bad.Validate(), ErrInvalidToken)

	bad = valid
	bad.Ticker = "ABCDEFGHIJKLMNOPQ"
	require.ErrorIs(t, bad.Validate(), ErrInvalidToken)

	bad = valid
	bad.Name = "a name that is much longer than thirty two bytes"
	require.ErrorIs(t, bad.Validate(), ErrInvalidToken)

	bad = valid
	bad.Decimals = 20
	require.ErrorIs(t, bad.Validate(), ErrInvalidToken)
}
