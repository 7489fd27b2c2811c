package keeper

import (
	"strconv"

	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/format"
	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/types"
)

func (k Keeper) classifyAssociation(ctx *types.SigningContext, kind types.TransactionType, body *types.TransactionBody, a *types.TokenAssociationBody) error {
	if err := a.ValidateBasic(); err != nil {
		return err
	}

	ctx.Type = kind
	if kind == types.Associate {
		ctx.Summary = "Associate Token"
	} else {
		ctx.Summary = "Dissociate Token"
	}
	ctx.Add(types.TitleOperator, body.Operator().String())
	if a.Account != nil {
		ctx.Add(types.TitleAccount, a.Account.String())
	}
	for _, id := range a.Tokens {
		k.addToken(ctx, id)
	}
	return nil
}

func (k Keeper) classifyMint(ctx *types.SigningContext, body *types.TransactionBody) error {
	m := body.TokenMint
	amount, err := format.FormatAmount(m.Amount, 0)
	if err != nil {
		return err
	}

	ctx.Type = types.TokenMint
	ctx.Summary = "Mint Token"
	ctx.Add(types.TitleOperator, body.Operator().String())
	k.addToken(ctx, m.Token)
	ctx.Add(types.TitleAmount, amount)
	if m.Metadata > 0 {
		ctx.Add(types.TitleMetadata, strconv.Itoa(m.Metadata))
	}
	return nil
}

func (k Keeper) classifyBurn(ctx *types.SigningContext, body *types.TransactionBody) error {
	b := body.TokenBurn
	amount, err := format.FormatAmount(b.Amount, 0)
	if err != nil {
		return err
	}

	ctx.Type = types.TokenBurn
	ctx.Summary = "Burn Token"
	ctx.Add(types.TitleOperator, body.Operator().String())
	k.addToken(ctx, b.Token)
	ctx.Add(types.TitleAmount, amount)
	if b.SerialNumbers > 0 {
		ctx.Add(types.TitleSerialNumbers, strconv.Itoa(b.SerialNumbers))
	}
	return nil
}

// addToken shows a known token by ticker followed by its id, and an unknown
// one by id alone.
func (k Keeper) addToken(ctx *types.SigningContext, id types.EntityID) {
	info, ok := k.tokens.ByID(id)
	if !ok {
		ctx.Add(types.TitleToken, id.String())
		return
	}
	ctx.Add(types.TitleToken, info.Ticker)
	ctx.Add(types.TitleTokenID, id.String())
}
