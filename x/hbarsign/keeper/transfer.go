package keeper

import (
	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/format"
	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/types"
)

func (k Keeper) classifyTransfer(ctx *types.SigningContext, body *types.TransactionBody) error {
	t := body.CryptoTransfer
	if err := t.ValidateBasic(); err != nil {
		return err
	}

	switch {
	case len(t.Transfers) == 1 && t.Transfers[0].Amount == 0 && body.TransactionFee == types.VerifyAccountFee:
		ctx.Type = types.Verify
		ctx.Summary = "Verify Account"
		ctx.Add(types.TitleAccount, t.Transfers[0].AccountID.String())
		return nil

	case len(t.Transfers) == 2:
		from, to, err := transferLegs(ctx, t.Transfers)
		if err != nil {
			return err
		}
		ctx.Type = types.Transfer
		ctx.Summary = "Send Hbar"
		ctx.Add(types.TitleOperator, body.Operator().String())
		ctx.Add(types.TitleFrom, from.AccountID.String())
		ctx.Add(types.TitleTo, to.AccountID.String())
		ctx.Add(types.TitleAmount, format.FormatTinybar(uint64(to.Amount)))
		return nil

	case len(t.TokenTransfers) == 1:
		list := t.TokenTransfers[0]
		from, to, err := transferLegs(ctx, list.Transfers)
		if err != nil {
			return err
		}
		amount, err := k.tokenAmount(ctx, list, uint64(to.Amount))
		if err != nil {
			return err
		}
		ctx.Type = types.TokenTransfer
		ctx.Summary = "Send Tokens"
		ctx.Add(types.TitleOperator, body.Operator().String())
		ctx.Add(types.TitleFrom, from.AccountID.String())
		ctx.Add(types.TitleTo, to.AccountID.String())
		ctx.Add(types.TitleAmount, amount)
		ctx.Add(types.TitleTokenID, list.Token.String())
		return nil
	}

	return types.ErrInvalidTransfer.Wrapf("%d hbar legs and %d token lists is not a supported transfer", len(t.Transfers), len(t.TokenTransfers))
}

// transferLegs picks the sender and recipient of a two-leg transfer. Leg 0
// sends unless its amount is positive.
func transferLegs(ctx *types.SigningContext, legs []types.AccountAmount) (from, to types.AccountAmount, err error) {
	ctx.TransferFrom, ctx.TransferTo = 0, 1
	if legs[0].Amount > 0 {
		ctx.TransferFrom, ctx.TransferTo = 1, 0
	}

	from, to = legs[ctx.TransferFrom], legs[ctx.TransferTo]
	if to.Amount < 0 {
		return from, to, types.ErrInvalidTransfer.Wrapf("both legs debit: %d and %d", legs[0].Amount, legs[1].Amount)
	}
	return from, to, nil
}

// tokenAmount scales a token amount. Known tokens use the table decimals and
// ticker; expected_decimals must agree with them when both are present.
func (k Keeper) tokenAmount(ctx *types.SigningContext, list types.TokenTransferList, amount uint64) (string, error) {
	info, ok := k.tokens.ByID(list.Token)
	if !ok {
		var decimals uint32
		if list.ExpectedDecimals != nil {
			decimals = *list.ExpectedDecimals
		}
		return format.FormatAmount(amount, decimals)
	}

	if list.ExpectedDecimals != nil && *list.ExpectedDecimals != info.Decimals {
		return "", types.ErrInvalidAmount.Wrapf("%s: expected %d decimals, token has %d", list.Token, *list.ExpectedDecimals, info.Decimals)
	}
	ctx.Token, ctx.TokenKnown = info, true

	s, err := format.FormatAmount(amount, info.Decimals)
	if err != nil {
		return "", err
	}
	return s + " " + info.Ticker, nil
}
