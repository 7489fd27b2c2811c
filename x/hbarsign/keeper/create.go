package keeper

import (
	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/format"
	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/types"
)

func (k Keeper) classifyCreate(ctx *types.SigningContext, body *types.TransactionBody) error {
	c := body.CryptoCreate
	if c.HasAlias {
		return types.ErrUnsupportedBody.Wrap("account create with alias")
	}
	if err := types.ValidateMemo(c.Memo); err != nil {
		return err
	}

	ctx.Type = types.Create
	ctx.Summary = "Create Account"
	ctx.Add(types.TitleOperator, body.Operator().String())
	if c.StakedID.IsSet() {
		ctx.Add(types.TitleStakeTo, c.StakedID.String())
	}
	ctx.Add(types.TitleCollectRewards, yesNo(!c.DeclineReward))
	ctx.Add(types.TitleBalance, format.FormatTinybar(c.InitialBalance))
	ctx.AddIf(types.TitleAccountMemo, c.Memo)
	return nil
}
