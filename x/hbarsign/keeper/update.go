package keeper

import (
	"errors"
	"strconv"

	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/format"
	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/types"
	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/wire"
)

func (k Keeper) classifyUpdate(ctx *types.SigningContext, body *types.TransactionBody, raw []byte) error {
	u := body.CryptoUpdate
	if err := u.ValidateBasic(); err != nil {
		return err
	}
	if u.AutoRenewPeriod != nil && *u.AutoRenewPeriod < 0 {
		return types.ErrInvalidUpdate.Wrapf("negative auto renew period %d", *u.AutoRenewPeriod)
	}

	memo, err := accountMemo(raw, u.HasMemo)
	if err != nil {
		return err
	}

	account := body.Operator()
	if u.AccountIDToUpdate != nil {
		account = *u.AccountIDToUpdate
	}

	ctx.Type = types.Update
	ctx.UpdateType = types.IdentifyUpdateType(u)
	ctx.Summary = "Update Account"
	ctx.Add(types.TitleOperator, body.Operator().String())

	switch ctx.UpdateType {
	case types.UpdateStake:
		ctx.Add(types.TitleAccount, account.String())
		if u.StakedID.IsSet() {
			ctx.Add(types.TitleStakeTo, u.StakedID.String())
		}
		addCollectRewards(ctx, u)

	case types.UpdateUnstake:
		ctx.Add(types.TitleAccount, account.String())
		addCollectRewards(ctx, u)

	default:
		ctx.Add(types.TitleUpdating, account.String())
		if u.StakedID.IsSet() {
			ctx.Add(types.TitleStakeTo, u.StakedID.String())
		}
		addCollectRewards(ctx, u)
		if u.AutoRenewPeriod != nil {
			ctx.Add(types.TitleAutoRenewPeriod, format.FormatDuration(uint64(*u.AutoRenewPeriod)))
		}
		if u.ExpirationTime != nil {
			ctx.Add(types.TitleExpiration, strconv.FormatInt(u.ExpirationTime.Seconds, 10))
		}
		if u.ReceiverSigRequired != nil {
			ctx.Add(types.TitleReceiverSigRequired, yesNo(*u.ReceiverSigRequired))
		}
		if u.MaxAutomaticTokenAssociations != nil {
			ctx.Add(types.TitleMaxAutoAssociations, strconv.FormatInt(int64(*u.MaxAutomaticTokenAssociations), 10))
		}
		if u.HasMemo {
			ctx.Add(types.TitleAccountMemo, memo)
		}
	}
	return nil
}

func addCollectRewards(ctx *types.SigningContext, u *types.CryptoUpdateBody) {
	if u.DeclineReward != nil {
		ctx.Add(types.TitleCollectRewards, yesNo(!*u.DeclineReward))
	}
}

// accountMemo reads the account memo straight from the raw bytes, since the
// decoded body only records its presence. An empty StringValue has no value
// field, so a memo that is present but not found is the empty memo.
func accountMemo(raw []byte, present bool) (string, error) {
	var buf [types.MaxMemoSize + 1]byte
	n, err := wire.ExtractNestedString(raw, wire.AccountMemoField, buf[:])
	switch {
	case errors.Is(err, wire.ErrFieldNotFound):
		return "", nil
	case err != nil:
		return "", err
	case !present:
		return "", types.ErrInvalidMemo.Wrap("account memo found in raw bytes but not decoded")
	}

	// the copy stops at NUL or at the buffer end; either hides signed bytes
	full, err := wire.ExtractPath(raw, wire.AccountMemoPath)
	if err != nil {
		return "", err
	}
	if len(full) != n {
		return "", types.ErrInvalidMemo.Wrapf("account memo is %d bytes, %d displayable", len(full), n)
	}

	memo := string(buf[:n])
	if err := types.ValidateMemo(memo); err != nil {
		return "", err
	}
	return memo, nil
}
