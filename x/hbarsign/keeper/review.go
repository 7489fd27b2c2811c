package keeper

import (
	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/format"
	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/types"
)

// ReviewSignPayload reviews a sign request: a little-endian key index
// followed by the raw TransactionBody.
func (k Keeper) ReviewSignPayload(payload []byte) (*types.Review, error) {
	keyIndex, raw, err := types.SplitSignPayload(payload)
	if err != nil {
		return nil, k.reject(nil, err)
	}
	return k.ReviewTransaction(keyIndex, raw)
}

// ReviewTransaction decodes and classifies raw TransactionBody bytes signed
// with keyIndex. On failure the error is types.ErrMalformedInput and no
// review is returned.
func (k Keeper) ReviewTransaction(keyIndex uint32, raw []byte) (*types.Review, error) {
	ctx := types.NewSigningContext()
	if err := k.Review(ctx, keyIndex, raw); err != nil {
		return nil, err
	}
	return ctx.Review(), nil
}

// Review decodes raw and classifies it into ctx.
func (k Keeper) Review(ctx *types.SigningContext, keyIndex uint32, raw []byte) error {
	body, err := types.UnmarshalTransactionBody(raw)
	if err != nil {
		return k.reject(ctx, err)
	}
	return k.Classify(ctx, keyIndex, body, raw)
}

// Classify validates a decoded body against the raw bytes it came from and
// records the presentation fields in ctx. ctx is reset first, and reset
// again when the transaction is rejected.
func (k Keeper) Classify(ctx *types.SigningContext, keyIndex uint32, body *types.TransactionBody, raw []byte) error {
	ctx.Begin(keyIndex)
	if err := k.classify(ctx, body, raw); err != nil {
		return k.reject(ctx, err)
	}

	review := ctx.Review()
	k.logger.Debug("transaction reviewed", "type", review.TypeName(), "key_index", keyIndex, "fields", len(review.Fields))
	k.observer.ObserveReview(review)
	return nil
}

func (k Keeper) classify(ctx *types.SigningContext, body *types.TransactionBody, raw []byte) error {
	if err := types.ValidateMemo(body.Memo); err != nil {
		return err
	}

	var err error
	switch body.Data {
	case types.BodyCryptoTransfer:
		err = k.classifyTransfer(ctx, body)
	case types.BodyCryptoCreate:
		err = k.classifyCreate(ctx, body)
	case types.BodyCryptoUpdate:
		err = k.classifyUpdate(ctx, body, raw)
	case types.BodyTokenAssociate:
		err = k.classifyAssociation(ctx, types.Associate, body, body.TokenAssociate)
	case types.BodyTokenDissociate:
		err = k.classifyAssociation(ctx, types.Dissociate, body, body.TokenDissociate)
	case types.BodyTokenMint:
		err = k.classifyMint(ctx, body)
	case types.BodyTokenBurn:
		err = k.classifyBurn(ctx, body)
	case types.BodyContractCall:
		err = k.classifyContractCall(ctx, body)
	case types.BodyNone:
		err = types.ErrUnsupportedBody.Wrap("transaction body has no data")
	default:
		err = types.ErrUnsupportedBody.Wrapf("data field %d", body.UnsupportedField)
	}
	if err != nil {
		return err
	}

	if ctx.Type != types.Verify {
		ctx.Add(types.TitleMaxFees, format.FormatTinybar(body.TransactionFee))
		ctx.AddIf(types.TitleMemo, body.Memo)
	}
	return nil
}

// reject clears ctx and collapses err into the single boundary error.
func (k Keeper) reject(ctx *types.SigningContext, err error) error {
	if ctx != nil {
		ctx.Reset()
	}
	k.logger.Debug("transaction rejected", "reason", err.Error())
	k.observer.ObserveRejection(err)
	return types.ErrMalformedInput.Wrap(err.Error())
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
