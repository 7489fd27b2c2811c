package keeper_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"cosmossdk.io/log"

	"github.com/TrustedSmartChain/hbarsign/precompiles/erc20"
	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/keeper"
	tu "github.com/TrustedSmartChain/hbarsign/x/hbarsign/testutil"
	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/tokens"
	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/types"
	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/wire"
)

type recorder struct {
	reviews    []*types.Review
	rejections []error
}

func (r *recorder) ObserveReview(review *types.Review) { r.reviews = append(r.reviews, review) }

func (r *recorder) ObserveRejection(reason error) { r.rejections = append(r.rejections, reason) }

func setupKeeper(t *testing.T) (keeper.Keeper, *recorder) {
	t.Helper()
	table, err := tokens.DefaultTable()
	require.NoError(t, err)
	obs := &recorder{}
	return keeper.NewKeeper(log.NewNopLogger(), table, obs), obs
}

func field(title, value string) types.Field {
	return types.Field{Title: title, Value: value}
}

func hbarTransfer(from, to int64, amount int64) []byte {
	return tu.CryptoTransfer(tu.TransferList(
		tu.AccountAmount(tu.AccountID(0, 0, from), -amount),
		tu.AccountAmount(tu.AccountID(0, 0, to), amount),
	))
}

func transferCall(t *testing.T, to string, amount int64) []byte {
	t.Helper()
	data, err := erc20.PackTransfer(common.HexToAddress(to), big.NewInt(amount))
	require.NoError(t, err)
	return data
}

func TestReviewHbarTransfer(t *testing.T) {
	k, obs := setupKeeper(t)

	raw := tu.NewBody(1234, 100000).Data(tu.CryptoTransferField, hbarTransfer(1234, 5678, 100)).Bytes()
	review, err := k.ReviewTransaction(0, raw)
	require.NoError(t, err)

	require.Equal(t, types.Transfer, review.Type)
	require.Equal(t, "Send Hbar", review.Summary)
	require.Equal(t, []types.Field{
		field(types.TitleKey, "#0"),
		field(types.TitleOperator, "0.0.1234"),
		field(types.TitleFrom, "0.0.1234"),
		field(types.TitleTo, "0.0.5678"),
		field(types.TitleAmount, "0.000001 hbar"),
		field(types.TitleMaxFees, "0.001 hbar"),
	}, review.Fields)

	require.Len(t, obs.reviews, 1)
	require.Empty(t, obs.rejections)
}

func TestReviewTransferSenderByAmount(t *testing.T) {
	k, _ := setupKeeper(t)

	// recipient first
	raw := tu.NewBody(1, 10).Data(tu.CryptoTransferField, tu.CryptoTransfer(tu.TransferList(
		tu.AccountAmount(tu.AccountID(0, 0, 2), 250000000),
		tu.AccountAmount(tu.AccountID(0, 0, 1), -250000000),
	))).Memo("rent").Bytes()

	review, err := k.ReviewTransaction(3, raw)
	require.NoError(t, err)
	from, _ := review.Get(types.TitleFrom)
	to, _ := review.Get(types.TitleTo)
	amount, _ := review.Get(types.TitleAmount)
	memo, _ := review.Get(types.TitleMemo)
	key, _ := review.Get(types.TitleKey)
	require.Equal(t, "0.0.1", from)
	require.Equal(t, "0.0.2", to)
	require.Equal(t, "2.5 hbar", amount)
	require.Equal(t, "rent", memo)
	require.Equal(t, "#3", key)
}

func TestReviewVerify(t *testing.T) {
	k, _ := setupKeeper(t)

	raw := tu.NewBody(1234, types.VerifyAccountFee).Data(tu.CryptoTransferField, tu.CryptoTransfer(tu.TransferList(
		tu.AccountAmount(tu.AccountID(0, 0, 1234), 0),
	))).Memo("ignored").Bytes()

	review, err := k.ReviewTransaction(1, raw)
	require.NoError(t, err)
	require.Equal(t, types.Verify, review.Type)
	require.Equal(t, "Verify Account", review.Summary)
	require.Equal(t, []types.Field{
		field(types.TitleKey, "#1"),
		field(types.TitleAccount, "0.0.1234"),
	}, review.Fields)

	// the same shape with any other fee is not a verification
	raw = tu.NewBody(1234, 2).Data(tu.CryptoTransferField, tu.CryptoTransfer(tu.TransferList(
		tu.AccountAmount(tu.AccountID(0, 0, 1234), 0),
	))).Bytes()
	_, err = k.ReviewTransaction(1, raw)
	require.ErrorIs(t, err, types.ErrMalformedInput)
}

func TestReviewTokenTransfer(t *testing.T) {
	k, _ := setupKeeper(t)
	six, eight, two := uint32(6), uint32(8), uint32(2)

	usdc := func(decimals *uint32) []byte {
		return tu.NewBody(1, 10).Data(tu.CryptoTransferField, tu.CryptoTransfer(nil,
			tu.TokenTransferList(tu.TokenID(0, 0, 1154552), decimals,
				tu.AccountAmount(tu.AccountID(0, 0, 1), -1500000),
				tu.AccountAmount(tu.AccountID(0, 0, 2), 1500000),
			))).Bytes()
	}

	for _, decimals := range []*uint32{nil, &six} {
		review, err := k.ReviewTransaction(0, usdc(decimals))
		require.NoError(t, err)
		require.Equal(t, types.TokenTransfer, review.Type)
		require.Equal(t, "Send Tokens", review.Summary)
		require.Equal(t, []types.Field{
			field(types.TitleKey, "#0"),
			field(types.TitleOperator, "0.0.1"),
			field(types.TitleFrom, "0.0.1"),
			field(types.TitleTo, "0.0.2"),
			field(types.TitleAmount, "1.5 USDC"),
			field(types.TitleTokenID, "0.0.1154552"),
			field(types.TitleMaxFees, "0.0000001 hbar"),
		}, review.Fields)
	}

	_, err := k.ReviewTransaction(0, usdc(&eight))
	require.ErrorIs(t, err, types.ErrMalformedInput)

	unknown := tu.NewBody(1, 10).Data(tu.CryptoTransferField, tu.CryptoTransfer(nil,
		tu.TokenTransferList(tu.TokenID(0, 0, 42), &two,
			tu.AccountAmount(tu.AccountID(0, 0, 1), -150),
			tu.AccountAmount(tu.AccountID(0, 0, 2), 150),
		))).Bytes()
	review, err := k.ReviewTransaction(0, unknown)
	require.NoError(t, err)
	amount, _ := review.Get(types.TitleAmount)
	require.Equal(t, "1.5", amount)
}

func TestReviewCreate(t *testing.T) {
	k, _ := setupKeeper(t)

	var create []byte
	create = tu.AppendBytes(create, 1, []byte{0x12, 0x00})
	create = tu.AppendVarint(create, 2, 500000000)
	create = tu.AppendInt64(create, 16, 3)

	review, err := k.ReviewTransaction(0, tu.NewBody(7, 10).Data(tu.CryptoCreateAccountField, create).Bytes())
	require.NoError(t, err)
	require.Equal(t, types.Create, review.Type)
	require.Equal(t, "Create Account", review.Summary)
	require.Equal(t, []types.Field{
		field(types.TitleKey, "#0"),
		field(types.TitleOperator, "0.0.7"),
		field(types.TitleStakeTo, "Node 3"),
		field(types.TitleCollectRewards, "Yes"),
		field(types.TitleBalance, "5 hbar"),
		field(types.TitleMaxFees, "0.0000001 hbar"),
	}, review.Fields)

	alias := tu.AppendBytes(create, 18, []byte{0x01})
	_, err = k.ReviewTransaction(0, tu.NewBody(7, 10).Data(tu.CryptoCreateAccountField, alias).Bytes())
	require.ErrorIs(t, err, types.ErrMalformedInput)
}

func TestReviewUpdateStake(t *testing.T) {
	k, _ := setupKeeper(t)

	update := tu.AppendInt64(nil, 17, 3)
	update = tu.AppendBytes(update, 18, tu.BoolValue(true))

	review, err := k.ReviewTransaction(0, tu.NewBody(55, 10).Data(tu.CryptoUpdateAccountField, update).Bytes())
	require.NoError(t, err)
	require.Equal(t, "update_stake", review.TypeName())
	require.Equal(t, []types.Field{
		field(types.TitleKey, "#0"),
		field(types.TitleOperator, "0.0.55"),
		field(types.TitleAccount, "0.0.55"),
		field(types.TitleStakeTo, "Node 3"),
		field(types.TitleCollectRewards, "No"),
		field(types.TitleMaxFees, "0.0000001 hbar"),
	}, review.Fields)
}

func TestReviewUpdateUnstake(t *testing.T) {
	k, _ := setupKeeper(t)

	update := tu.AppendBytes(nil, 2, tu.AccountID(0, 0, 99))
	update = tu.AppendInt64(update, 17, -1)

	review, err := k.ReviewTransaction(0, tu.NewBody(55, 10).Data(tu.CryptoUpdateAccountField, update).Bytes())
	require.NoError(t, err)
	require.Equal(t, types.Update, review.Type)
	require.Equal(t, types.UpdateUnstake, review.UpdateType)
	require.Equal(t, "update_unstake", review.TypeName())
	account, _ := review.Get(types.TitleAccount)
	require.Equal(t, "0.0.99", account)
	_, ok := review.Get(types.TitleStakeTo)
	require.False(t, ok)
}

func TestReviewUpdateGeneric(t *testing.T) {
	k, _ := setupKeeper(t)

	update := tu.AppendBytes(nil, 2, tu.AccountID(0, 0, 99))
	update = tu.AppendBytes(update, 8, tu.Duration(7776000))
	update = tu.AppendBytes(update, 9, tu.Timestamp(1800000000, 0))
	update = tu.AppendBytes(update, 13, tu.BoolValue(true))
	update = tu.AppendBytes(update, 14, tu.StringValue("account memo"))
	update = tu.AppendBytes(update, 15, tu.Int32Value(10))
	update = tu.AppendInt64(update, 17, 5)

	review, err := k.ReviewTransaction(2, tu.NewBody(55, 10).Data(tu.CryptoUpdateAccountField, update).Memo("m").Bytes())
	require.NoError(t, err)
	require.Equal(t, "update_generic", review.TypeName())
	require.Equal(t, "Update Account", review.Summary)
	require.Equal(t, []types.Field{
		field(types.TitleKey, "#2"),
		field(types.TitleOperator, "0.0.55"),
		field(types.TitleUpdating, "0.0.99"),
		field(types.TitleStakeTo, "Node 5"),
		field(types.TitleAutoRenewPeriod, "90 days"),
		field(types.TitleExpiration, "1800000000"),
		field(types.TitleReceiverSigRequired, "Yes"),
		field(types.TitleMaxAutoAssociations, "10"),
		field(types.TitleAccountMemo, "account memo"),
		field(types.TitleMaxFees, "0.0000001 hbar"),
		field(types.TitleMemo, "m"),
	}, review.Fields)
}

func TestReviewUpdateAccountMemo(t *testing.T) {
	k, obs := setupKeeper(t)

	review := func(memoWrapper []byte) (*types.Review, error) {
		update := tu.AppendBytes(nil, 14, memoWrapper)
		return k.ReviewTransaction(0, tu.NewBody(1, 10).Data(tu.CryptoUpdateAccountField, update).Bytes())
	}

	// clearing the memo
	for _, wrapper := range [][]byte{nil, tu.StringValue("")} {
		r, err := review(wrapper)
		require.NoError(t, err)
		memo, ok := r.Get(types.TitleAccountMemo)
		require.True(t, ok)
		require.Empty(t, memo)
	}

	r, err := review(tu.StringValue(strings.Repeat("m", types.MaxMemoSize)))
	require.NoError(t, err)
	memo, _ := r.Get(types.TitleAccountMemo)
	require.Len(t, memo, types.MaxMemoSize)

	cases := map[string][]byte{
		"embedded NUL": tu.StringValue("a\x00b"),
		"one too long": tu.StringValue(strings.Repeat("m", types.MaxMemoSize+1)),
		"far too long": tu.StringValue(strings.Repeat("m", 3*types.MaxMemoSize)),
		"invalid utf8": tu.StringValue("\xff\xfe"),
	}
	for name, wrapper := range cases {
		t.Run(name, func(t *testing.T) {
			obs.rejections = nil
			r, err := review(wrapper)
			require.ErrorIs(t, err, types.ErrMalformedInput)
			require.Nil(t, r)
			require.Len(t, obs.rejections, 1)
			require.ErrorIs(t, obs.rejections[0], types.ErrInvalidMemo)
		})
	}
}

func TestReviewTokenAssociation(t *testing.T) {
	k, _ := setupKeeper(t)

	assoc := tu.TokenAssociation(tu.AccountID(0, 0, 1), tu.TokenID(0, 0, 1154552), tu.TokenID(0, 0, 99))
	for _, tc := range []struct {
		num     protowire.Number
		typ     types.TransactionType
		summary string
	}{
		{tu.TokenAssociateField, types.Associate, "Associate Token"},
		{tu.TokenDissociateField, types.Dissociate, "Dissociate Token"},
	} {
		review, err := k.ReviewTransaction(0, tu.NewBody(1, 10).Data(tc.num, assoc).Bytes())
		require.NoError(t, err)
		require.Equal(t, tc.typ, review.Type)
		require.Equal(t, tc.summary, review.Summary)
		require.Equal(t, []types.Field{
			field(types.TitleKey, "#0"),
			field(types.TitleOperator, "0.0.1"),
			field(types.TitleAccount, "0.0.1"),
			field(types.TitleToken, "USDC"),
			field(types.TitleTokenID, "0.0.1154552"),
			field(types.TitleToken, "0.0.99"),
			field(types.TitleMaxFees, "0.0000001 hbar"),
		}, review.Fields)
	}

	_, err := k.ReviewTransaction(0, tu.NewBody(1, 10).Data(tu.TokenAssociateField, tu.TokenAssociation(tu.AccountID(0, 0, 1))).Bytes())
	require.ErrorIs(t, err, types.ErrMalformedInput)
}

func TestReviewMintBurn(t *testing.T) {
	k, _ := setupKeeper(t)

	mint := tu.TokenMint(tu.TokenID(0, 0, 731861), 1000)
	review, err := k.ReviewTransaction(0, tu.NewBody(1, 10).Data(tu.TokenMintField, mint).Bytes())
	require.NoError(t, err)
	require.Equal(t, types.TokenMint, review.Type)
	require.Equal(t, "Mint Token", review.Summary)
	require.Equal(t, []string{"SAUCE"}, review.Values(types.TitleToken))
	amount, _ := review.Get(types.TitleAmount)
	require.Equal(t, "1000", amount)

	burn := tu.TokenBurn(tu.TokenID(0, 0, 42), 0)
	burn = tu.AppendBytes(burn, 3, []byte{0x01, 0x02})
	review, err = k.ReviewTransaction(0, tu.NewBody(1, 10).Data(tu.TokenBurnField, burn).Bytes())
	require.NoError(t, err)
	require.Equal(t, types.TokenBurn, review.Type)
	require.Equal(t, "Burn Token", review.Summary)
	require.Equal(t, []string{"0.0.42"}, review.Values(types.TitleToken))
	serials, _ := review.Get(types.TitleSerialNumbers)
	require.Equal(t, "2", serials)
}

func TestReviewContractCallUnresolved(t *testing.T) {
	k, _ := setupKeeper(t)

	params := transferCall(t, "0x1111111111111111111111111111111111111111", 1000)
	raw := tu.NewBody(1, 10).Data(tu.ContractCallField, tu.ContractCall(tu.ContractNum(0, 0, 456), 100000, 0, params)).Bytes()

	review, err := k.ReviewTransaction(0, raw)
	require.NoError(t, err)
	require.Equal(t, types.ContractCall, review.Type)
	require.Equal(t, "Call Contract", review.Summary)
	require.Equal(t, []types.Field{
		field(types.TitleKey, "#0"),
		field(types.TitleFrom, "0.0.1"),
		field(types.TitleContract, "0.0.456"),
		field(types.TitleTo, "0x1111111111111111111111111111111111111111"),
		field(types.TitleRawAmount, "1000"),
		field(types.TitleGasLimit, "100000"),
		field(types.TitleHbarSent, "0 hbar"),
		field(types.TitleMaxFees, "0.0000001 hbar"),
	}, review.Fields)
}

func TestReviewContractCallKnownToken(t *testing.T) {
	k, _ := setupKeeper(t)
	params := transferCall(t, "0x2222222222222222222222222222222222222222", 1500000)

	byNum := tu.ContractCall(tu.ContractNum(0, 0, 1154552), 50000, 100000000, params)
	addr := common.HexToAddress("0x0000000000000000000000000000000000119df8")
	byAddr := tu.ContractCall(tu.ContractEVMAddress(addr.Bytes()), 50000, 100000000, params)

	for contract, cc := range map[string][]byte{
		"0.0.1154552": byNum,
		"0x0000000000000000000000000000000000119df8": byAddr,
	} {
		review, err := k.ReviewTransaction(0, tu.NewBody(1, 10).Data(tu.ContractCallField, cc).Bytes())
		require.NoError(t, err)
		got, _ := review.Get(types.TitleContract)
		require.Equal(t, contract, got)
		amount, ok := review.Get(types.TitleAmount)
		require.True(t, ok)
		require.Equal(t, "1.5 USDC", amount)
		_, ok = review.Get(types.TitleRawAmount)
		require.False(t, ok)
		sent, _ := review.Get(types.TitleHbarSent)
		require.Equal(t, "1 hbar", sent)
	}
}

func TestReviewRejects(t *testing.T) {
	params := make([]byte, erc20.TransferCalldataSize)
	copy(params, []byte{0xa9, 0x05, 0x9c, 0xbb})
	approve := append([]byte{0x09, 0x5e, 0xa7, 0xb3}, params[4:]...)

	contractCall := func(gas, amount int64, p []byte) []byte {
		return tu.NewBody(1, 10).Data(tu.ContractCallField, tu.ContractCall(tu.ContractNum(0, 0, 456), gas, amount, p)).Bytes()
	}

	truncated := tu.NewBody(1, 10).Data(tu.CryptoTransferField, hbarTransfer(1, 2, 3)).Bytes()
	truncated = truncated[:len(truncated)-1]

	cases := []struct {
		name   string
		raw    []byte
		reason error
	}{
		{"empty body", tu.NewBody(1, 10).Bytes(), types.ErrUnsupportedBody},
		{"unsupported variant", tu.NewBody(1, 10).Data(8, nil).Bytes(), types.ErrUnsupportedBody},
		{"unknown variant", tu.NewBody(1, 10).Data(74, []byte{0x0a, 0x00}).Bytes(), types.ErrUnsupportedBody},
		{"transfer with unknown variant", tu.NewBody(1234, 100000).Data(tu.CryptoTransferField, hbarTransfer(1234, 5678, 100)).
			Data(74, []byte{0x0a, 0x00}).Bytes(), types.ErrDecode},
		{"unknown variant before transfer", tu.NewBody(1, 10).Data(74, nil).
			Data(tu.CryptoTransferField, hbarTransfer(1, 2, 3)).Bytes(), types.ErrDecode},
		{"truncated", truncated, wire.ErrTruncated},
		{"three legs", tu.NewBody(1, 10).Data(tu.CryptoTransferField, tu.CryptoTransfer(tu.TransferList(
			tu.AccountAmount(tu.AccountID(0, 0, 1), -2),
			tu.AccountAmount(tu.AccountID(0, 0, 2), 1),
			tu.AccountAmount(tu.AccountID(0, 0, 3), 1),
		))).Bytes(), types.ErrInvalidTransfer},
		{"both legs debit", tu.NewBody(1, 10).Data(tu.CryptoTransferField, tu.CryptoTransfer(tu.TransferList(
			tu.AccountAmount(tu.AccountID(0, 0, 1), -2),
			tu.AccountAmount(tu.AccountID(0, 0, 2), -1),
		))).Bytes(), types.ErrInvalidTransfer},
		{"no legs", tu.NewBody(1, 10).Data(tu.CryptoTransferField, nil).Bytes(), types.ErrInvalidTransfer},
		{"update key", tu.NewBody(1, 10).Data(tu.CryptoUpdateAccountField, tu.AppendBytes(nil, 3, []byte{0x12, 0x00})).Bytes(), types.ErrInvalidUpdate},
		{"update zero account", tu.NewBody(1, 10).Data(tu.CryptoUpdateAccountField, tu.AppendBytes(nil, 2, nil)).Bytes(), types.ErrInvalidUpdate},
		{"negative auto renew", tu.NewBody(1, 10).Data(tu.CryptoUpdateAccountField, tu.AppendBytes(nil, 8, tu.Duration(-1))).Bytes(), types.ErrInvalidUpdate},
		{"memo too long", tu.NewBody(1, 10).Data(tu.CryptoTransferField, hbarTransfer(1, 2, 3)).Memo(strings.Repeat("x", 101)).Bytes(), types.ErrInvalidMemo},
		{"memo with NUL", tu.NewBody(1, 10).Data(tu.CryptoTransferField, hbarTransfer(1, 2, 3)).Memo("a\x00").Bytes(), types.ErrInvalidMemo},
		{"call selector", contractCall(1, 0, approve), types.ErrInvalidContractCall},
		{"call short", contractCall(1, 0, params[:67]), erc20.ErrInvalidLength},
		{"call long", contractCall(1, 0, append(params, 0)), erc20.ErrInvalidLength},
		{"call no selector", contractCall(1, 0, params[:3]), types.ErrInvalidContractCall},
		{"call negative gas", contractCall(-1, 0, params), types.ErrInvalidContractCall},
		{"call negative amount", contractCall(1, -1, params), types.ErrInvalidContractCall},
		{"call without contract", tu.NewBody(1, 10).Data(tu.ContractCallField, tu.ContractCall(nil, 1, 0, params)).Bytes(), types.ErrInvalidContractCall},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			k, obs := setupKeeper(t)
			review, err := k.ReviewTransaction(0, tc.raw)
			require.ErrorIs(t, err, types.ErrMalformedInput)
			require.Nil(t, review)
			require.Empty(t, obs.reviews)
			require.Len(t, obs.rejections, 1)
			require.ErrorIs(t, obs.rejections[0], tc.reason)
		})
	}
}

func TestReviewResetsContext(t *testing.T) {
	k, _ := setupKeeper(t)
	ctx := types.NewSigningContext()

	good := tu.NewBody(1, 10).Data(tu.CryptoTransferField, hbarTransfer(1, 2, 3)).Bytes()
	require.NoError(t, k.Review(ctx, 4, good))
	require.Equal(t, types.Transfer, ctx.Type)
	require.NotEmpty(t, ctx.Fields())
	kept := ctx.Review()

	bad := tu.NewBody(1, 10).Data(tu.CryptoTransferField, hbarTransfer(1, 2, 3)).Memo(strings.Repeat("x", 101)).Bytes()
	require.ErrorIs(t, k.Review(ctx, 5, bad), types.ErrMalformedInput)
	require.Equal(t, types.Unknown, ctx.Type)
	require.Empty(t, ctx.Summary)
	require.Empty(t, ctx.Fields())
	require.Zero(t, ctx.KeyIndex)

	// earlier reviews do not alias the context
	require.Equal(t, "#4", kept.Fields[0].Value)

	verify := tu.NewBody(9, types.VerifyAccountFee).Data(tu.CryptoTransferField, tu.CryptoTransfer(tu.TransferList(
		tu.AccountAmount(tu.AccountID(0, 0, 9), 0),
	))).Bytes()
	require.NoError(t, k.Review(ctx, 6, verify))
	require.Equal(t, []types.Field{
		field(types.TitleKey, "#6"),
		field(types.TitleAccount, "0.0.9"),
	}, ctx.Fields())
}

func TestReviewSignPayload(t *testing.T) {
	k, _ := setupKeeper(t)

	raw := tu.NewBody(1, 10).Data(tu.CryptoTransferField, hbarTransfer(1, 2, 3)).Bytes()
	review, err := k.ReviewSignPayload(append([]byte{0x07, 0x00, 0x00, 0x00}, raw...))
	require.NoError(t, err)
	require.Equal(t, uint32(7), review.KeyIndex)

	_, err = k.ReviewSignPayload([]byte{0x07})
	require.ErrorIs(t, err, types.ErrMalformedInput)
}

func TestNewKeeperDefaults(t *testing.T) {
	k := keeper.NewKeeper(log.NewNopLogger(), nil, nil)
	require.NotNil(t, k.Logger())

	// without a token table every token is unknown
	params := transferCall(t, "0x2222222222222222222222222222222222222222", 1500000)
	raw := tu.NewBody(1, 10).Data(tu.ContractCallField, tu.ContractCall(tu.ContractNum(0, 0, 1154552), 1, 0, params)).Bytes()
	review, err := k.ReviewTransaction(0, raw)
	require.NoError(t, err)
	amount, _ := review.Get(types.TitleRawAmount)
	require.Equal(t, "1500000", amount)
}

func FuzzReviewTransaction(f *testing.F) {
	f.Add(tu.NewBody(1, 10).Data(tu.CryptoTransferField, hbarTransfer(1, 2, 3)).Bytes())
	f.Add(tu.NewBody(1, 10).Data(tu.CryptoUpdateAccountField, tu.AppendBytes(nil, 14, tu.StringValue("memo"))).Bytes())
	f.Add(tu.NewBody(1, 10).Data(tu.TokenAssociateField, tu.TokenAssociation(nil, tu.TokenID(0, 0, 1))).Bytes())

	table, err := tokens.DefaultTable()
	require.NoError(f, err)
	k := keeper.NewKeeper(log.NewNopLogger(), table, nil)

	f.Fuzz(func(t *testing.T, raw []byte) {
		ctx := types.NewSigningContext()
		err := k.Review(ctx, 0, raw)
		if err != nil {
			require.ErrorIs(t, err, types.ErrMalformedInput)
			require.Empty(t, ctx.Fields())
			return
		}
		require.NotEqual(t, types.Unknown, ctx.Type)
		require.Equal(t, types.TitleKey, ctx.Fields()[0].Title)
	})
}
