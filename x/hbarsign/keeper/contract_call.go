package keeper

import (
	"strconv"

	"github.com/TrustedSmartChain/hbarsign/precompiles/erc20"
	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/format"
	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/types"
)

func (k Keeper) classifyContractCall(ctx *types.SigningContext, body *types.TransactionBody) error {
	cc := body.ContractCall
	if err := cc.ValidateBasic(); err != nil {
		return err
	}

	selector, err := erc20.Selector(cc.FunctionParameters)
	if err != nil {
		return err
	}
	switch selector {
	case erc20.TransferSelector:
	default:
		return types.ErrInvalidContractCall.Wrapf("unsupported function selector 0x%08x", selector)
	}

	transfer, err := erc20.ParseTransferFunction(cc.FunctionParameters)
	if err != nil {
		return err
	}

	var (
		contract string
		info     types.TokenInfo
		known    bool
	)
	switch cc.ContractID.Kind {
	case types.ContractIDNum:
		id := cc.ContractID.Entity()
		contract = id.String()
		info, known = k.tokens.ByID(id)
	case types.ContractIDEVMAddress:
		addr, ok := cc.ContractID.Address()
		if !ok {
			return types.ErrInvalidContractCall.Wrapf("evm address is %d bytes", len(cc.ContractID.EVMAddress))
		}
		contract = erc20.AddressHex(addr)
		info, known = k.tokens.ByEVMAddress(addr)
	}

	ctx.Type = types.ContractCall
	ctx.Summary = "Call Contract"
	ctx.Add(types.TitleFrom, body.Operator().String())
	ctx.Add(types.TitleContract, contract)
	ctx.Add(types.TitleTo, erc20.AddressHex(transfer.To))

	if known {
		amount, err := format.AmountWithTicker(transfer.Amount[:], info.Decimals, info.Ticker)
		if err != nil {
			return err
		}
		ctx.Token, ctx.TokenKnown = info, true
		ctx.Add(types.TitleAmount, amount)
	} else {
		amount, err := erc20.WordToAmount(transfer.Amount)
		if err != nil {
			return err
		}
		ctx.Add(types.TitleRawAmount, amount)
	}

	ctx.Add(types.TitleGasLimit, strconv.FormatInt(cc.Gas, 10))
	ctx.Add(types.TitleHbarSent, format.FormatTinybar(uint64(cc.Amount)))
	return nil
}
