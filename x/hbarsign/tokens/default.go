package tokens

import (
	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/types"
)

// DefaultEntries are the mainnet tokens known out of the box.
var DefaultEntries = []Info{
	{ID: types.NewEntityID(0, 0, 1154552), Ticker: "USDC", Name: "hUSDC", Decimals: 6},
	{ID: types.NewEntityID(0, 0, 731861), Ticker: "SAUCE", Name: "SAUCE", Decimals: 6},
	{ID: types.NewEntityID(0, 0, 3716059), Ticker: "Dovu", Name: "DOVU", Decimals: 8},
	{ID: types.NewEntityID(0, 0, 4794920), Ticker: "PACK", Name: "PACK", Decimals: 6},
	{ID: types.NewEntityID(0, 0, 7893707), Ticker: "GIB", Name: "GIB", Decimals: 8},
	{ID: types.NewEntityID(0, 0, 5022567), Ticker: "hBARK", Name: "HBARK", Decimals: 0},
}

// DefaultTable returns a table of DefaultEntries followed by extra.
func DefaultTable(extra ...Info) (*Table, error) {
	entries := make([]Info, 0, len(DefaultEntries)+len(extra))
	entries = append(entries, DefaultEntries...)
	entries = append(entries, extra...)
	return NewTable(entries...)
}
