package tokens

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/types"
)

var _ types.TokenLookup = (*Table)(nil)

// Info is the metadata of one token.
type Info = types.TokenInfo

// Table is an immutable token metadata index keyed by entity id and by EVM
// address. Every entry is reachable through its long-zero address as well
// as any explicit EVM address it carries.
type Table struct {
	entries []Info
	byID    map[types.EntityID]int
	byAddr  map[common.Address]int
}

// NewTable validates entries and indexes them. Duplicate ids or addresses
// are rejected.
func NewTable(entries ...Info) (*Table, error) {
	t := &Table{
		entries: make([]Info, 0, len(entries)),
		byID:    make(map[types.EntityID]int, len(entries)),
		byAddr:  make(map[common.Address]int, 2*len(entries)),
	}

	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if _, ok := t.byID[e.ID]; ok {
			return nil, types.ErrInvalidToken.Wrapf("duplicate token id %s", e.ID)
		}

		idx := len(t.entries)
		t.entries = append(t.entries, e)
		t.byID[e.ID] = idx

		if addr, ok := e.ID.LongZeroAddress(); ok {
			if err := t.indexAddress(addr, idx); err != nil {
				return nil, err
			}
		}
		if e.EVMAddress != (common.Address{}) {
			if err := t.indexAddress(e.EVMAddress, idx); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

func (t *Table) indexAddress(addr common.Address, idx int) error {
	if prev, ok := t.byAddr[addr]; ok && prev != idx {
		return types.ErrInvalidToken.Wrapf("address %s maps to %s and %s", addr.Hex(), t.entries[prev].ID, t.entries[idx].ID)
	}
	t.byAddr[addr] = idx
	return nil
}

// ByID implements types.TokenLookup.
func (t *Table) ByID(id types.EntityID) (Info, bool) {
	idx, ok := t.byID[id]
	if !ok {
		return Info{}, false
	}
	return t.entries[idx], true
}

// ByEVMAddress implements types.TokenLookup.
func (t *Table) ByEVMAddress(addr common.Address) (Info, bool) {
	idx, ok := t.byAddr[addr]
	if !ok {
		return Info{}, false
	}
	return t.entries[idx], true
}

// Entries returns a copy of the table contents in insertion order.
func (t *Table) Entries() []Info {
	out := make([]Info, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of tokens.
func (t *Table) Len() int { return len(t.entries) }
