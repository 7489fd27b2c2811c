package types

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// EntityID is a shard.realm.num triple naming an account, token or contract.
type EntityID struct {
	Shard uint64
	Realm uint64
	Num   uint64
}

func NewEntityID(shard, realm, num uint64) EntityID {
	return EntityID{Shard: shard, Realm: realm, Num: num}
}

func (id EntityID) String() string {
	return fmt.Sprintf("%d.%d.%d", id.Shard, id.Realm, id.Num)
}

// IsZero reports whether the id is 0.0.0.
func (id EntityID) IsZero() bool {
	return id == EntityID{}
}

// LongZeroAddress returns the EVM address aliasing the entity: shard as 4
// big-endian bytes, then realm and num as 8 bytes each. It fails for shards
// that do not fit in 32 bits.
func (id EntityID) LongZeroAddress() (common.Address, bool) {
	var addr common.Address
	if id.Shard > math.MaxUint32 {
		return addr, false
	}
	binary.BigEndian.PutUint32(addr[0:4], uint32(id.Shard))
	binary.BigEndian.PutUint64(addr[4:12], id.Realm)
	binary.BigEndian.PutUint64(addr[12:20], id.Num)
	return addr, true
}

// ParseEntityID parses "shard.realm.num".
func ParseEntityID(s string) (EntityID, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return EntityID{}, ErrInvalidEntityID.Wrapf("%q: want shard.realm.num", s)
	}

	var v [3]uint64
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 63)
		if err != nil {
			return EntityID{}, ErrInvalidEntityID.Wrapf("%q: %s", s, err)
		}
		v[i] = n
	}
	return NewEntityID(v[0], v[1], v[2]), nil
}

// ContractIDKind tags which contract oneof variant is set.
type ContractIDKind uint8

const (
	ContractIDUnset ContractIDKind = iota
	ContractIDNum
	ContractIDEVMAddress
)

// ContractID is either a numbered contract or a raw EVM address, never both.
type ContractID struct {
	Kind       ContractIDKind
	Shard      uint64
	Realm      uint64
	Num        uint64
	EVMAddress []byte
}

// Entity returns the shard.realm.num triple of a numbered contract.
func (c ContractID) Entity() EntityID {
	return NewEntityID(c.Shard, c.Realm, c.Num)
}

// Address returns the 20-byte EVM address of an address-form contract id.
func (c ContractID) Address() (common.Address, bool) {
	if c.Kind != ContractIDEVMAddress || len(c.EVMAddress) != common.AddressLength {
		return common.Address{}, false
	}
	return common.BytesToAddress(c.EVMAddress), true
}
