package bns

import (
	"math/big"

	"github.com/x-xyz/bnsapi/base/ctx"
	"github.com/x-xyz/bnsapi/domain"
)

const (
	// CoinTypeBanano is the SLIP-44 coin type of banano
	CoinTypeBanano = 198
	// DefaultDomain is the namespace every BNS name lives under
	DefaultDomain = "banano-testing.cc"
)

// CoinType returns the banano coin type as the 256 bit integer ENS resolvers take
func CoinType() *big.Int {
	return big.NewInt(CoinTypeBanano)
}

// AddressBytesRecord is the raw address stored for a coin type
type AddressBytesRecord struct {
	Addr []byte `json:"addr"`
}

// IsEmpty is true for records standing in for "no address"
func (r *AddressBytesRecord) IsEmpty() bool {
	return r == nil || len(r.Addr) == 0
}

// Record is what the gateway stores for one name
type Record struct {
	// Addresses maps a coin type to a 0x prefixed hex address
	Addresses   map[string]string `json:"addresses,omitempty" bson:"addresses,omitempty"`
	Text        map[string]string `json:"text,omitempty" bson:"text,omitempty"`
	ContentHash string            `json:"contenthash,omitempty" bson:"contenthash,omitempty"`
}

// NameRecord is a fully qualified name with its record
type NameRecord struct {
	Name   string `json:"name" bson:"name"`
	Record `bson:",inline"`
}

// NameRecordMap is an ordered, read-only set of name records. It's built once and
// shared between requests without locking.
type NameRecordMap struct {
	entries []NameRecord
	index   map[string]int
}

// NewNameRecordMap keeps the given order. If a name shows up twice the first one is kept.
func NewNameRecordMap(records []NameRecord) *NameRecordMap {
	m := &NameRecordMap{
		entries: make([]NameRecord, 0, len(records)),
		index:   make(map[string]int, len(records)),
	}
	for _, r := range records {
		if _, ok := m.index[r.Name]; ok {
			continue
		}
		m.index[r.Name] = len(m.entries)
		m.entries = append(m.entries, r)
	}
	return m
}

func (m *NameRecordMap) Len() int {
	return len(m.entries)
}

func (m *NameRecordMap) Get(name string) (Record, bool) {
	idx, ok := m.index[name]
	if !ok {
		return Record{}, false
	}
	return m.entries[idx].Record, true
}

// Each walks the records in insertion order until fn returns false
func (m *NameRecordMap) Each(fn func(name string, r Record) bool) {
	for _, e := range m.entries {
		if !fn(e.Name, e.Record) {
			return
		}
	}
}

// RecordRepo resolves the address a name holds for a coin type.
// It returns domain.ErrNotFound when there is none.
type RecordRepo interface {
	AddrCoinType(c ctx.Ctx, name string, coinType *big.Int) (*AddressBytesRecord, error)
}

// RecordSource loads the name records at start up
type RecordSource interface {
	Load(c ctx.Ctx) (*NameRecordMap, error)
}

// ReverseIndex finds the name owning an address
type ReverseIndex interface {
	// DomainOf returns the name without the namespace suffix, or domain.ErrNotFound
	DomainOf(c ctx.Ctx, address domain.BananoAddress) (string, error)
	Len() int
}

// LookupUsecase is the BNS forward and reverse lookup
type LookupUsecase interface {
	Lookup(c ctx.Ctx, name string) (domain.BananoAddress, error)
	// BatchLookup maps every name to its address, or to an empty string
	BatchLookup(c ctx.Ctx, names []string) (map[string]string, error)
	ReverseLookup(c ctx.Ctx, address domain.BananoAddress) (string, error)
	// BatchReverseLookup maps every address to its name, or to an empty string
	BatchReverseLookup(c ctx.Ctx, addresses []domain.BananoAddress) (map[string]string, error)
}
