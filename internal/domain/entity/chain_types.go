package entity

import "sort"

// NetworkType defines the type for network classifications (e.g., mainnet, testnet).
type NetworkType string

// Constants for known network types.
const (
	NetworkMainnet NetworkType = "mainnet"
	NetworkTestnet NetworkType = "testnet"
)

// Network describes a chain the application knows about.
type Network struct {
	ChainID     int64       `json:"chainId" yaml:"chainId"`
	Name        string      `json:"name,omitempty" yaml:"name"`
	ShortName   string      `json:"shortName,omitempty" yaml:"shortName"`
	ExplorerURL string      `json:"explorerUrl,omitempty" yaml:"explorer"`
	InfoURL     string      `json:"infoUrl,omitempty" yaml:"infoUrl"`
	Currency    Currency    `json:"nativeCurrency" yaml:"nativeCurrency"`
	Network     NetworkType `json:"network,omitempty" yaml:"network"`
}

// Currency defines the native currency details of a chain.
type Currency struct {
	Name     string `json:"name,omitempty" yaml:"name"`
	Symbol   string `json:"symbol,omitempty" yaml:"symbol"`
	Decimals int    `json:"decimals,omitempty" yaml:"decimals"`
}

// ChainSet is a set of chain ids.
type ChainSet map[int64]struct{}

// NewChainSet builds a set from ids.
func NewChainSet(ids ...int64) ChainSet {
	set := make(ChainSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether id is in the set.
func (s ChainSet) Contains(id int64) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the members in ascending order.
func (s ChainSet) IDs() []int64 {
	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
