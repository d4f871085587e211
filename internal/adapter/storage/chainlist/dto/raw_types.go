package chainlist_dto

// NetworkTypeRaw defines the type for network classifications (e.g., mainnet, testnet) from raw data.
type NetworkTypeRaw string

// Constants for known network types from raw data.
const (
	NetworkMainnetRaw NetworkTypeRaw = "mainnet"
	NetworkTestnetRaw NetworkTypeRaw = "testnet"
)

// ChainRaw is the subset of a Chainlist entry used for network metadata.
type ChainRaw struct {
	Name      string         `json:"name"`
	Chain     string         `json:"chain"`
	Currency  CurrencyRaw    `json:"nativeCurrency"`
	InfoURL   string         `json:"infoURL"`
	ShortName string         `json:"shortName"`
	ChainID   int64          `json:"chainId"`
	Explorers []ExplorerRaw  `json:"explorers,omitempty"`
	Network   NetworkTypeRaw `json:"network,omitempty"`
	RedFlags  []string       `json:"redFlags,omitempty"`
}

// CurrencyRaw defines the native currency details of a chain from raw data.
type CurrencyRaw struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// ExplorerRaw defines details about a block explorer for a chain from raw data.
type ExplorerRaw struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Standard string `json:"standard"`
}
