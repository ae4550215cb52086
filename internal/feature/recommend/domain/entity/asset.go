// Package entity defines the domain models for the recommend feature.
package entity

// Stock represents a single equity quote fetched from the market data provider.
// Price is in the security's market-native currency (US symbols in USD,
// .NS symbols in INR), not normalized.
type Stock struct {
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

// Crypto represents a single cryptocurrency priced in the configured
// reference currency.
type Crypto struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// Snapshot is a per-request aggregate of current market data.
// Either slice may be empty after provider failures; neither is ever nil.
// Snapshots are built fresh for each request and are never cached or persisted.
type Snapshot struct {
	Stocks  []Stock
	Cryptos []Crypto
}

// Empty reports whether both sides of the snapshot are empty,
// i.e. no market data at all is available.
func (s Snapshot) Empty() bool {
	return len(s.Stocks) == 0 && len(s.Cryptos) == 0
}
