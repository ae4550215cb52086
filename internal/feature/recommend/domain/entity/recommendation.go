package entity

import "time"

// AllocatedStock is a selected stock together with the amount assigned to it.
type AllocatedStock struct {
	Stock
	AmountInvested float64
}

// AllocatedCrypto is a selected cryptocurrency together with the amount
// assigned to it.
type AllocatedCrypto struct {
	Crypto
	AmountInvested float64
}

// Recommendation is the result of one allocation run: the selected assets,
// each carrying the identical per-asset amount, plus request metadata.
type Recommendation struct {
	Stocks      []AllocatedStock
	Cryptos     []AllocatedCrypto
	TotalAmount float64
	RiskLevel   RiskLevel
	TotalAssets int
	Timestamp   time.Time
}
