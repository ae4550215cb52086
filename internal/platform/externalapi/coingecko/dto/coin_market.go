package dto

// CoinMarket is one element of the /coins/markets response,
// ordered by descending market capitalization by the provider.
type CoinMarket struct {
	Name         string  `json:"name"`
	CurrentPrice float64 `json:"current_price"`
	Image        string  `json:"image"`
}
