// Package coingecko provides a client for the CoinGecko markets API.
package coingecko

import (
	"os"
	"time"
)

// Config holds configuration for the CoinGecko client.
type Config struct {
	BaseURL    string        // Base URL for the API (e.g., "https://api.coingecko.com/api/v3")
	VsCurrency string        // Reference currency for prices
	Timeout    time.Duration // HTTP request timeout
}

// LoadConfig loads CoinGecko configuration from environment variables.
// Prices are requested in INR; crypto price bands elsewhere assume this unit.
func LoadConfig() Config {
	base := os.Getenv("COINGECKO_BASE_URL")
	if base == "" {
		base = "https://api.coingecko.com/api/v3"
	}
	return Config{
		BaseURL:    base,
		VsCurrency: "inr",
		Timeout:    10 * time.Second,
	}
}
