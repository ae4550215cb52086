// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/rs/zerolog"

	"investment_backend/internal/feature/recommend/usecase"
	"investment_backend/internal/platform/externalapi/coingecko"
	"investment_backend/internal/platform/externalapi/yahoo"
	infrahttp "investment_backend/internal/platform/http"
	"investment_backend/internal/shared/ratelimiter"
)

// NewStockSource creates a fully configured Yahoo quote client with HTTP client
// and call pacing.
func NewStockSource(log zerolog.Logger) *yahoo.QuoteClient {
	cfg := yahoo.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	// 未認証エンドポイントなので控えめに: 30回/分
	limiter := ratelimiter.NewRateLimiter(30, time.Minute)
	return yahoo.NewQuoteClient(cfg, httpClient, limiter, log)
}

// NewCryptoSource creates a fully configured CoinGecko markets client with HTTP client.
func NewCryptoSource(log zerolog.Logger) *coingecko.MarketsClient {
	cfg := coingecko.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return coingecko.NewMarketsClient(cfg, httpClient, log)
}

// NewAggregator wires both provider clients into a MarketAggregator with the
// fixed symbol list and the static crypto fallback.
func NewAggregator(log zerolog.Logger) *usecase.MarketAggregator {
	return usecase.NewMarketAggregator(
		NewStockSource(log),
		NewCryptoSource(log),
		usecase.StockSymbols,
		usecase.DefaultCryptoFallback(),
		log,
	)
}
