// Package usecase implements the business logic for investment recommendations.
package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"investment_backend/internal/feature/recommend/domain/entity"
)

// perSymbolTimeout は銘柄ごとのクオート取得に許す最大時間です。
// 暗号資産側の10秒タイムアウトと合わせ、リクエスト全体のテールレイテンシを抑えます。
const perSymbolTimeout = 5 * time.Second

// StockSymbols はクオートを取得する固定の銘柄リストです（米国市場とインド市場）。
var StockSymbols = []string{"AAPL", "GOOGL", "TSLA", "TCS.NS", "INFY.NS", "RELIANCE.NS"}

// DefaultCryptoFallback is returned in place of live crypto data when the
// markets provider is entirely unavailable. Indicative prices in the reference
// currency; deliberately nonempty so Medium/High risk requests still see the
// large-cap coins. The equity side has no such fallback and degrades to empty.
func DefaultCryptoFallback() []entity.Crypto {
	return []entity.Crypto{
		{Name: "Bitcoin", Price: 2500000, Image: "https://assets.coingecko.com/coins/images/1/large/bitcoin.png"},
		{Name: "Ethereum", Price: 200000, Image: "https://assets.coingecko.com/coins/images/279/large/ethereum.png"},
	}
}

// StockQuoteSource は1銘柄のクオートを取得するデータソースのインターフェイスです。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type StockQuoteSource interface {
	Quote(ctx context.Context, symbol string) (entity.Stock, error)
}

// CryptoMarketSource は時価総額上位の暗号資産リストを取得するデータソースのインターフェイスです。
type CryptoMarketSource interface {
	TopByMarketCap(ctx context.Context, limit int) ([]entity.Crypto, error)
}

// MarketAggregator はふたつの外部データソースから市場スナップショットを組み立てます。
// 各ソースの失敗はここで吸収され、FetchSnapshot がエラーを返すことはありません。
type MarketAggregator struct {
	stocks  StockQuoteSource
	cryptos CryptoMarketSource
	symbols []string

	// cryptoFallback is the per-source failure policy for the crypto side:
	// nil means degrade to an empty list (like the equity side), a non-nil
	// list is returned verbatim when the provider call fails.
	cryptoFallback []entity.Crypto
	cryptoLimit    int

	log zerolog.Logger
}

// NewMarketAggregator は新しい MarketAggregator を作成します。
// fallback には暗号資産ソースが完全に失敗した場合の代替リストを渡します（nil で空リストに縮退）。
func NewMarketAggregator(stocks StockQuoteSource, cryptos CryptoMarketSource, symbols []string, fallback []entity.Crypto, log zerolog.Logger) *MarketAggregator {
	return &MarketAggregator{
		stocks:         stocks,
		cryptos:        cryptos,
		symbols:        symbols,
		cryptoFallback: fallback,
		cryptoLimit:    5,
		log:            log.With().Str("component", "market_aggregator").Logger(),
	}
}

// quoteResult は銘柄ごとの取得結果です。失敗した銘柄も理由付きで保持し、
// 最終的な射影の段階で落とします。
type quoteResult struct {
	symbol string
	stock  entity.Stock
	err    error
}

// FetchSnapshot は株式と暗号資産の取得を並行して実行し、両方の完了を待って
// スナップショットを返します。どちらかが全滅しても空（または代替）リストに
// 縮退するだけで、エラーにはなりません。
func (a *MarketAggregator) FetchSnapshot(ctx context.Context) entity.Snapshot {
	var (
		wg      sync.WaitGroup
		stocks  []entity.Stock
		cryptos []entity.Crypto
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		stocks = a.fetchStocks(ctx)
	}()
	go func() {
		defer wg.Done()
		cryptos = a.fetchCryptos(ctx)
	}()
	wg.Wait()

	return entity.Snapshot{Stocks: stocks, Cryptos: cryptos}
}

// fetchStocks は全銘柄のクオートを並行して取得します。
// 失敗した銘柄はログに残して結果から落とし、残りは入力リストの順序を保ちます。
func (a *MarketAggregator) fetchStocks(ctx context.Context) []entity.Stock {
	results := make([]quoteResult, len(a.symbols))

	var wg sync.WaitGroup
	for i, symbol := range a.symbols {
		wg.Add(1)
		go func(i int, symbol string) {
			defer wg.Done()

			qctx, cancel := context.WithTimeout(ctx, perSymbolTimeout)
			defer cancel()

			stock, err := a.stocks.Quote(qctx, symbol)
			results[i] = quoteResult{symbol: symbol, stock: stock, err: err}
		}(i, symbol)
	}
	wg.Wait()

	// 失敗した銘柄を落とす射影。順序はresultsのインデックスで保たれている。
	stocks := make([]entity.Stock, 0, len(results))
	for _, r := range results {
		if r.err != nil {
			a.log.Warn().Str("symbol", r.symbol).Err(r.err).Msg("dropping failed stock quote")
			continue
		}
		stocks = append(stocks, r.stock)
	}
	return stocks
}

// fetchCryptos は時価総額上位の暗号資産リストを1回の呼び出しで取得します。
// 失敗時は設定された代替リストを返します（プロバイダの順序はそのまま通す）。
func (a *MarketAggregator) fetchCryptos(ctx context.Context) []entity.Crypto {
	cryptos, err := a.cryptos.TopByMarketCap(ctx, a.cryptoLimit)
	if err != nil {
		a.log.Warn().Err(err).Int("fallback_len", len(a.cryptoFallback)).Msg("crypto provider unavailable, using fallback list")
		if a.cryptoFallback == nil {
			return []entity.Crypto{}
		}
		return a.cryptoFallback
	}
	if cryptos == nil {
		cryptos = []entity.Crypto{}
	}
	return cryptos
}
