package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"investment_backend/internal/feature/recommend/domain/entity"
	"investment_backend/internal/feature/recommend/usecase"
	"investment_backend/internal/platform/externalapi/yahoo/dto"
	"investment_backend/internal/shared/ratelimiter"
)

// QuoteClient はYahoo Finance APIから株価クオートを取得するStockQuoteSource実装です。
type QuoteClient struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
	log     zerolog.Logger
}

// QuoteClientがStockQuoteSourceを実装していることをコンパイル時に検証します。
var _ usecase.StockQuoteSource = (*QuoteClient)(nil)

// NewQuoteClient は指定された設定とHTTPクライアントでQuoteClientの新しいインスタンスを生成します。
// limiter は未認証エンドポイントのスロットリングを避けるための呼び出しペーシングです。
func NewQuoteClient(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface, log zerolog.Logger) *QuoteClient {
	return &QuoteClient{
		cfg:     cfg,
		client:  client,
		limiter: limiter,
		log:     log.With().Str("client", "yahoo").Logger(),
	}
}

// Quote は1銘柄の現在クオートを取得してentity.Stockとして返します。
// 表示名が無い場合はシンボルを、価格が無い場合は0を代わりに使用します。
func (c *QuoteClient) Quote(ctx context.Context, symbol string) (entity.Stock, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return entity.Stock{}, err
	}

	q := url.Values{}
	q.Set("symbols", symbol)
	u := fmt.Sprintf("%s/v7/finance/quote?%s", c.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return entity.Stock{}, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return entity.Stock{}, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			c.log.Warn().Err(err).Msg("failed to close response body")
		}
	}()

	if res.StatusCode >= 400 {
		return entity.Stock{}, fmt.Errorf("yahoo http %d", res.StatusCode)
	}

	var body dto.QuoteResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return entity.Stock{}, err
	}
	if e := body.QuoteResponse.Error; e != nil {
		return entity.Stock{}, fmt.Errorf("yahoo: %s (%s)", e.Description, e.Code)
	}
	if len(body.QuoteResponse.Result) == 0 {
		return entity.Stock{}, fmt.Errorf("yahoo: no quote for %q", symbol)
	}

	r := body.QuoteResponse.Result[0]

	name := r.ShortName
	if name == "" {
		name = r.Symbol
	}
	price := 0.0
	if r.RegularMarketPrice != nil {
		price = *r.RegularMarketPrice
	}

	return entity.Stock{Name: name, Symbol: r.Symbol, Price: price}, nil
}
