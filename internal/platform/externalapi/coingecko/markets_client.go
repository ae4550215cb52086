package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"investment_backend/internal/feature/recommend/domain/entity"
	"investment_backend/internal/feature/recommend/usecase"
	"investment_backend/internal/platform/externalapi/coingecko/dto"
)

// MarketsClient はCoinGecko APIから暗号資産の時価データを取得するCryptoMarketSource実装です。
type MarketsClient struct {
	cfg    Config
	client *http.Client
	log    zerolog.Logger
}

// MarketsClientがCryptoMarketSourceを実装していることをコンパイル時に検証します。
var _ usecase.CryptoMarketSource = (*MarketsClient)(nil)

// NewMarketsClient は指定された設定とHTTPクライアントでMarketsClientの新しいインスタンスを生成します。
func NewMarketsClient(cfg Config, client *http.Client, log zerolog.Logger) *MarketsClient {
	return &MarketsClient{cfg: cfg, client: client, log: log.With().Str("client", "coingecko").Logger()}
}

// TopByMarketCap は時価総額上位limit件の暗号資産を参照通貨建てで取得します。
// 返却順はプロバイダの時価総額降順をそのまま保持します。
func (c *MarketsClient) TopByMarketCap(ctx context.Context, limit int) ([]entity.Crypto, error) {
	q := url.Values{}
	q.Set("vs_currency", c.cfg.VsCurrency)
	q.Set("order", "market_cap_desc")
	q.Set("per_page", strconv.Itoa(limit))
	q.Set("page", "1")
	q.Set("sparkline", "false")

	u := fmt.Sprintf("%s/coins/markets?%s", c.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			c.log.Warn().Err(err).Msg("failed to close response body")
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("coingecko http %d", res.StatusCode)
	}

	var body []dto.CoinMarket
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	cryptos := make([]entity.Crypto, 0, len(body))
	for _, m := range body {
		cryptos = append(cryptos, entity.Crypto{
			Name:  m.Name,
			Price: m.CurrentPrice,
			Image: m.Image,
		})
	}
	return cryptos, nil
}
