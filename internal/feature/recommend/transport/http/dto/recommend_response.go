package dto

import (
	"time"

	"investment_backend/internal/feature/recommend/domain/entity"
)

// AllocatedStockItem is one recommended equity position in the response.
type AllocatedStockItem struct {
	Name           string  `json:"name"`
	Symbol         string  `json:"symbol"`
	Price          float64 `json:"price"`
	AmountInvested float64 `json:"amountInvested"`
}

// AllocatedCryptoItem is one recommended crypto position in the response.
type AllocatedCryptoItem struct {
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	AmountInvested float64 `json:"amountInvested"`
	Image          string  `json:"image"`
}

// Investments groups the recommended positions by asset class.
type Investments struct {
	Cryptos []AllocatedCryptoItem `json:"cryptos"`
	Stocks  []AllocatedStockItem  `json:"stocks"`
}

// Metadata echoes the request parameters and describes the allocation run.
type Metadata struct {
	TotalAmount float64 `json:"totalAmount"`
	RiskLevel   string  `json:"riskLevel"`
	TotalAssets int     `json:"totalAssets"`
	Timestamp   string  `json:"timestamp"`
}

// RecommendResponse is the 200 response body for /api/recommend-investments.
type RecommendResponse struct {
	Investments Investments `json:"investments"`
	Metadata    Metadata    `json:"metadata"`
}

// EmptyResultResponse is returned when no asset matches the requested
// risk band: a successful response with empty lists, not an error.
type EmptyResultResponse struct {
	Message     string      `json:"message"`
	Investments Investments `json:"investments"`
}

// FromRecommendation はドメインのRecommendationをレスポンスDTOに変換します。
func FromRecommendation(rec entity.Recommendation) RecommendResponse {
	out := RecommendResponse{
		Investments: Investments{
			Cryptos: make([]AllocatedCryptoItem, 0, len(rec.Cryptos)),
			Stocks:  make([]AllocatedStockItem, 0, len(rec.Stocks)),
		},
		Metadata: Metadata{
			TotalAmount: rec.TotalAmount,
			RiskLevel:   string(rec.RiskLevel),
			TotalAssets: rec.TotalAssets,
			Timestamp:   rec.Timestamp.UTC().Format(time.RFC3339),
		},
	}
	for _, c := range rec.Cryptos {
		out.Investments.Cryptos = append(out.Investments.Cryptos, AllocatedCryptoItem{
			Name:           c.Name,
			Price:          c.Price,
			AmountInvested: c.AmountInvested,
			Image:          c.Image,
		})
	}
	for _, s := range rec.Stocks {
		out.Investments.Stocks = append(out.Investments.Stocks, AllocatedStockItem{
			Name:           s.Name,
			Symbol:         s.Symbol,
			Price:          s.Price,
			AmountInvested: s.AmountInvested,
		})
	}
	return out
}
