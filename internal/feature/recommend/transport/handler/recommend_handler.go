// Package handler provides HTTP handlers for the recommend feature.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"investment_backend/internal/feature/recommend/domain"
	"investment_backend/internal/feature/recommend/domain/entity"
	"investment_backend/internal/feature/recommend/transport/http/dto"
)

// RecommendUsecase は投資推奨に関するユースケースのインターフェイスです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type RecommendUsecase interface {
	Recommend(ctx context.Context, amount float64, risk entity.RiskLevel) (entity.Recommendation, error)
}

// RecommendHandler は投資推奨に関するHTTPリクエストを処理します。
type RecommendHandler struct {
	uc  RecommendUsecase
	log zerolog.Logger
}

// NewRecommendHandler は新しい RecommendHandler を作成します。
func NewRecommendHandler(uc RecommendUsecase, log zerolog.Logger) *RecommendHandler {
	return &RecommendHandler{uc: uc, log: log.With().Str("handler", "recommend").Logger()}
}

// Recommend は POST /api/recommend-investments を処理します。
// バリデーションは市場データ取得の前に行い、無駄なfetchを避けます。
//
// レスポンス:
//   - 200: アロケーション結果（条件に合う資産がゼロの場合も空リストで200）
//   - 400: バリデーションエラー
//   - 503: 両方の市場データソースが空
//   - 500: 予期しない内部エラー（詳細はログのみ）
func (h *RecommendHandler) Recommend(c *gin.Context) {
	var req dto.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": validationMessage(err)})
		return
	}

	rec, err := h.uc.Recommend(c.Request.Context(), req.Amount, entity.RiskLevel(req.RiskLevel))
	switch {
	case errors.Is(err, domain.ErrNoMarketData):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"message": "Market data temporarily unavailable. Please try again later.",
		})
		return
	case err != nil:
		// 内部詳細はクライアントに漏らさない
		h.log.Error().Err(err).Msg("recommendation failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Server error occurred while processing your request",
		})
		return
	}

	if rec.TotalAssets == 0 {
		c.JSON(http.StatusOK, dto.EmptyResultResponse{
			Message:     "No suitable investments found for the given criteria",
			Investments: dto.Investments{Cryptos: []dto.AllocatedCryptoItem{}, Stocks: []dto.AllocatedStockItem{}},
		})
		return
	}

	c.JSON(http.StatusOK, dto.FromRecommendation(rec))
}

// validationMessage はバリデーションエラーを人間が読めるメッセージに変換します。
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// JSONのパース失敗など、バリデーション以前のエラー
		return "Amount and risk level are required"
	}
	for _, fe := range verrs {
		switch {
		case fe.Tag() == "required":
			return "Amount and risk level are required"
		case fe.Field() == "Amount":
			return "Amount must be between 1 and 10,000,000"
		default:
			return "Risk level must be Low, Medium, or High"
		}
	}
	return "Invalid request"
}
