package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"investment_backend/internal/feature/recommend/domain/entity"
)

// SnapshotFetcher は現在の市場スナップショットを組み立てるインターフェイスです。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (aggregator).
type SnapshotFetcher interface {
	FetchSnapshot(ctx context.Context) entity.Snapshot
}

// RecommendUsecase は市場データの取得とアロケーション計算を束ねるユースケースです。
type RecommendUsecase struct {
	fetcher SnapshotFetcher
	log     zerolog.Logger
}

// NewRecommendUsecase は新しい RecommendUsecase を作成します。
func NewRecommendUsecase(fetcher SnapshotFetcher, log zerolog.Logger) *RecommendUsecase {
	return &RecommendUsecase{fetcher: fetcher, log: log.With().Str("component", "recommend_usecase").Logger()}
}

// Recommend は市場スナップショットを取得し、リスクレベルと金額に応じた
// アロケーションを計算して返します。バリデーション済みの入力を前提とします。
// 両データソースが空の場合は domain.ErrNoMarketData を返します。
func (u *RecommendUsecase) Recommend(ctx context.Context, amount float64, risk entity.RiskLevel) (entity.Recommendation, error) {
	snap := u.fetcher.FetchSnapshot(ctx)
	u.log.Info().
		Int("stocks", len(snap.Stocks)).
		Int("cryptos", len(snap.Cryptos)).
		Float64("amount", amount).
		Str("risk_level", string(risk)).
		Msg("snapshot fetched")

	return allocate(snap, amount, risk, time.Now())
}
