package main

import (
	"github.com/joho/godotenv"

	"investment_backend/internal/app/di"
	"investment_backend/internal/app/router"
	recommendhandler "investment_backend/internal/feature/recommend/transport/handler"
	recommendusecase "investment_backend/internal/feature/recommend/usecase"
	"investment_backend/internal/platform/config"
	"investment_backend/internal/platform/logger"
)

func main() {
	// .envを読み込む
	envLoaded := godotenv.Load(".env") == nil

	// Logger
	log := logger.New()
	if !envLoaded {
		log.Info().Msg(".env not found; using system environment variables")
	}

	// 設定
	cfg := config.Load()

	// 市場データソース（注入可能なクライアントとして構築、プロセスグローバルにしない）
	aggregator := di.NewAggregator(log)

	// Usecase
	recommendUC := recommendusecase.NewRecommendUsecase(aggregator, log)

	// Handler
	recommendH := recommendhandler.NewRecommendHandler(recommendUC, log)

	// ルータ生成
	r := router.NewRouter(recommendH, cfg.AllowedOrigins, log)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
