// Package router assembles the Gin engine, middleware, and route table.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"investment_backend/internal/app/middleware"
	recommendhandler "investment_backend/internal/feature/recommend/transport/handler"
	"investment_backend/internal/platform/http/handler"
)

// NewRouter は新しいginルータを組み立てます。
// 許可オリジンは設定から渡されます（クレデンシャル付きCORSのため、ワイルドカードは使わない）。
func NewRouter(recommend *recommendhandler.RecommendHandler, allowedOrigins []string, log zerolog.Logger) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(log))
	// panicは一般的な500 JSONに変換し、詳細はログにのみ残す
	r.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		log.Error().Interface("panic", err).Str("path", c.Request.URL.Path).Msg("panic recovered")
		c.AbortWithStatusJSON(500, gin.H{"message": "Something went wrong!"})
	}))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	// 導通確認用
	r.GET("/", handler.Root)
	r.GET("/health", handler.Health)
	r.HEAD("/health", handler.Health)

	api := r.Group("/api")
	{
		api.POST("/recommend-investments", recommend.Recommend)
		api.GET("/test", handler.Test)
	}

	// 未定義ルートもJSONで返す
	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"message": "Route not found"})
	})

	return r
}
