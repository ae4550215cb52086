// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Root はサービス情報を返す / エンドポイントを処理します。
func Root(c *gin.Context) {
	c.JSON(200, gin.H{"message": "Investment API is running!", "status": "healthy"})
}

// Health はサービスヘルスチェック用の /health エンドポイントを処理します。
// HTTPメソッドに応じて適切にレスポンスし、キャッシュを防止します。
func Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	// すべてのGET/HEAD/OPTIONSリクエストに対して200または204を返す
	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
	case "OPTIONS":
		c.Status(204)
	default:
		c.JSON(200, gin.H{"status": "OK", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	}
}

// Test はAPI疎通確認用の /api/test エンドポイントを処理します。
func Test(c *gin.Context) {
	c.JSON(200, gin.H{"message": "Investment API is working!", "timestamp": time.Now().UTC().Format(time.RFC3339)})
}
