// Package middleware provides cross-cutting Gin middleware for the router.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader はリクエストIDを伝搬するHTTPヘッダー名です。
const RequestIDHeader = "X-Request-ID"

// requestIDKey はginコンテキスト上のリクエストIDのキーです。
const requestIDKey = "request_id"

// RequestID は各リクエストにUUIDを割り当てるミドルウェアです。
// クライアントが既にX-Request-IDを送っている場合はそれを尊重します。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID はコンテキストからリクエストIDを取り出します。未設定なら空文字を返します。
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
