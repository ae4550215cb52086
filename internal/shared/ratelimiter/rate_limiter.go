// Package ratelimiter は外部API呼び出しの頻度制限を提供します。
package ratelimiter

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiterInterface は、API呼び出しなどの操作の頻度を制限するインターフェイスです。
type RateLimiterInterface interface {
	Wait(ctx context.Context) error
}

// RateLimiter はtoken bucketで外部API呼び出しをペーシングします。
// 上限に達している場合、Waitは次のトークンが利用可能になるまでブロックします。
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter はinterval中にlimit回まで許可するRateLimiterを生成します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	per := rate.Every(interval / time.Duration(limit))
	return &RateLimiter{limiter: rate.NewLimiter(per, limit)}
}

// Wait は呼び出しが許可されるまで待機します。
// ctxのキャンセルや期限切れで待機中の場合はエラーを返します。
func (rl *RateLimiter) Wait(ctx context.Context) error {
	return rl.limiter.Wait(ctx)
}
