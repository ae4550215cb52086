package ratelimiter

import (
	"context"
	"testing"
	"time"
)

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(10, time.Second)
	ctx := context.Background()

	// バースト内の呼び出しは待たずに通る
	start := time.Now()
	for i := 0; i < 10; i++ {
		if err := rl.Wait(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("expected burst to pass without waiting, took %v", elapsed)
	}
}

func TestRateLimiter_ContextCanceled(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, time.Hour)
	ctx := context.Background()

	// 最初の1回でトークンを使い切る
	if err := rl.Wait(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	if err := rl.Wait(canceled); err == nil {
		t.Fatal("expected error when waiting with canceled context, got nil")
	}
}
