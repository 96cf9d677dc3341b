package ratelimit

import (
	"context"
	"testing"
	"time"

	"stock-insight/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestProviderLimiter_Wait(t *testing.T) {
	l := NewProviderLimiter("yahoo", 60, 1, logger.NewNop())

	assert.NoError(t, l.Wait(context.Background()), "first request uses the burst")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := l.Wait(ctx)
	assert.Error(t, err, "second request within a second must wait past the deadline")
	assert.Contains(t, err.Error(), "yahoo rate limiter")
}

func TestProviderLimiter_Unlimited(t *testing.T) {
	l := NewProviderLimiter("bfl", 0, 1, logger.NewNop())
	for i := 0; i < 10; i++ {
		assert.NoError(t, l.Wait(context.Background()))
	}
}

func TestProviderLimiter_Burst(t *testing.T) {
	l := NewProviderLimiter("yahoo", 60, 2, logger.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.NoError(t, l.Wait(ctx))
	assert.NoError(t, l.Wait(ctx), "second request rides the burst")
	assert.Error(t, l.Wait(ctx), "third request must wait for a refill")
}

func TestProviderLimiter_BurstFloor(t *testing.T) {
	l := NewProviderLimiter("yahoo", 60, 0, logger.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.NoError(t, l.Wait(ctx))
	assert.Error(t, l.Wait(ctx))
}
