package ratelimit

import (
	"context"
	"fmt"
	"time"

	"stock-insight/pkg/logger"

	"golang.org/x/time/rate"
)

// ProviderLimiter throttles calls to one upstream provider.
type ProviderLimiter struct {
	name      string
	perMinute int
	limiter   *rate.Limiter
	log       *logger.Logger
}

// NewProviderLimiter allows maxRequestPerMinute requests with up to burst sent
// back to back. A burst below 1 is treated as 1.
func NewProviderLimiter(name string, maxRequestPerMinute, burst int, log *logger.Logger) *ProviderLimiter {
	limit := rate.Inf
	if maxRequestPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(maxRequestPerMinute))
	}
	if burst < 1 {
		burst = 1
	}
	return &ProviderLimiter{
		name:      name,
		perMinute: maxRequestPerMinute,
		limiter:   rate.NewLimiter(limit, burst),
		log:       log,
	}
}

// Wait blocks until a request may be sent or ctx is done.
func (p *ProviderLimiter) Wait(ctx context.Context) error {
	if p.perMinute > 0 && p.limiter.Tokens() < 1 {
		p.log.WarnContext(ctx, "Provider request limit reached, waiting",
			logger.StringField("provider", p.name),
			logger.IntField("max_request_per_minute", p.perMinute),
		)
	}
	if err := p.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s rate limiter: %w", p.name, err)
	}
	return nil
}
