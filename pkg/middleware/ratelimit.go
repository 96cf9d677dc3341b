package middleware

import (
	"net/http"

	"stock-insight/config"
	"stock-insight/internal/dto"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// NewRateLimiterMiddleware limits requests per client IP.
func NewRateLimiterMiddleware(cfg config.API) echo.MiddlewareFunc {
	rateLimiterConfig := middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/health"
		},
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(cfg.RateLimitPerSec),
				Burst:     cfg.RateLimitBurst,
				ExpiresIn: cfg.RateLimitExpireIn,
			},
		),

		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			return ctx.RealIP(), nil
		},

		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(http.StatusForbidden, dto.NewErrorResponse("Access forbidden: Rate limiter error occurred"))
		},

		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(http.StatusTooManyRequests, dto.NewErrorResponse("Too many requests: Rate limit exceeded. Please try again later"))
		},
	}

	return middleware.RateLimiterWithConfig(rateLimiterConfig)
}
