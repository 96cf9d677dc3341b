package middleware

import (
	"time"

	"stock-insight/pkg/common"
	"stock-insight/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// NewRequestLoggerMiddleware stores a request-scoped logger in the request
// context and logs each completed request. It must run after RequestID.
func NewRequestLoggerMiddleware(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			start := time.Now()

			requestID := req.Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = c.Response().Header().Get(echo.HeaderXRequestID)
			}

			reqLog := log.With(
				logger.StringField(common.KEY_LOG_REQUEST_ID, requestID),
				logger.StringField("method", req.Method),
				logger.StringField("path", req.URL.Path),
			)
			c.SetRequest(req.WithContext(logger.NewContext(req.Context(), reqLog)))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			fields := []zap.Field{
				logger.IntField("status", c.Response().Status),
				logger.DurationField("latency", time.Since(start)),
			}
			if err != nil {
				fields = append(fields, logger.ErrorField(err))
			}

			status := c.Response().Status
			switch {
			case status >= 500:
				reqLog.Error("Request failed", fields...)
			case status >= 400:
				reqLog.Warn("Request rejected", fields...)
			default:
				reqLog.Info("Request handled", fields...)
			}
			return nil
		}
	}
}
