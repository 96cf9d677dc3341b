package http

import (
	"context"

	"stock-insight/config"
	"stock-insight/internal/service"
	"stock-insight/pkg/logger"
	"stock-insight/pkg/middleware"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

type HttpAPIHandler struct {
	echo      *echo.Echo
	cfg       *config.Config
	log       *logger.Logger
	validator *goValidator.Validate
	service   *service.Service
}

func NewHttpAPIHandler(ctx context.Context, echo *echo.Echo, cfg *config.Config, log *logger.Logger, validator *goValidator.Validate, service *service.Service) *HttpAPIHandler {
	return &HttpAPIHandler{
		echo:      echo,
		cfg:       cfg,
		log:       log,
		validator: validator,
		service:   service,
	}
}

func (h *HttpAPIHandler) SetupMiddleware() {
	h.echo.Use(echoMiddleware.Recover())
	h.echo.Use(echoMiddleware.RequestID())
	h.echo.Use(middleware.NewRequestLoggerMiddleware(h.log))
	h.echo.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: h.cfg.API.AllowOrigins,
	}))
	if h.cfg.API.BodyLimit != "" {
		h.echo.Use(echoMiddleware.BodyLimit(h.cfg.API.BodyLimit))
	}
	if h.cfg.API.RateLimitPerSec > 0 {
		h.echo.Use(middleware.NewRateLimiterMiddleware(h.cfg.API))
	}
	if h.cfg.API.RequestTimeout > 0 {
		h.echo.Use(echoMiddleware.ContextTimeout(h.cfg.API.RequestTimeout))
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	h.SetupMiddleware()

	h.SetupHealth(h.echo)
	h.SetupImage(h.echo)

	base := h.echo.Group("/api")
	h.SetupStock(base)
	h.SetupTicker(base)
	h.SetupChat(base)
}
