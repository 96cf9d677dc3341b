package http

import (
	"net/http"

	"stock-insight/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupHealth(e *echo.Echo) {
	e.GET("/health", h.health)
}

func (h *HttpAPIHandler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("ok", dto.HealthResponse{
		Status:  "healthy",
		Name:    h.cfg.App.Name,
		Version: h.cfg.App.Version,
	}))
}
