package http

import (
	"net/http"
	"strings"

	"stock-insight/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupStock(base *echo.Group) {
	base.GET("/stock", h.getStock)
	base.GET("/stock/", h.getStock)
	base.GET("/stock/:ticker", h.getStock)
}

func (h *HttpAPIHandler) getStock(c echo.Context) error {
	ticker := strings.TrimSpace(c.Param("ticker"))
	if ticker == "" {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid ticker"))
	}

	summary, err := h.service.StockService.GetSummary(c.Request().Context(), ticker)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to fetch stock data"))
	}

	return c.JSON(http.StatusOK, summary)
}
