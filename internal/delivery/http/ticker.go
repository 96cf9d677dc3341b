package http

import (
	"errors"
	"net/http"

	"stock-insight/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupTicker(base *echo.Group) {
	base.POST("/get-ticker", h.getTicker)
}

func (h *HttpAPIHandler) getTicker(c echo.Context) error {
	req := new(dto.TickerRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Stock name is required"))
	}

	ticker, err := h.service.TickerService.LookupTicker(c.Request().Context(), req.StockName)
	if err != nil {
		if errors.Is(err, dto.ErrStockNotFound) {
			return c.JSON(http.StatusNotFound, dto.NewErrorResponse("Stock not found"))
		}
		return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to fetch stock data from Yahoo Finance"))
	}

	return c.JSON(http.StatusOK, dto.TickerResponse{Ticker: ticker})
}
