package http

import (
	"errors"
	"net/http"

	"stock-insight/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupImage(e *echo.Echo) {
	e.POST("/generate-image", h.generateImage)
}

func (h *HttpAPIHandler) generateImage(c echo.Context) error {
	req := new(dto.GenerateImageRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Stock name is required"))
	}

	imageURL, err := h.service.ImageService.GenerateStockImage(c.Request().Context(), req.StockName)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, dto.GenerateImageResponse{ImageURL: imageURL})
	case errors.Is(err, dto.ErrImageRequestIDMissing):
		return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("No request ID received from BFL API"))
	case errors.Is(err, dto.ErrImageURLMissing):
		return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to retrieve the image URL"))
	default:
		return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to generate or retrieve image"))
	}
}
