package http

import (
	"net/http"

	"stock-insight/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupChat(base *echo.Group) {
	base.POST("/gpt", h.chat)
}

func (h *HttpAPIHandler) chat(c echo.Context) error {
	req := new(dto.ChatRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Prompt is required"))
	}

	response, err := h.service.ChatService.Ask(c.Request().Context(), req.Prompt)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to get GPT response"))
	}

	return c.JSON(http.StatusOK, dto.ChatResponse{Response: response})
}
