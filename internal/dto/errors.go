package dto

import "errors"

var (
	ErrStockNotFound         = errors.New("stock not found")
	ErrQuoteNotFound         = errors.New("quote not found")
	ErrImageRequestIDMissing = errors.New("no request id received from image provider")
	ErrImageURLMissing       = errors.New("image ready without sample url")
	ErrImageGenerationFailed = errors.New("image generation failed")
	ErrImagePollExhausted    = errors.New("image not ready after max poll attempts")
	ErrEmptyCompletion       = errors.New("chat provider returned no completion")
)
