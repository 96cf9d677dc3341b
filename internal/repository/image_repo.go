package repository

import (
	"context"
	"fmt"

	"stock-insight/config"
	"stock-insight/internal/dto"
	"stock-insight/pkg/httpclient"
	"stock-insight/pkg/logger"
	"stock-insight/pkg/ratelimit"
)

type ImageRepository interface {
	Submit(ctx context.Context, param dto.ImageGenerationParam) (*dto.ImageSubmitResponse, error)
	GetResult(ctx context.Context, id string) (*dto.ImageResultResponse, error)
}

// ProviderError carries the provider's error payload so callers can log it.
type ProviderError struct {
	Provider   string
	Operation  string
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s %s returned status %d", e.Provider, e.Operation, e.StatusCode)
}

// bflImageRepository talks to the Black Forest Labs Flux API.
type bflImageRepository struct {
	httpClient httpclient.HTTPClient
	cfg        *config.Config
	logger     *logger.Logger
	limiter    *ratelimit.ProviderLimiter
}

func NewImageRepository(cfg *config.Config, log *logger.Logger) ImageRepository {
	return &bflImageRepository{
		httpClient: httpclient.New(log, cfg.Image.BaseURL, cfg.Image.Timeout),
		cfg:        cfg,
		logger:     log,
		limiter:    ratelimit.NewProviderLimiter("bfl", cfg.Image.MaxRequestPerMinute, 1, log),
	}
}

func (r *bflImageRepository) headers() map[string]string {
	return map[string]string{
		"accept": "application/json",
		"x-key":  r.cfg.Image.APIKey,
	}
}

func (r *bflImageRepository) Submit(ctx context.Context, param dto.ImageGenerationParam) (*dto.ImageSubmitResponse, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var submitResp dto.ImageSubmitResponse
	resp, err := r.httpClient.Post(ctx, "/"+r.cfg.Image.Model, param, r.headers(), &submitResp)
	if err != nil {
		return nil, fmt.Errorf("failed to submit image generation: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, &ProviderError{Provider: "bfl", Operation: "submit", StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}

	return &submitResp, nil
}

func (r *bflImageRepository) GetResult(ctx context.Context, id string) (*dto.ImageResultResponse, error) {
	var resultResp dto.ImageResultResponse
	resp, err := r.httpClient.Get(ctx, "/get_result", map[string]string{"id": id}, r.headers(), &resultResp)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image result: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, &ProviderError{Provider: "bfl", Operation: "get_result", StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}

	return &resultResp, nil
}
