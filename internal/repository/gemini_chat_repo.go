package repository

import (
	"context"
	"fmt"
	"strings"

	"stock-insight/config"
	"stock-insight/internal/dto"
	"stock-insight/pkg/logger"
	"stock-insight/pkg/ratelimit"

	"google.golang.org/genai"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// geminiChatRepository is an implementation of ChatRepository that uses the Google Gemini API.
type geminiChatRepository struct {
	models    contentGenerator
	logger    *logger.Logger
	limiter   *ratelimit.ProviderLimiter
	baseModel string
}

func NewGeminiChatRepository(ctx context.Context, cfg *config.Config, log *logger.Logger) (ChatRepository, error) {
	genAiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return newGeminiChatRepository(genAiClient.Models, cfg, log), nil
}

func newGeminiChatRepository(models contentGenerator, cfg *config.Config, log *logger.Logger) *geminiChatRepository {
	return &geminiChatRepository{
		models:    models,
		logger:    log,
		limiter:   ratelimit.NewProviderLimiter("gemini", cfg.LLM.MaxRequestPerMinute, 1, log),
		baseModel: cfg.Gemini.BaseModel,
	}
}

func (r *geminiChatRepository) Complete(ctx context.Context, prompt string) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", err
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, "user"),
	}
	resp, err := r.models.GenerateContent(ctx, r.baseModel, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content with %s: %w", r.baseModel, err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", dto.ErrEmptyCompletion
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String(), nil
}
