package repository

import (
	"context"
	"fmt"

	"stock-insight/config"
	"stock-insight/internal/dto"
	"stock-insight/pkg/logger"
	"stock-insight/pkg/ratelimit"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

type chatGenerator interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

type openAIChatRepository struct {
	chatModel chatGenerator
	logger    *logger.Logger
	limiter   *ratelimit.ProviderLimiter
	modelName string
}

// NewOpenAIChatRepository works with any OpenAI compatible endpoint (llm.base_url).
func NewOpenAIChatRepository(ctx context.Context, cfg *config.Config, log *logger.Logger) (ChatRepository, error) {
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create openai chat model: %w", err)
	}
	return newOpenAIChatRepository(chatModel, cfg, log), nil
}

func newOpenAIChatRepository(chatModel chatGenerator, cfg *config.Config, log *logger.Logger) *openAIChatRepository {
	return &openAIChatRepository{
		chatModel: chatModel,
		logger:    log,
		limiter:   ratelimit.NewProviderLimiter("openai", cfg.LLM.MaxRequestPerMinute, 1, log),
		modelName: cfg.LLM.Model,
	}
}

func (r *openAIChatRepository) Complete(ctx context.Context, prompt string) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", err
	}

	msg, err := r.chatModel.Generate(ctx, []*schema.Message{schema.UserMessage(prompt)})
	if err != nil {
		return "", fmt.Errorf("failed to generate completion with %s: %w", r.modelName, err)
	}
	if msg == nil {
		return "", dto.ErrEmptyCompletion
	}

	r.logger.DebugContext(ctx, "Chat completion received",
		logger.StringField("model", r.modelName),
		logger.IntField("response_length", len(msg.Content)),
	)
	return msg.Content, nil
}
