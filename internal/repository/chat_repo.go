package repository

import (
	"context"
	"fmt"

	"stock-insight/config"
	"stock-insight/pkg/logger"
)

// ChatRepository sends a single user prompt to a chat-completion model and
// returns the first completion's text.
type ChatRepository interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewChatRepository picks the provider named by llm.provider.
func NewChatRepository(ctx context.Context, cfg *config.Config, log *logger.Logger) (ChatRepository, error) {
	switch cfg.LLM.Provider {
	case config.LLMProviderOpenAI:
		return NewOpenAIChatRepository(ctx, cfg, log)
	case config.LLMProviderGemini:
		return NewGeminiChatRepository(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %q", cfg.LLM.Provider)
	}
}
