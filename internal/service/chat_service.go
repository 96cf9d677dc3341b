package service

import (
	"context"

	"stock-insight/internal/repository"
	"stock-insight/pkg/logger"
)

type ChatService interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

type chatService struct {
	log            *logger.Logger
	chatRepository repository.ChatRepository
}

func NewChatService(log *logger.Logger, chatRepository repository.ChatRepository) ChatService {
	return &chatService{
		log:            log,
		chatRepository: chatRepository,
	}
}

// Ask forwards prompt as one user message. No history is kept.
func (s *chatService) Ask(ctx context.Context, prompt string) (string, error) {
	response, err := s.chatRepository.Complete(ctx, prompt)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to get chat completion", logger.ErrorField(err))
		return "", err
	}
	return response, nil
}
