package repository

import (
	"context"

	"stock-insight/config"
	"stock-insight/pkg/cache"
	"stock-insight/pkg/logger"
)

type Repository struct {
	YahooFinanceRepo YahooFinanceRepository
	ImageRepo        ImageRepository
	ChatRepo         ChatRepository
}

func NewRepository(ctx context.Context, cfg *config.Config, inmemoryCache cache.Cache, log *logger.Logger) (*Repository, error) {
	chatRepo, err := NewChatRepository(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return &Repository{
		YahooFinanceRepo: NewYahooFinanceRepository(cfg, log, inmemoryCache),
		ImageRepo:        NewImageRepository(cfg, log),
		ChatRepo:         chatRepo,
	}, nil
}
