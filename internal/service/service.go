package service

import (
	"stock-insight/config"
	"stock-insight/internal/repository"
	"stock-insight/pkg/cache"
	"stock-insight/pkg/logger"
)

type Service struct {
	StockService  StockService
	TickerService TickerService
	ImageService  ImageService
	ChatService   ChatService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	inmemoryCache cache.Cache,
) *Service {
	return &Service{
		StockService:  NewStockService(cfg, log, inmemoryCache, repo.YahooFinanceRepo),
		TickerService: NewTickerService(cfg, log, inmemoryCache, repo.YahooFinanceRepo),
		ImageService:  NewImageService(cfg, log, repo.ImageRepo),
		ChatService:   NewChatService(log, repo.ChatRepo),
	}
}
