package service

import (
	"context"
	"fmt"
	"strings"

	"stock-insight/config"
	"stock-insight/internal/dto"
	"stock-insight/internal/repository"
	"stock-insight/pkg/cache"
	"stock-insight/pkg/common"
	"stock-insight/pkg/logger"
)

type TickerService interface {
	LookupTicker(ctx context.Context, stockName string) (string, error)
}

type tickerService struct {
	cfg                    *config.Config
	log                    *logger.Logger
	cache                  cache.Cache
	yahooFinanceRepository repository.YahooFinanceRepository
}

func NewTickerService(
	cfg *config.Config,
	log *logger.Logger,
	inmemoryCache cache.Cache,
	yahooFinanceRepository repository.YahooFinanceRepository,
) TickerService {
	return &tickerService{
		cfg:                    cfg,
		log:                    log,
		cache:                  inmemoryCache,
		yahooFinanceRepository: yahooFinanceRepository,
	}
}

// LookupTicker returns the symbol of the first search hit for stockName.
func (s *tickerService) LookupTicker(ctx context.Context, stockName string) (string, error) {
	cacheKey := fmt.Sprintf(common.KEY_TICKER_QUERY, strings.ToLower(strings.TrimSpace(stockName)))
	if s.cfg.Cache.TickerTTL > 0 {
		if ticker, ok := cache.GetFromCache[string](s.cache, cacheKey); ok {
			return ticker, nil
		}
	}

	quotes, err := s.yahooFinanceRepository.Search(ctx, stockName)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to search ticker", logger.StringField("stock_name", stockName), logger.ErrorField(err))
		return "", err
	}

	if len(quotes) == 0 || quotes[0].Symbol == "" {
		s.log.InfoContext(ctx, "No ticker found", logger.StringField("stock_name", stockName))
		return "", fmt.Errorf("%w: %s", dto.ErrStockNotFound, stockName)
	}

	ticker := quotes[0].Symbol
	if s.cfg.Cache.TickerTTL > 0 {
		s.cache.Set(cacheKey, ticker, s.cfg.Cache.TickerTTL)
	}
	return ticker, nil
}
