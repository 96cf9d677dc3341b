package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"stock-insight/internal/dto"
	"stock-insight/pkg/cache"
	"stock-insight/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTickerService_LookupTicker(t *testing.T) {
	repo := new(mockYahooFinanceRepository)
	repo.On("Search", mock.Anything, "Apple").Return([]dto.YahooSearchQuote{
		{Symbol: "AAPL"}, {Symbol: "APLE"},
	}, nil).Once()

	svc := NewTickerService(testConfig(), logger.NewNop(), cache.NewCache(time.Minute, time.Minute), repo)

	ticker, err := svc.LookupTicker(context.Background(), "Apple")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", ticker)

	ticker, err = svc.LookupTicker(context.Background(), " apple ")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", ticker, "served from cache")

	repo.AssertExpectations(t)
}

func TestTickerService_NotFound(t *testing.T) {
	repo := new(mockYahooFinanceRepository)
	repo.On("Search", mock.Anything, "Nothing Corp").Return([]dto.YahooSearchQuote{}, nil).Twice()

	svc := NewTickerService(testConfig(), logger.NewNop(), cache.NewCache(time.Minute, time.Minute), repo)

	for i := 0; i < 2; i++ {
		_, err := svc.LookupTicker(context.Background(), "Nothing Corp")
		assert.ErrorIs(t, err, dto.ErrStockNotFound, "misses are not cached")
	}
	repo.AssertExpectations(t)
}

func TestTickerService_SearchError(t *testing.T) {
	repo := new(mockYahooFinanceRepository)
	repo.On("Search", mock.Anything, "Apple").Return(nil, errors.New("timeout"))

	svc := NewTickerService(testConfig(), logger.NewNop(), cache.NewCache(time.Minute, time.Minute), repo)

	_, err := svc.LookupTicker(context.Background(), "Apple")
	require.Error(t, err)
	assert.NotErrorIs(t, err, dto.ErrStockNotFound)
}
