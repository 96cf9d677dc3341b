package service

import (
	"context"
	"time"

	"stock-insight/config"
	"stock-insight/internal/dto"

	"github.com/stretchr/testify/mock"
)

type mockYahooFinanceRepository struct {
	mock.Mock
}

func (m *mockYahooFinanceRepository) GetQuote(ctx context.Context, ticker string) (*dto.YahooQuote, error) {
	args := m.Called(ctx, ticker)
	quote, _ := args.Get(0).(*dto.YahooQuote)
	return quote, args.Error(1)
}

func (m *mockYahooFinanceRepository) GetQuoteSummary(ctx context.Context, ticker string, modules []string) (*dto.YahooQuoteSummary, error) {
	args := m.Called(ctx, ticker, modules)
	summary, _ := args.Get(0).(*dto.YahooQuoteSummary)
	return summary, args.Error(1)
}

func (m *mockYahooFinanceRepository) Search(ctx context.Context, query string) ([]dto.YahooSearchQuote, error) {
	args := m.Called(ctx, query)
	quotes, _ := args.Get(0).([]dto.YahooSearchQuote)
	return quotes, args.Error(1)
}

type mockImageRepository struct {
	mock.Mock
}

func (m *mockImageRepository) Submit(ctx context.Context, param dto.ImageGenerationParam) (*dto.ImageSubmitResponse, error) {
	args := m.Called(ctx, param)
	resp, _ := args.Get(0).(*dto.ImageSubmitResponse)
	return resp, args.Error(1)
}

func (m *mockImageRepository) GetResult(ctx context.Context, id string) (*dto.ImageResultResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*dto.ImageResultResponse)
	return resp, args.Error(1)
}

type mockChatRepository struct {
	mock.Mock
}

func (m *mockChatRepository) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		Image: config.Image{
			Width:           896,
			Height:          1152,
			PollInterval:    time.Millisecond,
			PollTimeout:     time.Second,
			MaxPollAttempts: 5,
		},
		Cache: config.Cache{
			QuoteTTL:  time.Minute,
			TickerTTL: time.Minute,
		},
	}
}
