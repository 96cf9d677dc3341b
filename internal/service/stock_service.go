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
	"stock-insight/pkg/utils"

	"golang.org/x/sync/errgroup"
)

// summaryModules are the quote summary modules merged into a StockSummary.
var summaryModules = []string{
	dto.ModuleFinancialData,
	dto.ModuleDefaultKeyStatistics,
	dto.ModuleRecommendationTrend,
	dto.ModuleSummaryProfile,
}

type StockService interface {
	GetSummary(ctx context.Context, ticker string) (*dto.StockSummary, error)
}

type stockService struct {
	cfg                    *config.Config
	log                    *logger.Logger
	cache                  cache.Cache
	yahooFinanceRepository repository.YahooFinanceRepository
}

func NewStockService(
	cfg *config.Config,
	log *logger.Logger,
	inmemoryCache cache.Cache,
	yahooFinanceRepository repository.YahooFinanceRepository,
) StockService {
	return &stockService{
		cfg:                    cfg,
		log:                    log,
		cache:                  inmemoryCache,
		yahooFinanceRepository: yahooFinanceRepository,
	}
}

func (s *stockService) GetSummary(ctx context.Context, ticker string) (*dto.StockSummary, error) {
	cacheKey := fmt.Sprintf(common.KEY_STOCK_QUOTE, strings.ToUpper(ticker))
	if s.cfg.Cache.QuoteTTL > 0 {
		if cached, ok := cache.GetFromCache[*dto.StockSummary](s.cache, cacheKey); ok {
			s.log.DebugContext(ctx, "Stock summary served from cache", logger.StringField("ticker", ticker))
			return cached, nil
		}
	}

	var (
		quote   *dto.YahooQuote
		summary *dto.YahooQuoteSummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		quote, err = s.yahooFinanceRepository.GetQuote(gctx, ticker)
		if err != nil {
			return fmt.Errorf("get quote: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		summary, err = s.yahooFinanceRepository.GetQuoteSummary(gctx, ticker, summaryModules)
		if err != nil {
			return fmt.Errorf("get quote summary: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.log.ErrorContext(ctx, "Failed to fetch stock data", logger.StringField("ticker", ticker), logger.ErrorField(err))
		return nil, err
	}

	result := BuildStockSummary(quote, summary)

	if s.cfg.Cache.QuoteTTL > 0 {
		s.cache.Set(cacheKey, result, s.cfg.Cache.QuoteTTL)
	}

	return result, nil
}

// BuildStockSummary merges a quote and a quote summary into the flat record
// returned to clients. Either argument may be nil.
func BuildStockSummary(quote *dto.YahooQuote, summary *dto.YahooQuoteSummary) *dto.StockSummary {
	if quote == nil {
		quote = &dto.YahooQuote{}
	}
	if summary == nil {
		summary = &dto.YahooQuoteSummary{}
	}

	financial := summary.FinancialData
	if financial == nil {
		financial = &dto.YahooFinancialData{}
	}
	keyStats := summary.DefaultKeyStatistics
	if keyStats == nil {
		keyStats = &dto.YahooKeyStatistics{}
	}

	description := quote.LongBusinessSummary
	if description == "" && summary.SummaryProfile != nil {
		description = summary.SummaryProfile.LongBusinessSummary
	}

	return &dto.StockSummary{
		Name:                  stringOrNA(quote.LongName),
		Description:           stringOrNA(description),
		MarketCap:             utils.FormatLargeNumber(quote.MarketCap.Ptr()),
		SharesOutstanding:     utils.FormatLargeNumber(quote.SharesOutstanding.Ptr()),
		Float:                 utils.FormatLargeNumber(keyStats.FloatShares.Ptr()),
		EvEbitda:              utils.FormatRatio(keyStats.EnterpriseToEbitda.Ptr()),
		PeTtm:                 utils.FormatRatio(quote.TrailingPE.Ptr()),
		DividendRate:          utils.FormatRatio(quote.DividendRate.Ptr()),
		CashPosition:          utils.FormatLargeNumber(financial.TotalCash.Ptr()),
		TotalDebt:             utils.FormatLargeNumber(financial.TotalDebt.Ptr()),
		DebtToEquity:          utils.FormatRatio(financial.DebtToEquity.Ptr()),
		CurrentRatio:          utils.FormatRatio(financial.CurrentRatio.Ptr()),
		StrengthsAndCatalysts: dto.PlaceholderManualInput,
		AnalystRating:         utils.FormatRatio(financial.RecommendationMean.Ptr()),
		NumberOfAnalysts:      utils.FormatCount(financial.NumberOfAnalystOpinions.Ptr()),
		MeanTargetPrice:       utils.FormatRatio(financial.TargetMeanPrice.Ptr()),
		ImpliedChange:         utils.FormatImpliedChange(financial.TargetMeanPrice.Ptr(), quote.RegularMarketPrice.Ptr()),
		RisksAndMitigation:    dto.PlaceholderManualInput,
		Recommendation:        Recommendation(summary.RecommendationTrend),
	}
}

// Recommendation is Buy when the latest period has more strong-buy than sell
// ratings. Ties and missing data are Sell.
func Recommendation(trend *dto.YahooRecommendationTrend) string {
	if trend == nil || len(trend.Trend) == 0 {
		return dto.RecommendationSell
	}
	latest := trend.Trend[0]
	if latest.StrongBuy.Valid && latest.Sell.Valid && latest.StrongBuy.Value > latest.Sell.Value {
		return dto.RecommendationBuy
	}
	return dto.RecommendationSell
}

func stringOrNA(s string) string {
	if s == "" {
		return utils.NotAvailable
	}
	return s
}
