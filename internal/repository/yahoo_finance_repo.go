package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"stock-insight/config"
	"stock-insight/internal/dto"
	"stock-insight/pkg/cache"
	"stock-insight/pkg/common"
	"stock-insight/pkg/httpclient"
	"stock-insight/pkg/logger"
	"stock-insight/pkg/ratelimit"
)

type YahooFinanceRepository interface {
	GetQuote(ctx context.Context, ticker string) (*dto.YahooQuote, error)
	GetQuoteSummary(ctx context.Context, ticker string, modules []string) (*dto.YahooQuoteSummary, error)
	Search(ctx context.Context, query string) ([]dto.YahooSearchQuote, error)
}

type yahooFinanceRepository struct {
	httpClient    httpclient.HTTPClient
	cfg           *config.Config
	logger        *logger.Logger
	cache         cache.Cache
	limiter       *ratelimit.ProviderLimiter
	defaultHeader map[string]string
	// crumbMu guards the cookie and crumb handshake; the jar holds one session.
	crumbMu sync.Mutex
}

// NewYahooFinanceRepository creates a new instance of yahooFinanceRepository.
func NewYahooFinanceRepository(cfg *config.Config, log *logger.Logger, inmemoryCache cache.Cache) YahooFinanceRepository {
	return &yahooFinanceRepository{
		httpClient: httpclient.New(log, cfg.YahooFinance.BaseURL, cfg.YahooFinance.Timeout,
			httpclient.WithHeader("User-Agent", cfg.YahooFinance.UserAgent),
		),
		cfg:     cfg,
		logger:  log,
		cache:   inmemoryCache,
		limiter: ratelimit.NewProviderLimiter("yahoo_finance", cfg.YahooFinance.MaxRequestPerMinute, cfg.YahooFinance.RequestBurst, log),
		defaultHeader: map[string]string{
			"Accept":          "application/json, text/plain, */*",
			"Accept-Language": "en-US,en;q=0.9",
			"Referer":         "https://finance.yahoo.com/",
			"Origin":          "https://finance.yahoo.com",
		},
	}
}

func (r *yahooFinanceRepository) GetQuote(ctx context.Context, ticker string) (*dto.YahooQuote, error) {
	crumb, err := r.getCrumb(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var yahooResp dto.YahooQuoteResponse
	resp, err := r.httpClient.Get(ctx, "/v7/finance/quote", map[string]string{
		"symbols": ticker,
		"crumb":   crumb,
	}, r.defaultHeader, &yahooResp)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote from yahoo finance: %w", err)
	}

	if err := r.checkStatus(ctx, resp, "quote", crumb); err != nil {
		return nil, err
	}

	if yahooResp.QuoteResponse.Error != nil {
		return nil, fmt.Errorf("yahoo finance quote error: %s", yahooResp.QuoteResponse.Error.Description)
	}

	for i := range yahooResp.QuoteResponse.Result {
		if strings.EqualFold(yahooResp.QuoteResponse.Result[i].Symbol, ticker) {
			return &yahooResp.QuoteResponse.Result[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", dto.ErrQuoteNotFound, ticker)
}

func (r *yahooFinanceRepository) GetQuoteSummary(ctx context.Context, ticker string, modules []string) (*dto.YahooQuoteSummary, error) {
	crumb, err := r.getCrumb(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var yahooResp dto.YahooQuoteSummaryResponse
	endpoint := "/v10/finance/quoteSummary/" + url.PathEscape(ticker)
	resp, err := r.httpClient.Get(ctx, endpoint, map[string]string{
		"modules":   strings.Join(modules, ","),
		"formatted": "false",
		"crumb":     crumb,
	}, r.defaultHeader, &yahooResp)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote summary from yahoo finance: %w", err)
	}

	if err := r.checkStatus(ctx, resp, "quote summary", crumb); err != nil {
		return nil, err
	}

	if yahooResp.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo finance quote summary error: %s", yahooResp.QuoteSummary.Error.Description)
	}

	if len(yahooResp.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("%w: no quote summary for %s", dto.ErrQuoteNotFound, ticker)
	}

	return &yahooResp.QuoteSummary.Result[0], nil
}

func (r *yahooFinanceRepository) Search(ctx context.Context, query string) ([]dto.YahooSearchQuote, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var yahooResp dto.YahooSearchResponse
	endpoint := strings.TrimRight(r.cfg.YahooFinance.SearchURL, "/") + "/v1/finance/search"
	resp, err := r.httpClient.Get(ctx, endpoint, map[string]string{
		"q":           query,
		"quotesCount": strconv.Itoa(r.cfg.YahooFinance.SearchQuotesCount),
		"newsCount":   "0",
	}, r.defaultHeader, &yahooResp)
	if err != nil {
		return nil, fmt.Errorf("failed to search yahoo finance: %w", err)
	}

	if err := r.checkStatus(ctx, resp, "search", ""); err != nil {
		return nil, err
	}

	return yahooResp.Quotes, nil
}

// getCrumb returns the session crumb Yahoo requires on quote endpoints. The
// cookie it is bound to lives in the resty client's jar.
func (r *yahooFinanceRepository) getCrumb(ctx context.Context) (string, error) {
	if crumb, ok := cache.GetFromCache[string](r.cache, common.KEY_YAHOO_CRUMB); ok {
		return crumb, nil
	}

	r.crumbMu.Lock()
	defer r.crumbMu.Unlock()

	// Another caller may have finished the handshake while we waited.
	if crumb, ok := cache.GetFromCache[string](r.cache, common.KEY_YAHOO_CRUMB); ok {
		return crumb, nil
	}

	// fc.yahoo.com answers 404 but still sets the session cookie.
	if _, err := r.httpClient.Get(ctx, r.cfg.YahooFinance.CookieURL, nil, map[string]string{
		"Accept": "text/html,application/xhtml+xml",
	}, nil); err != nil {
		r.logger.WarnContext(ctx, "Failed to obtain yahoo session cookie", logger.ErrorField(err))
	}

	resp, err := r.httpClient.Get(ctx, "/v1/test/getcrumb", nil, r.defaultHeader, nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch yahoo crumb: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("yahoo crumb request returned status: %d", resp.StatusCode)
	}

	crumb := strings.TrimSpace(string(resp.Body))
	if crumb == "" || strings.ContainsAny(crumb, "<{ ") {
		return "", fmt.Errorf("yahoo returned an invalid crumb")
	}

	r.cache.Set(common.KEY_YAHOO_CRUMB, crumb, r.cfg.YahooFinance.CrumbTTL)
	return crumb, nil
}

func (r *yahooFinanceRepository) checkStatus(ctx context.Context, resp *httpclient.BaseResponse, operation, crumb string) error {
	if resp.IsSuccess() {
		return nil
	}

	if crumb != "" && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
		r.dropCrumb(crumb)
	}

	r.logger.ErrorContext(ctx, "Yahoo Finance API returned Non-OK status",
		logger.StringField("operation", operation),
		logger.IntField("status_code", resp.StatusCode),
		logger.StringField("body", string(resp.Body)))

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: yahoo finance %s returned status 404", dto.ErrQuoteNotFound, operation)
	}
	return fmt.Errorf("yahoo finance %s returned status: %d", operation, resp.StatusCode)
}

// dropCrumb forgets rejected only while it is still the cached crumb, so a
// late 401 cannot evict a crumb from a newer handshake.
func (r *yahooFinanceRepository) dropCrumb(rejected string) {
	r.crumbMu.Lock()
	defer r.crumbMu.Unlock()

	if current, ok := cache.GetFromCache[string](r.cache, common.KEY_YAHOO_CRUMB); ok && current == rejected {
		r.cache.Delete(common.KEY_YAHOO_CRUMB)
	}
}
