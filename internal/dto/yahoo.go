package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Quote summary modules requested for the stock summary.
const (
	ModuleFinancialData        = "financialData"
	ModuleDefaultKeyStatistics = "defaultKeyStatistics"
	ModuleRecommendationTrend  = "recommendationTrend"
	ModuleSummaryProfile       = "summaryProfile"
)

// OptionalFloat is a Yahoo numeric field. Yahoo sends a bare number, null, an
// empty object or {"raw": n, "fmt": "..."} depending on the endpoint.
type OptionalFloat struct {
	Value float64
	Valid bool
}

func NewOptionalFloat(v float64) OptionalFloat {
	return OptionalFloat{Value: v, Valid: true}
}

func (o *OptionalFloat) UnmarshalJSON(b []byte) error {
	*o = OptionalFloat{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	switch b[0] {
	case '{':
		var wrapped struct {
			Raw *OptionalFloat `json:"raw"`
		}
		if err := json.Unmarshal(b, &wrapped); err != nil {
			return err
		}
		if wrapped.Raw != nil {
			*o = *wrapped.Raw
		}
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			*o = NewOptionalFloat(v)
		}
		return nil
	}

	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*o = NewOptionalFloat(v)
	return nil
}

func (o OptionalFloat) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Ptr returns nil for a missing value.
func (o OptionalFloat) Ptr() *float64 {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

type YahooError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type YahooQuoteResponse struct {
	QuoteResponse struct {
		Result []YahooQuote `json:"result"`
		Error  *YahooError  `json:"error"`
	} `json:"quoteResponse"`
}

type YahooQuote struct {
	Symbol              string        `json:"symbol"`
	ShortName           string        `json:"shortName"`
	LongName            string        `json:"longName"`
	LongBusinessSummary string        `json:"longBusinessSummary"`
	Currency            string        `json:"currency"`
	MarketCap           OptionalFloat `json:"marketCap"`
	SharesOutstanding   OptionalFloat `json:"sharesOutstanding"`
	TrailingPE          OptionalFloat `json:"trailingPE"`
	DividendRate        OptionalFloat `json:"dividendRate"`
	RegularMarketPrice  OptionalFloat `json:"regularMarketPrice"`
}

type YahooQuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []YahooQuoteSummary `json:"result"`
		Error  *YahooError         `json:"error"`
	} `json:"quoteSummary"`
}

type YahooQuoteSummary struct {
	FinancialData        *YahooFinancialData       `json:"financialData"`
	DefaultKeyStatistics *YahooKeyStatistics       `json:"defaultKeyStatistics"`
	RecommendationTrend  *YahooRecommendationTrend `json:"recommendationTrend"`
	SummaryProfile       *YahooSummaryProfile      `json:"summaryProfile"`
}

type YahooFinancialData struct {
	CurrentPrice            OptionalFloat `json:"currentPrice"`
	TargetMeanPrice         OptionalFloat `json:"targetMeanPrice"`
	RecommendationMean      OptionalFloat `json:"recommendationMean"`
	NumberOfAnalystOpinions OptionalFloat `json:"numberOfAnalystOpinions"`
	TotalCash               OptionalFloat `json:"totalCash"`
	TotalDebt               OptionalFloat `json:"totalDebt"`
	DebtToEquity            OptionalFloat `json:"debtToEquity"`
	CurrentRatio            OptionalFloat `json:"currentRatio"`
}

type YahooKeyStatistics struct {
	FloatShares        OptionalFloat `json:"floatShares"`
	SharesOutstanding  OptionalFloat `json:"sharesOutstanding"`
	EnterpriseToEbitda OptionalFloat `json:"enterpriseToEbitda"`
}

type YahooRecommendationTrend struct {
	Trend []YahooTrendPeriod `json:"trend"`
}

// YahooTrendPeriod counts analyst ratings for one period; trend[0] is the current month.
type YahooTrendPeriod struct {
	Period     string        `json:"period"`
	StrongBuy  OptionalFloat `json:"strongBuy"`
	Buy        OptionalFloat `json:"buy"`
	Hold       OptionalFloat `json:"hold"`
	Sell       OptionalFloat `json:"sell"`
	StrongSell OptionalFloat `json:"strongSell"`
}

type YahooSummaryProfile struct {
	Sector              string `json:"sector"`
	Industry            string `json:"industry"`
	LongBusinessSummary string `json:"longBusinessSummary"`
}

type YahooSearchResponse struct {
	Count  int                `json:"count"`
	Quotes []YahooSearchQuote `json:"quotes"`
}

type YahooSearchQuote struct {
	Symbol    string `json:"symbol"`
	ShortName string `json:"shortname"`
	LongName  string `json:"longname"`
	Exchange  string `json:"exchange"`
	QuoteType string `json:"quoteType"`
}
