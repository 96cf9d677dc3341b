package dto

const PlaceholderManualInput = "Requires manual input or additional API"

const (
	RecommendationBuy  = "Buy"
	RecommendationSell = "Sell"
)

// StockSummary is the flattened record returned by GET /api/stock/:ticker.
type StockSummary struct {
	Name                  string `json:"name"`
	Description           string `json:"description"`
	MarketCap             string `json:"marketCap"`
	SharesOutstanding     string `json:"sharesOutstanding"`
	Float                 string `json:"float"`
	EvEbitda              string `json:"evEbitda"`
	PeTtm                 string `json:"peTtm"`
	DividendRate          string `json:"dividendRate"`
	CashPosition          string `json:"cashPosition"`
	TotalDebt             string `json:"totalDebt"`
	DebtToEquity          string `json:"debtToEquity"`
	CurrentRatio          string `json:"currentRatio"`
	StrengthsAndCatalysts string `json:"strengthsAndCatalysts"`
	AnalystRating         string `json:"analystRating"`
	NumberOfAnalysts      string `json:"numberOfAnalysts"`
	MeanTargetPrice       string `json:"meanTargetPrice"`
	ImpliedChange         string `json:"impliedChange"`
	RisksAndMitigation    string `json:"risksAndMitigation"`
	Recommendation        string `json:"recommendation"`
}

type TickerRequest struct {
	StockName string `json:"stockName" validate:"required"`
}

type TickerResponse struct {
	Ticker string `json:"ticker"`
}
