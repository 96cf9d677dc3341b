package common

const (
	KEY_YAHOO_CRUMB  = "yahoo_crumb"
	KEY_STOCK_QUOTE  = "stock_summary:%s"
	KEY_TICKER_QUERY = "ticker_lookup:%s"
)

const (
	KEY_LOG_REQUEST_ID = "request_id"
)
