package repository

import (
	"time"

	"stock-insight/config"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		YahooFinance: config.YahooFinance{
			BaseURL:             baseURL,
			SearchURL:           baseURL,
			CookieURL:           baseURL + "/cookie",
			UserAgent:           "stock-insight-test",
			Timeout:             2 * time.Second,
			MaxRequestPerMinute: 6000,
			RequestBurst:        4,
			SearchQuotesCount:   6,
			CrumbTTL:            time.Hour,
		},
		Image: config.Image{
			BaseURL:             baseURL + "/v1",
			APIKey:              "bfl-key",
			Model:               "flux-pro-1.1",
			Width:               896,
			Height:              1152,
			Timeout:             2 * time.Second,
			PollInterval:        time.Millisecond,
			MaxPollAttempts:     5,
			MaxRequestPerMinute: 6000,
		},
		LLM: config.LLM{
			Provider:            config.LLMProviderOpenAI,
			Model:               "gpt-3.5-turbo",
			MaxRequestPerMinute: 6000,
		},
		Gemini: config.Gemini{BaseModel: "gemini-2.0-flash"},
	}
}
