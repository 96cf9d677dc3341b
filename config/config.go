package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:"app" yaml:"app"`
	Log          Logger       `mapstructure:"logger" yaml:"logger"`
	API          API          `mapstructure:"api" yaml:"api"`
	YahooFinance YahooFinance `mapstructure:"yahoo_finance" yaml:"yahoo_finance"`
	Image        Image        `mapstructure:"image" yaml:"image"`
	LLM          LLM          `mapstructure:"llm" yaml:"llm"`
	Gemini       Gemini       `mapstructure:"gemini" yaml:"gemini"`
	Cache        Cache        `mapstructure:"cache" yaml:"cache"`
}

type App struct {
	Name    string `mapstructure:"name" yaml:"name"`
	Version string `mapstructure:"version" yaml:"version"`
}

type Logger struct {
	Level    string `mapstructure:"level" yaml:"level"`
	Encoding string `mapstructure:"encoding" yaml:"encoding"`
}

type API struct {
	Port              int           `mapstructure:"port" yaml:"port"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout" yaml:"request_timeout"`
	BodyLimit         string        `mapstructure:"body_limit" yaml:"body_limit"`
	RateLimitPerSec   float64       `mapstructure:"rate_limit_per_sec" yaml:"rate_limit_per_sec"`
	RateLimitBurst    int           `mapstructure:"rate_limit_burst" yaml:"rate_limit_burst"`
	RateLimitExpireIn time.Duration `mapstructure:"rate_limit_expire_in" yaml:"rate_limit_expire_in"`
	AllowOrigins      []string      `mapstructure:"allow_origins" yaml:"allow_origins"`
}

type YahooFinance struct {
	BaseURL             string        `mapstructure:"base_url" yaml:"base_url"`
	SearchURL           string        `mapstructure:"search_url" yaml:"search_url"`
	CookieURL           string        `mapstructure:"cookie_url" yaml:"cookie_url"`
	UserAgent           string        `mapstructure:"user_agent" yaml:"user_agent"`
	Timeout             time.Duration `mapstructure:"timeout" yaml:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute" yaml:"max_request_per_minute"`
	RequestBurst        int           `mapstructure:"request_burst" yaml:"request_burst"`
	SearchQuotesCount   int           `mapstructure:"search_quotes_count" yaml:"search_quotes_count"`
	CrumbTTL            time.Duration `mapstructure:"crumb_ttl" yaml:"crumb_ttl"`
}

type Image struct {
	BaseURL             string        `mapstructure:"base_url" yaml:"base_url"`
	APIKey              string        `mapstructure:"api_key" yaml:"api_key"`
	Model               string        `mapstructure:"model" yaml:"model"`
	Width               int           `mapstructure:"width" yaml:"width"`
	Height              int           `mapstructure:"height" yaml:"height"`
	Timeout             time.Duration `mapstructure:"timeout" yaml:"timeout"`
	PollInterval        time.Duration `mapstructure:"poll_interval" yaml:"poll_interval"`
	PollTimeout         time.Duration `mapstructure:"poll_timeout" yaml:"poll_timeout"`
	MaxPollAttempts     int           `mapstructure:"max_poll_attempts" yaml:"max_poll_attempts"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute" yaml:"max_request_per_minute"`
}

type LLM struct {
	Provider            string        `mapstructure:"provider" yaml:"provider"`
	BaseURL             string        `mapstructure:"base_url" yaml:"base_url"`
	APIKey              string        `mapstructure:"api_key" yaml:"api_key"`
	Model               string        `mapstructure:"model" yaml:"model"`
	Timeout             time.Duration `mapstructure:"timeout" yaml:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute" yaml:"max_request_per_minute"`
}

type Gemini struct {
	APIKey    string `mapstructure:"api_key" yaml:"api_key"`
	BaseModel string `mapstructure:"base_model" yaml:"base_model"`
}

type Cache struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration" yaml:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval" yaml:"cleanup_interval"`
	QuoteTTL          time.Duration `mapstructure:"quote_ttl" yaml:"quote_ttl"`
	TickerTTL         time.Duration `mapstructure:"ticker_ttl" yaml:"ticker_ttl"`
}

const (
	LLMProviderOpenAI = "openai"
	LLMProviderGemini = "gemini"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "stock-insight")
	v.SetDefault("app.version", "dev")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")

	v.SetDefault("api.port", 4000)
	v.SetDefault("api.request_timeout", 2*time.Minute)
	v.SetDefault("api.body_limit", "1M")
	v.SetDefault("api.rate_limit_per_sec", 10)
	v.SetDefault("api.rate_limit_burst", 30)
	v.SetDefault("api.rate_limit_expire_in", 3*time.Minute)
	v.SetDefault("api.allow_origins", []string{"*"})

	v.SetDefault("yahoo_finance.base_url", "https://query1.finance.yahoo.com")
	v.SetDefault("yahoo_finance.search_url", "https://query2.finance.yahoo.com")
	v.SetDefault("yahoo_finance.cookie_url", "https://fc.yahoo.com")
	v.SetDefault("yahoo_finance.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0.0.0 Safari/537.36")
	v.SetDefault("yahoo_finance.timeout", 15*time.Second)
	v.SetDefault("yahoo_finance.max_request_per_minute", 120)
	v.SetDefault("yahoo_finance.request_burst", 4)
	v.SetDefault("yahoo_finance.search_quotes_count", 6)
	v.SetDefault("yahoo_finance.crumb_ttl", time.Hour)

	v.SetDefault("image.base_url", "https://api.bfl.ml/v1")
	v.SetDefault("image.model", "flux-pro-1.1")
	v.SetDefault("image.width", 896)
	v.SetDefault("image.height", 1152)
	v.SetDefault("image.timeout", 30*time.Second)
	v.SetDefault("image.poll_interval", 500*time.Millisecond)
	v.SetDefault("image.poll_timeout", 90*time.Second)
	v.SetDefault("image.max_poll_attempts", 180)
	v.SetDefault("image.max_request_per_minute", 24)

	v.SetDefault("llm.provider", LLMProviderOpenAI)
	v.SetDefault("llm.base_url", "https://api.openai.com/v1")
	v.SetDefault("llm.model", "gpt-3.5-turbo")
	v.SetDefault("llm.timeout", 60*time.Second)
	v.SetDefault("llm.max_request_per_minute", 60)

	v.SetDefault("gemini.base_model", "gemini-2.0-flash")

	v.SetDefault("cache.default_expiration", 5*time.Minute)
	v.SetDefault("cache.cleanup_interval", 10*time.Minute)
	v.SetDefault("cache.quote_ttl", time.Minute)
	v.SetDefault("cache.ticker_ttl", 24*time.Hour)
}

// bindLegacyEnv keeps the older flat variable names (PORT, API_KEY, BFL_API_KEY) working.
func bindLegacyEnv(v *viper.Viper) error {
	legacy := map[string][]string{
		"api.port":       {"API_PORT", "PORT"},
		"llm.api_key":    {"LLM_API_KEY", "API_KEY", "OPENAI_API_KEY"},
		"image.api_key":  {"IMAGE_API_KEY", "BFL_API_KEY"},
		"gemini.api_key": {"GEMINI_API_KEY"},
	}
	for key, envs := range legacy {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	return nil
}

// Load reads config.yaml (optional), .env (optional) and the environment.
func Load() (*Config, error) {
	return LoadWithViper(viper.New(), ".")
}

func LoadWithViper(v *viper.Viper, configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file loaded:", err)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AddConfigPath(configPath)
	v.AutomaticEnv()
	setDefaults(v)

	if err := bindLegacyEnv(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		fmt.Println("No config file loaded:", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.API.Port <= 0 {
		return fmt.Errorf("invalid api port: %d", c.API.Port)
	}
	switch c.LLM.Provider {
	case LLMProviderOpenAI, LLMProviderGemini:
	default:
		return fmt.Errorf("unsupported llm provider: %q", c.LLM.Provider)
	}
	if c.Image.PollInterval <= 0 {
		return fmt.Errorf("image poll interval must be positive")
	}
	if c.Image.MaxPollAttempts <= 0 {
		return fmt.Errorf("image max poll attempts must be positive")
	}
	if c.YahooFinance.MaxRequestPerMinute <= 0 || c.Image.MaxRequestPerMinute <= 0 || c.LLM.MaxRequestPerMinute <= 0 {
		return fmt.Errorf("max request per minute must be positive")
	}
	return nil
}

// Masked returns a copy with secrets hidden, for printing.
func (c Config) Masked() Config {
	c.Image.APIKey = mask(c.Image.APIKey)
	c.LLM.APIKey = mask(c.LLM.APIKey)
	c.Gemini.APIKey = mask(c.Gemini.APIKey)
	return c
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return "****"
	}
	return "****" + secret[len(secret)-4:]
}
