package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Supported quote providers.
const (
	ProviderAlphaVantage = "alphavantage"
	ProviderRapidAPI     = "rapidapi"
)

// Config holds service configuration.
type Config struct {
	Provider string

	AlphaVantageBaseURL string
	AlphaVantageAPIKey  string

	RapidAPIBaseURL string
	RapidAPIKey     string
	RapidAPIHost    string

	// RequestSpacing is the minimum delay between two provider dispatches.
	// Zero means "use the provider default" (12s direct, 5s gateway).
	RequestSpacing time.Duration
	RequestTimeout time.Duration
	CacheTTL       time.Duration

	DBPath   string
	LogLevel string
	LogFile  string
}

// LoadConfig loads configuration from environment variables, with an
// optional config file when CONFIG_FILE points at one.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PROVIDER", ProviderAlphaVantage)
	v.SetDefault("ALPHA_VANTAGE_BASE_URL", "https://www.alphavantage.co/query")
	v.SetDefault("ALPHA_VANTAGE_API_KEY", "")
	v.SetDefault("RAPIDAPI_BASE_URL", "https://alpha-vantage.p.rapidapi.com/query")
	v.SetDefault("RAPIDAPI_KEY", "")
	v.SetDefault("RAPIDAPI_HOST", "alpha-vantage.p.rapidapi.com")
	v.SetDefault("REQUEST_SPACING", time.Duration(0))
	v.SetDefault("REQUEST_TIMEOUT", 10*time.Second)
	v.SetDefault("CACHE_TTL", 5*time.Minute)
	v.SetDefault("DB_PATH", "growwstocks.db")
	v.SetDefault("LOG_LEVEL", "dev")
	v.SetDefault("LOG_FILE", "growwstocks.log")

	if cfgFile := v.GetString("CONFIG_FILE"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
	}

	cfg := Config{
		Provider:            strings.ToLower(v.GetString("PROVIDER")),
		AlphaVantageBaseURL: v.GetString("ALPHA_VANTAGE_BASE_URL"),
		AlphaVantageAPIKey:  v.GetString("ALPHA_VANTAGE_API_KEY"),
		RapidAPIBaseURL:     v.GetString("RAPIDAPI_BASE_URL"),
		RapidAPIKey:         v.GetString("RAPIDAPI_KEY"),
		RapidAPIHost:        v.GetString("RAPIDAPI_HOST"),
		RequestSpacing:      v.GetDuration("REQUEST_SPACING"),
		RequestTimeout:      v.GetDuration("REQUEST_TIMEOUT"),
		CacheTTL:            v.GetDuration("CACHE_TTL"),
		DBPath:              v.GetString("DB_PATH"),
		LogLevel:            v.GetString("LOG_LEVEL"),
		LogFile:             v.GetString("LOG_FILE"),
	}

	if cfg.Provider != ProviderAlphaVantage && cfg.Provider != ProviderRapidAPI {
		return Config{}, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
	return cfg, nil
}
