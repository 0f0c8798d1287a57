package feed

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/notnotrachit/GrowwwStocks/pkg/config"
)

// Provider endpoint functions.
const (
	FuncTopGainersLosers = "TOP_GAINERS_LOSERS"
	FuncCompanyOverview  = "OVERVIEW"
	FuncTimeSeriesDaily  = "TIME_SERIES_DAILY"
	FuncSymbolSearch     = "SYMBOL_SEARCH"
)

// Default minimum spacing between dispatches, per provider. The direct API
// allows 5 requests/minute; the gateway tolerates a faster pace.
const (
	DefaultSpacingDirect  = 12 * time.Second
	DefaultSpacingGateway = 5 * time.Second
)

// provider is the tagged variant behind the two supported upstreams. It is
// resolved once at client construction; request building is the only place
// that branches on gateway.
type provider struct {
	name    string
	baseURL string
	apiKey  string
	host    string
	gateway bool
	spacing time.Duration
}

func resolveProvider(cfg config.Config) (provider, error) {
	switch cfg.Provider {
	case config.ProviderAlphaVantage:
		p := provider{
			name:    config.ProviderAlphaVantage,
			baseURL: cfg.AlphaVantageBaseURL,
			apiKey:  cfg.AlphaVantageAPIKey,
			spacing: DefaultSpacingDirect,
		}
		if cfg.RequestSpacing > 0 {
			p.spacing = cfg.RequestSpacing
		}
		return p, nil
	case config.ProviderRapidAPI:
		p := provider{
			name:    config.ProviderRapidAPI,
			baseURL: cfg.RapidAPIBaseURL,
			apiKey:  cfg.RapidAPIKey,
			host:    cfg.RapidAPIHost,
			gateway: true,
			spacing: DefaultSpacingGateway,
		}
		if cfg.RequestSpacing > 0 {
			p.spacing = cfg.RequestSpacing
		}
		return p, nil
	default:
		return provider{}, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
}

// Info returns a short human-readable description of the provider.
func (p provider) Info() string {
	if p.gateway {
		return fmt.Sprintf("%s (%s): higher limits, faster requests", p.name, p.host)
	}
	return fmt.Sprintf("%s: 5 requests/minute, 500 requests/day", p.name)
}

// ProviderInfo describes the provider the configuration selects, including
// its request pacing.
func ProviderInfo(cfg config.Config) (string, error) {
	p, err := resolveProvider(cfg)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s\nrequest spacing: %s", p.Info(), p.spacing), nil
}

// fingerprint derives the cache key for a call: the request parameters plus
// the provider identity, serialized deterministically. encoding/json sorts
// map keys, so identical parameters always produce identical fingerprints.
func fingerprint(params map[string]string, providerName string) string {
	keyed := make(map[string]string, len(params)+1)
	for k, v := range params {
		keyed[k] = v
	}
	keyed["provider"] = providerName
	raw, _ := json.Marshal(keyed)
	return string(raw)
}
