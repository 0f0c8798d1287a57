package feed

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/notnotrachit/GrowwwStocks/cache"
	"github.com/notnotrachit/GrowwwStocks/model"
	"github.com/notnotrachit/GrowwwStocks/pkg/config"
	apperrors "github.com/notnotrachit/GrowwwStocks/pkg/errors"
)

// quota message surfaced when the provider reports a frequency cap
const msgFrequencyLimit = "API call frequency limit reached. Please try again later."

type client struct {
	provider   provider
	httpClient *http.Client
	cache      *cache.Cache
	cacheTTL   time.Duration
	logger     *zap.Logger

	// pacing watermark: time of the most recent dispatched request. The
	// mutex is held across the wait so concurrent callers serialize their
	// dispatch spacing.
	mu          sync.Mutex
	lastRequest time.Time
}

// NewClient builds a QuoteFeed for the configured provider. The provider
// variant is resolved once here; all request logic past buildRequest is
// provider-agnostic.
func NewClient(cfg config.Config, c *cache.Cache, logger *zap.Logger) (QuoteFeed, error) {
	p, err := resolveProvider(cfg)
	if err != nil {
		return nil, err
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &client{
		provider:   p,
		httpClient: &http.Client{Timeout: timeout},
		cache:      c,
		cacheTTL:   ttl,
		logger:     logger,
	}, nil
}

// softError covers the markers the provider embeds in HTTP 200 payloads: a
// quota note, an explicit error field, or an alternate error-message field.
type softError struct {
	Note         string `json:"Note"`
	Error        string `json:"Error"`
	ErrorMessage string `json:"Error Message"`
}

// makeRequest runs one provider call: cache lookup, pacing wait, dispatch,
// soft-error normalization, write-through to cache, decode into out.
func (c *client) makeRequest(ctx context.Context, params map[string]string, out interface{}) error {
	key := fingerprint(params, c.provider.name)
	if c.cache.Get(ctx, key, out) {
		c.logger.Debug("Using cached data",
			zap.String("function", params["function"]),
			zap.String("provider", c.provider.name))
		return nil
	}

	if err := c.waitTurn(ctx); err != nil {
		return err
	}

	req, err := c.buildRequest(ctx, params)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeNetwork, "network error: "+err.Error())
	}

	requestID := uuid.NewString()
	c.logger.Info("Dispatching provider request",
		zap.String("request_id", requestID),
		zap.String("function", params["function"]),
		zap.String("provider", c.provider.name))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Provider request failed",
			zap.String("request_id", requestID), zap.Error(err))
		return apperrors.Wrap(err, apperrors.ErrCodeNetwork, "network error: "+err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Non-200 response",
			zap.String("request_id", requestID), zap.String("status", resp.Status))
		return apperrors.Newf(apperrors.ErrCodeNetwork, "network error: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeNetwork, "network error: "+err.Error())
	}

	if err := checkSoftErrors(body); err != nil {
		c.logger.Warn("Provider soft error",
			zap.String("request_id", requestID), zap.Error(err))
		return err
	}

	c.cache.Set(ctx, key, json.RawMessage(body), c.cacheTTL)

	if err := json.Unmarshal(body, out); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeProvider, "failed to parse provider response")
	}
	return nil
}

// waitTurn enforces the minimum spacing since the last dispatched request.
// The watermark moves when a request is dispatched, not when it completes.
func (c *client) waitTurn(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.lastRequest.IsZero() {
		elapsed := time.Since(c.lastRequest)
		if wait := c.provider.spacing - elapsed; wait > 0 {
			timer := time.NewTimer(wait)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return apperrors.Wrap(ctx.Err(), apperrors.ErrCodeNetwork, "network error: "+ctx.Err().Error())
			case <-timer.C:
			}
		}
	}
	c.lastRequest = time.Now()
	return nil
}

func (c *client) buildRequest(ctx context.Context, params map[string]string) (*http.Request, error) {
	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	if c.provider.gateway {
		// the gateway rejects requests without an explicit datatype
		values.Set("datatype", "json")
	} else {
		values.Set("apikey", c.provider.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.provider.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if c.provider.gateway {
		req.Header.Set("x-rapidapi-key", c.provider.apiKey)
		req.Header.Set("x-rapidapi-host", c.provider.host)
	}
	return req, nil
}

// checkSoftErrors normalizes provider-specific soft-error markers into the
// single error channel. Order matters: a quota note wins over the generic
// error fields.
func checkSoftErrors(body []byte) error {
	var marker softError
	if err := json.Unmarshal(body, &marker); err != nil {
		// non-object payloads carry no markers
		return nil
	}
	if marker.Note != "" {
		return apperrors.New(apperrors.ErrCodeRateLimit, msgFrequencyLimit)
	}
	if marker.Error != "" {
		return apperrors.New(apperrors.ErrCodeProvider, marker.Error)
	}
	if marker.ErrorMessage != "" {
		return apperrors.New(apperrors.ErrCodeProvider, marker.ErrorMessage)
	}
	return nil
}

func (c *client) TopMovers(ctx context.Context) (*model.Movers, error) {
	var response moversResponse
	err := c.makeRequest(ctx, map[string]string{
		"function": FuncTopGainersLosers,
	}, &response)
	if err != nil {
		return nil, err
	}
	return transformMovers(&response), nil
}

func (c *client) CompanyOverview(ctx context.Context, symbol string) (model.CompanyOverview, error) {
	if err := model.ValidateSymbol(symbol); err != nil {
		return nil, err
	}
	var overview model.CompanyOverview
	err := c.makeRequest(ctx, map[string]string{
		"function": FuncCompanyOverview,
		"symbol":   strings.ToUpper(strings.TrimSpace(symbol)),
	}, &overview)
	if err != nil {
		return nil, err
	}
	return overview, nil
}

func (c *client) TimeSeriesDaily(ctx context.Context, symbol string) (*model.MarketData, error) {
	if err := model.ValidateSymbol(symbol); err != nil {
		return nil, err
	}
	var response dailyResponse
	err := c.makeRequest(ctx, map[string]string{
		"function":   FuncTimeSeriesDaily,
		"symbol":     strings.ToUpper(strings.TrimSpace(symbol)),
		"outputsize": "compact",
	}, &response)
	if err != nil {
		return nil, err
	}
	return parseDailySeries(&response)
}

func (c *client) SymbolSearch(ctx context.Context, keywords string) ([]model.SearchMatch, error) {
	if err := model.ValidateSearchQuery(keywords); err != nil {
		return nil, err
	}
	var response searchResponse
	err := c.makeRequest(ctx, map[string]string{
		"function": FuncSymbolSearch,
		"keywords": keywords,
	}, &response)
	if err != nil {
		return nil, err
	}
	return transformSearchMatches(&response), nil
}
