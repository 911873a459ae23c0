// internal/market/client.go
package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rovshanmuradov/coinfolio/internal/config"
)

const (
	apiKeyHeader      = "x-cg-demo-api-key"
	defaultRetryDelay = 500 * time.Millisecond
	maxErrorBody      = 512
)

// Client is a read-only client for the CoinGecko v3 REST API.
type Client struct {
	baseURL    string
	apiKey     string
	perPage    int
	retries    int
	retryDelay time.Duration
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a client from configuration. A zero request timeout means
// requests never time out.
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	perPage := cfg.MarketsPerPage
	if perPage <= 0 {
		perPage = config.DefaultMarketsPerPage
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.APIBaseURL, "/"),
		apiKey:     cfg.APIKey,
		perPage:    perPage,
		retries:    cfg.Retries,
		retryDelay: defaultRetryDelay,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		logger:     logger.Named("market"),
	}
}

// ListMarkets returns one page of coins ordered by market cap, descending.
func (c *Client) ListMarkets(ctx context.Context, page int) ([]MarketSummary, error) {
	if page < 1 {
		page = 1
	}
	query := url.Values{}
	query.Set("vs_currency", "usd")
	query.Set("order", "market_cap_desc")
	query.Set("per_page", strconv.Itoa(c.perPage))
	query.Set("page", strconv.Itoa(page))
	query.Set("sparkline", "false")

	var coins []MarketSummary
	if err := c.get(ctx, "list markets", "/coins/markets", query, &coins); err != nil {
		return nil, err
	}
	return coins, nil
}

// GetCoin returns the full detail of one coin.
func (c *Client) GetCoin(ctx context.Context, id string) (*CoinDetail, error) {
	path, err := coinPath(id, "")
	if err != nil {
		return nil, err
	}

	var coin CoinDetail
	if err := c.get(ctx, "get coin", path, nil, &coin); err != nil {
		return nil, err
	}
	return &coin, nil
}

// GetCoinRaw returns the coin detail document as decoded JSON
// (map[string]interface{}), for ad-hoc field queries.
func (c *Client) GetCoinRaw(ctx context.Context, id string) (interface{}, error) {
	path, err := coinPath(id, "")
	if err != nil {
		return nil, err
	}

	var doc interface{}
	if err := c.get(ctx, "get coin", path, nil, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// GetPriceHistory returns USD prices of a coin over the range.
func (c *Client) GetPriceHistory(ctx context.Context, id string, r Range) ([]PricePoint, error) {
	if _, err := ParseRange(int(r)); err != nil {
		return nil, err
	}
	path, err := coinPath(id, "/market_chart")
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("vs_currency", "usd")
	query.Set("days", strconv.Itoa(r.Days()))

	var chart struct {
		Prices [][]float64 `json:"prices"`
	}
	if err := c.get(ctx, "get price history", path, query, &chart); err != nil {
		return nil, err
	}

	points := make([]PricePoint, 0, len(chart.Prices))
	for _, p := range chart.Prices {
		if len(p) < 2 {
			continue
		}
		points = append(points, PricePoint{
			Time:  time.UnixMilli(int64(p[0])),
			Price: p[1],
		})
	}
	return points, nil
}

// FetchCoinView issues the detail and history requests concurrently and
// waits for both. A failure of one does not cancel the other.
func (c *Client) FetchCoinView(ctx context.Context, id string, r Range) (*CoinView, error) {
	var (
		g       errgroup.Group
		coin    *CoinDetail
		history []PricePoint
	)

	g.Go(func() error {
		var err error
		coin, err = c.GetCoin(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = c.GetPriceHistory(ctx, id, r)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &CoinView{Coin: coin, History: history}, nil
}

func coinPath(id, suffix string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", errors.New("coin id is required")
	}
	return "/coins/" + url.PathEscape(id) + suffix, nil
}

// get performs a GET and decodes the JSON body into out, retrying transient
// failures when retries are configured.
func (c *Client) get(ctx context.Context, op, path string, query url.Values, out interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	requestID := uuid.New().String()
	log := c.logger.With(zap.String("request_id", requestID), zap.String("op", op))
	start := time.Now()

	operation := func() (struct{}, error) {
		err := c.do(ctx, op, target, out)
		if err == nil {
			return struct{}{}, nil
		}
		var netErr *NetworkError
		if errors.As(err, &netErr) && !netErr.Temporary() {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.retryDelay
	policy.MaxInterval = c.retryDelay * 10

	notify := func(err error, next time.Duration) {
		log.Warn("Retrying request", zap.Error(err), zap.Duration("backoff", next))
	}

	log.Debug("Request", zap.String("url", target))
	_, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(uint(c.retries+1)),
		backoff.WithNotify(notify))
	if err != nil {
		log.Warn("Request failed", zap.String("url", target), zap.Error(err))
		return err
	}

	log.Debug("Request complete", zap.Duration("elapsed", time.Since(start)))
	return nil
}

func (c *Client) do(ctx context.Context, op, target string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return &NetworkError{Op: op, URL: target, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: op, URL: target, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &NetworkError{
			Op:         op,
			URL:        target,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status, body: %s", strings.TrimSpace(string(body))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &NetworkError{Op: op, URL: target, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
