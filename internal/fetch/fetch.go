package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultTimeout is applied when no http.Client is injected.
const DefaultTimeout = 5 * time.Second

// maxConcurrentFetches bounds FetchAllJSON parallelism.
const maxConcurrentFetches = 5

// Client fetches JSON documents over HTTP.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a fetch client. A nil httpClient gets a default client
// with DefaultTimeout.
func NewClient(httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		httpClient: httpClient,
		logger:     logger,
	}
}

// FetchJSON retrieves the given URL and decodes the response body as a
// JSON object.
func (c *Client) FetchJSON(ctx context.Context, url string) (map[string]any, error) {
	if err := ValidateURL(url); err != nil {
		return nil, fmt.Errorf("validate url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("fetch failed", "url", url, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("fetch failed", "url", url, "status", resp.Status)
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}

	var data map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	return data, nil
}

// FetchAllJSON retrieves several URLs concurrently, at most
// maxConcurrentFetches in flight. Results are positionally aligned with
// the input; the first error cancels outstanding fetches.
func (c *Client) FetchAllJSON(ctx context.Context, urls []string) ([]map[string]any, error) {
	results := make([]map[string]any, len(urls))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	for i, url := range urls {
		g.Go(func() error {
			data, err := c.FetchJSON(ctx, url)
			results[i] = data
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("fetch all: %w", err)
	}
	return results, nil
}
