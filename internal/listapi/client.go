package listapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/listcraft/listcraft/internal/logging"
	"github.com/listcraft/listcraft/internal/urls"
	"github.com/listcraft/listcraft/internal/version"
)

const (
	// DefaultTimeout bounds a single fetch, including reading the body
	DefaultTimeout = 15 * time.Second

	// MaxResponseBytes caps how much of the response body is read
	MaxResponseBytes = 8 << 20
)

// Client fetches grouped lists from the list service.
//
// A Client never retries on its own: a failed fetch is reported to the
// caller, which decides whether to offer a retry.
type Client struct {
	// BaseURL is the full lists endpoint
	BaseURL string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	// Timeout bounds each fetch (0 = no limit beyond ctx)
	Timeout time.Duration

	// UserAgent is sent with every request
	UserAgent string

	// inflight coalesces concurrent FetchLists calls into one request
	inflight singleflight.Group
}

// NewClient creates a client for endpoint. An empty endpoint selects the
// public list service.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = urls.DefaultListsEndpoint
	}
	return &Client{
		BaseURL:    endpoint,
		HTTPClient: &http.Client{},
		Timeout:    DefaultTimeout,
		UserAgent:  version.UserAgent(),
	}
}

// SetTimeout sets the per-fetch timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.Timeout = timeout
}

// FetchLists performs one GET against the lists endpoint and returns the
// groups in document order.
//
// Callers arriving while a fetch is already running share its result. The
// shared request runs under the first caller's context; later callers stop
// waiting when their own ctx is done.
func (c *Client) FetchLists(ctx context.Context) (*Response, error) {
	ch := c.inflight.DoChan("lists", func() (interface{}, error) {
		return c.fetchOnce(ctx)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			logging.Debug("Shared in-flight list fetch", zap.String("endpoint", c.BaseURL))
		}
		return res.Val.(*Response), nil
	case <-ctx.Done():
		return nil, NewNetworkError("request canceled", c.BaseURL, ctx.Err())
	}
}

// fetchOnce performs a single request
func (c *Client) fetchOnce(ctx context.Context) (*Response, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	started := time.Now()
	resp, err := c.get(ctx)
	if err != nil {
		logging.LogFetch(c.BaseURL, 0, 0, err)
		return nil, err
	}

	logging.Debug("List fetch timing",
		zap.String("endpoint", c.BaseURL),
		zap.Duration("elapsed", time.Since(started)),
	)
	logging.LogFetch(c.BaseURL, len(resp.Groups), resp.ItemCount(), nil)
	return resp, nil
}

func (c *Client) get(ctx context.Context) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL, nil)
	if err != nil {
		return nil, NewNetworkError("failed to create GET request", c.BaseURL, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, NewNetworkError("GET request failed", c.BaseURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		// Drain a little so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, NewHTTPError(resp.StatusCode, c.BaseURL, fmt.Sprintf("unexpected status code: %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes+1))
	if err != nil {
		return nil, NewNetworkError("failed to read response body", c.BaseURL, err)
	}
	if len(body) > MaxResponseBytes {
		return nil, NewParseError(fmt.Sprintf("response larger than %d bytes", MaxResponseBytes), c.BaseURL, nil)
	}

	var out Response
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, NewParseError("failed to parse JSON response", c.BaseURL, err)
	}

	return &out, nil
}
