// Package supabase implements the table-query contract against a
// PostgREST-compatible endpoint (Supabase REST v1).
package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/fortuna/gridiron/internal/metrics"
	"github.com/fortuna/gridiron/internal/store"
)

const defaultTimeout = 30 * time.Second

// maxRetryElapsed bounds how long a single fetch keeps retrying transient
// upstream statuses before giving up.
const maxRetryElapsed = 30 * time.Second

// Client queries a PostgREST endpoint over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a client for the given base URL (e.g. the Supabase project
// URL). The API key is optional for anonymous endpoints.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Select issues one filtered table scan. Filter expressions pass through
// verbatim as query parameters, which is exactly PostgREST's wire syntax.
func (c *Client) Select(ctx context.Context, table string, p store.SelectParams) ([]store.Row, error) {
	q := url.Values{}
	if p.Columns != "" {
		q.Set("select", p.Columns)
	}
	for col, expr := range p.Filters {
		q.Set(col, expr)
	}
	if p.Order != "" {
		q.Set("order", p.Order)
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}

	body, _, err := c.get(ctx, table, q, nil)
	if err != nil {
		return nil, err
	}

	var rows []store.Row
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decoding %s rows: %w", table, err)
	}
	return rows, nil
}

// Count returns the total row count of a table using PostgREST's exact
// count preference; the count rides in the Content-Range header.
func (c *Client) Count(ctx context.Context, table string) (int, error) {
	q := url.Values{}
	q.Set("select", "id")
	q.Set("limit", "1")

	_, contentRange, err := c.get(ctx, table, q, http.Header{"Prefer": []string{"count=exact"}})
	if err != nil {
		return 0, err
	}

	// Content-Range looks like "0-0/1234".
	_, total, found := strings.Cut(contentRange, "/")
	if !found {
		return 0, fmt.Errorf("counting %s: missing Content-Range total", table)
	}
	n, err := strconv.Atoi(strings.TrimSpace(total))
	if err != nil {
		return 0, fmt.Errorf("counting %s: bad Content-Range %q", table, contentRange)
	}
	return n, nil
}

// get performs the request with retry on transient statuses. Rate limits
// and upstream 5xx are retried with exponential backoff; every other
// failure is permanent and propagates to the caller.
func (c *Client) get(ctx context.Context, table string, q url.Values, hdr http.Header) ([]byte, string, error) {
	u := fmt.Sprintf("%s/rest/v1/%s?%s", c.baseURL, table, q.Encode())

	var body []byte
	var contentRange string
	start := time.Now()

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("querying %s: %w", table, err))
		}
		if c.apiKey != "" {
			req.Header.Set("apikey", c.apiKey)
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}
		for k, vs := range hdr {
			for _, v := range vs {
				req.Header.Set(k, v)
			}
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("querying %s: %w", table, err))
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return fmt.Errorf("querying %s: transient status %d", table, resp.StatusCode)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return backoff.Permanent(fmt.Errorf("querying %s: status %d: %s", table, resp.StatusCode, strings.TrimSpace(string(b))))
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("reading %s response: %w", table, err))
		}
		contentRange = resp.Header.Get("Content-Range")
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = maxRetryElapsed
	err := backoff.Retry(operation, backoff.WithContext(bo, ctx))

	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.StoreQueriesTotal.WithLabelValues(table, status).Inc()
	metrics.StoreQueryLatency.WithLabelValues(table).Observe(time.Since(start).Seconds())

	if err != nil {
		return nil, "", err
	}
	return body, contentRange, nil
}
