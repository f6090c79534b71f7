package taxrate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Client looks up sales-tax rates from the external rate service.
// The service takes a zip code as a raw-string POST body and answers
// with a plain-text decimal fraction, e.g. "0.07".
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a rate-lookup client for the given endpoint.
// The timeout bounds each outbound call.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Rate fetches the sales-tax rate for a zip code. Any outcome other
// than a 200 response with a parseable decimal body is an error.
func (c *Client) Rate(ctx context.Context, zip string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(zip))
	if err != nil {
		return 0, fmt.Errorf("build rate request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	res, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("call rate service: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rate service returned status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, fmt.Errorf("read rate response: %w", err)
	}

	rate, err := strconv.ParseFloat(strings.TrimSpace(string(body)), 64)
	if err != nil {
		return 0, fmt.Errorf("parse rate %q: %w", strings.TrimSpace(string(body)), err)
	}

	return rate, nil
}
