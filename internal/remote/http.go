package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"picipher/internal/domain"
)

const (
	// DefaultURL serves the first million digits of pi as "3.1415...".
	DefaultURL = "https://www.angio.net/pi/digits/pi1000000.txt"

	// MaxArtifactBytes caps the response body. The real artifact is a little
	// over 1,000,000 bytes.
	MaxArtifactBytes = 4 << 20
)

// HTTP fetches the digit artifact with a single GET.
type HTTP struct {
	URL  string
	HTTP *http.Client
}

// NewHTTP returns a fetcher for url. A nil client means http.DefaultClient.
func NewHTTP(url string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{URL: url, HTTP: client}
}

// FetchDigits returns the response body. Non-2xx statuses, transport errors
// and oversized bodies are errors.
func (c *HTTP) FetchDigits(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "text/plain")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("remote get %s: %s", c.URL, resp.Status)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, MaxArtifactBytes+1))
	if err != nil {
		return "", fmt.Errorf("remote get %s: %w", c.URL, err)
	}
	if len(b) > MaxArtifactBytes {
		return "", fmt.Errorf("remote get %s: body exceeds %d bytes", c.URL, MaxArtifactBytes)
	}
	return string(b), nil
}

var _ domain.DigitFetcher = (*HTTP)(nil)
