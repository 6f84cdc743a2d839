package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"draftboard/internal/schema"
)

// HTTPSource downloads a CSV board, e.g. a published spreadsheet export.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource creates an HTTPSource with optional proxy support.
func NewHTTPSource(rawURL, proxyURL string) *HTTPSource {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &HTTPSource{
		URL: rawURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (h *HTTPSource) Name() string { return "http:" + h.URL }

func (h *HTTPSource) Fetch(ctx context.Context) (schema.Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return schema.Table{}, fmt.Errorf("create request: %w", err)
	}
	resp, err := h.Client.Do(req)
	if err != nil {
		return schema.Table{}, fmt.Errorf("fetch board: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return schema.Table{}, fmt.Errorf("fetch board: status %d, body: %s", resp.StatusCode, string(body))
	}
	return ReadCSV(resp.Body)
}
