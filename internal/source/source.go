package source

import (
	"context"
	"strings"

	"draftboard/internal/schema"
)

// Source supplies a raw ranked list.
type Source interface {
	Fetch(ctx context.Context) (schema.Table, error)
	Name() string
}

// New picks an HTTP source for http(s) locations and a file source otherwise.
func New(location, proxyURL string) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(location, proxyURL)
	}
	return NewFileSource(location)
}

// MockSource returns a fixed table, for development and testing.
type MockSource struct {
	Table schema.Table
	Err   error
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) Fetch(_ context.Context) (schema.Table, error) {
	return m.Table, m.Err
}
