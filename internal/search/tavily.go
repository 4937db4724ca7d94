package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"podblog/internal/llm"
)

const (
	defaultEndpoint   = "https://api.tavily.com/search"
	defaultMaxResults = 5
)

// Tavily is a minimal client for the Tavily web search API.
type Tavily struct {
	apiKey     string
	endpoint   string
	maxResults int
	httpClient *http.Client
}

// NewTavily creates a search client with the default endpoint.
func NewTavily(apiKey string) *Tavily {
	return &Tavily{
		apiKey:     apiKey,
		endpoint:   defaultEndpoint,
		maxResults: defaultMaxResults,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// WithEndpoint overrides the API endpoint, used by tests.
func (t *Tavily) WithEndpoint(endpoint string) *Tavily {
	t.endpoint = endpoint
	return t
}

// SearchResult is one hit returned by the API.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

type searchRequest struct {
	APIKey     string `json:"api_key"`
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type searchResponse struct {
	Results []SearchResult `json:"results"`
}

// Search runs a query and returns the top results.
func (t *Tavily) Search(ctx context.Context, query string) ([]SearchResult, error) {
	payload, err := json.Marshal(searchRequest{
		APIKey:     t.apiKey,
		Query:      query,
		MaxResults: t.maxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tavily request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read tavily response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parse tavily response: %w", err)
	}
	return parsed.Results, nil
}

// Tool exposes the client as a model tool binding.
func (t *Tavily) Tool() llm.Tool {
	return llm.Tool{
		Name:        "tavily_search",
		Description: "Search the web for recent articles, examples, or data about a topic. Returns titles, URLs, and content snippets.",
		Parameters: json.RawMessage(`{
			"type": "object",
			"properties": {
				"query": {"type": "string", "description": "The search query"}
			},
			"required": ["query"]
		}`),
		Call: func(ctx context.Context, args json.RawMessage) (string, error) {
			var payload struct {
				Query string `json:"query"`
			}
			if err := json.Unmarshal(args, &payload); err != nil {
				return "", fmt.Errorf("parse search arguments: %w", err)
			}
			results, err := t.Search(ctx, payload.Query)
			if err != nil {
				return "", err
			}
			return formatResults(results), nil
		},
	}
}

func formatResults(results []SearchResult) string {
	if len(results) == 0 {
		return "no results found"
	}
	var b strings.Builder
	for i, r := range results {
		fmt.Fprintf(&b, "%d. %s (%s)\n%s\n\n", i+1, r.Title, r.URL, r.Content)
	}
	return strings.TrimSpace(b.String())
}
