package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestTavilySearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req searchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.APIKey != "tvly-test" {
			t.Errorf("api_key = %q", req.APIKey)
		}
		if req.Query != "podcast hosting" {
			t.Errorf("query = %q", req.Query)
		}
		json.NewEncoder(w).Encode(searchResponse{Results: []SearchResult{
			{Title: "Hosting Guide", URL: "https://example.com/guide", Content: "How to host."},
		}})
	}))
	defer srv.Close()

	client := NewTavily("tvly-test").WithEndpoint(srv.URL)
	results, err := client.Search(context.Background(), "podcast hosting")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].URL != "https://example.com/guide" {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestTavilySearchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid api key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewTavily("bad-key").WithEndpoint(srv.URL)
	if _, err := client.Search(context.Background(), "anything"); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestTavilyTool(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(searchResponse{Results: []SearchResult{
			{Title: "First", URL: "https://example.com/1", Content: "one"},
			{Title: "Second", URL: "https://example.com/2", Content: "two"},
		}})
	}))
	defer srv.Close()

	tool := NewTavily("tvly-test").WithEndpoint(srv.URL).Tool()
	if tool.Name != "tavily_search" {
		t.Fatalf("tool name = %q", tool.Name)
	}

	out, err := tool.Call(context.Background(), json.RawMessage(`{"query":"go"}`))
	if err != nil {
		t.Fatalf("tool call: %v", err)
	}
	if !strings.Contains(out, "https://example.com/1") || !strings.Contains(out, "Second") {
		t.Fatalf("formatted results missing entries: %q", out)
	}
}
