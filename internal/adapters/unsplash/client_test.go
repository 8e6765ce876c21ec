package unsplash_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"city_explorer/internal/adapters/unsplash"
	"city_explorer/internal/catalog"
)

func photoServer(t *testing.T, hits *int32, known map[string]string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		if r.URL.Path != "/search/photos" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("client_id") != "k" || r.URL.Query().Get("per_page") != "1" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		var results []map[string]any
		if u, ok := known[r.URL.Query().Get("query")]; ok {
			results = append(results, map[string]any{"id": "p1", "urls": map[string]any{"regular": u}})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"total": len(results), "results": results})
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestResolve_PrimaryHit(t *testing.T) {
	var hits int32
	ts := photoServer(t, &hits, map[string]string{"Galata Kulesi İstanbul": "https://img/galata"})
	c := unsplash.New(ts.URL, "k", 100, time.Second)

	got := c.Resolve(context.Background(), "Galata Kulesi İstanbul", "Galata Kulesi")
	if got != "https://img/galata" {
		t.Fatalf("unexpected url %q", got)
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("expected one call, got %d", n)
	}
}

func TestResolve_FallsBackToSecondary(t *testing.T) {
	var hits int32
	ts := photoServer(t, &hits, map[string]string{"Pantheon": "https://img/pantheon"})
	c := unsplash.New(ts.URL, "k", 100, time.Second)

	got := c.Resolve(context.Background(), "Pantheon Roma", "Pantheon")
	if got != "https://img/pantheon" {
		t.Fatalf("unexpected url %q", got)
	}
	if n := atomic.LoadInt32(&hits); n != 2 {
		t.Fatalf("expected two calls, got %d", n)
	}
}

func TestResolve_PlaceholderWhenNothingFound(t *testing.T) {
	var hits int32
	ts := photoServer(t, &hits, nil)
	c := unsplash.New(ts.URL, "k", 100, time.Second)

	got := c.Resolve(context.Background(), "Unknown Place", "Unknown")
	if got != catalog.PlaceholderImage("Unknown Place") {
		t.Fatalf("expected placeholder, got %q", got)
	}
}

func TestResolve_NoKeySkipsNetwork(t *testing.T) {
	var hits int32
	ts := photoServer(t, &hits, map[string]string{"x": "https://img/x"})
	c := unsplash.New(ts.URL, "", 100, time.Second)

	got := c.Resolve(context.Background(), "x", "x")
	if !strings.HasPrefix(got, "https://placehold.co/") {
		t.Fatalf("expected placeholder, got %q", got)
	}
	if n := atomic.LoadInt32(&hits); n != 0 {
		t.Fatalf("expected no remote calls, got %d", n)
	}
}

func TestLookup_ServerErrorIsMiss(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()
	c := unsplash.New(ts.URL, "k", 100, time.Second)

	if u, ok := c.Lookup(context.Background(), "anything"); ok || u != "" {
		t.Fatalf("expected miss, got %q %v", u, ok)
	}
}
