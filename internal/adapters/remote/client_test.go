package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"city_explorer/internal/adapters/remote"
)

func TestGetJSON_DecodesAndSendsHeaders(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "secret" || r.Header.Get("Accept") != "application/json" {
			t.Errorf("missing headers: %v", r.Header)
		}
		if r.URL.Path != "/things" || r.URL.Query().Get("q") != "a b" {
			t.Errorf("unexpected request %s?%s", r.URL.Path, r.URL.RawQuery)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "x1"})
	}))
	defer ts.Close()

	c := remote.New("test", ts.URL+"/", 100, time.Second)
	c.SetHeader("Authorization", "secret")

	var out struct {
		ID string `json:"id"`
	}
	if err := c.GetJSON(context.Background(), "things", "/things", map[string][]string{"q": {"a b"}}, &out); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.ID != "x1" {
		t.Fatalf("unexpected payload: %+v", out)
	}
}

func TestGetJSON_StatusMapping(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusNotFound, remote.ErrNotFound},
		{http.StatusUnauthorized, remote.ErrUnauthorized},
		{http.StatusForbidden, remote.ErrForbidden},
		{http.StatusTooManyRequests, remote.ErrRateLimited},
	}
	for _, tc := range cases {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}))
		c := remote.New("test", ts.URL, 100, time.Second)
		var out map[string]any
		err := c.GetJSON(context.Background(), "x", "/", nil, &out)
		ts.Close()
		if !errors.Is(err, tc.want) {
			t.Fatalf("status %d: expected %v, got %v", tc.status, tc.want, err)
		}
	}
}

func TestGetJSON_NoRetryOnServerError(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c := remote.New("test", ts.URL, 100, time.Second)
	var out map[string]any
	if err := c.GetJSON(context.Background(), "x", "/", nil, &out); err == nil {
		t.Fatalf("expected error")
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("expected a single attempt, got %d", n)
	}
}

func TestGetJSON_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer ts.Close()

	c := remote.New("test", ts.URL, 100, 50*time.Millisecond)
	var out map[string]any
	err := c.GetJSON(context.Background(), "x", "/", nil, &out)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestGetJSON_MalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer ts.Close()

	c := remote.New("test", ts.URL, 100, time.Second)
	var out map[string]any
	if err := c.GetJSON(context.Background(), "x", "/", nil, &out); err == nil {
		t.Fatalf("expected decode error")
	}
}
