// internal/platform/httpclient/httpclient_test.go
package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"sublance/internal/platform/errors"
	"sublance/internal/platform/logx"
)

func newTestClient(maxRetries int) *Client {
	return New(Config{
		Timeout:      2 * time.Second,
		MaxRetries:   maxRetries,
		RetryBackoff: 10 * time.Millisecond,
	}, logx.NewSilent())
}

func TestFetchReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello"))
	}))
	defer srv.Close()

	body, err := newTestClient(0).Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() = %v", err)
	}
	if string(body) != "hello" {
		t.Errorf("body = %q, want %q", body, "hello")
	}
}

func TestFetchJSONSetsAcceptHeader(t *testing.T) {
	var accept atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept.Store(r.Header.Get("Accept"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := newTestClient(0).FetchJSON(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchJSON() = %v", err)
	}
	if got := accept.Load(); got != "application/json" {
		t.Errorf("Accept header = %v, want application/json", got)
	}
}

func TestGetSendsUserAgent(t *testing.T) {
	var agent atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agent.Store(r.Header.Get("User-Agent"))
	}))
	defer srv.Close()

	resp, err := newTestClient(0).Get(context.Background(), srv.URL, nil)
	if err != nil {
		t.Fatalf("Get() = %v", err)
	}
	resp.Body.Close()

	if got := agent.Load(); got != defaultUserAgent {
		t.Errorf("User-Agent = %v, want %v", got, defaultUserAgent)
	}
}

func TestGetRetriesRetryableStatus(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	body, err := newTestClient(3).Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() = %v", err)
	}
	if string(body) != "ok" {
		t.Errorf("body = %q", body)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("server saw %d calls, want 3", got)
	}
}

func TestGetDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestClient(3).Fetch(context.Background(), srv.URL)
	if !errors.IsNotFound(err) {
		t.Errorf("Fetch() = %v, want ErrNotFound", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("server saw %d calls, want 1", got)
	}
}

func TestGetExhaustsRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(1).Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("Fetch() = nil, want error after exhausted retries")
	}
}

func TestCheckStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"ok", http.StatusOK, nil},
		{"created", http.StatusCreated, nil},
		{"rate limited", http.StatusTooManyRequests, errors.ErrRateLimit},
		{"not found", http.StatusNotFound, errors.ErrNotFound},
		{"unauthorized", http.StatusUnauthorized, errors.ErrUnauthorized},
		{"forbidden", http.StatusForbidden, errors.ErrUnauthorized},
		{"bad gateway", http.StatusBadGateway, errors.ErrServiceUnavailable},
		{"unavailable", http.StatusServiceUnavailable, errors.ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &http.Response{StatusCode: tt.status, Status: http.StatusText(tt.status)}
			err := CheckStatus(resp)

			if tt.want == nil {
				if err != nil {
					t.Errorf("CheckStatus() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("CheckStatus() = %v, want %v", err, tt.want)
			}
		})
	}

	t.Run("unknown status", func(t *testing.T) {
		resp := &http.Response{StatusCode: http.StatusTeapot, Status: "418 I'm a teapot"}
		if err := CheckStatus(resp); err == nil {
			t.Error("CheckStatus() = nil, want generic error")
		}
	})

	t.Run("nil response", func(t *testing.T) {
		if err := CheckStatus(nil); err == nil {
			t.Error("CheckStatus(nil) = nil, want error")
		}
	})
}

func TestGetHonorsContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestClient(0).Get(ctx, srv.URL, nil)
	if err == nil {
		t.Fatal("Get() = nil, want context error")
	}
}
