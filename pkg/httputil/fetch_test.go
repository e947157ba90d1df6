package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Jessica765/vial-userspace/pkg/cache"
	"github.com/Jessica765/vial-userspace/pkg/errors"
)

func TestFetcher_CachesBody(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"layout": []}`))
	}))
	defer srv.Close()

	store, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() failed: %v", err)
	}
	f := NewFetcher(store, nil, time.Hour)
	ctx := context.Background()

	body, err := f.Fetch(ctx, srv.URL)
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	if string(body) != `{"layout": []}` {
		t.Errorf("Fetch() body = %q", body)
	}

	// Second fetch is served from cache
	if _, err := f.Fetch(ctx, srv.URL); err != nil {
		t.Fatalf("second Fetch() failed: %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("server calls = %d, want 1", got)
	}
}

func TestFetcher_NilCacheRefetches(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte("body"))
	}))
	defer srv.Close()

	f := NewFetcher(nil, nil, time.Hour)
	ctx := context.Background()

	for range 2 {
		if _, err := f.Fetch(ctx, srv.URL); err != nil {
			t.Fatalf("Fetch() failed: %v", err)
		}
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("server calls = %d, want 2", got)
	}
}

func TestFetcher_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewFetcher(nil, nil, 0)
	_, err := f.Fetch(context.Background(), srv.URL+"/missing.vil")
	if err == nil {
		t.Fatal("Fetch() should fail for 404")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeNotFound {
		t.Errorf("GetCode() = %q, want %q", code, errors.ErrCodeNotFound)
	}
}

func TestFetcher_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	f := NewFetcher(nil, nil, 0)
	_, err := f.Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("Fetch() should fail for 429")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeRateLimited {
		t.Errorf("GetCode() = %q, want %q", code, errors.ErrCodeRateLimited)
	}
	if !strings.Contains(err.Error(), "retry after 7 seconds") {
		t.Errorf("error should carry the Retry-After hint: %v", err)
	}
}

func TestFetcher_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("recovered"))
	}))
	defer srv.Close()

	f := NewFetcher(nil, nil, 0)
	body, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	if string(body) != "recovered" {
		t.Errorf("Fetch() body = %q, want %q", body, "recovered")
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("server calls = %d, want 2", got)
	}
}

func TestFetcher_RefusesBadScheme(t *testing.T) {
	f := NewFetcher(nil, nil, 0)
	if _, err := f.Fetch(context.Background(), "://nope"); err == nil {
		t.Error("Fetch() should fail for an unparsable URL")
	}
}
