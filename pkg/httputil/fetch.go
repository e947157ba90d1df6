package httputil

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/Jessica765/vial-userspace/pkg/cache"
	"github.com/Jessica765/vial-userspace/pkg/errors"
)

const (
	httpTimeout = 10 * time.Second

	// Upper bound on response bodies. Keymap documents are a few
	// kilobytes; anything near this limit is not one.
	maxBodySize = 4 << 20
)

// Fetcher downloads remote keymap documents with caching and retry.
// Transient failures (network errors, 5xx responses) are retried with
// exponential backoff; successful bodies are cached under a key built by
// the configured Keyer so repeated conversions skip the network.
type Fetcher struct {
	http  *http.Client
	cache cache.Cache
	keyer cache.Keyer
	ttl   time.Duration
}

// NewFetcher creates a Fetcher storing responses in c for up to ttl.
// A nil cache disables caching; a nil keyer falls back to the default
// key layout.
func NewFetcher(c cache.Cache, keyer cache.Keyer, ttl time.Duration) *Fetcher {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	return &Fetcher{
		http:  &http.Client{Timeout: httpTimeout},
		cache: c,
		keyer: keyer,
		ttl:   ttl,
	}
}

// Fetch returns the body at url, from cache when possible.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	key := f.keyer.FetchKey("http", url)
	if data, hit, _ := f.cache.Get(ctx, key); hit {
		return data, nil
	}

	var body []byte
	fetch := func() error {
		var err error
		body, err = f.doRequest(ctx, url)
		return err
	}
	if err := RetryWithBackoff(ctx, fetch); err != nil {
		return nil, err
	}

	_ = f.cache.Set(ctx, key, body, f.ttl)
	return body, nil
}

func (f *Fetcher) doRequest(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "building request for %s", url)
	}

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, &RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "fetching %s", url)}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "reading %s", url)}
	}
	return body, nil
}

func checkStatus(resp *http.Response) error {
	code := resp.StatusCode
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "resource not found: %s", resp.Request.URL)
	case code == http.StatusTooManyRequests:
		retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		cause := &errors.RateLimitedError{RetryAfter: retryAfter, Message: "rate limited by remote host"}
		return errors.Wrap(errors.ErrCodeRateLimited, cause, "fetching %s", resp.Request.URL)
	case code >= 500:
		return &RetryableError{Err: errors.New(errors.ErrCodeNetwork, "server error: status %d", code)}
	default:
		return errors.New(errors.ErrCodeNetwork, "unexpected status %d", code)
	}
}
