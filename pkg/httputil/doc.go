// Package httputil fetches remote keymap documents with caching and retry.
//
// # Overview
//
// The package provides two pieces used wherever keymapviz touches the
// network:
//
//   - [Fetcher]: cached HTTP GET for keymap exports and documents
//   - [Retry]: automatic retry with exponential backoff
//
// # Fetching
//
// [Fetcher] wraps http.Client with a [cache.Cache] so repeated conversions
// of the same export skip the network entirely:
//
//	store, _ := cache.NewFileCache(dir)
//	fetcher := httputil.NewFetcher(store, nil, 24*time.Hour)
//	body, err := fetcher.Fetch(ctx, "https://example.com/sofle.vil")
//
// Responses are keyed through a [cache.Keyer], so the CLI and server share
// one key layout and can share one backend.
//
// # Retry
//
// [Retry] re-runs an operation when it fails with a [RetryableError].
// The Fetcher marks network failures and 5xx responses retryable; 404s
// and rate limits surface immediately as coded errors from pkg/errors.
//
//	err := httputil.Retry(ctx, 3, time.Second, func() error {
//	    return doFlakyThing()
//	})
//
// [RetryWithBackoff] applies the standard 3 attempts with a 1 second
// initial delay, doubling after each failure.
package httputil
