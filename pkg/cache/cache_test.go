package cache

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"
)

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss before anything is stored
	_, hit, err := c.Get(ctx, "render:sofle")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("Get should miss on an empty cache")
	}

	// Round-trip
	if err := c.Set(ctx, "render:sofle", []byte("diagram"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "render:sofle")
	if err != nil || !hit {
		t.Fatalf("Get = %v, %v; want hit", hit, err)
	}
	if string(data) != "diagram" {
		t.Errorf("Get data = %q, want %q", data, "diagram")
	}

	// Delete
	if err := c.Delete(ctx, "render:sofle"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "render:sofle"); hit {
		t.Error("Get should miss after Delete")
	}

	// Deleting a missing key is not an error
	if err := c.Delete(ctx, "never-stored"); err != nil {
		t.Errorf("Delete missing key error: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "key", []byte("value"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); !hit {
		t.Fatal("entry should be fresh immediately after Set")
	}

	time.Sleep(20 * time.Millisecond)

	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("entry should expire after its ttl")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	fc := c.(*FileCache)
	if err := os.WriteFile(fc.path("key"), []byte("not json"), 0o644); err != nil {
		t.Fatalf("corrupting entry: %v", err)
	}

	_, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("corrupt entry should read as a miss")
	}
}

func TestFileCacheKeySafety(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	// URLs must be usable as keys despite slashes and query strings.
	key := "fetch:http:https://example.com/layouts/sofle.vil?raw=1"
	if err := c.Set(ctx, key, []byte("x"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, key); !hit {
		t.Error("URL key should round-trip")
	}
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestHash(t *testing.T) {
	// Determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("different inputs should produce different hashes")
	}

	// SHA-256 produces 64 hex chars
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// FetchKey keeps the URL verbatim
	fetchKey := k.FetchKey("http", "https://example.com/sofle.vil")
	if fetchKey != "fetch:http:https://example.com/sofle.vil" {
		t.Errorf("FetchKey unexpected: %s", fetchKey)
	}

	// RenderKey folds options into the hash
	rk1 := k.RenderKey("sofle", RenderKeyOpts{Layer: "base", SplitAt: 6})
	rk2 := k.RenderKey("sofle", RenderKeyOpts{Layer: "base", SplitAt: 4})
	if rk1 == rk2 {
		t.Error("different RenderKeyOpts should produce different keys")
	}
	if !strings.HasPrefix(rk1, "render:") {
		t.Errorf("RenderKey should carry the render prefix: %s", rk1)
	}

	// GraphKey distinguishes formats
	gk1 := k.GraphKey("sofle", GraphKeyOpts{Format: "svg"})
	gk2 := k.GraphKey("sofle", GraphKeyOpts{Format: "png"})
	if gk1 == gk2 {
		t.Error("different GraphKeyOpts should produce different keys")
	}

	// Same inputs, same key
	if k.RenderKey("sofle", RenderKeyOpts{Layer: "base"}) != k.RenderKey("sofle", RenderKeyOpts{Layer: "base"}) {
		t.Error("keys should be deterministic")
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(NewDefaultKeyer(), "v1:")

	// All keys should be prefixed
	fetchKey := scoped.FetchKey("http", "https://example.com/a.vil")
	if fetchKey != "v1:fetch:http:https://example.com/a.vil" {
		t.Errorf("ScopedKeyer FetchKey unexpected: %s", fetchKey)
	}

	renderKey := scoped.RenderKey("corne", RenderKeyOpts{})
	if !strings.HasPrefix(renderKey, "v1:render:") {
		t.Errorf("ScopedKeyer RenderKey should be prefixed: %s", renderKey)
	}

	graphKey := scoped.GraphKey("corne", GraphKeyOpts{Format: "dot"})
	if !strings.HasPrefix(graphKey, "v1:graph:") {
		t.Errorf("ScopedKeyer GraphKey should be prefixed: %s", graphKey)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "srv:")
	key := scoped.FetchKey("http", "u")
	if key != "srv:fetch:http:u" {
		t.Errorf("unexpected key with nil inner: %s", key)
	}
}

func TestNewRedisCacheBadURL(t *testing.T) {
	if _, err := NewRedisCache("not-a-redis-url"); err == nil {
		t.Error("NewRedisCache should reject an invalid URL")
	}
}

func TestNewMongoCacheBadURI(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if _, err := NewMongoCache(ctx, "bogus://localhost"); err == nil {
		t.Error("NewMongoCache should reject an invalid URI")
	}
}
