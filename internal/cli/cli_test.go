package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Jessica765/vial-userspace/pkg/cache"
)

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	if root.Use != appName {
		t.Errorf("root.Use = %q, want %q", root.Use, appName)
	}
	if !root.SilenceUsage {
		t.Error("root command should silence usage on errors")
	}

	names := make(map[string]bool)
	for _, sub := range root.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"render", "convert", "list", "graph", "serve", "cache", "completion"} {
		if !names[want] {
			t.Errorf("root command missing %q subcommand", want)
		}
	}
}

func TestNewCacheOff(t *testing.T) {
	store, err := newCache(context.Background(), cacheOff)
	if err != nil {
		t.Fatalf("newCache(off) error: %v", err)
	}
	defer store.Close()

	if _, ok := store.(*cache.NullCache); !ok {
		t.Errorf("newCache(off) = %T, want *cache.NullCache", store)
	}
}

func TestNewCacheFile(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	store, err := newCache(context.Background(), cacheFile)
	if err != nil {
		t.Fatalf("newCache(file) error: %v", err)
	}
	defer store.Close()

	dir := filepath.Join(os.Getenv("XDG_CACHE_HOME"), appName)
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("cache directory not created: %v", err)
	}
}

func TestNewCacheDefaultsToFile(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	store, err := newCache(context.Background(), "")
	if err != nil {
		t.Fatalf("newCache(\"\") error: %v", err)
	}
	defer store.Close()

	if _, ok := store.(*cache.FileCache); !ok {
		t.Errorf("newCache(\"\") = %T, want *cache.FileCache", store)
	}
}

func TestNewCacheRedisBadURL(t *testing.T) {
	t.Setenv("KEYMAPVIZ_REDIS", "not-a-redis-url")

	if _, err := newCache(context.Background(), cacheRedis); err == nil {
		t.Error("newCache(redis) with a malformed URL should fail")
	}
}

func TestNewCacheUnknown(t *testing.T) {
	_, err := newCache(context.Background(), "memcached")
	if err == nil {
		t.Fatal("newCache(memcached) should fail")
	}
	if !strings.Contains(err.Error(), "unknown cache backend") {
		t.Errorf("newCache(memcached) error = %q, want mention of unknown backend", err)
	}
}
