package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Jessica765/vial-userspace/pkg/buildinfo"
	"github.com/Jessica765/vial-userspace/pkg/cache"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "keymapviz"

	// defaultCacheTTL bounds how long cached fetches and rendered diagrams
	// stay valid.
	defaultCacheTTL = 24 * time.Hour
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "keymapviz",
		Short:        "Keymapviz draws keyboard layouts as ASCII diagrams",
		Long:         `Keymapviz is a CLI tool for drawing keyboard layer maps as ASCII diagrams, converting Vial keymap exports into editable documents, and graphing how layers reach each other.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Cache Factory
// =============================================================================

// Cache backends selectable via --cache and --no-cache.
const (
	cacheFile  = "file"
	cacheRedis = "redis"
	cacheMongo = "mongo"
	cacheOff   = "off"
)

// newCache creates a cache backend by name. The redis and mongo backends
// read their connection strings from KEYMAPVIZ_REDIS and KEYMAPVIZ_MONGO.
// An unusable local cache directory degrades to the null cache rather than
// failing the command.
func newCache(ctx context.Context, kind string) (cache.Cache, error) {
	switch kind {
	case cacheOff:
		return cache.NewNullCache(), nil
	case "", cacheFile:
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	case cacheRedis:
		url := os.Getenv("KEYMAPVIZ_REDIS")
		if url == "" {
			url = "redis://localhost:6379/0"
		}
		return cache.NewRedisCache(url)
	case cacheMongo:
		uri := os.Getenv("KEYMAPVIZ_MONGO")
		if uri == "" {
			uri = "mongodb://localhost:27017"
		}
		return cache.NewMongoCache(ctx, uri)
	default:
		return nil, fmt.Errorf("unknown cache backend: %s (must be 'file', 'redis', 'mongo', or 'off')", kind)
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/keymapviz/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
