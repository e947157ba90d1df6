package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jessica765/vial-userspace/pkg/cache"
	"github.com/Jessica765/vial-userspace/pkg/server"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string // listen address
	cacheKind string // render cache backend: "file", "redis", "mongo", "off"
}

// serveCommand creates the serve command for the HTTP preview server.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: ":8080", cacheKind: cacheFile}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered diagrams over HTTP",
		Long: `Serve the built-in keyboards as plain-text diagrams over HTTP.

Endpoints:
  GET /healthz                              liveness probe
  GET /keyboards                            catalogue as JSON
  GET /keyboards/{name}.txt                 every layer as text
  GET /keyboards/{name}/layers/{layer}.txt  one layer as text

Diagram endpoints accept ?split_at=N to override the split column.
Rendered diagrams are cached in the configured backend; the redis and
mongo backends read their connection strings from KEYMAPVIZ_REDIS and
KEYMAPVIZ_MONGO.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.cacheKind, "cache", opts.cacheKind, "render cache backend: file (default), redis, mongo, off")

	return cmd
}

// runServe builds the configured cache backend and runs the server until
// the context is cancelled.
func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	store, err := newCache(ctx, opts.cacheKind)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer store.Close()

	c.Logger.Debugf("Using %s render cache", opts.cacheKind)

	srv := server.New(server.Config{
		Addr:   opts.addr,
		Cache:  store,
		Keyer:  cache.NewScopedKeyer(nil, "server:"),
		TTL:    defaultCacheTTL,
		Logger: c.Logger,
	})
	return srv.Start(ctx)
}
