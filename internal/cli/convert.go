package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Jessica765/vial-userspace/pkg/errors"
	"github.com/Jessica765/vial-userspace/pkg/httputil"
	"github.com/Jessica765/vial-userspace/pkg/keymap"
	"github.com/Jessica765/vial-userspace/pkg/keymap/vial"
)

const (
	formatTOML = "toml" // canonical keymap document format
	formatJSON = "json"
)

// validDocFormats is the set of supported document formats.
var validDocFormats = map[string]bool{formatTOML: true, formatJSON: true}

// validateDocFormat checks that the requested document format is valid.
func validateDocFormat(f string) error {
	if !validDocFormats[f] {
		return fmt.Errorf("invalid format: %s (must be 'toml' or 'json')", f)
	}
	return nil
}

// convertOpts holds the command-line flags for the convert command.
// These options control the wiring profile, document format, and output.
type convertOpts struct {
	format   string // document format: "toml" or "json"
	keyboard string // wiring profile override (default: export's base name)
	output   string // output file path (stdout if empty)
	noCache  bool   // bypass the HTTP cache for URL inputs
}

// convertCommand creates the convert command for turning Vial exports into
// keymap documents.
func (c *CLI) convertCommand() *cobra.Command {
	opts := convertOpts{format: formatTOML}

	cmd := &cobra.Command{
		Use:   "convert [export.vil]",
		Short: "Convert a Vial export into a keymap document",
		Long: `Convert a Vial .vil export into a keymap document.

The export's wiring matrix is mapped onto visual rows using a built-in
keyboard profile. The profile is picked by the export's file name, or
explicitly with --keyboard. URL arguments are fetched first; responses
are cached locally.

Examples:
  keymapviz convert sofle.vil                       # Profile from file name
  keymapviz convert export.vil --keyboard corne     # Explicit profile
  keymapviz convert https://example.com/sofle.vil   # Fetch, then convert
  keymapviz convert sofle.vil -f json -o sofle.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateDocFormat(opts.format); err != nil {
				return err
			}
			return c.runConvert(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "document format: toml (default), json")
	cmd.Flags().StringVarP(&opts.keyboard, "keyboard", "k", "", "wiring profile: "+strings.Join(vial.ProfileNames(), ", "))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the HTTP cache for URL inputs")

	return cmd
}

// runConvert reads the export, converts it with the selected profile, and
// encodes the resulting document.
func (c *CLI) runConvert(ctx context.Context, input string, opts *convertOpts) error {
	logger := loggerFromContext(ctx)

	name := profileName(input, opts.keyboard)
	profile, ok := vial.ProfileFor(name)
	if !ok {
		return errors.New(errors.ErrCodeProfileNotFound,
			"no wiring profile for %q (available: %s)", name, strings.Join(vial.ProfileNames(), ", "))
	}

	r, err := c.openExport(ctx, input, opts.noCache)
	if err != nil {
		return err
	}
	defer r.Close()

	logger.Infof("Converting %s (%s profile)", input, profile.Name)
	prog := newProgress(logger)
	kb, err := vial.Convert(r, profile)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Converted %d layers", len(kb.Layers)))

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	switch opts.format {
	case formatJSON:
		err = keymap.EncodeJSON(out, kb)
	default:
		err = keymap.EncodeTOML(out, kb)
	}
	if err != nil {
		return err
	}

	if opts.output != "" {
		printSuccess("Wrote %s document", opts.format)
		printFile(opts.output)
		printNewline()
		printNextStep("Render", appName+" render "+opts.output)
	}
	return nil
}

// profileName picks the wiring profile name: the explicit override when
// given, otherwise the export's base name. URL paths use the same base
// name rule.
func profileName(input, override string) string {
	if override != "" {
		return override
	}
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// openExport opens the export for reading, fetching over HTTP when input
// is a URL.
func (c *CLI) openExport(ctx context.Context, input string, noCache bool) (io.ReadCloser, error) {
	if !isURL(input) {
		f, err := os.Open(input)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.New(errors.ErrCodeFileNotFound, "export not found: %s", input)
			}
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "failed to open %s", input)
		}
		return f, nil
	}

	kind := cacheFile
	if noCache {
		kind = cacheOff
	}
	store, err := newCache(ctx, kind)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	fetcher := httputil.NewFetcher(store, nil, defaultCacheTTL)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Fetching %s...", input))
	spinner.Start()
	data, err := fetcher.Fetch(ctx, input)
	if err != nil {
		spinner.StopWithError("Fetch failed")
		return nil, err
	}
	spinner.Stop()

	return io.NopCloser(bytes.NewReader(data)), nil
}

// isURL returns true if s is an HTTP or HTTPS URL.
func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
