package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Jessica765/vial-userspace/pkg/errors"
	"github.com/Jessica765/vial-userspace/pkg/keymap"
	"github.com/Jessica765/vial-userspace/pkg/render/ascii"
)

// renderOpts holds the command-line flags for the render command.
// These options select what to draw and where the diagram goes.
type renderOpts struct {
	keyboard string // catalogue keyboard, alternative to the positional argument
	layer    string // single layer to draw (default: every layer)
	splitAt  int    // split column override for split keyboards
	output   string // output file path (stdout if empty)
}

// renderCommand creates the render command for drawing ASCII diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [keyboard|document]",
		Short: "Draw a keyboard's layers as ASCII diagrams",
		Long: `Draw a keyboard's layer maps as ASCII diagrams.

The argument is either a built-in keyboard or a keymap document (.toml or
.json). Without an argument an interactive picker opens.

Examples:
  keymapviz render sofle                   # Built-in keyboard, every layer
  keymapviz render sofle --layer mo1       # One layer only
  keymapviz render my-board.toml           # Keymap document
  keymapviz render corne --split-at 5 -o corne.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := opts.keyboard
			if len(args) > 0 {
				arg = args[0]
			}
			return c.runRender(cmd.Context(), arg, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.keyboard, "keyboard", "k", "", "built-in keyboard: "+strings.Join(keymap.Names(), ", "))
	cmd.Flags().StringVarP(&opts.layer, "layer", "l", "", "draw a single layer (default: every layer)")
	cmd.Flags().IntVar(&opts.splitAt, "split-at", 0, "split column override for split keyboards")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// runRender resolves the keyboard, draws the requested layers, and writes
// the diagram.
func (c *CLI) runRender(ctx context.Context, arg string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	interactive := arg == ""

	kb, err := c.loadKeyboard(ctx, arg)
	if err != nil {
		return err
	}
	if kb == nil {
		return nil // picker dismissed
	}

	layerName := opts.layer
	if interactive && layerName == "" {
		picked, ok, err := pickLayer(kb)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		layerName = picked
	}

	if opts.splitAt > 0 && kb.Config.Geometry != keymap.GeometrySplit {
		logger.Warnf("--split-at has no effect on %s keyboards", kb.Config.Geometry)
	}

	logger.Debugf("Rendering %s (%d layers)", kb.Name, len(kb.Layers))

	var text string
	if layerName != "" {
		text, err = ascii.RenderLayer(kb, layerName, opts.splitAt)
		if err != nil {
			return err
		}
	} else {
		text = ascii.RenderKeyboard(kb, opts.splitAt)
	}

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.WriteString(out, text); err != nil {
		return err
	}

	if opts.output != "" {
		printSuccess("Rendered %s", kb.Name)
		printFile(opts.output)
	}
	return nil
}

// loadKeyboard resolves arg into a keyboard: a catalogue name, a keymap
// document path, or the interactive picker when arg is empty. A nil
// keyboard with a nil error means the picker was dismissed.
func (c *CLI) loadKeyboard(ctx context.Context, arg string) (*keymap.Keyboard, error) {
	if arg == "" {
		return pickKeyboard()
	}
	if looksLikeFile(arg) {
		logger := loggerFromContext(ctx)
		logger.Debugf("Loading document %s", arg)
		return keymap.LoadFile(arg)
	}
	kb, ok := keymap.Lookup(arg)
	if !ok {
		return nil, errors.New(errors.ErrCodeKeyboardNotFound,
			"unknown keyboard %q (available: %s)", arg, strings.Join(keymap.Names(), ", "))
	}
	return kb, nil
}

// looksLikeFile returns true if arg appears to be a document path rather
// than a catalogue keyboard name. It checks if the file exists or has a
// known document extension.
func looksLikeFile(arg string) bool {
	if _, err := os.Stat(arg); err == nil {
		return true
	}
	lower := strings.ToLower(arg)
	return strings.HasSuffix(lower, ".toml") || strings.HasSuffix(lower, ".json")
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
