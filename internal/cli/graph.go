package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jessica765/vial-userspace/pkg/render/layergraph"
)

const (
	formatDOT = "dot" // Graphviz source, the default
	formatSVG = "svg"
	formatPNG = "png"
)

// validGraphFormats is the set of supported graph output formats.
var validGraphFormats = map[string]bool{formatDOT: true, formatSVG: true, formatPNG: true}

// validateGraphFormat checks that the requested graph format is valid.
func validateGraphFormat(f string) error {
	if !validGraphFormats[f] {
		return fmt.Errorf("invalid format: %s (must be 'dot', 'svg', or 'png')", f)
	}
	return nil
}

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	format   string // output format: "dot", "svg", "png"
	output   string // output file path (stdout if empty)
	detailed bool   // include key and encoder counts in node labels
}

// graphCommand creates the graph command for drawing layer-switch graphs.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOpts{format: formatDOT}

	cmd := &cobra.Command{
		Use:   "graph [keyboard|document]",
		Short: "Graph a keyboard's layer switches",
		Long: `Graph which layers a keyboard's momentary switches reach.

Layers become nodes, and each MO(n) key becomes an edge to the layer it
activates. The default output is Graphviz DOT source; svg and png are
rendered with the built-in Graphviz engine.

Examples:
  keymapviz graph sofle                    # DOT to stdout
  keymapviz graph sofle -f svg -o sofle.svg
  keymapviz graph my-board.toml -f png -o layers.png --detailed`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateGraphFormat(opts.format); err != nil {
				return err
			}
			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}
			return c.runGraph(cmd.Context(), arg, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot (default), svg, png")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include key and encoder counts in node labels")

	return cmd
}

// runGraph resolves the keyboard and writes its layer graph in the
// requested format.
func (c *CLI) runGraph(ctx context.Context, arg string, opts *graphOpts) error {
	logger := loggerFromContext(ctx)

	kb, err := c.loadKeyboard(ctx, arg)
	if err != nil {
		return err
	}
	if kb == nil {
		return nil // picker dismissed
	}

	dot := layergraph.ToDOT(kb, layergraph.Options{Detailed: opts.detailed})

	var data []byte
	switch opts.format {
	case formatSVG:
		logger.Debugf("Rendering layer graph SVG for %s", kb.Name)
		data, err = layergraph.RenderSVG(ctx, dot)
	case formatPNG:
		logger.Debugf("Rendering layer graph PNG for %s", kb.Name)
		data, err = layergraph.RenderPNG(ctx, dot)
	default:
		data = []byte(dot)
	}
	if err != nil {
		return err
	}

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}

	if opts.output != "" {
		printSuccess("Generated %s graph", opts.format)
		printFile(opts.output)
	}
	return nil
}
