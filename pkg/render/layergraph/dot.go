package layergraph

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/Jessica765/vial-userspace/pkg/keymap"
	"github.com/Jessica765/vial-userspace/pkg/render/ascii"
)

// Options configures layer graph rendering.
type Options struct {
	// Detailed includes key and encoder counts in node labels.
	// When false, only the layer name is shown.
	Detailed bool
}

// ToDOT converts a keyboard's layer structure to Graphviz DOT format.
// Layers become nodes; a momentary switch MO(n) on a layer becomes an
// edge to the layer named mo<n> when the keyboard has one. The resulting
// DOT string can be rendered with [RenderSVG] or [RenderPNG].
func ToDOT(kb *keymap.Keyboard, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph layers {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, nl := range kb.Layers {
		if nl.Name == "config" {
			continue
		}
		label := fmtLabel(nl, opts.Detailed)
		attrs := fmtAttrs(nl, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", nl.Name, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, nl := range kb.Layers {
		if nl.Name == "config" {
			continue
		}
		for _, n := range switchTargets(nl.Layer) {
			target := fmt.Sprintf("mo%d", n)
			if target == nl.Name {
				continue
			}
			if _, ok := kb.FindLayer(target); !ok {
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q [label=\"MO(%d)\"];\n", nl.Name, target, n)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(nl keymap.NamedLayer, detailed bool) string {
	if !detailed {
		return nl.Name
	}

	keys := 0
	for _, row := range nl.Layer.Rows {
		for _, k := range row {
			if k != "" {
				keys++
			}
		}
	}
	for _, k := range nl.Layer.Thumbs {
		if k != "" {
			keys++
		}
	}

	parts := []string{fmt.Sprintf("keys: %d", keys)}
	if n := len(nl.Layer.Encoders); n > 0 {
		parts = append(parts, fmt.Sprintf("encoders: %d", n))
	}
	return nl.Name + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(nl keymap.NamedLayer, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if nl.Name == "base" {
		attrs = append(attrs, "penwidth=2")
	}
	return attrs
}

var moRe = regexp.MustCompile(`^MO\((\d+)\)$`)

// switchTargets lists the layer numbers a layer can switch to, in
// ascending order. A momentary key counts wherever it sits, grid or
// thumb cluster.
func switchTargets(l keymap.Layer) []int {
	seen := make(map[int]bool)
	scan := func(key string) {
		m := moRe.FindStringSubmatch(ascii.Normalize(key))
		if m == nil {
			return
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return
		}
		seen[n] = true
	}

	for _, row := range l.Rows {
		for _, k := range row {
			scan(k)
		}
	}
	for _, k := range l.Thumbs {
		scan(k)
	}

	return slices.Sorted(maps.Keys(seen))
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	var buf bytes.Buffer
	if err := render(ctx, dot, graphviz.SVG, &buf); err != nil {
		return nil, err
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz's built-in
// rasterizer.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	var buf bytes.Buffer
	if err := render(ctx, dot, graphviz.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func render(ctx context.Context, dot string, format graphviz.Format, buf *bytes.Buffer) error {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	if err := gv.Render(ctx, g, format, buf); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the svg element so the image scales to its
// container instead of carrying Graphviz's absolute point sizes.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
