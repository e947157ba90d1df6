// Package layergraph draws a keyboard's layer-switch structure as a
// node-and-edge graph using Graphviz.
//
// Each layer is a node and each momentary switch key MO(n) is a directed
// edge from the layer carrying the key to the layer it activates. The
// base layer is drawn with a heavier outline.
//
// # Usage
//
//	dot := layergraph.ToDOT(kb, layergraph.Options{})
//	svg, err := layergraph.RenderSVG(ctx, dot)
//
// The DOT string is plain text and useful on its own; SVG and PNG
// rendering happen in-process via [github.com/goccy/go-graphviz], no
// graphviz installation required.
package layergraph
