// Package render groups the diagram renderers.
//
// # Overview
//
// Two renderers turn a [keymap.Keyboard] into output:
//
//   - ASCII layer maps (in [ascii] subpackage)
//   - Layer-switch graphs (in [layergraph] subpackage)
//
// # ASCII Layer Maps
//
// The [ascii] subpackage draws each layer as a fixed-width key grid wrapped
// in a C comment block, ready to paste above a QMK keymap. Three layouts
// cover the supported geometries: uniform grids, split halves with a center
// gap, and the asymmetric totem arrangement.
//
//	text := ascii.RenderKeyboard(kb, 0)
//	text, err := ascii.RenderLayer(kb, "mo1", 0)
//
// # Layer-Switch Graphs
//
// The [layergraph] subpackage draws which layers a keyboard's MO(n) keys
// reach. Layers become nodes and momentary switches become edges. Output
// is Graphviz DOT source, or SVG/PNG rendered with the embedded Graphviz
// engine.
//
//	dot := layergraph.ToDOT(kb, layergraph.Options{})
//	svg, err := layergraph.RenderSVG(ctx, dot)
//
// [ascii]: github.com/Jessica765/vial-userspace/pkg/render/ascii
// [layergraph]: github.com/Jessica765/vial-userspace/pkg/render/layergraph
// [keymap.Keyboard]: github.com/Jessica765/vial-userspace/pkg/keymap
package render
