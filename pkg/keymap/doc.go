// Package keymap defines the keyboard description model shared by the
// renderers, the converter, the CLI, and the HTTP server.
//
// # Overview
//
// A [Keyboard] bundles a rendering [Config] with an ordered list of layers.
// Each [Layer] holds the main key grid, an optional thumb cluster, the keys
// drawn as held on that layer, and rotary encoder bindings. Layer order is
// significant: diagrams are emitted in the order layers appear in the
// source document.
//
// # Geometry
//
// Every keyboard carries an explicit [Geometry] that selects how its layers
// are drawn:
//
//   - [GeometryUniform]: one contiguous grid (e.g. reviung41)
//   - [GeometrySplit]: two halves separated by a gap (e.g. sofle, corne)
//   - [GeometryTotem]: the asymmetric TOTEM arrangement
//
// Legacy documents that predate the geometry field use an is_split flag;
// decoding maps it onto the closest geometry so old files keep working.
//
// # Documents
//
// Keyboards are described in TOML or JSON documents. [DecodeTOML] and
// [DecodeJSON] parse them while preserving layer order, and [LoadFile]
// dispatches on the file extension:
//
//	kb, err := keymap.LoadFile("sofle.toml")
//	if err != nil {
//	    return err
//	}
//	for _, nl := range kb.Layers {
//	    fmt.Println(nl.Name)
//	}
//
// A small catalog of built-in keyboards ships with the package; see
// [Catalog] and [Lookup].
package keymap
