// Package pkg provides the core libraries for keymapviz keyboard diagrams.
//
// # Overview
//
// Keymapviz turns keyboard layer maps into fixed-width ASCII diagrams, the
// kind that lives in QMK keymap.c comments. The pkg directory is organized
// into four areas:
//
//  1. [keymap] - Data model (keyboards, layers, documents, catalogue)
//  2. [render] - Diagram output (ASCII layer maps, layer-switch graphs)
//  3. [cache] / [httputil] - Infrastructure (cache backends, remote fetch)
//  4. [server] - HTTP preview server
//
// # Architecture
//
// The typical data flow:
//
//	Vial .vil export / TOML document
//	         ↓
//	    [keymap] package (decode, validate, normalize)
//	         ↓
//	    [render/ascii] package (layer diagrams)
//	         ↓
//	    text output (stdout, file, or HTTP)
//
// # Quick Start
//
// Load a catalogue keyboard and render it:
//
//	import (
//	    "fmt"
//	    "github.com/Jessica765/vial-userspace/pkg/keymap"
//	    "github.com/Jessica765/vial-userspace/pkg/render/ascii"
//	)
//
//	kb, _ := keymap.Lookup("corne")
//	fmt.Print(ascii.RenderKeyboard(kb, 0))
//
// Convert a Vial export:
//
//	profile, _ := vial.ProfileFor("sofle")
//	kb, err := vial.Convert(file, profile)
//
// # Main Packages
//
// [keymap] - Keyboard, Layer and Config types with boundary validation,
// ordered TOML and JSON document codecs (canonical and legacy shapes), and
// the built-in catalogue (reviung41, sofle, corne, totem).
//
// [keymap/vial] - Vial .vil export converter. Wiring profiles map the
// export's matrix onto visual rows; the keycode translator shortens QMK
// names into display labels.
//
// [render/ascii] - The rendering core: the eight-column key formatter and
// the uniform, split and totem layouts, all pure text transformations.
//
// [render/layergraph] - Layer-switch graphs. MO(n) keys become edges;
// output is Graphviz DOT, or SVG/PNG through the embedded Graphviz engine.
//
// [cache] - Byte cache interface with file, null, Redis and MongoDB
// backends, plus the Keyer that lays out fetch/render/graph cache keys.
//
// [httputil] - Caching, retrying HTTP fetcher for remote exports.
//
// [server] - chi-based preview server exposing catalogue diagrams as
// text/plain endpoints.
//
// [errors] - Structured error codes shared across the repo.
//
// [buildinfo] - ldflags-injected version information.
//
// [keymap]: https://pkg.go.dev/github.com/Jessica765/vial-userspace/pkg/keymap
// [keymap/vial]: https://pkg.go.dev/github.com/Jessica765/vial-userspace/pkg/keymap/vial
// [render]: https://pkg.go.dev/github.com/Jessica765/vial-userspace/pkg/render
// [render/ascii]: https://pkg.go.dev/github.com/Jessica765/vial-userspace/pkg/render/ascii
// [render/layergraph]: https://pkg.go.dev/github.com/Jessica765/vial-userspace/pkg/render/layergraph
// [cache]: https://pkg.go.dev/github.com/Jessica765/vial-userspace/pkg/cache
// [httputil]: https://pkg.go.dev/github.com/Jessica765/vial-userspace/pkg/httputil
// [server]: https://pkg.go.dev/github.com/Jessica765/vial-userspace/pkg/server
// [errors]: https://pkg.go.dev/github.com/Jessica765/vial-userspace/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/Jessica765/vial-userspace/pkg/buildinfo
package pkg
