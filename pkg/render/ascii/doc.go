// Package ascii renders keyboard layers as ASCII diagrams wrapped in C
// block comments, ready to paste above a keymap definition.
//
// # Overview
//
// Each layer becomes one comment block: a title line, the bordered key
// grid, and an optional thumb cluster. Keys are drawn in fixed-width cells
// of [KeyWidth] characters, so diagrams line up in any monospaced editor:
//
//	/*
//	 * CORNE - BASE Layer
//	 * ,-----...-----.                                        ,-----...-----.
//	 * |  Tab   |  Q...                                       ...|   Esc    |
//	 * `-----...-----\                                        /-----...-----'
//	 *        |[ MO(1) ]| Shift  |  Tab   |          | Space  |  Bksp  |[ MO(2) ]|
//	 *        `---------...------/          \--------...---------------'
//	 */
//
// # Layouts
//
// Three layouts cover the supported geometries: [Uniform] draws one
// contiguous grid, [Split] draws two halves cut at a configurable column,
// and [Totem] draws the asymmetric TOTEM arrangement. [LayoutFor] selects
// the layout for a keyboard configuration, and [RenderKeyboard] walks all
// layers of a keyboard and joins their blocks.
//
// Rendering is pure and total: every input produces a defined string, no
// layout ever returns an error, and the same input always yields the same
// bytes.
package ascii
