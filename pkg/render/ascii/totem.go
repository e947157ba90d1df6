package ascii

import (
	"strings"

	"github.com/Jessica765/vial-userspace/pkg/keymap"
)

const (
	// totemUpperWidth is the keys per half on the two indented upper rows.
	totemUpperWidth = 5
	// totemLowerWidth is the keys on the left half of the full-width
	// bottom row, which gains a pinky column on each side.
	totemLowerWidth = 6
)

// Totem renders the asymmetric TOTEM arrangement: two 5|5 rows indented
// by one cell, a full-width 6|6 bottom row, and slanted connectors where
// the outline widens.
type Totem struct{}

// RenderLayer implements Layout.
func (Totem) RenderLayer(title string, layer keymap.Layer) string {
	lines := []string{"/*", " * " + title}
	pressed := NewPressedSet(layer.Pressed)

	if layer.Empty() {
		lines = append(lines, noKeysLine, " */")
		return strings.Join(lines, "\n")
	}

	rows := layer.Rows
	gap := strings.Repeat(" ", KeyWidth*5)
	indent := strings.Repeat(" ", KeyWidth+1)

	var row1W, row2W, row3L, row3R int
	if len(rows) > 0 {
		row1W = min(totemUpperWidth, len(rows[0]))
	}
	if len(rows) > 1 {
		row2W = min(totemUpperWidth, len(rows[1]))
	}
	if len(rows) > 2 {
		row3L = min(totemLowerWidth, len(rows[2]))
		row3R = max(0, len(rows[2])-totemLowerWidth)
	}

	// Both upper halves share the first row's width so the outline is
	// symmetric even when the data is ragged.
	lines = append(lines, " * "+indent+topBorder(row1W)+gap+topBorder(row1W))

	if len(rows) > 0 {
		left, right := totemUpperSplit(rows[0])
		lines = append(lines, " * "+indent+formatHalfRow(left, row1W, pressed)+gap+formatHalfRow(right, row1W, pressed))
		lines = append(lines, " * "+indent+bar(row1W)+gap+bar(row1W))
	}

	if len(rows) > 1 {
		left, right := totemUpperSplit(rows[1])
		lines = append(lines, " * "+indent+formatHalfRow(left, row2W, pressed)+gap+formatHalfRow(right, row2W, pressed))

		// Slanted connector out to the wider bottom row.
		slant := strings.Repeat("-", KeyWidth)
		lines = append(lines, " * /"+slant+bar(row1W)+gap+bar(row1W)+slant+"\\")
	}

	if len(rows) > 2 {
		left, right := splitRow(rows[2], totemLowerWidth)
		lines = append(lines, " * "+formatHalfRow(left, row3L, pressed)+gap+formatHalfRow(right, row3R, pressed))
	}

	bottom := "`" + strings.Repeat("-", (KeyWidth+1)*row3L+KeyWidth) + "\\" +
		strings.Repeat(" ", KeyWidth*3-1) +
		"/" + strings.Repeat("-", (KeyWidth+1)*row3R+KeyWidth) + "'"
	lines = append(lines, " * "+bottom)

	if len(layer.Thumbs) > 0 {
		lines = append(lines, thumbLines(layer.Thumbs, row3L, KeyWidth*3-1, pressed)...)
	}

	lines = append(lines, " */")
	return strings.Join(lines, "\n")
}

// totemUpperSplit slices an upper row into its 5-key halves, ignoring any
// keys past the tenth.
func totemUpperSplit(row []string) (left, right []string) {
	left = row[:min(totemUpperWidth, len(row))]
	if len(row) > totemUpperWidth {
		right = row[totemUpperWidth:min(2*totemUpperWidth, len(row))]
	}
	return left, right
}
