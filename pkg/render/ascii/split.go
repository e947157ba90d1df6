package ascii

import (
	"strings"

	"github.com/Jessica765/vial-userspace/pkg/keymap"
)

// encoderRow is the grid row rotary encoder cells splice into. On the
// supported split boards the encoders sit next to the bottom row of the
// main grid; layers with fewer rows simply never show them.
const encoderRow = 3

// Split renders a layer as two independently bordered halves separated by
// a fixed gap, with the thumb clusters hanging off the inside bottom
// corners. It fits boards like the sofle and corne.
type Split struct {
	// At is the number of keys belonging to the left half of each row.
	At int
}

// RenderLayer implements Layout.
func (s Split) RenderLayer(title string, layer keymap.Layer) string {
	lines := []string{"/*", " * " + title}
	pressed := NewPressedSet(layer.Pressed)

	if layer.Empty() {
		lines = append(lines, noKeysLine, " */")
		return strings.Join(lines, "\n")
	}

	leftWidth, rightWidth := s.halfWidths(layer.Rows)
	gap := strings.Repeat(" ", KeyWidth*5)

	lines = append(lines, " * "+topBorder(leftWidth)+gap+topBorder(rightWidth))

	for i, row := range layer.Rows {
		left, right := splitRow(row, s.At)
		leftHalf := formatHalfRow(left, leftWidth, pressed)
		rightHalf := formatHalfRow(right, rightWidth, pressed)
		rowGap := KeyWidth * 5

		// Encoder cells widen their row by one cell per side and eat
		// into the center gap so both halves stay anchored.
		if encL, encR := s.encoderCells(layer, i, pressed); encL != "" || encR != "" {
			if encL != "" {
				leftHalf += encL + "|"
				rowGap -= KeyWidth + 1
			}
			if encR != "" {
				rightHalf = "|" + encR + rightHalf
				rowGap -= KeyWidth + 1
			}
		}
		lines = append(lines, " * "+leftHalf+strings.Repeat(" ", rowGap)+rightHalf)

		if i < len(layer.Rows)-1 {
			lines = append(lines, " * "+s.separator(layer, i, leftWidth, rightWidth))
		}
	}

	bottom := "`" + strings.Repeat("-", (KeyWidth+1)*leftWidth+KeyWidth) + "\\" +
		strings.Repeat(" ", KeyWidth*3-2) +
		"/" + strings.Repeat("-", KeyWidth+(KeyWidth+1)*rightWidth) + "'"
	lines = append(lines, " * "+bottom)

	if len(layer.Thumbs) > 0 {
		lines = append(lines, thumbLines(layer.Thumbs, leftWidth, KeyWidth*3-2, pressed)...)
	}

	lines = append(lines, " */")
	return strings.Join(lines, "\n")
}

// halfWidths computes the widest left and right half across all rows. A
// layer with thumbs but no rows keeps the configured width on the left
// and the default six cells on the right.
func (s Split) halfWidths(rows [][]string) (int, int) {
	if len(rows) == 0 {
		return s.At, keymap.DefaultSplitAt
	}
	var left, right int
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		left = max(left, min(s.At, len(row)))
		right = max(right, len(row)-s.At)
	}
	return left, right
}

// encoderCells renders the encoder cells spliced into row. The left
// encoder is Encoders[0], the right Encoders[1]; a missing entry leaves
// that half untouched.
func (s Split) encoderCells(layer keymap.Layer, row int, pressed PressedSet) (string, string) {
	if row != encoderRow || len(layer.Encoders) == 0 {
		return "", ""
	}
	left := FormatKey(layer.Encoders[0].Label(), pressed)
	right := ""
	if len(layer.Encoders) > 1 {
		right = FormatKey(layer.Encoders[1].Label(), pressed)
	}
	return left, right
}

// separator renders the bar between row above and the next row, widened
// by one cell on each half that carries an encoder cell so the grid walls
// stay continuous around the splice.
func (s Split) separator(layer keymap.Layer, above int, leftWidth, rightWidth int) string {
	lw, rw := leftWidth, rightWidth
	gap := KeyWidth * 5

	if above == encoderRow-1 || above == encoderRow {
		if len(layer.Encoders) > 0 {
			lw++
			gap -= KeyWidth + 1
		}
		if len(layer.Encoders) > 1 {
			rw++
			gap -= KeyWidth + 1
		}
	}
	return bar(lw) + strings.Repeat(" ", gap) + bar(rw)
}
