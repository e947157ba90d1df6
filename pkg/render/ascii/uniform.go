package ascii

import (
	"strings"

	"github.com/Jessica765/vial-userspace/pkg/keymap"
)

// Uniform renders a layer as one contiguous bordered grid with the thumb
// cluster centered underneath. It fits unibody boards like the reviung41.
type Uniform struct{}

// RenderLayer implements Layout.
func (Uniform) RenderLayer(title string, layer keymap.Layer) string {
	lines := []string{"/*", " * " + title}
	pressed := NewPressedSet(layer.Pressed)

	if layer.Empty() {
		lines = append(lines, noKeysLine, " */")
		return strings.Join(lines, "\n")
	}

	// The thumb cluster counts as a row when computing the grid width.
	maxLen := 1
	for _, row := range layer.Rows {
		maxLen = max(maxLen, len(row))
	}
	maxLen = max(maxLen, len(layer.Thumbs))

	// Border width is measured from a formatted sample row, so borders
	// stay flush even when a label overflows its cell.
	var first []string
	if len(layer.Rows) > 0 {
		first = layer.Rows[0]
	}
	width := len(formatRow(first, maxLen, pressed))
	dashes := strings.Repeat("-", max(0, width-2))

	lines = append(lines, " * ,"+dashes+".")
	for i, row := range layer.Rows {
		lines = append(lines, " * "+formatRow(row, maxLen, pressed))
		if i < len(layer.Rows)-1 {
			lines = append(lines, " * |"+dashes+"|")
		}
	}
	lines = append(lines, " * `"+dashes+"'")

	if len(layer.Thumbs) > 0 {
		var cells []string
		for _, k := range layer.Thumbs {
			if k != "" {
				cells = append(cells, FormatKey(k, pressed))
			}
		}
		cluster := strings.Join(cells, " | ")

		// Center the cluster under the grid.
		pad := max(0, (width-(len(cluster)+2))/2)
		indent := strings.Repeat(" ", pad)
		lines = append(lines, " *"+indent+"| "+cluster+" |")
		lines = append(lines, " *"+indent+"`"+strings.Repeat("-", len(cluster)+2)+"'")
	}

	lines = append(lines, " */")
	return strings.Join(lines, "\n")
}
