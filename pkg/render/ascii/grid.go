package ascii

import "strings"

// blankCell pads positions that have no key.
var blankCell = strings.Repeat(" ", KeyWidth)

// noKeysLine is the placeholder body for layers without any keys.
const noKeysLine = " * No keys defined for this layer"

// formatRow renders a full-width row with spaced separators, padding to
// width cells: "| kkkkkkkk | kkkkkkkk |".
func formatRow(row []string, width int, pressed PressedSet) string {
	cells := make([]string, 0, max(width, len(row)))
	for _, k := range row {
		cells = append(cells, FormatKey(k, pressed))
	}
	for len(cells) < width {
		cells = append(cells, blankCell)
	}
	return "| " + strings.Join(cells, " | ") + " |"
}

// formatHalfRow renders the keys of one keyboard half with tight
// separators, dropping explicitly empty labels before padding to width
// cells: "|kkkkkkkk|kkkkkkkk|".
func formatHalfRow(keys []string, width int, pressed PressedSet) string {
	cells := make([]string, 0, width)
	for _, k := range keys {
		if k != "" {
			cells = append(cells, FormatKey(k, pressed))
		}
	}
	for len(cells) < width {
		cells = append(cells, blankCell)
	}
	return "|" + strings.Join(cells, "|") + "|"
}

// bar renders a horizontal separator spanning width cells.
func bar(width int) string {
	cells := make([]string, width)
	for i := range cells {
		cells[i] = strings.Repeat("-", KeyWidth)
	}
	return "|" + strings.Join(cells, "|") + "|"
}

// topBorder renders the curved opening border spanning width cells.
func topBorder(width int) string {
	return "," + strings.Repeat("-", max(0, (KeyWidth+1)*width-1)) + "."
}

// splitRow divides a row at the split column. Short rows belong entirely
// to the left half.
func splitRow(row []string, at int) (left, right []string) {
	if len(row) > at {
		return row[:at], row[at:]
	}
	return row, nil
}

// thumbLines renders a thumb cluster as two sub-clusters: the first
// ceil(n/2) keys on the left hand, the rest on the right. leftWidth is
// the cell width of the grid's left half, which anchors the indent; gap
// is the blank run between the sub-clusters.
func thumbLines(thumbs []string, leftWidth, gap int, pressed PressedSet) []string {
	leftCount := (len(thumbs) + 1) / 2
	leftKeys, rightKeys := thumbs[:leftCount], thumbs[leftCount:]

	indent := strings.Repeat(" ", max(0, leftWidth-leftCount+1)*(KeyWidth+1))
	centerGap := strings.Repeat(" ", gap)

	leftCluster := joinThumbs(leftKeys, pressed)
	rightCluster := joinThumbs(rightKeys, pressed)

	var leftBorder, rightBorder string
	if leftCluster != "" {
		leftBorder = "`" + strings.Repeat("-", len(leftCluster)-2) + "/"
	}
	if rightCluster != "" {
		rightBorder = "\\" + strings.Repeat("-", len(rightCluster)-2) + "'"
	}

	return []string{
		" * " + indent + leftCluster + centerGap + rightCluster,
		" * " + indent + leftBorder + centerGap + rightBorder,
	}
}

// joinThumbs formats a thumb sub-cluster, dropping empty labels. A
// sub-cluster with no keys renders as nothing at all rather than an empty
// pair of walls.
func joinThumbs(keys []string, pressed PressedSet) string {
	var cells []string
	for _, k := range keys {
		if k != "" {
			cells = append(cells, FormatKey(k, pressed))
		}
	}
	if len(cells) == 0 {
		return ""
	}
	return "|" + strings.Join(cells, "|") + "|"
}
