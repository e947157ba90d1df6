package ascii

import "strings"

// KeyWidth is the printable width of one key cell.
const KeyWidth = 8

// layerKeys are momentary layer-switch keys, drawn in brackets.
var layerKeys = map[string]bool{
	"MO(1)": true,
	"MO(2)": true,
	"MO(3)": true,
}

// transparentKeys fall through to the layer below and are drawn as dots.
var transparentKeys = map[string]bool{
	"_______":     true,
	"TRANSPARENT": true,
	"TRNS":        true,
}

const (
	heldCell        = "  HLD   "
	transparentCell = "  ...   "
)

// Normalize returns the canonical form of a key label used for class and
// pressed-set matching: surrounding whitespace trimmed, uppercased, and
// internal spaces removed. The rendered cell keeps the original label.
func Normalize(label string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(label)), " ", "")
}

// PressedSet holds the normalized labels of keys drawn as held while a
// layer is being diagrammed.
type PressedSet map[string]bool

// NewPressedSet normalizes labels into a PressedSet.
func NewPressedSet(labels []string) PressedSet {
	set := make(PressedSet, len(labels))
	for _, l := range labels {
		set[Normalize(l)] = true
	}
	return set
}

// Contains reports whether the normalized form of label is in the set.
func (p PressedSet) Contains(label string) bool {
	return p[Normalize(label)]
}

// FormatKey renders one key label into a cell. Held keys draw as the HLD
// marker, layer-switch keys in brackets, transparent keys as dots, and
// everything else centered in KeyWidth characters. Labels wider than the
// cell pass through unpadded; the empty label is blank padding and never
// matches any class. FormatKey is total: every input has a defined cell.
func FormatKey(label string, pressed PressedSet) string {
	normalized := Normalize(label)
	if normalized == "" {
		return center(label, KeyWidth)
	}
	if pressed[normalized] {
		return heldCell
	}
	if layerKeys[normalized] {
		return "[" + center(label, KeyWidth-2) + "]"
	}
	if transparentKeys[normalized] {
		return transparentCell
	}
	return center(label, KeyWidth)
}

// center pads s with spaces to width, placing the extra space on the
// right when the padding is odd. Strings at or past width are returned
// unchanged, never truncated.
func center(s string, width int) string {
	gap := width - len(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
