package keymap

import (
	"strings"

	"github.com/Jessica765/vial-userspace/pkg/errors"
)

// Geometry selects which physical arrangement a keyboard renders with.
type Geometry string

// Supported keyboard geometries.
const (
	// GeometryUniform draws the whole keyboard as one contiguous grid.
	GeometryUniform Geometry = "uniform"
	// GeometrySplit draws two halves separated by a fixed gap.
	GeometrySplit Geometry = "split"
	// GeometryTotem draws the asymmetric TOTEM arrangement with 5-key
	// upper halves and a 6/6 bottom row.
	GeometryTotem Geometry = "totem"
)

// ParseGeometry converts a string to a Geometry. The comparison is
// case-insensitive and ignores surrounding whitespace.
func ParseGeometry(s string) (Geometry, error) {
	switch g := Geometry(strings.ToLower(strings.TrimSpace(s))); g {
	case GeometryUniform, GeometrySplit, GeometryTotem:
		return g, nil
	}
	return "", errors.New(errors.ErrCodeInvalidGeometry, "unknown geometry: %q", s)
}

// DefaultSplitAt is the split column used when a split keyboard does not
// configure one.
const DefaultSplitAt = 6

// Config carries the per-keyboard rendering configuration.
type Config struct {
	// Geometry selects the renderer for this keyboard.
	Geometry Geometry
	// SplitAt is the number of keys on the left half of a split row.
	// Ignored for uniform keyboards.
	SplitAt int
	// ThumbCount documents how many thumb keys the board has. It is
	// informational; renderers derive cluster sizes from the layer data.
	ThumbCount int
}

// EffectiveSplitAt returns the configured split column, falling back to
// DefaultSplitAt when unset.
func (c Config) EffectiveSplitAt() int {
	if c.SplitAt > 0 {
		return c.SplitAt
	}
	return DefaultSplitAt
}

// EncoderAction is the pair of actions bound to one rotary encoder:
// counter-clockwise rotation and clockwise rotation.
type EncoderAction struct {
	CCW string
	CW  string
}

// Label combines both actions into a single key label for rendering.
func (e EncoderAction) Label() string {
	return e.CCW + "/" + e.CW
}

// Layer holds the key assignments of one keymap layer.
type Layer struct {
	// Rows are the main key grid, top to bottom. Rows may have different
	// lengths; renderers pad short rows with blank cells.
	Rows [][]string
	// Thumbs are the thumb cluster keys, left to right across both hands.
	Thumbs []string
	// Pressed lists keys drawn as held on this layer, typically the
	// layer-switch keys that activate it.
	Pressed []string
	// Encoders are the rotary encoder bindings, left encoder first.
	Encoders []EncoderAction
}

// Empty reports whether the layer has neither rows nor thumb keys.
func (l Layer) Empty() bool {
	return len(l.Rows) == 0 && len(l.Thumbs) == 0
}

// NamedLayer pairs a layer with its document name.
type NamedLayer struct {
	Name  string
	Layer Layer
}

// Keyboard is a complete keymap description: a name, the rendering
// configuration, and the layers in document order.
type Keyboard struct {
	Name   string
	Config Config
	Layers []NamedLayer
}

// FindLayer returns the layer with the given name.
func (k *Keyboard) FindLayer(name string) (Layer, bool) {
	for _, nl := range k.Layers {
		if nl.Name == name {
			return nl.Layer, true
		}
	}
	return Layer{}, false
}

// LayerNames returns the layer names in document order.
func (k *Keyboard) LayerNames() []string {
	names := make([]string, len(k.Layers))
	for i, nl := range k.Layers {
		names[i] = nl.Name
	}
	return names
}

// Validate checks the keyboard description for structural problems:
// unknown geometry, negative split column, invalid or duplicate layer
// names, and more encoders than a board can carry.
func (k *Keyboard) Validate() error {
	if err := errors.ValidateKeyboardName(k.Name); err != nil {
		return err
	}

	switch k.Config.Geometry {
	case GeometryUniform, GeometrySplit, GeometryTotem:
	default:
		return errors.New(errors.ErrCodeInvalidGeometry, "keyboard %q: unknown geometry %q", k.Name, k.Config.Geometry)
	}

	if k.Config.SplitAt < 0 {
		return errors.New(errors.ErrCodeInvalidDocument, "keyboard %q: split_at cannot be negative", k.Name)
	}

	seen := make(map[string]bool, len(k.Layers))
	for _, nl := range k.Layers {
		if err := errors.ValidateLayerName(nl.Name); err != nil {
			return err
		}
		if seen[nl.Name] {
			return errors.New(errors.ErrCodeInvalidDocument, "duplicate layer %q", nl.Name)
		}
		seen[nl.Name] = true

		// Two physical encoders per board is the most any supported
		// keyboard has; the renderer places one per half.
		if len(nl.Layer.Encoders) > 2 {
			return errors.New(errors.ErrCodeInvalidDocument, "layer %q: at most two encoders are supported", nl.Name)
		}
	}

	return nil
}
