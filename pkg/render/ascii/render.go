package ascii

import (
	"fmt"
	"strings"

	"github.com/Jessica765/vial-userspace/pkg/errors"
	"github.com/Jessica765/vial-userspace/pkg/keymap"
)

// Layout renders one keyboard layer into a bordered comment block.
// The returned block has no trailing newline.
type Layout interface {
	RenderLayer(title string, layer keymap.Layer) string
}

// LayoutFor selects the layout for a keyboard configuration. splitAt
// overrides the configured split column when positive; it has no effect
// on uniform or totem boards.
func LayoutFor(cfg keymap.Config, splitAt int) Layout {
	switch cfg.Geometry {
	case keymap.GeometrySplit:
		at := cfg.EffectiveSplitAt()
		if splitAt > 0 {
			at = splitAt
		}
		return Split{At: at}
	case keymap.GeometryTotem:
		return Totem{}
	default:
		return Uniform{}
	}
}

// RenderKeyboard renders every layer of kb in document order and joins
// the blocks with blank separator lines. Layers named "config" are
// reserved for the legacy document shape and skipped. The result ends
// with a newline; a keyboard without layers renders as the empty string.
func RenderKeyboard(kb *keymap.Keyboard, splitAt int) string {
	layout := LayoutFor(kb.Config, splitAt)

	var blocks []string
	for _, nl := range kb.Layers {
		if nl.Name == "config" {
			continue
		}
		blocks = append(blocks, layout.RenderLayer(blockTitle(kb.Name, nl.Name), nl.Layer), "")
	}
	return strings.Join(blocks, "\n")
}

// RenderLayer renders a single named layer of kb. Like [RenderKeyboard],
// the result ends with a newline.
func RenderLayer(kb *keymap.Keyboard, layerName string, splitAt int) (string, error) {
	layout := LayoutFor(kb.Config, splitAt)
	for _, nl := range kb.Layers {
		if nl.Name == layerName {
			return layout.RenderLayer(blockTitle(kb.Name, nl.Name), nl.Layer) + "\n", nil
		}
	}
	return "", errors.New(errors.ErrCodeLayerNotFound, "keyboard %q has no layer %q", kb.Name, layerName)
}

// blockTitle builds the comment title line, e.g. "SOFLE - BASE Layer".
func blockTitle(keyboard, layer string) string {
	return fmt.Sprintf("%s - %s Layer", strings.ToUpper(keyboard), strings.ToUpper(layer))
}
