package vial

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Jessica765/vial-userspace/pkg/errors"
	"github.com/Jessica765/vial-userspace/pkg/keymap"
)

// document is the subset of a Vial export this package reads. Layout is
// indexed layer, matrix row, matrix column; cells hold either a keycode
// name or the number -1 for positions the board does not have.
type document struct {
	Layout        [][][]any `json:"layout"`
	EncoderLayout [][][]any `json:"encoder_layout"`
}

// Convert reads a Vial .vil export and converts it into a keyboard
// document using the given wiring profile. Layer 0 becomes "base" and
// layer n becomes "mo<n>" with its own MO(n) key marked as pressed.
// Layers with no bindings at all are dropped.
func Convert(r io.Reader, profile Profile) (*keymap.Keyboard, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to read export")
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidExport, err, "failed to parse Vial export")
	}
	if len(doc.Layout) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidExport, "export has no layout")
	}

	limit := len(doc.Layout)
	if profile.MaxLayers > 0 && profile.MaxLayers < limit {
		limit = profile.MaxLayers
	}

	kb := &keymap.Keyboard{Name: profile.Name, Config: profile.Config}
	for i := 0; i < limit; i++ {
		layer, err := convertLayer(doc, profile, i)
		if err != nil {
			return nil, err
		}
		if blank(layer) {
			continue
		}
		kb.Layers = append(kb.Layers, keymap.NamedLayer{Name: layerName(i), Layer: layer})
	}

	if err := kb.Validate(); err != nil {
		return nil, err
	}
	return kb, nil
}

// layerName names converted layers after the momentary switch that
// reaches them.
func layerName(idx int) string {
	if idx == 0 {
		return "base"
	}
	return fmt.Sprintf("mo%d", idx)
}

func convertLayer(doc document, p Profile, idx int) (keymap.Layer, error) {
	grid := doc.Layout[idx]

	var layer keymap.Layer
	for _, rowSpec := range p.Rows {
		row := make([]string, 0, len(rowSpec))
		for _, pos := range rowSpec {
			label, err := lookupCell(grid, idx, pos)
			if err != nil {
				return keymap.Layer{}, err
			}
			row = append(row, label)
		}
		layer.Rows = append(layer.Rows, row)
	}

	for _, pos := range p.Thumbs {
		label, err := lookupCell(grid, idx, pos)
		if err != nil {
			return keymap.Layer{}, err
		}
		layer.Thumbs = append(layer.Thumbs, label)
	}

	if p.Encoders > 0 && idx < len(doc.EncoderLayout) {
		pairs := doc.EncoderLayout[idx]
		for e := 0; e < p.Encoders && e < len(pairs); e++ {
			action, err := encoderAction(pairs[e], idx, e)
			if err != nil {
				return keymap.Layer{}, err
			}
			if action.CCW == "" && action.CW == "" {
				continue
			}
			layer.Encoders = append(layer.Encoders, action)
		}
	}

	if idx > 0 {
		layer.Pressed = []string{fmt.Sprintf("MO(%d)", idx)}
	}
	return layer, nil
}

func lookupCell(grid [][]any, layerIdx int, pos MatrixPos) (string, error) {
	if pos.Row < 0 || pos.Row >= len(grid) {
		return "", errors.New(errors.ErrCodeInvalidExport,
			"layer %d: matrix row %d not in export", layerIdx, pos.Row)
	}
	row := grid[pos.Row]
	if pos.Col < 0 || pos.Col >= len(row) {
		return "", errors.New(errors.ErrCodeInvalidExport,
			"layer %d: matrix position %d,%d not in export", layerIdx, pos.Row, pos.Col)
	}
	return cellLabel(row[pos.Col], layerIdx, pos)
}

// cellLabel translates one layout cell. Exports store unnamed keycodes
// as raw numbers; those become hex literals so the renderer still has
// something printable.
func cellLabel(cell any, layerIdx int, pos MatrixPos) (string, error) {
	switch c := cell.(type) {
	case string:
		return Translate(c), nil
	case float64:
		if c == -1 {
			return "", nil
		}
		return Translate(fmt.Sprintf("0x%04X", int64(c))), nil
	case nil:
		return "", nil
	default:
		return "", errors.New(errors.ErrCodeInvalidKeycode,
			"layer %d: unsupported keycode value %v at %d,%d", layerIdx, cell, pos.Row, pos.Col)
	}
}

// encoderShort compacts labels for encoder halves. Both halves share a
// single eight-character cell, so the usual media and paging labels are
// too wide once joined with a slash.
var encoderShort = map[string]string{
	"Vol-": "V-",
	"Vol+": "V+",
	"PgUp": "PU",
	"PgDn": "PD",
	"Prev": "Pv",
	"Next": "Nx",
}

func encoderAction(pair []any, layerIdx, encoderIdx int) (keymap.EncoderAction, error) {
	var action keymap.EncoderAction
	for i, cell := range pair {
		if i > 1 {
			break
		}
		label, err := cellLabel(cell, layerIdx, MatrixPos{})
		if err != nil {
			return keymap.EncoderAction{}, errors.Wrap(errors.ErrCodeInvalidExport, err,
				"layer %d: encoder %d", layerIdx, encoderIdx)
		}
		if short, ok := encoderShort[label]; ok {
			label = short
		}
		if i == 0 {
			action.CCW = label
		} else {
			action.CW = label
		}
	}
	return action, nil
}

// blank reports whether a converted layer carries no bindings at all.
func blank(l keymap.Layer) bool {
	for _, row := range l.Rows {
		for _, k := range row {
			if k != "" {
				return false
			}
		}
	}
	for _, k := range l.Thumbs {
		if k != "" {
			return false
		}
	}
	return len(l.Encoders) == 0
}
