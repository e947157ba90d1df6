package keymap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Jessica765/vial-userspace/pkg/errors"
)

// rawConfig is the wire form of the [config] table. Geometry is preferred;
// is_split is the legacy flag older documents carry.
type rawConfig struct {
	Geometry   string `toml:"geometry" json:"geometry"`
	IsSplit    bool   `toml:"is_split" json:"is_split"`
	SplitAt    int    `toml:"split_at" json:"split_at"`
	ThumbCount int    `toml:"thumb_count" json:"thumb_count"`
}

// geometry resolves the configured geometry. Documents without an explicit
// geometry fall back to the legacy is_split flag, where a split board
// named "totem" selects the totem arrangement.
func (rc rawConfig) geometry(keyboardName string) (Geometry, error) {
	if rc.Geometry != "" {
		return ParseGeometry(rc.Geometry)
	}
	if !rc.IsSplit {
		return GeometryUniform, nil
	}
	if strings.EqualFold(keyboardName, "totem") {
		return GeometryTotem, nil
	}
	return GeometrySplit, nil
}

// rawLayer is the wire form of one layer table.
type rawLayer struct {
	Rows     [][]string `toml:"rows" json:"rows"`
	Thumbs   []string   `toml:"thumbs" json:"thumbs"`
	Pressed  []string   `toml:"pressed" json:"pressed"`
	Encoders [][]string `toml:"encoders" json:"encoders"`
}

// toLayer converts the wire form, validating encoder pairs.
func (rl rawLayer) toLayer(name string) (Layer, error) {
	l := Layer{Rows: rl.Rows, Thumbs: rl.Thumbs, Pressed: rl.Pressed}
	for i, pair := range rl.Encoders {
		if len(pair) != 2 {
			return Layer{}, errors.New(errors.ErrCodeInvalidDocument,
				"layer %q: encoder %d must have exactly two actions (ccw, cw)", name, i)
		}
		l.Encoders = append(l.Encoders, EncoderAction{CCW: pair[0], CW: pair[1]})
	}
	return l, nil
}

// namedRawLayer pairs a wire-form layer with its document name.
type namedRawLayer struct {
	name string
	rawLayer
}

// build assembles and validates a Keyboard from decoded document parts.
func build(name string, rc rawConfig, layers []namedRawLayer) (*Keyboard, error) {
	geo, err := rc.geometry(name)
	if err != nil {
		return nil, err
	}

	kb := &Keyboard{
		Name: name,
		Config: Config{
			Geometry:   geo,
			SplitAt:    rc.SplitAt,
			ThumbCount: rc.ThumbCount,
		},
	}
	for _, rl := range layers {
		layer, err := rl.toLayer(rl.name)
		if err != nil {
			return nil, err
		}
		kb.Layers = append(kb.Layers, NamedLayer{Name: rl.name, Layer: layer})
	}

	if err := kb.Validate(); err != nil {
		return nil, err
	}
	return kb, nil
}

// DecodeTOML parses a TOML keymap document, preserving layer order.
//
// The canonical shape is a [config] table plus one [layers.<name>] table
// per layer. The legacy shape, where layer tables sit at the top level
// next to [config], is still accepted. A top-level name key overrides the
// given default name.
func DecodeTOML(r io.Reader, name string) (*Keyboard, error) {
	var doc map[string]toml.Primitive
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "failed to parse TOML document")
	}

	if prim, ok := doc["name"]; ok {
		var n string
		if err := md.PrimitiveDecode(prim, &n); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "invalid name value")
		}
		if n != "" {
			name = n
		}
	}

	var rc rawConfig
	if prim, ok := doc["config"]; ok {
		if err := md.PrimitiveDecode(prim, &rc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "invalid [config] table")
		}
	}

	var ordered []namedRawLayer
	if prim, ok := doc["layers"]; ok {
		var tables map[string]rawLayer
		if err := md.PrimitiveDecode(prim, &tables); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "invalid [layers] table")
		}
		for _, lname := range tomlLayerNames(md) {
			rl, ok := tables[lname]
			if !ok {
				continue
			}
			ordered = append(ordered, namedRawLayer{name: lname, rawLayer: rl})
		}
	} else {
		// Legacy shape: layer tables at the top level next to [config].
		for _, key := range md.Keys() {
			if len(key) != 1 {
				continue
			}
			lname := key[0]
			if lname == "name" || lname == "config" {
				continue
			}
			var rl rawLayer
			if err := md.PrimitiveDecode(doc[lname], &rl); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "invalid layer table %q", lname)
			}
			ordered = append(ordered, namedRawLayer{name: lname, rawLayer: rl})
		}
	}

	// Anything never decoded is a typo or an unsupported key.
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "unknown key %q in document", undecoded[0].String())
	}

	return build(name, rc, ordered)
}

// tomlLayerNames extracts the names under [layers] in document order.
func tomlLayerNames(md toml.MetaData) []string {
	var names []string
	seen := make(map[string]bool)
	for _, key := range md.Keys() {
		if len(key) < 2 || key[0] != "layers" {
			continue
		}
		if !seen[key[1]] {
			seen[key[1]] = true
			names = append(names, key[1])
		}
	}
	return names
}

// DecodeJSON parses a JSON keymap document, preserving layer order.
// It accepts the same canonical and legacy shapes as [DecodeTOML].
func DecodeJSON(r io.Reader, name string) (*Keyboard, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to read document")
	}

	top, err := orderedObject(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "failed to parse JSON document")
	}

	canonical := false
	for _, m := range top {
		if m.Key == "layers" {
			canonical = true
			break
		}
	}

	var rc rawConfig
	var ordered []namedRawLayer
	for _, m := range top {
		switch m.Key {
		case "name":
			var n string
			if err := json.Unmarshal(m.Value, &n); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "invalid name value")
			}
			if n != "" {
				name = n
			}
		case "config":
			if err := json.Unmarshal(m.Value, &rc); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "invalid config object")
			}
		case "layers":
			members, err := orderedObject(m.Value)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "invalid layers object")
			}
			for _, lm := range members {
				var rl rawLayer
				if err := json.Unmarshal(lm.Value, &rl); err != nil {
					return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "invalid layer %q", lm.Key)
				}
				ordered = append(ordered, namedRawLayer{name: lm.Key, rawLayer: rl})
			}
		default:
			if canonical {
				return nil, errors.New(errors.ErrCodeInvalidDocument, "unknown key %q in document", m.Key)
			}
			// Legacy shape: layer objects at the top level.
			var rl rawLayer
			if err := json.Unmarshal(m.Value, &rl); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "invalid layer %q", m.Key)
			}
			ordered = append(ordered, namedRawLayer{name: m.Key, rawLayer: rl})
		}
	}

	return build(name, rc, ordered)
}

// jsonMember is one key/value pair of a JSON object, in document position.
type jsonMember struct {
	Key   string
	Value json.RawMessage
}

// orderedObject parses a JSON object into its members, preserving the
// order in which keys appear. encoding/json maps would lose it.
func orderedObject(data []byte) ([]jsonMember, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	var members []jsonMember
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		members = append(members, jsonMember{Key: key, Value: raw})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return members, nil
}

// LoadFile reads a keymap document from disk, dispatching on the file
// extension. The keyboard name defaults to the file's base name unless the
// document carries its own.
func LoadFile(path string) (*Keyboard, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "document not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "failed to open %s", path)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return DecodeTOML(f, name)
	case ".json":
		return DecodeJSON(f, name)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat,
		"unsupported document format %q (expected .toml or .json)", filepath.Ext(path))
}
