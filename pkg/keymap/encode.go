package keymap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/Jessica765/vial-userspace/pkg/errors"
)

// encConfig is the canonical wire form written by the encoders. The legacy
// is_split flag is never emitted; geometry is always explicit.
type encConfig struct {
	Geometry   string `toml:"geometry" json:"geometry"`
	SplitAt    int    `toml:"split_at,omitempty" json:"split_at,omitempty"`
	ThumbCount int    `toml:"thumb_count,omitempty" json:"thumb_count,omitempty"`
}

type encLayer struct {
	Rows     [][]string `toml:"rows,omitempty" json:"rows,omitempty"`
	Thumbs   []string   `toml:"thumbs,omitempty" json:"thumbs,omitempty"`
	Pressed  []string   `toml:"pressed,omitempty" json:"pressed,omitempty"`
	Encoders [][]string `toml:"encoders,omitempty" json:"encoders,omitempty"`
}

func configWire(c Config) encConfig {
	return encConfig{
		Geometry:   string(c.Geometry),
		SplitAt:    c.SplitAt,
		ThumbCount: c.ThumbCount,
	}
}

func layerWire(l Layer) encLayer {
	el := encLayer{Rows: l.Rows, Thumbs: l.Thumbs, Pressed: l.Pressed}
	for _, e := range l.Encoders {
		el.Encoders = append(el.Encoders, []string{e.CCW, e.CW})
	}
	return el
}

// EncodeTOML writes kb as a canonical TOML keymap document. Layer tables
// are emitted in keyboard order, so decoding the output round-trips.
func EncodeTOML(w io.Writer, kb *Keyboard) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "name = %q\n\n[config]\n", kb.Name)
	if err := toml.NewEncoder(&buf).Encode(configWire(kb.Config)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to encode config")
	}

	for _, nl := range kb.Layers {
		fmt.Fprintf(&buf, "\n[layers.%s]\n", nl.Name)
		if err := toml.NewEncoder(&buf).Encode(layerWire(nl.Layer)); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "failed to encode layer %q", nl.Name)
		}
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to write document")
	}
	return nil
}

// EncodeJSON writes kb as a canonical JSON keymap document with layers in
// keyboard order.
func EncodeJSON(w io.Writer, kb *Keyboard) error {
	var buf bytes.Buffer
	buf.WriteByte('{')

	writeMember := func(key string, v any) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		keyData, err := json.Marshal(key)
		if err != nil {
			return err
		}
		buf.Write(keyData)
		buf.WriteByte(':')
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil
	}

	if err := writeMember("name", kb.Name); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to encode name")
	}
	if err := writeMember("config", configWire(kb.Config)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to encode config")
	}

	buf.WriteString(`,"layers":{`)
	for i, nl := range kb.Layers {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyData, err := json.Marshal(nl.Name)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "failed to encode layer name %q", nl.Name)
		}
		buf.Write(keyData)
		buf.WriteByte(':')
		data, err := json.Marshal(layerWire(nl.Layer))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "failed to encode layer %q", nl.Name)
		}
		buf.Write(data)
	}
	buf.WriteString("}}")

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to format document")
	}
	out.WriteByte('\n')

	if _, err := w.Write(out.Bytes()); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to write document")
	}
	return nil
}
