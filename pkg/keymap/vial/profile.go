package vial

import "github.com/Jessica765/vial-userspace/pkg/keymap"

// MatrixPos addresses one key in the export's wiring matrix.
type MatrixPos struct {
	Row int
	Col int
}

// Profile describes how a keyboard's wiring matrix maps onto visual
// rows and the thumb cluster. Split boards wire their right half
// mirrored, which is why the column spans for that side run backwards.
type Profile struct {
	// Name is the keyboard name the converted document carries.
	Name string
	// Config is attached to the converted keyboard unchanged.
	Config keymap.Config
	// Rows lists the matrix positions of each visual row, left to right.
	Rows [][]MatrixPos
	// Thumbs lists the thumb cluster positions, left to right across
	// both hands.
	Thumbs []MatrixPos
	// Encoders is how many entries of the export's encoder_layout belong
	// to this board.
	Encoders int
	// MaxLayers caps how many layers are kept from the export. Zero
	// keeps them all.
	MaxLayers int
}

// ProfileFor returns the built-in conversion profile for a keyboard.
func ProfileFor(name string) (Profile, bool) {
	p, ok := profiles[name]
	return p, ok
}

// ProfileNames returns the keyboards with a built-in profile.
func ProfileNames() []string {
	return []string{"corne", "sofle"}
}

var profiles = map[string]Profile{
	// corne: 8x6 matrix. Rows 0-2 are the left half, 4-6 the mirrored
	// right half; rows 3 and 7 carry the three thumb keys per side on
	// the inner columns.
	"corne": {
		Name: "corne",
		Config: keymap.Config{
			Geometry:   keymap.GeometrySplit,
			SplitAt:    6,
			ThumbCount: 6,
		},
		Rows: [][]MatrixPos{
			join(span(0, 0, 5), span(4, 5, 0)),
			join(span(1, 0, 5), span(5, 5, 0)),
			join(span(2, 0, 5), span(6, 5, 0)),
		},
		Thumbs:    join(span(3, 3, 5), span(7, 5, 3)),
		MaxLayers: 4,
	},

	// sofle: 10x6 matrix. Rows 0-3 left, 5-8 mirrored right; rows 4 and
	// 9 carry five thumb keys per side. One rotary encoder per half.
	"sofle": {
		Name: "sofle",
		Config: keymap.Config{
			Geometry:   keymap.GeometrySplit,
			SplitAt:    6,
			ThumbCount: 10,
		},
		Rows: [][]MatrixPos{
			join(span(0, 0, 5), span(5, 5, 0)),
			join(span(1, 0, 5), span(6, 5, 0)),
			join(span(2, 0, 5), span(7, 5, 0)),
			join(span(3, 0, 5), span(8, 5, 0)),
		},
		Thumbs:    join(span(4, 1, 5), span(9, 5, 1)),
		Encoders:  2,
		MaxLayers: 4,
	},
}

// span lists the positions of one matrix row from column from to column
// to, inclusive. A from greater than to walks the row backwards.
func span(row, from, to int) []MatrixPos {
	step := 1
	if from > to {
		step = -1
	}
	var ps []MatrixPos
	for c := from; ; c += step {
		ps = append(ps, MatrixPos{Row: row, Col: c})
		if c == to {
			break
		}
	}
	return ps
}

func join(spans ...[]MatrixPos) []MatrixPos {
	var ps []MatrixPos
	for _, s := range spans {
		ps = append(ps, s...)
	}
	return ps
}
