package keymap

import "strings"

// Catalog returns the built-in keyboard descriptions in display order.
// The returned keyboards are shared; callers must not mutate them.
func Catalog() []*Keyboard {
	return builtins
}

// Names returns the names of the built-in keyboards in display order.
func Names() []string {
	names := make([]string, len(builtins))
	for i, kb := range builtins {
		names[i] = kb.Name
	}
	return names
}

// Lookup returns the built-in keyboard with the given name. The lookup is
// case-insensitive.
func Lookup(name string) (*Keyboard, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, kb := range builtins {
		if kb.Name == name {
			return kb, true
		}
	}
	return nil, false
}

var builtins = []*Keyboard{reviung41, sofle, corne, totem}

// reviung41: a 41-key unibody board, rendered as one grid with a five-key
// thumb cluster.
var reviung41 = &Keyboard{
	Name: "reviung41",
	Config: Config{
		Geometry:   GeometryUniform,
		ThumbCount: 5,
	},
	Layers: []NamedLayer{
		{Name: "base", Layer: Layer{
			Rows: [][]string{
				{"Tab", "Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P", "Esc"},
				{"Ctrl", "A", "S", "D", "F", "G", "H", "J", "K", "L", ";", "'"},
				{"GUI", "Z", "X", "C", "V", "B", "N", "M", ",", ".", "/", "Enter"},
			},
			Thumbs: []string{"MO(1)", "Shift", "Space", "Bksp", "MO(2)"},
		}},
		{Name: "mo1", Layer: Layer{
			Rows:    [][]string{{}},
			Thumbs:  []string{"MO(1)", "Shift", "Space", "Bksp", "MO(3)"},
			Pressed: []string{"MO(1)"},
		}},
		{Name: "mo2", Layer: Layer{
			Pressed: []string{"MO(2)"},
		}},
		{Name: "mo3", Layer: Layer{
			Pressed: []string{"MO(1)", "MO(2)"},
		}},
	},
}

// sofle: a split board with six columns per half, ten thumb keys, and a
// rotary encoder on each half.
var sofle = &Keyboard{
	Name: "sofle",
	Config: Config{
		Geometry:   GeometrySplit,
		SplitAt:    6,
		ThumbCount: 10,
	},
	Layers: []NamedLayer{
		{Name: "base", Layer: Layer{
			Rows: [][]string{
				{"`", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "Esc"},
				{"\\", "Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P", "Alt"},
				{"Ctrl", "A", "S", "D", "F", "G", "H", "J", "K", "L", ";", "'"},
				{"GUI", "Z", "X", "C", "V", "B", "N", "M", ",", ".", "/", "Enter"},
			},
			Thumbs:   []string{"-", "=", "MO(1)", "Shift", "Tab", "Space", "Bksp", "MO(2)", "[", "]"},
			Encoders: []EncoderAction{{CCW: "V-", CW: "V+"}, {CCW: "PU", CW: "PD"}},
		}},
		{Name: "mo1", Layer: Layer{
			Rows: [][]string{
				{"TRNS", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS"},
				{",", ".", "7", "8", "9", ";", "Vol+", "Prev", "Play", "Next", "TRNS", "TRNS"},
				{"TRNS", "TRNS", "4", "5", "6", "-", "Vol-", "Ctrl", "Shift", "Alt", "GUI", "TRNS"},
				{"TRNS", "0", "1", "2", "3", "=", "Mute", "TRNS", "TRNS", "TRNS"},
			},
			Thumbs:  []string{"{", "}", "MO(3)", "TRNS", "TRNS", "TRNS", "TRNS", "MO(1)", "TRNS", "TRNS"},
			Pressed: []string{"MO(1)"},
		}},
		{Name: "mo2", Layer: Layer{
			Rows: [][]string{
				{"TRNS", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS"},
				{"Insert", "PgUp", "PrtSc", "Up", "CapsWord", "Home", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS"},
				{"Del", "PgDn", "Left", "Down", "Right", "End", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS"},
				{"TRNS", "M1", "TRNS", "M2", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS"},
			},
			Thumbs:  []string{"TRNS", "TRNS", "MO(2)", "TRNS", "TRNS", "TRNS", "Del", "MO(3)", "TRNS", "TRNS"},
			Pressed: []string{"MO(2)"},
		}},
		{Name: "mo3", Layer: Layer{
			Rows: [][]string{
				{"Reset", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS", "Reset"},
				{"TRNS", "TRNS", "F7", "F8", "F9", "F10", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS"},
				{"TRNS", "TRNS", "F4", "F5", "F6", "F11", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS"},
				{"TRNS", "TRNS", "F1", "F2", "F3", "F12", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS", "TRNS"},
			},
			Thumbs:  []string{"TRNS", "TRNS", "MO(1)", "TRNS", "TRNS", "TRNS", "TRNS", "MO(2)", "TRNS", "TRNS"},
			Pressed: []string{"MO(1)", "MO(2)"},
		}},
	},
}

// corne: a split board with six columns per half and six thumb keys.
var corne = &Keyboard{
	Name: "corne",
	Config: Config{
		Geometry:   GeometrySplit,
		SplitAt:    6,
		ThumbCount: 6,
	},
	Layers: []NamedLayer{
		{Name: "base", Layer: Layer{
			Rows: [][]string{
				{"Tab", "Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P", "Esc"},
				{"Ctrl", "A", "S", "D", "F", "G", "H", "J", "K", "L", ";", "'"},
				{"GUI", "Z", "X", "C", "V", "B", "N", "M", ",", ".", "/", "Enter"},
			},
			Thumbs: []string{"MO(1)", "Shift", "Tab", "Space", "Bksp", "MO(2)"},
		}},
		{Name: "mo1", Layer: Layer{
			Pressed: []string{"MO(1)"},
		}},
		{Name: "mo2", Layer: Layer{
			Pressed: []string{"MO(2)"},
		}},
		{Name: "mo3", Layer: Layer{
			Pressed: []string{"MO(1)", "MO(2)"},
		}},
	},
}

// totem: a 38-key split board whose upper rows have five keys per half
// while the bottom row adds an extra pinky column on each side.
var totem = &Keyboard{
	Name: "totem",
	Config: Config{
		Geometry:   GeometryTotem,
		SplitAt:    5,
		ThumbCount: 6,
	},
	Layers: []NamedLayer{
		{Name: "base", Layer: Layer{
			Rows: [][]string{
				{"Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P"},
				{"A", "S", "D", "F", "G", "H", "J", "K", "L", ";"},
				{"Ctrl", "Z", "X", "C", "V", "B", "N", "M", ",", ".", "/", "Enter"},
			},
			Thumbs: []string{"MO(1)", "Shift", "Tab", "Space", "Bksp", "MO(2)"},
		}},
		{Name: "mo1", Layer: Layer{
			Pressed: []string{"MO(1)"},
		}},
		{Name: "mo2", Layer: Layer{
			Pressed: []string{"MO(2)"},
		}},
		{Name: "mo3", Layer: Layer{
			Pressed: []string{"MO(1)", "MO(2)"},
		}},
	},
}
