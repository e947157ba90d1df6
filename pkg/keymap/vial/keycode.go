package vial

import (
	"strconv"
	"strings"
)

// labels maps QMK keycode names to the short display labels used in
// diagrams. Only codes whose name does not already read well in an
// eight-character cell need an entry.
var labels = map[string]string{
	"KC_TRNS":        "TRNS",
	"KC_TRANSPARENT": "TRNS",

	"KC_SPC":   "Space",
	"KC_SPACE": "Space",
	"KC_BSPC":  "Bksp",
	"KC_ENT":   "Enter",
	"KC_ENTER": "Enter",
	"KC_TAB":   "Tab",
	"KC_ESC":   "Esc",

	"KC_LSFT": "Shift",
	"KC_RSFT": "Shift",
	"KC_LCTL": "Ctrl",
	"KC_RCTL": "Ctrl",
	"KC_LALT": "Alt",
	"KC_RALT": "Alt",
	"KC_LGUI": "GUI",
	"KC_RGUI": "GUI",

	"KC_GRV":  "`",
	"KC_QUOT": "'",
	"KC_SCLN": ";",
	"KC_COMM": ",",
	"KC_DOT":  ".",
	"KC_SLSH": "/",
	"KC_BSLS": "\\",
	"KC_MINS": "-",
	"KC_EQL":  "=",
	"KC_LBRC": "[",
	"KC_RBRC": "]",

	"KC_UP":   "Up",
	"KC_DOWN": "Down",
	"KC_LEFT": "Left",
	"KC_RGHT": "Right",
	"KC_HOME": "Home",
	"KC_END":  "End",
	"KC_PGUP": "PgUp",
	"KC_PGDN": "PgDn",
	"KC_DEL":  "Del",
	"KC_INS":  "Ins",

	"KC_VOLU": "Vol+",
	"KC_VOLD": "Vol-",
	"KC_MUTE": "Mute",
	"KC_MPLY": "Play",
	"KC_MNXT": "Next",
	"KC_MPRV": "Prev",

	"KC_PSCR": "PrtSc",
	"KC_CAPS": "Caps",
	"CW_TOGG": "CapsWord",
	"QK_BOOT": "Reset",
}

// Translate converts a Vial keycode name to a display label. Empty
// positions ("-1", KC_NO and friends) translate to the empty label.
// Single letters and digits lose their KC_ prefix, as do the function
// keys F1 through F24. Layer-switch syntax like MO(1), hex literals and
// macro names pass through untouched, and so does anything Translate
// does not recognize.
func Translate(code string) string {
	code = strings.TrimSpace(code)
	switch code {
	case "", "-1", "KC_NO", "KC_XXXXXXX":
		return ""
	}

	if label, ok := labels[code]; ok {
		return label
	}

	if rest, ok := strings.CutPrefix(code, "KC_"); ok {
		if len(rest) == 1 && isAlnum(rest[0]) {
			return rest
		}
		if num, ok := strings.CutPrefix(rest, "F"); ok {
			if n, err := strconv.Atoi(num); err == nil && n >= 1 && n <= 24 {
				return rest
			}
		}
	}

	return code
}

func isAlnum(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9'
}
