package vial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"empty", "", ""},
		{"minus one", "-1", ""},
		{"no-op keycode", "KC_NO", ""},
		{"unassigned keycode", "KC_XXXXXXX", ""},

		{"transparent", "KC_TRNS", "TRNS"},
		{"transparent long", "KC_TRANSPARENT", "TRNS"},
		{"space", "KC_SPC", "Space"},
		{"backspace", "KC_BSPC", "Bksp"},
		{"enter", "KC_ENT", "Enter"},
		{"shift left", "KC_LSFT", "Shift"},
		{"shift right", "KC_RSFT", "Shift"},
		{"gui", "KC_LGUI", "GUI"},
		{"grave", "KC_GRV", "`"},
		{"backslash", "KC_BSLS", "\\"},
		{"volume up", "KC_VOLU", "Vol+"},
		{"print screen", "KC_PSCR", "PrtSc"},
		{"caps word", "CW_TOGG", "CapsWord"},
		{"bootloader", "QK_BOOT", "Reset"},

		{"letter", "KC_A", "A"},
		{"lowercase letter", "KC_q", "q"},
		{"digit", "KC_7", "7"},
		{"function key", "KC_F1", "F1"},
		{"high function key", "KC_F24", "F24"},
		{"function key out of range", "KC_F25", "KC_F25"},

		{"layer switch", "MO(1)", "MO(1)"},
		{"layer tap", "LT(2,KC_SPC)", "LT(2,KC_SPC)"},
		{"hex literal", "0x1DCD", "0x1DCD"},
		{"macro", "M3", "M3"},
		{"unknown passes through", "KC_INTL3", "KC_INTL3"},
		{"padded", " KC_TAB ", "Tab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Translate(tt.code))
		})
	}
}
