package ascii

import (
	"strings"
	"testing"

	"github.com/Jessica765/vial-userspace/pkg/keymap"
)

func TestTotemRenderLayer(t *testing.T) {
	kb, ok := keymap.Lookup("totem")
	if !ok {
		t.Fatal("totem not in catalog")
	}
	layer, ok := kb.FindLayer("base")
	if !ok {
		t.Fatal("totem has no base layer")
	}

	want := strings.Join([]string{
		"/*",
		" * TOTEM - BASE Layer",
		" *          ,--------------------------------------------.                                        ,--------------------------------------------.",
		" *          |   Q    |   W    |   E    |   R    |   T    |                                        |   Y    |   U    |   I    |   O    |   P    |",
		" *          |--------|--------|--------|--------|--------|                                        |--------|--------|--------|--------|--------|",
		" *          |   A    |   S    |   D    |   F    |   G    |                                        |   H    |   J    |   K    |   L    |   ;    |",
		" * /--------|--------|--------|--------|--------|--------|                                        |--------|--------|--------|--------|--------|--------\\",
		" * |  Ctrl  |   Z    |   X    |   C    |   V    |   B    |                                        |   N    |   M    |   ,    |   .    |   /    | Enter  |",
		" * `--------------------------------------------------------------\\                       /--------------------------------------------------------------'",
		" *                                     |[MO(1) ]| Shift  |  Tab   |                       | Space  |  Bksp  |[MO(2) ]|",
		" *                                     `--------------------------/                       \\--------------------------'",
		" */",
	}, "\n")

	got := Totem{}.RenderLayer("TOTEM - BASE Layer", layer)
	if got != want {
		diffLines(t, got, want)
	}
}

func TestTotemRenderLayerEmpty(t *testing.T) {
	want := strings.Join([]string{
		"/*",
		" * TOTEM - MO3 Layer",
		" * No keys defined for this layer",
		" */",
	}, "\n")

	got := Totem{}.RenderLayer("TOTEM - MO3 Layer", keymap.Layer{})
	if got != want {
		diffLines(t, got, want)
	}
}

// The outer pinky columns exist only on the bottom row, so the two upper
// rows are drawn inset while the bottom row spans the full width.
func TestTotemRowInsets(t *testing.T) {
	kb, _ := keymap.Lookup("totem")
	layer, _ := kb.FindLayer("base")
	lines := strings.Split(Totem{}.RenderLayer("TOTEM - BASE Layer", layer), "\n")

	inset := " * " + strings.Repeat(" ", KeyWidth+1)
	for _, i := range []int{2, 3, 4, 5} {
		if !strings.HasPrefix(lines[i], inset) {
			t.Errorf("line %d = %q, want inset prefix %q", i+1, lines[i], inset)
		}
	}
	if !strings.HasPrefix(lines[6], " * /") {
		t.Errorf("line 7 = %q, want slant prefix", lines[6])
	}
	if !strings.HasPrefix(lines[7], " * |") {
		t.Errorf("line 8 = %q, want full-width row", lines[7])
	}
}
