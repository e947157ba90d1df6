package ascii

import (
	"strings"
	"testing"

	"github.com/Jessica765/vial-userspace/pkg/keymap"
)

func TestSplitRenderLayerEncoders(t *testing.T) {
	kb, ok := keymap.Lookup("sofle")
	if !ok {
		t.Fatal("sofle not in catalog")
	}
	layer, ok := kb.FindLayer("base")
	if !ok {
		t.Fatal("sofle has no base layer")
	}

	want := strings.Join([]string{
		"/*",
		" * SOFLE - BASE Layer",
		" * ,-----------------------------------------------------.                                        ,-----------------------------------------------------.",
		" * |   `    |   1    |   2    |   3    |   4    |   5    |                                        |   6    |   7    |   8    |   9    |   0    |  Esc   |",
		" * |--------|--------|--------|--------|--------|--------|                                        |--------|--------|--------|--------|--------|--------|",
		" * |   \\    |   Q    |   W    |   E    |   R    |   T    |                                        |   Y    |   U    |   I    |   O    |   P    |  Alt   |",
		" * |--------|--------|--------|--------|--------|--------|                                        |--------|--------|--------|--------|--------|--------|",
		" * |  Ctrl  |   A    |   S    |   D    |   F    |   G    |                                        |   H    |   J    |   K    |   L    |   ;    |   '    |",
		" * |--------|--------|--------|--------|--------|--------|--------|                      |--------|--------|--------|--------|--------|--------|--------|",
		" * |  GUI   |   Z    |   X    |   C    |   V    |   B    | V-/V+  |                      | PU/PD  |   N    |   M    |   ,    |   .    |   /    | Enter  |",
		" * `--------------------------------------------------------------\\                      /--------------------------------------------------------------'",
		" *                   |   -    |   =    |[MO(1) ]| Shift  |  Tab   |                      | Space  |  Bksp  |[MO(2) ]|   [    |   ]    |",
		" *                   `--------------------------------------------/                      \\--------------------------------------------'",
		" */",
	}, "\n")

	got := Split{At: kb.Config.EffectiveSplitAt()}.RenderLayer("SOFLE - BASE Layer", layer)
	if got != want {
		diffLines(t, got, want)
	}
}

func TestSplitRenderLayerPressed(t *testing.T) {
	kb, ok := keymap.Lookup("sofle")
	if !ok {
		t.Fatal("sofle not in catalog")
	}
	layer, ok := kb.FindLayer("mo1")
	if !ok {
		t.Fatal("sofle has no mo1 layer")
	}

	want := strings.Join([]string{
		"/*",
		" * SOFLE - MO1 Layer",
		" * ,-----------------------------------------------------.                                        ,-----------------------------------------------------.",
		" * |  ...   |  ...   |  ...   |  ...   |  ...   |  ...   |                                        |  ...   |  ...   |  ...   |  ...   |  ...   |  ...   |",
		" * |--------|--------|--------|--------|--------|--------|                                        |--------|--------|--------|--------|--------|--------|",
		" * |   ,    |   .    |   7    |   8    |   9    |   ;    |                                        |  Vol+  |  Prev  |  Play  |  Next  |  ...   |  ...   |",
		" * |--------|--------|--------|--------|--------|--------|                                        |--------|--------|--------|--------|--------|--------|",
		" * |  ...   |  ...   |   4    |   5    |   6    |   -    |                                        |  Vol-  |  Ctrl  | Shift  |  Alt   |  GUI   |  ...   |",
		" * |--------|--------|--------|--------|--------|--------|                                        |--------|--------|--------|--------|--------|--------|",
		" * |  ...   |   0    |   1    |   2    |   3    |   =    |                                        |  Mute  |  ...   |  ...   |  ...   |        |        |",
		" * `--------------------------------------------------------------\\                      /--------------------------------------------------------------'",
		" *                   |   {    |   }    |[MO(3) ]|  ...   |  ...   |                      |  ...   |  ...   |  HLD   |  ...   |  ...   |",
		" *                   `--------------------------------------------/                      \\--------------------------------------------'",
		" */",
	}, "\n")

	got := Split{At: kb.Config.EffectiveSplitAt()}.RenderLayer("SOFLE - MO1 Layer", layer)
	if got != want {
		diffLines(t, got, want)
	}
}

func TestSplitRenderLayerNoEncoders(t *testing.T) {
	kb, ok := keymap.Lookup("corne")
	if !ok {
		t.Fatal("corne not in catalog")
	}
	layer, ok := kb.FindLayer("base")
	if !ok {
		t.Fatal("corne has no base layer")
	}

	want := strings.Join([]string{
		"/*",
		" * CORNE - BASE Layer",
		" * ,-----------------------------------------------------.                                        ,-----------------------------------------------------.",
		" * |  Tab   |   Q    |   W    |   E    |   R    |   T    |                                        |   Y    |   U    |   I    |   O    |   P    |  Esc   |",
		" * |--------|--------|--------|--------|--------|--------|                                        |--------|--------|--------|--------|--------|--------|",
		" * |  Ctrl  |   A    |   S    |   D    |   F    |   G    |                                        |   H    |   J    |   K    |   L    |   ;    |   '    |",
		" * |--------|--------|--------|--------|--------|--------|                                        |--------|--------|--------|--------|--------|--------|",
		" * |  GUI   |   Z    |   X    |   C    |   V    |   B    |                                        |   N    |   M    |   ,    |   .    |   /    | Enter  |",
		" * `--------------------------------------------------------------\\                      /--------------------------------------------------------------'",
		" *                                     |[MO(1) ]| Shift  |  Tab   |                      | Space  |  Bksp  |[MO(2) ]|",
		" *                                     `--------------------------/                      \\--------------------------'",
		" */",
	}, "\n")

	got := Split{At: kb.Config.EffectiveSplitAt()}.RenderLayer("CORNE - BASE Layer", layer)
	if got != want {
		diffLines(t, got, want)
	}
}

func TestSplitRenderLayerNarrow(t *testing.T) {
	layer := keymap.Layer{
		Rows:   [][]string{{"A", "B", "C"}},
		Thumbs: []string{"X", "Y", "Z"},
	}

	want := strings.Join([]string{
		"/*",
		" * DEMO - BASE Layer",
		" * ,-----------------.                                        ,--------.",
		" * |   A    |   B    |                                        |   C    |",
		" * `--------------------------\\                      /-----------------'",
		" *          |   X    |   Y    |                      |   Z    |",
		" *          `-----------------/                      \\--------'",
		" */",
	}, "\n")

	got := Split{At: 2}.RenderLayer("DEMO - BASE Layer", layer)
	if got != want {
		diffLines(t, got, want)
	}
}

func TestSplitRenderLayerThumbsOnly(t *testing.T) {
	layer := keymap.Layer{Thumbs: []string{"A", "B"}}

	want := strings.Join([]string{
		"/*",
		" * DEMO - BASE Layer",
		" * ,-----------------------------------------------------.                                        ,-----------------------------------------------------.",
		" * `--------------------------------------------------------------\\                      /--------------------------------------------------------------'",
		" *                                                       |   A    |                      |   B    |",
		" *                                                       `--------/                      \\--------'",
		" */",
	}, "\n")

	got := Split{At: 6}.RenderLayer("DEMO - BASE Layer", layer)
	if got != want {
		diffLines(t, got, want)
	}
}

func TestSplitRenderLayerEmpty(t *testing.T) {
	want := strings.Join([]string{
		"/*",
		" * DEMO - MO3 Layer",
		" * No keys defined for this layer",
		" */",
	}, "\n")

	got := Split{At: 6}.RenderLayer("DEMO - MO3 Layer", keymap.Layer{})
	if got != want {
		diffLines(t, got, want)
	}
}

// Encoder cells widen their row and the neighboring separators without
// disturbing the overall frame width.
func TestSplitBodyLineWidths(t *testing.T) {
	kb, ok := keymap.Lookup("sofle")
	if !ok {
		t.Fatal("sofle not in catalog")
	}
	layer, ok := kb.FindLayer("base")
	if !ok {
		t.Fatal("sofle has no base layer")
	}

	lines := strings.Split(Split{At: 6}.RenderLayer("SOFLE - BASE Layer", layer), "\n")
	bottom := -1
	for i, line := range lines {
		if strings.HasPrefix(line, " * `") {
			bottom = i
			break
		}
	}
	if bottom < 0 {
		t.Fatal("no bottom border in output")
	}
	for i := 3; i <= bottom; i++ {
		if len(lines[i]) != len(lines[2]) {
			t.Errorf("line %d width = %d, want %d", i+1, len(lines[i]), len(lines[2]))
		}
	}
}
