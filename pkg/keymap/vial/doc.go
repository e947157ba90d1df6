// Package vial converts Vial .vil keymap exports into keyboard
// documents.
//
// A .vil file stores each layer as the raw wiring matrix of the board,
// which has little to do with how the keys sit physically: split halves
// are separate row groups, the right half is wired mirrored, and thumb
// keys hide in otherwise unused matrix positions. A [Profile] describes
// that wiring for one board, and [Convert] applies it:
//
//	profile, _ := vial.ProfileFor("corne")
//	kb, err := vial.Convert(f, profile)
//
// Keycode names are shortened to display labels by [Translate]; the
// rendering packages never see vendor keycodes.
package vial
