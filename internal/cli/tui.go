package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Jessica765/vial-userspace/pkg/keymap"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// KeyboardListModel - Interactive keyboard selection
// =============================================================================

// KeyboardListModel is the bubbletea model for interactive keyboard selection.
type KeyboardListModel struct {
	Keyboards []*keymap.Keyboard
	Cursor    int
	Selected  *keymap.Keyboard
}

// NewKeyboardListModel creates a new keyboard list model.
func NewKeyboardListModel(kbs []*keymap.Keyboard) KeyboardListModel {
	return KeyboardListModel{Keyboards: kbs}
}

func (m KeyboardListModel) Init() tea.Cmd {
	return nil
}

func (m KeyboardListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Keyboards)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = m.Keyboards[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m KeyboardListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Keyboard"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	rows := [][]string{}
	for i, kb := range m.Keyboards {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		encoders := "—"
		if n := encoderCount(kb); n > 0 {
			encoders = strconv.Itoa(n)
		}

		rows = append(rows, []string{
			cursor,
			kb.Name,
			string(kb.Config.Geometry),
			strconv.Itoa(keyCount(kb)),
			encoders,
			strconv.Itoa(len(kb.Layers)),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Keyboard", "Geometry", "Keys", "Encoders", "Layers").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Keyboards))))

	return b.String()
}

// =============================================================================
// LayerListModel - Interactive layer selection
// =============================================================================

// allLayers is the label of the picker entry that selects every layer.
const allLayers = "all layers"

// LayerListModel is the bubbletea model for interactive layer selection.
// The first entry selects every layer.
type LayerListModel struct {
	Keyboard *keymap.Keyboard
	Cursor   int
	Selected string // chosen layer name; empty means every layer
	Done     bool   // true when a choice was made rather than dismissed
}

// NewLayerListModel creates a new layer list model for kb.
func NewLayerListModel(kb *keymap.Keyboard) LayerListModel {
	return LayerListModel{Keyboard: kb}
}

func (m LayerListModel) Init() tea.Cmd {
	return nil
}

func (m LayerListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Keyboard.Layers) {
				m.Cursor++
			}
		case "enter":
			m.Done = true
			if m.Cursor > 0 {
				m.Selected = m.Keyboard.Layers[m.Cursor-1].Name
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m LayerListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Layer"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i := 0; i <= len(m.Keyboard.Layers); i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		var name, detail string
		if i == 0 {
			name = allLayers
			detail = fmt.Sprintf("%d layers", len(m.Keyboard.Layers))
		} else {
			nl := m.Keyboard.Layers[i-1]
			name = nl.Name
			detail = layerDetail(nl.Layer)
		}

		line := fmt.Sprintf("%s%-12s %s", cursor, name, listDimStyle.Render(detail))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// layerDetail summarizes a layer's bindings for the picker.
func layerDetail(l keymap.Layer) string {
	keys := 0
	for _, row := range l.Rows {
		for _, k := range row {
			if k != "" {
				keys++
			}
		}
	}
	for _, k := range l.Thumbs {
		if k != "" {
			keys++
		}
	}

	parts := []string{fmt.Sprintf("%d keys", keys)}
	if n := len(l.Encoders); n > 0 {
		parts = append(parts, fmt.Sprintf("%d encoders", n))
	}
	return strings.Join(parts, " · ")
}

// =============================================================================
// Helpers
// =============================================================================

// pickKeyboard runs the interactive keyboard picker over the catalogue.
// A nil keyboard with a nil error means the picker was dismissed.
func pickKeyboard() (*keymap.Keyboard, error) {
	p := tea.NewProgram(NewKeyboardListModel(keymap.Catalog()))
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	fm, ok := finalModel.(KeyboardListModel)
	if !ok || fm.Selected == nil {
		printDetail("No selection made")
		return nil, nil
	}
	return fm.Selected, nil
}

// pickLayer runs the interactive layer picker for kb. It returns the
// chosen layer name (empty for every layer) and whether a choice was made.
func pickLayer(kb *keymap.Keyboard) (string, bool, error) {
	p := tea.NewProgram(NewLayerListModel(kb))
	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	fm, ok := finalModel.(LayerListModel)
	if !ok || !fm.Done {
		printDetail("No selection made")
		return "", false, nil
	}
	return fm.Selected, true, nil
}
