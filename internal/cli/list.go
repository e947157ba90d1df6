package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Jessica765/vial-userspace/pkg/keymap"
)

// listCommand creates the list command for showing the keyboard catalogue.
func (c *CLI) listCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the built-in keyboards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				kb, err := pickKeyboard()
				if err != nil {
					return err
				}
				if kb == nil {
					return nil
				}
				printNewline()
				printNextStep("Render", appName+" render "+kb.Name)
				return nil
			}
			printCatalog()
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick a keyboard interactively")

	return cmd
}

// printCatalog prints the keyboard catalogue as a table.
func printCatalog() {
	rows := [][]string{}
	for _, kb := range keymap.Catalog() {
		encoders := "—"
		if n := encoderCount(kb); n > 0 {
			encoders = strconv.Itoa(n)
		}
		rows = append(rows, []string{
			kb.Name,
			string(kb.Config.Geometry),
			strconv.Itoa(keyCount(kb)),
			encoders,
			strings.Join(kb.LayerNames(), ", "),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Keyboard", "Geometry", "Keys", "Encoders", "Layers").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	fmt.Println(t.Render())
}

// keyCount counts the physical key positions of a keyboard, taken from its
// first layer's grid and thumb cluster.
func keyCount(kb *keymap.Keyboard) int {
	if len(kb.Layers) == 0 {
		return 0
	}
	base := kb.Layers[0].Layer
	n := len(base.Thumbs)
	for _, row := range base.Rows {
		n += len(row)
	}
	return n
}

// encoderCount counts a keyboard's rotary encoders, taken as the widest
// encoder list across its layers.
func encoderCount(kb *keymap.Keyboard) int {
	n := 0
	for _, nl := range kb.Layers {
		if len(nl.Layer.Encoders) > n {
			n = len(nl.Layer.Encoders)
		}
	}
	return n
}
