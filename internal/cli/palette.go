package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tonesketch/pkg/pccs"
)

// paletteOpts holds the command-line flags for the palette command.
type paletteOpts struct {
	hue         string // restrict the listing to one hue
	interactive bool   // open the browser instead of printing
}

// paletteCommand creates the palette command for inspecting PCCS colours.
func (c *CLI) paletteCommand() *cobra.Command {
	var opts paletteOpts

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Show PCCS hues and tones as colour swatches",
		Long:  `Palette prints every supported tone for each PCCS hue. With --interactive it opens a browser in which hues and tones can be explored.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hue, err := parseHueFlag(opts.hue)
			if err != nil {
				return err
			}
			if opts.interactive {
				return runPaletteBrowser(hue)
			}
			fmt.Println(paletteTable(hueList(hue)))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.hue, "hue", "", "only show this hue, e.g. 8 or Y")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse palettes interactively")

	return cmd
}

// hueList returns the single hue h, or every hue when h is zero.
func hueList(h pccs.Hue) []pccs.Hue {
	if h == 0 {
		return pccs.Hues()
	}
	return []pccs.Hue{h}
}

// swatch renders a block of background colour c.
func swatch(c pccs.RGB, width int) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render(strings.Repeat(" ", width))
}

// paletteTable renders one row per hue and one column per supported tone.
func paletteTable(hues []pccs.Hue) string {
	tones := pccs.SupportedTones()

	headers := []string{"Hue"}
	for _, t := range tones {
		headers = append(headers, t.String())
	}

	rows := make([][]string, 0, len(hues))
	for _, h := range hues {
		row := []string{h.String()}
		for _, t := range tones {
			row = append(row, swatch(pccs.MustRGB(t, h), 4))
		}
		rows = append(rows, row)
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorLabel).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorValue)
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

// runPaletteBrowser opens the interactive browser and prints the colour
// picked with enter, if any.
func runPaletteBrowser(start pccs.Hue) error {
	m := NewPaletteBrowserModel(start)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return fmt.Errorf("palette browser: %w", err)
	}
	if sel := final.(PaletteBrowserModel).Selected; sel != nil {
		printSuccess("Picked %s", StyleHighlight.Render(sel.Name()))
		printKeyValue("hue", sel.Hue.String())
		printKeyValue("tone", fmt.Sprintf("%s (%s)", sel.Tone, sel.Tone.Name()))
		printKeyValue("hex", sel.Color.Hex())
	}
	return nil
}
