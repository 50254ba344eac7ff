package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/tonesketch/pkg/pccs"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// PaletteBrowserModel - Interactive hue and tone browser
// =============================================================================

// Swatch is a picked tone on a hue.
type Swatch struct {
	Hue   pccs.Hue
	Tone  pccs.Tone
	Color pccs.RGB
}

// Name returns e.g. "8:Y sf".
func (s Swatch) Name() string {
	return fmt.Sprintf("%s %s", s.Hue, s.Tone)
}

// PaletteBrowserModel is the bubbletea model for browsing palettes.
// Rows are hues, columns are the supported tones.
type PaletteBrowserModel struct {
	Hues     []pccs.Hue
	Tones    []pccs.Tone
	Cursor   int // selected hue row
	Column   int // selected tone column
	Selected *Swatch
	Height   int
	Offset   int
}

// NewPaletteBrowserModel creates a browser with the cursor on start, or on
// the first hue when start is zero.
func NewPaletteBrowserModel(start pccs.Hue) PaletteBrowserModel {
	m := PaletteBrowserModel{
		Hues:   pccs.Hues(),
		Tones:  pccs.SupportedTones(),
		Height: 12,
	}
	if start.Valid() {
		m.Cursor = int(start) - 1
		m.scroll()
	}
	return m
}

func (m PaletteBrowserModel) Init() tea.Cmd {
	return nil
}

func (m PaletteBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Hues)-1 {
				m.Cursor++
			}
		case "left", "h":
			if m.Column > 0 {
				m.Column--
			}
		case "right", "l":
			if m.Column < len(m.Tones)-1 {
				m.Column++
			}
		case "enter":
			s := m.Current()
			m.Selected = &s
			return m, tea.Quit
		}
		m.scroll()
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
		m.scroll()
	}
	return m, nil
}

// Current returns the swatch under the cursor.
func (m PaletteBrowserModel) Current() Swatch {
	h, t := m.Hues[m.Cursor], m.Tones[m.Column]
	return Swatch{Hue: h, Tone: t, Color: pccs.MustRGB(t, h)}
}

// scroll keeps the cursor inside the visible window.
func (m *PaletteBrowserModel) scroll() {
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m PaletteBrowserModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("PCCS Palettes"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ hue  ←/→ tone  ⏎ pick  q quit"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%-8s", ""))
	for i, t := range m.Tones {
		label := fmt.Sprintf("%-4s", t)
		if i == m.Column {
			b.WriteString(listSelectedStyle.Render(label))
		} else {
			b.WriteString(listDimStyle.Render(label))
		}
	}
	b.WriteString("\n")

	end := min(m.Offset+m.Height, len(m.Hues))
	for i := m.Offset; i < end; i++ {
		h := m.Hues[i]
		label := fmt.Sprintf("%-6s", h)
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + label))
		} else {
			b.WriteString(listNormalStyle.Render("  " + label))
		}
		for j, t := range m.Tones {
			cell := swatch(pccs.MustRGB(t, h), 3)
			if i == m.Cursor && j == m.Column {
				cell = swatch(pccs.MustRGB(t, h), 2) + listSelectedStyle.Render("◂")
			}
			b.WriteString(cell + " ")
		}
		b.WriteString("\n")
	}

	cur := m.Current()
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s  %s  %s\n",
		swatch(cur.Color, 6),
		styleValue.Render(cur.Name()),
		listDimStyle.Render(cur.Tone.Name()),
		StyleHighlight.Render(cur.Color.Hex())))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Hues))))

	return b.String()
}
