package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/tonesketch/pkg/pccs"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m PaletteBrowserModel, keys ...string) (PaletteBrowserModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(PaletteBrowserModel)
	}
	return m, cmd
}

func TestPaletteBrowserStart(t *testing.T) {
	if m := NewPaletteBrowserModel(0); m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", m.Cursor)
	}
	m := NewPaletteBrowserModel(pccs.Hue(20))
	if m.Cursor != 19 {
		t.Errorf("Cursor = %d, want 19", m.Cursor)
	}
	if m.Cursor < m.Offset || m.Cursor >= m.Offset+m.Height {
		t.Errorf("cursor %d outside window [%d, %d)", m.Cursor, m.Offset, m.Offset+m.Height)
	}
}

func TestPaletteBrowserNavigation(t *testing.T) {
	m, _ := press(NewPaletteBrowserModel(0), "down", "j", "right", "l", "right", "left")
	if m.Cursor != 2 || m.Column != 2 {
		t.Errorf("cursor = (%d, %d), want (2, 2)", m.Cursor, m.Column)
	}

	// Clamped at the edges.
	m, _ = press(m, "up", "up", "up", "up", "left", "left", "left")
	if m.Cursor != 0 || m.Column != 0 {
		t.Errorf("cursor = (%d, %d), want (0, 0)", m.Cursor, m.Column)
	}
	for range len(m.Tones) + 3 {
		m, _ = press(m, "right")
	}
	if m.Column != len(m.Tones)-1 {
		t.Errorf("Column = %d, want %d", m.Column, len(m.Tones)-1)
	}
}

func TestPaletteBrowserScroll(t *testing.T) {
	m := NewPaletteBrowserModel(0)
	m.Height = 5
	for range 10 {
		m, _ = press(m, "down")
	}
	if m.Offset != 6 {
		t.Errorf("Offset = %d, want 6", m.Offset)
	}
}

func TestPaletteBrowserSelect(t *testing.T) {
	m, cmd := press(NewPaletteBrowserModel(pccs.Hue(8)), "right", "enter")
	if cmd == nil {
		t.Fatal("enter should quit")
	}
	if m.Selected == nil {
		t.Fatal("Selected is nil")
	}
	want := pccs.SupportedTones()[1]
	if m.Selected.Hue != 8 || m.Selected.Tone != want {
		t.Errorf("Selected = %s, want 8:Y %s", m.Selected.Name(), want)
	}
	if m.Selected.Color != pccs.MustRGB(want, 8) {
		t.Error("Selected color does not match ToRGB")
	}
}

func TestPaletteBrowserQuit(t *testing.T) {
	for _, k := range []string{"q", "esc"} {
		var msg tea.KeyMsg
		if k == "esc" {
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		} else {
			msg = key(k)
		}
		next, cmd := NewPaletteBrowserModel(0).Update(msg)
		if cmd == nil {
			t.Errorf("%s should quit", k)
		}
		if next.(PaletteBrowserModel).Selected != nil {
			t.Errorf("%s should not select", k)
		}
	}
}

func TestPaletteBrowserView(t *testing.T) {
	v := NewPaletteBrowserModel(pccs.Hue(3)).View()
	for _, want := range []string{"PCCS Palettes", "3:yR", "[3/24]"} {
		if !strings.Contains(v, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestPaletteTable(t *testing.T) {
	out := paletteTable(hueList(pccs.Hue(12)))
	if !strings.Contains(out, "12:G") {
		t.Error("table missing hue row")
	}
	if strings.Contains(out, "1:pR") {
		t.Error("table should only list the requested hue")
	}
	for _, tone := range pccs.SupportedTones() {
		if !strings.Contains(out, string(tone)) {
			t.Errorf("table missing tone %s", tone)
		}
	}
	if len(hueList(0)) != pccs.HueCount {
		t.Error("hueList(0) should list every hue")
	}
}
