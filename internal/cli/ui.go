package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// stdout receives all status lines. Tests swap it for a buffer.
var stdout io.Writer = os.Stdout

// Terminal colours. The accent matches the teal of the default watercolor hue.
var (
	colorAccent = lipgloss.Color("36")
	colorOK     = lipgloss.Color("35")
	colorWarn   = lipgloss.Color("220")
	colorValue  = lipgloss.Color("255")
	colorLabel  = lipgloss.Color("245")
	colorMuted  = lipgloss.Color("240")
)

var (
	// StyleHighlight marks sketch and swatch names inside status lines.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorAccent)

	styleMuted = lipgloss.NewStyle().Foreground(colorMuted)
	styleValue = lipgloss.NewStyle().Foreground(colorValue)
	styleLabel = lipgloss.NewStyle().Foreground(colorLabel).Width(12)
	styleWarn  = lipgloss.NewStyle().Foreground(colorWarn)
)

// A marker prefixes a status line.
type marker struct {
	glyph string
	style lipgloss.Style
}

var (
	markOK   = marker{"✓", lipgloss.NewStyle().Foreground(colorOK)}
	markWarn = marker{"!", styleWarn}
	markInfo = marker{"›", lipgloss.NewStyle().Foreground(colorLabel)}
)

func (m marker) println(msg string) {
	fmt.Fprintln(stdout, m.style.Render(m.glyph)+" "+msg)
}

func printSuccess(format string, args ...any) {
	markOK.println(fmt.Sprintf(format, args...))
}

// printWarning colours the whole message, not just the marker.
func printWarning(format string, args ...any) {
	markWarn.println(styleWarn.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	markInfo.println(fmt.Sprintf(format, args...))
}

// printDetail prints an indented, muted line under the previous status.
func printDetail(format string, args ...any) {
	fmt.Fprintln(stdout, "  "+styleMuted.Render(fmt.Sprintf(format, args...)))
}

// printFile lists a written artifact.
func printFile(path string) {
	fmt.Fprintln(stdout, "  "+styleMuted.Render("→")+" "+styleValue.Render(path))
}

// printKeyValue prints one row of a swatch summary, label column first.
func printKeyValue(key, value string) {
	fmt.Fprintln(stdout, styleLabel.Render(key)+" "+styleValue.Render(value))
}
