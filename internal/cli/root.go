// Package cli implements the tonesketch command-line interface.
//
// This package provides commands for rendering sketches to files, browsing
// PCCS palettes and viewing sketches in an interactive window. The CLI is
// built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - render: Draw overlay or watercolor frames to PNG and JSON
//   - palette: Print or browse PCCS hue × tone swatches
//   - view: Open a window that redraws on click
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context as well as held on the CLI.
//
// # Example
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import "github.com/matzehuels/tonesketch/pkg/buildinfo"

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time. Empty values keep the current
// ones.
func SetVersion(v, c, d string) {
	if v != "" {
		buildinfo.Version = v
	}
	if c != "" {
		buildinfo.Commit = c
	}
	if d != "" {
		buildinfo.Date = d
	}
}
