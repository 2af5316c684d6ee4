// Package term provides color state, level styles and terminal detection.
//
// The enabled flag is package-level because multiple packages (logging,
// display) need it for output formatting. [Configure] sets it once during
// startup; when colors are disabled every style renders plain text.
package term

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/backmassage/symcat/internal/config"
)

var (
	enabled bool

	// detected is the profile lipgloss picked from stdout at startup.
	detected = lipgloss.ColorProfile()
)

// Level styles. Used through [Render] so that disabled color is a no-op.
var (
	Red     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	Green   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	Yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	Blue    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	Cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	Magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
)

// Configure resolves the color mode and records whether styles apply.
// Call once during startup (from [logging.NewLogger]).
//
// ColorAlways forces an ANSI profile, since lipgloss would otherwise strip
// colors whenever stdout is not a terminal.
func Configure(mode config.ColorMode) {
	enabled = resolve(mode)
	switch mode {
	case config.ColorAlways:
		lipgloss.SetColorProfile(termenv.ANSI)
	case config.ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	default:
		lipgloss.SetColorProfile(detected)
	}
}

// Enabled reports whether colors are currently active.
func Enabled() bool { return enabled }

// Render applies style to text when colors are enabled.
func Render(style lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return style.Render(text)
}

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
