// Package styles provides colour themes and styling for the conversion report.
package styles

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/custodia-labs/convert-code-refs/internal/core/domain"
)

// Theme defines the colour palette for the report.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates converted references.
	Success lipgloss.Color

	// Warning indicates blocks left without a link.
	Warning lipgloss.Color

	// Added colours inserted diff lines.
	Added lipgloss.Color

	// Removed colours deleted diff lines.
	Removed lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary: lipgloss.Color("#7C3AED"), // Purple
		Muted:   lipgloss.Color("#6C7086"), // Medium gray
		Success: lipgloss.Color("#A6E3A1"), // Green
		Warning: lipgloss.Color("#F9E2AF"), // Yellow
		Added:   lipgloss.Color("#A6E3A1"), // Green
		Removed: lipgloss.Color("#F38BA8"), // Red
	}
}

// Styles contains pre-configured lipgloss styles bound to one renderer.
type Styles struct {
	// Path style for file names.
	Path lipgloss.Style

	// Check style for the per-file success mark.
	Check lipgloss.Style

	// Partial style for counts where some blocks stayed unlinked.
	Partial lipgloss.Style

	// Total style for the summary line.
	Total lipgloss.Style

	// Muted style for hunk separators and context lines.
	Muted lipgloss.Style

	// Added style for inserted diff lines.
	Added lipgloss.Style

	// Removed style for deleted diff lines.
	Removed lipgloss.Style
}

// NewRenderer returns a renderer for w honouring the colour mode.
// In auto mode colour is only used when w is a terminal.
func NewRenderer(w io.Writer, mode domain.ColorMode) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case domain.ColorAlways:
		if r.ColorProfile() == termenv.Ascii {
			r.SetColorProfile(termenv.ANSI256)
		}
	case domain.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	default:
		if !IsTerminal(w) {
			r.SetColorProfile(termenv.Ascii)
		}
	}
	return r
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// NewStyles creates styles from a theme using renderer r.
func NewStyles(r *lipgloss.Renderer, theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	// Paths and diff lines are user text and keep their tabs.
	return &Styles{
		Path: r.NewStyle().
			Bold(true).
			Foreground(theme.Primary).
			TabWidth(lipgloss.NoTabConversion),

		Check: r.NewStyle().
			Foreground(theme.Success),

		Partial: r.NewStyle().
			Foreground(theme.Warning),

		Total: r.NewStyle().
			Bold(true),

		Muted: r.NewStyle().
			Foreground(theme.Muted).
			TabWidth(lipgloss.NoTabConversion),

		Added: r.NewStyle().
			Foreground(theme.Added).
			TabWidth(lipgloss.NoTabConversion),

		Removed: r.NewStyle().
			Foreground(theme.Removed).
			TabWidth(lipgloss.NoTabConversion),
	}
}
