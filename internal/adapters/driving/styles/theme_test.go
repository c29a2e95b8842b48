package styles

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/convert-code-refs/internal/core/domain"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.NotEmpty(t, string(theme.Primary))
	assert.NotEmpty(t, string(theme.Muted))
	assert.NotEmpty(t, string(theme.Success))
	assert.NotEmpty(t, string(theme.Warning))
	assert.NotEmpty(t, string(theme.Added))
	assert.NotEmpty(t, string(theme.Removed))
	assert.NotEqual(t, theme.Added, theme.Removed)
}

func TestNewRenderer_Modes(t *testing.T) {
	var buf bytes.Buffer

	assert.Equal(t, termenv.Ascii, NewRenderer(&buf, domain.ColorNever).ColorProfile())
	assert.Equal(t, termenv.Ascii, NewRenderer(&buf, domain.ColorAuto).ColorProfile())
	assert.NotEqual(t, termenv.Ascii, NewRenderer(&buf, domain.ColorAlways).ColorProfile())
}

func TestIsTerminal_Buffer(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestNewStyles_PlainWhenColourDisabled(t *testing.T) {
	var buf bytes.Buffer
	s := NewStyles(NewRenderer(&buf, domain.ColorNever), nil)

	assert.Equal(t, "docs/index.html", s.Path.Render("docs/index.html"))
	assert.Equal(t, "+ added", s.Added.Render("+ added"))
}

func TestNewStyles_KeepsTabs(t *testing.T) {
	var buf bytes.Buffer
	s := NewStyles(NewRenderer(&buf, domain.ColorNever), nil)

	assert.Equal(t, "docs/a\tb.html", s.Path.Render("docs/a\tb.html"))
	assert.Equal(t, "- \t<p>a</p>", s.Removed.Render("- \t<p>a</p>"))
	assert.Equal(t, "+ \t<p>b</p>", s.Added.Render("+ \t<p>b</p>"))
	assert.Equal(t, "  \t<p>c</p>", s.Muted.Render("  \t<p>c</p>"))
}

func TestNewStyles_ColouredWhenForced(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, domain.ColorAlways)
	s := NewStyles(r, nil)

	out := s.Removed.Render("- removed")
	assert.Contains(t, out, "- removed")
	assert.NotEqual(t, "- removed", out)
}

func TestNewStyles_NilRenderer(t *testing.T) {
	s := NewStyles(nil, nil)
	require.NotNil(t, s)
	assert.IsType(t, lipgloss.Style{}, s.Total)
}
