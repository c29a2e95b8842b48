package domain

// ColorMode controls styling of the conversion report.
type ColorMode string

// Available colour modes.
const (
	// ColorAuto styles output only when stdout is a terminal.
	ColorAuto ColorMode = "auto"

	// ColorAlways styles output unconditionally.
	ColorAlways ColorMode = "always"

	// ColorNever disables styling.
	ColorNever ColorMode = "never"
)

// IsValid returns true if the colour mode is recognised.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m ColorMode) String() string {
	return string(m)
}

// DefaultDiffContext is the number of unchanged lines shown around a change.
const DefaultDiffContext = 3

// Options control a conversion run.
type Options struct {
	// DryRun computes results without writing files back.
	DryRun bool

	// ShowDiff prints a line diff for every changed file.
	ShowDiff bool

	// DiffContext is the number of context lines around diff hunks.
	DiffContext int

	// Color controls report styling.
	Color ColorMode

	// Verbose enables debug logging.
	Verbose bool

	// Quiet suppresses warnings.
	Quiet bool
}

// DefaultOptions returns the options used when neither flags nor a config
// file override them.
func DefaultOptions() Options {
	return Options{
		DiffContext: DefaultDiffContext,
		Color:       ColorAuto,
	}
}
