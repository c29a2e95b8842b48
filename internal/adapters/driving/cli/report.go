package cli

import (
	"fmt"
	"io"

	"github.com/custodia-labs/convert-code-refs/internal/adapters/driving/styles"
	"github.com/custodia-labs/convert-code-refs/internal/core/domain"
	"github.com/custodia-labs/convert-code-refs/internal/core/ports/driving"
)

// Ensure reporter implements the interface.
var _ driving.Progress = (*reporter)(nil)

// reporter prints per-file progress and the final totals.
type reporter struct {
	out    io.Writer
	styles *styles.Styles
	opts   domain.Options
}

func newReporter(out io.Writer, opts domain.Options) *reporter {
	return &reporter{
		out:    out,
		styles: styles.NewStyles(styles.NewRenderer(out, opts.Color), nil),
		opts:   opts,
	}
}

// FileStarted prints the file being processed.
func (r *reporter) FileStarted(path string) {
	fmt.Fprintf(r.out, "Processing %s...\n", r.styles.Path.Render(path))
}

// FileDone prints the per-file count and, when requested, the diff.
func (r *reporter) FileDone(result domain.FileResult) {
	counts := fmt.Sprintf("%d/%d", result.After, result.Before)
	if result.After < result.Before {
		counts = r.styles.Partial.Render(counts)
	}

	line := fmt.Sprintf("  %s Converted %s code references", r.styles.Check.Render("✓"), counts)
	if r.opts.DryRun {
		line += r.styles.Muted.Render(" (dry run)")
	}
	fmt.Fprintln(r.out, line)

	if r.opts.ShowDiff && result.Changed {
		writeDiff(r.out, r.styles, result.Original, result.Updated, r.opts.DiffContext)
	}
}

// Total prints the summary line.
func (r *reporter) Total(summary domain.Summary) {
	total := fmt.Sprintf("Total: %d/%d code references converted", summary.After, summary.Before)
	fmt.Fprintf(r.out, "\n%s\n", r.styles.Total.Render(total))
}
