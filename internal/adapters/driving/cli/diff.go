package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/custodia-labs/convert-code-refs/internal/adapters/driving/styles"
)

// diffLine is one line of a line-level diff.
type diffLine struct {
	op   diffmatchpatch.Operation
	text string
}

// lineDiff diffs a and b line by line.
func lineDiff(a, b string) []diffLine {
	dmp := diffmatchpatch.New()
	charsA, charsB, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(charsA, charsB, false), lines)

	var out []diffLine
	for _, d := range diffs {
		parts := strings.Split(d.Text, "\n")
		for i, p := range parts {
			// Skip empty last line from split
			if i == len(parts)-1 && p == "" {
				continue
			}
			out = append(out, diffLine{op: d.Type, text: p})
		}
	}
	return out
}

// writeDiff prints changed lines with up to context unchanged lines around
// them. Runs of hidden lines are collapsed into a separator.
func writeDiff(w io.Writer, st *styles.Styles, a, b string, context int) {
	lines := lineDiff(a, b)

	relevant := make([]bool, len(lines))
	for i, l := range lines {
		if l.op == diffmatchpatch.DiffEqual {
			continue
		}
		for j := max(0, i-context); j <= min(len(lines)-1, i+context); j++ {
			relevant[j] = true
		}
	}

	last := -1
	for i, l := range lines {
		if !relevant[i] {
			continue
		}
		if gap := i - last - 1; gap > 0 {
			fmt.Fprintln(w, st.Muted.Render(fmt.Sprintf("... %d lines skipped ...", gap)))
		}
		switch l.op {
		case diffmatchpatch.DiffDelete:
			fmt.Fprintln(w, st.Removed.Render("- "+l.text))
		case diffmatchpatch.DiffInsert:
			fmt.Fprintln(w, st.Added.Render("+ "+l.text))
		default:
			fmt.Fprintln(w, st.Muted.Render("  "+l.text))
		}
		last = i
	}
	if gap := len(lines) - last - 1; last >= 0 && gap > 0 {
		fmt.Fprintln(w, st.Muted.Render(fmt.Sprintf("... %d lines skipped ...", gap)))
	}
}
