package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/convert-code-refs/internal/adapters/driving/styles"
	"github.com/custodia-labs/convert-code-refs/internal/core/domain"
)

func plainStyles(buf *bytes.Buffer) *styles.Styles {
	return styles.NewStyles(styles.NewRenderer(buf, domain.ColorNever), nil)
}

func TestLineDiff(t *testing.T) {
	lines := lineDiff("a\nb\nc\n", "a\nB\nc\n")

	require.Len(t, lines, 4)
	assert.Equal(t, diffLine{diffmatchpatch.DiffEqual, "a"}, lines[0])
	assert.Equal(t, diffLine{diffmatchpatch.DiffDelete, "b"}, lines[1])
	assert.Equal(t, diffLine{diffmatchpatch.DiffInsert, "B"}, lines[2])
	assert.Equal(t, diffLine{diffmatchpatch.DiffEqual, "c"}, lines[3])
}

func TestWriteDiff_Context(t *testing.T) {
	before := "1\n2\n3\n4\n5\n6\n7\n"
	after := "1\n2\n3\nfour\n5\n6\n7\n"

	var buf bytes.Buffer
	writeDiff(&buf, plainStyles(&buf), before, after, 1)

	want := strings.Join([]string{
		"... 2 lines skipped ...",
		"  3",
		"- 4",
		"+ four",
		"  5",
		"... 2 lines skipped ...",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWriteDiff_NoChanges(t *testing.T) {
	var buf bytes.Buffer
	writeDiff(&buf, plainStyles(&buf), "same\n", "same\n", 3)

	assert.Empty(t, buf.String())
}

func TestWriteDiff_KeepsTabs(t *testing.T) {
	before := "<div>\n\t<p>a</p>\n</div>\n"
	after := "<div>\n\t<p>b</p>\n</div>\n"

	var buf bytes.Buffer
	writeDiff(&buf, plainStyles(&buf), before, after, 1)

	want := strings.Join([]string{
		"  <div>",
		"- \t<p>a</p>",
		"+ \t<p>b</p>",
		"  </div>",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}
