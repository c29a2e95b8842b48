package coderefs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/convert-code-refs/internal/core/domain"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		path  string
		lines domain.LineSpec
		kind  domain.ReferenceKind
	}{
		{"path with range", "src/foo/bar.scala:10-20", "src/foo/bar.scala", "10-20", domain.KindPath},
		{"path with single line", "src/foo/bar.scala:42", "src/foo/bar.scala", "42", domain.KindPath},
		{"path without lines", "src/foo/bar.scala", "src/foo/bar.scala", "", domain.KindPath},
		{"file name only", "bar.scala", "bar.scala", "", domain.KindPath},
		{"directory", "src/foo", "src/foo", "", domain.KindPath},
		{"bare identifier", "favScoreHalfLife100Days", "favScoreHalfLife100Days", "", domain.KindIdentifier},
		{"identifier with colon", "Scorer:apply", "Scorer", "apply", domain.KindIdentifier},
		{"splits on last colon", "a/b:c.go:7", "a/b:c.go", "7", domain.KindPath},
		{"surrounding whitespace trimmed", "  src/x.go:3  ", "src/x.go", "3", domain.KindPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := ParseReference(tt.text)
			assert.Equal(t, tt.path, ref.Path)
			assert.Equal(t, tt.lines, ref.Lines)
			assert.Equal(t, tt.kind, ref.Kind)
		})
	}
}

func TestParseReference_KeepsTrimmedRaw(t *testing.T) {
	ref := ParseReference(" src/x.go:3 ")
	assert.Equal(t, "src/x.go:3", ref.Raw)
}
