package coderefs

import (
	"strings"

	"github.com/custodia-labs/convert-code-refs/internal/core/domain"
)

// ParseReference splits the text of a <code> element into a path and an
// optional line locator. The split happens on the last colon. Text with no
// slash and no dot in its path is classified as a bare identifier.
func ParseReference(text string) domain.Reference {
	raw := strings.TrimSpace(text)
	ref := domain.Reference{Raw: raw, Path: raw}

	if i := strings.LastIndex(raw, ":"); i >= 0 {
		ref.Path = raw[:i]
		ref.Lines = domain.LineSpec(raw[i+1:])
	}

	if isIdentifier(ref.Path) {
		ref.Kind = domain.KindIdentifier
	} else {
		ref.Kind = domain.KindPath
	}
	return ref
}

func isIdentifier(p string) bool {
	return !strings.ContainsAny(p, "/.")
}
