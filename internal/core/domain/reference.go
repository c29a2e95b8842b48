package domain

import (
	"fmt"
	"strings"
)

// ReferenceKind distinguishes file paths from bare identifiers.
type ReferenceKind string

const (
	// KindPath is a repository file path, optionally with a line locator.
	KindPath ReferenceKind = "path"

	// KindIdentifier is a bare symbol name (no slash, no dot).
	KindIdentifier ReferenceKind = "identifier"
)

// String returns the string representation.
func (k ReferenceKind) String() string {
	return string(k)
}

// LineSpec is the line locator that follows the last colon of a reference,
// either a single line ("42") or a range ("10-20"). The text is kept as
// written; it is not validated as numeric.
type LineSpec string

// IsEmpty reports whether no line locator was given.
func (l LineSpec) IsEmpty() bool {
	return l == ""
}

// IsRange reports whether the locator has the start-end form.
func (l LineSpec) IsRange() bool {
	return strings.Contains(string(l), "-")
}

// Bounds returns the start and end of the locator.
// For a single line both values are the same.
func (l LineSpec) Bounds() (start, end string) {
	if s, e, ok := strings.Cut(string(l), "-"); ok {
		return s, e
	}
	return string(l), string(l)
}

// Fragment returns the URL fragment for the locator:
// "#L10-L20" for a range, "#L42" for a single line and "" when empty.
func (l LineSpec) Fragment() string {
	if l.IsEmpty() {
		return ""
	}
	start, end := l.Bounds()
	if l.IsRange() {
		return fmt.Sprintf("#L%s-L%s", start, end)
	}
	return "#L" + start
}

// String returns the string representation.
func (l LineSpec) String() string {
	return string(l)
}

// Reference is a code citation found inside a code-ref block.
type Reference struct {
	// Raw is the trimmed text of the <code> element.
	Raw string

	// Path is the text before the last colon, or all of Raw without a colon.
	Path string

	// Lines is the text after the last colon. Empty when absent.
	Lines LineSpec

	// Kind classifies Path as a file path or a bare identifier.
	Kind ReferenceKind
}

// IsIdentifier reports whether the reference is a bare identifier.
func (r Reference) IsIdentifier() bool {
	return r.Kind == KindIdentifier
}

// Link is a hyperlink built for a Reference.
type Link struct {
	// URL is the link target.
	URL string

	// Display is the visible text placed inside the <code> element.
	Display string
}
