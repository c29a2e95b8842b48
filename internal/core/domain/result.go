package domain

// RewriteResult is the outcome of rewriting one document's content.
type RewriteResult struct {
	// Content is the rewritten document.
	Content string

	// Blocks is the number of code-ref blocks in the input.
	Blocks int

	// Linked is the number of code-ref blocks containing a hyperlink
	// after rewriting.
	Linked int

	// Converted is the number of blocks this pass added a hyperlink to.
	Converted int

	// Skipped is the number of blocks that already had a hyperlink.
	Skipped int
}

// FileResult reports the conversion of a single file.
type FileResult struct {
	// Path is the file as given on the command line (after glob expansion).
	Path string

	// Before is the number of code-ref blocks found.
	Before int

	// After is the number of code-ref blocks that contain a hyperlink
	// once conversion has run.
	After int

	// Changed reports whether the content differs from the input.
	Changed bool

	// Written reports whether the content was written back.
	Written bool

	// Original and Updated hold the content for diff rendering.
	Original string
	Updated  string
}

// Summary aggregates the results of a run.
type Summary struct {
	Files  []FileResult
	Before int
	After  int
}

// Add records a file result and updates the totals.
func (s *Summary) Add(r FileResult) {
	s.Files = append(s.Files, r)
	s.Before += r.Before
	s.After += r.After
}
