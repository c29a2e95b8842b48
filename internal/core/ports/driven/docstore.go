package driven

import "context"

// DocumentStore reads and writes the HTML documents being converted.
// Paths are passed through exactly as given on the command line.
type DocumentStore interface {
	// Read returns the full content of the document at path.
	// Returns domain.ErrNotFound if the document does not exist.
	Read(ctx context.Context, path string) ([]byte, error)

	// Write replaces the content of the document at path.
	Write(ctx context.Context, path string, data []byte) error
}
