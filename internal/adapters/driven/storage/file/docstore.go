package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/custodia-labs/convert-code-refs/internal/core/domain"
	"github.com/custodia-labs/convert-code-refs/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// defaultPerm is used when the original file mode cannot be determined.
const defaultPerm fs.FileMode = 0644

// DocumentStore reads and writes documents on the local filesystem.
type DocumentStore struct{}

// NewDocumentStore creates a new disk-backed document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

// Read returns the full content of the file at path.
func (s *DocumentStore) Read(_ context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// Write replaces the content of the file at path, keeping its permissions.
func (s *DocumentStore) Write(_ context.Context, path string, data []byte) error {
	perm := defaultPerm
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
