package driving

import (
	"context"

	"github.com/custodia-labs/convert-code-refs/internal/core/domain"
)

// ConvertService links code references in HTML documents.
type ConvertService interface {
	// ConvertFile converts a single document in place.
	ConvertFile(ctx context.Context, path string, opts domain.Options) (domain.FileResult, error)

	// ConvertFiles converts documents one after another and stops at the
	// first error. The summary holds every file processed before it.
	// progress may be nil.
	ConvertFiles(ctx context.Context, paths []string, opts domain.Options, progress Progress) (domain.Summary, error)
}

// Progress receives per-file notifications from ConvertFiles.
type Progress interface {
	// FileStarted is called before a document is read.
	FileStarted(path string)

	// FileDone is called after a document has been converted.
	FileDone(result domain.FileResult)
}
