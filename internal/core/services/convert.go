package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/convert-code-refs/internal/core/domain"
	"github.com/custodia-labs/convert-code-refs/internal/core/ports/driven"
	"github.com/custodia-labs/convert-code-refs/internal/core/ports/driving"
	"github.com/custodia-labs/convert-code-refs/internal/logger"
)

// Ensure ConvertService implements the interface.
var _ driving.ConvertService = (*ConvertService)(nil)

// ConvertService reads documents, links their code references and writes
// them back in place.
type ConvertService struct {
	store    driven.DocumentStore
	rewriter driven.Rewriter
}

// NewConvertService creates a new convert service.
func NewConvertService(store driven.DocumentStore, rewriter driven.Rewriter) *ConvertService {
	return &ConvertService{
		store:    store,
		rewriter: rewriter,
	}
}

// ConvertFile converts one document. The document is written back even when
// nothing changed, unless opts.DryRun is set.
func (s *ConvertService) ConvertFile(ctx context.Context, path string, opts domain.Options) (domain.FileResult, error) {
	if s.store == nil || s.rewriter == nil {
		return domain.FileResult{}, fmt.Errorf("convert service: %w", domain.ErrInvalidInput)
	}
	if path == "" {
		return domain.FileResult{}, fmt.Errorf("empty path: %w", domain.ErrInvalidInput)
	}

	logger.Section(path)

	data, err := s.store.Read(ctx, path)
	if err != nil {
		return domain.FileResult{}, err
	}

	original := string(data)
	res := s.rewriter.Rewrite(original)

	result := domain.FileResult{
		Path:     path,
		Before:   res.Blocks,
		After:    res.Linked,
		Changed:  res.Content != original,
		Original: original,
		Updated:  res.Content,
	}
	logger.Info("%s: %d blocks, %d converted, %d already linked", path, res.Blocks, res.Converted, res.Skipped)

	if unlinked := res.Blocks - res.Linked; unlinked > 0 {
		logger.Warn("%s: %d code-ref blocks without a code element", path, unlinked)
	}

	if opts.DryRun {
		logger.Debug("dry run, not writing %s", path)
		return result, nil
	}

	if err := s.store.Write(ctx, path, []byte(res.Content)); err != nil {
		return result, err
	}
	result.Written = true
	return result, nil
}

// ConvertFiles converts documents in order and stops at the first error.
func (s *ConvertService) ConvertFiles(
	ctx context.Context,
	paths []string,
	opts domain.Options,
	progress driving.Progress,
) (domain.Summary, error) {
	var summary domain.Summary
	if len(paths) == 0 {
		return summary, domain.ErrNoFiles
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if progress != nil {
			progress.FileStarted(path)
		}
		result, err := s.ConvertFile(ctx, path, opts)
		if err != nil {
			return summary, err
		}
		summary.Add(result)
		if progress != nil {
			progress.FileDone(result)
		}
	}
	return summary, nil
}
