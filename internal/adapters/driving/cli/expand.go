package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/custodia-labs/convert-code-refs/internal/core/domain"
)

// expandArgs expands glob patterns among args into the files they match.
// Plain paths, and existing files whose names contain glob characters, are
// passed through untouched, so a missing file still fails when it is read.
// Files matched by several patterns are listed once.
func expandArgs(args []string) ([]string, error) {
	paths := make([]string, 0, len(args))
	seen := make(map[string]bool)

	for _, arg := range args {
		if !containsGlob(arg) || exists(arg) {
			paths = append(paths, arg)
			continue
		}

		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob error: %w", err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%s: %w", arg, domain.ErrNoMatches)
		}

		sort.Strings(matches)
		for _, m := range matches {
			if seen[m] {
				continue
			}
			seen[m] = true
			paths = append(paths, m)
		}
	}

	return paths, nil
}

// containsGlob checks if a pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// exists reports whether path names an existing file or directory.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
