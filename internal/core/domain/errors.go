package domain

import "errors"

// Domain errors represent conversion failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates an input document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoFiles indicates the command was invoked without any file arguments.
	ErrNoFiles = errors.New("no input files")

	// ErrNoMatches indicates a glob pattern matched no files.
	ErrNoMatches = errors.New("pattern matched no files")

	// ErrInvalidColorMode indicates an unknown --color value.
	ErrInvalidColorMode = errors.New("invalid color mode")
)
