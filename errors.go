package obsidian2latex

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyContent    = errors.New("markdown content cannot be empty")
	ErrInputNotFound   = errors.New("input file not found")
	ErrInvalidSaveMode = errors.New("invalid save mode")
	ErrSaveOutput      = errors.New("failed to save output")
	ErrFiguresDir      = errors.New("failed to create figures directory")
)
