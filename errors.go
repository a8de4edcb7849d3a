package md2docx

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown   = errors.New("markdown content cannot be empty")
	ErrInvalidFontSize = errors.New("invalid base font size")
	ErrDocxRender      = errors.New("DOCX generation failed")

	// Remote fetch errors.
	ErrNotGitHubURL = errors.New("not a recognized GitHub file URL")
	ErrFetchStatus  = errors.New("unexpected response status")
)
