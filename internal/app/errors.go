package app

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrDocumentNotFound = errors.New("document not found")
	// ErrPathOutsideRoot means a folder or filename component tried to
	// escape the library root. Handlers present it as not-found, never
	// as a resolved path.
	ErrPathOutsideRoot = errors.New("path escapes library root")
)
