package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"reportshelf/internal/model"
	"reportshelf/internal/scanner"
)

// LibraryService exposes the folder listing and per-document
// operations. Every call rebuilds its view from the filesystem; the
// directory tree is the only system of record.
type LibraryService struct {
	scanner *scanner.Scanner
}

func NewLibraryService(sc *scanner.Scanner) *LibraryService {
	return &LibraryService{scanner: sc}
}

// ListFolders returns every folder under the root with its documents,
// filtered by the optional cutoff. A nil cutoff lists everything.
func (s *LibraryService) ListFolders(ctx context.Context, cutoff *time.Time) ([]model.Folder, error) {
	return s.scanner.Scan(ctx, cutoff)
}

// DocumentBytes serves the raw content of one PDF addressed by
// folder+filename. Any attempt to address a path outside the root is
// rejected before touching the filesystem.
func (s *LibraryService) DocumentBytes(folder, filename string) ([]byte, error) {
	path, err := s.resolvePath(folder, filename)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s/%s", ErrDocumentNotFound, folder, filename)
	}
	return data, nil
}

// DocumentInfo returns the full record for one PDF, including its
// extracted text, without scanning the rest of the library.
func (s *LibraryService) DocumentInfo(ctx context.Context, folder, filename string) (model.Document, error) {
	path, err := s.resolvePath(folder, filename)
	if err != nil {
		return model.Document{}, err
	}
	doc, err := s.scanner.LoadDocument(ctx, folder, filename, path)
	if err != nil {
		return model.Document{}, fmt.Errorf("%w: %s/%s", ErrDocumentNotFound, folder, filename)
	}
	return doc, nil
}

// resolvePath joins folder and filename under the root after
// validating both as single path components. Rejecting "..", absolute
// paths and separator characters up front means filepath.Join can
// never be steered outside the root; the suffix check on the cleaned
// result is the backstop.
func (s *LibraryService) resolvePath(folder, filename string) (string, error) {
	if !safeComponent(folder) || !safeComponent(filename) {
		return "", fmt.Errorf("%w: %q/%q", ErrPathOutsideRoot, folder, filename)
	}
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return "", fmt.Errorf("%w: %s/%s", ErrDocumentNotFound, folder, filename)
	}

	root, err := filepath.Abs(s.scanner.Root())
	if err != nil {
		return "", fmt.Errorf("resolve library root: %w", err)
	}
	path := filepath.Join(root, folder, filename)
	if !strings.HasPrefix(path, root+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q/%q", ErrPathOutsideRoot, folder, filename)
	}
	return path, nil
}

// safeComponent accepts only a plain name: no traversal segments, no
// separators, not empty.
func safeComponent(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	return filepath.Clean(name) == name
}
