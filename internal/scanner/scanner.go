// Package scanner walks the library root and rebuilds the folder and
// document view on every call. One immediate subdirectory of the root
// is one folder; deeper nesting is not surfaced. Nothing is persisted
// across scans, so concurrent scans need no coordination.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"reportshelf/internal/cache"
	"reportshelf/internal/model"
	"reportshelf/internal/pkg/pdfextract"
)

// ErrRootMissing means the configured library root does not exist or
// is not a directory. Fatal for the whole request, unlike per-folder
// and per-document failures which are absorbed.
var ErrRootMissing = errors.New("library root directory does not exist")

// Extractor produces per-page text from raw PDF bytes.
type Extractor func(data []byte) []string

// Scanner indexes PDF documents under a fixed root directory. The root
// is an explicit constructor argument so tests can point it at a
// synthetic tree.
type Scanner struct {
	root         string
	extract      Extractor
	textCache    cache.TextCache
	workers      int
	maxFileBytes int64
}

type Option func(*Scanner)

// WithExtractor replaces the PDF text extractor.
func WithExtractor(fn Extractor) Option {
	return func(s *Scanner) { s.extract = fn }
}

// WithCache installs a text cache in front of the extractor.
func WithCache(c cache.TextCache) Option {
	return func(s *Scanner) { s.textCache = c }
}

// WithWorkers sets the number of parallel extraction workers.
func WithWorkers(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithMaxFileBytes sets the per-file size ceiling for extraction.
// Larger files keep their metadata but get no extracted text.
func WithMaxFileBytes(n int64) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.maxFileBytes = n
		}
	}
}

func New(root string, opts ...Option) *Scanner {
	s := &Scanner{
		root:         root,
		extract:      pdfextract.ExtractPages,
		textCache:    cache.NoopTextCache{},
		workers:      runtime.NumCPU(),
		maxFileBytes: 50 << 20,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the configured library root.
func (s *Scanner) Root() string {
	return s.root
}

// Scan enumerates the root's immediate subdirectories, builds the
// document set for each, applies the temporal cutoff and extracts text
// for every retained document. Folders come back sorted by name and
// documents by filename ascending (byte-wise), so two scans over an
// unmodified tree produce identical output.
func (s *Scanner) Scan(ctx context.Context, cutoff *time.Time) ([]model.Folder, error) {
	info, err := os.Stat(s.root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootMissing, s.root)
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("read library root %s: %w", s.root, err)
	}

	folders := []model.Folder{}
	var pending []*model.Document
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		docs, ok := s.scanFolder(entry.Name(), cutoff)
		if !ok {
			continue
		}
		folders = append(folders, model.Folder{
			Name:      entry.Name(),
			PDFCount:  len(docs),
			Documents: docs,
		})
	}
	sort.Slice(folders, func(i, j int) bool { return folders[i].Name < folders[j].Name })

	for fi := range folders {
		for di := range folders[fi].Documents {
			pending = append(pending, &folders[fi].Documents[di])
		}
	}
	if err := s.extractAll(ctx, pending); err != nil {
		return nil, err
	}
	return folders, nil
}

// scanFolder builds the filtered, sorted document list for one
// subdirectory. ok is false when the directory could not be read at
// all, in which case the folder is not listed.
func (s *Scanner) scanFolder(name string, cutoff *time.Time) (docs []model.Document, ok bool) {
	dir := filepath.Join(s.root, name)
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("warn: skipping unreadable folder %s: %v", name, err)
		return nil, false
	}

	docs = []model.Document{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// File vanished between listing and stat.
			log.Printf("warn: skipping %s/%s: %v", name, entry.Name(), err)
			continue
		}
		doc := model.Document{
			Filename:   entry.Name(),
			Folder:     name,
			SizeBytes:  info.Size(),
			ModifiedAt: info.ModTime().UTC(),
			Path:       filepath.Join(dir, entry.Name()),
			Pages:      []string{},
		}
		if !Include(cutoff, doc.ModifiedAt) {
			continue
		}
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Filename < docs[j].Filename })
	return docs, true
}

// LoadDocument builds a single document with extracted text from an
// already resolved path. Used for the per-document info operation.
func (s *Scanner) LoadDocument(ctx context.Context, folder, filename, path string) (model.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return model.Document{}, fmt.Errorf("stat %s: %w", filename, err)
	}
	doc := model.Document{
		Filename:   filename,
		Folder:     folder,
		SizeBytes:  info.Size(),
		ModifiedAt: info.ModTime().UTC(),
		Path:       path,
		Pages:      []string{},
	}
	s.loadText(ctx, &doc)
	return doc, nil
}

// extractAll fans extraction out over a bounded worker pool. Each
// document is owned by exactly one worker, and the folder slices are
// already in final order, so parallelism never shows up in the output.
func (s *Scanner) extractAll(ctx context.Context, docs []*model.Document) error {
	if len(docs) == 0 {
		return ctx.Err()
	}

	workers := s.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(docs) {
		workers = len(docs)
	}

	jobs := make(chan *model.Document)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case doc, open := <-jobs:
					if !open {
						return
					}
					s.loadText(ctx, doc)
				case <-ctx.Done():
					return
				}
			}
		}()
	}

feed:
	for _, doc := range docs {
		select {
		case jobs <- doc:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	return ctx.Err()
}

// loadText fills doc.Pages, consulting the cache first. Every failure
// degrades to empty text; a document that cannot be read simply has
// nothing to match against.
func (s *Scanner) loadText(ctx context.Context, doc *model.Document) {
	key := cache.Fingerprint(doc.Path, doc.SizeBytes, doc.ModifiedAt)
	if pages, hit, err := s.textCache.GetPages(ctx, key); err != nil {
		log.Printf("warn: text cache get for %s: %v", doc.Filename, err)
	} else if hit {
		doc.Pages = pages
		if doc.Pages == nil {
			doc.Pages = []string{}
		}
		return
	}

	if s.maxFileBytes > 0 && doc.SizeBytes > s.maxFileBytes {
		return
	}
	data, err := os.ReadFile(doc.Path)
	if err != nil {
		// Vanished or unreadable since the stat; metadata stays, text stays empty.
		return
	}
	pages := s.extract(data)
	if pages == nil {
		pages = []string{}
	}
	doc.Pages = pages

	if err := s.textCache.SetPages(ctx, key, pages); err != nil {
		log.Printf("warn: text cache set for %s: %v", doc.Filename, err)
	}
}
