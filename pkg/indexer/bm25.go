package indexer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Aman-CERP/movieretrieval/internal/catalog"
	"github.com/Aman-CERP/movieretrieval/internal/index"
)

// ErrNilBM25Index is returned when creating a BM25Indexer without an index.
var ErrNilBM25Index = errors.New("bm25 index is required")

// BM25Indexer provides BM25-based lexical indexing over the movie catalog.
//
// It wraps an [index.Index] and adapts it to the Indexer lifecycle.
// Safe for concurrent use.
type BM25Indexer struct {
	idx    *index.Index
	mu     sync.RWMutex
	closed bool
}

// BM25Option configures a BM25Indexer.
type BM25Option func(*BM25Indexer)

// WithBM25Index sets the backing inverted index.
//
// This is a required option; NewBM25Indexer returns ErrNilBM25Index
// without it.
func WithBM25Index(idx *index.Index) BM25Option {
	return func(i *BM25Indexer) {
		i.idx = idx
	}
}

// NewBM25Indexer creates a new BM25 indexer with the given options.
func NewBM25Indexer(opts ...BM25Option) (*BM25Indexer, error) {
	i := &BM25Indexer{}
	for _, opt := range opts {
		opt(i)
	}
	if i.idx == nil {
		return nil, ErrNilBM25Index
	}
	return i, nil
}

var _ Indexer = (*BM25Indexer)(nil)

// Build indexes the entire document corpus.
func (i *BM25Indexer) Build(ctx context.Context, docs []catalog.Document) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if err := i.idx.Build(docs); err != nil {
		return fmt.Errorf("bm25 build: %w", err)
	}
	return nil
}

// Save persists the index's four artifacts to dir.
func (i *BM25Indexer) Save(dir string) error {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if err := i.idx.Save(dir); err != nil {
		return fmt.Errorf("bm25 save: %w", err)
	}
	return nil
}

// Load restores the index's four artifacts from dir.
func (i *BM25Indexer) Load(dir string, docs []catalog.Document) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if err := i.idx.Load(dir); err != nil {
		return fmt.Errorf("bm25 load: %w", err)
	}
	return nil
}

// Stats returns current index statistics.
func (i *BM25Indexer) Stats() IndexStats {
	i.mu.RLock()
	defer i.mu.RUnlock()

	return IndexStats{
		DocumentCount: i.idx.TotalDocs(),
		TermCount:     i.idx.TermCount(),
		AvgDocLength:  i.idx.AvgLen(),
	}
}

// Close marks the indexer closed. The underlying index holds no external
// resources, so this is otherwise a no-op; it is idempotent.
func (i *BM25Indexer) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.closed = true
	return nil
}
