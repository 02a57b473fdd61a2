package searcher

import (
	"context"
	"fmt"
	"sync"

	"github.com/Aman-CERP/movieretrieval/internal/index"
)

// BM25Searcher performs lexical search using the inverted index's BM25
// scoring. Thread-safe for concurrent use (the wrapped index holds its
// own lock).
type BM25Searcher struct {
	idx *index.Index
	mu  sync.RWMutex
}

// BM25Option configures BM25Searcher.
type BM25Option func(*BM25Searcher)

// WithBM25Index sets the backing inverted index.
func WithBM25Index(idx *index.Index) BM25Option {
	return func(s *BM25Searcher) {
		s.idx = idx
	}
}

// NewBM25Searcher creates a new BM25 searcher.
//
// Requires WithBM25Index. Returns ErrNilBM25Index if the index is nil.
func NewBM25Searcher(opts ...BM25Option) (*BM25Searcher, error) {
	s := &BM25Searcher{}
	for _, opt := range opts {
		opt(s)
	}
	if s.idx == nil {
		return nil, ErrNilBM25Index
	}
	return s, nil
}

var _ Searcher = (*BM25Searcher)(nil)

// Search executes a BM25 search and returns ranked results.
func (s *BM25Searcher) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hits, err := s.idx.BM25Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("bm25 search failed: %w", err)
	}

	results := make([]Result, len(hits))
	for i, h := range hits {
		results[i] = Result{ID: h.ID, Title: h.Title, Document: h.Document, Score: h.Score}
	}
	return results, nil
}
