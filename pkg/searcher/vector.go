package searcher

import (
	"context"
	"fmt"
	"sync"

	"github.com/Aman-CERP/movieretrieval/internal/embed"
	"github.com/Aman-CERP/movieretrieval/internal/semantic"
)

// VectorSearcher performs semantic search via the chunked embedding
// index, embedding the query with the configured embedder and max-pooling
// chunk-level cosine similarity to a per-document score.
type VectorSearcher struct {
	embedder embed.Embedder
	idx      *semantic.Index
	mu       sync.RWMutex
}

// VectorOption configures VectorSearcher.
type VectorOption func(*VectorSearcher)

// WithSearchEmbedder sets the embedder used to embed queries.
func WithSearchEmbedder(e embed.Embedder) VectorOption {
	return func(s *VectorSearcher) {
		s.embedder = e
	}
}

// WithSemanticIndex sets the backing semantic index.
func WithSemanticIndex(idx *semantic.Index) VectorOption {
	return func(s *VectorSearcher) {
		s.idx = idx
	}
}

// NewVectorSearcher creates a new vector searcher.
//
// Requires both WithSearchEmbedder and WithSemanticIndex.
func NewVectorSearcher(opts ...VectorOption) (*VectorSearcher, error) {
	s := &VectorSearcher{}
	for _, opt := range opts {
		opt(s)
	}
	if s.embedder == nil {
		return nil, ErrNilEmbedder
	}
	if s.idx == nil {
		return nil, ErrNilSemanticIndex
	}
	return s, nil
}

var _ Searcher = (*VectorSearcher)(nil)

// Search executes a semantic search and returns ranked results.
func (s *VectorSearcher) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hits, err := s.idx.Search(ctx, query, s.embedder, limit)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}

	results := make([]Result, len(hits))
	for i, h := range hits {
		results[i] = Result{ID: h.ID, Title: h.Title, Document: h.Document, Score: h.Score}
	}
	return results, nil
}
