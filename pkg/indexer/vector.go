package indexer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Aman-CERP/movieretrieval/internal/catalog"
	"github.com/Aman-CERP/movieretrieval/internal/embed"
	"github.com/Aman-CERP/movieretrieval/internal/semantic"
)

// ErrNilEmbedder is returned when creating a VectorIndexer without an embedder.
var ErrNilEmbedder = errors.New("embedder is required")

// ErrNilSemanticIndex is returned when creating a VectorIndexer without a semantic index.
var ErrNilSemanticIndex = errors.New("semantic index is required")

// VectorIndexer provides semantic indexing over the movie catalog: each
// document's description is chunked and embedded via the configured
// embedder, with the resulting matrix stored in a [semantic.Index].
//
// Safe for concurrent use.
type VectorIndexer struct {
	embedder             embed.Embedder
	idx                  *semantic.Index
	maxChunkSize, overlap int
	mu                   sync.RWMutex
	closed               bool
}

// VectorOption configures a VectorIndexer.
type VectorOption func(*VectorIndexer)

// WithEmbedder sets the embedder used to embed chunks.
func WithEmbedder(e embed.Embedder) VectorOption {
	return func(v *VectorIndexer) {
		v.embedder = e
	}
}

// WithSemanticIndex sets the backing semantic index.
func WithSemanticIndex(idx *semantic.Index) VectorOption {
	return func(v *VectorIndexer) {
		v.idx = idx
	}
}

// WithChunkParams sets the sentence-window chunking parameters.
// Defaults to chunk.DefaultMaxChunkSize / chunk.DefaultOverlap if unset.
func WithChunkParams(maxChunkSize, overlap int) VectorOption {
	return func(v *VectorIndexer) {
		v.maxChunkSize = maxChunkSize
		v.overlap = overlap
	}
}

// NewVectorIndexer creates a new vector indexer with the given options.
//
// Requires both WithEmbedder and WithSemanticIndex.
func NewVectorIndexer(opts ...VectorOption) (*VectorIndexer, error) {
	v := &VectorIndexer{maxChunkSize: 4, overlap: 1}
	for _, opt := range opts {
		opt(v)
	}
	if v.embedder == nil {
		return nil, ErrNilEmbedder
	}
	if v.idx == nil {
		return nil, ErrNilSemanticIndex
	}
	return v, nil
}

var _ Indexer = (*VectorIndexer)(nil)

// Build chunks and embeds the entire document corpus.
func (v *VectorIndexer) Build(ctx context.Context, docs []catalog.Document) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.idx.Build(ctx, docs, v.embedder, v.maxChunkSize, v.overlap); err != nil {
		return fmt.Errorf("vector build: %w", err)
	}
	return nil
}

// Save persists the chunk embedding matrix and metadata to dir.
func (v *VectorIndexer) Save(dir string) error {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if err := v.idx.Save(dir); err != nil {
		return fmt.Errorf("vector save: %w", err)
	}
	return nil
}

// Load restores the chunk embedding matrix and metadata from dir.
func (v *VectorIndexer) Load(dir string, docs []catalog.Document) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.idx.Load(dir, docs); err != nil {
		return fmt.Errorf("vector load: %w", err)
	}
	return nil
}

// Stats returns current index statistics; only ChunkCount is meaningful
// for a vector index.
func (v *VectorIndexer) Stats() IndexStats {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return IndexStats{ChunkCount: v.idx.ChunkCount()}
}

// Close releases the embedder's resources (e.g. pooled HTTP connections).
// Idempotent.
func (v *VectorIndexer) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return nil
	}
	v.closed = true

	if err := v.embedder.Close(); err != nil {
		return fmt.Errorf("vector close: %w", err)
	}
	return nil
}
