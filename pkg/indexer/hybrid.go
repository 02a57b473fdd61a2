package indexer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Aman-CERP/movieretrieval/internal/catalog"
)

// ErrNoIndexers is returned when creating a HybridIndexer without any indexers.
var ErrNoIndexers = errors.New("at least one indexer is required")

// HybridIndexer composes a BM25Indexer and a VectorIndexer, fanning a
// single Build/Save/Load call out to both. Either may be nil to support
// BM25-only or vector-only modes.
//
// Build is fail-fast: BM25 runs first, then Vector; if either fails the
// call returns immediately so the two indexes never diverge silently.
//
// Safe for concurrent use.
type HybridIndexer struct {
	bm25   Indexer
	vector Indexer
	mu     sync.RWMutex
	closed bool
}

// HybridOption configures a HybridIndexer.
type HybridOption func(*HybridIndexer)

// WithBM25 sets the lexical indexer component. Pass nil for vector-only mode.
func WithBM25(idx Indexer) HybridOption {
	return func(h *HybridIndexer) { h.bm25 = idx }
}

// WithVector sets the semantic indexer component. Pass nil for BM25-only mode.
func WithVector(idx Indexer) HybridOption {
	return func(h *HybridIndexer) { h.vector = idx }
}

// NewHybridIndexer creates a hybrid indexer from components.
//
// At least one component must be provided, or ErrNoIndexers is returned.
func NewHybridIndexer(opts ...HybridOption) (*HybridIndexer, error) {
	h := &HybridIndexer{}
	for _, opt := range opts {
		opt(h)
	}
	if h.bm25 == nil && h.vector == nil {
		return nil, ErrNoIndexers
	}
	return h, nil
}

var _ Indexer = (*HybridIndexer)(nil)

// Build builds BM25 first, then Vector, fail-fast.
func (h *HybridIndexer) Build(ctx context.Context, docs []catalog.Document) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.bm25 != nil {
		if err := h.bm25.Build(ctx, docs); err != nil {
			return fmt.Errorf("hybrid bm25 build: %w", err)
		}
	}
	if h.vector != nil {
		if err := h.vector.Build(ctx, docs); err != nil {
			return fmt.Errorf("hybrid vector build: %w", err)
		}
	}
	return nil
}

// Save persists both component indexes under dir (each manages its own
// artifact filenames, so a shared directory is safe).
func (h *HybridIndexer) Save(dir string) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.bm25 != nil {
		if err := h.bm25.Save(dir); err != nil {
			return fmt.Errorf("hybrid bm25 save: %w", err)
		}
	}
	if h.vector != nil {
		if err := h.vector.Save(dir); err != nil {
			return fmt.Errorf("hybrid vector save: %w", err)
		}
	}
	return nil
}

// Load restores both component indexes from dir.
func (h *HybridIndexer) Load(dir string, docs []catalog.Document) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.bm25 != nil {
		if err := h.bm25.Load(dir, docs); err != nil {
			return fmt.Errorf("hybrid bm25 load: %w", err)
		}
	}
	if h.vector != nil {
		if err := h.vector.Load(dir, docs); err != nil {
			return fmt.Errorf("hybrid vector load: %w", err)
		}
	}
	return nil
}

// Stats returns combined statistics from both components.
func (h *HybridIndexer) Stats() IndexStats {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var stats IndexStats
	if h.bm25 != nil {
		bm25Stats := h.bm25.Stats()
		stats.DocumentCount = bm25Stats.DocumentCount
		stats.TermCount = bm25Stats.TermCount
		stats.AvgDocLength = bm25Stats.AvgDocLength
	}
	if h.vector != nil {
		vectorStats := h.vector.Stats()
		stats.ChunkCount = vectorStats.ChunkCount
		if stats.DocumentCount == 0 {
			stats.DocumentCount = vectorStats.DocumentCount
		}
	}
	return stats
}

// Close closes both components, accumulating errors from each.
func (h *HybridIndexer) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	var errs []error
	if h.bm25 != nil {
		if err := h.bm25.Close(); err != nil {
			errs = append(errs, fmt.Errorf("hybrid bm25 close: %w", err))
		}
	}
	if h.vector != nil {
		if err := h.vector.Close(); err != nil {
			errs = append(errs, fmt.Errorf("hybrid vector close: %w", err))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
