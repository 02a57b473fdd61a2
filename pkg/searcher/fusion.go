package searcher

import (
	"context"
	"fmt"
	"sync"

	"github.com/Aman-CERP/movieretrieval/internal/fusion"
	"golang.org/x/sync/errgroup"
)

// FusionSearcher combines a BM25Searcher and a VectorSearcher via
// weighted-normalized fusion or Reciprocal Rank Fusion. The two
// sub-searches run in parallel via errgroup; results are re-sorted
// deterministically afterward so goroutine scheduling never affects
// output ordering.
//
// Supports three modes:
//   - Hybrid: both searchers configured (full fusion)
//   - BM25-only: only WithBM25Searcher
//   - Vector-only: only WithVectorSearcher
//
// Thread-safe for concurrent use.
type FusionSearcher struct {
	bm25   Searcher
	vector Searcher
	config FusionConfig
	mu     sync.RWMutex
}

// FusionOption configures FusionSearcher.
type FusionOption func(*FusionSearcher)

// WithBM25Searcher sets the lexical sub-searcher.
func WithBM25Searcher(s Searcher) FusionOption {
	return func(f *FusionSearcher) { f.bm25 = s }
}

// WithVectorSearcher sets the semantic sub-searcher.
func WithVectorSearcher(s Searcher) FusionOption {
	return func(f *FusionSearcher) { f.vector = s }
}

// WithFusionConfig sets the fusion configuration.
func WithFusionConfig(config FusionConfig) FusionOption {
	return func(f *FusionSearcher) { f.config = config }
}

// NewFusionSearcher creates a new fusion searcher.
//
// At least one sub-searcher must be provided, or ErrNoSearchers is returned.
func NewFusionSearcher(opts ...FusionOption) (*FusionSearcher, error) {
	f := &FusionSearcher{config: DefaultFusionConfig()}
	for _, opt := range opts {
		opt(f)
	}
	if f.bm25 == nil && f.vector == nil {
		return nil, ErrNoSearchers
	}
	return f, nil
}

var _ Searcher = (*FusionSearcher)(nil)

// Search runs the configured sub-searchers and fuses their results.
func (f *FusionSearcher) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.bm25 == nil {
		return f.vector.Search(ctx, query, limit)
	}
	if f.vector == nil {
		return f.bm25.Search(ctx, query, limit)
	}
	return f.hybridSearch(ctx, query, limit)
}

func (f *FusionSearcher) hybridSearch(ctx context.Context, query string, limit int) ([]Result, error) {
	multiplier := f.config.FetchMultiplier
	if multiplier <= 0 {
		multiplier = 5
	}
	fetchLimit := limit * multiplier

	var bm25Results, vectorResults []Result

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bm25Results, err = f.bm25.Search(gctx, query, fetchLimit)
		return err
	})
	g.Go(func() error {
		var err error
		vectorResults, err = f.vector.Search(gctx, query, fetchLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("hybrid search failed: %w", err)
	}

	bm25Cands := toCandidates(bm25Results)
	vectorCands := toCandidates(vectorResults)

	if f.config.Method == FusionMethodWeighted {
		hits := fusion.Weighted(bm25Cands, vectorCands, f.config.Alpha, limit)
		out := make([]Result, len(hits))
		for i, h := range hits {
			out[i] = Result{ID: h.ID, Title: h.Title, Document: h.Document, Score: h.HybridScore}
		}
		return out, nil
	}

	hits := fusion.RRF(bm25Cands, vectorCands, f.config.RRFConstant, limit)
	out := make([]Result, len(hits))
	for i, h := range hits {
		out[i] = Result{ID: h.ID, Title: h.Title, Document: h.Document, Score: h.RRFScore}
	}
	return out, nil
}

func toCandidates(results []Result) []fusion.Candidate {
	out := make([]fusion.Candidate, len(results))
	for i, r := range results {
		out[i] = fusion.Candidate{ID: r.ID, Title: r.Title, Document: r.Document, Score: r.Score}
	}
	return out
}
