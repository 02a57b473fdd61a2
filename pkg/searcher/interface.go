package searcher

import (
	"context"
	"errors"
)

// ErrNilBM25Index is returned when creating a BM25Searcher without an index.
var ErrNilBM25Index = errors.New("bm25 index is required")

// ErrNilEmbedder is returned when creating a VectorSearcher without an embedder.
var ErrNilEmbedder = errors.New("embedder is required")

// ErrNilSemanticIndex is returned when creating a VectorSearcher without a semantic index.
var ErrNilSemanticIndex = errors.New("semantic index is required")

// ErrNoSearchers is returned when creating a FusionSearcher without any searchers.
var ErrNoSearchers = errors.New("at least one searcher is required")

// Searcher performs search operations and returns ranked results.
//
// Implementations must be thread-safe for concurrent use.
type Searcher interface {
	// Search executes a search query and returns ranked results.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - query: the search query string
	//   - limit: maximum number of results to return
	//
	// Returns an empty slice (not nil) if no results match.
	// Returns an error if the search fails.
	Search(ctx context.Context, query string, limit int) ([]Result, error)
}

// Result represents a single search result.
type Result struct {
	// ID is the catalog document id.
	ID int

	// Title and Document carry the matched document for display.
	Title    string
	Document string

	// Score is the fused or raw relevance score. Higher is better.
	Score float64
}

// FusionMethod selects how FusionSearcher combines its sub-searchers.
type FusionMethod string

const (
	// FusionMethodRRF combines lists via Reciprocal Rank Fusion.
	FusionMethodRRF FusionMethod = "rrf"
	// FusionMethodWeighted combines lists via min-max normalized weighted fusion.
	FusionMethodWeighted FusionMethod = "weighted"
)

// FusionConfig configures FusionSearcher.
type FusionConfig struct {
	// Method selects RRF or weighted fusion.
	Method FusionMethod

	// Alpha is the BM25 weight for weighted fusion (1-Alpha goes to semantic).
	// Default: 0.5
	Alpha float64

	// RRFConstant is the smoothing constant k for RRF.
	// Default: 60
	RRFConstant int

	// FetchMultiplier controls how many extra candidates each sub-searcher
	// fetches before fusion (limit * FetchMultiplier). Default: 5.
	FetchMultiplier int
}

// DefaultFusionConfig returns the retrieval engine's fusion defaults.
func DefaultFusionConfig() FusionConfig {
	return FusionConfig{
		Method:          FusionMethodRRF,
		Alpha:           0.5,
		RRFConstant:     60,
		FetchMultiplier: 5,
	}
}
