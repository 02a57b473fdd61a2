package indexer

import (
	"context"

	"github.com/Aman-CERP/movieretrieval/internal/catalog"
)

// Indexer defines the contract for building and persisting an index over
// the full movie catalog.
//
// Implementations must be thread-safe for concurrent use. The engine's
// build model assumes exclusive access during a build pass; concurrent
// Build calls on the same Indexer are undefined, matching the core's
// resource model.
type Indexer interface {
	// Build indexes the entire document corpus, replacing any prior
	// in-memory state. Returns EmptyCorpus if docs is empty.
	Build(ctx context.Context, docs []catalog.Document) error

	// Save persists the index to dir.
	Save(dir string) error

	// Load restores the index from dir. docs must be the same corpus the
	// index was built from, to resolve ids back to documents.
	Load(dir string, docs []catalog.Document) error

	// Stats returns current index statistics.
	Stats() IndexStats

	// Close releases resources held by the indexer.
	Close() error
}

// IndexStats holds statistics about an index.
type IndexStats struct {
	// DocumentCount is the number of indexed documents.
	DocumentCount int

	// TermCount is the number of unique terms (BM25-only; 0 for vector).
	TermCount int

	// AvgDocLength is the average document length in terms (BM25-only; 0 for vector).
	AvgDocLength float64

	// ChunkCount is the number of semantic chunks (vector-only; 0 for BM25).
	ChunkCount int
}
