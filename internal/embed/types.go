// Package embed defines the Embedding Provider capability interface
// consumed by the Semantic Index, plus a deterministic in-memory fake and
// an HTTP-backed implementation.
package embed

import "context"

// DefaultBatchSize is the default batch size for embedding requests.
const DefaultBatchSize = 32

// Embedder generates fixed-dimensionality dense vector embeddings for
// text. Implementations must not alter input order and must return
// vectors of a single, fixed Dimensions() for the lifetime of the value.
type Embedder interface {
	// Embed generates the embedding for a single text. Fails with
	// EmptyQuery when text is empty.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts, preserving order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the embedding dimension.
	Dimensions() int

	// ModelName returns the model identifier.
	ModelName() string

	// Available reports whether the embedder is ready to serve requests.
	Available(ctx context.Context) bool

	// Close releases any resources (connections, file handles).
	Close() error
}
