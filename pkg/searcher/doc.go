// Package searcher provides a public facade over the retrieval engine's
// internal BM25 and semantic indexes, composing them into a single
// Searcher interface.
//
// The package offers three implementations:
//
//   - [BM25Searcher]: lexical search via the inverted index
//   - [VectorSearcher]: semantic search via the chunked embedding index
//   - [FusionSearcher]: hybrid search combining both, via weighted fusion
//     or Reciprocal Rank Fusion
//
// # Architecture
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                      FusionSearcher                         │
//	│  ┌─────────────────┐              ┌──────────────────┐     │
//	│  │  BM25Searcher   │──────────────│ VectorSearcher    │     │
//	│  │                 │  Fuse (RRF /  │                   │     │
//	│  │  internal/index │   weighted)   │ internal/semantic │     │
//	│  └─────────────────┘              └──────────────────┘     │
//	└─────────────────────────────────────────────────────────────┘
//
// # BM25-only mode
//
// A FusionSearcher built with only WithBM25Searcher runs lexical search
// with no semantic component.
//
// # Thread Safety
//
// Each Searcher guards its index with its own sync.RWMutex. The
// inverted index also holds a lock of its own; the semantic index does
// not.
package searcher
