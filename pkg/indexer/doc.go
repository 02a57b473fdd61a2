// Package indexer provides a public facade over the retrieval engine's
// internal inverted index and chunked semantic index, exposing a uniform
// build/save/load lifecycle.
//
// # Architecture
//
//	┌─────────────────┐
//	│  HybridIndexer  │  (fans out to both, fails fast on build)
//	└────────┬────────┘
//	         │
//	    ┌────┴────┐
//	    │         │
//	┌───▼───┐ ┌───▼───┐
//	│ BM25  │ │Vector │
//	└───────┘ └───────┘
//
// # Usage
//
//	bm25, _ := indexer.NewBM25Indexer(indexer.WithBM25Index(index.New(norm)))
//	vector, _ := indexer.NewVectorIndexer(indexer.WithEmbedder(embedder), indexer.WithSemanticIndex(semantic.New()))
//	hybrid, _ := indexer.NewHybridIndexer(indexer.WithBM25(bm25), indexer.WithVector(vector))
//	err := hybrid.Build(ctx, documents)
//
// # Thread Safety
//
// Each Indexer guards its state with its own sync.RWMutex. The wrapped
// inverted index also holds a lock of its own; the wrapped semantic index
// does not. Concurrent Build calls on the
// same indexer are undefined, per the engine's single-writer build model.
package indexer
