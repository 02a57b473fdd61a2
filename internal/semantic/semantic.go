// Package semantic implements the chunked semantic index: a document's
// description is split into overlapping sentence-window chunks, each
// chunk is embedded, and queries are answered by brute-force cosine
// search over the chunk matrix with max-pool aggregation back to
// documents.
//
// Brute-force, not approximate nearest-neighbor: the engine's invariants
// (cos(v,v) = 1 exactly, deterministic tie-broken ordering) require an
// exact scan, and the target corpus (a small movie catalog) never
// approaches the scale where an approximate index earns its keep.
package semantic

import (
	"context"
	"math"
	"sort"

	"github.com/Aman-CERP/movieretrieval/internal/catalog"
	"github.com/Aman-CERP/movieretrieval/internal/chunk"
	"github.com/Aman-CERP/movieretrieval/internal/embed"
	engineerrors "github.com/Aman-CERP/movieretrieval/internal/engineerrors"
)

// DocumentPreviewLimit truncates a document's body in result records.
const DocumentPreviewLimit = 100

// ChunkMeta is the parallel metadata record for row i of the embedding
// matrix: which document the chunk came from, its index within that
// document, and the total chunk count for that document.
type ChunkMeta struct {
	DocID       int `json:"doc_id"`
	ChunkIdx    int `json:"chunk_idx"`
	TotalChunks int `json:"total_chunks"`
}

// Hit is the result record returned by Search: a document's id, title, a
// truncated preview, and its max-pooled cosine score.
type Hit struct {
	ID       int
	Title    string
	Document string
	Score    float64
}

// Index owns the embedding matrix, the parallel chunk metadata, and a
// reference to the document set it was built from.
type Index struct {
	dim      int
	matrix   [][]float32 // row i: embedding of chunk i
	metadata []ChunkMeta
	docs     map[int]catalog.Document
}

// New creates an empty Index.
func New() *Index {
	return &Index{docs: make(map[int]catalog.Document)}
}

// Build chunks every document with a non-empty description via the
// sentence-window chunker, embeds all chunks as one batch through
// embedder, and stores the resulting matrix and metadata.
func (idx *Index) Build(ctx context.Context, docs []catalog.Document, embedder embed.Embedder, maxChunkSize, overlap int) error {
	if len(docs) == 0 {
		return engineerrors.EmptyCorpus()
	}

	idx.docs = catalog.ByID(docs)

	var texts []string
	var meta []ChunkMeta
	for _, d := range docs {
		if d.Description == "" {
			continue
		}
		chunks := chunk.Chunk(d.Description, maxChunkSize, overlap)
		for i, c := range chunks {
			texts = append(texts, c)
			meta = append(meta, ChunkMeta{DocID: d.ID, ChunkIdx: i, TotalChunks: len(chunks)})
		}
	}

	if len(texts) == 0 {
		idx.matrix = nil
		idx.metadata = nil
		return nil
	}

	vectors, err := embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return engineerrors.ProviderError("embedder", err)
	}

	idx.matrix = vectors
	idx.metadata = meta
	idx.dim = embedder.Dimensions()
	return nil
}

// Search embeds query through embedder, computes cosine similarity
// against every chunk row, collapses chunks to documents by max pool,
// and returns the top limit documents sorted by descending score with a
// stable ascending-doc_id tie-break.
func (idx *Index) Search(ctx context.Context, query string, embedder embed.Embedder, limit int) ([]Hit, error) {
	if query == "" {
		return nil, engineerrors.EmptyQuery()
	}

	qVec, err := embedder.Embed(ctx, query)
	if err != nil {
		return nil, engineerrors.ProviderError("embedder", err)
	}

	best := make(map[int]float64)
	seen := make(map[int]bool)
	for i, row := range idx.matrix {
		sim := cosineSimilarity(qVec, row)
		docID := idx.metadata[i].DocID
		if !seen[docID] || sim > best[docID] {
			best[docID] = sim
			seen[docID] = true
		}
	}

	ids := make([]int, 0, len(best))
	for id := range best {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if best[ids[i]] != best[ids[j]] {
			return best[ids[i]] > best[ids[j]]
		}
		return ids[i] < ids[j]
	})

	if limit > 0 && limit < len(ids) {
		ids = ids[:limit]
	}

	hits := make([]Hit, 0, len(ids))
	for _, id := range ids {
		d := idx.docs[id]
		hits = append(hits, Hit{
			ID:       id,
			Title:    d.Title,
			Document: truncate(d.Description, DocumentPreviewLimit),
			Score:    best[id],
		})
	}
	return hits, nil
}

// ChunkCount returns the number of embedded chunks in the index.
func (idx *Index) ChunkCount() int {
	return len(idx.metadata)
}

// cosineSimilarity computes (a·b)/(‖a‖·‖b‖); either zero-norm vector
// yields a similarity of 0, never NaN.
func cosineSimilarity(a, b []float32) float64 {
	var dot, normA, normB float64
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
