package embed

import (
	"context"
	"hash/fnv"
	"math"

	engineerrors "github.com/Aman-CERP/movieretrieval/internal/engineerrors"
)

// StaticEmbedder is a deterministic, hash-based fake implementation of
// Embedder. It requires no network access and no model weights, so tests
// and CI runs get reproducible vectors without a live embedding service.
type StaticEmbedder struct {
	dim int
}

var _ Embedder = (*StaticEmbedder)(nil)

// NewStaticEmbedder creates a StaticEmbedder producing unit-length vectors
// of the given dimension.
func NewStaticEmbedder(dim int) *StaticEmbedder {
	if dim <= 0 {
		dim = 384
	}
	return &StaticEmbedder{dim: dim}
}

// Embed deterministically hashes text into a dim-dimensional unit vector.
func (s *StaticEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, engineerrors.EmptyQuery()
	}
	return hashEmbed(text, s.dim), nil
}

// EmbedBatch embeds each text independently, preserving order.
func (s *StaticEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := s.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Dimensions returns the configured embedding dimension.
func (s *StaticEmbedder) Dimensions() int { return s.dim }

// ModelName identifies this fake for logging/diagnostics.
func (s *StaticEmbedder) ModelName() string { return "static-hash-fake" }

// Available always reports true; the fake has no external dependency.
func (s *StaticEmbedder) Available(ctx context.Context) bool { return true }

// Close is a no-op.
func (s *StaticEmbedder) Close() error { return nil }

// hashEmbed derives a unit-length, dim-dimensional vector from text by
// seeding a simple per-dimension hash and normalizing the result. Two
// distinct calls with the same text always produce the same vector.
func hashEmbed(text string, dim int) []float32 {
	v := make([]float32, dim)
	for i := 0; i < dim; i++ {
		h := fnv.New32a()
		h.Write([]byte(text))
		h.Write([]byte{byte(i), byte(i >> 8)})
		v[i] = float32(h.Sum32()%2000)/1000.0 - 1.0
	}
	return normalizeVector(v)
}

// normalizeVector scales v to unit length; a zero vector is returned as-is.
func normalizeVector(v []float32) []float32 {
	var sumSquares float64
	for _, val := range v {
		sumSquares += float64(val) * float64(val)
	}
	magnitude := math.Sqrt(sumSquares)
	if magnitude == 0 {
		return v
	}
	out := make([]float32, len(v))
	for i, val := range v {
		out[i] = float32(float64(val) / magnitude)
	}
	return out
}
