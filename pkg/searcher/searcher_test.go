package searcher

import (
	"context"
	"testing"

	"github.com/Aman-CERP/movieretrieval/internal/catalog"
	"github.com/Aman-CERP/movieretrieval/internal/embed"
	"github.com/Aman-CERP/movieretrieval/internal/index"
	"github.com/Aman-CERP/movieretrieval/internal/semantic"
	"github.com/Aman-CERP/movieretrieval/internal/textnorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureDocs() []catalog.Document {
	return []catalog.Document{
		{ID: 1, Title: "Brave", Description: "Merida is a headstrong Scottish princess who defies an old custom."},
		{ID: 2, Title: "Paddington", Description: "A bear travels to London and finds a kind family there."},
		{ID: 3, Title: "The Incredibles", Description: "A family of superheroes comes out of retirement to save the world."},
	}
}

func buildBM25(t *testing.T) *index.Index {
	t.Helper()
	idx := index.New(textnorm.New(nil))
	require.NoError(t, idx.Build(fixtureDocs()))
	return idx
}

func buildSemantic(t *testing.T, embedder embed.Embedder) *semantic.Index {
	t.Helper()
	idx := semantic.New()
	require.NoError(t, idx.Build(context.Background(), fixtureDocs(), embedder, 4, 1))
	return idx
}

func TestBM25SearcherRequiresIndex(t *testing.T) {
	_, err := NewBM25Searcher()
	assert.ErrorIs(t, err, ErrNilBM25Index)
}

func TestBM25SearcherSearch(t *testing.T) {
	s, err := NewBM25Searcher(WithBM25Index(buildBM25(t)))
	require.NoError(t, err)

	results, err := s.Search(context.Background(), "princess scottish", 5)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "Brave", results[0].Title)
}

func TestVectorSearcherRequiresDependencies(t *testing.T) {
	_, err := NewVectorSearcher()
	assert.ErrorIs(t, err, ErrNilEmbedder)

	_, err = NewVectorSearcher(WithSearchEmbedder(embed.NewStaticEmbedder(8)))
	assert.ErrorIs(t, err, ErrNilSemanticIndex)
}

func TestVectorSearcherSearch(t *testing.T) {
	embedder := embed.NewStaticEmbedder(16)
	s, err := NewVectorSearcher(
		WithSearchEmbedder(embedder),
		WithSemanticIndex(buildSemantic(t, embedder)),
	)
	require.NoError(t, err)

	results, err := s.Search(context.Background(), "a bear travels to london", 5)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "Paddington", results[0].Title)
}

func TestFusionSearcherRequiresAtLeastOneSubSearcher(t *testing.T) {
	_, err := NewFusionSearcher()
	assert.ErrorIs(t, err, ErrNoSearchers)
}

func TestFusionSearcherBM25OnlyMode(t *testing.T) {
	bm25, err := NewBM25Searcher(WithBM25Index(buildBM25(t)))
	require.NoError(t, err)

	f, err := NewFusionSearcher(WithBM25Searcher(bm25))
	require.NoError(t, err)

	results, err := f.Search(context.Background(), "princess scottish", 5)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "Brave", results[0].Title)
}

func TestFusionSearcherHybridRRF(t *testing.T) {
	embedder := embed.NewStaticEmbedder(16)
	bm25, err := NewBM25Searcher(WithBM25Index(buildBM25(t)))
	require.NoError(t, err)
	vector, err := NewVectorSearcher(WithSearchEmbedder(embedder), WithSemanticIndex(buildSemantic(t, embedder)))
	require.NoError(t, err)

	f, err := NewFusionSearcher(
		WithBM25Searcher(bm25),
		WithVectorSearcher(vector),
		WithFusionConfig(DefaultFusionConfig()),
	)
	require.NoError(t, err)

	results, err := f.Search(context.Background(), "superhero family", 3)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "The Incredibles", results[0].Title)
}

func TestFusionSearcherWeightedMode(t *testing.T) {
	embedder := embed.NewStaticEmbedder(16)
	bm25, err := NewBM25Searcher(WithBM25Index(buildBM25(t)))
	require.NoError(t, err)
	vector, err := NewVectorSearcher(WithSearchEmbedder(embedder), WithSemanticIndex(buildSemantic(t, embedder)))
	require.NoError(t, err)

	cfg := DefaultFusionConfig()
	cfg.Method = FusionMethodWeighted
	f, err := NewFusionSearcher(WithBM25Searcher(bm25), WithVectorSearcher(vector), WithFusionConfig(cfg))
	require.NoError(t, err)

	results, err := f.Search(context.Background(), "superhero family", 3)
	require.NoError(t, err)
	require.NotEmpty(t, results)
}
