package semantic

import (
	"context"
	"testing"

	"github.com/Aman-CERP/movieretrieval/internal/catalog"
	"github.com/Aman-CERP/movieretrieval/internal/embed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureDocs() []catalog.Document {
	return []catalog.Document{
		{ID: 1, Title: "Brave", Description: "Merida is a headstrong Scottish princess. She defies an old custom."},
		{ID: 2, Title: "Paddington", Description: "A bear travels to London. He finds a kind family there."},
	}
}

func TestCosineSimilaritySymmetricAndBounded(t *testing.T) {
	a := []float32{1, 0, 0}
	b := []float32{0, 1, 0}
	assert.Equal(t, cosineSimilarity(a, b), cosineSimilarity(b, a))
	assert.InDelta(t, 1.0, cosineSimilarity(a, a), 1e-9)
	assert.InDelta(t, 0.0, cosineSimilarity(a, []float32{0, 0, 0}), 1e-9)
}

func TestBuildAndSearchMaxPool(t *testing.T) {
	embedder := embed.NewStaticEmbedder(32)
	idx := New()
	require.NoError(t, idx.Build(context.Background(), fixtureDocs(), embedder, 2, 1))

	hits, err := idx.Search(context.Background(), "a bear travels to london", embedder, 5)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, "Paddington", hits[0].Title)
}

func TestSearchEmptyQueryErrors(t *testing.T) {
	embedder := embed.NewStaticEmbedder(32)
	idx := New()
	require.NoError(t, idx.Build(context.Background(), fixtureDocs(), embedder, 2, 1))

	_, err := idx.Search(context.Background(), "", embedder, 5)
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	embedder := embed.NewStaticEmbedder(16)
	idx := New()
	require.NoError(t, idx.Build(context.Background(), fixtureDocs(), embedder, 2, 1))

	dir := t.TempDir()
	require.NoError(t, idx.Save(dir))

	loaded := New()
	require.NoError(t, loaded.Load(dir, fixtureDocs()))
	assert.Equal(t, len(idx.metadata), len(loaded.metadata))
	assert.Equal(t, idx.dim, loaded.dim)

	hits, err := loaded.Search(context.Background(), "a bear travels to london", embedder, 5)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, "Paddington", hits[0].Title)
}
