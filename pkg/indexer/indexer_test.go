package indexer

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
		{ID: 1, Title: "Brave", Description: "Merida is a headstrong Scottish princess."},
		{ID: 2, Title: "Paddington", Description: "A bear travels to London."},
	}
}

func TestBM25IndexerRequiresIndex(t *testing.T) {
	_, err := NewBM25Indexer()
	assert.ErrorIs(t, err, ErrNilBM25Index)
}

func TestBM25IndexerBuildSaveLoad(t *testing.T) {
	bi, err := NewBM25Indexer(WithBM25Index(index.New(textnorm.New(nil))))
	require.NoError(t, err)
	require.NoError(t, bi.Build(context.Background(), fixtureDocs()))

	stats := bi.Stats()
	assert.Equal(t, 2, stats.DocumentCount)
	assert.Greater(t, stats.TermCount, 0)

	dir := t.TempDir()
	require.NoError(t, bi.Save(dir))

	loaded, err := NewBM25Indexer(WithBM25Index(index.New(textnorm.New(nil))))
	require.NoError(t, err)
	require.NoError(t, loaded.Load(dir, fixtureDocs()))
	assert.Equal(t, 2, loaded.Stats().DocumentCount)
	require.NoError(t, bi.Close())
}

func TestVectorIndexerRequiresDependencies(t *testing.T) {
	_, err := NewVectorIndexer()
	assert.ErrorIs(t, err, ErrNilEmbedder)

	_, err = NewVectorIndexer(WithEmbedder(embed.NewStaticEmbedder(8)))
	assert.ErrorIs(t, err, ErrNilSemanticIndex)
}

func TestVectorIndexerBuildSaveLoad(t *testing.T) {
	embedder := embed.NewStaticEmbedder(16)
	vi, err := NewVectorIndexer(WithEmbedder(embedder), WithSemanticIndex(semantic.New()))
	require.NoError(t, err)
	require.NoError(t, vi.Build(context.Background(), fixtureDocs()))
	assert.Greater(t, vi.Stats().ChunkCount, 0)

	dir := t.TempDir()
	require.NoError(t, vi.Save(dir))

	loaded, err := NewVectorIndexer(WithEmbedder(embedder), WithSemanticIndex(semantic.New()))
	require.NoError(t, err)
	require.NoError(t, loaded.Load(dir, fixtureDocs()))
	assert.Equal(t, vi.Stats().ChunkCount, loaded.Stats().ChunkCount)
}

func TestHybridIndexerRequiresAtLeastOneComponent(t *testing.T) {
	_, err := NewHybridIndexer()
	assert.ErrorIs(t, err, ErrNoIndexers)
}

func TestHybridIndexerBuildsBothComponents(t *testing.T) {
	embedder := embed.NewStaticEmbedder(16)
	bi, err := NewBM25Indexer(WithBM25Index(index.New(textnorm.New(nil))))
	require.NoError(t, err)
	vi, err := NewVectorIndexer(WithEmbedder(embedder), WithSemanticIndex(semantic.New()))
	require.NoError(t, err)

	h, err := NewHybridIndexer(WithBM25(bi), WithVector(vi))
	require.NoError(t, err)
	require.NoError(t, h.Build(context.Background(), fixtureDocs()))

	stats := h.Stats()
	assert.Equal(t, 2, stats.DocumentCount)
	assert.Greater(t, stats.TermCount, 0)
	assert.Greater(t, stats.ChunkCount, 0)
	require.NoError(t, h.Close())
}
