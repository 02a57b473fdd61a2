package embed

import (
	"context"
	"testing"

	engineerrors "github.com/Aman-CERP/movieretrieval/internal/engineerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticEmbedderIsDeterministic(t *testing.T) {
	e := NewStaticEmbedder(32)
	v1, err := e.Embed(context.Background(), "a bear in london")
	require.NoError(t, err)
	v2, err := e.Embed(context.Background(), "a bear in london")
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
	assert.Len(t, v1, 32)
}

func TestStaticEmbedderRejectsEmptyText(t *testing.T) {
	e := NewStaticEmbedder(32)
	_, err := e.Embed(context.Background(), "")
	require.Error(t, err)
	kind, ok := engineerrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, engineerrors.KindEmptyQuery, kind)
}

func TestStaticEmbedderEmbedBatchPreservesOrder(t *testing.T) {
	e := NewStaticEmbedder(16)
	texts := []string{"brave", "paddington", "the incredibles"}
	vecs, err := e.EmbedBatch(context.Background(), texts)
	require.NoError(t, err)
	require.Len(t, vecs, 3)
	for i, text := range texts {
		single, _ := e.Embed(context.Background(), text)
		assert.Equal(t, single, vecs[i])
	}
}

func TestCachedEmbedderCachesByText(t *testing.T) {
	base := NewStaticEmbedder(8)
	cached, err := NewCachedEmbedder(base, 10)
	require.NoError(t, err)

	v1, err := cached.Embed(context.Background(), "merida")
	require.NoError(t, err)
	v2, err := cached.Embed(context.Background(), "merida")
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
}
