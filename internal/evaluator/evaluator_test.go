package evaluator

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

func buildEvaluator(t *testing.T) *Evaluator {
	t.Helper()
	norm := textnorm.New(nil)
	bm25 := index.New(norm)
	require.NoError(t, bm25.Build(fixtureDocs()))

	embedder := embed.NewStaticEmbedder(16)
	sem := semantic.New()
	require.NoError(t, sem.Build(context.Background(), fixtureDocs(), embedder, 4, 1))

	return New(bm25, sem, embedder, 60)
}

func TestScoreComputesPrecisionRecallF1(t *testing.T) {
	result := score("superhero team movie", []string{"The Incredibles", "Brave"}, []string{"The Incredibles"})
	assert.InDelta(t, 0.5, result.Precision, 1e-9)
	assert.InDelta(t, 1.0, result.Recall, 1e-9)
	assert.Greater(t, result.F1, 0.0)
}

func TestScoreZeroRelevantYieldsZeroRecall(t *testing.T) {
	result := score("q", []string{"Brave"}, nil)
	assert.Equal(t, 0.0, result.Recall)
	assert.Equal(t, 0.0, result.F1)
}

func TestEvaluateAggregatesTotalPrecision(t *testing.T) {
	e := buildEvaluator(t)
	cases := []catalog.GoldenCase{
		{Query: "superhero family", RelevantDocs: []string{"The Incredibles"}},
		{Query: "bear in london", RelevantDocs: []string{"Paddington"}},
	}

	report, err := e.Evaluate(context.Background(), cases, 3)
	require.NoError(t, err)
	require.Len(t, report.Queries, 2)
	assert.GreaterOrEqual(t, report.TotalPrecision, 0.0)
	assert.LessOrEqual(t, report.TotalPrecision, 1.0)
}

func TestEvaluateEmptyCasesYieldsZeroPrecision(t *testing.T) {
	e := buildEvaluator(t)
	report, err := e.Evaluate(context.Background(), nil, 5)
	require.NoError(t, err)
	assert.Empty(t, report.Queries)
	assert.Equal(t, 0.0, report.TotalPrecision)
}
