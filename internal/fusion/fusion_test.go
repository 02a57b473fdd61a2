package fusion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeScoresUniformInputYieldsOnes(t *testing.T) {
	got := NormalizeScores([]float64{3.0, 3.0, 3.0, 3.0})
	assert.Equal(t, []float64{1.0, 1.0, 1.0, 1.0}, got)
}

func TestNormalizeScoresMinMax(t *testing.T) {
	got := NormalizeScores([]float64{3.0, 1.0, 5.0})
	assert.Equal(t, []float64{0.5, 0.0, 1.0}, got)
}

func TestNormalizeScoresEmpty(t *testing.T) {
	assert.Empty(t, NormalizeScores(nil))
}

func TestWeightedAlphaOneEqualsBM25Only(t *testing.T) {
	bm25 := []Candidate{{ID: 1, Title: "A", Score: 10}, {ID: 2, Title: "B", Score: 5}}
	sem := []Candidate{{ID: 2, Title: "B", Score: 99}, {ID: 1, Title: "A", Score: 1}}

	got := Weighted(bm25, sem, 1.0, 5)
	a := assert.New(t)
	a.Len(got, 2)
	a.Equal(1, got[0].ID, "alpha=1 should rank purely by bm25 score")
	a.Equal(2, got[1].ID)
}

func TestWeightedAlphaZeroEqualsSemanticOnly(t *testing.T) {
	bm25 := []Candidate{{ID: 1, Title: "A", Score: 10}, {ID: 2, Title: "B", Score: 5}}
	sem := []Candidate{{ID: 2, Title: "B", Score: 99}, {ID: 1, Title: "A", Score: 1}}

	got := Weighted(bm25, sem, 0.0, 5)
	assert.Equal(t, 2, got[0].ID, "alpha=0 should rank purely by semantic score")
}

func TestRRFHigherRankBeatsLowerRank(t *testing.T) {
	bm25 := []Candidate{{ID: 1}, {ID: 2}, {ID: 3}}
	got := RRF(bm25, nil, 60, 3)
	assert.Greater(t, got[0].RRFScore, got[1].RRFScore)
	assert.Greater(t, got[1].RRFScore, got[2].RRFScore)
}

func TestRRFPermutationInvariantOverIdenticalRanks(t *testing.T) {
	bm25 := []Candidate{{ID: 1}, {ID: 2}}
	sem := []Candidate{{ID: 1}, {ID: 2}}
	gotA := RRF(bm25, sem, 60, 2)

	bm25b := []Candidate{{ID: 2}, {ID: 1}}
	sem2 := []Candidate{{ID: 2}, {ID: 1}}
	gotB := RRF(bm25b, sem2, 60, 2)

	assert.Equal(t, gotA[0].RRFScore, gotB[0].RRFScore)
	assert.Equal(t, gotA[1].RRFScore, gotB[1].RRFScore)
}

func TestEmptyListsFuseToEmpty(t *testing.T) {
	assert.Empty(t, RRF(nil, nil, 60, 5))
	assert.Empty(t, Weighted(nil, nil, 0.5, 5))
}
