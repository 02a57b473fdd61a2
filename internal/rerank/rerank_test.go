package rerank

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	engineerrors "github.com/Aman-CERP/movieretrieval/internal/engineerrors"
	"github.com/Aman-CERP/movieretrieval/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureCandidates() []Candidate {
	return []Candidate{
		{ID: 1, Title: "Brave", Document: "a princess in Scotland"},
		{ID: 2, Title: "Paddington", Document: "a bear in London"},
		{ID: 3, Title: "Incredibles", Document: "a superhero family"},
	}
}

func TestNoOpRerankerPreservesOrder(t *testing.T) {
	r := NoOpReranker{}
	got, err := r.Rerank(context.Background(), "q", fixtureCandidates(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 2, got[1].ID)
	assert.Greater(t, got[0].Score, got[1].Score)
}

func TestLLMIndividualRerankerParsesScores(t *testing.T) {
	provider := &llm.FakeProvider{Responses: map[string]string{
		individualPrompt("bear", "Brave", "a princess in Scotland"):       "2",
		individualPrompt("bear", "Paddington", "a bear in London"):        "9",
		individualPrompt("bear", "Incredibles", "a superhero family"):     "1",
	}}
	r := NewLLMIndividualReranker(provider, llm.NoThrottle{}, nil)

	got, err := r.Rerank(context.Background(), "bear", fixtureCandidates(), 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 2.0, got[1].Score)
}

func TestLLMIndividualRerankerNonFatalParseFailure(t *testing.T) {
	provider := &llm.FakeProvider{Default: "not a number"}
	r := NewLLMIndividualReranker(provider, llm.NoThrottle{}, nil)

	got, err := r.Rerank(context.Background(), "q", fixtureCandidates(), 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, res := range got {
		assert.Equal(t, 0.0, res.Score)
	}
}

func TestLLMBatchRerankerOrdersByReturnedIDs(t *testing.T) {
	provider := llm.NewFakeProvider("[2,3,1]")
	r := NewLLMBatchReranker(provider, llm.NoThrottle{})

	got, err := r.Rerank(context.Background(), "q", fixtureCandidates(), 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []int{2, 3, 1}, []int{got[0].ID, got[1].ID, got[2].ID})
}

func TestLLMBatchRerankerFatalOnUnparsableResponse(t *testing.T) {
	provider := llm.NewFakeProvider("sorry, I can't help with that")
	r := NewLLMBatchReranker(provider, llm.NoThrottle{})

	_, err := r.Rerank(context.Background(), "q", fixtureCandidates(), 3)
	require.Error(t, err)
	kind, ok := engineerrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, engineerrors.KindRerankFailure, kind)
}

func TestCrossEncoderRerankerCallsService(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"scores":[0.2,0.9,0.1]}`))
	}))
	defer server.Close()

	r := NewCrossEncoderReranker(CrossEncoderConfig{Endpoint: server.URL})
	got, err := r.Rerank(context.Background(), "q", fixtureCandidates(), 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 2, got[0].ID)
}

func TestNewUnknownMethodErrors(t *testing.T) {
	_, err := New("bogus", nil, nil, nil, nil)
	require.Error(t, err)
	kind, ok := engineerrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, engineerrors.KindUnknownRerankMethod, kind)
}
