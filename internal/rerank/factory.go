package rerank

import (
	"context"
	"log/slog"

	engineerrors "github.com/Aman-CERP/movieretrieval/internal/engineerrors"
	"github.com/Aman-CERP/movieretrieval/internal/llm"
)

// NoOpReranker returns candidates in their incoming order with decreasing
// scores, for callers that disable reranking.
type NoOpReranker struct{}

var _ Reranker = NoOpReranker{}

// Rerank assigns decreasing scores to preserve input order.
func (NoOpReranker) Rerank(_ context.Context, _ string, candidates []Candidate, limit int) ([]Result, error) {
	results := make([]Result, len(candidates))
	for i, c := range candidates {
		results[i] = Result{ID: c.ID, Title: c.Title, Document: c.Document, Score: 1.0 - float64(i)*0.001}
	}
	if limit > 0 && limit < len(results) {
		results = results[:limit]
	}
	return results, nil
}

// New selects a Reranker by method name. provider/throttle are used for
// the two LLM strategies; crossEncoder is used for MethodCrossEncoder.
func New(method Method, provider llm.Provider, throttle llm.Throttle, crossEncoder *CrossEncoderReranker, logger *slog.Logger) (Reranker, error) {
	switch method {
	case MethodCrossEncoder:
		if crossEncoder == nil {
			return nil, engineerrors.UnknownRerankMethod(string(method))
		}
		return crossEncoder, nil
	case MethodLLMIndividual:
		return NewLLMIndividualReranker(provider, throttle, logger), nil
	case MethodLLMBatch:
		return NewLLMBatchReranker(provider, throttle), nil
	default:
		return nil, engineerrors.UnknownRerankMethod(string(method))
	}
}
