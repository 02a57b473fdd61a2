// Package rerank implements the three re-rank strategies that operate on
// a fused shortlist: cross-encoder, LLM-individual, and LLM-batch.
package rerank

import "context"

// Candidate is one entry of the fused shortlist handed to a Reranker.
type Candidate struct {
	ID       int
	Title    string
	Document string
}

// Result is a single reranked entry: the candidate plus its new score.
// Higher Score is better, regardless of strategy.
type Result struct {
	ID       int
	Title    string
	Document string
	Score    float64
}

// Method names the strategy selected by the caller.
type Method string

const (
	MethodCrossEncoder   Method = "cross-encoder"
	MethodLLMIndividual  Method = "llm-individual"
	MethodLLMBatch       Method = "llm-batch"
)

// Reranker scores and reorders a fused shortlist by relevance to query.
type Reranker interface {
	// Rerank returns the top limit candidates sorted by Score descending.
	// limit <= 0 returns all candidates reranked.
	Rerank(ctx context.Context, query string, candidates []Candidate, limit int) ([]Result, error)
}
