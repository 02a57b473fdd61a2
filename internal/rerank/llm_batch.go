package rerank

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	engineerrors "github.com/Aman-CERP/movieretrieval/internal/engineerrors"
	"github.com/Aman-CERP/movieretrieval/internal/llm"
)

var jsonArray = regexp.MustCompile(`\[[\s\S]*\]`)

// LLMBatchReranker submits the entire shortlist in one prompt and asks the
// LLM for an ordered JSON array of ids, best first. Unlike LLM-individual,
// a parse failure here is fatal for the whole pass: one ranking is
// decisive, there is nothing to fall back to per-document.
type LLMBatchReranker struct {
	provider llm.Provider
	throttle llm.Throttle
}

var _ Reranker = (*LLMBatchReranker)(nil)

// NewLLMBatchReranker builds a reranker against provider. A nil throttle
// defaults to llm.NoThrottle.
func NewLLMBatchReranker(provider llm.Provider, throttle llm.Throttle) *LLMBatchReranker {
	if throttle == nil {
		throttle = llm.NoThrottle{}
	}
	return &LLMBatchReranker{provider: provider, throttle: throttle}
}

func batchPrompt(query string, candidates []Candidate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rank the following movies by relevance to the search query, best match first. Respond with only a JSON array of the ids in ranked order, e.g. [3,1,2].\n\nQuery: %s\n\n", query)
	for _, c := range candidates {
		fmt.Fprintf(&b, "id=%d title=%q description=%q\n", c.ID, c.Title, c.Document)
	}
	return b.String()
}

// Rerank submits candidates as one batch and ranks them by the LLM's
// returned id order, then returns the top limit.
func (r *LLMBatchReranker) Rerank(ctx context.Context, query string, candidates []Candidate, limit int) ([]Result, error) {
	if len(candidates) == 0 {
		return []Result{}, nil
	}

	if err := r.throttle.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rerank: throttle wait: %w", err)
	}

	text, err := r.provider.Generate(ctx, batchPrompt(query, candidates))
	if err != nil {
		return nil, engineerrors.RerankFailure("llm batch call failed", err)
	}

	match := jsonArray.FindString(text)
	if match == "" {
		return nil, engineerrors.RerankFailure(fmt.Sprintf("llm batch response contained no JSON array: %q", text), nil)
	}

	var ids []int
	if err := json.Unmarshal([]byte(match), &ids); err != nil {
		return nil, engineerrors.RerankFailure("llm batch response array did not parse as ids", err)
	}

	byID := make(map[int]Candidate, len(candidates))
	for _, c := range candidates {
		byID[c.ID] = c
	}

	results := make([]Result, 0, len(ids))
	seen := make(map[int]bool, len(ids))
	rank := 0
	for _, id := range ids {
		c, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		rank++
		results = append(results, Result{
			ID:       c.ID,
			Title:    c.Title,
			Document: c.Document,
			Score:    float64(len(candidates) - rank + 1),
		})
	}

	if len(results) == 0 {
		return nil, engineerrors.RerankFailure("llm batch response named no known candidate ids", nil)
	}

	if limit > 0 && limit < len(results) {
		results = results[:limit]
	}
	return results, nil
}
