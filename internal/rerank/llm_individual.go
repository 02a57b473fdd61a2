package rerank

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"

	"github.com/Aman-CERP/movieretrieval/internal/llm"
)

var scoreDigits = regexp.MustCompile(`-?\d+`)

// LLMIndividualReranker prompts the LLM once per candidate for a 0-10
// integer relevance score. A parse failure on one candidate is non-fatal:
// it is logged and scored 0, so one bad response cannot sink the whole
// pass.
type LLMIndividualReranker struct {
	provider llm.Provider
	throttle llm.Throttle
	logger   *slog.Logger
}

var _ Reranker = (*LLMIndividualReranker)(nil)

// NewLLMIndividualReranker builds a reranker against provider. A nil
// throttle defaults to llm.NoThrottle; a nil logger defaults to slog.Default.
func NewLLMIndividualReranker(provider llm.Provider, throttle llm.Throttle, logger *slog.Logger) *LLMIndividualReranker {
	if throttle == nil {
		throttle = llm.NoThrottle{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LLMIndividualReranker{provider: provider, throttle: throttle, logger: logger}
}

func individualPrompt(query, title, document string) string {
	return fmt.Sprintf(
		"Rate how relevant the following movie is to the search query, on an integer scale from 0 (not relevant) to 10 (perfectly relevant). Respond with only the integer.\n\nQuery: %s\nTitle: %s\nDescription: %s",
		query, title, document)
}

// Rerank scores each candidate individually, rate-limiting between calls,
// and returns the top limit sorted by score descending.
func (r *LLMIndividualReranker) Rerank(ctx context.Context, query string, candidates []Candidate, limit int) ([]Result, error) {
	results := make([]Result, len(candidates))
	for i, c := range candidates {
		if err := r.throttle.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rerank: throttle wait: %w", err)
		}

		text, err := r.provider.Generate(ctx, individualPrompt(query, c.Title, c.Document))
		score := 0.0
		if err != nil {
			r.logger.Warn("llm_individual_rerank_call_failed", slog.Int("doc_id", c.ID), slog.Any("error", err))
		} else if parsed, ok := parseIntScore(text); ok {
			score = float64(parsed)
		} else {
			r.logger.Warn("llm_individual_rerank_parse_failed", slog.Int("doc_id", c.ID), slog.String("response", text))
		}

		results[i] = Result{ID: c.ID, Title: c.Title, Document: c.Document, Score: score}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ID < results[j].ID
	})

	if limit > 0 && limit < len(results) {
		results = results[:limit]
	}
	return results, nil
}

func parseIntScore(text string) (int, bool) {
	match := scoreDigits.FindString(text)
	if match == "" {
		return 0, false
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return n, true
}
