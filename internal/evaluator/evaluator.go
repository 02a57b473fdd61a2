// Package evaluator scores retrieval quality against a golden set of
// {query, relevant_titles} cases by running the RRF fusion pipeline and
// computing precision@k, recall@k, and F1.
package evaluator

import (
	"context"
	"fmt"

	"github.com/Aman-CERP/movieretrieval/internal/catalog"
	"github.com/Aman-CERP/movieretrieval/internal/embed"
	"github.com/Aman-CERP/movieretrieval/internal/fusion"
	"github.com/Aman-CERP/movieretrieval/internal/index"
	"github.com/Aman-CERP/movieretrieval/internal/semantic"
)

// DefaultRRFConstant matches spec.md's evaluation default: rrf_search(query, k=60, limit=N).
const DefaultRRFConstant = 60

// QueryResult is one golden-set case's evaluation outcome.
type QueryResult struct {
	Query         string
	Retrieved     []string
	Relevant      []string
	Precision     float64
	Recall        float64
	F1            float64
}

// Report aggregates per-query results plus the overall mean precision.
type Report struct {
	Queries        []QueryResult
	TotalPrecision float64
}

// Evaluator runs the fused-search pipeline against a golden dataset.
type Evaluator struct {
	bm25     *index.Index
	semantic *semantic.Index
	embedder embed.Embedder
	rrfK     int
}

// New builds an Evaluator over the given built indexes and embedder,
// using the RRF constant k (DefaultRRFConstant if k <= 0).
func New(bm25 *index.Index, sem *semantic.Index, embedder embed.Embedder, rrfK int) *Evaluator {
	if rrfK <= 0 {
		rrfK = DefaultRRFConstant
	}
	return &Evaluator{bm25: bm25, semantic: sem, embedder: embedder, rrfK: rrfK}
}

// Evaluate runs rrf_search(query, k, limit) for every golden case and
// returns per-query precision@limit/recall@limit/F1 plus the aggregated
// mean precision.
func (e *Evaluator) Evaluate(ctx context.Context, cases []catalog.GoldenCase, limit int) (Report, error) {
	report := Report{Queries: make([]QueryResult, 0, len(cases))}

	var precisionSum float64
	for _, tc := range cases {
		bm25Hits, err := e.bm25.BM25Search(ctx, tc.Query, limit*5)
		if err != nil {
			return Report{}, fmt.Errorf("evaluator: bm25 search %q: %w", tc.Query, err)
		}
		semHits, err := e.semantic.Search(ctx, tc.Query, e.embedder, limit*5)
		if err != nil {
			return Report{}, fmt.Errorf("evaluator: semantic search %q: %w", tc.Query, err)
		}

		fused := fusion.RRF(toCandidates(bm25Hits), toSemCandidates(semHits), e.rrfK, limit)

		retrieved := make([]string, len(fused))
		for i, h := range fused {
			retrieved[i] = h.Title
		}

		result := score(tc.Query, retrieved, tc.RelevantDocs)
		report.Queries = append(report.Queries, result)
		precisionSum += result.Precision
	}

	if len(cases) > 0 {
		report.TotalPrecision = precisionSum / float64(len(cases))
	}
	return report, nil
}

func score(query string, retrieved, relevant []string) QueryResult {
	relevantSet := make(map[string]struct{}, len(relevant))
	for _, r := range relevant {
		relevantSet[r] = struct{}{}
	}

	var hits int
	for _, r := range retrieved {
		if _, ok := relevantSet[r]; ok {
			hits++
		}
	}

	var precision float64
	if len(retrieved) > 0 {
		precision = float64(hits) / float64(len(retrieved))
	}

	var recall float64
	if len(relevant) > 0 {
		recall = float64(hits) / float64(len(relevant))
	}

	var f1 float64
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}

	return QueryResult{
		Query:     query,
		Retrieved: retrieved,
		Relevant:  relevant,
		Precision: precision,
		Recall:    recall,
		F1:        f1,
	}
}

func toCandidates(hits []index.Hit) []fusion.Candidate {
	out := make([]fusion.Candidate, len(hits))
	for i, h := range hits {
		out[i] = fusion.Candidate{ID: h.ID, Title: h.Title, Document: h.Document, Score: h.Score}
	}
	return out
}

func toSemCandidates(hits []semantic.Hit) []fusion.Candidate {
	out := make([]fusion.Candidate, len(hits))
	for i, h := range hits {
		out[i] = fusion.Candidate{ID: h.ID, Title: h.Title, Document: h.Document, Score: h.Score}
	}
	return out
}
