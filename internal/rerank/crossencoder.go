package rerank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	engineerrors "github.com/Aman-CERP/movieretrieval/internal/engineerrors"
)

// DefaultCrossEncoderTimeout bounds a single /rerank round trip.
const DefaultCrossEncoderTimeout = 30 * time.Second

// CrossEncoderConfig configures a CrossEncoderReranker.
type CrossEncoderConfig struct {
	Endpoint string
	Model    string
	Timeout  time.Duration
}

// CrossEncoderReranker scores each (query, "title - document") pair via
// an external sequence-pair regressor served over HTTP. Scores are raw
// and unnormalized; larger is better.
type CrossEncoderReranker struct {
	client *http.Client
	cfg    CrossEncoderConfig
}

var _ Reranker = (*CrossEncoderReranker)(nil)

// NewCrossEncoderReranker builds a reranker with a pooled transport.
func NewCrossEncoderReranker(cfg CrossEncoderConfig) *CrossEncoderReranker {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultCrossEncoderTimeout
	}
	return &CrossEncoderReranker{
		client: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
			},
		},
		cfg: cfg,
	}
}

type crossEncoderRequest struct {
	Query     string   `json:"query"`
	Documents []string `json:"documents"`
	Model     string   `json:"model,omitempty"`
}

type crossEncoderResponse struct {
	Scores []float64 `json:"scores"`
}

// Rerank pairs query against "title - document" for every candidate,
// scores them in one batched call, and returns the top limit entries
// sorted by score descending (ties broken by ascending id).
func (r *CrossEncoderReranker) Rerank(ctx context.Context, query string, candidates []Candidate, limit int) ([]Result, error) {
	if len(candidates) == 0 {
		return []Result{}, nil
	}

	pairs := make([]string, len(candidates))
	for i, c := range candidates {
		pairs[i] = c.Title + " - " + c.Document
	}

	body, err := json.Marshal(crossEncoderRequest{Query: query, Documents: pairs, Model: r.cfg.Model})
	if err != nil {
		return nil, engineerrors.RerankFailure("failed to marshal cross-encoder request", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, r.cfg.Endpoint+"/rerank", bytes.NewReader(body))
	if err != nil {
		return nil, engineerrors.RerankFailure("failed to build cross-encoder request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, engineerrors.RerankFailure("cross-encoder request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return nil, engineerrors.RerankFailure(fmt.Sprintf("cross-encoder returned status %d: %s", resp.StatusCode, data), nil)
	}

	var parsed crossEncoderResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, engineerrors.RerankFailure("failed to decode cross-encoder response", err)
	}
	if len(parsed.Scores) != len(candidates) {
		return nil, engineerrors.RerankFailure(fmt.Sprintf("cross-encoder returned %d scores for %d candidates", len(parsed.Scores), len(candidates)), nil)
	}

	results := make([]Result, len(candidates))
	for i, c := range candidates {
		results[i] = Result{ID: c.ID, Title: c.Title, Document: c.Document, Score: parsed.Scores[i]}
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
