package embed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	engineerrors "github.com/Aman-CERP/movieretrieval/internal/engineerrors"
)

// Default tuning for the HTTP-backed embedder, modeled on the Ollama
// embeddings API shape: POST {base_url}/api/embeddings {model, prompt}.
const (
	DefaultHTTPTimeout = 60 * time.Second
	httpPoolSize       = 4
)

// HTTPConfig configures HTTPEmbedder.
type HTTPConfig struct {
	BaseURL    string
	Model      string
	Dimensions int
	Timeout    time.Duration
}

// HTTPEmbedder calls an external HTTP embedding service one text at a
// time. Connection pooling and per-request context timeouts (not a
// client-level timeout, so callers can tune per-call deadlines) mirror
// the pattern used for every other outbound network collaborator in this
// codebase.
type HTTPEmbedder struct {
	client *http.Client
	cfg    HTTPConfig
	mu     sync.RWMutex
	closed bool
}

var _ Embedder = (*HTTPEmbedder)(nil)

// NewHTTPEmbedder creates an HTTPEmbedder with a pooled transport.
func NewHTTPEmbedder(cfg HTTPConfig) *HTTPEmbedder {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultHTTPTimeout
	}
	transport := &http.Transport{
		MaxIdleConns:        httpPoolSize,
		MaxIdleConnsPerHost: httpPoolSize,
		MaxConnsPerHost:     httpPoolSize * 2,
		IdleConnTimeout:     10 * time.Second,
	}
	return &HTTPEmbedder{
		client: &http.Client{Transport: transport},
		cfg:    cfg,
	}
}

type embedRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type embedResponse struct {
	Embedding []float32 `json:"embedding"`
}

// embedRetryConfig retries a handful of times with a short exponential
// backoff; the embedding service is typically local (e.g. Ollama) so
// transient failures are usually a slow model load, not a dead host.
var embedRetryConfig = engineerrors.RetryConfig{
	MaxRetries:   2,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2.0,
	Jitter:       true,
}

// Embed calls the embedding service for a single text, retrying any failed
// call (transport error, non-200 status, or bad body) with backoff.
func (e *HTTPEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, engineerrors.EmptyQuery()
	}

	e.mu.RLock()
	closed := e.closed
	e.mu.RUnlock()
	if closed {
		return nil, engineerrors.ProviderError("embedder", fmt.Errorf("embedder is closed"))
	}

	return engineerrors.RetryWithResult(ctx, embedRetryConfig, func() ([]float32, error) {
		return e.doEmbed(ctx, text)
	})
}

func (e *HTTPEmbedder) doEmbed(ctx context.Context, text string) ([]float32, error) {
	reqCtx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(embedRequest{Model: e.cfg.Model, Prompt: text})
	if err != nil {
		return nil, engineerrors.ProviderError("embedder", err)
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, e.cfg.BaseURL+"/api/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, engineerrors.ProviderError("embedder", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, engineerrors.ProviderError("embedder", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return nil, engineerrors.ProviderError("embedder", fmt.Errorf("status %d: %s", resp.StatusCode, data))
	}

	var out embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, engineerrors.ProviderError("embedder", err)
	}
	return out.Embedding, nil
}

// EmbedBatch embeds each text in order; the reference API has no native
// batch endpoint, so requests are issued sequentially to preserve order
// and keep backpressure simple.
func (e *HTTPEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := e.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Dimensions returns the configured embedding dimension.
func (e *HTTPEmbedder) Dimensions() int { return e.cfg.Dimensions }

// ModelName returns the configured model identifier.
func (e *HTTPEmbedder) ModelName() string { return e.cfg.Model }

// Available issues a lightweight health probe against the base URL.
func (e *HTTPEmbedder) Available(ctx context.Context) bool {
	reqCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, e.cfg.BaseURL, nil)
	if err != nil {
		return false
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return true
}

// Close releases pooled connections.
func (e *HTTPEmbedder) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	e.client.CloseIdleConnections()
	return nil
}
