package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Aman-CERP/movieretrieval/internal/catalog"
	"github.com/Aman-CERP/movieretrieval/internal/embed"
	engineerrors "github.com/Aman-CERP/movieretrieval/internal/engineerrors"
	"github.com/Aman-CERP/movieretrieval/internal/index"
	"github.com/Aman-CERP/movieretrieval/internal/llm"
	"github.com/Aman-CERP/movieretrieval/internal/semantic"
	"github.com/Aman-CERP/movieretrieval/internal/textnorm"
)

// loadCatalog reads the document set and stopword list named by cfg.Paths.
func loadCatalog() ([]catalog.Document, *textnorm.Normalizer, error) {
	docs, err := catalog.LoadDocuments(cfg.Paths.CatalogPath)
	if err != nil {
		return nil, nil, err
	}
	stopwords, err := catalog.LoadStopwords(cfg.Paths.StopwordsPath)
	if err != nil {
		return nil, nil, err
	}
	return docs, textnorm.New(stopwords), nil
}

// newEmbedder builds the configured embedding provider.
func newEmbedder() (embed.Embedder, error) {
	return embed.New(cfg.Embeddings)
}

// loadBM25Index loads the BM25 index from the cache dir, or builds and
// persists it if the cache is missing, matching the "caller decides
// whether to rebuild" recovery policy.
func loadBM25Index(docs []catalog.Document, norm *textnorm.Normalizer) (*index.Index, error) {
	idx := index.New(norm, index.WithBM25Params(cfg.BM25.K1, cfg.BM25.B))
	err := idx.Load(cfg.Paths.CacheDir)
	if err == nil {
		return idx, nil
	}
	if kind, ok := engineerrors.KindOf(err); !ok || kind != engineerrors.KindCacheMissing {
		return nil, err
	}
	if err := idx.Build(docs); err != nil {
		return nil, err
	}
	if err := idx.Save(cfg.Paths.CacheDir); err != nil {
		return nil, err
	}
	return idx, nil
}

// loadSemanticIndex loads the semantic index from the cache dir, or
// builds and persists it if the cache is missing.
func loadSemanticIndex(ctx context.Context, docs []catalog.Document, embedder embed.Embedder) (*semantic.Index, error) {
	idx := semantic.New()
	err := idx.Load(cfg.Paths.CacheDir, docs)
	if err == nil {
		return idx, nil
	}
	if kind, ok := engineerrors.KindOf(err); !ok || kind != engineerrors.KindCacheMissing {
		return nil, err
	}
	if err := idx.Build(ctx, docs, embedder, cfg.Chunk.MaxChunkSize, cfg.Chunk.Overlap); err != nil {
		return nil, err
	}
	if err := idx.Save(cfg.Paths.CacheDir); err != nil {
		return nil, err
	}
	return idx, nil
}

// newLLMProvider builds an Anthropic-backed provider if ANTHROPIC_API_KEY
// is set, otherwise it returns an error -- the RAG/rerank commands need an
// explicit opt-in to call a real model.
func newLLMProvider() (llm.Provider, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY is not set; this command requires an LLM provider")
	}
	model := cfg.Rerank.LLMModel
	if model == "" {
		model = llm.DefaultAnthropicModel
	}
	throttle := llm.NewRateLimiterThrottle(cfg.Rerank.RateLimitPerSecond, cfg.Rerank.RateLimitBurst)
	return llm.NewAnthropicProvider(llm.AnthropicConfig{
		APIKey:   apiKey,
		Model:    model,
		Throttle: throttle,
	}), nil
}
