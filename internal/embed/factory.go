package embed

import (
	"fmt"

	"github.com/Aman-CERP/movieretrieval/internal/config"
)

// New selects and constructs an Embedder from the given configuration,
// wrapping it with an LRU cache unless the cache size is zero.
func New(cfg config.EmbeddingsConfig) (Embedder, error) {
	var base Embedder
	switch cfg.Provider {
	case "", "static":
		base = NewStaticEmbedder(cfg.Dimensions)
	case "http":
		base = NewHTTPEmbedder(HTTPConfig{
			BaseURL:    cfg.BaseURL,
			Model:      cfg.Model,
			Dimensions: cfg.Dimensions,
		})
	default:
		return nil, fmt.Errorf("unknown embeddings provider %q", cfg.Provider)
	}

	if cfg.CacheSize <= 0 {
		return base, nil
	}
	return NewCachedEmbedder(base, cfg.CacheSize)
}
