package embed

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedEmbedder wraps an Embedder with an LRU cache keyed on the exact
// input text, avoiding redundant provider calls for repeated queries
// (e.g. re-running the same evaluation query across rerank strategies).
type CachedEmbedder struct {
	inner Embedder
	cache *lru.Cache[string, []float32]
}

var _ Embedder = (*CachedEmbedder)(nil)

// NewCachedEmbedder wraps inner with an LRU cache of the given size.
func NewCachedEmbedder(inner Embedder, size int) (*CachedEmbedder, error) {
	if size <= 0 {
		size = 512
	}
	cache, err := lru.New[string, []float32](size)
	if err != nil {
		return nil, err
	}
	return &CachedEmbedder{inner: inner, cache: cache}, nil
}

// Embed returns the cached vector for text if present, otherwise delegates
// to the wrapped embedder and caches the result.
func (c *CachedEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if v, ok := c.cache.Get(text); ok {
		return v, nil
	}
	v, err := c.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	c.cache.Add(text, v)
	return v, nil
}

// EmbedBatch serves cached texts from the cache, sends the remaining texts
// to the wrapped embedder in one EmbedBatch call, and caches each result.
func (c *CachedEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	var uncached []string
	var uncachedIdx []int
	for i, t := range texts {
		if v, ok := c.cache.Get(t); ok {
			out[i] = v
			continue
		}
		uncached = append(uncached, t)
		uncachedIdx = append(uncachedIdx, i)
	}
	if len(uncached) == 0 {
		return out, nil
	}
	vecs, err := c.inner.EmbedBatch(ctx, uncached)
	if err != nil {
		return nil, err
	}
	for j, idx := range uncachedIdx {
		out[idx] = vecs[j]
		c.cache.Add(uncached[j], vecs[j])
	}
	return out, nil
}

// Dimensions delegates to the wrapped embedder.
func (c *CachedEmbedder) Dimensions() int { return c.inner.Dimensions() }

// ModelName delegates to the wrapped embedder.
func (c *CachedEmbedder) ModelName() string { return c.inner.ModelName() }

// Available delegates to the wrapped embedder.
func (c *CachedEmbedder) Available(ctx context.Context) bool { return c.inner.Available(ctx) }

// Close releases the cache and delegates to the wrapped embedder.
func (c *CachedEmbedder) Close() error {
	c.cache.Purge()
	return c.inner.Close()
}
