// Package config loads the engine's layered configuration: built-in
// defaults, overlaid by an optional YAML file, overlaid by environment
// variables. Later layers win.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the complete engine configuration.
type Config struct {
	Version    int              `yaml:"version"`
	Paths      PathsConfig      `yaml:"paths"`
	BM25       BM25Config       `yaml:"bm25"`
	Chunk      ChunkConfig      `yaml:"chunk"`
	Fusion     FusionConfig     `yaml:"fusion"`
	Embeddings EmbeddingsConfig `yaml:"embeddings"`
	Rerank     RerankConfig     `yaml:"rerank"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// PathsConfig locates the catalog, stopword list, golden dataset, and the
// on-disk cache directory that holds persisted index artifacts.
type PathsConfig struct {
	CatalogPath   string `yaml:"catalog_path"`
	StopwordsPath string `yaml:"stopwords_path"`
	GoldenPath    string `yaml:"golden_path"`
	CacheDir      string `yaml:"cache_dir"`
}

// BM25Config carries the BM25 tuning parameters.
type BM25Config struct {
	K1 float64 `yaml:"k1"`
	B  float64 `yaml:"b"`
}

// ChunkConfig carries the sentence-window chunker parameters.
type ChunkConfig struct {
	MaxChunkSize int `yaml:"max_chunk_size"`
	Overlap      int `yaml:"overlap"`
}

// FusionConfig carries the weighted-fusion and RRF parameters.
type FusionConfig struct {
	Alpha       float64 `yaml:"alpha"`
	RRFConstant int     `yaml:"rrf_constant"`
}

// EmbeddingsConfig selects and configures the embedding provider.
type EmbeddingsConfig struct {
	Provider   string `yaml:"provider"` // "http" or "static"
	Model      string `yaml:"model"`
	BaseURL    string `yaml:"base_url"`
	Dimensions int    `yaml:"dimensions"`
	CacheSize  int    `yaml:"cache_size"`
}

// RerankConfig selects and configures the rerank stage.
type RerankConfig struct {
	Method             string  `yaml:"method"` // "none", "cross-encoder", "llm-individual", "llm-batch"
	CrossEncoderURL    string  `yaml:"cross_encoder_url"`
	LLMModel           string  `yaml:"llm_model"`
	RateLimitPerSecond float64 `yaml:"rate_limit_per_second"`
	RateLimitBurst     int     `yaml:"rate_limit_burst"`
}

// LoggingConfig mirrors logging.Config's fields for file-based config.
type LoggingConfig struct {
	Level         string `yaml:"level"`
	FilePath      string `yaml:"file_path"`
	MaxSizeMB     int    `yaml:"max_size_mb"`
	MaxFiles      int    `yaml:"max_files"`
	WriteToStderr bool   `yaml:"write_to_stderr"`
}

// Default returns the built-in defaults, matching the constants named in
// the retrieval engine's component design (BM25 k1/b, chunk window/overlap,
// fusion alpha/k).
func Default() Config {
	home, _ := os.UserHomeDir()
	cacheDir := filepath.Join(home, ".movieretrieval", "cache")
	return Config{
		Version: 1,
		Paths: PathsConfig{
			CatalogPath:   "data/movies.json",
			StopwordsPath: "data/stopwords.txt",
			GoldenPath:    "data/golden_dataset.json",
			CacheDir:      cacheDir,
		},
		BM25: BM25Config{K1: 1.5, B: 0.75},
		Chunk: ChunkConfig{
			MaxChunkSize: 4,
			Overlap:      1,
		},
		Fusion: FusionConfig{Alpha: 0.5, RRFConstant: 60},
		Embeddings: EmbeddingsConfig{
			Provider:   "static",
			Model:      "all-MiniLM-L6-v2",
			Dimensions: 384,
			CacheSize:  512,
		},
		Rerank: RerankConfig{
			Method:             "none",
			LLMModel:           "claude-3-5-haiku-latest",
			RateLimitPerSecond: 1.0,
			RateLimitBurst:     1,
		},
		Logging: LoggingConfig{
			Level:         "info",
			MaxSizeMB:     10,
			MaxFiles:      5,
			WriteToStderr: true,
		},
	}
}

// Load builds the layered configuration: defaults, overlaid by the YAML
// file at path (if it exists), overlaid by environment variables prefixed
// MOVIERETRIEVAL_.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("reading config file %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

// applyEnvOverrides overlays MOVIERETRIEVAL_* environment variables onto cfg.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MOVIERETRIEVAL_CACHE_DIR"); v != "" {
		cfg.Paths.CacheDir = v
	}
	if v := os.Getenv("MOVIERETRIEVAL_CATALOG_PATH"); v != "" {
		cfg.Paths.CatalogPath = v
	}
	if v := os.Getenv("MOVIERETRIEVAL_BM25_K1"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.BM25.K1 = f
		}
	}
	if v := os.Getenv("MOVIERETRIEVAL_BM25_B"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.BM25.B = f
		}
	}
	if v := os.Getenv("MOVIERETRIEVAL_FUSION_ALPHA"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Fusion.Alpha = f
		}
	}
	if v := os.Getenv("MOVIERETRIEVAL_RRF_CONSTANT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Fusion.RRFConstant = n
		}
	}
	if v := os.Getenv("MOVIERETRIEVAL_EMBEDDINGS_PROVIDER"); v != "" {
		cfg.Embeddings.Provider = v
	}
	if v := os.Getenv("MOVIERETRIEVAL_RERANK_METHOD"); v != "" {
		cfg.Rerank.Method = v
	}
	if v := os.Getenv("MOVIERETRIEVAL_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
