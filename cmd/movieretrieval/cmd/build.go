package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/movieretrieval/internal/index"
	"github.com/Aman-CERP/movieretrieval/internal/semantic"
	"github.com/Aman-CERP/movieretrieval/internal/ui"
	"github.com/Aman-CERP/movieretrieval/pkg/indexer"
)

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the BM25 and semantic indexes and persist them to the cache directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, norm, err := loadCatalog()
			if err != nil {
				return err
			}

			embedder, err := newEmbedder()
			if err != nil {
				return fmt.Errorf("constructing embedder: %w", err)
			}
			defer embedder.Close()

			bm25, err := indexer.NewBM25Indexer(indexer.WithBM25Index(
				index.New(norm, index.WithBM25Params(cfg.BM25.K1, cfg.BM25.B)),
			))
			if err != nil {
				return err
			}
			vector, err := indexer.NewVectorIndexer(
				indexer.WithEmbedder(embedder),
				indexer.WithSemanticIndex(semantic.New()),
				indexer.WithChunkParams(cfg.Chunk.MaxChunkSize, cfg.Chunk.Overlap),
			)
			if err != nil {
				return err
			}
			hybrid, err := indexer.NewHybridIndexer(indexer.WithBM25(bm25), indexer.WithVector(vector))
			if err != nil {
				return err
			}
			defer hybrid.Close()

			buildErr := ui.RunWithSpinner(cmd.Context(), cmd.OutOrStdout(), "building index", func(ctx context.Context) error {
				return hybrid.Build(ctx, docs)
			})
			if buildErr != nil {
				return fmt.Errorf("building indexes: %w", buildErr)
			}
			if err := hybrid.Save(cfg.Paths.CacheDir); err != nil {
				return fmt.Errorf("saving indexes: %w", err)
			}

			stats := hybrid.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "built index: %d documents, %d terms, %d chunks (avg doc length %.2f)\n",
				stats.DocumentCount, stats.TermCount, stats.ChunkCount, stats.AvgDocLength)
			return nil
		},
	}
}
