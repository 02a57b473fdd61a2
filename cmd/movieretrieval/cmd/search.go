package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/movieretrieval/pkg/searcher"
)

func newSearchCmd() *cobra.Command {
	flags := &searchFlags{}
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Semantic (embedding cosine-similarity) search over the chunked index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, _, err := loadCatalog()
			if err != nil {
				return err
			}
			embedder, err := newEmbedder()
			if err != nil {
				return fmt.Errorf("constructing embedder: %w", err)
			}
			defer embedder.Close()

			semIdx, err := loadSemanticIndex(cmd.Context(), docs, embedder)
			if err != nil {
				return fmt.Errorf("loading semantic index: %w", err)
			}

			s, err := searcher.NewVectorSearcher(
				searcher.WithSearchEmbedder(embedder),
				searcher.WithSemanticIndex(semIdx),
			)
			if err != nil {
				return err
			}
			results, err := s.Search(cmd.Context(), args[0], flags.limit)
			if err != nil {
				return err
			}
			printResults(cmd.OutOrStdout(), results)
			return nil
		},
	}
	addSearchFlags(flags, cmd.Flags())
	return cmd
}
