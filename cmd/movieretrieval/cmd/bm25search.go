package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/movieretrieval/pkg/searcher"
)

func newBM25SearchCmd() *cobra.Command {
	flags := &searchFlags{}
	cmd := &cobra.Command{
		Use:   "bm25search <query>",
		Short: "Lexical search over the BM25 inverted index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, norm, err := loadCatalog()
			if err != nil {
				return err
			}
			bm25Idx, err := loadBM25Index(docs, norm)
			if err != nil {
				return fmt.Errorf("loading bm25 index: %w", err)
			}

			s, err := searcher.NewBM25Searcher(searcher.WithBM25Index(bm25Idx))
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
