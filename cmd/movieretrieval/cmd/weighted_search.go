package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/movieretrieval/pkg/searcher"
)

func newWeightedSearchCmd() *cobra.Command {
	flags := &searchFlags{}
	var alpha float64
	cmd := &cobra.Command{
		Use:   "weighted-search <query>",
		Short: "Hybrid search: min-max normalized BM25 + semantic scores combined by alpha",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bm25S, vecS, err := buildHybridSearchers(cmd)
			if err != nil {
				return err
			}

			fusionCfg := searcher.DefaultFusionConfig()
			fusionCfg.Method = searcher.FusionMethodWeighted
			fusionCfg.Alpha = cfg.Fusion.Alpha
			if cmd.Flags().Changed("alpha") {
				fusionCfg.Alpha = alpha
			}

			s, err := searcher.NewFusionSearcher(
				searcher.WithBM25Searcher(bm25S),
				searcher.WithVectorSearcher(vecS),
				searcher.WithFusionConfig(fusionCfg),
			)
			if err != nil {
				return err
			}
			results, err := s.Search(cmd.Context(), args[0], flags.limit)
			if err != nil {
				return fmt.Errorf("weighted search: %w", err)
			}
			printResults(cmd.OutOrStdout(), results)
			return nil
		},
	}
	addSearchFlags(flags, cmd.Flags())
	cmd.Flags().Float64Var(&alpha, "alpha", 0, "Weight given to the BM25 score (1-alpha goes to semantic); defaults to the configured fusion alpha")
	return cmd
}
