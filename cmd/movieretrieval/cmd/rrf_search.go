package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/movieretrieval/pkg/searcher"
)

func newRRFSearchCmd() *cobra.Command {
	flags := &searchFlags{}
	var rrfK int
	cmd := &cobra.Command{
		Use:   "rrf-search <query>",
		Short: "Hybrid search: Reciprocal Rank Fusion of BM25 and semantic rankings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bm25S, vecS, err := buildHybridSearchers(cmd)
			if err != nil {
				return err
			}

			fusionCfg := searcher.DefaultFusionConfig()
			fusionCfg.Method = searcher.FusionMethodRRF
			fusionCfg.RRFConstant = cfg.Fusion.RRFConstant
			if cmd.Flags().Changed("rrf-k") {
				fusionCfg.RRFConstant = rrfK
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
				return fmt.Errorf("rrf search: %w", err)
			}
			printResults(cmd.OutOrStdout(), results)
			return nil
		},
	}
	addSearchFlags(flags, cmd.Flags())
	cmd.Flags().IntVar(&rrfK, "rrf-k", 0, "RRF rank-dampening constant; defaults to the configured value")
	return cmd
}
