package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/movieretrieval/internal/catalog"
	"github.com/Aman-CERP/movieretrieval/internal/evaluator"
)

func newEvaluateCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score retrieval quality against the golden dataset (precision/recall/F1 @ limit)",
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, norm, err := loadCatalog()
			if err != nil {
				return err
			}
			cases, err := catalog.LoadGoldenSet(cfg.Paths.GoldenPath)
			if err != nil {
				return fmt.Errorf("loading golden dataset: %w", err)
			}

			bm25Idx, err := loadBM25Index(docs, norm)
			if err != nil {
				return fmt.Errorf("loading bm25 index: %w", err)
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

			eval := evaluator.New(bm25Idx, semIdx, embedder, cfg.Fusion.RRFConstant)
			report, err := eval.Evaluate(cmd.Context(), cases, limit)
			if err != nil {
				return fmt.Errorf("evaluate: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, q := range report.Queries {
				fmt.Fprintf(out, "%-40s precision=%.3f recall=%.3f f1=%.3f\n", q.Query, q.Precision, q.Recall, q.F1)
			}
			fmt.Fprintf(out, "\nmean precision@%d: %.3f\n", limit, report.TotalPrecision)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 5, "Number of results retrieved per query (N in precision@N)")
	return cmd
}
