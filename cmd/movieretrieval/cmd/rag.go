package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/movieretrieval/internal/rag"
)

func newRAGCmd() *cobra.Command {
	var numSources int
	cmd := &cobra.Command{
		Use:   "rag <query>",
		Short: "Answer a query with an LLM grounded on the fused retrieval results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := fetchSources(cmd, args[0], numSources)
			if err != nil {
				return err
			}
			provider, err := newLLMProvider()
			if err != nil {
				return err
			}
			answer, err := rag.New(provider).Answer(cmd.Context(), args[0], sources)
			if err != nil {
				return fmt.Errorf("rag: %w", err)
			}
			printAnswer(cmd, answer)
			return nil
		},
	}
	cmd.Flags().IntVar(&numSources, "sources", 5, "Number of fused search results to ground the answer on")
	return cmd
}
