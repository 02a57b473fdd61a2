package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/movieretrieval/internal/rag"
)

func newSummarizeCmd() *cobra.Command {
	var numSources int
	cmd := &cobra.Command{
		Use:   "summarize <query>",
		Short: "Summarize the fused search results for a query across multiple sources",
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
			answer, err := rag.New(provider).Summarize(cmd.Context(), args[0], sources)
			if err != nil {
				return fmt.Errorf("summarize: %w", err)
			}
			printAnswer(cmd, answer)
			return nil
		},
	}
	cmd.Flags().IntVar(&numSources, "sources", 5, "Number of fused search results to summarize")
	return cmd
}
