package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/movieretrieval/internal/rag"
)

func newCitationsCmd() *cobra.Command {
	var numSources int
	cmd := &cobra.Command{
		Use:   "citations <query>",
		Short: "Answer a query with inline [n] citations into the source list",
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
			answer, err := rag.New(provider).Cite(cmd.Context(), args[0], sources)
			if err != nil {
				return fmt.Errorf("citations: %w", err)
			}
			printAnswer(cmd, answer)
			return nil
		},
	}
	cmd.Flags().IntVar(&numSources, "sources", 5, "Number of fused search results to cite")
	return cmd
}
