package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <text>",
		Short: "Run the normalization pipeline (lowercase, strip punctuation, drop stopwords, stem) over text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, norm, err := loadCatalog()
			if err != nil {
				return err
			}
			terms := norm.Normalize(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(terms, " "))
			return nil
		},
	}
}
