package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/movieretrieval/internal/index"
	"github.com/Aman-CERP/movieretrieval/internal/textnorm"
)

// newTermCmds builds the per-term scoring-primitive introspection verbs:
// tf, idf, tfidf, bm25idf, bm25tf. Each normalizes its term argument the
// same way a query token would be before looking it up in the index.
func newTermCmds() []*cobra.Command {
	return []*cobra.Command{
		newTermCmd("tf", "Raw term frequency of <term> in document <doc-id>", true,
			func(idx *index.Index, _ *textnorm.Normalizer, docID int, term string) float64 {
				return float64(idx.TF(docID, term))
			}),
		newTermCmd("idf", "Inverse document frequency of <term>", false,
			func(idx *index.Index, _ *textnorm.Normalizer, _ int, term string) float64 {
				return idx.IDF(term)
			}),
		newTermCmd("tfidf", "TF * IDF of <term> in document <doc-id>", true,
			func(idx *index.Index, _ *textnorm.Normalizer, docID int, term string) float64 {
				return idx.TFIDF(docID, term)
			}),
		newTermCmd("bm25idf", "BM25 inverse document frequency of <term>", false,
			func(idx *index.Index, _ *textnorm.Normalizer, _ int, term string) float64 {
				return idx.BM25IDF(term)
			}),
		newTermCmd("bm25tf", "BM25 length-normalized term frequency of <term> in document <doc-id>", true,
			func(idx *index.Index, _ *textnorm.Normalizer, docID int, term string) float64 {
				return idx.BM25TFDefault(docID, term)
			}),
	}
}

// newTermCmd builds one per-term command. requiresDocID selects between
// "<verb> <doc-id> <term>" and "<verb> <term>" argument shapes.
func newTermCmd(name, short string, requiresDocID bool, fn func(idx *index.Index, norm *textnorm.Normalizer, docID int, term string) float64) *cobra.Command {
	use := name + " <term>"
	args := cobra.ExactArgs(1)
	if requiresDocID {
		use = name + " <doc-id> <term>"
		args = cobra.ExactArgs(2)
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			docs, norm, err := loadCatalog()
			if err != nil {
				return err
			}
			idx, err := loadBM25Index(docs, norm)
			if err != nil {
				return fmt.Errorf("loading bm25 index: %w", err)
			}

			var docID int
			rawTerm := cmdArgs[0]
			if requiresDocID {
				docID, err = strconv.Atoi(cmdArgs[0])
				if err != nil {
					return fmt.Errorf("invalid doc-id %q: %w", cmdArgs[0], err)
				}
				rawTerm = cmdArgs[1]
			}

			term := norm.NormalizeTerm(rawTerm)
			fmt.Fprintf(cmd.OutOrStdout(), "%v\n", fn(idx, norm, docID, term))
			return nil
		},
	}
}
