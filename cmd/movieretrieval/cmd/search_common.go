package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Aman-CERP/movieretrieval/pkg/searcher"
)

// searchFlags are the flags shared by every search verb.
type searchFlags struct {
	limit int
}

func addSearchFlags(flags *searchFlags, fs *pflag.FlagSet) {
	fs.IntVar(&flags.limit, "limit", 10, "Maximum number of results to return")
}

func printResults(w io.Writer, results []searcher.Result) {
	if len(results) == 0 {
		fmt.Fprintln(w, "no results")
		return
	}
	for i, r := range results {
		fmt.Fprintf(w, "%2d. [%5.3f] %s (id=%d)\n    %s\n", i+1, r.Score, r.Title, r.ID, r.Document)
	}
}

// buildHybridSearchers loads the catalog and both indexes, then wraps
// them in the BM25Searcher/VectorSearcher facades fusion commands compose.
func buildHybridSearchers(cmd *cobra.Command) (searcher.Searcher, searcher.Searcher, error) {
	docs, norm, err := loadCatalog()
	if err != nil {
		return nil, nil, err
	}

	bm25Idx, err := loadBM25Index(docs, norm)
	if err != nil {
		return nil, nil, fmt.Errorf("loading bm25 index: %w", err)
	}
	bm25S, err := searcher.NewBM25Searcher(searcher.WithBM25Index(bm25Idx))
	if err != nil {
		return nil, nil, err
	}

	embedder, err := newEmbedder()
	if err != nil {
		return nil, nil, fmt.Errorf("constructing embedder: %w", err)
	}

	semIdx, err := loadSemanticIndex(cmd.Context(), docs, embedder)
	if err != nil {
		return nil, nil, fmt.Errorf("loading semantic index: %w", err)
	}
	vecS, err := searcher.NewVectorSearcher(
		searcher.WithSearchEmbedder(embedder),
		searcher.WithSemanticIndex(semIdx),
	)
	if err != nil {
		return nil, nil, err
	}

	return bm25S, vecS, nil
}
