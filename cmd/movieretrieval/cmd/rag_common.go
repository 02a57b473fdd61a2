package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/movieretrieval/internal/catalog"
	"github.com/Aman-CERP/movieretrieval/internal/rag"
	"github.com/Aman-CERP/movieretrieval/pkg/searcher"
)

// fetchSources runs the RRF fusion pipeline for query and returns the top
// limit hits as RAG sources, with the full (untruncated) description
// looked up from the catalog.
func fetchSources(cmd *cobra.Command, query string, limit int) ([]rag.Source, error) {
	docs, norm, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	byID := catalog.ByID(docs)

	bm25Idx, err := loadBM25Index(docs, norm)
	if err != nil {
		return nil, fmt.Errorf("loading bm25 index: %w", err)
	}
	bm25S, err := searcher.NewBM25Searcher(searcher.WithBM25Index(bm25Idx))
	if err != nil {
		return nil, err
	}

	embedder, err := newEmbedder()
	if err != nil {
		return nil, fmt.Errorf("constructing embedder: %w", err)
	}
	defer embedder.Close()

	semIdx, err := loadSemanticIndex(cmd.Context(), docs, embedder)
	if err != nil {
		return nil, fmt.Errorf("loading semantic index: %w", err)
	}
	vecS, err := searcher.NewVectorSearcher(
		searcher.WithSearchEmbedder(embedder),
		searcher.WithSemanticIndex(semIdx),
	)
	if err != nil {
		return nil, err
	}

	fusionCfg := searcher.DefaultFusionConfig()
	fusionCfg.Method = searcher.FusionMethodRRF
	fusionCfg.RRFConstant = cfg.Fusion.RRFConstant

	fused, err := searcher.NewFusionSearcher(
		searcher.WithBM25Searcher(bm25S),
		searcher.WithVectorSearcher(vecS),
		searcher.WithFusionConfig(fusionCfg),
	)
	if err != nil {
		return nil, err
	}

	hits, err := fused.Search(cmd.Context(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("fused search: %w", err)
	}

	sources := make([]rag.Source, 0, len(hits))
	for _, h := range hits {
		description := h.Document
		if d, ok := byID[h.ID]; ok {
			description = d.Description
		}
		sources = append(sources, rag.Source{ID: h.ID, Title: h.Title, Description: description})
	}
	return sources, nil
}

func printAnswer(cmd *cobra.Command, answer rag.Answer) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, answer.Text)
	if len(answer.Sources) == 0 {
		return
	}
	fmt.Fprintln(out, "\nSources:")
	for i, s := range answer.Sources {
		fmt.Fprintf(out, "  [%d] %s (id=%d)\n", i+1, s.Title, s.ID)
	}
}
