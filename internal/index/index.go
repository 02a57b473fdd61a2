// Package index implements the inverted index and BM25 scorer: persistent
// posting lists, per-document term frequencies, document lengths, and the
// BM25 scoring primitives built on top of them.
package index

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/Aman-CERP/movieretrieval/internal/catalog"
	engineerrors "github.com/Aman-CERP/movieretrieval/internal/engineerrors"
	"github.com/Aman-CERP/movieretrieval/internal/textnorm"
)

// DefaultK1 and DefaultB are the BM25 tuning defaults.
const (
	DefaultK1 = 1.5
	DefaultB  = 0.75

	// DocumentPreviewLimit truncates a document's body in result records.
	DocumentPreviewLimit = 100
)

// Hit is the result record returned by BM25Search: a document's id, title,
// a truncated preview of its body, and its BM25 score.
type Hit struct {
	ID       int
	Title    string
	Document string
	Score    float64
}

// Index is the inverted index + BM25 scorer. Safe for concurrent reads;
// Build/Load must not race with Search.
type Index struct {
	mu sync.RWMutex

	norm *textnorm.Normalizer
	k1   float64
	b    float64

	postings        map[string]map[int]struct{} // term -> set of doc ids
	termFrequencies map[int]map[string]int       // doc_id -> term -> count
	docLengths      map[int]int                  // doc_id -> token count
	docs            map[int]catalog.Document

	totalDocs int
	avgLen    float64
}

// Option configures an Index at construction time.
type Option func(*Index)

// WithBM25Params overrides the default BM25 k1/b tuning parameters.
func WithBM25Params(k1, b float64) Option {
	return func(idx *Index) {
		idx.k1 = k1
		idx.b = b
	}
}

// New creates an empty Index bound to the given normalizer.
func New(norm *textnorm.Normalizer, opts ...Option) *Index {
	idx := &Index{
		norm:            norm,
		k1:              DefaultK1,
		b:               DefaultB,
		postings:        make(map[string]map[int]struct{}),
		termFrequencies: make(map[int]map[string]int),
		docLengths:      make(map[int]int),
		docs:            make(map[int]catalog.Document),
	}
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// Build indexes docs: for each document it normalizes "title description",
// updates postings, per-document term counts, and the length map. Rejects
// an empty corpus with EmptyCorpus.
func (idx *Index) Build(docs []catalog.Document) error {
	if len(docs) == 0 {
		return engineerrors.EmptyCorpus()
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.postings = make(map[string]map[int]struct{})
	idx.termFrequencies = make(map[int]map[string]int)
	idx.docLengths = make(map[int]int)
	idx.docs = make(map[int]catalog.Document, len(docs))

	var totalLen int
	for _, d := range docs {
		idx.docs[d.ID] = d
		terms := idx.norm.Normalize(d.Title + " " + d.Description)

		counts := make(map[string]int, len(terms))
		for _, t := range terms {
			counts[t]++
			if idx.postings[t] == nil {
				idx.postings[t] = make(map[int]struct{})
			}
			idx.postings[t][d.ID] = struct{}{}
		}
		idx.termFrequencies[d.ID] = counts
		idx.docLengths[d.ID] = len(terms)
		totalLen += len(terms)
	}

	idx.totalDocs = len(docs)
	idx.avgLen = float64(totalLen) / float64(idx.totalDocs)
	return nil
}

// TF returns the raw term frequency of term in document docID, 0 if absent.
func (idx *Index) TF(docID int, term string) int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.termFrequencies[docID][term]
}

// DF returns the document frequency of term: the number of documents whose
// postings contain it.
func (idx *Index) DF(term string) int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.postings[term])
}

// IDF returns ln((N+1)/(df+1)), smoothed so it is always >= 0.
func (idx *Index) IDF(term string) float64 {
	idx.mu.RLock()
	n := idx.totalDocs
	df := len(idx.postings[term])
	idx.mu.RUnlock()
	return idfFormula(n, df)
}

// TFIDF returns TF(docID, term) * IDF(term).
func (idx *Index) TFIDF(docID int, term string) float64 {
	return float64(idx.TF(docID, term)) * idx.IDF(term)
}

// BM25IDF returns ln((N - df + 0.5)/(df + 0.5) + 1), always >= 0.
func (idx *Index) BM25IDF(term string) float64 {
	idx.mu.RLock()
	n := idx.totalDocs
	df := len(idx.postings[term])
	idx.mu.RUnlock()
	return bm25IDFFormula(n, df)
}

// BM25TF returns the length-normalized term-frequency component of BM25
// for (docID, term) using the given k1/b, or the index's configured
// defaults via BM25TFDefault.
func (idx *Index) BM25TF(docID int, term string, k1, b float64) float64 {
	idx.mu.RLock()
	tf := idx.termFrequencies[docID][term]
	docLen := idx.docLengths[docID]
	avgLen := idx.avgLen
	idx.mu.RUnlock()
	return bm25TFFormula(tf, docLen, avgLen, k1, b)
}

// BM25TFDefault calls BM25TF with the index's configured k1/b.
func (idx *Index) BM25TFDefault(docID int, term string) float64 {
	return idx.BM25TF(docID, term, idx.k1, idx.b)
}

// BM25 returns BM25TFDefault(docID, term) * BM25IDF(term).
func (idx *Index) BM25(docID int, term string) float64 {
	return idx.BM25TFDefault(docID, term) * idx.BM25IDF(term)
}

// BM25Search normalizes query, builds the candidate set as the union of
// postings for each query term, scores each candidate by summed BM25 over
// the query terms actually present in the index, and returns the top
// limit hits sorted by descending score with a stable ascending-doc_id
// tie-break. An empty normalized query yields an empty result, not an
// error.
func (idx *Index) BM25Search(ctx context.Context, query string, limit int) ([]Hit, error) {
	queryTerms := idx.norm.Normalize(query)
	if len(queryTerms) == 0 {
		return []Hit{}, nil
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	candidates := make(map[int]struct{})
	for _, t := range queryTerms {
		for docID := range idx.postings[t] {
			candidates[docID] = struct{}{}
		}
	}

	scores := make(map[int]float64, len(candidates))
	for docID := range candidates {
		var score float64
		for _, t := range queryTerms {
			if _, ok := idx.postings[t][docID]; !ok {
				continue
			}
			tf := idx.termFrequencies[docID][t]
			docLen := idx.docLengths[docID]
			score += bm25TFFormula(tf, docLen, idx.avgLen, idx.k1, idx.b) *
				bm25IDFFormula(idx.totalDocs, len(idx.postings[t]))
		}
		scores[docID] = score
	}

	ids := make([]int, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if scores[ids[i]] != scores[ids[j]] {
			return scores[ids[i]] > scores[ids[j]]
		}
		return ids[i] < ids[j]
	})

	if limit > 0 && limit < len(ids) {
		ids = ids[:limit]
	}

	hits := make([]Hit, 0, len(ids))
	for _, id := range ids {
		d := idx.docs[id]
		hits = append(hits, Hit{
			ID:       id,
			Title:    d.Title,
			Document: truncate(d.Description, DocumentPreviewLimit),
			Score:    scores[id],
		})
	}
	return hits, nil
}

// Search is a plain keyword search (the original source's
// `search_command`): it returns the documents in the union of the query
// terms' postings, in ascending doc_id order, with no scoring. It does
// not call BM25Search.
func (idx *Index) Search(ctx context.Context, query string, limit int) ([]catalog.Document, error) {
	queryTerms := idx.norm.Normalize(query)
	if len(queryTerms) == 0 {
		return []catalog.Document{}, nil
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	matched := make(map[int]struct{})
	for _, t := range queryTerms {
		for docID := range idx.postings[t] {
			matched[docID] = struct{}{}
		}
	}

	ids := make([]int, 0, len(matched))
	for id := range matched {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	if limit > 0 && limit < len(ids) {
		ids = ids[:limit]
	}

	docs := make([]catalog.Document, 0, len(ids))
	for _, id := range ids {
		docs = append(docs, idx.docs[id])
	}
	return docs, nil
}

func idfFormula(n, df int) float64 {
	return math.Log(float64(n+1) / float64(df+1))
}

func bm25IDFFormula(n, df int) float64 {
	return math.Log((float64(n-df)+0.5)/(float64(df)+0.5) + 1)
}

func bm25TFFormula(tf, docLen int, avgLen, k1, b float64) float64 {
	if tf == 0 {
		return 0
	}
	denom := float64(tf) + k1*(1-b+b*float64(docLen)/avgLen)
	return float64(tf) * (k1 + 1) / denom
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}

// AvgLen returns the average document length (derived quantity,
// recomputed on load/build).
func (idx *Index) AvgLen() float64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.avgLen
}

// TotalDocs returns N, the total document count.
func (idx *Index) TotalDocs() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.totalDocs
}

// TermCount returns the number of unique terms in the postings table.
func (idx *Index) TermCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.postings)
}
