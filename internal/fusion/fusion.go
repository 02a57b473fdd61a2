// Package fusion combines two ranked result lists — one from the
// inverted index's BM25 search, one from the semantic index's cosine
// search — into a single ranked list, via weighted-normalized fusion or
// Reciprocal Rank Fusion (RRF).
package fusion

import "sort"

// Candidate is the common shape of a single entry in either input list:
// a document id/title/preview plus that list's own raw score.
type Candidate struct {
	ID       int
	Title    string
	Document string
	Score    float64
}

// WeightedHit is a fusion result produced by Weighted: the hybrid score
// plus the normalized per-list sub-scores that produced it.
type WeightedHit struct {
	ID          int
	Title       string
	Document    string
	HybridScore float64
	BM25Score   float64
	SemScore    float64
}

// RRFHit is a fusion result produced by RRF: the accumulated RRF score
// plus the 1-based rank (0 if absent) in each source list.
type RRFHit struct {
	ID       int
	Title    string
	Document string
	RRFScore float64
	BM25Rank int
	SemRank  int
}

// DefaultAlpha and DefaultRRFConstant are the fusion defaults.
const (
	DefaultAlpha       = 0.5
	DefaultRRFConstant = 60
)

// NormalizeScores min-max normalizes scores into [0,1]. If every score is
// equal (including the single- or zero-element case), every normalized
// score is 1.0.
func NormalizeScores(scores []float64) []float64 {
	out := make([]float64, len(scores))
	if len(scores) == 0 {
		return out
	}

	min, max := scores[0], scores[0]
	for _, s := range scores {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}

	if min == max {
		for i := range out {
			out[i] = 1.0
		}
		return out
	}

	for i, s := range scores {
		out[i] = (s - min) / (max - min)
	}
	return out
}

// HybridScore combines a normalized BM25 score and a normalized semantic
// score: alpha*bm25 + (1-alpha)*sem.
func HybridScore(bm25Score, semScore, alpha float64) float64 {
	return alpha*bm25Score + (1-alpha)*semScore
}

// Weighted fuses bm25 and sem by min-max normalizing each list's raw
// scores, taking the best normalized score per list for each document id
// (0 if the document is absent from that list), combining via
// HybridScore, and returning the top limit documents sorted descending.
func Weighted(bm25, sem []Candidate, alpha float64, limit int) []WeightedHit {
	bm25Scores := NormalizeScores(extractScores(bm25))
	semScores := NormalizeScores(extractScores(sem))

	type acc struct {
		title, document     string
		bm25Score, semScore float64
	}
	docs := make(map[int]*acc)

	for i, c := range bm25 {
		a, ok := docs[c.ID]
		if !ok {
			a = &acc{title: c.Title, document: c.Document}
			docs[c.ID] = a
		}
		if bm25Scores[i] > a.bm25Score {
			a.bm25Score = bm25Scores[i]
		}
	}
	for i, c := range sem {
		a, ok := docs[c.ID]
		if !ok {
			a = &acc{title: c.Title, document: c.Document}
			docs[c.ID] = a
		}
		if semScores[i] > a.semScore {
			a.semScore = semScores[i]
		}
	}

	hits := make([]WeightedHit, 0, len(docs))
	for id, a := range docs {
		hits = append(hits, WeightedHit{
			ID:          id,
			Title:       a.title,
			Document:    a.document,
			BM25Score:   a.bm25Score,
			SemScore:    a.semScore,
			HybridScore: HybridScore(a.bm25Score, a.semScore, alpha),
		})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].HybridScore != hits[j].HybridScore {
			return hits[i].HybridScore > hits[j].HybridScore
		}
		return hits[i].ID < hits[j].ID
	})

	if limit > 0 && limit < len(hits) {
		hits = hits[:limit]
	}
	return hits
}

// RRF fuses bm25 and sem by Reciprocal Rank Fusion: each document's score
// is the sum, over lists it appears in, of 1/(k+rank), where rank is the
// document's 1-based position (first occurrence wins) in that list.
func RRF(bm25, sem []Candidate, k int, limit int) []RRFHit {
	type acc struct {
		title, document string
		score           float64
		bm25Rank        int
		semRank         int
	}
	docs := make(map[int]*acc)
	order := make([]int, 0)

	addList := func(list []Candidate, assignRank func(a *acc, rank int)) {
		firstRank := make(map[int]int)
		for i, c := range list {
			rank := i + 1
			if _, ok := firstRank[c.ID]; !ok {
				firstRank[c.ID] = rank
			}
		}
		for id, rank := range firstRank {
			a, ok := docs[id]
			if !ok {
				// Find title/document from the first occurrence in list.
				for _, c := range list {
					if c.ID == id {
						a = &acc{title: c.Title, document: c.Document}
						break
					}
				}
				docs[id] = a
				order = append(order, id)
			}
			a.score += 1.0 / float64(k+rank)
			assignRank(a, rank)
		}
	}

	addList(bm25, func(a *acc, rank int) { a.bm25Rank = rank })
	addList(sem, func(a *acc, rank int) { a.semRank = rank })

	hits := make([]RRFHit, 0, len(docs))
	for _, id := range order {
		a := docs[id]
		hits = append(hits, RRFHit{
			ID:       id,
			Title:    a.title,
			Document: a.document,
			RRFScore: a.score,
			BM25Rank: a.bm25Rank,
			SemRank:  a.semRank,
		})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].RRFScore != hits[j].RRFScore {
			return hits[i].RRFScore > hits[j].RRFScore
		}
		return hits[i].ID < hits[j].ID
	})

	if limit > 0 && limit < len(hits) {
		hits = hits[:limit]
	}
	return hits
}

func extractScores(cands []Candidate) []float64 {
	out := make([]float64, len(cands))
	for i, c := range cands {
		out[i] = c.Score
	}
	return out
}
