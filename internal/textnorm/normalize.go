// Package textnorm implements the text normalization pipeline shared by
// every place that looks up a term: lowercase, strip ASCII punctuation,
// split on whitespace, drop stopwords, apply Porter stemming.
package textnorm

import (
	"strings"

	porterstemmer "github.com/blevesearch/go-porterstemmer"
)

// asciiPunctuation is every ASCII punctuation character stripped before
// tokenization, matching string.punctuation in the reference implementation.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var punctuationStripper = strings.NewReplacer(punctuationPairs()...)

func punctuationPairs() []string {
	pairs := make([]string, 0, len(asciiPunctuation)*2)
	for _, r := range asciiPunctuation {
		pairs = append(pairs, string(r), "")
	}
	return pairs
}

// Normalizer applies the text normalization pipeline against a fixed
// stopword set.
type Normalizer struct {
	stopwords map[string]struct{}
}

// New creates a Normalizer over the given stopword set. A nil set is
// treated as empty.
func New(stopwords map[string]struct{}) *Normalizer {
	if stopwords == nil {
		stopwords = map[string]struct{}{}
	}
	return &Normalizer{stopwords: stopwords}
}

// Normalize lowercases text, strips ASCII punctuation, splits on
// whitespace, drops stopwords, and Porter-stems what remains. Terms are
// returned in original order; duplicates are preserved. Empty input
// yields an empty (non-nil) slice, never an error.
func (n *Normalizer) Normalize(text string) []string {
	cleaned := punctuationStripper.Replace(strings.ToLower(text))
	fields := strings.Fields(cleaned)

	terms := make([]string, 0, len(fields))
	for _, tok := range fields {
		if tok == "" {
			continue
		}
		if _, stop := n.stopwords[tok]; stop {
			continue
		}
		terms = append(terms, porterstemmer.StemString(tok))
	}
	return terms
}

// NormalizeTerm normalizes a single caller-supplied term the same way a
// query token would be, for callers like the per-term CLI introspection
// commands. If the input normalizes to several terms, only the first is
// returned. Returns "" if the term normalizes away to nothing (e.g. it
// was a bare stopword).
func (n *Normalizer) NormalizeTerm(term string) string {
	terms := n.Normalize(term)
	if len(terms) == 0 {
		return ""
	}
	return terms[0]
}
