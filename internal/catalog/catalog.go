// Package catalog loads the movie document set, the stopword list, and the
// golden evaluation dataset from the on-disk corpus.
package catalog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Document is an immutable catalog record: a unique integer id, a title,
// and a description. Loaded once per process from a JSON catalog file.
type Document struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// catalogFile mirrors the on-disk JSON shape: {"movies": [...]}.
type catalogFile struct {
	Movies []Document `json:"movies"`
}

// LoadDocuments reads the JSON catalog file at path and returns its
// documents in file order. Ids must be unique; an absent description is
// treated as an empty string (the zero value already satisfies this).
func LoadDocuments(path string) ([]Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	var cf catalogFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}

	seen := make(map[int]bool, len(cf.Movies))
	for _, d := range cf.Movies {
		if seen[d.ID] {
			return nil, fmt.Errorf("catalog %s: duplicate document id %d", path, d.ID)
		}
		seen[d.ID] = true
	}

	return cf.Movies, nil
}

// LoadStopwords reads a newline-delimited stopword file, one token per
// line, compared after lowercasing. Blank lines are skipped.
func LoadStopwords(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading stopwords %s: %w", path, err)
	}
	defer f.Close()

	set := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(strings.ToLower(scanner.Text()))
		if line == "" {
			continue
		}
		set[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stopwords %s: %w", path, err)
	}
	return set, nil
}

// GoldenCase is one golden-set entry: a query and the titles considered
// relevant to it.
type GoldenCase struct {
	Query        string   `json:"query"`
	RelevantDocs []string `json:"relevant_docs"`
}

// goldenFile mirrors the on-disk JSON shape: {"test_cases": [...]}.
type goldenFile struct {
	TestCases []GoldenCase `json:"test_cases"`
}

// LoadGoldenSet reads the golden evaluation dataset from path.
func LoadGoldenSet(path string) ([]GoldenCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading golden dataset %s: %w", path, err)
	}
	var gf goldenFile
	if err := json.Unmarshal(data, &gf); err != nil {
		return nil, fmt.Errorf("parsing golden dataset %s: %w", path, err)
	}
	return gf.TestCases, nil
}

// ByID indexes documents by id for O(1) lookup.
func ByID(docs []Document) map[int]Document {
	m := make(map[int]Document, len(docs))
	for _, d := range docs {
		m[d.ID] = d
	}
	return m
}
