package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDocuments(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "movies.json", `{"movies":[
		{"id":1,"title":"Brave","description":"Merida is a headstrong Scottish princess."},
		{"id":2,"title":"Paddington","description":"A bear travels to London."}
	]}`)

	docs, err := LoadDocuments(path)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "Brave", docs[0].Title)
	assert.Equal(t, "Paddington", docs[1].Title)
}

func TestLoadDocumentsRejectsDuplicateIDs(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "movies.json", `{"movies":[
		{"id":1,"title":"A","description":""},
		{"id":1,"title":"B","description":""}
	]}`)

	_, err := LoadDocuments(path)
	assert.Error(t, err)
}

func TestLoadStopwords(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "stopwords.txt", "The\na\n\nAND\n")

	set, err := LoadStopwords(path)
	require.NoError(t, err)
	assert.Contains(t, set, "the")
	assert.Contains(t, set, "a")
	assert.Contains(t, set, "and")
	assert.Len(t, set, 3)
}

func TestLoadGoldenSet(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "golden.json", `{"test_cases":[
		{"query":"superhero team movie","relevant_docs":["The Incredibles"]}
	]}`)

	cases, err := LoadGoldenSet(path)
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, "superhero team movie", cases[0].Query)
}

func TestByID(t *testing.T) {
	docs := []Document{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}}
	idx := ByID(docs)
	assert.Equal(t, "A", idx[1].Title)
	assert.Equal(t, "B", idx[2].Title)
}
