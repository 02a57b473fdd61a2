package index

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Aman-CERP/movieretrieval/internal/catalog"
	engineerrors "github.com/Aman-CERP/movieretrieval/internal/engineerrors"
)

// artifactVersion is bumped whenever the on-disk shape of the four
// artifacts changes, forcing a rebuild instead of a silently-corrupt load.
const artifactVersion = 1

const (
	postingsArtifact        = "postings.gob"
	docMapArtifact          = "doc_map.gob"
	termFrequenciesArtifact = "term_frequencies.gob"
	docLengthsArtifact      = "doc_lengths.gob"
)

// onDiskIndex is the postings artifact: each posting set is stored as a
// slice of doc ids (in no particular order), alongside the format version.
type onDiskIndex struct {
	Version   int
	Postings  map[string][]int
	TotalDocs int
	AvgLen    float64
}

// Save persists the four inverted-index artifacts to dir, creating it if
// necessary.
func (idx *Index) Save(dir string) error {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating cache dir %s: %w", dir, err)
	}

	postings := make(map[string][]int, len(idx.postings))
	for term, set := range idx.postings {
		ids := make([]int, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		postings[term] = ids
	}
	onDisk := onDiskIndex{
		Version:   artifactVersion,
		Postings:  postings,
		TotalDocs: idx.totalDocs,
		AvgLen:    idx.avgLen,
	}

	if err := saveGob(filepath.Join(dir, postingsArtifact), onDisk); err != nil {
		return err
	}
	if err := saveGob(filepath.Join(dir, docMapArtifact), idx.docs); err != nil {
		return err
	}
	if err := saveGob(filepath.Join(dir, termFrequenciesArtifact), idx.termFrequencies); err != nil {
		return err
	}
	if err := saveGob(filepath.Join(dir, docLengthsArtifact), idx.docLengths); err != nil {
		return err
	}
	return nil
}

// Load reads the four inverted-index artifacts from dir. Fails with
// CacheMissing if any artifact is absent; no partial loads.
func (idx *Index) Load(dir string) error {
	for _, name := range []string{postingsArtifact, docMapArtifact, termFrequenciesArtifact, docLengthsArtifact} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			return engineerrors.CacheMissing(path)
		}
	}

	var onDisk onDiskIndex
	if err := loadGob(filepath.Join(dir, postingsArtifact), &onDisk); err != nil {
		return err
	}
	if onDisk.Version != artifactVersion {
		return engineerrors.CacheStale(fmt.Sprintf("postings artifact version %d, expected %d", onDisk.Version, artifactVersion))
	}

	var docs map[int]catalog.Document
	if err := loadGob(filepath.Join(dir, docMapArtifact), &docs); err != nil {
		return err
	}
	var termFrequencies map[int]map[string]int
	if err := loadGob(filepath.Join(dir, termFrequenciesArtifact), &termFrequencies); err != nil {
		return err
	}
	var docLengths map[int]int
	if err := loadGob(filepath.Join(dir, docLengthsArtifact), &docLengths); err != nil {
		return err
	}

	postings := make(map[string]map[int]struct{}, len(onDisk.Postings))
	for term, ids := range onDisk.Postings {
		set := make(map[int]struct{}, len(ids))
		for _, id := range ids {
			set[id] = struct{}{}
		}
		postings[term] = set
	}

	var totalLen int
	for _, l := range docLengths {
		totalLen += l
	}
	var avgLen float64
	if onDisk.TotalDocs > 0 {
		avgLen = float64(totalLen) / float64(onDisk.TotalDocs)
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.postings = postings
	idx.docs = docs
	idx.termFrequencies = termFrequencies
	idx.docLengths = docLengths
	idx.totalDocs = onDisk.TotalDocs
	idx.avgLen = avgLen
	return nil
}

func saveGob(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating artifact %s: %w", path, err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(v); err != nil {
		return fmt.Errorf("encoding artifact %s: %w", path, err)
	}
	return nil
}

func loadGob(path string, v interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening artifact %s: %w", path, err)
	}
	defer f.Close()
	if err := gob.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("decoding artifact %s: %w", path, err)
	}
	return nil
}
