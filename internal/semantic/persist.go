package semantic

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/Aman-CERP/movieretrieval/internal/catalog"
	engineerrors "github.com/Aman-CERP/movieretrieval/internal/engineerrors"
)

const (
	embeddingsArtifact = "chunk_embeddings.bin"
	metadataArtifact   = "chunk_metadata.json"
)

// metadataFile mirrors the on-disk JSON shape documented for
// chunk_metadata.json: {"dim": D, "total_chunks": N, "chunks": [...]}.
type metadataFile struct {
	Dim         int         `json:"dim"`
	TotalChunks int         `json:"total_chunks"`
	Chunks      []ChunkMeta `json:"chunks"`
}

// Save persists the embedding matrix as a raw row-major float32 binary
// file and the chunk metadata as JSON, to dir.
func (idx *Index) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating cache dir %s: %w", dir, err)
	}

	f, err := os.Create(filepath.Join(dir, embeddingsArtifact))
	if err != nil {
		return fmt.Errorf("creating %s: %w", embeddingsArtifact, err)
	}
	defer f.Close()

	for _, row := range idx.matrix {
		for _, v := range row {
			if err := binary.Write(f, binary.LittleEndian, v); err != nil {
				return fmt.Errorf("writing %s: %w", embeddingsArtifact, err)
			}
		}
	}

	meta := metadataFile{
		Dim:         idx.dim,
		TotalChunks: len(idx.metadata),
		Chunks:      idx.metadata,
	}
	data, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", metadataArtifact, err)
	}
	if err := os.WriteFile(filepath.Join(dir, metadataArtifact), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", metadataArtifact, err)
	}
	return nil
}

// Load reads the embedding matrix and metadata from dir, rebuilding the
// document lookup from docs. Fails with CacheMissing if either artifact
// is absent, and CacheStale if the matrix row count disagrees with the
// metadata row count.
func (idx *Index) Load(dir string, docs []catalog.Document) error {
	metaPath := filepath.Join(dir, metadataArtifact)
	binPath := filepath.Join(dir, embeddingsArtifact)

	metaData, err := os.ReadFile(metaPath)
	if err != nil {
		return engineerrors.CacheMissing(metaPath)
	}
	var meta metadataFile
	if err := json.Unmarshal(metaData, &meta); err != nil {
		return engineerrors.CacheStale(fmt.Sprintf("invalid metadata json: %v", err))
	}

	binData, err := os.ReadFile(binPath)
	if err != nil {
		return engineerrors.CacheMissing(binPath)
	}

	if meta.Dim <= 0 {
		idx.docs = catalog.ByID(docs)
		idx.matrix = nil
		idx.metadata = nil
		idx.dim = 0
		return nil
	}

	floatsPerRow := meta.Dim
	bytesPerRow := floatsPerRow * 4
	if len(binData)%bytesPerRow != 0 {
		return engineerrors.CacheStale("embedding matrix byte length is not a multiple of row width")
	}
	numRows := len(binData) / bytesPerRow
	if numRows != len(meta.Chunks) {
		return engineerrors.CacheStale(fmt.Sprintf("matrix has %d rows but metadata has %d", numRows, len(meta.Chunks)))
	}

	matrix := make([][]float32, numRows)
	for r := 0; r < numRows; r++ {
		row := make([]float32, floatsPerRow)
		for c := 0; c < floatsPerRow; c++ {
			offset := r*bytesPerRow + c*4
			bits := binary.LittleEndian.Uint32(binData[offset : offset+4])
			row[c] = math.Float32frombits(bits)
		}
		matrix[r] = row
	}

	idx.docs = catalog.ByID(docs)
	idx.matrix = matrix
	idx.metadata = meta.Chunks
	idx.dim = meta.Dim
	return nil
}
