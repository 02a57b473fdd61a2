package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkEmptyInput(t *testing.T) {
	assert.Equal(t, []string{}, Chunk("", 4, 1))
	assert.Equal(t, []string{}, Chunk("   ", 4, 1))
}

func TestChunkSlidingWindowExample(t *testing.T) {
	got := Chunk("One. Two. Three. Four. Five.", 2, 1)
	want := []string{"One. Two.", "Two. Three.", "Three. Four.", "Four. Five."}
	assert.Equal(t, want, got)
}

func TestChunkNoOverlapPartitionsWithNoLoss(t *testing.T) {
	got := Chunk("One. Two. Three. Four. Five.", 2, 0)
	want := []string{"One. Two.", "Three. Four.", "Five."}
	assert.Equal(t, want, got)
}

func TestChunkSingleUnterminatedSentence(t *testing.T) {
	got := Chunk("A bear travels to London", 4, 1)
	assert.Equal(t, []string{"A bear travels to London"}, got)
}

func TestChunkDefaults(t *testing.T) {
	assert.Equal(t, 4, DefaultMaxChunkSize)
	assert.Equal(t, 1, DefaultOverlap)
}
