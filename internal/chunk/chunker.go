// Package chunk splits a document's description into overlapping
// sentence windows, the unit of semantic indexing.
package chunk

import (
	"regexp"
	"strings"
)

// sentenceBoundary matches a sentence terminator followed by whitespace,
// mirroring the regex (?<=[.!?])\s+ from the reference implementation.
// Go's RE2 engine has no lookbehind, so the terminator is captured and
// re-emitted by the splitter below instead of matched via lookbehind.
var sentenceBoundary = regexp.MustCompile(`([.!?])\s+`)

// DefaultMaxChunkSize and DefaultOverlap mirror the Semantic Index's
// chunking defaults.
const (
	DefaultMaxChunkSize = 4
	DefaultOverlap      = 1
)

// Chunk splits description into sentence-window chunks of at most
// maxChunkSize sentences each, with overlap sentences carried into the
// next chunk. Empty input yields an empty (non-nil) slice.
func Chunk(description string, maxChunkSize, overlap int) []string {
	text := strings.TrimSpace(description)
	if text == "" {
		return []string{}
	}

	sentences := splitSentences(text)

	if len(sentences) == 1 {
		s := strings.TrimSpace(sentences[0])
		if s != "" && !endsInTerminator(s) {
			return []string{s}
		}
	}

	chunks := make([]string, 0, len(sentences)/maxChunkSize+1)
	buf := make([]string, 0, maxChunkSize)
	pendingNew := false

	for _, s := range sentences {
		buf = append(buf, s)
		pendingNew = true
		if len(buf) == maxChunkSize {
			chunks = append(chunks, strings.Join(buf, " "))
			if overlap > 0 && overlap < len(buf) {
				buf = append([]string{}, buf[len(buf)-overlap:]...)
			} else {
				buf = buf[:0]
			}
			pendingNew = false
		}
	}

	// Only flush the trailing buffer if it holds sentences beyond the
	// carried-over overlap tail; a bare overlap carry with nothing new
	// appended after the last flush is not a distinct chunk.
	if pendingNew && len(buf) > 0 {
		chunks = append(chunks, strings.Join(buf, " "))
	}

	return chunks
}

// splitSentences splits text on sentence terminators followed by
// whitespace, keeping the terminator attached to the preceding sentence
// (equivalent to splitting on the lookbehind regex (?<=[.!?])\s+).
func splitSentences(text string) []string {
	loc := sentenceBoundary.FindAllStringSubmatchIndex(text, -1)
	if loc == nil {
		return []string{text}
	}

	sentences := make([]string, 0, len(loc)+1)
	start := 0
	for _, m := range loc {
		// m[1] is the end of the full match ("[.!?]\s+"); the terminator
		// itself ends at m[3] (the end of the captured group).
		termEnd := m[3]
		sentences = append(sentences, text[start:termEnd])
		start = m[1]
	}
	if start < len(text) {
		sentences = append(sentences, text[start:])
	}
	return sentences
}

func endsInTerminator(s string) bool {
	if s == "" {
		return false
	}
	last := s[len(s)-1]
	return last == '.' || last == '?' || last == '!'
}
