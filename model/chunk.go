package model

import "unicode"

// Chunk is one viewport-sized piece of a section's content, produced by the
// pagination engine. The chunks of a section concatenate back to that
// section's content up to whitespace normalization.
type Chunk struct {
	// Text is the chunk body. Paragraphs within the chunk are separated by
	// blank lines.
	Text string `json:"text"`

	// SequenceIndex is the 1-based position of the chunk within its section.
	SequenceIndex int `json:"sequence_index"`

	// SequenceTotal is the number of chunks the section produced.
	SequenceTotal int `json:"sequence_total"`

	// CharCount is the number of characters in the chunk text
	CharCount int `json:"char_count"`

	// WordCount is the number of words in the chunk text
	WordCount int `json:"word_count"`

	// Oversized marks a chunk known not to fit its viewport. Set only when
	// a single sentence exceeded every split opportunity and had to be
	// surfaced whole.
	Oversized bool `json:"oversized,omitempty"`
}

// NewChunk creates a chunk with computed text statistics. The sequence
// fields are filled by the pagination engine once the chunk count of the
// owning section is known.
func NewChunk(text string) Chunk {
	return Chunk{
		Text:      text,
		CharCount: len(text),
		WordCount: countWords(text),
	}
}

// countWords counts the number of words in text
func countWords(text string) int {
	words := 0
	inWord := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			inWord = false
		} else if !inWord {
			inWord = true
			words++
		}
	}
	return words
}
