package model

import "strings"

// Section is a titled region of narrative text produced by the section
// splitter. Sections appear in document order; concatenating the headings
// and content of all sections reconstructs the source text up to whitespace
// normalization.
type Section struct {
	// Heading is the section title. Empty for preamble content or for text
	// that carried no recognizable section marker.
	Heading string `json:"heading"`

	// Content is the section body with normalized line endings. Paragraphs
	// within the body are separated by blank lines.
	Content string `json:"content"`
}

// IsEmpty reports whether the section has neither heading nor content.
// Empty sections produce no slides.
func (s Section) IsEmpty() bool {
	return strings.TrimSpace(s.Heading) == "" && strings.TrimSpace(s.Content) == ""
}

// WordCount returns the number of words in the section content.
func (s Section) WordCount() int {
	return countWords(s.Content)
}
