package model

import "strings"

// SpanKind classifies a formatted run of slide text
type SpanKind int

const (
	// SpanPlain is body text with no special treatment.
	SpanPlain SpanKind = iota
	// SpanStrong marks text rendered with strong weight: inline headings,
	// parenthesized asides, percentages and scores.
	SpanStrong
	// SpanEmphasis marks text rendered with emphasis, such as quoted phrases.
	SpanEmphasis
	// SpanCitation marks a reference to a classical source text.
	SpanCitation
)

// String returns a human-readable representation of the span kind
func (k SpanKind) String() string {
	switch k {
	case SpanPlain:
		return "plain"
	case SpanStrong:
		return "strong"
	case SpanEmphasis:
		return "emphasis"
	case SpanCitation:
		return "citation"
	default:
		return "unknown"
	}
}

// Span is a contiguous run of slide text carrying one rendering treatment.
// Spans are rendering hints only; renderers style them but never re-parse
// their text.
type Span struct {
	// Kind is the rendering treatment for this run
	Kind SpanKind `json:"kind"`

	// Text is the run content with markup characters already removed
	Text string `json:"text"`
}

// FlattenSpans concatenates span text in order, discarding formatting.
func FlattenSpans(spans []Span) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// SlideDescriptor describes one renderable slide: identity, navigation
// grouping, display strings and paginated content.
type SlideDescriptor struct {
	// ID uniquely identifies the slide within its deck. IDs are stable
	// across recomputation for unchanged input.
	ID string `json:"id"`

	// Topic is the owning section heading, used for navigation grouping.
	Topic string `json:"topic"`

	// Title is the deck title shared by every slide.
	Title string `json:"title"`

	// Subtitle is the section heading, suffixed with "(i/N)" when the
	// section spans more than one slide.
	Subtitle string `json:"subtitle"`

	// Content is the chunk this slide renders.
	Content Chunk `json:"content"`

	// Spans is the formatted run list for Content.Text. Nil until a
	// formatting pass fills it.
	Spans []Span `json:"spans,omitempty"`
}
