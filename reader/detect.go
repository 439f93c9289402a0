package reader

import (
	"bytes"
	"regexp"
)

// Kind identifies the markup family of a text payload.
type Kind int

const (
	// KindPlain is narrative text without markup structure.
	KindPlain Kind = iota
	// KindMarkdown is Markdown-structured text.
	KindMarkdown
	// KindHTML is an HTML document or fragment.
	KindHTML
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindMarkdown:
		return "markdown"
	case KindHTML:
		return "html"
	default:
		return "plain"
	}
}

var (
	// A structural tag opening the payload marks it as HTML. Stray angle
	// brackets inside prose do not.
	htmlOpeningTagRe = regexp.MustCompile(`(?i)^<(?:!doctype\b|html\b|head\b|body\b|article\b|section\b|div\b|p\b|h[1-6]\b|ul\b|ol\b|li\b|br\b|blockquote\b)`)

	atxHeadingRe = regexp.MustCompile(`(?m)^#{1,6}[ \t]+\S`)
	codeFenceRe  = regexp.MustCompile("(?m)^```")
)

// DetectKind inspects a payload and reports its markup family. HTML needs
// a structural tag at the start of the payload; Markdown needs an ATX
// heading line or a code fence. Everything else, including narrative text
// with bullet lines or SECTION markers, is plain and belongs to the
// section splitter.
func DetectKind(data []byte) Kind {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if htmlOpeningTagRe.Match(trimmed) {
		return KindHTML
	}
	if atxHeadingRe.Match(data) || codeFenceRe.Match(data) {
		return KindMarkdown
	}
	return KindPlain
}
