package markup

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/pagina/model"
)

// FormatterConfig holds configuration options for the inline formatter.
type FormatterConfig struct {
	// CitationWorks lists source work titles recognized by the citation
	// pass. A title followed by a numeric locator, as in
	// "Charaka Samhita 1.5", becomes a citation span.
	CitationWorks []string
}

// DefaultFormatterConfig returns sensible default configuration
func DefaultFormatterConfig() FormatterConfig {
	return FormatterConfig{
		CitationWorks: []string{
			"Charaka Samhita",
			"Sushruta Samhita",
			"Ashtanga Hridayam",
			"Bhagavad Gita",
			"Brihat Parashara Hora Shastra",
			"Saravali",
			"Phaladeepika",
			"Brihat Jataka",
			"Jataka Parijata",
			"Hora Sara",
			"Prashna Marga",
			"Uttara Kalamrita",
			"Yoga Sutras",
			"Atharva Veda",
			"Rig Veda",
		},
	}
}

// Formatter converts narrative text into typed spans for rendering.
// A Formatter is immutable and safe for concurrent use.
type Formatter struct {
	citationRe *regexp.Regexp
}

// NewFormatter creates a formatter with default configuration
func NewFormatter() *Formatter {
	return NewFormatterWithConfig(DefaultFormatterConfig())
}

// NewFormatterWithConfig creates a formatter with custom configuration.
// Zero-value fields fall back to their defaults.
func NewFormatterWithConfig(config FormatterConfig) *Formatter {
	works := config.CitationWorks
	if len(works) == 0 {
		works = DefaultFormatterConfig().CitationWorks
	}
	return &Formatter{citationRe: compileCitationPattern(works)}
}

// headingPhraseRe matches inline heading phrases left in body text: a
// question-word-led phrase or a short Title-Case phrase, each terminated
// by a colon. The question-word form is listed first so it wins when both
// match at the same offset.
var headingPhraseRe = regexp.MustCompile(
	`\b(?:Why|What|How|Where|When|Which|Whose|Whom|Who)[^:\n]{0,60}:` +
		`|\b[A-Z][A-Za-z'’-]*(?:[ \t][A-Z][A-Za-z'’-]*){0,3}:`)

// inlineMarkRe drives the single left-to-right markup scan. Alternative
// order sets priority between patterns matching at the same offset:
// parenthesized asides, percentages, score phrases, quoted phrases, then
// a question word opening a sentence. The question-word alternative
// captures the word separately because its sentence-boundary prefix
// belongs to the surrounding plain text.
var inlineMarkRe = regexp.MustCompile(
	`(\([^)\n]+\))` +
		`|(\b\d+(?:\.\d+)?%)` +
		`|(\b\d+(?:\.\d+)?(?:[ \t][A-Za-z]+)?[ \t][Ss]cores?\b)` +
		`|("[^"\n]+"|“[^”\n]+”)` +
		`|(?:^|[.!?:][ \t]+|\n[ \t]*)((?:Why|What|How|Where|When|Which|Whose|Whom|Who)\b)`)

// Indexes into inlineMarkRe submatch pairs.
const (
	markAside = 1 + iota
	markPercent
	markScore
	markQuote
	markQuestion
)

// Format converts text into an ordered span list. Concatenating the span
// text reproduces the input with emphasis markers removed and line-start
// letters capitalized; everything else is preserved verbatim. See the
// package documentation for the passes applied.
func (f *Formatter) Format(text string) []model.Span {
	if text == "" {
		return nil
	}
	var spans []model.Span
	pos := 0
	for _, m := range headingPhraseRe.FindAllStringIndex(text, -1) {
		spans = f.formatRun(text[pos:m[0]], spans)
		spans = appendSpan(spans, model.SpanStrong, text[m[0]:m[1]])
		pos = m[1]
	}
	spans = f.formatRun(text[pos:], spans)
	return f.highlightCitations(spans)
}

// formatRun applies markdown-lite cleanup and the inline markup scan to a
// stretch of text between heading phrases.
func (f *Formatter) formatRun(run string, spans []model.Span) []model.Span {
	if run == "" {
		return spans
	}
	run = strings.ReplaceAll(run, "**", "")
	run = strings.ReplaceAll(run, "*", "")
	run = capitalizeLineStarts(run)

	pos := 0
	for _, m := range inlineMarkRe.FindAllStringSubmatchIndex(run, -1) {
		switch {
		case m[2*markAside] >= 0:
			spans = appendSpan(spans, model.SpanPlain, run[pos:m[0]])
			spans = appendSpan(spans, model.SpanStrong, capitalizeFirstLetter(run[m[0]:m[1]]))
		case m[2*markPercent] >= 0:
			spans = appendSpan(spans, model.SpanPlain, run[pos:m[0]])
			spans = appendSpan(spans, model.SpanStrong, run[m[0]:m[1]])
		case m[2*markScore] >= 0:
			spans = appendSpan(spans, model.SpanPlain, run[pos:m[0]])
			spans = appendSpan(spans, model.SpanStrong, run[m[0]:m[1]])
		case m[2*markQuote] >= 0:
			spans = appendSpan(spans, model.SpanPlain, run[pos:m[0]])
			spans = appendSpan(spans, model.SpanEmphasis, capitalizeFirstLetter(run[m[0]:m[1]]))
		case m[2*markQuestion] >= 0:
			// The sentence boundary before the word stays plain.
			start := m[2*markQuestion]
			spans = appendSpan(spans, model.SpanPlain, run[pos:start])
			spans = appendSpan(spans, model.SpanStrong, run[start:m[2*markQuestion+1]])
		}
		pos = m[1]
	}
	return appendSpan(spans, model.SpanPlain, run[pos:])
}

func appendSpan(spans []model.Span, kind model.SpanKind, text string) []model.Span {
	if text == "" {
		return spans
	}
	return append(spans, model.Span{Kind: kind, Text: text})
}

// capitalizeLineStarts uppercases the first rune of each line when it is
// a lowercase letter. Lines opening with anything else are left alone.
func capitalizeLineStarts(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		r, size := utf8.DecodeRuneInString(line)
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			lines[i] = string(unicode.ToUpper(r)) + line[size:]
		}
	}
	return strings.Join(lines, "\n")
}

// capitalizeFirstLetter uppercases the first letter in s, skipping any
// leading glyphs such as parentheses or quotation marks.
func capitalizeFirstLetter(s string) string {
	for i, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		if unicode.IsUpper(r) {
			return s
		}
		return s[:i] + string(unicode.ToUpper(r)) + s[i+utf8.RuneLen(r):]
	}
	return s
}
