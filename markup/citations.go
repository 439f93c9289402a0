package markup

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tsawler/pagina/model"
)

// locatorPattern matches a chapter or verse locator: dotted levels with an
// optional range, as in "1.5", "12.4-12.8" or "2".
const locatorPattern = `\d+(?:\.\d+)*(?:[ \t]*[-–—][ \t]*\d+(?:\.\d+)*)?`

// compileCitationPattern builds the citation matcher for a set of work
// titles. Longer titles are tried first so a title that extends another
// is not cut short.
func compileCitationPattern(works []string) *regexp.Regexp {
	sorted := make([]string, len(works))
	copy(sorted, works)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	for i, w := range sorted {
		sorted[i] = regexp.QuoteMeta(w)
	}
	pattern := `\b(?:(?:` + strings.Join(sorted, `|`) + `)[ \t]+)+` + locatorPattern +
		`|(?:[A-Z]\.){2,}[ \t]+` + locatorPattern +
		`|\b[Vv]erses?[ \t]+` + locatorPattern +
		`|\b[Ss]h?lokas?[ \t]+` + locatorPattern
	return regexp.MustCompile(pattern)
}

// highlightCitations rewrites plain spans so recognized citations become
// citation spans. A strong span that is nothing but a citation is
// unwrapped; emphasis spans and mixed strong spans pass through untouched.
func (f *Formatter) highlightCitations(spans []model.Span) []model.Span {
	out := make([]model.Span, 0, len(spans))
	for _, s := range spans {
		switch {
		case s.Kind == model.SpanPlain:
			out = f.markCitations(s.Text, out)
		case s.Kind == model.SpanStrong && f.isSoleCitation(s.Text):
			out = append(out, model.Span{Kind: model.SpanCitation, Text: s.Text})
		default:
			out = append(out, s)
		}
	}
	return out
}

func (f *Formatter) markCitations(text string, spans []model.Span) []model.Span {
	pos := 0
	for _, m := range f.citationRe.FindAllStringIndex(text, -1) {
		spans = appendSpan(spans, model.SpanPlain, text[pos:m[0]])
		spans = appendSpan(spans, model.SpanCitation, text[m[0]:m[1]])
		pos = m[1]
	}
	return appendSpan(spans, model.SpanPlain, text[pos:])
}

// isSoleCitation reports whether text is a single citation and nothing
// else, after trimming whitespace and one wrapping parenthesis pair.
func (f *Formatter) isSoleCitation(text string) bool {
	inner := strings.TrimSpace(text)
	if len(inner) >= 2 && strings.HasPrefix(inner, "(") && strings.HasSuffix(inner, ")") {
		inner = strings.TrimSpace(inner[1 : len(inner)-1])
	}
	m := f.citationRe.FindStringIndex(inner)
	return m != nil && m[0] == 0 && m[1] == len(inner)
}
