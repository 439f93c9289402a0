package text

import "strings"

// Paragraphs splits narrative text into paragraphs. A paragraph is a
// maximal run of non-blank lines; blank lines separate paragraphs. The
// input is normalized first, so callers may pass raw text. Each returned
// paragraph is trimmed but keeps its internal line breaks. Empty input
// returns nil.
func Paragraphs(s string) []string {
	s = Normalize(s)
	if s == "" {
		return nil
	}

	parts := strings.Split(s, "\n\n")
	paras := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			paras = append(paras, p)
		}
	}
	return paras
}

// JoinParagraphs is the inverse of Paragraphs: it joins paragraphs with a
// single blank line.
func JoinParagraphs(paras []string) string {
	return strings.Join(paras, "\n\n")
}
