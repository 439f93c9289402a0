package text

import (
	"strings"
	"unicode"
)

// abbreviations that end with a period but do not end a sentence.
var abbreviations = map[string]bool{
	"mr.": true, "mrs.": true, "ms.": true, "dr.": true, "prof.": true,
	"sr.": true, "jr.": true, "vs.": true, "etc.": true, "e.g.": true,
	"i.e.": true, "inc.": true, "ltd.": true, "co.": true, "corp.": true,
	"st.": true, "no.": true, "vol.": true, "pp.": true, "pg.": true,
	"approx.": true, "ch.": true, "fig.": true,
}

// Sentences splits a paragraph into sentences on terminal punctuation
// (".", "!", "?"). A terminator is not treated as a sentence end when it
// is part of a common abbreviation, follows a single capital initial
// ("B. Parashara"), sits inside a decimal or dotted number ("12.4"), or is
// immediately followed by a lowercase letter. Each sentence is trimmed;
// joining the result with single spaces reproduces the paragraph up to
// whitespace normalization.
func Sentences(s string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		current.WriteRune(r)

		if r != '.' && r != '!' && r != '?' {
			continue
		}

		if i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
			continue
		}

		if r == '.' {
			// Single capital initial, as in "B. Parashara".
			if i >= 1 && unicode.IsUpper(runes[i-1]) &&
				(i < 2 || !unicode.IsLetter(runes[i-2])) {
				continue
			}

			// Decimal or dotted locator such as "12.4".
			if i >= 1 && unicode.IsDigit(runes[i-1]) &&
				i+1 < len(runes) && unicode.IsDigit(runes[i+1]) {
				continue
			}

			if endsWithAbbreviation(runes[:i+1]) {
				continue
			}
		}

		sentence := strings.TrimSpace(current.String())
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		current.Reset()
	}

	if remaining := strings.TrimSpace(current.String()); remaining != "" {
		sentences = append(sentences, remaining)
	}

	return sentences
}

// endsWithAbbreviation reports whether the text ends in a known
// abbreviation, including dotted forms like "e.g.".
func endsWithAbbreviation(runes []rune) bool {
	start := len(runes) - 1
	for start > 0 {
		prev := runes[start-1]
		if !unicode.IsLetter(prev) && prev != '.' {
			break
		}
		start--
	}

	word := strings.ToLower(string(runes[start:]))
	return abbreviations[word]
}
