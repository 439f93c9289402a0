// Package markup converts plain narrative text into typed spans for
// rendering.
//
// [Formatter.Format] is a pure function from text to an ordered span
// list. It applies three passes:
//
//  1. Heading extraction. Inline heading phrases the section splitter
//     left in body text (a question-word-led phrase or a short
//     Title-Case phrase, each ending in a colon) become strong spans.
//  2. Markdown-lite and semantic markup on the remaining runs. Literal
//     emphasis markers are stripped, line starts are capitalized, and
//     a single left-to-right scan marks parenthesized asides,
//     percentages, score phrases (strong), quoted phrases (emphasis),
//     and question words that open a sentence (strong).
//  3. Citation highlighting. References to known classical works with
//     a numeric locator, dotted abbreviations such as "B.P.H.S. 12.4",
//     and "verse"/"sloka" locators become citation spans. The set of
//     recognized works is configurable through
//     [FormatterConfig.CitationWorks].
//
// Spans carry rendering hints only; no pass re-parses a span produced
// by an earlier one, except that a strong span consisting solely of a
// citation is unwrapped to a citation span. Formatting never drops a
// visible character: emphasis markers are removed and first letters
// capitalized, nothing else changes.
package markup
