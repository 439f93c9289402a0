// Package text provides plain-text utilities for narrative content:
// whitespace normalization, paragraph segmentation and sentence segmentation.
//
// The pagination pipeline works on free-form text produced by upstream AI
// report generators. That text arrives with mixed line endings, duplicated
// blank lines and irregular indentation, so every consumer normalizes first:
//
//	clean := text.Normalize(raw)
//	paras := text.Paragraphs(clean)
//
// # Units
//
// A paragraph is a maximal run of non-blank lines. Paragraphs are the unit
// the pagination engine moves between chunks; sentences are the fallback
// unit when a single paragraph exceeds a rendering budget:
//
//	sentences := text.Sentences(paragraph)
//
// Splitting is conservative about sentence-ending punctuation: common
// abbreviations ("e.g.", "Dr."), single-initial abbreviations and decimal
// numbers do not end a sentence.
package text
