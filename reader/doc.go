// Package reader brings external report payloads into the pipeline.
//
// [DecodeText] turns an uploaded byte stream into UTF-8 text: a leading
// byte order mark selects UTF-8 or UTF-16 decoding, and the result is
// NFC-normalized so composed and decomposed accents compare equal
// downstream. [DetectKind] sniffs whether a payload is plain narrative,
// Markdown, or HTML, for callers that let the library pick the section
// source.
package reader
