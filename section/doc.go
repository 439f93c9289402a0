// Package section breaks narrative report text into ordered
// heading/content pairs.
//
// Generated reports label their structure inconsistently. The same
// upstream producer may emit "SECTION 2: Diet", "PARAGRAPH 3 - Sleep:
// rest early", a bare "4. Exercise" line, or nothing but inline
// "Title Case:" headings, sometimes with word-count annotations like
// "(120 words)" left behind. [Splitter] handles all of these: it
// pre-cleans known artifacts, then tries each marker convention in a
// fixed order and splits with the first one that matches. Text that
// matches no convention is returned whole as a single untitled
// section, so splitting never fails.
//
//	sections := section.NewSplitter().Split(reportText)
//	for _, sec := range sections {
//		fmt.Println(sec.Heading)
//	}
//
// Structured payloads bypass the marker heuristics entirely:
// [FromMarkdown] walks a markdown AST and [FromHTML] walks an HTML
// document, in both cases mapping real heading elements to section
// boundaries.
//
// Whatever the route, the same invariant holds: no content is lost.
// Concatenating every section's heading and content reproduces the
// source text up to whitespace normalization and artifact removal.
package section
