package layout

import "strings"

// defaultTrailingScan caps how many non-blank lines are examined at the
// end of a text when maxScan is not set.
const defaultTrailingScan = 5

// TrailingHeadingStart returns the byte offset where a trailing heading
// block begins in text, or -1 when the text does not end with headings.
//
// The scan walks backwards over at most maxScan non-blank lines (blank
// lines are skipped and do not count) and stops at the first line of
// prose. When every scanned trailing line is a heading, the offset of
// the earliest such line is returned, so callers can move text[offset:]
// elsewhere without splitting the block. An offset of 0 means the whole
// text is a heading block. A maxScan of zero or less uses a default of 5.
func (d *HeadingDetector) TrailingHeadingStart(text string, maxScan int) int {
	if maxScan <= 0 {
		maxScan = defaultTrailingScan
	}
	lines := strings.Split(text, "\n")
	start := -1
	scanned := 0
	for i := len(lines) - 1; i >= 0 && scanned < maxScan; i-- {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		if !d.IsHeading(trimmed) {
			break
		}
		scanned++
		start = i
	}
	if start < 0 {
		return -1
	}
	offset := 0
	for i := 0; i < start; i++ {
		offset += len(lines[i]) + 1
	}
	return offset
}
