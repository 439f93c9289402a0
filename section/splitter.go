package section

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/pagina/layout"
	"github.com/tsawler/pagina/model"
	"github.com/tsawler/pagina/text"
)

var (
	// wordCountRe matches embedded word-count annotations such as
	// "(120 words)" that generators leave in their output.
	wordCountRe = regexp.MustCompile(`\(\s*\d+\s+[Ww]ords?\s*\)`)

	// paragraphLabelRe matches the colon form of paragraph labels,
	// "PARAGRAPH 2:", which carries no title and is pure noise. The dash
	// form is a real structural marker and is handled by the splitter.
	paragraphLabelRe = regexp.MustCompile(`PARAGRAPH\s+\d+\s*:\s*`)

	// sectionMarkerRe matches "SECTION n: Title" lines, with an optional
	// leading bullet.
	sectionMarkerRe = regexp.MustCompile(`(?m)^[ \t]*(?:[-•*][ \t]*)?SECTION\s+(\d+)\s*:[ \t]*(.*)$`)

	// paragraphMarkerRe matches "PARAGRAPH n - ..." lines. The remainder
	// of the line may carry a "Title: body" pair.
	paragraphMarkerRe = regexp.MustCompile(`(?m)^[ \t]*PARAGRAPH\s+(\d+)\s*[-–—][ \t]*(.*)$`)

	// numberedTitleRe matches generic "n. Title" and "n) Title" lines.
	numberedTitleRe = regexp.MustCompile(`(?m)^[ \t]*(\d+)[.)][ \t]+(.+)$`)

	leadingBulletRe = regexp.MustCompile(`^[-•*]+\s*`)
	leadingNumberRe = regexp.MustCompile(`^\d+[.)]\s*`)
)

// maxGenericTitleLength caps the line length for the generic numbered
// convention, so numbered list items do not read as section titles.
const maxGenericTitleLength = 60

// SplitterConfig holds configuration for a Splitter.
type SplitterConfig struct {
	// Detector classifies lines for the inline-heading convention.
	// Nil uses a detector with default thresholds.
	Detector *layout.HeadingDetector
}

// DefaultSplitterConfig returns the configuration used by NewSplitter.
func DefaultSplitterConfig() SplitterConfig {
	return SplitterConfig{
		Detector: layout.NewHeadingDetector(),
	}
}

// Splitter breaks raw narrative text into ordered sections.
type Splitter struct {
	detector *layout.HeadingDetector
}

// NewSplitter creates a splitter with default configuration.
func NewSplitter() *Splitter {
	return NewSplitterWithConfig(DefaultSplitterConfig())
}

// NewSplitterWithConfig creates a splitter with custom configuration.
func NewSplitterWithConfig(config SplitterConfig) *Splitter {
	if config.Detector == nil {
		config.Detector = layout.NewHeadingDetector()
	}
	return &Splitter{detector: config.Detector}
}

// Split breaks raw text into ordered sections. The text is normalized
// and cleaned of known generator artifacts, then each marker convention
// is tried in order; the first one that matches wins. Text matching no
// convention comes back as a single untitled section, so the result
// always has at least one element.
func (s *Splitter) Split(raw string) []model.Section {
	cleaned := preClean(raw)

	conventions := []func(string) []model.Section{
		s.bySectionMarkers,
		s.byParagraphMarkers,
		s.byNumberedTitles,
		s.byInlineHeadings,
	}
	for _, split := range conventions {
		if sections := split(cleaned); len(sections) > 0 {
			return sections
		}
	}

	return []model.Section{{Content: cleaned}}
}

// preClean normalizes whitespace and strips generator artifacts that
// are noise under every convention: word-count annotations and the
// title-less colon form of paragraph labels.
func preClean(raw string) string {
	cleaned := text.Normalize(raw)
	cleaned = wordCountRe.ReplaceAllString(cleaned, "")
	cleaned = paragraphLabelRe.ReplaceAllString(cleaned, "")
	return text.Normalize(cleaned)
}

// bySectionMarkers splits on "SECTION n: Title" lines. The title sits
// on the marker line; content runs to the next marker or the end.
func (s *Splitter) bySectionMarkers(cleaned string) []model.Section {
	matches := sectionMarkerRe.FindAllStringSubmatchIndex(cleaned, -1)
	if len(matches) == 0 {
		return nil
	}

	sections := make([]model.Section, 0, len(matches))
	for i, m := range matches {
		title := cleaned[m[4]:m[5]]
		end := len(cleaned)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		sections = append(sections, model.Section{
			Heading: cleanTitle(title),
			Content: strings.TrimSpace(cleaned[m[1]:end]),
		})
	}

	if pre := strings.TrimSpace(cleaned[:matches[0][0]]); pre != "" {
		sections[0].Content = joinBlocks(pre, sections[0].Content)
	}
	return sections
}

// byParagraphMarkers splits on "PARAGRAPH n - ..." lines. When the
// line remainder contains a colon, text before it becomes the heading
// and text after it joins the following body as content. Without a
// colon the whole remainder is content and the heading stays empty.
func (s *Splitter) byParagraphMarkers(cleaned string) []model.Section {
	matches := paragraphMarkerRe.FindAllStringSubmatchIndex(cleaned, -1)
	if len(matches) == 0 {
		return nil
	}

	sections := make([]model.Section, 0, len(matches))
	for i, m := range matches {
		rest := cleaned[m[4]:m[5]]
		end := len(cleaned)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		tail := cleaned[m[1]:end]

		heading := ""
		if idx := strings.Index(rest, ":"); idx >= 0 {
			heading = cleanTitle(rest[:idx])
			rest = rest[idx+1:]
		}
		sections = append(sections, model.Section{
			Heading: heading,
			Content: strings.TrimSpace(strings.TrimSpace(rest) + tail),
		})
	}

	if pre := strings.TrimSpace(cleaned[:matches[0][0]]); pre != "" {
		sections[0].Content = joinBlocks(pre, sections[0].Content)
	}
	return sections
}

// byNumberedTitles splits on generic "n. Title" lines. Only short,
// non-sentence lines qualify, so numbered list items stay inside their
// section instead of fragmenting it.
func (s *Splitter) byNumberedTitles(cleaned string) []model.Section {
	all := numberedTitleRe.FindAllStringSubmatchIndex(cleaned, -1)
	matches := all[:0]
	for _, m := range all {
		title := strings.TrimSpace(cleaned[m[4]:m[5]])
		if utf8.RuneCountInString(title) > maxGenericTitleLength {
			continue
		}
		if strings.HasSuffix(title, ".") || strings.HasSuffix(title, "!") || strings.HasSuffix(title, "?") {
			continue
		}
		matches = append(matches, m)
	}
	if len(matches) == 0 {
		return nil
	}

	sections := make([]model.Section, 0, len(matches))
	for i, m := range matches {
		end := len(cleaned)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		sections = append(sections, model.Section{
			Heading: cleanTitle(cleaned[m[4]:m[5]]),
			Content: strings.TrimSpace(cleaned[m[1]:end]),
		})
	}

	if pre := strings.TrimSpace(cleaned[:matches[0][0]]); pre != "" {
		sections[0].Content = joinBlocks(pre, sections[0].Content)
	}
	return sections
}

// byInlineHeadings splits on standalone heading lines anywhere in the
// text. Text before the first heading is prepended to the first
// section's content rather than dropped.
func (s *Splitter) byInlineHeadings(cleaned string) []model.Section {
	lines := strings.Split(cleaned, "\n")
	var headingLines []int
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && s.detector.IsHeading(trimmed) {
			headingLines = append(headingLines, i)
		}
	}
	if len(headingLines) == 0 {
		return nil
	}

	sections := make([]model.Section, 0, len(headingLines))
	for i, h := range headingLines {
		end := len(lines)
		if i+1 < len(headingLines) {
			end = headingLines[i+1]
		}
		content := strings.TrimSpace(strings.Join(lines[h+1:end], "\n"))
		sections = append(sections, model.Section{
			Heading: cleanTitle(lines[h]),
			Content: content,
		})
	}

	pre := strings.TrimSpace(strings.Join(lines[:headingLines[0]], "\n"))
	if pre != "" {
		sections[0].Content = joinBlocks(pre, sections[0].Content)
	}
	return sections
}

// cleanTitle strips marker residue from a captured section title:
// surrounding whitespace, leading bullets and list numbers, bold
// markers, and trailing colons. The loop runs until the title is
// stable, so stacked decorations like "**Diet:**" come off in full.
func cleanTitle(title string) string {
	for {
		next := strings.TrimSpace(title)
		next = leadingBulletRe.ReplaceAllString(next, "")
		next = leadingNumberRe.ReplaceAllString(next, "")
		next = strings.TrimSuffix(next, ":")
		next = strings.TrimPrefix(next, "**")
		next = strings.TrimSuffix(next, "**")
		if next == title {
			return title
		}
		title = next
	}
}

// joinBlocks joins two text blocks with a blank line, tolerating empty
// halves.
func joinBlocks(a, b string) string {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + "\n\n" + b
	}
}
