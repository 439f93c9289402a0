package layout

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// HeadingKind identifies which heuristic matched a line.
type HeadingKind int

const (
	// HeadingNone means the line reads as body prose.
	HeadingNone HeadingKind = iota
	// HeadingShortLabel is a short line ending in a colon, such as
	// "Dietary Guidelines:" or "1. Morning Routine:".
	HeadingShortLabel
	// HeadingTitleCase is a run of capitalized words ending in a colon,
	// such as "Signs And Symptoms:".
	HeadingTitleCase
	// HeadingAllCaps is an all-capitals label ending in a colon, such as
	// "IMPORTANT:".
	HeadingAllCaps
	// HeadingBold is a line wrapped in bold markers, such as
	// "**Key Remedies**" with or without a trailing colon.
	HeadingBold
)

// String returns a human-readable name for the heading kind.
func (k HeadingKind) String() string {
	switch k {
	case HeadingShortLabel:
		return "short-label"
	case HeadingTitleCase:
		return "title-case"
	case HeadingAllCaps:
		return "all-caps"
	case HeadingBold:
		return "bold"
	default:
		return "none"
	}
}

// HeadingConfig holds tunable thresholds for heading detection.
type HeadingConfig struct {
	// MaxLabelLength is the maximum length in characters for the
	// short-label rule. Longer colon-terminated lines are treated as
	// prose, since full sentences often end in a colon too.
	MaxLabelLength int

	// MaxTitleWords is the maximum number of capitalized words for the
	// title-case rule.
	MaxTitleWords int

	// MinAllCapsLetters is the minimum number of letters required for
	// the all-caps rule, so stray abbreviations like "OK:" do not
	// register as headings.
	MinAllCapsLetters int

	// BoldMarker is the inline marker that wraps bold text.
	BoldMarker string
}

// DefaultHeadingConfig returns the thresholds used by NewHeadingDetector.
func DefaultHeadingConfig() HeadingConfig {
	return HeadingConfig{
		MaxLabelLength:    60,
		MaxTitleWords:     8,
		MinAllCapsLetters: 3,
		BoldMarker:        "**",
	}
}

// HeadingDetector classifies single lines as headings or prose.
type HeadingDetector struct {
	config HeadingConfig
}

// NewHeadingDetector creates a detector with default thresholds.
func NewHeadingDetector() *HeadingDetector {
	return NewHeadingDetectorWithConfig(DefaultHeadingConfig())
}

// NewHeadingDetectorWithConfig creates a detector with custom thresholds.
// Zero or negative fields fall back to their defaults.
func NewHeadingDetectorWithConfig(config HeadingConfig) *HeadingDetector {
	def := DefaultHeadingConfig()
	if config.MaxLabelLength <= 0 {
		config.MaxLabelLength = def.MaxLabelLength
	}
	if config.MaxTitleWords <= 0 {
		config.MaxTitleWords = def.MaxTitleWords
	}
	if config.MinAllCapsLetters <= 0 {
		config.MinAllCapsLetters = def.MinAllCapsLetters
	}
	if config.BoldMarker == "" {
		config.BoldMarker = def.BoldMarker
	}
	return &HeadingDetector{config: config}
}

var numberedMarkerRe = regexp.MustCompile(`^\d+[.)]`)

// IsHeading reports whether line functions as a heading or label.
func (d *HeadingDetector) IsHeading(line string) bool {
	return d.Classify(line) != HeadingNone
}

// Classify returns the first heading rule that matches line, or
// HeadingNone when the line reads as prose. The line is expected to be
// a single trimmed line; anything containing a line break is prose.
func (d *HeadingDetector) Classify(line string) HeadingKind {
	if strings.ContainsAny(line, "\n\r") {
		return HeadingNone
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return HeadingNone
	}
	if d.isShortLabel(line) {
		return HeadingShortLabel
	}
	if d.isTitleCase(line) {
		return HeadingTitleCase
	}
	if d.isAllCaps(line) {
		return HeadingAllCaps
	}
	if d.isBold(line) {
		return HeadingBold
	}
	return HeadingNone
}

// isShortLabel matches short colon-terminated lines that open with an
// uppercase letter, a bold marker, or a numbered-list marker.
func (d *HeadingDetector) isShortLabel(line string) bool {
	if !strings.HasSuffix(line, ":") {
		return false
	}
	if utf8.RuneCountInString(line) > d.config.MaxLabelLength {
		return false
	}
	first, _ := utf8.DecodeRuneInString(line)
	if unicode.IsUpper(first) {
		return true
	}
	if strings.HasPrefix(line, d.config.BoldMarker) {
		return true
	}
	return numberedMarkerRe.MatchString(line)
}

// isTitleCase matches runs of capitalized words ending in a colon.
// Ampersand-joined compounds such as "Diet & Lifestyle:" count as
// separate words. Lines with no lowercase letters at all are left to
// the all-caps rule.
func (d *HeadingDetector) isTitleCase(line string) bool {
	if !strings.HasSuffix(line, ":") {
		return false
	}
	body := strings.TrimSuffix(line, ":")
	if strings.IndexFunc(body, unicode.IsLower) < 0 {
		return false
	}
	words := strings.Fields(body)
	count := 0
	for _, w := range words {
		if w == "&" {
			continue
		}
		first, _ := utf8.DecodeRuneInString(w)
		if !unicode.IsUpper(first) {
			return false
		}
		count++
	}
	return count >= 1 && count <= d.config.MaxTitleWords
}

// isAllCaps matches capital-letter labels ending in a colon, requiring
// a minimum letter count so short abbreviations stay prose.
func (d *HeadingDetector) isAllCaps(line string) bool {
	if !strings.HasSuffix(line, ":") {
		return false
	}
	body := strings.TrimSuffix(line, ":")
	letters := 0
	for _, r := range body {
		if unicode.IsLetter(r) {
			if !unicode.IsUpper(r) {
				return false
			}
			letters++
			continue
		}
		if !unicode.IsDigit(r) && !unicode.IsSpace(r) && r != '&' && r != '-' {
			return false
		}
	}
	return letters >= d.config.MinAllCapsLetters
}

// isBold matches lines wholly wrapped in the bold marker, with an
// optional trailing colon.
func (d *HeadingDetector) isBold(line string) bool {
	line = strings.TrimSuffix(line, ":")
	marker := d.config.BoldMarker
	if !strings.HasPrefix(line, marker) || !strings.HasSuffix(line, marker) {
		return false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(line, marker), marker)
	return strings.TrimSpace(inner) != ""
}
