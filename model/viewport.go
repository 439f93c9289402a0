package model

import (
	"fmt"
	"strings"
)

// ViewportClass identifies the rendering surface a deck of slides is
// paginated for. The class is passed through to every layout probe and
// selects the character budget used when no layout oracle is available.
type ViewportClass int

const (
	// ViewportCompact targets narrow surfaces such as phone-width panes.
	ViewportCompact ViewportClass = iota
	// ViewportStandard targets the default report viewer pane.
	ViewportStandard
	// ViewportExpanded targets full-width or presentation surfaces.
	ViewportExpanded
)

// String returns a human-readable representation of the viewport class
func (v ViewportClass) String() string {
	switch v {
	case ViewportCompact:
		return "compact"
	case ViewportStandard:
		return "standard"
	case ViewportExpanded:
		return "expanded"
	default:
		return "unknown"
	}
}

// ParseViewportClass converts a string such as "compact" into a
// ViewportClass. Matching is case-insensitive and ignores surrounding
// whitespace. The empty string maps to ViewportStandard.
func ParseViewportClass(s string) (ViewportClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "compact":
		return ViewportCompact, nil
	case "standard", "":
		return ViewportStandard, nil
	case "expanded":
		return ViewportExpanded, nil
	default:
		return ViewportStandard, fmt.Errorf("unknown viewport class %q", s)
	}
}
