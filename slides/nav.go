package slides

import (
	"github.com/tsawler/pagina/markup"
	"github.com/tsawler/pagina/model"
)

// NavEntry is one topic group in a deck's navigation index.
type NavEntry struct {
	// Topic is the section heading shared by the group's slides.
	Topic string `json:"topic"`

	// Start is the position of the group's first slide in deck order.
	Start int `json:"start"`

	// Count is the number of consecutive slides in the group.
	Count int `json:"count"`
}

// NavIndex groups consecutive descriptors sharing a topic. A deck whose
// sections are [Diet ×2, Exercise ×1] yields two entries; a topic that
// reappears later starts a new group.
func NavIndex(descs []model.SlideDescriptor) []NavEntry {
	var entries []NavEntry
	for i, d := range descs {
		if i > 0 && descs[i-1].Topic == d.Topic {
			entries[len(entries)-1].Count++
			continue
		}
		entries = append(entries, NavEntry{Topic: d.Topic, Start: i, Count: 1})
	}
	return entries
}

// AttachSpans fills each descriptor's span list from its chunk text.
// Formatting happens at render time, after assembly, so descriptors built
// for storage or transport stay span-free until a renderer needs them.
func AttachSpans(descs []model.SlideDescriptor, formatter *markup.Formatter) {
	if formatter == nil {
		formatter = markup.NewFormatter()
	}
	for i := range descs {
		descs[i].Spans = formatter.Format(descs[i].Content.Text)
	}
}
