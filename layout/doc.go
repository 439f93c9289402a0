// Package layout classifies lines of narrative text by their structural
// role, independent of any output format.
//
// The central type is [HeadingDetector], which decides whether a single
// line functions as a heading or label rather than body prose. Detection
// is heuristic and works on plain text: generated reports rarely carry
// reliable markup, so the detector looks at surface shape instead of
// tags. A line can qualify four ways, tried in order:
//
//   - a short label ending in a colon (HeadingShortLabel)
//   - a run of capitalized words ending in a colon (HeadingTitleCase)
//   - an all-capitals label ending in a colon (HeadingAllCaps)
//   - text wrapped in bold markers (HeadingBold)
//
// Thresholds such as the maximum label length live in [HeadingConfig]
// and can be tuned per corpus:
//
//	detector := layout.NewHeadingDetectorWithConfig(layout.HeadingConfig{
//		MaxLabelLength:    40,
//		MaxTitleWords:     6,
//		MinAllCapsLetters: 3,
//		BoldMarker:        "**",
//	})
//	if detector.IsHeading("Dietary Guidelines:") {
//		// treat as a section label
//	}
//
// [HeadingDetector.TrailingHeadingStart] locates a heading block at the
// tail of a larger text, which pagination uses to keep headings attached
// to the prose they introduce.
package layout
