// Package model provides the intermediate representation (IR) for paginated
// narrative content.
//
// This package defines the user-facing data structures shared by the
// pagination pipeline. Splitting, pagination, assembly and formatting
// operations all produce these types, making them the primary API for
// consuming rendered decks.
//
// # Pipeline Types
//
// A narrative flows through the pipeline as a sequence of progressively
// smaller units:
//
//   - [Section] - a titled region of the source text
//   - [Chunk] - one viewport-sized piece of a section
//   - [SlideDescriptor] - a renderable slide wrapping one chunk
//   - [Span] - a formatted run of slide text
//
// # Viewports
//
// The [ViewportClass] enum names the rendering surface a deck targets.
// Pagination passes the class through to every layout probe, and falls back
// to a per-class character budget when no probe capability is available.
//
// # Invariants
//
// Concatenating the headings and content of all sections reconstructs the
// source text up to whitespace normalization, and the chunks of a section
// concatenate back to that section's content under the same rule. Spans are
// rendering hints: [FlattenSpans] recovers the chunk text they were derived
// from.
package model
