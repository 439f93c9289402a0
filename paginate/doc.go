// Package paginate breaks section content into viewport-sized chunks.
//
// The engine accumulates paragraphs greedily, probing a layout
// [Oracle] before each commit so no emitted chunk overflows the
// rendering surface. A paragraph too long to fit on its own is split
// at sentence boundaries; a single sentence that still cannot fit is
// surfaced whole and marked oversized rather than truncated. Headings
// receive special care twice: during accumulation a heading-classified
// paragraph is held back rather than stranded at the bottom of a
// chunk, and a post-processing pass moves any heading lines remaining
// at a chunk boundary to the front of the following chunk.
//
//	chunks := paginate.NewPaginator().Paginate(
//		sec.Content, "Wellness Report", sec.Heading,
//		model.ViewportStandard, oracle,
//	)
//
// The oracle abstracts the real rendering surface. When none is
// available, or the one supplied reports it is not ready (fonts still
// loading, no measurement surface on this platform), the engine falls
// back to per-viewport character budgets and the same guarantees hold
// against the budget instead of the measurement. [BudgetOracle] wraps
// those budgets as an always-ready Oracle for headless use.
//
// Pagination is pure computation: it never blocks, never errors, and
// holds no state between calls, so narratives may be paginated
// concurrently without coordination.
package paginate
