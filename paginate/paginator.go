package paginate

import (
	"strings"

	"github.com/tsawler/pagina/layout"
	"github.com/tsawler/pagina/model"
	"github.com/tsawler/pagina/text"
)

// PaginatorConfig holds configuration for a Paginator.
type PaginatorConfig struct {
	// Budgets maps viewport classes to character allowances for the
	// fallback path. Classes missing from the map keep their defaults.
	Budgets map[model.ViewportClass]int

	// TrailingScanLines is how many non-blank lines at the end of an
	// emitted chunk are examined for stranded headings.
	TrailingScanLines int

	// Detector classifies heading paragraphs for orphan protection.
	// Nil uses a detector with default thresholds.
	Detector *layout.HeadingDetector
}

// DefaultPaginatorConfig returns the configuration used by NewPaginator.
func DefaultPaginatorConfig() PaginatorConfig {
	return PaginatorConfig{
		Budgets:           DefaultBudgets(),
		TrailingScanLines: 5,
		Detector:          layout.NewHeadingDetector(),
	}
}

// Paginator breaks section content into viewport-sized chunks. It is
// stateless between calls and safe for concurrent use.
type Paginator struct {
	budgets  map[model.ViewportClass]int
	scan     int
	detector *layout.HeadingDetector
}

// NewPaginator creates a paginator with default configuration.
func NewPaginator() *Paginator {
	return NewPaginatorWithConfig(DefaultPaginatorConfig())
}

// NewPaginatorWithConfig creates a paginator with custom configuration.
// Zero-valued fields fall back to their defaults.
func NewPaginatorWithConfig(config PaginatorConfig) *Paginator {
	budgets := DefaultBudgets()
	for class, budget := range config.Budgets {
		if budget > 0 {
			budgets[class] = budget
		}
	}
	if config.TrailingScanLines <= 0 {
		config.TrailingScanLines = 5
	}
	if config.Detector == nil {
		config.Detector = layout.NewHeadingDetector()
	}
	return &Paginator{
		budgets:  budgets,
		scan:     config.TrailingScanLines,
		detector: config.Detector,
	}
}

// Paginate breaks content into ordered chunks, none of which overflows
// the oracle or, when the oracle is nil or not ready for the class,
// the class character budget. The chunk texts concatenate back to the
// normalized content with no loss. Content that fits whole comes back
// as exactly one chunk; empty content yields a single empty chunk. A
// piece that cannot fit even as a lone sentence is emitted whole with
// Oversized set rather than truncated.
func (p *Paginator) Paginate(content, title, subtitle string, class model.ViewportClass, oracle Oracle) []model.Chunk {
	overflows := p.overflowFunc(title, subtitle, class, oracle)

	normalized := text.Normalize(content)
	if normalized == "" {
		return finalize([]string{""}, overflows)
	}
	if !overflows(normalized) {
		return finalize([]string{normalized}, overflows)
	}

	texts := p.accumulate(text.Paragraphs(normalized), overflows)
	texts = p.moveTrailingHeadings(texts)
	texts = dropEmpty(texts)
	if len(texts) == 0 {
		texts = []string{normalized}
	}
	return finalize(texts, overflows)
}

// overflowFunc selects the measurement path when the oracle is ready,
// and a character-budget predicate otherwise.
func (p *Paginator) overflowFunc(title, subtitle string, class model.ViewportClass, oracle Oracle) func(string) bool {
	if oracle != nil && oracle.Ready(class) {
		return func(body string) bool {
			return oracle.Overflows(body, title, subtitle, class)
		}
	}
	budget := p.Budget(class)
	return func(body string) bool {
		return len(body) > budget
	}
}

// Budget returns the fallback character allowance for a viewport class.
func (p *Paginator) Budget(class model.ViewportClass) int {
	if b, ok := p.budgets[class]; ok && b > 0 {
		return b
	}
	return DefaultBudgets()[model.ViewportStandard]
}

// accumulate greedily packs paragraphs into chunk texts, probing the
// overflow predicate before every commit. When an accumulation fills
// up with a heading as its final paragraph, the heading is held back
// so it opens the next chunk beside the content it introduces.
func (p *Paginator) accumulate(paragraphs []string, overflows func(string) bool) []string {
	var out []string
	current := ""

	for _, para := range paragraphs {
		candidate := joinBlocks(current, para)
		if !overflows(candidate) {
			current = candidate
			continue
		}

		held := ""
		if current != "" {
			if rest, last := splitLastBlock(current); p.isHeadingBlock(last) {
				current, held = rest, last
			}
			if current != "" {
				out = append(out, current)
				current = ""
			}
		}

		if !overflows(para) {
			current = joinBlocks(held, para)
			continue
		}

		emitted, rest := p.packSentences(held, para, overflows)
		out = append(out, emitted...)
		current = rest
	}

	if current != "" {
		out = append(out, current)
	}
	return out
}

// packSentences splits an over-long paragraph at sentence boundaries
// and packs the sentences with the same probe-before-commit logic. A
// held heading opens the first emitted piece. A sentence that
// overflows even alone is emitted whole; truncation is never an
// option. The final partial run is returned open so the following
// paragraphs can join it.
func (p *Paginator) packSentences(held, para string, overflows func(string) bool) ([]string, string) {
	sentences := text.Sentences(para)
	if len(sentences) <= 1 {
		return []string{joinBlocks(held, para)}, ""
	}

	var out []string
	run := ""
	for _, sentence := range sentences {
		candidate := joinSentences(run, sentence)
		if !overflows(joinBlocks(held, candidate)) {
			run = candidate
			continue
		}
		if run != "" {
			out = append(out, joinBlocks(held, run))
			held, run = "", ""
		}
		if !overflows(joinBlocks(held, sentence)) {
			run = sentence
			continue
		}
		out = append(out, joinBlocks(held, sentence))
		held = ""
	}
	return out, joinBlocks(held, run)
}

// moveTrailingHeadings examines the tail of each non-final chunk and
// moves any trailing heading block, blank lines included, to the front
// of the following chunk. This catches headings that entered a chunk
// as the last line of a larger paragraph, which the held-back check
// cannot see.
func (p *Paginator) moveTrailingHeadings(texts []string) []string {
	for i := 0; i+1 < len(texts); i++ {
		off := p.detector.TrailingHeadingStart(texts[i], p.scan)
		if off < 0 {
			continue
		}
		moved := strings.TrimSpace(texts[i][off:])
		texts[i] = strings.TrimSpace(texts[i][:off])
		if moved != "" {
			texts[i+1] = joinBlocks(moved, texts[i+1])
		}
	}
	return texts
}

// isHeadingBlock reports whether a paragraph is a single heading line.
func (p *Paginator) isHeadingBlock(block string) bool {
	return p.detector.IsHeading(strings.TrimSpace(block))
}

// finalize builds chunks from texts, numbering them and re-probing
// each so unavoidable overflows surface on the Oversized flag.
func finalize(texts []string, overflows func(string) bool) []model.Chunk {
	chunks := make([]model.Chunk, len(texts))
	for i, t := range texts {
		c := model.NewChunk(t)
		c.SequenceIndex = i + 1
		c.SequenceTotal = len(texts)
		c.Oversized = t != "" && overflows(t)
		chunks[i] = c
	}
	return chunks
}

// dropEmpty removes whitespace-only chunk texts in place.
func dropEmpty(texts []string) []string {
	kept := texts[:0]
	for _, t := range texts {
		if strings.TrimSpace(t) != "" {
			kept = append(kept, t)
		}
	}
	return kept
}

// splitLastBlock splits accumulated text into everything before its
// final paragraph and the final paragraph itself.
func splitLastBlock(s string) (rest, last string) {
	if idx := strings.LastIndex(s, "\n\n"); idx >= 0 {
		return s[:idx], s[idx+2:]
	}
	return "", s
}

// joinBlocks joins two paragraph blocks with a blank line, tolerating
// empty halves.
func joinBlocks(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + "\n\n" + b
	}
}

// joinSentences joins two sentence runs with a single space.
func joinSentences(a, b string) string {
	if a == "" {
		return b
	}
	return a + " " + b
}
