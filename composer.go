package pagina

import (
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/pagina/markup"
	"github.com/tsawler/pagina/model"
	"github.com/tsawler/pagina/paginate"
	"github.com/tsawler/pagina/reader"
	"github.com/tsawler/pagina/section"
	"github.com/tsawler/pagina/slides"
)

// Deck is the result of composing a narrative: the ordered slide
// descriptors plus the navigation index over them.
type Deck struct {
	// Title is the deck-level title carried onto every slide.
	Title string `json:"title,omitempty"`

	// Viewport is the class the deck was paginated for.
	Viewport model.ViewportClass `json:"viewport"`

	// Slides holds the descriptors in presentation order.
	Slides []model.SlideDescriptor `json:"slides"`

	// Nav groups consecutive slides that share a topic.
	Nav []slides.NavEntry `json:"nav"`
}

// Composer provides a fluent interface for turning narrative text into
// slide decks. Each configuration method returns a new Composer
// instance, making it safe for concurrent use and allowing method
// chaining.
type Composer struct {
	// Source (only one is set)
	source string
	reader io.Reader

	// Configuration
	options composeOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a copy of the Composer so each chain method returns a
// new instance.
func (c *Composer) clone() *Composer {
	return &Composer{
		source:   c.source,
		reader:   c.reader,
		options:  c.options,
		err:      c.err,
		warnings: append([]Warning(nil), c.warnings...),
	}
}

// ============================================================================
// Configuration Methods (return new Composer instance)
// ============================================================================

// Title sets the deck-level title. It is carried onto every slide and
// included in layout probes, so a long title costs body room.
//
// Example:
//
//	deck, _, err := pagina.Narrative(text).Title("Comprehensive Summary").Slides()
func (c *Composer) Title(title string) *Composer {
	newC := c.clone()
	newC.options.title = title
	return newC
}

// Viewport sets the viewport class the deck is paginated for. The
// default is model.ViewportStandard.
//
// Example:
//
//	deck, _, err := pagina.Narrative(text).Viewport(model.ViewportCompact).Slides()
func (c *Composer) Viewport(class model.ViewportClass) *Composer {
	newC := c.clone()
	newC.options.class = class
	return newC
}

// Oracle sets the layout oracle consulted for overflow probes. Without
// one, or while the oracle reports not ready for the viewport class,
// pagination falls back to per-class character budgets.
//
// Example:
//
//	deck, warnings, err := pagina.Narrative(text).Oracle(oracle).Slides()
func (c *Composer) Oracle(oracle paginate.Oracle) *Composer {
	newC := c.clone()
	newC.options.oracle = oracle
	return newC
}

// Markdown treats the narrative as markdown: sections come from the
// heading structure instead of the plain-text marker conventions.
//
// Example:
//
//	deck, _, err := pagina.Narrative(md).Markdown().Slides()
func (c *Composer) Markdown() *Composer {
	newC := c.clone()
	newC.options.kind = reader.KindMarkdown
	newC.options.detect = false
	return newC
}

// HTML treats the narrative as HTML: sections come from the heading
// elements instead of the plain-text marker conventions.
//
// Example:
//
//	deck, _, err := pagina.Narrative(page).HTML().Slides()
func (c *Composer) HTML() *Composer {
	newC := c.clone()
	newC.options.kind = reader.KindHTML
	newC.options.detect = false
	return newC
}

// PlainText treats the narrative as plain text and splits it on the
// marker conventions (SECTION labels, paragraph markers, numbered and
// inline headings). This is the default.
func (c *Composer) PlainText() *Composer {
	newC := c.clone()
	newC.options.kind = reader.KindPlain
	newC.options.detect = false
	return newC
}

// DetectFormat sniffs the payload and picks the section source: HTML
// for payloads opening with a structural tag, markdown for payloads
// with ATX headings or code fences, plain text otherwise.
//
// Example:
//
//	deck, _, err := pagina.FromReader(f).DetectFormat().Slides()
func (c *Composer) DetectFormat() *Composer {
	newC := c.clone()
	newC.options.detect = true
	return newC
}

// Splitter sets the splitter used for plain-text narratives. Nil
// restores the default.
func (c *Composer) Splitter(s *section.Splitter) *Composer {
	newC := c.clone()
	newC.options.splitter = s
	return newC
}

// Paginator sets the paginator used to chunk sections. Nil restores
// the default.
//
// Example:
//
//	p := paginate.NewPaginatorWithConfig(paginate.PaginatorConfig{
//	    Budgets: map[model.ViewportClass]int{model.ViewportCompact: 800},
//	})
//	deck, _, err := pagina.Narrative(text).Paginator(p).Slides()
func (c *Composer) Paginator(p *paginate.Paginator) *Composer {
	newC := c.clone()
	newC.options.paginator = p
	return newC
}

// Formatter sets the formatter used to mark up slide text. Nil
// restores the default.
//
// Example:
//
//	f := markup.NewFormatterWithConfig(markup.FormatterConfig{
//	    CitationWorks: []string{"Charaka Samhita"},
//	})
//	deck, _, err := pagina.Narrative(text).Formatter(f).Slides()
func (c *Composer) Formatter(f *markup.Formatter) *Composer {
	newC := c.clone()
	newC.options.formatter = f
	return newC
}

// ============================================================================
// Terminal Operations (execute composition and return results)
// ============================================================================

// Sections splits the narrative and returns the ordered sections
// without paginating them.
//
// Returns the sections, any warnings encountered during processing,
// and an error if the payload could not be read.
//
// Example:
//
//	sections, warnings, err := pagina.Narrative(text).Sections()
func (c *Composer) Sections() ([]model.Section, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}

	sections, err := c.splitSections()
	if err != nil {
		return nil, nil, err
	}
	return sections, c.warnings, nil
}

// Slides splits the narrative, paginates each section for the
// configured viewport, and attaches formatting spans to every slide.
//
// Returns the composed deck, any warnings encountered during
// processing, and an error if the payload could not be read. Warnings
// indicate non-fatal conditions (e.g., an oracle fallback) where
// composition succeeded but results may be imperfect.
//
// Example:
//
//	deck, warnings, err := pagina.Narrative(text).
//	    Title("Comprehensive Summary").
//	    Viewport(model.ViewportCompact).
//	    Slides()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pagina.FormatWarnings(warnings))
//	}
func (c *Composer) Slides() (*Deck, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}

	sections, err := c.splitSections()
	if err != nil {
		return nil, nil, err
	}

	warnings := append([]Warning(nil), c.warnings...)
	if c.options.oracle != nil && !c.options.oracle.Ready(c.options.class) {
		warnings = append(warnings, Warning{
			Code: WarnOracleFallback,
			Message: fmt.Sprintf("layout oracle not ready for the %s viewport; character budgets served",
				c.options.class),
		})
	}

	assembler := slides.NewAssemblerWithConfig(slides.AssemblerConfig{
		Paginator: c.options.paginator,
	})
	descs := assembler.Assemble(c.options.title, sections, c.options.class, c.options.oracle)
	slides.AttachSpans(descs, c.options.formatter)

	for _, d := range descs {
		if d.Content.Oversized {
			warnings = append(warnings, Warning{
				Code: WarnOversizedChunk,
				Message: fmt.Sprintf("slide %s overflows the %s viewport; an unbreakable sentence was kept whole",
					d.ID, c.options.class),
			})
		}
	}

	return &Deck{
		Title:    c.options.title,
		Viewport: c.options.class,
		Slides:   descs,
		Nav:      slides.NavIndex(descs),
	}, warnings, nil
}

// ============================================================================
// Internal helpers
// ============================================================================

// splitSections resolves the payload and runs the section source
// selected by the options.
func (c *Composer) splitSections() ([]model.Section, error) {
	payload, err := c.payload()
	if err != nil {
		return nil, err
	}

	kind := c.options.kind
	if c.options.detect {
		kind = reader.DetectKind([]byte(payload))
	}

	switch kind {
	case reader.KindMarkdown:
		return section.FromMarkdown([]byte(payload)), nil
	case reader.KindHTML:
		return section.FromHTML(strings.NewReader(payload))
	default:
		splitter := c.options.splitter
		if splitter == nil {
			splitter = section.NewSplitter()
		}
		return splitter.Split(payload), nil
	}
}

// payload returns the narrative text, decoding the reader when one was
// provided.
func (c *Composer) payload() (string, error) {
	if c.reader != nil {
		return reader.DecodeText(c.reader)
	}
	return c.source, nil
}
