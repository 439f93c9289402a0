package slides

import (
	"fmt"

	"github.com/tsawler/pagina/model"
	"github.com/tsawler/pagina/paginate"
)

// AssemblerConfig holds configuration options for the slide assembler.
type AssemblerConfig struct {
	// Paginator splits section content into viewport-sized chunks.
	Paginator *paginate.Paginator
}

// DefaultAssemblerConfig returns sensible default configuration
func DefaultAssemblerConfig() AssemblerConfig {
	return AssemblerConfig{
		Paginator: paginate.NewPaginator(),
	}
}

// Assembler builds slide descriptors from sections.
type Assembler struct {
	paginator *paginate.Paginator
}

// NewAssembler creates an assembler with default configuration
func NewAssembler() *Assembler {
	return NewAssemblerWithConfig(DefaultAssemblerConfig())
}

// NewAssemblerWithConfig creates an assembler with custom configuration.
// Zero-value fields fall back to their defaults.
func NewAssemblerWithConfig(config AssemblerConfig) *Assembler {
	if config.Paginator == nil {
		config.Paginator = paginate.NewPaginator()
	}
	return &Assembler{paginator: config.Paginator}
}

// Assemble paginates each section for the viewport class and returns the
// deck's descriptors in reading order. Sections with an empty heading and
// empty content are skipped. IDs encode the section's position in the
// input and the chunk's position in its section, so unchanged input
// produces unchanged IDs even when empty sections sit between kept ones.
func (a *Assembler) Assemble(title string, sections []model.Section, class model.ViewportClass, oracle paginate.Oracle) []model.SlideDescriptor {
	var descs []model.SlideDescriptor
	for i, sec := range sections {
		if sec.IsEmpty() {
			continue
		}
		chunks := a.paginator.Paginate(sec.Content, title, sec.Heading, class, oracle)
		for j, chunk := range chunks {
			descs = append(descs, model.SlideDescriptor{
				ID:       fmt.Sprintf("slide-%d-%d", i, j),
				Topic:    sec.Heading,
				Title:    title,
				Subtitle: subtitle(sec.Heading, chunk.SequenceIndex, chunk.SequenceTotal),
				Content:  chunk,
			})
		}
	}
	return descs
}

// subtitle renders the section heading with a pagination suffix when the
// section spans more than one slide.
func subtitle(heading string, index, total int) string {
	if total <= 1 {
		return heading
	}
	suffix := fmt.Sprintf("(%d/%d)", index, total)
	if heading == "" {
		return suffix
	}
	return heading + " " + suffix
}
