package pagina

import (
	"github.com/tsawler/pagina/markup"
	"github.com/tsawler/pagina/model"
	"github.com/tsawler/pagina/paginate"
	"github.com/tsawler/pagina/reader"
	"github.com/tsawler/pagina/section"
)

// composeOptions holds configuration for deck composition.
type composeOptions struct {
	// Deck metadata
	title string

	// Rendering surface the deck is paginated for
	class model.ViewportClass

	// Layout oracle; nil paginates against character budgets
	oracle paginate.Oracle

	// Source interpretation
	kind   reader.Kind
	detect bool

	// Pipeline stages; nil fields use stage defaults at composition time
	splitter  *section.Splitter
	paginator *paginate.Paginator
	formatter *markup.Formatter
}

// defaultOptions returns the default composition options.
func defaultOptions() composeOptions {
	return composeOptions{
		class: model.ViewportStandard,
		kind:  reader.KindPlain,
	}
}
