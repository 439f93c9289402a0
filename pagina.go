// Package pagina breaks long narrative text into viewport-sized slides,
// with section-aware pagination and lightweight semantic formatting.
//
// Basic usage:
//
//	deck, warnings, err := pagina.Narrative(text).Slides()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pagina.FormatWarnings(warnings))
//	}
//
// With options:
//
//	deck, _, err := pagina.Narrative(text).
//	    Title("Comprehensive Summary").
//	    Viewport(model.ViewportCompact).
//	    Oracle(oracle).
//	    Slides()
//
// For advanced use cases, the lower-level section, paginate, markup and
// slides packages are also available.
package pagina

import (
	"fmt"
	"io"
)

// Narrative wraps narrative text in a Composer for fluent configuration.
//
// Example:
//
//	deck, warnings, err := pagina.Narrative(text).Slides()
func Narrative(text string) *Composer {
	return &Composer{
		source:  text,
		options: defaultOptions(),
	}
}

// FromReader creates a Composer that reads its narrative from r. The
// payload may be UTF-8 or UTF-16, with or without a byte order mark,
// and is normalized to NFC before splitting. The reader is consumed by
// the first terminal operation.
//
// Example:
//
//	f, err := os.Open("report.txt")
//	if err != nil {
//	    // handle error
//	}
//	defer f.Close()
//	deck, warnings, err := pagina.FromReader(f).Slides()
func FromReader(r io.Reader) *Composer {
	c := &Composer{
		reader:  r,
		options: defaultOptions(),
	}
	if r == nil {
		c.err = fmt.Errorf("no reader provided")
	}
	return c
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	class := pagina.Must(model.ParseViewportClass("compact"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustSlides is a helper that wraps a call to Slides() or Sections()
// and panics if the error is non-nil. It discards warnings and returns
// just the value. It is intended for use in scripts or tests where
// error handling would be cumbersome.
//
// Example:
//
//	deck := pagina.MustSlides(pagina.Narrative(text).Slides())
func MustSlides[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
