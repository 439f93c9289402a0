package pagina_test

import (
	"fmt"
	"strings"

	"github.com/tsawler/pagina"
	"github.com/tsawler/pagina/model"
	"github.com/tsawler/pagina/paginate"
)

// coldOracle stands in for a layout probe service that has not
// finished measuring its viewport yet.
type coldOracle struct{}

func (coldOracle) Ready(model.ViewportClass) bool { return false }

func (coldOracle) Overflows(body, title, subtitle string, class model.ViewportClass) bool {
	return false
}

func Example() {
	text := "SECTION 1: Morning Routine\n" +
		"Rise before sunrise. Drink warm water.\n\n" +
		"SECTION 2: Evening Routine\n" +
		"Dim the lights. Sleep by ten."

	deck, warnings, err := pagina.Narrative(text).Title("Daily Plan").Slides()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if len(warnings) > 0 {
		fmt.Println("warnings:", pagina.FormatWarnings(warnings))
	}
	for _, s := range deck.Slides {
		fmt.Printf("%s | %s\n", s.ID, s.Subtitle)
	}
	// Output:
	// slide-0-0 | Morning Routine
	// slide-1-0 | Evening Routine
}

func ExampleFromReader() {
	payload := strings.NewReader("# Sleep\nRest deeply every night.")

	sections := pagina.MustSlides(pagina.FromReader(payload).DetectFormat().Sections())
	for _, sec := range sections {
		fmt.Printf("%s: %s\n", sec.Heading, sec.Content)
	}
	// Output:
	// Sleep: Rest deeply every night.
}

func Example_customBudgets() {
	oracle := paginate.NewBudgetOracleWithBudgets(map[model.ViewportClass]int{
		model.ViewportCompact: 64,
	})

	text := "SECTION 1: Hydration\n" +
		"Warm water aids digestion. Cold drinks slow it down. Sip through the day."

	deck := pagina.MustSlides(pagina.Narrative(text).
		Viewport(model.ViewportCompact).
		Oracle(oracle).
		Slides())
	for _, s := range deck.Slides {
		fmt.Println(s.Subtitle)
	}
	// Output:
	// Hydration (1/2)
	// Hydration (2/2)
}

func Example_formatting() {
	text := "SECTION 1: Diet\n" +
		"Favor warm foods (In moderation). Why does it matter? Charaka Samhita 1.5 explains."

	deck := pagina.MustSlides(pagina.Narrative(text).Slides())
	for _, span := range deck.Slides[0].Spans {
		fmt.Printf("%s %q\n", span.Kind, span.Text)
	}
	// Output:
	// plain "Favor warm foods "
	// strong "(In moderation)"
	// plain ". "
	// strong "Why"
	// plain " does it matter? "
	// citation "Charaka Samhita 1.5"
	// plain " explains."
}

func Example_warnings() {
	deck, warnings, err := pagina.Narrative("SECTION 1: Rest\nSleep by ten.").
		Oracle(coldOracle{}).
		Slides()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("slides:", len(deck.Slides))
	fmt.Println(pagina.FormatWarnings(warnings))
	// Output:
	// slides: 1
	// oracle_fallback: layout oracle not ready for the standard viewport; character budgets served
}

func Example_errorHandling() {
	_, _, err := pagina.FromReader(nil).Slides()
	if err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// error: no reader provided
}
