package markup

import (
	"reflect"
	"testing"

	"github.com/tsawler/pagina/model"
)

func assertSpans(t *testing.T, got, expected []model.Span) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("got %d spans, expected %d\ngot: %+v", len(got), len(expected), got)
	}
	for i := range expected {
		if got[i].Kind != expected[i].Kind {
			t.Errorf("span %d kind = %v, expected %v", i, got[i].Kind, expected[i].Kind)
		}
		if got[i].Text != expected[i].Text {
			t.Errorf("span %d text = %q, expected %q", i, got[i].Text, expected[i].Text)
		}
	}
}

func TestFormatEmpty(t *testing.T) {
	f := NewFormatter()
	if spans := f.Format(""); spans != nil {
		t.Errorf("expected nil spans for empty text, got %+v", spans)
	}
	assertSpans(t, f.Format(" "), []model.Span{
		{Kind: model.SpanPlain, Text: " "},
	})
}

func TestFormatHeadingPhrases(t *testing.T) {
	f := NewFormatter()

	spans := f.Format("Why This Matters: because routines compound.\nDaily Habits: walk often.")
	assertSpans(t, spans, []model.Span{
		{Kind: model.SpanStrong, Text: "Why This Matters:"},
		{Kind: model.SpanPlain, Text: " because routines compound.\n"},
		{Kind: model.SpanStrong, Text: "Daily Habits:"},
		{Kind: model.SpanPlain, Text: " walk often."},
	})
}

func TestFormatStripsEmphasisMarkers(t *testing.T) {
	f := NewFormatter()
	spans := f.Format("Eat **warm** foods and *rest* well.")
	assertSpans(t, spans, []model.Span{
		{Kind: model.SpanPlain, Text: "Eat warm foods and rest well."},
	})
}

func TestFormatCapitalizesLineStarts(t *testing.T) {
	f := NewFormatter()
	spans := f.Format("the body adapts.\nit compounds daily.")
	assertSpans(t, spans, []model.Span{
		{Kind: model.SpanPlain, Text: "The body adapts.\nIt compounds daily."},
	})
}

func TestFormatAside(t *testing.T) {
	f := NewFormatter()
	spans := f.Format("Agni weakens (including digestion) at night.")
	assertSpans(t, spans, []model.Span{
		{Kind: model.SpanPlain, Text: "Agni weakens "},
		{Kind: model.SpanStrong, Text: "(Including digestion)"},
		{Kind: model.SpanPlain, Text: " at night."},
	})
}

func TestFormatPercentage(t *testing.T) {
	f := NewFormatter()
	spans := f.Format("Symptoms improved by 25% within weeks.")
	assertSpans(t, spans, []model.Span{
		{Kind: model.SpanPlain, Text: "Symptoms improved by "},
		{Kind: model.SpanStrong, Text: "25%"},
		{Kind: model.SpanPlain, Text: " within weeks."},
	})
}

func TestFormatScorePhrase(t *testing.T) {
	f := NewFormatter()
	spans := f.Format("You earned an 85 wellness score overall.")
	assertSpans(t, spans, []model.Span{
		{Kind: model.SpanPlain, Text: "You earned an "},
		{Kind: model.SpanStrong, Text: "85 wellness score"},
		{Kind: model.SpanPlain, Text: " overall."},
	})
}

func TestFormatQuotedPhrase(t *testing.T) {
	f := NewFormatter()

	t.Run("straight quotes", func(t *testing.T) {
		spans := f.Format(`Favor "gentle detox" practices.`)
		assertSpans(t, spans, []model.Span{
			{Kind: model.SpanPlain, Text: "Favor "},
			{Kind: model.SpanEmphasis, Text: `"Gentle detox"`},
			{Kind: model.SpanPlain, Text: " practices."},
		})
	})

	t.Run("curly quotes", func(t *testing.T) {
		spans := f.Format("Favor “gentle detox” practices.")
		assertSpans(t, spans, []model.Span{
			{Kind: model.SpanPlain, Text: "Favor "},
			{Kind: model.SpanEmphasis, Text: "“Gentle detox”"},
			{Kind: model.SpanPlain, Text: " practices."},
		})
	})
}

func TestFormatQuestionWord(t *testing.T) {
	f := NewFormatter()

	t.Run("sentence start", func(t *testing.T) {
		spans := f.Format("This helps. Why does it help so much?")
		assertSpans(t, spans, []model.Span{
			{Kind: model.SpanPlain, Text: "This helps. "},
			{Kind: model.SpanStrong, Text: "Why"},
			{Kind: model.SpanPlain, Text: " does it help so much?"},
		})
	})

	t.Run("mid-sentence stays plain", func(t *testing.T) {
		spans := f.Format("He wonders What to eat.")
		assertSpans(t, spans, []model.Span{
			{Kind: model.SpanPlain, Text: "He wonders What to eat."},
		})
	})

	t.Run("text start", func(t *testing.T) {
		spans := f.Format("What matters most is routine.")
		assertSpans(t, spans, []model.Span{
			{Kind: model.SpanStrong, Text: "What"},
			{Kind: model.SpanPlain, Text: " matters most is routine."},
		})
	})
}

// A full pipeline round trip: heading extraction, inline markup and
// citation highlighting together, and formatting already-formatted text
// changes nothing.
func TestFormatPipeline(t *testing.T) {
	f := NewFormatter()
	input := "Morning Routine: rise before sunrise (Ideally 6 AM). \"Consistency\" yields an 80 habit score. " +
		"Why does this work? Charaka Samhita 1.5 explains.\nVerse 2.47 adds detail."

	spans := f.Format(input)
	assertSpans(t, spans, []model.Span{
		{Kind: model.SpanStrong, Text: "Morning Routine:"},
		{Kind: model.SpanPlain, Text: " rise before sunrise "},
		{Kind: model.SpanStrong, Text: "(Ideally 6 AM)"},
		{Kind: model.SpanPlain, Text: ". "},
		{Kind: model.SpanEmphasis, Text: "\"Consistency\""},
		{Kind: model.SpanPlain, Text: " yields an "},
		{Kind: model.SpanStrong, Text: "80 habit score"},
		{Kind: model.SpanPlain, Text: ". "},
		{Kind: model.SpanStrong, Text: "Why"},
		{Kind: model.SpanPlain, Text: " does this work? "},
		{Kind: model.SpanCitation, Text: "Charaka Samhita 1.5"},
		{Kind: model.SpanPlain, Text: " explains.\n"},
		{Kind: model.SpanCitation, Text: "Verse 2.47"},
		{Kind: model.SpanPlain, Text: " adds detail."},
	})

	// The input carries no markers and is already capitalized, so the
	// span text concatenates back to it unchanged.
	if flat := model.FlattenSpans(spans); flat != input {
		t.Errorf("flattened spans = %q, expected the input text", flat)
	}

	again := f.Format(model.FlattenSpans(spans))
	if !reflect.DeepEqual(spans, again) {
		t.Errorf("reformatting formatted text changed spans:\nfirst:  %+v\nsecond: %+v", spans, again)
	}
}

func TestFormatFlattenPreservesVisibleText(t *testing.T) {
	f := NewFormatter()
	input := "Dosha Balance: favor **warm** foods (including soups) and \"rest\" often."
	expected := "Dosha Balance: favor warm foods (Including soups) and \"Rest\" often."

	if flat := model.FlattenSpans(f.Format(input)); flat != expected {
		t.Errorf("flattened spans = %q, expected %q", flat, expected)
	}
}
