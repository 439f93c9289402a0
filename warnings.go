package pagina

import "strings"

// WarningCode identifies a class of non-fatal composition condition.
type WarningCode string

const (
	// WarnOracleFallback indicates a layout oracle was configured but
	// not ready for the requested viewport class, so the character
	// budget path served the pagination.
	WarnOracleFallback WarningCode = "oracle_fallback"

	// WarnOversizedChunk indicates a single sentence exceeded the
	// viewport on its own and was emitted whole rather than truncated.
	WarnOversizedChunk WarningCode = "oversized_chunk"
)

// Warning describes a non-fatal condition encountered while composing
// a deck. Composition succeeded, but the result may differ from what a
// fully provisioned run would produce.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

// FormatWarnings renders warnings as a single human-readable string,
// one "code: message" pair per warning.
//
// Example:
//
//	deck, warnings, err := pagina.Narrative(text).Slides()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pagina.FormatWarnings(warnings))
//	}
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = string(w.Code) + ": " + w.Message
	}
	return strings.Join(parts, "; ")
}
