package reader

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DecodeText reads r to completion and decodes it to UTF-8 text. A
// leading byte order mark selects UTF-8, UTF-16LE or UTF-16BE and is
// dropped; payloads without one are read as UTF-8, with invalid bytes
// replaced. Decoded text is NFC-normalized.
func DecodeText(r io.Reader) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return "", fmt.Errorf("decoding text payload: %w", err)
	}
	return norm.NFC.String(string(data)), nil
}
