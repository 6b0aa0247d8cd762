package phonology

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize prepares user input for classification: surrounding space is
// trimmed, letters are lowercased and composed to NFC so that a decomposed
// "a" plus combining acute compares equal to "á".
func Normalize(word string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(word)))
}
