// SPDX-License-Identifier: MIT

package core

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize reduces a city name to its lookup key: surrounding space is
// trimmed, inner runs of whitespace collapse to one space, the text is
// decomposed (NFD), combining marks are dropped and the result is case-folded.
//
//	Normalize("  Córdoba ")    == "cordoba"
//	Normalize("SANTA   FE")    == "santa fe"
//
// Transformers and casers keep internal state, so a fresh chain is built per
// call and Normalize is safe for concurrent use.
func Normalize(name string) string {
	collapsed := strings.Join(strings.Fields(name), " ")
	if collapsed == "" {
		return ""
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, collapsed)
	if err != nil {
		// Only malformed UTF-8 can fail here; fall back to case folding alone.
		stripped = collapsed
	}

	return cases.Fold().String(stripped)
}
