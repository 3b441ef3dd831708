package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and drops combining marks. The result is left
// decomposed: every precomposed letter has already lost its accent, so
// recomposing would not change it.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// StripDiacritics removes combining diacritical marks after canonical
// decomposition (e.g. "Minería" -> "Mineria"). Case is preserved.
func StripDiacritics(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		// transform only fails on invalid internal state; keep the input.
		return s
	}
	return out
}

// NormalizeName prepares free text for alias storage and comparison:
//   - converts to lowercase
//   - trims leading/trailing whitespace
//   - strips diacritics
//   - compresses whitespace runs into one space
//
// It is the form stored in stakeholder_aliases.alias_normalized.
func NormalizeName(text string) string {
	text = strings.TrimSpace(strings.ToLower(text))
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(StripDiacritics(text)), " ")
}

// NormalizeKey canonicalizes a human-readable label into a stable key:
// lowercase, trimmed, diacritics stripped, inner whitespace replaced by a
// single underscore ("Cambio Climático y Medio Ambiente" ->
// "cambio_climatico_y_medio_ambiente").
//
// NormalizeKey is idempotent. Configuration indices and ad hoc grouping at
// query time both go through it, so the two always agree.
func NormalizeKey(text string) string {
	text = strings.TrimSpace(strings.ToLower(text))
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(StripDiacritics(text)), "_")
}
