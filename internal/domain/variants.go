package domain

import (
	"strings"
	"unicode/utf8"
)

const (
	// MaxSearchVariants bounds the number of OR'd ILIKE predicates a single
	// search term expands into.
	MaxSearchVariants = 10

	// MinSearchLength is the minimum term length (in runes, after trim) that
	// callers forward to SearchVariants. Shorter terms mean "no text filter".
	MinSearchLength = 3
)

var acuteVowels = map[rune]rune{
	'a': 'á',
	'e': 'é',
	'i': 'í',
	'o': 'ó',
	'u': 'ú',
}

// SearchTerm trims the raw user input and reports whether it is long enough
// to be used as a text filter.
func SearchTerm(raw string, minLen int) (string, bool) {
	term := strings.TrimSpace(raw)
	if minLen <= 0 {
		minLen = MinSearchLength
	}
	if utf8.RuneCountInString(term) < minLen {
		return "", false
	}
	return term, true
}

// SearchVariants expands a search term into accent variants for a backend
// that only supports literal substring matching. The result always starts
// with the lowercased term and its diacritic-free form, followed by one
// variant per vowel position of the diacritic-free form with only that vowel
// accented ("politica" -> "pólitica", "política", "politíca", "politicá").
// The result holds at most MaxSearchVariants distinct strings.
func SearchVariants(term string) []string {
	lower := strings.ToLower(strings.TrimSpace(term))
	if lower == "" {
		return nil
	}
	plain := StripDiacritics(lower)

	variants := make([]string, 0, MaxSearchVariants)
	seen := make(map[string]struct{}, MaxSearchVariants)
	add := func(v string) bool {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			variants = append(variants, v)
		}
		return len(variants) < MaxSearchVariants
	}

	add(lower)
	if !add(plain) {
		return variants
	}

	runes := []rune(plain)
	for i, r := range runes {
		accented, ok := acuteVowels[r]
		if !ok {
			continue
		}
		runes[i] = accented
		more := add(string(runes))
		runes[i] = r
		if !more {
			break
		}
	}

	return variants
}
