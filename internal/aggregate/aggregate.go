// Package aggregate folds label rows into frequency tables keyed by
// normalized key and pages through backend result sets that are capped per
// request.
package aggregate

import (
	"slices"
	"strings"

	"github.com/DAAT-RI/quipu/internal/domain"
)

// DefaultSeparators split multi-valued label fields ("Salud; Educación").
const DefaultSeparators = ";,"

// Bucket is one row of a frequency table. Label is the first label seen for
// the key.
type Bucket struct {
	Label string
	Count int
}

// Table maps a normalized key to its bucket.
type Table map[string]Bucket

// Entry is a flattened Table row.
type Entry struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Add counts one occurrence of key. The stored label is only set on first sight.
func (t Table) Add(key, label string) {
	if key == "" {
		return
	}
	b, ok := t[key]
	if !ok {
		b.Label = label
	}
	b.Count++
	t[key] = b
}

// Total returns the sum of all bucket counts.
func (t Table) Total() int {
	total := 0
	for _, b := range t {
		total += b.Count
	}
	return total
}

// Sorted returns the table ordered by count (descending) then key.
func (t Table) Sorted() []Entry {
	out := make([]Entry, 0, len(t))
	for k, b := range t {
		out = append(out, Entry{Key: k, Label: b.Label, Count: b.Count})
	}
	slices.SortFunc(out, func(a, b Entry) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Key, b.Key)
	})
	return out
}

// CountBy folds rows into a Table. Rows whose key is empty are skipped.
func CountBy[T any](rows []T, keyOf, labelOf func(T) string) Table {
	t := make(Table)
	for _, row := range rows {
		t.Add(keyOf(row), labelOf(row))
	}
	return t
}

// CountLabels counts single-valued label fields under domain.NormalizeKey.
func CountLabels[T any](rows []T, fieldOf func(T) string) Table {
	return CountBy(rows,
		func(row T) string { return domain.NormalizeKey(fieldOf(row)) },
		func(row T) string { return strings.TrimSpace(fieldOf(row)) },
	)
}

// CountMulti splits a multi-valued field of every row and counts each label
// independently under domain.NormalizeKey. An empty seps uses
// DefaultSeparators.
func CountMulti[T any](rows []T, fieldOf func(T) string, seps string) Table {
	t := make(Table)
	for _, row := range rows {
		for _, label := range SplitLabels(fieldOf(row), seps) {
			t.Add(domain.NormalizeKey(label), label)
		}
	}
	return t
}

// SplitLabels splits field on any rune of seps, trims each segment and drops
// empty ones. An empty seps uses DefaultSeparators.
func SplitLabels(field, seps string) []string {
	if seps == "" {
		seps = DefaultSeparators
	}
	parts := strings.FieldsFunc(field, func(r rune) bool {
		return strings.ContainsRune(seps, r)
	})
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
