// Package aggregation computes totals and filtered, sorted views over in-memory snapshots of
// planning transactions and shopping items. Every function is pure: inputs are never modified
// and results are freshly allocated, so callers may share snapshots between goroutines.
package aggregation

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOrder is the direction requested by the caller.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Filter returns the elements of in for which keep is true, in input order.
func Filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Partition splits in into the elements matching pred and the rest. Both keep input order.
func Partition[T any](in []T, pred func(T) bool) (matched, rest []T) {
	matched = make([]T, 0, len(in))
	rest = make([]T, 0, len(in))
	for _, v := range in {
		if pred(v) {
			matched = append(matched, v)
		} else {
			rest = append(rest, v)
		}
	}
	return matched, rest
}

// SortedBy returns a stably sorted copy of in.
func SortedBy[T any](in []T, cmp func(a, b T) int) []T {
	out := make([]T, len(in))
	copy(out, in)
	slices.SortStableFunc(out, cmp)
	return out
}

// SumBy adds value(v) over every element.
func SumBy[T any](in []T, value func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range in {
		total = total.Add(value(v))
	}
	return total
}

// FilterByName keeps the elements whose name contains term, ignoring case.
// An empty term keeps everything.
func FilterByName[T any](in []T, term string, name func(T) string) []T {
	if term == "" {
		return Filter(in, func(T) bool { return true })
	}
	return Filter(in, func(v T) bool { return containsFold(name(v), term) })
}

func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(term))
}

// newTextComparer returns a locale-aware string comparison for pt-BR text.
// A collator keeps internal buffers, so each sort gets its own.
func newTextComparer() func(a, b string) int {
	c := collate.New(language.BrazilianPortuguese)
	return c.CompareString
}
