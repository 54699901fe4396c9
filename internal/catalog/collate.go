package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collators and casers keep internal state, so each call builds its own.

// SortGerman sorts values in place using German collation.
func SortGerman(values []string) {
	collate.New(language.German).SortStrings(values)
}

// CompareGerman compares a and b using German collation.
func CompareGerman(a, b string) int {
	return collate.New(language.German).CompareString(a, b)
}

// Search keeps the options whose text contains query, ignoring case.
// An empty query returns opts unchanged.
func Search(opts Options, query string) Options {
	query = strings.TrimSpace(query)
	if query == "" {
		return opts
	}

	fold := cases.Fold()
	needle := fold.String(query)
	keep := func(values []string) []string {
		out := make([]string, 0, len(values))
		for _, v := range values {
			if strings.Contains(fold.String(v), needle) {
				out = append(out, v)
			}
		}
		return out
	}

	return Options{Available: keep(opts.Available), Unavailable: keep(opts.Unavailable)}
}
