package catalog

import "fmt"

// MatchPolicy decides which product a partial selection identifies.
type MatchPolicy int

const (
	// MatchUnique returns a product only when every product consistent with
	// the selection shares one lookup key.
	MatchUnique MatchPolicy = iota
	// MatchFirst requires behandlung and produkt and returns the first
	// consistent product in catalog order.
	MatchFirst
)

// ParseMatchPolicy converts "unique" or "first" into a MatchPolicy.
func ParseMatchPolicy(s string) (MatchPolicy, error) {
	switch s {
	case "", "unique":
		return MatchUnique, nil
	case "first":
		return MatchFirst, nil
	}
	return 0, fmt.Errorf("unknown match policy %q", s)
}

func (m MatchPolicy) String() string {
	if m == MatchFirst {
		return "first"
	}
	return "unique"
}

// Match locates the product identified by selection.
func Match(products []Product, selection Selection, policy MatchPolicy) (Product, bool) {
	if selection.IsEmpty() {
		return Product{}, false
	}
	if policy == MatchFirst && (selection[Behandlung] == "" || selection[Produkt] == "") {
		return Product{}, false
	}

	var (
		found Product
		ok    bool
	)
	for _, p := range products {
		if !selection.matches(p, "") {
			continue
		}
		if !ok {
			found, ok = p, true
			if policy == MatchFirst {
				return found, true
			}
			continue
		}
		if p.Key() != found.Key() {
			return Product{}, false
		}
	}
	return found, ok
}
