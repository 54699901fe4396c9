package catalog

import (
	"strconv"
	"strings"
)

// Options splits the known values of one attribute into those that are
// consistent with the current selection and those that are not.
type Options struct {
	Available   []string `json:"available"`
	Unavailable []string `json:"unavailable"`
}

// FilteredOptions computes the options for field given selection. Products
// are matched against every selected attribute except field itself; unset
// attributes impose no constraint. Both lists are sorted with German
// collation and are disjoint; together they hold every distinct non-empty
// value of field in products.
func FilteredOptions(products []Product, field Attribute, selection Selection) Options {
	all := make(map[string]struct{})
	avail := make(map[string]struct{})

	for _, p := range products {
		v := p.Value(field)
		if v == "" {
			continue
		}
		all[v] = struct{}{}
		if selection.matches(p, field) {
			avail[v] = struct{}{}
		}
	}

	opts := Options{
		Available:   make([]string, 0, len(avail)),
		Unavailable: make([]string, 0, len(all)-len(avail)),
	}
	for v := range all {
		if _, ok := avail[v]; ok {
			opts.Available = append(opts.Available, v)
		} else {
			opts.Unavailable = append(opts.Unavailable, v)
		}
	}
	SortGerman(opts.Available)
	SortGerman(opts.Unavailable)

	return opts
}

// AllOptions computes FilteredOptions for every attribute.
func AllOptions(products []Product, selection Selection) map[Attribute]Options {
	out := make(map[Attribute]Options, len(Attributes))
	for _, a := range Attributes {
		out[a] = FilteredOptions(products, a, selection)
	}
	return out
}

// UniqueValues returns the sorted distinct non-empty values of field.
func UniqueValues(products []Product, field Attribute) []string {
	return FilteredOptions(products, field, nil).Available
}

// ProductFilter narrows the admin product list. Every non-empty field must
// be contained, case-insensitively, in the corresponding product field.
type ProductFilter struct {
	Behandlung string
	Produkt    string
	Typ        string
	Laenge     string
	ArtikelID  string
	Preis      string
}

// Filter returns the products accepted by f, in catalog order.
func Filter(products []Product, f ProductFilter) []Product {
	contains := func(have, want string) bool {
		if want == "" {
			return true
		}
		return strings.Contains(strings.ToLower(have), strings.ToLower(strings.TrimSpace(want)))
	}

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if !contains(p.Behandlung, f.Behandlung) ||
			!contains(p.Produkt, f.Produkt) ||
			!contains(p.Typ, f.Typ) ||
			!contains(p.Laenge, f.Laenge) ||
			!contains(p.ArtikelID, f.ArtikelID) ||
			!contains(strconv.FormatFloat(p.Preis, 'f', -1, 64), f.Preis) {
			continue
		}
		out = append(out, p)
	}
	return out
}
