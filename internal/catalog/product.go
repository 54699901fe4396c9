// Package catalog holds the product catalog and the dependent dropdown logic
// used to pick a product: which attribute values remain choosable for a
// partial selection and which product the selection identifies.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("product not found")
	ErrInvalid  = errors.New("invalid product")
)

// Attribute names one level of the selection hierarchy.
type Attribute string

const (
	Behandlung Attribute = "behandlung"
	Produkt    Attribute = "produkt"
	Typ        Attribute = "typ"
	Laenge     Attribute = "laenge"
)

// Attributes lists the selectable attributes from top to bottom of the hierarchy.
var Attributes = []Attribute{Behandlung, Produkt, Typ, Laenge}

// ParseAttribute converts a field name into an Attribute.
func ParseAttribute(s string) (Attribute, error) {
	for _, a := range Attributes {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown attribute %q", s)
}

func (a Attribute) index() int {
	for i, v := range Attributes {
		if v == a {
			return i
		}
	}
	return -1
}

// Product is one catalog entry.
type Product struct {
	ID         string  `json:"id"`
	Behandlung string  `json:"behandlung"`
	Produkt    string  `json:"produkt"`
	Typ        string  `json:"typ"`
	Laenge     string  `json:"laenge"`
	ArtikelID  string  `json:"artikelId"`
	Preis      float64 `json:"preis"`
	Info       string  `json:"info"`
}

// Key is the effective lookup key of a product.
type Key struct {
	Behandlung string
	Produkt    string
	Typ        string
	Laenge     string
}

// Key returns the (behandlung, produkt, typ, laenge) tuple of p.
func (p Product) Key() Key {
	return Key{Behandlung: p.Behandlung, Produkt: p.Produkt, Typ: p.Typ, Laenge: p.Laenge}
}

// Value returns the value of attribute a.
func (p Product) Value(a Attribute) string {
	switch a {
	case Behandlung:
		return p.Behandlung
	case Produkt:
		return p.Produkt
	case Typ:
		return p.Typ
	case Laenge:
		return p.Laenge
	}
	return ""
}

// Normalize trims surrounding whitespace from all text fields.
func (p Product) Normalize() Product {
	p.Behandlung = strings.TrimSpace(p.Behandlung)
	p.Produkt = strings.TrimSpace(p.Produkt)
	p.Typ = strings.TrimSpace(p.Typ)
	p.Laenge = strings.TrimSpace(p.Laenge)
	p.ArtikelID = strings.TrimSpace(p.ArtikelID)
	p.Info = strings.TrimSpace(p.Info)
	return p
}

// Validate reports whether p can be stored in the catalog.
func (p Product) Validate() error {
	if p.Behandlung == "" {
		return fmt.Errorf("%w: behandlung ist erforderlich", ErrInvalid)
	}
	if p.Produkt == "" {
		return fmt.Errorf("%w: produkt ist erforderlich", ErrInvalid)
	}
	if math.IsNaN(p.Preis) || math.IsInf(p.Preis, 0) || p.Preis < 0 {
		return fmt.Errorf("%w: preis muss eine Zahl größer oder gleich 0 sein", ErrInvalid)
	}
	return nil
}

// ParsePrice parses a price typed by a user. A decimal comma is accepted.
func ParsePrice(raw string) (float64, error) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("%w: ungültiger Preis %q", ErrInvalid, raw)
	}
	return v, nil
}

// NewID returns a fresh product identifier.
func NewID() string {
	return uuid.NewString()
}
