package catalog

import "fmt"

// Selection maps attributes to the chosen value. A missing or empty value
// means the attribute is unset.
type Selection map[Attribute]string

// CascadePolicy decides what happens to downstream choices when an
// upstream attribute changes.
type CascadePolicy int

const (
	// CascadeClear clears downstream choices that no longer fit.
	CascadeClear CascadePolicy = iota
	// CascadeKeep leaves downstream choices untouched.
	CascadeKeep
)

// ParseCascadePolicy converts "clear" or "keep" into a CascadePolicy.
func ParseCascadePolicy(s string) (CascadePolicy, error) {
	switch s {
	case "", "clear":
		return CascadeClear, nil
	case "keep":
		return CascadeKeep, nil
	}
	return 0, fmt.Errorf("unknown cascade policy %q", s)
}

func (c CascadePolicy) String() string {
	if c == CascadeKeep {
		return "keep"
	}
	return "clear"
}

// Get returns the value selected for a.
func (s Selection) Get(a Attribute) string {
	return s[a]
}

// IsEmpty reports whether no attribute is set.
func (s Selection) IsEmpty() bool {
	for _, a := range Attributes {
		if s[a] != "" {
			return false
		}
	}
	return true
}

// Clone returns a copy of s holding only the set attributes.
func (s Selection) Clone() Selection {
	out := make(Selection, len(Attributes))
	for _, a := range Attributes {
		if v := s[a]; v != "" {
			out[a] = v
		}
	}
	return out
}

// Reset returns an empty selection.
func Reset() Selection {
	return Selection{}
}

// Clear returns a copy of s with a unset.
func (s Selection) Clear(a Attribute) Selection {
	out := s.Clone()
	delete(out, a)
	return out
}

// Choose returns a copy of s with a set to value. Under CascadeClear every
// attribute below a whose value no longer occurs together with the
// attributes above it is cleared, top to bottom.
func (s Selection) Choose(products []Product, a Attribute, value string, policy CascadePolicy) Selection {
	out := s.Clone()
	if value == "" {
		delete(out, a)
		return out
	}
	out[a] = value
	if policy == CascadeKeep {
		return out
	}

	for _, d := range Attributes[a.index()+1:] {
		if out[d] == "" {
			continue
		}
		if !out.upstreamConsistent(products, d) {
			delete(out, d)
		}
	}
	return out
}

// upstreamConsistent reports whether some product carries the value chosen
// for d together with every choice made above d.
func (s Selection) upstreamConsistent(products []Product, d Attribute) bool {
	upstream := Attributes[:d.index()+1]
	for _, p := range products {
		ok := true
		for _, a := range upstream {
			if v := s[a]; v != "" && p.Value(a) != v {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

// matches reports whether p agrees with every set attribute except skip.
func (s Selection) matches(p Product, skip Attribute) bool {
	for _, a := range Attributes {
		if a == skip {
			continue
		}
		if v := s[a]; v != "" && p.Value(a) != v {
			return false
		}
	}
	return true
}
