// Package formula evaluates the user-editable pricing formulas.
//
// A formula is an arithmetic template with {name} placeholders, for example
// "{preis} * {anzahl}". Placeholders are replaced by the bound values, the
// result is checked against a strict character whitelist and then evaluated
// by a small recursive-descent parser that only knows numbers, + - * / and
// parentheses.
package formula

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Recognized variable names.
const (
	VarPreis        = "preis"
	VarAnzahl       = "anzahl"
	VarZeitaufwand  = "zeitaufwand"
	VarStundenlohn  = "stundenlohn"
	VarSchnittpreis = "schnittpreis"
	VarMwst         = "mwst"
)

// Variables lists every placeholder name a formula may use.
var Variables = []string{VarPreis, VarAnzahl, VarZeitaufwand, VarStundenlohn, VarSchnittpreis, VarMwst}

var (
	ErrUnknownPlaceholder = errors.New("unknown placeholder")
	ErrDisallowedChar     = errors.New("disallowed character")
	ErrSyntax             = errors.New("syntax error")
	ErrDivisionByZero     = errors.New("division by zero")
	ErrNotFinite          = errors.New("result is not finite")
)

var placeholderRe = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Evaluate substitutes bindings into template and returns the value of the
// resulting expression. Any failure yields 0.
func Evaluate(template string, bindings map[string]float64) float64 {
	v, err := Eval(template, bindings)
	if err != nil {
		return 0
	}
	return v
}

// Eval is Evaluate with the failure reason.
func Eval(template string, bindings map[string]float64) (float64, error) {
	expr := Substitute(template, bindings)
	if err := sanitize(expr); err != nil {
		return 0, err
	}

	v, err := parse(expr)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	return v, nil
}

// Substitute replaces every {name} in template with the decimal text of
// bindings[name]. Names that are not identifiers are ignored; placeholders
// without a binding are left in place.
func Substitute(template string, bindings map[string]float64) string {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		if isIdent(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	expr := template
	for _, name := range names {
		expr = strings.ReplaceAll(expr, "{"+name+"}", formatNumber(bindings[name]))
	}
	return expr
}

// Check validates a template for saving: every placeholder must be a
// recognized variable and the expression must parse. Arithmetic faults that
// depend on the bound values (division by zero) are not reported.
func Check(template string) error {
	for _, name := range Placeholders(template) {
		if !IsVariable(name) {
			return &PlaceholderError{Name: name}
		}
	}

	ones := make(map[string]float64, len(Variables))
	for _, name := range Variables {
		ones[name] = 1
	}

	_, err := Eval(template, ones)
	if errors.Is(err, ErrDivisionByZero) || errors.Is(err, ErrNotFinite) {
		return nil
	}
	return err
}

// Placeholders returns the distinct placeholder names of template in order
// of first appearance.
func Placeholders(template string) []string {
	names := []string{}
	seen := make(map[string]bool)
	for _, m := range placeholderRe.FindAllStringSubmatch(template, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// IsVariable reports whether name is a recognized variable.
func IsVariable(name string) bool {
	for _, v := range Variables {
		if v == name {
			return true
		}
	}
	return false
}

// PlaceholderError reports a placeholder that no variable resolves.
type PlaceholderError struct {
	Name string
}

func (e *PlaceholderError) Error() string {
	return ErrUnknownPlaceholder.Error() + " {" + e.Name + "}"
}

func (e *PlaceholderError) Unwrap() error { return ErrUnknownPlaceholder }

// formatNumber renders v so that it can be spliced into an expression.
// Negative values are parenthesized to keep "{a}-{b}" well formed; NaN and
// Inf render as words and are rejected by sanitize.
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if v < 0 {
		return "(" + s + ")"
	}
	return s
}

func sanitize(expr string) error {
	if m := placeholderRe.FindStringSubmatch(expr); m != nil {
		return &PlaceholderError{Name: m[1]}
	}
	for i := 0; i < len(expr); i++ {
		if !allowed(expr[i]) {
			return ErrDisallowedChar
		}
	}
	return nil
}

func allowed(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c == '.', c == '+', c == '-', c == '*', c == '/', c == '(', c == ')':
		return true
	case c == ' ', c == '\t', c == '\n', c == '\r':
		return true
	}
	return false
}

func isIdent(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
