package formula

import (
	"fmt"
	"math"
	"strconv"
)

const maxDepth = 128

// parser evaluates a sanitized arithmetic expression:
//
//	expr   = term { ("+" | "-") term }
//	term   = unary { ("*" | "/") unary }
//	unary  = ("+" | "-") unary | primary
//	primary = number | "(" expr ")"
//
// Arithmetic faults are recorded and parsing continues, so a syntax error
// anywhere in the input is always reported ahead of them.
type parser struct {
	src   string
	pos   int
	depth int
	fault error
}

func parse(src string) (float64, error) {
	p := &parser{src: src}
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return 0, p.errorf("unexpected %q", p.src[p.pos])
	}
	if p.fault != nil {
		return 0, p.fault
	}
	return v, nil
}

func (p *parser) expr() (float64, error) {
	left, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return left, nil
		}
		op := p.src[p.pos]
		if op != '+' && op != '-' {
			return left, nil
		}
		p.pos++

		right, err := p.term()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			left += right
		} else {
			left -= right
		}
		if math.IsInf(left, 0) || math.IsNaN(left) {
			left = p.fail(ErrNotFinite)
		}
	}
}

func (p *parser) term() (float64, error) {
	left, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return left, nil
		}
		op := p.src[p.pos]
		if op != '*' && op != '/' {
			return left, nil
		}
		p.pos++

		right, err := p.unary()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			left *= right
		} else {
			if right == 0 {
				left = p.fail(ErrDivisionByZero)
				continue
			}
			left /= right
		}
		if math.IsInf(left, 0) || math.IsNaN(left) {
			left = p.fail(ErrNotFinite)
		}
	}
}

func (p *parser) unary() (float64, error) {
	p.skipSpace()
	if p.pos < len(p.src) && (p.src[p.pos] == '-' || p.src[p.pos] == '+') {
		neg := p.src[p.pos] == '-'
		p.pos++
		if err := p.enter(); err != nil {
			return 0, err
		}
		v, err := p.unary()
		p.depth--
		if err != nil {
			return 0, err
		}
		if neg {
			return -v, nil
		}
		return v, nil
	}
	return p.primary()
}

func (p *parser) primary() (float64, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0, p.errorf("unexpected end of expression")
	}

	if p.src[p.pos] == '(' {
		p.pos++
		if err := p.enter(); err != nil {
			return 0, err
		}
		v, err := p.expr()
		p.depth--
		if err != nil {
			return 0, err
		}
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] != ')' {
			return 0, p.errorf("missing closing parenthesis")
		}
		p.pos++
		return v, nil
	}

	return p.number()
}

func (p *parser) number() (float64, error) {
	start := p.pos
	digits, dots := 0, 0
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c >= '0' && c <= '9' {
			digits++
		} else if c == '.' {
			dots++
		} else {
			break
		}
		p.pos++
	}
	if digits == 0 || dots > 1 {
		if p.pos == start && p.pos < len(p.src) {
			return 0, p.errorf("unexpected %q", p.src[p.pos])
		}
		return 0, p.errorf("malformed number %q", p.src[start:p.pos])
	}

	v, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return p.fail(ErrNotFinite), nil
	}
	return v, nil
}

// fail keeps the first arithmetic fault and yields 0 as the operand value.
func (p *parser) fail(err error) float64 {
	if p.fault == nil {
		p.fault = err
	}
	return 0
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > maxDepth {
		return p.errorf("expression nested too deeply")
	}
	return nil
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, p.pos, fmt.Sprintf(format, args...))
}
