package polynomial

import (
	"sort"
	"strconv"
	"strings"
)

// term is a single monomial of a coefficient: a numeric factor times a
// product of symbols. syms is kept sorted; a repeated name encodes a power
// (e.g. ["phi_1", "phi_1"] is phi_1^2).
type term struct {
	factor float64
	syms   []string
}

func (t term) key() string {
	return strings.Join(t.syms, "*")
}

// Coeff is one polynomial coefficient: either a plain numeric value or an
// unresolved linear combination of symbol monomials. The zero value is the
// numeric coefficient 0.
type Coeff struct {
	terms []term
}

// Num returns a numeric coefficient.
func Num(v float64) Coeff {
	if v == 0 {
		return Coeff{}
	}
	return Coeff{terms: []term{{factor: v}}}
}

// Sym returns a purely symbolic coefficient for the named parameter.
func Sym(name string) Coeff {
	return Coeff{terms: []term{{factor: 1, syms: []string{name}}}}
}

// IsZero reports whether the coefficient is exactly zero.
func (c Coeff) IsZero() bool {
	return len(c.terms) == 0
}

// IsNumeric reports whether the coefficient carries no symbols.
func (c Coeff) IsNumeric() bool {
	for _, t := range c.terms {
		if len(t.syms) > 0 {
			return false
		}
	}
	return true
}

// Value returns the numeric value of the coefficient. ok is false when the
// coefficient still carries symbols.
func (c Coeff) Value() (v float64, ok bool) {
	if len(c.terms) == 0 {
		return 0, true
	}
	if len(c.terms) == 1 && len(c.terms[0].syms) == 0 {
		return c.terms[0].factor, true
	}
	return 0, false
}

// Symbols returns the distinct symbol names appearing in the coefficient,
// sorted.
func (c Coeff) Symbols() []string {
	seen := make(map[string]bool)
	var names []string
	for _, t := range c.terms {
		for _, s := range t.syms {
			if !seen[s] {
				seen[s] = true
				names = append(names, s)
			}
		}
	}
	sort.Strings(names)
	return names
}

// Neg returns the additive inverse of the coefficient.
func (c Coeff) Neg() Coeff {
	out := make([]term, len(c.terms))
	for i, t := range c.terms {
		out[i] = term{factor: -t.factor, syms: t.syms}
	}
	return Coeff{terms: out}
}

// addCoeff adds two coefficients, merging like monomials.
func addCoeff(a, b Coeff) Coeff {
	merged := make([]term, 0, len(a.terms)+len(b.terms))
	merged = append(merged, a.terms...)
	merged = append(merged, b.terms...)
	return canonical(merged)
}

// mulCoeff multiplies two coefficients term by term.
func mulCoeff(a, b Coeff) Coeff {
	if a.IsZero() || b.IsZero() {
		return Coeff{}
	}
	out := make([]term, 0, len(a.terms)*len(b.terms))
	for _, ta := range a.terms {
		for _, tb := range b.terms {
			syms := make([]string, 0, len(ta.syms)+len(tb.syms))
			syms = append(syms, ta.syms...)
			syms = append(syms, tb.syms...)
			sort.Strings(syms)
			out = append(out, term{factor: ta.factor * tb.factor, syms: syms})
		}
	}
	return canonical(out)
}

// resolve substitutes bound symbol values into the coefficient. Symbols
// without a binding are left in place.
func (c Coeff) resolve(bindings map[string]float64) Coeff {
	if len(bindings) == 0 || c.IsNumeric() {
		return c
	}
	out := make([]term, 0, len(c.terms))
	for _, t := range c.terms {
		factor := t.factor
		var rest []string
		for _, s := range t.syms {
			if v, ok := bindings[s]; ok {
				factor *= v
			} else {
				rest = append(rest, s)
			}
		}
		out = append(out, term{factor: factor, syms: rest})
	}
	return canonical(out)
}

// canonical sorts monomials by symbol key, merges equal monomials, and drops
// those whose factor cancelled to zero.
func canonical(terms []term) Coeff {
	if len(terms) == 0 {
		return Coeff{}
	}
	sort.SliceStable(terms, func(i, j int) bool {
		ki, kj := terms[i].key(), terms[j].key()
		if ki != kj {
			// Numeric monomial (empty key) sorts first.
			if len(terms[i].syms) != len(terms[j].syms) {
				return len(terms[i].syms) < len(terms[j].syms)
			}
			return ki < kj
		}
		return false
	})

	out := terms[:0]
	for _, t := range terms {
		if len(out) > 0 && out[len(out)-1].key() == t.key() {
			out[len(out)-1].factor += t.factor
			continue
		}
		out = append(out, t)
	}

	nonzero := out[:0]
	for _, t := range out {
		if t.factor != 0 {
			nonzero = append(nonzero, t)
		}
	}
	if len(nonzero) == 0 {
		return Coeff{}
	}
	return Coeff{terms: append([]term(nil), nonzero...)}
}

// String renders the coefficient, e.g. "0.5", "phi_1", or "0.5 + phi_1*Theta_1".
func (c Coeff) String() string {
	if len(c.terms) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, t := range c.terms {
		s := t.render()
		if i == 0 {
			b.WriteString(s)
			continue
		}
		if strings.HasPrefix(s, "-") {
			b.WriteString(" - ")
			b.WriteString(s[1:])
		} else {
			b.WriteString(" + ")
			b.WriteString(s)
		}
	}
	return b.String()
}

func (t term) render() string {
	if len(t.syms) == 0 {
		return strconv.FormatFloat(t.factor, 'g', -1, 64)
	}
	syms := strings.Join(t.syms, "*")
	switch t.factor {
	case 1:
		return syms
	case -1:
		return "-" + syms
	default:
		return strconv.FormatFloat(t.factor, 'g', -1, 64) + "*" + syms
	}
}
