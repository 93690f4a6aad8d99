package polynomial

import (
	"fmt"
	"sort"
	"strings"
)

// Poly is a polynomial in the lag operator B. Coefficients are indexed by
// power of B and may be numeric or symbolic. A Poly is normalized: it never
// stores trailing zero coefficients. The zero polynomial and the identity
// polynomial [1] are distinct values.
//
// A Poly also carries symbol bindings (parameter name -> numeric value).
// Bindings travel through the algebra; combining two polynomials that bind
// the same symbol to different values is a DomainError.
//
// Poly values are immutable: every operation returns a new value.
type Poly struct {
	coeffs   []Coeff
	bindings map[string]float64
}

// Zero returns the zero polynomial.
func Zero() Poly {
	return Poly{}
}

// One returns the identity polynomial [1].
func One() Poly {
	return Poly{coeffs: []Coeff{Num(1)}}
}

// FromCoefficients builds a polynomial from numeric coefficients, index k
// holding the coefficient of B^k.
func FromCoefficients(values []float64) Poly {
	coeffs := make([]Coeff, len(values))
	for i, v := range values {
		coeffs[i] = Num(v)
	}
	return normalize(coeffs, nil)
}

// FromCoeffs builds a polynomial from possibly symbolic coefficients, index k
// holding the coefficient of B^k.
func FromCoeffs(coeffs []Coeff) Poly {
	return normalize(append([]Coeff(nil), coeffs...), nil)
}

// normalize trims trailing zero coefficients.
func normalize(coeffs []Coeff, bindings map[string]float64) Poly {
	n := len(coeffs)
	for n > 0 && coeffs[n-1].IsZero() {
		n--
	}
	if n == 0 {
		return Poly{bindings: bindings}
	}
	return Poly{coeffs: coeffs[:n], bindings: bindings}
}

// Degree returns the highest power of B with a nonzero coefficient, or -1
// for the zero polynomial.
func (p Poly) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	return len(p.coeffs) == 0
}

// IsOne reports whether p is the identity polynomial [1].
func (p Poly) IsOne() bool {
	if len(p.coeffs) != 1 {
		return false
	}
	v, ok := p.coeffs[0].Value()
	return ok && v == 1
}

// Coeff returns the coefficient of B^k, the zero coefficient when k exceeds
// the degree.
func (p Poly) Coeff(k int) Coeff {
	if k < 0 || k >= len(p.coeffs) {
		return Coeff{}
	}
	return p.coeffs[k]
}

// Coefficients returns a copy of the coefficient sequence, length Degree()+1.
func (p Poly) Coefficients() []Coeff {
	return append([]Coeff(nil), p.coeffs...)
}

// Symbols returns the distinct symbol names appearing in any coefficient,
// sorted.
func (p Poly) Symbols() []string {
	seen := make(map[string]bool)
	var names []string
	for _, c := range p.coeffs {
		for _, s := range c.Symbols() {
			if !seen[s] {
				seen[s] = true
				names = append(names, s)
			}
		}
	}
	sort.Strings(names)
	return names
}

// Unbound returns the symbols that appear in p without a binding, sorted.
func (p Poly) Unbound() []string {
	var names []string
	for _, s := range p.Symbols() {
		if _, ok := p.bindings[s]; !ok {
			names = append(names, s)
		}
	}
	return names
}

// Bindings returns a copy of the symbol bindings carried by p.
func (p Poly) Bindings() map[string]float64 {
	if len(p.bindings) == 0 {
		return nil
	}
	out := make(map[string]float64, len(p.bindings))
	for k, v := range p.bindings {
		out[k] = v
	}
	return out
}

// Bind returns a copy of p with the named symbol bound to value. Binding an
// already-bound symbol to a different value is a DomainError.
func (p Poly) Bind(name string, value float64) (Poly, error) {
	if prev, ok := p.bindings[name]; ok && prev != value {
		return Poly{}, &DomainError{
			Op:  "bind",
			Msg: fmt.Sprintf("symbol %s already bound to %g, cannot rebind to %g", name, prev, value),
		}
	}
	out := p.Bindings()
	if out == nil {
		out = make(map[string]float64, 1)
	}
	out[name] = value
	return Poly{coeffs: p.coeffs, bindings: out}, nil
}

// Add returns p + q, padding the shorter operand with zeros.
func (p Poly) Add(q Poly) (Poly, error) {
	bindings, err := mergeBindings("add", p.bindings, q.bindings)
	if err != nil {
		return Poly{}, err
	}
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	coeffs := make([]Coeff, n)
	for i := range coeffs {
		coeffs[i] = addCoeff(p.Coeff(i), q.Coeff(i))
	}
	return normalize(coeffs, bindings), nil
}

// Mul returns the product p*q by discrete convolution. For nonzero operands
// the result degree is Degree(p) + Degree(q).
func (p Poly) Mul(q Poly) (Poly, error) {
	bindings, err := mergeBindings("multiply", p.bindings, q.bindings)
	if err != nil {
		return Poly{}, err
	}
	if p.IsZero() || q.IsZero() {
		return Poly{bindings: bindings}, nil
	}

	// Numeric fast path: plain float64 convolution when no coefficient on
	// either side carries a symbol.
	if pa, ok := p.numericValues(); ok {
		if qa, ok := q.numericValues(); ok {
			out := make([]float64, len(pa)+len(qa)-1)
			for i, a := range pa {
				for j, b := range qa {
					out[i+j] += a * b
				}
			}
			coeffs := make([]Coeff, len(out))
			for i, v := range out {
				coeffs[i] = Num(v)
			}
			return normalize(coeffs, bindings), nil
		}
	}

	coeffs := make([]Coeff, len(p.coeffs)+len(q.coeffs)-1)
	for i, a := range p.coeffs {
		if a.IsZero() {
			continue
		}
		for j, b := range q.coeffs {
			if b.IsZero() {
				continue
			}
			coeffs[i+j] = addCoeff(coeffs[i+j], mulCoeff(a, b))
		}
	}
	return normalize(coeffs, bindings), nil
}

// Pow returns p^n via exponentiation by squaring. Pow(p, 0) is One().
// A negative exponent is a DomainError.
func (p Poly) Pow(n int) (Poly, error) {
	if n < 0 {
		return Poly{}, &DomainError{Op: "power", Msg: fmt.Sprintf("negative exponent %d", n)}
	}
	result := One()
	result.bindings = p.Bindings()
	base := p
	for n > 0 {
		var err error
		if n&1 == 1 {
			if result, err = result.Mul(base); err != nil {
				return Poly{}, err
			}
		}
		n >>= 1
		if n > 0 {
			if base, err = base.Mul(base); err != nil {
				return Poly{}, err
			}
		}
	}
	return result, nil
}

// SubstituteBPower maps B to B^m: the coefficient at index k moves to index
// k*m with zeros in between, realizing Phi(B^m) from Phi(B). m < 1 is a
// DomainError.
func (p Poly) SubstituteBPower(m int) (Poly, error) {
	if m < 1 {
		return Poly{}, &DomainError{Op: "substitute", Msg: fmt.Sprintf("period must be >= 1, got %d", m)}
	}
	if m == 1 || p.IsZero() {
		return p, nil
	}
	coeffs := make([]Coeff, (len(p.coeffs)-1)*m+1)
	for k, c := range p.coeffs {
		coeffs[k*m] = c
	}
	return normalize(coeffs, p.Bindings()), nil
}

// Resolve substitutes numeric values for symbols using the carried bindings
// plus the supplied parameter values. A parameter that conflicts with an
// existing binding is a DomainError. Symbols with no value remain symbolic
// in the result; the result carries no bindings.
func (p Poly) Resolve(params map[string]float64) (Poly, error) {
	combined, err := mergeBindings("resolve", p.bindings, params)
	if err != nil {
		return Poly{}, err
	}
	coeffs := make([]Coeff, len(p.coeffs))
	for i, c := range p.coeffs {
		coeffs[i] = c.resolve(combined)
	}
	return normalize(coeffs, nil), nil
}

// NumericCoefficients resolves the carried bindings and returns the
// coefficients as plain floats, length Degree()+1 (empty for the zero
// polynomial). It fails with UnresolvedSymbolError when unbound symbols
// remain.
func (p Poly) NumericCoefficients() ([]float64, error) {
	r, err := p.Resolve(nil)
	if err != nil {
		return nil, err
	}
	if unbound := r.Symbols(); len(unbound) > 0 {
		return nil, &UnresolvedSymbolError{Symbols: unbound}
	}
	out := make([]float64, len(r.coeffs))
	for i, c := range r.coeffs {
		out[i], _ = c.Value()
	}
	return out, nil
}

// Eval evaluates the polynomial at the complex point z in Horner form. It
// fails with UnresolvedSymbolError when unbound symbols remain.
func (p Poly) Eval(z complex128) (complex128, error) {
	coeffs, err := p.NumericCoefficients()
	if err != nil {
		return 0, err
	}
	var acc complex128
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc*z + complex(coeffs[i], 0)
	}
	return acc, nil
}

// numericValues returns the coefficients as floats when every coefficient is
// numeric without resolving any binding.
func (p Poly) numericValues() ([]float64, bool) {
	out := make([]float64, len(p.coeffs))
	for i, c := range p.coeffs {
		v, ok := c.Value()
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// String renders the polynomial in ascending powers of B, e.g.
// "1 - 0.5*B + phi_2*B^2".
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	first := true
	for k, c := range p.coeffs {
		if c.IsZero() {
			continue
		}
		s := renderTerm(c, k)
		if first {
			b.WriteString(s)
			first = false
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

func renderTerm(c Coeff, k int) string {
	cs := c.String()
	if k == 0 {
		return cs
	}
	pow := "B"
	if k > 1 {
		pow = fmt.Sprintf("B^%d", k)
	}
	if len(c.terms) > 1 {
		return "(" + cs + ")*" + pow
	}
	switch cs {
	case "1":
		return pow
	case "-1":
		return "-" + pow
	}
	return cs + "*" + pow
}

// mergeBindings combines the binding sets of two operands, failing when the
// same symbol carries two different values.
func mergeBindings(op string, a, b map[string]float64) (map[string]float64, error) {
	if len(a) == 0 && len(b) == 0 {
		return nil, nil
	}
	out := make(map[string]float64, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		if prev, ok := out[k]; ok && prev != v {
			return nil, &DomainError{
				Op:  op,
				Msg: fmt.Sprintf("symbol %s bound to both %g and %g", k, prev, v),
			}
		}
		out[k] = v
	}
	return out, nil
}
