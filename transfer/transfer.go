// Package transfer derives lag-operator transfer functions from ARIMA models.
package transfer

import (
	"sort"

	"github.com/zym9863/Time-Series-Model-Transfer-Function-Analyzer/model"
	"github.com/zym9863/Time-Series-Model-Transfer-Function-Analyzer/polynomial"
)

// TransferFunction is the immutable rational form H(B) = numerator(B) /
// denominator(B) of a model. Alongside the full numerator and denominator it
// keeps the causal AR and MA factors (the polynomials excluding the
// differencing operators) so stability analysis can separate structural unit
// roots from informative ones.
type TransferFunction struct {
	spec     *model.Spec
	num      polynomial.Poly
	den      polynomial.Poly
	arFactor polynomial.Poly // phi(B) * Phi(B^m)
	maFactor polynomial.Poly // theta(B) * Theta(B^m)
	d        int             // non-seasonal differencing order
	sd       int             // seasonal differencing order
	period   int             // seasonal period m (1 for non-seasonal)
}

// Derive builds the transfer function of a model:
//
//	H(B) = theta(B) Theta(B^m) / [phi(B) Phi(B^m) (1-B)^d (1-B^m)^D]
//
// with phi(B) = 1 - sum phi_i B^i and theta(B) = 1 + sum theta_i B^i. The
// structural form is preserved: common factors between numerator and
// denominator are never cancelled. The spec invariants are re-checked
// defensively; a malformed spec yields a model.ValidationError.
func Derive(spec *model.Spec) (*TransferFunction, error) {
	if spec == nil {
		return nil, &model.ValidationError{Field: "spec", Msg: "nil model spec"}
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	arFactor, err := paramPolynomial(spec.ARParams, true)
	if err != nil {
		return nil, err
	}
	maFactor, err := paramPolynomial(spec.MAParams, false)
	if err != nil {
		return nil, err
	}

	sd, period := 0, 1
	if spec.Seasonal != nil {
		so := spec.Seasonal.Order
		sd, period = so.D, so.Period

		sar, err := paramPolynomial(spec.Seasonal.ARParams, true)
		if err != nil {
			return nil, err
		}
		if sar, err = sar.SubstituteBPower(period); err != nil {
			return nil, err
		}
		if arFactor, err = arFactor.Mul(sar); err != nil {
			return nil, err
		}

		sma, err := paramPolynomial(spec.Seasonal.MAParams, false)
		if err != nil {
			return nil, err
		}
		if sma, err = sma.SubstituteBPower(period); err != nil {
			return nil, err
		}
		if maFactor, err = maFactor.Mul(sma); err != nil {
			return nil, err
		}
	}

	den, err := arFactor.Mul(differencing(spec.Order.D))
	if err != nil {
		return nil, err
	}
	if sd > 0 {
		sdiff, err := differencing(sd).SubstituteBPower(period)
		if err != nil {
			return nil, err
		}
		if den, err = den.Mul(sdiff); err != nil {
			return nil, err
		}
	}

	return &TransferFunction{
		spec:     spec,
		num:      maFactor,
		den:      den,
		arFactor: arFactor,
		maFactor: maFactor,
		d:        spec.Order.D,
		sd:       sd,
		period:   period,
	}, nil
}

// differencing returns (1-B)^d. The exponent is non-negative by validation.
func differencing(d int) polynomial.Poly {
	p, _ := polynomial.FromCoefficients([]float64{1, -1}).Pow(d)
	return p
}

// paramPolynomial builds 1 - sum p_i B^i (negate) or 1 + sum p_i B^i from a
// parameter sequence, carrying symbol bindings for bound symbols.
func paramPolynomial(params []model.Param, negate bool) (polynomial.Poly, error) {
	coeffs := make([]polynomial.Coeff, len(params)+1)
	coeffs[0] = polynomial.Num(1)
	for i, param := range params {
		var c polynomial.Coeff
		if param.IsNumeric() {
			v, _ := param.Value()
			c = polynomial.Num(v)
		} else {
			c = polynomial.Sym(param.Name())
		}
		if negate {
			c = c.Neg()
		}
		coeffs[i+1] = c
	}
	p := polynomial.FromCoeffs(coeffs)
	for _, param := range params {
		if param.IsNumeric() {
			continue
		}
		if v, ok := param.Value(); ok {
			var err error
			if p, err = p.Bind(param.Name(), v); err != nil {
				return polynomial.Poly{}, err
			}
		}
	}
	return p, nil
}

// Model returns the spec the transfer function was derived from.
func (tf *TransferFunction) Model() *model.Spec {
	return tf.spec
}

// Numerator returns theta(B) * Theta(B^m).
func (tf *TransferFunction) Numerator() polynomial.Poly {
	return tf.num
}

// Denominator returns phi(B) * Phi(B^m) * (1-B)^d * (1-B^m)^D.
func (tf *TransferFunction) Denominator() polynomial.Poly {
	return tf.den
}

// ARFactor returns the causal AR factor phi(B) * Phi(B^m), the denominator
// with the differencing operators removed.
func (tf *TransferFunction) ARFactor() polynomial.Poly {
	return tf.arFactor
}

// MAFactor returns the causal MA factor theta(B) * Theta(B^m).
func (tf *TransferFunction) MAFactor() polynomial.Poly {
	return tf.maFactor
}

// DifferencingOrders returns the non-seasonal order d, the seasonal order D,
// and the seasonal period m (1 for non-seasonal models).
func (tf *TransferFunction) DifferencingOrders() (d, D, m int) {
	return tf.d, tf.sd, tf.period
}

// Symbols returns the distinct symbols appearing anywhere in the transfer
// function, sorted.
func (tf *TransferFunction) Symbols() []string {
	seen := make(map[string]bool)
	var names []string
	for _, p := range []polynomial.Poly{tf.num, tf.den} {
		for _, s := range p.Symbols() {
			if !seen[s] {
				seen[s] = true
				names = append(names, s)
			}
		}
	}
	sort.Strings(names)
	return names
}

// Unbound returns the symbols that still lack a numeric value, sorted.
func (tf *TransferFunction) Unbound() []string {
	seen := make(map[string]bool)
	var names []string
	for _, p := range []polynomial.Poly{tf.num, tf.den} {
		for _, s := range p.Unbound() {
			if !seen[s] {
				seen[s] = true
				names = append(names, s)
			}
		}
	}
	sort.Strings(names)
	return names
}

// Resolve substitutes numeric values for symbols across every factor and
// returns the resulting transfer function. Values conflicting with bindings
// already carried by the polynomials fail with polynomial.DomainError.
func (tf *TransferFunction) Resolve(params map[string]float64) (*TransferFunction, error) {
	num, err := tf.num.Resolve(params)
	if err != nil {
		return nil, err
	}
	den, err := tf.den.Resolve(params)
	if err != nil {
		return nil, err
	}
	arFactor, err := tf.arFactor.Resolve(params)
	if err != nil {
		return nil, err
	}
	maFactor, err := tf.maFactor.Resolve(params)
	if err != nil {
		return nil, err
	}
	return &TransferFunction{
		spec:     tf.spec,
		num:      num,
		den:      den,
		arFactor: arFactor,
		maFactor: maFactor,
		d:        tf.d,
		sd:       tf.sd,
		period:   tf.period,
	}, nil
}

// String renders the transfer function as H(B) = (numerator) / (denominator).
func (tf *TransferFunction) String() string {
	return "H(B) = (" + tf.num.String() + ") / (" + tf.den.String() + ")"
}
