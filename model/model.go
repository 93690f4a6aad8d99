// Package model defines validated ARIMA and SARIMA model descriptions.
package model

import (
	"fmt"
	"strconv"
)

// ValidationError reports a structurally invalid model description reaching
// a constructor or the transfer-function builder.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("model: %s: %s", e.Field, e.Msg)
}

// Param is one AR or MA parameter: either a numeric value or a named symbol,
// optionally carrying a numeric binding.
type Param struct {
	name     string
	value    float64
	hasValue bool
}

// Value returns a numeric parameter.
func Value(v float64) Param {
	return Param{value: v, hasValue: true}
}

// Symbol returns an unbound symbolic parameter.
func Symbol(name string) Param {
	return Param{name: name}
}

// BoundSymbol returns a symbolic parameter carrying a numeric value.
func BoundSymbol(name string, v float64) Param {
	return Param{name: name, value: v, hasValue: true}
}

// IsNumeric reports whether the parameter is a plain numeric value.
func (p Param) IsNumeric() bool {
	return p.name == ""
}

// Name returns the symbol name, empty for numeric parameters.
func (p Param) Name() string {
	return p.name
}

// Value returns the numeric value and whether one is present (always true
// for numeric parameters, true for bound symbols).
func (p Param) Value() (float64, bool) {
	return p.value, p.hasValue
}

func (p Param) String() string {
	if p.name != "" {
		return p.name
	}
	return strconv.FormatFloat(p.value, 'g', -1, 64)
}

// Order represents the non-seasonal model order (p, d, q).
type Order struct {
	P int // AR order
	D int // Differencing order
	Q int // MA order
}

// SeasonalOrder represents the seasonal order (P, D, Q) and period m.
type SeasonalOrder struct {
	P      int // Seasonal AR order
	D      int // Seasonal differencing order
	Q      int // Seasonal MA order
	Period int // Seasonal period m (>= 1)
}

// Seasonal holds the seasonal component of a SARIMA model.
type Seasonal struct {
	Order    SeasonalOrder
	ARParams []Param // length Order.P
	MAParams []Param // length Order.Q
}

// Spec is a validated, immutable description of an ARIMA or SARIMA model.
// Seasonal is nil for a non-seasonal model. Construct through NewARIMA or
// NewSARIMA and treat the result as read-only.
type Spec struct {
	Name     string
	Order    Order
	ARParams []Param // length Order.P
	MAParams []Param // length Order.Q
	Constant float64 // carried but irrelevant to the transfer function
	Seasonal *Seasonal
}

// NewARIMA constructs a non-seasonal ARIMA(p,d,q) spec. A nil parameter
// slice with positive order is filled with default symbols phi_i / theta_i.
func NewARIMA(p, d, q int, ar, ma []Param) (*Spec, error) {
	spec := &Spec{
		Name:     fmt.Sprintf("ARIMA(%d,%d,%d)", p, d, q),
		Order:    Order{P: p, D: d, Q: q},
		ARParams: defaultParams(ar, p, "phi"),
		MAParams: defaultParams(ma, q, "theta"),
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

// NewSARIMA constructs a seasonal SARIMA(p,d,q)(P,D,Q,m) spec. Nil parameter
// slices are filled with default symbols phi_i, theta_i, Phi_i, Theta_i.
func NewSARIMA(p, d, q, sp, sd, sq, m int, ar, ma, sar, sma []Param) (*Spec, error) {
	spec := &Spec{
		Name:     fmt.Sprintf("SARIMA(%d,%d,%d)(%d,%d,%d,%d)", p, d, q, sp, sd, sq, m),
		Order:    Order{P: p, D: d, Q: q},
		ARParams: defaultParams(ar, p, "phi"),
		MAParams: defaultParams(ma, q, "theta"),
		Seasonal: &Seasonal{
			Order:    SeasonalOrder{P: sp, D: sd, Q: sq, Period: m},
			ARParams: defaultParams(sar, sp, "Phi"),
			MAParams: defaultParams(sma, sq, "Theta"),
		},
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

// WithConstant returns a copy of the spec carrying the given constant offset.
func (s *Spec) WithConstant(c float64) *Spec {
	out := *s
	out.Constant = c
	return &out
}

// IsSeasonal reports whether the spec carries a seasonal component.
func (s *Spec) IsSeasonal() bool {
	return s.Seasonal != nil
}

// Validate re-checks the structural invariants: non-negative orders,
// parameter lengths matching declared orders, and period >= 1 for a
// seasonal spec.
func (s *Spec) Validate() error {
	if s.Order.P < 0 || s.Order.D < 0 || s.Order.Q < 0 {
		return &ValidationError{Field: "order", Msg: fmt.Sprintf("orders must be non-negative, got (%d,%d,%d)", s.Order.P, s.Order.D, s.Order.Q)}
	}
	if len(s.ARParams) != s.Order.P {
		return &ValidationError{Field: "ar_params", Msg: fmt.Sprintf("length %d does not match p=%d", len(s.ARParams), s.Order.P)}
	}
	if len(s.MAParams) != s.Order.Q {
		return &ValidationError{Field: "ma_params", Msg: fmt.Sprintf("length %d does not match q=%d", len(s.MAParams), s.Order.Q)}
	}
	if s.Seasonal == nil {
		return nil
	}
	so := s.Seasonal.Order
	if so.P < 0 || so.D < 0 || so.Q < 0 {
		return &ValidationError{Field: "seasonal_order", Msg: fmt.Sprintf("orders must be non-negative, got (%d,%d,%d)", so.P, so.D, so.Q)}
	}
	if so.Period < 1 {
		return &ValidationError{Field: "period", Msg: fmt.Sprintf("seasonal period must be >= 1, got %d", so.Period)}
	}
	if len(s.Seasonal.ARParams) != so.P {
		return &ValidationError{Field: "seasonal_ar_params", Msg: fmt.Sprintf("length %d does not match P=%d", len(s.Seasonal.ARParams), so.P)}
	}
	if len(s.Seasonal.MAParams) != so.Q {
		return &ValidationError{Field: "seasonal_ma_params", Msg: fmt.Sprintf("length %d does not match Q=%d", len(s.Seasonal.MAParams), so.Q)}
	}
	return nil
}

func (s *Spec) String() string {
	return s.Name
}

// defaultParams copies the given parameters, or generates prefix_1..prefix_n
// symbols when none are supplied and the order is positive.
func defaultParams(params []Param, n int, prefix string) []Param {
	if params != nil {
		return append([]Param(nil), params...)
	}
	if n <= 0 {
		return []Param{}
	}
	out := make([]Param, n)
	for i := range out {
		out[i] = Symbol(fmt.Sprintf("%s_%d", prefix, i+1))
	}
	return out
}
