package transfer

import (
	"errors"
	"math"
	"testing"

	"github.com/zym9863/Time-Series-Model-Transfer-Function-Analyzer/model"
	"github.com/zym9863/Time-Series-Model-Transfer-Function-Analyzer/polynomial"
)

func numericCoeffs(t *testing.T, p polynomial.Poly) []float64 {
	t.Helper()
	coeffs, err := p.NumericCoefficients()
	if err != nil {
		t.Fatalf("NumericCoefficients failed: %v", err)
	}
	return coeffs
}

func coeffsEqual(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestDeriveIdentityModel(t *testing.T) {
	spec, err := model.NewARIMA(0, 0, 0, nil, nil)
	if err != nil {
		t.Fatalf("NewARIMA failed: %v", err)
	}

	tf, err := Derive(spec)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	if !tf.Numerator().IsOne() {
		t.Errorf("Expected numerator [1], got %v", tf.Numerator())
	}
	if !tf.Denominator().IsOne() {
		t.Errorf("Expected denominator [1], got %v", tf.Denominator())
	}
}

func TestDeriveARMA(t *testing.T) {
	spec, err := model.NewARIMA(2, 0, 1,
		[]model.Param{model.Value(0.5), model.Value(-0.2)},
		[]model.Param{model.Value(0.3)})
	if err != nil {
		t.Fatalf("NewARIMA failed: %v", err)
	}

	tf, err := Derive(spec)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	// phi(B) = 1 - 0.5*B + 0.2*B^2
	den := numericCoeffs(t, tf.Denominator())
	if !coeffsEqual(den, []float64{1, -0.5, 0.2}, 1e-12) {
		t.Errorf("Expected denominator [1 -0.5 0.2], got %v", den)
	}

	// theta(B) = 1 + 0.3*B
	num := numericCoeffs(t, tf.Numerator())
	if !coeffsEqual(num, []float64{1, 0.3}, 1e-12) {
		t.Errorf("Expected numerator [1 0.3], got %v", num)
	}

	if tf.Denominator().Degree() != 2 || tf.Numerator().Degree() != 1 {
		t.Errorf("Expected degrees (2,1), got (%d,%d)", tf.Denominator().Degree(), tf.Numerator().Degree())
	}
}

func TestDerivePureDifferencing(t *testing.T) {
	spec, err := model.NewARIMA(0, 2, 0, nil, nil)
	if err != nil {
		t.Fatalf("NewARIMA failed: %v", err)
	}

	tf, err := Derive(spec)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	den := numericCoeffs(t, tf.Denominator())
	if !coeffsEqual(den, []float64{1, -2, 1}, 1e-12) {
		t.Errorf("Expected (1-B)^2 = [1 -2 1], got %v", den)
	}
	if !tf.Numerator().IsOne() {
		t.Errorf("Expected numerator [1], got %v", tf.Numerator())
	}
}

func TestDeriveSeasonalAR(t *testing.T) {
	// SARIMA(0,0,0)(1,0,0,12) with Phi_1 = 0.5.
	spec, err := model.NewSARIMA(0, 0, 0, 1, 0, 0, 12,
		nil, nil, []model.Param{model.Value(0.5)}, nil)
	if err != nil {
		t.Fatalf("NewSARIMA failed: %v", err)
	}

	tf, err := Derive(spec)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	den := numericCoeffs(t, tf.Denominator())
	if len(den) != 13 {
		t.Fatalf("Expected 13 denominator coefficients, got %d", len(den))
	}
	for k, v := range den {
		switch k {
		case 0:
			if v != 1 {
				t.Errorf("Expected 1 at index 0, got %g", v)
			}
		case 12:
			if v != -0.5 {
				t.Errorf("Expected -0.5 at index 12, got %g", v)
			}
		default:
			if v != 0 {
				t.Errorf("Expected 0 at index %d, got %g", k, v)
			}
		}
	}
}

func TestDeriveDegreeFormulas(t *testing.T) {
	tests := []struct {
		name                   string
		p, d, q, sp, sd, sq, m int
	}{
		{"ARIMA(1,1,1)", 1, 1, 1, 0, 0, 0, 1},
		{"SARIMA(2,1,1)(1,1,1,12)", 2, 1, 1, 1, 1, 1, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := model.NewSARIMA(tt.p, tt.d, tt.q, tt.sp, tt.sd, tt.sq, tt.m, nil, nil, nil, nil)
			if err != nil {
				t.Fatalf("NewSARIMA failed: %v", err)
			}

			tf, err := Derive(spec)
			if err != nil {
				t.Fatalf("Derive failed: %v", err)
			}

			wantDen := tt.p + tt.d + tt.sp*tt.m + tt.sd*tt.m
			wantNum := tt.q + tt.sq*tt.m
			if tf.Denominator().Degree() != wantDen {
				t.Errorf("Expected denominator degree %d, got %d", wantDen, tf.Denominator().Degree())
			}
			if tf.Numerator().Degree() != wantNum {
				t.Errorf("Expected numerator degree %d, got %d", wantNum, tf.Numerator().Degree())
			}
		})
	}
}

func TestDeriveNoCancellation(t *testing.T) {
	// theta(B) = 1 - 0.5*B equals the AR factor exactly; the structural form
	// must keep both.
	spec, err := model.NewARIMA(1, 0, 1,
		[]model.Param{model.Value(0.5)},
		[]model.Param{model.Value(-0.5)})
	if err != nil {
		t.Fatalf("NewARIMA failed: %v", err)
	}

	tf, err := Derive(spec)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	if tf.Numerator().Degree() != 1 || tf.Denominator().Degree() != 1 {
		t.Errorf("Common factor must not be cancelled: got degrees (%d,%d)",
			tf.Numerator().Degree(), tf.Denominator().Degree())
	}
}

func TestDeriveSymbolicAndResolve(t *testing.T) {
	spec, err := model.NewARIMA(1, 1, 1, nil, nil)
	if err != nil {
		t.Fatalf("NewARIMA failed: %v", err)
	}

	tf, err := Derive(spec)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	unbound := tf.Unbound()
	if len(unbound) != 2 || unbound[0] != "phi_1" || unbound[1] != "theta_1" {
		t.Fatalf("Expected unbound [phi_1 theta_1], got %v", unbound)
	}

	if _, err := tf.Denominator().NumericCoefficients(); err == nil {
		t.Fatal("Symbolic denominator should not yield numeric coefficients")
	}

	resolved, err := tf.Resolve(map[string]float64{"phi_1": 0.5, "theta_1": 0.3})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	// phi(B)(1-B) = (1 - 0.5B)(1 - B) = 1 - 1.5B + 0.5B^2
	den := numericCoeffs(t, resolved.Denominator())
	if !coeffsEqual(den, []float64{1, -1.5, 0.5}, 1e-12) {
		t.Errorf("Expected [1 -1.5 0.5], got %v", den)
	}
	num := numericCoeffs(t, resolved.Numerator())
	if !coeffsEqual(num, []float64{1, 0.3}, 1e-12) {
		t.Errorf("Expected [1 0.3], got %v", num)
	}
}

func TestDeriveBoundSymbols(t *testing.T) {
	spec, err := model.NewARIMA(1, 0, 0,
		[]model.Param{model.BoundSymbol("phi_1", 0.5)}, nil)
	if err != nil {
		t.Fatalf("NewARIMA failed: %v", err)
	}

	tf, err := Derive(spec)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	if len(tf.Unbound()) != 0 {
		t.Errorf("Bound symbol should leave nothing unbound, got %v", tf.Unbound())
	}
	den := numericCoeffs(t, tf.Denominator())
	if !coeffsEqual(den, []float64{1, -0.5}, 1e-12) {
		t.Errorf("Expected [1 -0.5], got %v", den)
	}
}

func TestDeriveARFactorExcludesDifferencing(t *testing.T) {
	spec, err := model.NewARIMA(1, 1, 0, []model.Param{model.Value(0.5)}, nil)
	if err != nil {
		t.Fatalf("NewARIMA failed: %v", err)
	}

	tf, err := Derive(spec)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	ar := numericCoeffs(t, tf.ARFactor())
	if !coeffsEqual(ar, []float64{1, -0.5}, 1e-12) {
		t.Errorf("Expected AR factor [1 -0.5], got %v", ar)
	}

	d, sd, m := tf.DifferencingOrders()
	if d != 1 || sd != 0 || m != 1 {
		t.Errorf("Expected orders (1,0,1), got (%d,%d,%d)", d, sd, m)
	}
}

func TestDeriveRejectsInvalidSpec(t *testing.T) {
	bad := &model.Spec{
		Order:    model.Order{P: 1, D: 0, Q: 0},
		ARParams: []model.Param{}, // length mismatch
		MAParams: []model.Param{},
	}

	_, err := Derive(bad)
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}

	if _, err := Derive(nil); err == nil {
		t.Fatal("Deriving from a nil spec should fail")
	}
}

func TestTransferFunctionString(t *testing.T) {
	spec, err := model.NewARIMA(1, 0, 1,
		[]model.Param{model.Value(0.5)},
		[]model.Param{model.Value(0.3)})
	if err != nil {
		t.Fatalf("NewARIMA failed: %v", err)
	}

	tf, err := Derive(spec)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	want := "H(B) = (1 + 0.3*B) / (1 - 0.5*B)"
	if got := tf.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
