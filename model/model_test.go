package model

import (
	"errors"
	"testing"
)

func TestNewARIMA(t *testing.T) {
	spec, err := NewARIMA(1, 1, 1, []Param{Value(0.5)}, []Param{Value(0.3)})
	if err != nil {
		t.Fatalf("NewARIMA failed: %v", err)
	}

	if spec.Order.P != 1 || spec.Order.D != 1 || spec.Order.Q != 1 {
		t.Errorf("Expected order (1,1,1), got (%d,%d,%d)", spec.Order.P, spec.Order.D, spec.Order.Q)
	}
	if spec.IsSeasonal() {
		t.Error("Non-seasonal spec should not report seasonal")
	}
	if spec.Name != "ARIMA(1,1,1)" {
		t.Errorf("Expected name ARIMA(1,1,1), got %q", spec.Name)
	}
}

func TestNewARIMAAllZeroOrders(t *testing.T) {
	// ARIMA(0,0,0) is legal: its transfer function is the identity.
	spec, err := NewARIMA(0, 0, 0, nil, nil)
	if err != nil {
		t.Fatalf("ARIMA(0,0,0) should be valid: %v", err)
	}
	if len(spec.ARParams) != 0 || len(spec.MAParams) != 0 {
		t.Error("Expected empty parameter slices for zero orders")
	}
}

func TestNewARIMADefaultSymbols(t *testing.T) {
	spec, err := NewARIMA(2, 0, 1, nil, nil)
	if err != nil {
		t.Fatalf("NewARIMA failed: %v", err)
	}

	if len(spec.ARParams) != 2 {
		t.Fatalf("Expected 2 default AR params, got %d", len(spec.ARParams))
	}
	if spec.ARParams[0].Name() != "phi_1" || spec.ARParams[1].Name() != "phi_2" {
		t.Errorf("Expected default symbols phi_1, phi_2, got %v, %v", spec.ARParams[0], spec.ARParams[1])
	}
	if spec.MAParams[0].Name() != "theta_1" {
		t.Errorf("Expected default symbol theta_1, got %v", spec.MAParams[0])
	}
}

func TestNewARIMAValidation(t *testing.T) {
	tests := []struct {
		name    string
		p, d, q int
		ar, ma  []Param
	}{
		{"negative p", -1, 0, 0, []Param{}, nil},
		{"negative d", 0, -2, 0, nil, nil},
		{"ar length mismatch", 2, 0, 0, []Param{Value(0.5)}, nil},
		{"ma length mismatch", 0, 0, 1, nil, []Param{Value(0.1), Value(0.2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewARIMA(tt.p, tt.d, tt.q, tt.ar, tt.ma)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected ValidationError, got %v", err)
			}
		})
	}
}

func TestNewSARIMA(t *testing.T) {
	spec, err := NewSARIMA(1, 1, 1, 1, 1, 1, 12, nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewSARIMA failed: %v", err)
	}

	if !spec.IsSeasonal() {
		t.Fatal("SARIMA spec should report seasonal")
	}
	if spec.Seasonal.Order.Period != 12 {
		t.Errorf("Expected period 12, got %d", spec.Seasonal.Order.Period)
	}
	if spec.Name != "SARIMA(1,1,1)(1,1,1,12)" {
		t.Errorf("Expected name SARIMA(1,1,1)(1,1,1,12), got %q", spec.Name)
	}
	if spec.Seasonal.ARParams[0].Name() != "Phi_1" {
		t.Errorf("Expected default seasonal symbol Phi_1, got %v", spec.Seasonal.ARParams[0])
	}
	if spec.Seasonal.MAParams[0].Name() != "Theta_1" {
		t.Errorf("Expected default seasonal symbol Theta_1, got %v", spec.Seasonal.MAParams[0])
	}
}

func TestNewSARIMAValidation(t *testing.T) {
	tests := []struct {
		name                 string
		p, d, q, sp, sd, sq  int
		m                    int
		ar, ma, sar, sma     []Param
	}{
		{"zero period", 0, 0, 0, 1, 0, 0, 0, nil, nil, []Param{Value(0.5)}, nil},
		{"negative period", 1, 0, 0, 0, 0, 0, -12, []Param{Value(0.5)}, nil, nil, nil},
		{"negative seasonal order", 0, 0, 0, -1, 0, 0, 12, nil, nil, []Param{}, nil},
		{"seasonal ar mismatch", 0, 0, 0, 2, 0, 0, 12, nil, nil, []Param{Value(0.5)}, nil},
		{"seasonal ma mismatch", 0, 0, 0, 0, 0, 1, 12, nil, nil, nil, []Param{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSARIMA(tt.p, tt.d, tt.q, tt.sp, tt.sd, tt.sq, tt.m, tt.ar, tt.ma, tt.sar, tt.sma)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected ValidationError, got %v", err)
			}
		})
	}
}

func TestParam(t *testing.T) {
	v := Value(0.5)
	if !v.IsNumeric() {
		t.Error("Value param should be numeric")
	}

	s := Symbol("phi_1")
	if s.IsNumeric() {
		t.Error("Symbol param should not be numeric")
	}
	if _, ok := s.Value(); ok {
		t.Error("Unbound symbol should carry no value")
	}

	b := BoundSymbol("phi_1", 0.5)
	if b.IsNumeric() {
		t.Error("Bound symbol is still symbolic")
	}
	if val, ok := b.Value(); !ok || val != 0.5 {
		t.Errorf("Expected bound value 0.5, got %v (ok=%v)", val, ok)
	}

	if s.String() != "phi_1" || v.String() != "0.5" {
		t.Errorf("Unexpected string forms: %q, %q", s.String(), v.String())
	}
}

func TestWithConstant(t *testing.T) {
	spec, err := NewARIMA(1, 0, 0, []Param{Value(0.5)}, nil)
	if err != nil {
		t.Fatalf("NewARIMA failed: %v", err)
	}

	withC := spec.WithConstant(3.5)
	if withC.Constant != 3.5 {
		t.Errorf("Expected constant 3.5, got %g", withC.Constant)
	}
	if spec.Constant != 0 {
		t.Error("WithConstant should not mutate the original spec")
	}
}
