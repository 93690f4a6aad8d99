// Package main demonstrates transfer-function derivation and analysis for
// ARIMA and SARIMA models.
package main

import (
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/zym9863/Time-Series-Model-Transfer-Function-Analyzer/analysis"
	"github.com/zym9863/Time-Series-Model-Transfer-Function-Analyzer/model"
	"github.com/zym9863/Time-Series-Model-Transfer-Function-Analyzer/transfer"
)

// Example defines one model to derive and analyze.
type Example struct {
	Name        string
	Description string
	Spec        func() (*model.Spec, error)
	MaxLag      int
}

func main() {
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("Transfer-Function Analyzer Demonstration - ARIMA/SARIMA")
	fmt.Println(strings.Repeat("=", 80))

	examples := []Example{
		{
			Name:        "AR(1)",
			Description: "First-order autoregression, phi_1 = 0.5",
			Spec: func() (*model.Spec, error) {
				return model.NewARIMA(1, 0, 0, []model.Param{model.Value(0.5)}, nil)
			},
			MaxLag: 8,
		},
		{
			Name:        "ARMA(2,1)",
			Description: "Complex-conjugate AR roots with one MA term",
			Spec: func() (*model.Spec, error) {
				return model.NewARIMA(2, 0, 1,
					[]model.Param{model.Value(1.0), model.Value(-0.5)},
					[]model.Param{model.Value(0.3)})
			},
			MaxLag: 10,
		},
		{
			Name:        "ARIMA(1,1,1)",
			Description: "Differenced model: one structural unit root",
			Spec: func() (*model.Spec, error) {
				return model.NewARIMA(1, 1, 1,
					[]model.Param{model.Value(0.5)},
					[]model.Param{model.Value(0.3)})
			},
			MaxLag: 10,
		},
		{
			Name:        "SARIMA(0,1,1)(0,1,1,12)",
			Description: "Airline model (Box & Jenkins) with theta_1 = 0.4, Theta_1 = 0.6",
			Spec: func() (*model.Spec, error) {
				return model.NewSARIMA(0, 1, 1, 0, 1, 1, 12,
					nil, []model.Param{model.Value(0.4)},
					nil, []model.Param{model.Value(0.6)})
			},
			MaxLag: 26,
		},
	}

	for i, ex := range examples {
		fmt.Printf("\n%s\n[%d/%d] %s - %s\n%s\n",
			strings.Repeat("=", 80), i+1, len(examples), ex.Name, ex.Description,
			strings.Repeat("=", 80))
		if err := analyze(ex); err != nil {
			log.Fatalf("%s: %v", ex.Name, err)
		}
	}

	symbolicWalkthrough()
}

// analyze derives the transfer function and runs all three analyses.
func analyze(ex Example) error {
	spec, err := ex.Spec()
	if err != nil {
		return err
	}

	tf, err := transfer.Derive(spec)
	if err != nil {
		return err
	}

	fmt.Printf("\nModel: %s\n", spec)
	fmt.Printf("Transfer function:\n  %s\n", tf)
	fmt.Printf("Degrees: numerator %d, denominator %d\n",
		tf.Numerator().Degree(), tf.Denominator().Degree())

	// Stability
	report, err := analysis.AnalyzeStability(tf, 0)
	if err != nil {
		return err
	}
	fmt.Printf("\nStability:  stable=%v  invertible=%v\n", report.IsStable, report.IsInvertible)
	for _, r := range report.Poles {
		fmt.Printf("  pole at B=%.4f%+.4fi  |B|=%.4f  (x%d)\n",
			real(r.Value), imag(r.Value), r.Modulus(), r.Multiplicity)
	}
	for _, r := range report.Zeros {
		fmt.Printf("  zero at B=%.4f%+.4fi  |B|=%.4f  (x%d)\n",
			real(r.Value), imag(r.Value), r.Modulus(), r.Multiplicity)
	}
	for _, r := range report.UnitRoots {
		fmt.Printf("  structural unit root at B=%.4f%+.4fi  (x%d)\n",
			real(r.Value), imag(r.Value), r.Multiplicity)
	}

	// Impulse response
	h, err := analysis.ImpulseResponse(tf, ex.MaxLag)
	if err != nil {
		return err
	}
	fmt.Printf("\nImpulse response h_0..h_%d:\n  ", ex.MaxLag)
	for _, v := range h {
		fmt.Printf("%.4f ", v)
	}
	fmt.Println()

	// Frequency response on a coarse grid, skipping structural poles at the
	// unit-root frequencies.
	var omegas []float64
	for k := 1; k <= 7; k += 2 {
		omegas = append(omegas, float64(k)*math.Pi/8)
	}
	points, err := analysis.FrequencyResponse(tf, omegas)
	if err != nil {
		return err
	}
	fmt.Println("\nFrequency response:")
	for _, p := range points {
		fmt.Printf("  omega=%.4f  |H|=%8.4f  phase=%+.4f  (%.2f dB)\n",
			p.Omega, p.Magnitude, p.Phase, p.MagnitudeDB())
	}
	return nil
}

// symbolicWalkthrough derives a fully symbolic model, then resolves it.
func symbolicWalkthrough() {
	fmt.Printf("\n%s\nSymbolic derivation\n%s\n", strings.Repeat("=", 80), strings.Repeat("=", 80))

	spec, err := model.NewARIMA(1, 0, 1, nil, nil) // default phi_1, theta_1
	if err != nil {
		log.Fatal(err)
	}
	tf, err := transfer.Derive(spec)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\nModel: %s\n", spec)
	fmt.Printf("Symbolic form:\n  %s\n", tf)
	fmt.Printf("Unbound parameters: %v\n", tf.Unbound())

	resolved, err := tf.Resolve(map[string]float64{"phi_1": 0.5, "theta_1": 0.3})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Resolved with phi_1=0.5, theta_1=0.3:\n  %s\n", resolved)

	report, err := analysis.AnalyzeStability(resolved, 0)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Stability: stable=%v invertible=%v\n", report.IsStable, report.IsInvertible)
	fmt.Println(strings.Repeat("=", 80))
}
