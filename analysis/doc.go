// Package analysis derives stability, impulse-response, and
// frequency-response properties from a transfer function.
//
// Every function here is a pure function of an immutable transfer function
// and explicit parameters; the package holds no state and a transfer
// function may be analyzed concurrently by any number of callers.
//
// # Stability
//
// Roots are computed as companion-matrix eigenvalues. The B-plane convention
// applies: causal roots strictly outside the unit circle mean a stable
// (AR side) or invertible (MA side) model. Unit roots guaranteed by the
// differencing operators are reported separately and never enter a verdict:
//
//	report, _ := analysis.AnalyzeStability(tf, 0) // 0 = default tolerance
//	fmt.Println(report.IsStable, report.IsInvertible)
//
// # Impulse response
//
// The power-series coefficients of H(B), by exact linear recurrence:
//
//	h, _ := analysis.ImpulseResponse(tf, 20) // h_0..h_20
//
// # Frequency response
//
// H evaluated at e^{-i*omega} for each requested frequency:
//
//	points, _ := analysis.FrequencyResponse(tf, []float64{0, math.Pi / 2, math.Pi})
//	for _, p := range points {
//	    fmt.Println(p.Omega, p.Magnitude, p.Phase)
//	}
//
// All three require fully numeric coefficients; analyzing a symbolic
// transfer function fails with polynomial.UnresolvedSymbolError until values
// are supplied via Resolve.
package analysis
