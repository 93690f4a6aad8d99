// Package analyzer converts ARIMA and SARIMA time-series models into
// lag-operator transfer functions and derives their analytical properties.
//
// A model described by its orders and parameters is assembled into the
// rational form
//
//	H(B) = theta(B) Theta(B^m) / [phi(B) Phi(B^m) (1-B)^d (1-B^m)^D]
//
// where B is the lag operator (B X_t = X_{t-1}). Three analyses are built on
// that form: pole/zero stability classification, impulse-response expansion,
// and frequency response on the unit circle.
//
// # Features
//
//   - Lag-operator polynomial algebra with numeric and symbolic coefficients
//   - Transfer-function derivation for ARIMA(p,d,q) and SARIMA(p,d,q)(P,D,Q,m)
//   - Stability and invertibility verdicts with structural unit roots
//     separated from informative causal roots
//   - Exact impulse-response expansion by linear recurrence
//   - Frequency response (magnitude, phase, dB) at arbitrary frequencies
//
// # Quick Start
//
// Derive and analyze an ARIMA(1,1,1) model:
//
//	spec, _ := model.NewARIMA(1, 1, 1,
//	    []model.Param{model.Value(0.5)},
//	    []model.Param{model.Value(0.3)})
//	tf, _ := transfer.Derive(spec)
//	report, _ := analysis.AnalyzeStability(tf, 0)
//	h, _ := analysis.ImpulseResponse(tf, 20)
//
// Models may be derived symbolically (parameters named phi_1, theta_1, ...)
// and resolved to numbers later with TransferFunction.Resolve.
//
// # Packages
//
//   - polynomial: lag-operator polynomials and their algebra
//   - model: validated ARIMA/SARIMA model descriptions
//   - transfer: transfer-function derivation
//   - analysis: stability, impulse-response, and frequency-response analyses
//
// # References
//
//   - Box, G. E. P., & Jenkins, G. M. (1976). Time Series Analysis: Forecasting and Control
//   - Hamilton, J. D. (1994). Time Series Analysis
package analyzer
