// Package transfer derives lag-operator transfer functions from ARIMA and
// SARIMA model specs.
//
// An ARIMA(p,d,q) difference equation
//
//	phi(B) (1-B)^d X_t = theta(B) e_t
//
// maps innovations to observations through the rational transfer function
//
//	H(B) = theta(B) / [phi(B) (1-B)^d]
//
// and a seasonal SARIMA(p,d,q)(P,D,Q,m) model extends both sides with the
// seasonal factors Phi(B^m), Theta(B^m) and (1-B^m)^D.
//
// # Deriving
//
//	spec, _ := model.NewARIMA(1, 1, 1,
//	    []model.Param{model.Value(0.5)},
//	    []model.Param{model.Value(0.3)})
//	tf, _ := transfer.Derive(spec)
//	fmt.Println(tf)
//	// H(B) = (1 + 0.3*B) / (1 - 1.5*B + 0.5*B^2)
//
// Derive preserves the structural form: common factors between numerator and
// denominator are never cancelled, so the denominator degree is always
// p + d + P*m + D*m and the numerator degree q + Q*m.
//
// # Symbolic transfer functions
//
// A spec with symbolic parameters derives symbolically; numeric analyses
// need values first:
//
//	tf, _ := transfer.Derive(spec)       // coefficients phi_1, theta_1, ...
//	num, _ := tf.Resolve(map[string]float64{"phi_1": 0.5, "theta_1": 0.3})
package transfer
