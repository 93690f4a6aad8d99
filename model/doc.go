// Package model defines validated ARIMA and SARIMA model descriptions.
//
// A Spec is the input to transfer-function derivation: it carries the model
// orders and the AR/MA parameter sequences, validated against each other.
// Specs are built once from already-parsed input and never mutated.
//
// # Non-seasonal models
//
// Construct an ARIMA(p,d,q) spec with numeric parameters:
//
//	spec, err := model.NewARIMA(1, 1, 1,
//	    []model.Param{model.Value(0.5)},
//	    []model.Param{model.Value(0.3)})
//
// # Seasonal models
//
// SARIMA(p,d,q)(P,D,Q,m) adds seasonal orders and a period:
//
//	spec, err := model.NewSARIMA(1, 1, 1, 1, 1, 1, 12,
//	    nil, nil, nil, nil)
//
// # Symbolic parameters
//
// Parameters may be symbols instead of numbers. Passing nil for a parameter
// slice generates the conventional names phi_i, theta_i, Phi_i, Theta_i, so
// the derived transfer function stays fully symbolic until values are
// supplied. A symbol can also carry a value up front:
//
//	model.BoundSymbol("phi_1", 0.5)
package model
