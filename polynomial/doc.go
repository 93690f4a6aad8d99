// Package polynomial implements polynomials in the lag operator B.
//
// A polynomial in B encodes a linear time-invariant difference equation:
// B shifts a series back one step (B·X_t = X_{t-1}), so the AR side of an
// ARIMA model is a polynomial applied to the observed series and the MA side
// a polynomial applied to the innovations.
//
// # Coefficients
//
// Coefficients are numeric or symbolic. A symbolic coefficient is a linear
// combination of monomials in named parameters, so products of polynomials
// with unresolved parameters stay exact:
//
//	phi := polynomial.FromCoeffs([]polynomial.Coeff{
//	    polynomial.Num(1),
//	    polynomial.Sym("phi_1").Neg(),
//	})
//	sphi := polynomial.FromCoeffs([]polynomial.Coeff{
//	    polynomial.Num(1),
//	    polynomial.Sym("Phi_1").Neg(),
//	})
//	prod, _ := phi.Mul(sphi)
//	// 1 - phi_1*B - Phi_1*B + phi_1*Phi_1*B^2
//
// Symbols may carry bindings (Bind); analyses resolve them with Resolve or
// NumericCoefficients. Combining operands that bind the same symbol to
// different values fails with DomainError.
//
// # Algebra
//
// The operations needed to assemble ARIMA transfer functions:
//
//	d2, _ := polynomial.FromCoefficients([]float64{1, -1}).Pow(2)
//	// (1-B)^2 = 1 - 2*B + B^2
//
//	seasonal, _ := phi.SubstituteBPower(12)
//	// Phi(B) -> Phi(B^12)
//
// Polynomials are normalized (no trailing zero coefficients) and immutable;
// the zero polynomial and the identity [1] are distinct values.
package polynomial
