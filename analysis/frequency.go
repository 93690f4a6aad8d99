package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/zym9863/Time-Series-Model-Transfer-Function-Analyzer/transfer"
)

// poleTolerance is the denominator magnitude below which an evaluation point
// is treated as sitting on a pole of the transfer function.
const poleTolerance = 1e-12

// FrequencyPoint is the transfer function evaluated at one frequency:
// H(e^{-i*omega}) with its polar decomposition. Phase is in (-pi, pi].
type FrequencyPoint struct {
	Omega     float64
	Response  complex128
	Magnitude float64
	Phase     float64
}

// MagnitudeDB returns the magnitude in decibels, -Inf for zero magnitude.
func (p FrequencyPoint) MagnitudeDB() float64 {
	if p.Magnitude == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(p.Magnitude)
}

// FrequencyResponse evaluates H on the unit circle at each requested angular
// frequency omega (radians), in Horner form. A denominator that vanishes at
// a requested frequency fails with a DomainError naming that omega; no
// infinite or NaN point is ever returned silently.
//
// Fails with polynomial.UnresolvedSymbolError when coefficients remain
// symbolic.
func FrequencyResponse(tf *transfer.TransferFunction, omegas []float64) ([]FrequencyPoint, error) {
	num, err := tf.Numerator().NumericCoefficients()
	if err != nil {
		return nil, err
	}
	den, err := tf.Denominator().NumericCoefficients()
	if err != nil {
		return nil, err
	}

	points := make([]FrequencyPoint, 0, len(omegas))
	for _, omega := range omegas {
		z := cmplx.Exp(complex(0, -omega))
		dv := horner(den, z)
		if cmplx.Abs(dv) < poleTolerance {
			return nil, &DomainError{Op: "frequency", Msg: fmt.Sprintf("denominator vanishes at omega=%g", omega)}
		}
		h := horner(num, z) / dv

		phase := cmplx.Phase(h)
		if phase == -math.Pi {
			phase = math.Pi
		}
		points = append(points, FrequencyPoint{
			Omega:     omega,
			Response:  h,
			Magnitude: cmplx.Abs(h),
			Phase:     phase,
		})
	}
	return points, nil
}

func horner(coeffs []float64, z complex128) complex128 {
	var acc complex128
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc*z + complex(coeffs[i], 0)
	}
	return acc
}
