package analysis

import (
	"fmt"

	"github.com/zym9863/Time-Series-Model-Transfer-Function-Analyzer/transfer"
)

// ImpulseResponse expands H(B) = N(B)/D(B) into its power series and returns
// the coefficients h_0..h_maxLag. The expansion is exact: matching
// coefficients of N(B) = H(B)*D(B) gives the linear recurrence
//
//	h_0 = n_0 / d_0
//	h_t = (n_t - sum_{j=1..min(t,deg D)} d_j * h_{t-j}) / d_0
//
// with n_t taken as zero beyond the numerator degree. maxLag bounds the
// returned sequence length only, not an approximation horizon.
//
// Fails with DomainError when maxLag is negative or the denominator constant
// term is zero, and with polynomial.UnresolvedSymbolError when coefficients
// remain symbolic.
func ImpulseResponse(tf *transfer.TransferFunction, maxLag int) ([]float64, error) {
	if maxLag < 0 {
		return nil, &DomainError{Op: "impulse", Msg: fmt.Sprintf("max lag must be non-negative, got %d", maxLag)}
	}

	num, err := tf.Numerator().NumericCoefficients()
	if err != nil {
		return nil, err
	}
	den, err := tf.Denominator().NumericCoefficients()
	if err != nil {
		return nil, err
	}
	if len(den) == 0 || den[0] == 0 {
		return nil, &DomainError{Op: "impulse", Msg: "denominator constant term is zero"}
	}

	h := make([]float64, maxLag+1)
	for t := 0; t <= maxLag; t++ {
		v := 0.0
		if t < len(num) {
			v = num[t]
		}
		for j := 1; j <= min(t, len(den)-1); j++ {
			v -= den[j] * h[t-j]
		}
		h[t] = v / den[0]
	}
	return h, nil
}
