package analysis

import (
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/zym9863/Time-Series-Model-Transfer-Function-Analyzer/transfer"
)

// DefaultBoundaryTolerance is the band around the unit circle within which a
// causal root is reported as boundary instead of entering a verdict.
const DefaultBoundaryTolerance = 1e-6

// clusterTolerance groups eigenvalues into root multiplicities. It reflects
// eigenvalue noise, not a user-facing precision knob.
const clusterTolerance = 1e-7

// RootKind tags a root as a pole (denominator) or zero (numerator).
type RootKind int

const (
	Pole RootKind = iota
	Zero
)

func (k RootKind) String() string {
	if k == Zero {
		return "zero"
	}
	return "pole"
}

// Root is a complex root of one side of the transfer function.
type Root struct {
	Value        complex128
	Multiplicity int
	Kind         RootKind
}

// Modulus returns |Value|.
func (r Root) Modulus() float64 {
	return cmplx.Abs(r.Value)
}

// StabilityReport classifies the roots of a transfer function.
//
// The B-plane convention is used throughout: a causal factor is stable
// (respectively invertible) when every one of its roots lies strictly
// outside the unit circle. Structural unit roots contributed by the
// differencing operators (1-B)^d and (1-B^m)^D are reported separately in
// UnitRoots and never enter the verdicts; causal roots within the boundary
// tolerance of the unit circle land in Boundary and are likewise excluded.
type StabilityReport struct {
	Poles     []Root // causal AR-factor roots away from the unit circle
	Zeros     []Root // causal MA-factor roots away from the unit circle
	UnitRoots []Root // structural roots at B=1 and the m-th roots of unity
	Boundary  []Root // causal roots within tolerance of the unit circle

	IsStable     bool
	IsInvertible bool

	// StabilityMargin is the smallest causal pole modulus minus 1 (how far
	// the nearest pole sits outside the unit circle); +Inf when the causal
	// AR factor has no roots. InvertibilityMargin is the MA-side analogue.
	StabilityMargin     float64
	InvertibilityMargin float64
}

// AnalyzeStability computes poles, zeros, and stability/invertibility
// verdicts for the causal factors of a transfer function. Roots are found as
// eigenvalues of the companion matrix. tol <= 0 selects
// DefaultBoundaryTolerance.
//
// The transfer function must be fully numeric; unbound symbols fail with
// polynomial.UnresolvedSymbolError.
func AnalyzeStability(tf *transfer.TransferFunction, tol float64) (*StabilityReport, error) {
	if tol <= 0 {
		tol = DefaultBoundaryTolerance
	}

	arCoeffs, err := tf.ARFactor().NumericCoefficients()
	if err != nil {
		return nil, err
	}
	maCoeffs, err := tf.MAFactor().NumericCoefficients()
	if err != nil {
		return nil, err
	}

	poleVals, err := polyRoots(arCoeffs)
	if err != nil {
		return nil, err
	}
	zeroVals, err := polyRoots(maCoeffs)
	if err != nil {
		return nil, err
	}

	report := &StabilityReport{
		UnitRoots:           structuralUnitRoots(tf),
		StabilityMargin:     math.Inf(1),
		InvertibilityMargin: math.Inf(1),
	}

	report.IsStable = classify(cluster(poleVals, Pole), tol, &report.Poles, &report.Boundary, &report.StabilityMargin)
	report.IsInvertible = classify(cluster(zeroVals, Zero), tol, &report.Zeros, &report.Boundary, &report.InvertibilityMargin)
	return report, nil
}

// classify splits clustered roots into the away-from-circle and boundary
// sets, updates the margin, and returns the strict outside-the-circle
// verdict over the non-boundary roots.
func classify(roots []Root, tol float64, away, boundary *[]Root, margin *float64) bool {
	verdict := true
	for _, r := range roots {
		mod := r.Modulus()
		if mod-1 < *margin {
			*margin = mod - 1
		}
		if math.Abs(mod-1) <= tol {
			*boundary = append(*boundary, r)
			continue
		}
		if mod < 1 {
			verdict = false
		}
		*away = append(*away, r)
	}
	return verdict
}

// structuralUnitRoots enumerates the roots guaranteed by the differencing
// factors: B=1 with multiplicity d+D, and every other m-th root of unity
// with multiplicity D.
func structuralUnitRoots(tf *transfer.TransferFunction) []Root {
	d, sd, m := tf.DifferencingOrders()
	var roots []Root
	if d+sd > 0 {
		roots = append(roots, Root{Value: 1, Multiplicity: d + sd, Kind: Pole})
	}
	if sd > 0 {
		for k := 1; k < m; k++ {
			angle := 2 * math.Pi * float64(k) / float64(m)
			roots = append(roots, Root{
				Value:        cmplx.Exp(complex(0, angle)),
				Multiplicity: sd,
				Kind:         Pole,
			})
		}
	}
	return roots
}

// polyRoots returns the complex roots of c[0] + c[1]*B + ... + c[n]*B^n as
// eigenvalues of the companion matrix. A degree-0 polynomial has no roots
// and returns an empty result; the zero polynomial is degenerate.
func polyRoots(coeffs []float64) ([]complex128, error) {
	n := len(coeffs)
	for n > 0 && coeffs[n-1] == 0 {
		n--
	}
	if n == 0 {
		return nil, &NumericalError{Op: "roots", Msg: "zero polynomial is degenerate"}
	}
	coeffs = coeffs[:n]
	if n == 1 {
		return nil, nil
	}

	// A zero constant term contributes roots at B=0.
	s := 0
	for coeffs[s] == 0 {
		s++
	}
	roots := make([]complex128, s, n-1)
	coeffs = coeffs[s:]

	deg := len(coeffs) - 1
	if deg == 0 {
		return roots, nil
	}
	lead := coeffs[deg]

	companion := mat.NewDense(deg, deg, nil)
	for i := 1; i < deg; i++ {
		companion.Set(i, i-1, 1)
	}
	for i := 0; i < deg; i++ {
		companion.Set(i, deg-1, -coeffs[i]/lead)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(companion, mat.EigenNone); !ok {
		return nil, &NumericalError{Op: "roots", Msg: "companion eigenvalue decomposition did not converge"}
	}
	return append(roots, eig.Values(nil)...), nil
}

// cluster groups nearby eigenvalues into roots with multiplicities and sorts
// them by modulus for deterministic reporting.
func cluster(vals []complex128, kind RootKind) []Root {
	var roots []Root
	for _, v := range vals {
		merged := false
		for i := range roots {
			if cmplx.Abs(v-roots[i].Value) <= clusterTolerance*(1+cmplx.Abs(roots[i].Value)) {
				roots[i].Multiplicity++
				merged = true
				break
			}
		}
		if !merged {
			roots = append(roots, Root{Value: v, Multiplicity: 1, Kind: kind})
		}
	}
	sort.Slice(roots, func(i, j int) bool {
		mi, mj := roots[i].Modulus(), roots[j].Modulus()
		if mi != mj {
			return mi < mj
		}
		if real(roots[i].Value) != real(roots[j].Value) {
			return real(roots[i].Value) < real(roots[j].Value)
		}
		return imag(roots[i].Value) < imag(roots[j].Value)
	})
	return roots
}
