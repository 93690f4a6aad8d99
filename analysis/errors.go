package analysis

import "fmt"

// DomainError reports a mathematically invalid analysis request: a negative
// lag count, a denominator with zero constant term, or an evaluation pole on
// the frequency contour.
type DomainError struct {
	Op  string
	Msg string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("analysis: %s: %s", e.Op, e.Msg)
}

// NumericalError reports a root-solver failure or a degenerate polynomial.
type NumericalError struct {
	Op  string
	Msg string
}

func (e *NumericalError) Error() string {
	return fmt.Sprintf("analysis: %s: %s", e.Op, e.Msg)
}
