package polynomial

import (
	"fmt"
	"strings"
)

// DomainError reports a mathematically invalid polynomial operation, such as
// a negative power, an invalid substitution period, or conflicting symbol
// bindings across operands.
type DomainError struct {
	Op  string // operation that failed, e.g. "multiply"
	Msg string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("polynomial: %s: %s", e.Op, e.Msg)
}

// UnresolvedSymbolError reports that numeric coefficients were requested
// while one or more symbols remain unbound.
type UnresolvedSymbolError struct {
	Symbols []string
}

func (e *UnresolvedSymbolError) Error() string {
	return "polynomial: unresolved symbols: " + strings.Join(e.Symbols, ", ")
}
