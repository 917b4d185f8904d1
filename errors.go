package sievego

import (
	"errors"
	"fmt"
)

var (
	// ErrNotGenerated is returned when an export operation is invoked
	// before Generate has run. Distinct from ErrOutOfRange so callers can
	// tell "not computed yet" apart from "beyond the bound".
	ErrNotGenerated = errors.New("sieve has not been generated yet")
)

// ErrOutOfRange indicates a primality query beyond the configured limit.
// The query is never silently clamped.
type ErrOutOfRange struct {
	Num   uint64
	Limit uint64
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("number %d exceeds sieve limit %d", e.Num, e.Limit)
}
