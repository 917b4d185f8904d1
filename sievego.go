package sievego

import (
	"io"
	"time"
)

// Sieve is the shape shared by every engine variant, sequential and parallel.
//
// Construction fully pre-initializes the marker storage; Generate mutates it
// exactly once (marks flip prime to composite, never back) and is a no-op on
// repeat calls. Query operations trigger Generate lazily; export operations
// require it to have run.
type Sieve interface {
	// Generate runs the sieve to completion. Idempotent.
	Generate()

	// IsPrime reports whether num is prime. Returns *ErrOutOfRange when
	// num exceeds the configured limit; the query is never clamped.
	IsPrime(num uint64) (bool, error)

	// Primes returns all primes in [2, limit] in ascending order.
	Primes() []uint64

	// PrimeCount returns the number of primes in [2, limit]. The count is
	// a full rescan of the marker storage, not cached.
	PrimeCount() uint64

	// Limit returns the upper inclusive bound fixed at construction.
	Limit() uint64

	// Generated reports whether Generate has completed.
	Generated() bool

	// MemoryUsage returns the marker storage footprint in bytes.
	MemoryUsage() uint64

	// WritePrimes writes space-separated primes to w, wrapping every
	// perLine entries. Fails with ErrNotGenerated before Generate.
	WritePrimes(w io.Writer, perLine int) error

	// PrintPrimes writes primes to standard output, perLine per line.
	PrintPrimes(perLine int) error

	// SavePrimesToFile writes one decimal prime per line to path.
	// It returns ErrNotGenerated before Generate; an I/O failure is an
	// expected condition reported through the boolean, not the error.
	SavePrimesToFile(path string) (bool, error)
}

// engineState carries the fields common to all engines: the fixed bound, the
// generation flag guarding idempotence, and the ambient stack. genFn is the
// engine's marking pass; parallel variants swap in their own at construction
// so lazy generation triggered through an embedded method still dispatches to
// the parallel path.
type engineState struct {
	limit     uint64
	generated bool
	algorithm string
	workers   int
	opts      options
	genFn     func()
}

func newEngineState(limit uint64, algorithm string, opts []Option) engineState {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return engineState{
		limit:     limit,
		algorithm: algorithm,
		workers:   1,
		opts:      o,
	}
}

// Limit returns the upper inclusive bound fixed at construction.
func (s *engineState) Limit() uint64 { return s.limit }

// Generated reports whether Generate has completed.
func (s *engineState) Generated() bool { return s.generated }

// Generate runs the sieve to completion. A second call is a no-op.
func (s *engineState) Generate() {
	if s.generated {
		return
	}
	start := time.Now()
	s.genFn()
	s.generated = true
	duration := time.Since(start)
	s.opts.metrics.RecordGenerate(s.limit, s.workers, duration)
	s.opts.logger.LogGenerate(s.algorithm, s.limit, s.workers, duration)
}

var (
	_ Sieve = (*BasicSieve)(nil)
	_ Sieve = (*BitSieve)(nil)
	_ Sieve = (*WheelSieve)(nil)
	_ Sieve = (*ParallelBasicSieve)(nil)
	_ Sieve = (*ParallelBitSieve)(nil)
	_ Sieve = (*ParallelWheelSieve)(nil)
)
