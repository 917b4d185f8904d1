package sievego

import (
	"io"
	"os"
)

// BasicSieve is the baseline Sieve of Eratosthenes with one marker byte per
// candidate in [0, limit].
type BasicSieve struct {
	engineState
	marks []bool
}

// NewBasic creates a sequential marker-array sieve for primes up to limit.
func NewBasic(limit uint64, opts ...Option) *BasicSieve {
	s := &BasicSieve{
		engineState: newEngineState(limit, "basic", opts),
		marks:       newMarks(limit),
	}
	s.genFn = s.generateSequential
	s.opts.controller.TrackMemory(int64(len(s.marks)))
	return s
}

// newMarks allocates the marker array with 0 and 1 pre-cleared.
func newMarks(limit uint64) []bool {
	marks := make([]bool, limit+1)
	for i := range marks {
		marks[i] = true
	}
	marks[0] = false
	if limit >= 1 {
		marks[1] = false
	}
	return marks
}

func (s *BasicSieve) generateSequential() {
	for p := uint64(2); p*p <= s.limit; p++ {
		if !s.marks[p] {
			continue
		}
		// Smaller multiples were already cleared by smaller primes.
		for m := p * p; m <= s.limit; m += p {
			s.marks[m] = false
		}
	}
}

// IsPrime reports whether num is prime, generating the sieve if needed.
func (s *BasicSieve) IsPrime(num uint64) (bool, error) {
	if num > s.limit {
		return false, &ErrOutOfRange{Num: num, Limit: s.limit}
	}
	s.Generate()
	return s.marks[num], nil
}

// Primes returns all primes in [2, limit] ascending, generating if needed.
func (s *BasicSieve) Primes() []uint64 {
	s.Generate()
	primes := make([]uint64, 0, primeEstimate(s.limit))
	for i := uint64(2); i <= s.limit; i++ {
		if s.marks[i] {
			primes = append(primes, i)
		}
	}
	return primes
}

// PrimeCount returns the number of primes up to limit. Full rescan per call.
func (s *BasicSieve) PrimeCount() uint64 {
	s.Generate()
	var count uint64
	for i := uint64(2); i <= s.limit; i++ {
		if s.marks[i] {
			count++
		}
	}
	return count
}

// MemoryUsage returns the marker array footprint in bytes.
func (s *BasicSieve) MemoryUsage() uint64 {
	return uint64(len(s.marks))
}

// WritePrimes writes space-separated primes to w, wrapping every perLine.
func (s *BasicSieve) WritePrimes(w io.Writer, perLine int) error {
	if !s.generated {
		return ErrNotGenerated
	}
	return writePrimesWrapped(w, s.Primes(), perLine)
}

// PrintPrimes writes primes to standard output, perLine per line.
func (s *BasicSieve) PrintPrimes(perLine int) error {
	return s.WritePrimes(os.Stdout, perLine)
}

// SavePrimesToFile writes one prime per line to path. See Sieve.
func (s *BasicSieve) SavePrimesToFile(path string) (bool, error) {
	if !s.generated {
		return false, ErrNotGenerated
	}
	return s.savePrimes(path, s.Primes()), nil
}

// primeEstimate sizes the result slice: roughly 1 in 10 integers below
// typical limits is prime.
func primeEstimate(limit uint64) int {
	return int(limit/10) + 8
}
