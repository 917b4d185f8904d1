package sievego

import (
	"io"
	"os"

	"github.com/hupe1980/sievego/internal/wheel"
)

// WheelSieve applies 2·3·5 wheel factorization to the marker-array sieve:
// only candidates coprime to 30 are walked, 8 per 30 integers. The wheel
// saves time, not space; storage is still one byte per candidate.
type WheelSieve struct {
	engineState
	marks []bool
}

// NewWheel creates a sequential wheel-factorized sieve for primes up to
// limit. Construction clears every multiple of 2, 3 and 5 up front, then
// re-marks the base primes themselves.
func NewWheel(limit uint64, opts ...Option) *WheelSieve {
	marks := newMarks(limit)
	for _, bp := range wheel.BasePrimes {
		for i := bp; i <= limit; i += bp {
			marks[i] = false
		}
	}
	for _, bp := range wheel.BasePrimes {
		if bp <= limit {
			marks[bp] = true
		}
	}

	s := &WheelSieve{
		engineState: newEngineState(limit, "wheel", opts),
		marks:       marks,
	}
	s.genFn = s.generateSequential
	s.opts.controller.TrackMemory(int64(len(s.marks)))
	return s
}

func (s *WheelSieve) generateSequential() {
	for p := uint64(7); p*p <= s.limit; p = wheel.Next(p) {
		if !s.marks[p] {
			continue
		}
		s.clearMultiples(p)
	}
}

// clearMultiples clears multiples of p from p². The cursor takes the wheel
// jump only when it lands on a true multiple of p; otherwise it advances by
// p, so nothing but multiples of p is ever cleared. Jumped-over multiples
// are divisible by 2, 3 or 5 and were cleared at construction.
func (s *WheelSieve) clearMultiples(p uint64) {
	for m := p * p; m <= s.limit; {
		s.marks[m] = false
		next := wheel.Next(m)
		if next%p != 0 {
			next = m + p
		}
		m = next
	}
}

// IsPrime reports whether num is prime, generating the sieve if needed.
func (s *WheelSieve) IsPrime(num uint64) (bool, error) {
	if num > s.limit {
		return false, &ErrOutOfRange{Num: num, Limit: s.limit}
	}
	s.Generate()
	return s.marks[num], nil
}

// Primes returns all primes in [2, limit] ascending: the base primes 2, 3, 5
// first, then the surviving wheel candidates from 7 on.
func (s *WheelSieve) Primes() []uint64 {
	s.Generate()
	primes := make([]uint64, 0, primeEstimate(s.limit))
	for _, bp := range wheel.BasePrimes {
		if bp <= s.limit {
			primes = append(primes, bp)
		}
	}
	for i := uint64(7); i <= s.limit; i = wheel.Next(i) {
		if s.marks[i] {
			primes = append(primes, i)
		}
	}
	return primes
}

// PrimeCount returns the number of primes up to limit. Full rescan per call.
func (s *WheelSieve) PrimeCount() uint64 {
	s.Generate()
	var count uint64
	for _, bp := range wheel.BasePrimes {
		if bp <= s.limit {
			count++
		}
	}
	for i := uint64(7); i <= s.limit; i = wheel.Next(i) {
		if s.marks[i] {
			count++
		}
	}
	return count
}

// MemoryUsage returns the marker array footprint in bytes.
func (s *WheelSieve) MemoryUsage() uint64 {
	return uint64(len(s.marks))
}

// WritePrimes writes space-separated primes to w, wrapping every perLine.
func (s *WheelSieve) WritePrimes(w io.Writer, perLine int) error {
	if !s.generated {
		return ErrNotGenerated
	}
	return writePrimesWrapped(w, s.Primes(), perLine)
}

// PrintPrimes writes primes to standard output, perLine per line.
func (s *WheelSieve) PrintPrimes(perLine int) error {
	return s.WritePrimes(os.Stdout, perLine)
}

// SavePrimesToFile writes one prime per line to path. See Sieve.
func (s *WheelSieve) SavePrimesToFile(path string) (bool, error) {
	if !s.generated {
		return false, ErrNotGenerated
	}
	return s.savePrimes(path, s.Primes()), nil
}
