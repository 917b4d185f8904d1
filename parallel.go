package sievego

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/sievego/internal/partition"
	"github.com/hupe1980/sievego/internal/wheel"
)

// Chunking constants per storage kind. Bit and wheel storage use smaller
// chunks: higher per-element cost and cache sensitivity want finer grains.
const (
	markerChunkDivisor = 4
	packedChunkDivisor = 8
	wheelChunkDivisor  = 8

	minMarkerChunk = 1000
	minPackedChunk = 500
	minWheelChunk  = 200
)

// clearChunks distributes the chunk list round-robin across workers and
// clears every multiple of prime inside each claimed chunk. Static
// scheduling: assignments are fixed ahead of execution, no work stealing.
// Generation is fail-stop; a panicking worker leaves the sieve state
// undefined and it must not be queried afterward.
func clearChunks(workers int, prime uint64, chunks []partition.Range, clear func(uint64)) {
	var g errgroup.Group
	for t := 0; t < workers; t++ {
		t := t
		g.Go(func() error {
			for i := t; i < len(chunks); i += workers {
				c := chunks[i]
				first := ((c.Start + prime - 1) / prime) * prime
				for m := first; m <= c.End; m += prime {
					clear(m)
				}
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; Wait is the join barrier
}

// ParallelBasicSieve distributes BasicSieve's composite-clearing loop across
// worker goroutines. The outer candidate loop stays sequential: testing p
// requires every prime below p to have finished clearing, and only the join
// after each inner loop guarantees that ordering. Writers within one prime's
// stride touch disjoint byte-addressable cells, so the inner loop needs no
// synchronization.
type ParallelBasicSieve struct {
	*BasicSieve
	threads ThreadConfig
}

// NewParallelBasic creates a parallel marker-array sieve. threads == 0
// resolves through the concurrency provider; threads == 1 disables
// parallelism entirely.
func NewParallelBasic(limit uint64, threads int, opts ...Option) *ParallelBasicSieve {
	s := NewBasic(limit, opts...)
	s.algorithm = "parallel-basic"
	p := &ParallelBasicSieve{
		BasicSieve: s,
		threads:    newThreadConfig(threads, s.opts.provider),
	}
	s.workers = p.threads.ThreadCount()
	s.genFn = p.generateParallel
	return p
}

func (p *ParallelBasicSieve) generateParallel() {
	if !p.threads.ParallelEnabled() {
		p.generateSequential()
		return
	}
	for q := uint64(2); q*q <= p.limit; q++ {
		if !p.marks[q] {
			continue
		}
		p.clearMultiplesParallel(q)
	}
}

func (p *ParallelBasicSieve) clearMultiplesParallel(prime uint64) {
	start, end := prime*prime, p.limit
	workers := p.threads.ThreadCount()
	size := partition.ChunkSize(start, end, workers, markerChunkDivisor, minMarkerChunk)
	chunks := partition.Chunks(start, end, size)
	if len(chunks) <= 1 {
		for m := start; m <= end; m += prime {
			p.marks[m] = false
		}
		return
	}
	clearChunks(workers, prime, chunks, func(m uint64) { p.marks[m] = false })
}

// SetThreadCount updates the worker count; threads <= 0 re-resolves through
// the provider and threads == 1 disables parallelism.
func (p *ParallelBasicSieve) SetThreadCount(threads int) {
	p.threads.SetThreadCount(threads)
	p.workers = p.threads.ThreadCount()
}

// SetParallelEnabled toggles the parallel path without changing the count.
func (p *ParallelBasicSieve) SetParallelEnabled(parallel bool) {
	p.threads.SetParallelEnabled(parallel)
}

// ThreadCount returns the resolved worker count.
func (p *ParallelBasicSieve) ThreadCount() int { return p.threads.ThreadCount() }

// ParallelEnabled reports whether parallel execution is in effect.
func (p *ParallelBasicSieve) ParallelEnabled() bool { return p.threads.ParallelEnabled() }

// ThreadInfo returns a human-readable thread configuration summary.
func (p *ParallelBasicSieve) ThreadInfo() string { return p.threads.Info() }

// PerformanceStats returns a generation summary for display.
func (p *ParallelBasicSieve) PerformanceStats() string {
	return performanceStats("basic", &p.engineState, &p.threads, p.MemoryUsage())
}

// ParallelBitSieve distributes BitSieve's composite-clearing loop across
// worker goroutines. Unlike marker storage, two strides of the same prime
// can map into the same 64-bit word, so every clear goes through the
// bitset's atomic fetch-AND; the race is prevented by construction.
type ParallelBitSieve struct {
	*BitSieve
	threads ThreadConfig
}

// NewParallelBitPacked creates a parallel bit-packed sieve.
func NewParallelBitPacked(limit uint64, threads int, opts ...Option) *ParallelBitSieve {
	s := NewBitPacked(limit, opts...)
	s.algorithm = "parallel-bitpacked"
	p := &ParallelBitSieve{
		BitSieve: s,
		threads:  newThreadConfig(threads, s.opts.provider),
	}
	s.workers = p.threads.ThreadCount()
	s.genFn = p.generateParallel
	return p
}

func (p *ParallelBitSieve) generateParallel() {
	if !p.threads.ParallelEnabled() {
		p.generateSequential()
		return
	}
	for q := uint64(2); q*q <= p.limit; q++ {
		if !p.bits.Test(q) {
			continue
		}
		p.clearMultiplesParallel(q)
	}
}

func (p *ParallelBitSieve) clearMultiplesParallel(prime uint64) {
	start, end := prime*prime, p.limit
	workers := p.threads.ThreadCount()
	size := partition.ChunkSize(start, end, workers, packedChunkDivisor, minPackedChunk)
	chunks := partition.Chunks(start, end, size)
	if len(chunks) <= 1 {
		for m := start; m <= end; m += prime {
			p.bits.Clear(m)
		}
		return
	}
	clearChunks(workers, prime, chunks, p.bits.Clear)
}

// SetThreadCount updates the worker count; see ParallelBasicSieve.
func (p *ParallelBitSieve) SetThreadCount(threads int) {
	p.threads.SetThreadCount(threads)
	p.workers = p.threads.ThreadCount()
}

// SetParallelEnabled toggles the parallel path without changing the count.
func (p *ParallelBitSieve) SetParallelEnabled(parallel bool) {
	p.threads.SetParallelEnabled(parallel)
}

// ThreadCount returns the resolved worker count.
func (p *ParallelBitSieve) ThreadCount() int { return p.threads.ThreadCount() }

// ParallelEnabled reports whether parallel execution is in effect.
func (p *ParallelBitSieve) ParallelEnabled() bool { return p.threads.ParallelEnabled() }

// ThreadInfo returns a human-readable thread configuration summary.
func (p *ParallelBitSieve) ThreadInfo() string { return p.threads.Info() }

// PerformanceStats returns a generation summary for display.
func (p *ParallelBitSieve) PerformanceStats() string {
	return performanceStats("bitpacked", &p.engineState, &p.threads, p.MemoryUsage())
}

// ParallelWheelSieve distributes WheelSieve's composite-clearing loop across
// worker goroutines. The candidate walk from 7 stays sequential on the wheel;
// the parallel clearing pass strides plainly by the prime, which also touches
// non-admissible multiples — harmless, they were cleared at construction.
type ParallelWheelSieve struct {
	*WheelSieve
	threads ThreadConfig
}

// NewParallelWheel creates a parallel wheel-factorized sieve.
func NewParallelWheel(limit uint64, threads int, opts ...Option) *ParallelWheelSieve {
	s := NewWheel(limit, opts...)
	s.algorithm = "parallel-wheel"
	p := &ParallelWheelSieve{
		WheelSieve: s,
		threads:    newThreadConfig(threads, s.opts.provider),
	}
	s.workers = p.threads.ThreadCount()
	s.genFn = p.generateParallel
	return p
}

func (p *ParallelWheelSieve) generateParallel() {
	if !p.threads.ParallelEnabled() {
		p.generateSequential()
		return
	}
	for q := uint64(7); q*q <= p.limit; q = wheel.Next(q) {
		if !p.marks[q] {
			continue
		}
		p.clearMultiplesParallel(q)
	}
}

func (p *ParallelWheelSieve) clearMultiplesParallel(prime uint64) {
	start, end := prime*prime, p.limit
	workers := p.threads.ThreadCount()
	size := partition.ChunkSize(start, end, workers, wheelChunkDivisor, minWheelChunk)
	chunks := partition.Chunks(start, end, size)
	if len(chunks) <= 1 {
		for m := start; m <= end; m += prime {
			p.marks[m] = false
		}
		return
	}
	clearChunks(workers, prime, chunks, func(m uint64) { p.marks[m] = false })
}

// SetThreadCount updates the worker count; see ParallelBasicSieve.
func (p *ParallelWheelSieve) SetThreadCount(threads int) {
	p.threads.SetThreadCount(threads)
	p.workers = p.threads.ThreadCount()
}

// SetParallelEnabled toggles the parallel path without changing the count.
func (p *ParallelWheelSieve) SetParallelEnabled(parallel bool) {
	p.threads.SetParallelEnabled(parallel)
}

// ThreadCount returns the resolved worker count.
func (p *ParallelWheelSieve) ThreadCount() int { return p.threads.ThreadCount() }

// ParallelEnabled reports whether parallel execution is in effect.
func (p *ParallelWheelSieve) ParallelEnabled() bool { return p.threads.ParallelEnabled() }

// ThreadInfo returns a human-readable thread configuration summary.
func (p *ParallelWheelSieve) ThreadInfo() string { return p.threads.Info() }

// PerformanceStats returns a generation summary for display.
func (p *ParallelWheelSieve) PerformanceStats() string {
	return performanceStats("wheel", &p.engineState, &p.threads, p.MemoryUsage())
}

func performanceStats(family string, st *engineState, tc *ThreadConfig, mem uint64) string {
	if !st.generated {
		return "Sieve not generated yet"
	}
	parallel := "No"
	if tc.ParallelEnabled() {
		parallel = "Yes"
	}
	return fmt.Sprintf("Parallel %s sieve performance:\n  Limit: %d\n  Threads: %d\n  Parallel: %s\n  Memory usage: %d bytes\n",
		family, st.limit, tc.ThreadCount(), parallel, mem)
}
