package sievego

import (
	"fmt"
	"testing"
)

func benchmarkGenerate(b *testing.B, build func(limit uint64) Sieve) {
	for _, limit := range []uint64{100_000, 1_000_000, 10_000_000} {
		b.Run(fmt.Sprintf("limit=%d", limit), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				s := build(limit)
				s.Generate()
			}
		})
	}
}

func BenchmarkBasicGenerate(b *testing.B) {
	benchmarkGenerate(b, func(limit uint64) Sieve { return NewBasic(limit) })
}

func BenchmarkBitPackedGenerate(b *testing.B) {
	benchmarkGenerate(b, func(limit uint64) Sieve { return NewBitPacked(limit) })
}

func BenchmarkWheelGenerate(b *testing.B) {
	benchmarkGenerate(b, func(limit uint64) Sieve { return NewWheel(limit) })
}

func BenchmarkParallelBasicGenerate(b *testing.B) {
	benchmarkGenerate(b, func(limit uint64) Sieve { return NewParallelBasic(limit, 0) })
}

func BenchmarkParallelBitPackedGenerate(b *testing.B) {
	benchmarkGenerate(b, func(limit uint64) Sieve { return NewParallelBitPacked(limit, 0) })
}

func BenchmarkParallelWheelGenerate(b *testing.B) {
	benchmarkGenerate(b, func(limit uint64) Sieve { return NewParallelWheel(limit, 0) })
}

func BenchmarkPrimesScan(b *testing.B) {
	s := NewBitPacked(1_000_000)
	s.Generate()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Primes()
	}
}
