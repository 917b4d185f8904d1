// Package sievego computes prime numbers up to a bound with the Sieve of
// Eratosthenes, in three storage variants with a parallel engine for each.
//
// # Engines
//
//	// 1. BASIC — one marker byte per candidate, the baseline.
//	s := sievego.NewBasic(1_000_000)
//
//	// 2. BIT-PACKED — 64 candidates per machine word, ~8x less memory.
//	s := sievego.NewBitPacked(1_000_000)
//
//	// 3. WHEEL — 2·3·5 wheel factorization, 73% fewer candidates visited.
//	s := sievego.NewWheel(1_000_000)
//
// Each has a parallel counterpart that distributes the composite-clearing
// loop across worker goroutines:
//
//	s := sievego.NewParallelWheel(1_000_000, 0) // 0 = auto-detect threads
//
// # Queries
//
// Queries trigger generation lazily; Generate is idempotent.
//
//	primes := s.Primes()
//	n := s.PrimeCount()
//	ok, err := s.IsPrime(97)   // *ErrOutOfRange beyond the bound
//	bytes := s.MemoryUsage()
//
// # Export
//
//	s.Generate()
//	s.PrintPrimes(10)                          // 10 per line to stdout
//	saved, err := s.SavePrimesToFile("p.txt")  // one decimal per line
//	err = sievego.SavePrimesToStore(ctx, store, "p.txt", s, sievego.CompressionGzip)
//
// # Concurrency model
//
// Parallel engines keep the outer candidate loop sequential — primality of p
// may only be tested after every prime below p finished clearing — and
// fork-join the inner clearing loop over statically scheduled chunks. Marker
// storage needs no locking (disjoint byte cells per stride); bit-packed
// storage clears through atomic fetch-AND because two strides can share a
// 64-bit word.
package sievego
