// Command sievego finds prime numbers up to a bound using the Sieve of
// Eratosthenes, with selectable storage variants and parallel execution.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/hupe1980/sievego"
)

func main() {
	var (
		limit      = flag.Uint64("limit", 1_000_000, "upper limit for finding prime numbers")
		algorithm  = flag.String("algorithm", "basic", "sieve variant: basic, bit or wheel")
		threads    = flag.Int("threads", 0, "number of worker threads (0 = auto-detect)")
		noParallel = flag.Bool("no-parallel", false, "disable parallel processing")
		showCount  = flag.Bool("count", false, "show only the count of prime numbers")
		showTime   = flag.Bool("time", false, "show execution time and memory usage")
		showList   = flag.Bool("list", false, "show the list of prime numbers")
		perLine    = flag.Int("per-line", sievego.DefaultPerLine, "primes to print per line")
		output     = flag.String("output", "", "output file to save primes")
		bench      = flag.Bool("bench", false, "benchmark sequential vs parallel for all variants")
		threadInfo = flag.Bool("thread-info", false, "display thread information and exit")
		verbose    = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *threadInfo {
		fmt.Println("System information:")
		fmt.Printf("  Logical cores: %d\n", runtime.NumCPU())
		fmt.Printf("  GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0))
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := sievego.NewTextLogger(level)

	if *bench {
		runBenchmark(*limit, *threads, logger)
		return
	}

	s, label, err := newSieve(*algorithm, *limit, *threads, *noParallel, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	start := time.Now()
	s.Generate()
	elapsed := time.Since(start)

	if *showCount || (!*showList && *output == "") {
		fmt.Printf("Found %d prime numbers up to %d (using %s)\n", s.PrimeCount(), *limit, label)
	}

	if *showTime {
		fmt.Printf("Execution time: %s\n", elapsed)
		fmt.Printf("Memory usage: %d bytes\n", s.MemoryUsage())
	}

	if *showList {
		fmt.Printf("Prime numbers up to %d (using %s):\n", *limit, label)
		if err := s.PrintPrimes(*perLine); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if *output != "" {
		saved, err := s.SavePrimesToFile(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !saved {
			fmt.Fprintf(os.Stderr, "Error: could not save primes to %s\n", *output)
			os.Exit(1)
		}
		fmt.Printf("Primes saved to %s\n", *output)
	}
}

func newSieve(algorithm string, limit uint64, threads int, noParallel bool, logger *sievego.Logger) (sievego.Sieve, string, error) {
	opts := []sievego.Option{sievego.WithLogger(logger)}

	if noParallel {
		switch algorithm {
		case "basic":
			return sievego.NewBasic(limit, opts...), "basic sieve", nil
		case "bit":
			return sievego.NewBitPacked(limit, opts...), "bit-packed sieve", nil
		case "wheel":
			return sievego.NewWheel(limit, opts...), "wheel sieve", nil
		}
		return nil, "", fmt.Errorf("unknown algorithm %q", algorithm)
	}

	switch algorithm {
	case "basic":
		return sievego.NewParallelBasic(limit, threads, opts...), "parallel basic sieve", nil
	case "bit":
		return sievego.NewParallelBitPacked(limit, threads, opts...), "parallel bit-packed sieve", nil
	case "wheel":
		return sievego.NewParallelWheel(limit, threads, opts...), "parallel wheel sieve", nil
	}
	return nil, "", fmt.Errorf("unknown algorithm %q", algorithm)
}

// runBenchmark compares sequential against parallel generation for each
// engine family and reports speedup and memory usage.
func runBenchmark(limit uint64, threads int, logger *sievego.Logger) {
	type variant struct {
		name       string
		sequential func() sievego.Sieve
		parallel   func() sievego.Sieve
	}

	opts := []sievego.Option{sievego.WithLogger(logger)}
	variants := []variant{
		{
			name:       "basic",
			sequential: func() sievego.Sieve { return sievego.NewBasic(limit, opts...) },
			parallel:   func() sievego.Sieve { return sievego.NewParallelBasic(limit, threads, opts...) },
		},
		{
			name:       "bit",
			sequential: func() sievego.Sieve { return sievego.NewBitPacked(limit, opts...) },
			parallel:   func() sievego.Sieve { return sievego.NewParallelBitPacked(limit, threads, opts...) },
		},
		{
			name:       "wheel",
			sequential: func() sievego.Sieve { return sievego.NewWheel(limit, opts...) },
			parallel:   func() sievego.Sieve { return sievego.NewParallelWheel(limit, threads, opts...) },
		},
	}

	fmt.Printf("%-8s %14s %14s %9s %14s\n", "variant", "sequential", "parallel", "speedup", "memory")
	for _, v := range variants {
		seq := v.sequential()
		start := time.Now()
		seq.Generate()
		seqTime := time.Since(start)

		par := v.parallel()
		start = time.Now()
		par.Generate()
		parTime := time.Since(start)

		speedup := 0.0
		if parTime > 0 {
			speedup = float64(seqTime) / float64(parTime)
		}
		fmt.Printf("%-8s %14s %14s %8.2fx %13dB\n", v.name, seqTime, parTime, speedup, par.MemoryUsage())
	}
}
