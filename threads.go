package sievego

import (
	"fmt"
	"runtime"
)

// ConcurrencyProvider reports the number of logical cores available for
// parallel execution. It is injected at construction so tests can pin a
// deterministic value instead of depending on the host machine.
type ConcurrencyProvider func() int

// RuntimeConcurrency is the default ConcurrencyProvider. It resolves to
// min(GOMAXPROCS, NumCPU), matching the scheduler's effective parallelism.
func RuntimeConcurrency() int {
	return min(runtime.GOMAXPROCS(0), runtime.NumCPU())
}

// ThreadConfig holds the resolved worker count for a parallel engine.
//
// A requested count of 0 resolves through the provider; a count of exactly 1
// disables parallel execution and the engine falls back to its sequential
// generation path.
type ThreadConfig struct {
	count    int
	parallel bool
	provider ConcurrencyProvider
}

func newThreadConfig(threads int, provider ConcurrencyProvider) ThreadConfig {
	if provider == nil {
		provider = RuntimeConcurrency
	}
	tc := ThreadConfig{provider: provider}
	tc.SetThreadCount(threads)
	return tc
}

// ThreadCount returns the resolved worker count.
func (c *ThreadConfig) ThreadCount() int { return c.count }

// ParallelEnabled reports whether parallel execution is in effect.
func (c *ThreadConfig) ParallelEnabled() bool { return c.parallel && c.count > 1 }

// SetThreadCount updates the worker count and re-derives the parallel flag.
// threads <= 0 re-resolves through the provider.
func (c *ThreadConfig) SetThreadCount(threads int) {
	if threads > 0 {
		c.count = threads
	} else {
		c.count = c.provider()
		if c.count < 1 {
			c.count = 1
		}
	}
	c.parallel = threads != 1
}

// SetParallelEnabled toggles parallel execution without changing the count.
func (c *ThreadConfig) SetParallelEnabled(parallel bool) {
	c.parallel = parallel
}

// Info returns a human-readable summary of the thread configuration.
func (c *ThreadConfig) Info() string {
	enabled := "No"
	if c.ParallelEnabled() {
		enabled = "Yes"
	}
	return fmt.Sprintf("Threads: %d (Parallel: %s)", c.count, enabled)
}
