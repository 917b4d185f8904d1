// Package resource tracks memory usage and throttles background work and
// export I/O across sieve engine instances.
package resource

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits.
type Config struct {
	// MaxBackgroundGenerations is the maximum number of concurrent
	// generations scheduled through RunGeneration. If 0, defaults to 1.
	MaxBackgroundGenerations int64

	// IOLimitBytesPerSec is the maximum I/O throughput for exports.
	// If 0, unlimited.
	IOLimitBytesPerSec int64
}

// Controller manages shared resources (memory accounting, concurrency, I/O).
type Controller struct {
	cfg Config

	memUsed atomic.Int64

	genSem *semaphore.Weighted

	ioLimiter *rate.Limiter
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxBackgroundGenerations <= 0 {
		cfg.MaxBackgroundGenerations = 1
	}

	c := &Controller{
		cfg:    cfg,
		genSem: semaphore.NewWeighted(cfg.MaxBackgroundGenerations),
	}

	if cfg.IOLimitBytesPerSec > 0 {
		c.ioLimiter = rate.NewLimiter(rate.Limit(cfg.IOLimitBytesPerSec), int(cfg.IOLimitBytesPerSec))
	}

	return c
}

// TrackMemory records bytes of sieve storage held by an engine.
// Accounting only; allocation is never blocked.
func (c *Controller) TrackMemory(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}
	c.memUsed.Add(bytes)
}

// ReleaseMemory removes previously tracked bytes.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}
	c.memUsed.Add(-bytes)
}

// MemoryUsage returns the total tracked sieve storage in bytes.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// RunGeneration runs fn while holding a background-generation slot.
// Blocks until a slot is available or ctx is canceled.
func (c *Controller) RunGeneration(ctx context.Context, fn func()) error {
	if c == nil {
		fn()
		return nil
	}
	if err := c.genSem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer c.genSem.Release(1)
	fn()
	return nil
}

// AcquireIO waits until the I/O budget allows bytes more bytes.
func (c *Controller) AcquireIO(ctx context.Context, bytes int) error {
	if c == nil || c.ioLimiter == nil || bytes <= 0 {
		return nil
	}
	burst := c.ioLimiter.Burst()
	for bytes > 0 {
		n := bytes
		if n > burst {
			n = burst
		}
		if err := c.ioLimiter.WaitN(ctx, n); err != nil {
			return err
		}
		bytes -= n
	}
	return nil
}
