// Package partition splits index ranges into contiguous chunks for static
// parallel-for scheduling.
package partition

// Range is an inclusive index interval.
type Range struct {
	Start uint64
	End   uint64
}

// Chunks splits the inclusive range [start, end] into contiguous chunks of
// at most size indices. The chunk list is computed ahead of execution so
// workers can claim chunks round-robin (static scheduling, no work stealing).
func Chunks(start, end, size uint64) []Range {
	if end < start {
		return nil
	}
	if size == 0 {
		size = 1
	}
	n := (end - start + size) / size
	chunks := make([]Range, 0, n)
	for lo := start; ; {
		hi := lo + size - 1
		if hi > end || hi < lo { // hi < lo on overflow
			hi = end
		}
		chunks = append(chunks, Range{Start: lo, End: hi})
		if hi == end {
			break
		}
		lo = hi + 1
	}
	return chunks
}

// ChunkSize returns the chunk size for distributing the inclusive range
// [start, end] across threads: (end-start)/(threads*divisor), floored at
// minSize. divisor trades scheduling granularity against per-chunk overhead.
func ChunkSize(start, end uint64, threads, divisor int, minSize uint64) uint64 {
	if end < start || threads <= 0 || divisor <= 0 {
		return minSize
	}
	size := (end - start) / (uint64(threads) * uint64(divisor))
	if size < minSize {
		return minSize
	}
	return size
}
