package sievego

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/sievego/blobstore"
	"github.com/hupe1980/sievego/resource"
)

// DefaultPerLine is the default number of primes printed per line.
const DefaultPerLine = 10

// Compression selects the codec wrapped around file and blob exports.
type Compression int

const (
	// CompressionNone writes the plain text stream.
	CompressionNone Compression = iota
	// CompressionGzip wraps the stream in gzip (klauspost/compress).
	CompressionGzip
	// CompressionLZ4 wraps the stream in an lz4 frame.
	CompressionLZ4
)

// wrapWriter wraps w in the selected codec. The returned closer flushes the
// codec frame; it never closes w itself.
func (c Compression) wrapWriter(w io.Writer) (io.Writer, func() error) {
	switch c {
	case CompressionGzip:
		zw := gzip.NewWriter(w)
		return zw, zw.Close
	case CompressionLZ4:
		zw := lz4.NewWriter(w)
		return zw, zw.Close
	default:
		return w, func() error { return nil }
	}
}

// writePrimesWrapped writes space-separated primes, wrapping every perLine
// entries, with a final newline when the last line is incomplete.
func writePrimesWrapped(w io.Writer, primes []uint64, perLine int) error {
	if perLine <= 0 {
		perLine = DefaultPerLine
	}
	bw := bufio.NewWriter(w)
	for i, p := range primes {
		bw.WriteString(strconv.FormatUint(p, 10))
		switch {
		case (i+1)%perLine == 0:
			bw.WriteByte('\n')
		case i != len(primes)-1:
			bw.WriteByte(' ')
		}
	}
	if len(primes)%perLine != 0 {
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// writePrimesLines writes one decimal prime per line, no header or footer.
func writePrimesLines(w io.Writer, primes []uint64) error {
	bw := bufio.NewWriter(w)
	for _, p := range primes {
		bw.WriteString(strconv.FormatUint(p, 10))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// savePrimes writes the persisted file format to path. An I/O failure is an
// expected condition: it is logged and reported through the boolean, never
// raised. Export throughput honors the resource controller when one is set.
func (s *engineState) savePrimes(path string, primes []uint64) bool {
	start := time.Now()

	report := func(err error) bool {
		s.opts.metrics.RecordExport(len(primes), time.Since(start), err)
		s.opts.logger.LogExport(path, len(primes), err)
		return err == nil
	}

	f, err := os.Create(path)
	if err != nil {
		return report(err)
	}

	var w io.Writer = f
	if s.opts.controller != nil {
		w = resource.NewRateLimitedWriter(context.Background(), w, s.opts.controller)
	}
	cw, closeCodec := s.opts.compression.wrapWriter(w)

	if err := writePrimesLines(cw, primes); err != nil {
		_ = closeCodec()
		_ = f.Close()
		return report(err)
	}
	if err := closeCodec(); err != nil {
		_ = f.Close()
		return report(err)
	}
	return report(f.Close())
}

// SavePrimesToStore uploads the prime list of s to a blob store in the same
// one-decimal-per-line format as SavePrimesToFile, optionally compressed.
// Unlike the file variant this is a remote operation, so failures surface as
// errors. Returns ErrNotGenerated before Generate.
func SavePrimesToStore(ctx context.Context, store blobstore.BlobStore, name string, s Sieve, c Compression) error {
	if !s.Generated() {
		return ErrNotGenerated
	}

	var buf bytes.Buffer
	cw, closeCodec := c.wrapWriter(&buf)
	if err := writePrimesLines(cw, s.Primes()); err != nil {
		return err
	}
	if err := closeCodec(); err != nil {
		return err
	}

	return store.Put(ctx, name, buf.Bytes())
}

// PrimesBitmap returns the primes of s as a compressed roaring bitmap, for
// consumers doing set algebra over prime sets. Limits above MaxUint32 do not
// fit the 32-bit container space.
func PrimesBitmap(s Sieve) (*roaring.Bitmap, error) {
	if s.Limit() > math.MaxUint32 {
		return nil, fmt.Errorf("limit %d exceeds bitmap container space", s.Limit())
	}
	bm := roaring.New()
	for _, p := range s.Primes() {
		bm.Add(uint32(p))
	}
	return bm, nil
}
