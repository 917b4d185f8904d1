package sievego

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sievego/blobstore"
	"github.com/hupe1980/sievego/resource"
)

func TestWritePrimesWrapping(t *testing.T) {
	s := NewBasic(30)
	s.Generate()

	var buf bytes.Buffer
	require.NoError(t, s.WritePrimes(&buf, 4))

	want := "2 3 5 7\n11 13 17 19\n23 29\n"
	assert.Equal(t, want, buf.String())
}

func TestWritePrimesCompleteLastLine(t *testing.T) {
	s := NewBasic(30)
	s.Generate()

	var buf bytes.Buffer
	require.NoError(t, s.WritePrimes(&buf, 5))

	// 10 primes, 5 per line: both lines complete, no extra newline.
	want := "2 3 5 7 11\n13 17 19 23 29\n"
	assert.Equal(t, want, buf.String())
}

func TestWritePrimesBeforeGenerate(t *testing.T) {
	var buf bytes.Buffer

	err := NewBasic(100).WritePrimes(&buf, 10)
	require.ErrorIs(t, err, ErrNotGenerated)
	assert.Zero(t, buf.Len())
}

func TestSavePrimesToFile(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		s := NewWheel(30)
		s.Generate()

		path := filepath.Join(t.TempDir(), "primes.txt")
		saved, err := s.SavePrimesToFile(path)
		require.NoError(t, err)
		require.True(t, saved)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "2\n3\n5\n7\n11\n13\n17\n19\n23\n29\n", string(data))
	})

	t.Run("BeforeGenerate", func(t *testing.T) {
		s := NewBasic(30)
		_, err := s.SavePrimesToFile(filepath.Join(t.TempDir(), "primes.txt"))
		require.ErrorIs(t, err, ErrNotGenerated)
	})

	t.Run("UnwritableDestination", func(t *testing.T) {
		s := NewBasic(30)
		s.Generate()

		saved, err := s.SavePrimesToFile(filepath.Join(t.TempDir(), "missing", "primes.txt"))
		require.NoError(t, err) // I/O failure is reported, not raised
		assert.False(t, saved)
	})
}

func TestSavePrimesCompressed(t *testing.T) {
	t.Run("Gzip", func(t *testing.T) {
		s := NewBasic(30, WithCompression(CompressionGzip))
		s.Generate()

		path := filepath.Join(t.TempDir(), "primes.txt.gz")
		saved, err := s.SavePrimesToFile(path)
		require.NoError(t, err)
		require.True(t, saved)

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()

		zr, err := gzip.NewReader(f)
		require.NoError(t, err)
		data, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Equal(t, "2\n3\n5\n7\n11\n13\n17\n19\n23\n29\n", string(data))
	})

	t.Run("LZ4", func(t *testing.T) {
		s := NewBasic(30, WithCompression(CompressionLZ4))
		s.Generate()

		path := filepath.Join(t.TempDir(), "primes.txt.lz4")
		saved, err := s.SavePrimesToFile(path)
		require.NoError(t, err)
		require.True(t, saved)

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()

		data, err := io.ReadAll(lz4.NewReader(f))
		require.NoError(t, err)
		assert.Equal(t, "2\n3\n5\n7\n11\n13\n17\n19\n23\n29\n", string(data))
	})
}

func TestSavePrimesThrottled(t *testing.T) {
	ctrl := resource.NewController(resource.Config{IOLimitBytesPerSec: 1 << 20})
	s := NewBasic(1000, WithResourceController(ctrl))
	s.Generate()

	path := filepath.Join(t.TempDir(), "primes.txt")
	saved, err := s.SavePrimesToFile(path)
	require.NoError(t, err)
	assert.True(t, saved)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 168, strings.Count(string(data), "\n"))
}

func TestSavePrimesToStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Plain", func(t *testing.T) {
		store := blobstore.NewMemoryStore()
		s := NewBitPacked(30)
		s.Generate()

		require.NoError(t, SavePrimesToStore(ctx, store, "primes.txt", s, CompressionNone))

		r, err := store.Open(ctx, "primes.txt")
		require.NoError(t, err)
		defer r.Close()

		data, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "2\n3\n5\n7\n11\n13\n17\n19\n23\n29\n", string(data))
	})

	t.Run("Gzip", func(t *testing.T) {
		store := blobstore.NewMemoryStore()
		s := NewBasic(10)
		s.Generate()

		require.NoError(t, SavePrimesToStore(ctx, store, "primes.txt.gz", s, CompressionGzip))

		r, err := store.Open(ctx, "primes.txt.gz")
		require.NoError(t, err)
		defer r.Close()

		zr, err := gzip.NewReader(r)
		require.NoError(t, err)
		data, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Equal(t, "2\n3\n5\n7\n", string(data))
	})

	t.Run("BeforeGenerate", func(t *testing.T) {
		store := blobstore.NewMemoryStore()
		err := SavePrimesToStore(ctx, store, "primes.txt", NewBasic(10), CompressionNone)
		require.ErrorIs(t, err, ErrNotGenerated)
		assert.Zero(t, store.Len())
	})
}

func TestPrimesBitmap(t *testing.T) {
	s := NewWheel(100)

	bm, err := PrimesBitmap(s)
	require.NoError(t, err)
	assert.Equal(t, uint64(25), bm.GetCardinality())
	assert.True(t, bm.Contains(97))
	assert.False(t, bm.Contains(99))
}
