package blobstore

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	t.Run("PutAndOpen", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "a.txt", []byte("2\n3\n5\n")))

		r, err := store.Open(ctx, "a.txt")
		require.NoError(t, err)
		defer r.Close()

		data, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "2\n3\n5\n", string(data))
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "a.txt", []byte("7\n")))

		r, err := store.Open(ctx, "a.txt")
		require.NoError(t, err)
		defer r.Close()

		data, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "7\n", string(data))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := store.Open(ctx, "missing.txt")
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("IsolatedFromCaller", func(t *testing.T) {
		data := []byte("11\n")
		require.NoError(t, store.Put(ctx, "b.txt", data))
		data[0] = 'X'

		r, err := store.Open(ctx, "b.txt")
		require.NoError(t, err)
		defer r.Close()

		got, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "11\n", string(got))
	})
}

func TestLocalStore(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())

	t.Run("PutAndOpen", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "primes/a.txt", []byte("2\n3\n5\n")))

		r, err := store.Open(ctx, "primes/a.txt")
		require.NoError(t, err)
		defer r.Close()

		data, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "2\n3\n5\n", string(data))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := store.Open(ctx, "missing.txt")
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}
