// Package storagetest holds the behaviour every storage.Store backend must share.
package storagetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/fage2e/internal/storage"
)

// Run exercises s against the storage.Store contract. s must start empty.
func Run(t *testing.T, s storage.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := s.Get(ctx, "absent")
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.ErrorIs(t, s.Delete(ctx, "absent"), storage.ErrNotFound)
	})

	t.Run("empty key", func(t *testing.T) {
		_, err := s.Get(ctx, " ")
		assert.ErrorIs(t, err, storage.ErrEmptyKey)
		assert.ErrorIs(t, s.Set(ctx, "", []byte("x")), storage.ErrEmptyKey)
	})

	t.Run("set get delete", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "draft", []byte(`{"v":1}`)))
		got, err := s.Get(ctx, "draft")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"v":1}`), got)

		require.NoError(t, s.Set(ctx, "draft", []byte(`{"v":2}`)))
		got, err = s.Get(ctx, "draft")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"v":2}`), got)

		require.NoError(t, s.Delete(ctx, "draft"))
		_, err = s.Get(ctx, "draft")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("round trip", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			key := rapid.StringMatching(`[a-z0-9-]{1,24}`).Draw(rt, "key")
			data := rapid.SliceOfN(rapid.Byte(), 1, 256).Draw(rt, "data")
			require.NoError(rt, s.Set(ctx, key, data))
			got, err := s.Get(ctx, key)
			require.NoError(rt, err)
			assert.Equal(rt, data, got)
		})
	})
}
