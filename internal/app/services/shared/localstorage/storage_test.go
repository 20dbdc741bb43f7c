package localstorage

import (
	"context"
	"os"
	"path/filepath"
	"saude-connect/internal/app/contracts"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func exerciseStorage(t *testing.T, storage contracts.SessionStorage) {
	ctx := context.Background()

	_, found, err := storage.Get(ctx, "token")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, storage.Set(ctx, "token", "abc123456789"))
	require.NoError(t, storage.Set(ctx, "userData", `{"id":1}`))

	value, found, err := storage.Get(ctx, "token")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "abc123456789", value)

	require.NoError(t, storage.Remove(ctx, "token"))
	require.NoError(t, storage.Remove(ctx, "never-set"))

	_, found, err = storage.Get(ctx, "token")
	require.NoError(t, err)
	assert.False(t, found)

	value, found, err = storage.Get(ctx, "userData")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"id":1}`, value)
}

func TestMemoryStorage(t *testing.T) {
	exerciseStorage(t, NewMemoryStorage())

	t.Run("Seeded Values Are Copied", func(t *testing.T) {
		seed := map[string]string{"token": "abc"}
		storage := NewMemoryStorageWith(seed)
		seed["token"] = "changed"

		value, found, err := storage.Get(context.Background(), "token")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "abc", value)
	})
}

func TestFileStorage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "session.json")

	exerciseStorage(t, NewFileStorage(path, zap.NewNop()))

	t.Run("Survives Reopen", func(t *testing.T) {
		reopened := NewFileStorage(path, zap.NewNop())

		value, found, err := reopened.Get(context.Background(), "userData")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `{"id":1}`, value)
	})

	t.Run("File Is Private", func(t *testing.T) {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("Corrupt File", func(t *testing.T) {
		corruptPath := filepath.Join(dir, "corrupt.json")
		require.NoError(t, os.WriteFile(corruptPath, []byte("{oops"), 0o600))
		storage := NewFileStorage(corruptPath, zap.NewNop())
		ctx := context.Background()

		_, _, err := storage.Get(ctx, "token")
		assert.Error(t, err, "reading a corrupt file reports the failure")

		require.NoError(t, storage.Set(ctx, "token", "fresh"))
		value, found, err := storage.Get(ctx, "token")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "fresh", value)
	})
}
