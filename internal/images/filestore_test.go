package images

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	newStore := func(t *testing.T) (*FileStore, string) {
		dir := t.TempDir()
		fs, err := NewFileStore(dir, zap.NewNop())
		require.NoError(t, err)
		return fs, dir
	}

	t.Run("attach and list", func(t *testing.T) {
		fs, dir := newStore(t)

		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.jpg"), []byte("img"), 0o644))
		require.NoError(t, fs.Attach("listing-1", "a.jpg"))

		images, err := fs.Images("listing-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"a.jpg"}, images)
	})

	t.Run("release deletes files and the index entry", func(t *testing.T) {
		fs, dir := newStore(t)

		path := filepath.Join(dir, "a.jpg")
		require.NoError(t, os.WriteFile(path, []byte("img"), 0o644))
		require.NoError(t, fs.Attach("listing-1", "a.jpg"))

		require.NoError(t, fs.ReleaseImages(ctx, "listing-1"))

		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))

		images, err := fs.Images("listing-1")
		require.NoError(t, err)
		assert.Empty(t, images)
	})

	t.Run("release tolerates missing files", func(t *testing.T) {
		fs, _ := newStore(t)

		require.NoError(t, fs.Attach("listing-1", "gone.jpg"))
		assert.NoError(t, fs.ReleaseImages(ctx, "listing-1"))
	})

	t.Run("index survives a reopen", func(t *testing.T) {
		fs, dir := newStore(t)
		require.NoError(t, fs.Attach("listing-1", "a.jpg"))

		reopened, err := NewFileStore(dir, zap.NewNop())
		require.NoError(t, err)

		images, err := reopened.Images("listing-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"a.jpg"}, images)
	})
}
