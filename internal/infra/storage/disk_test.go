//go:build unit

package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"delacream-park/internal/infra/storage"
	"delacream-park/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*storage.DiskStore, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "gallery")
	return storage.NewDiskStore(config.UploadConfig{Dir: dir}), dir
}

func TestDiskStore_SaveCreatesDirAndFile(t *testing.T) {
	store, dir := newStore(t)

	filename, err := store.Save("photo.JPG", strings.NewReader("payload"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filename, "images-"))
	assert.True(t, strings.HasSuffix(filename, ".jpg"))

	data, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestDiskStore_SaveGeneratesUniqueNames(t *testing.T) {
	store, _ := newStore(t)

	first, err := store.Save("a.png", strings.NewReader("x"))
	require.NoError(t, err)
	second, err := store.Save("a.png", strings.NewReader("y"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDiskStore_RemoveMissingFileIsNoop(t *testing.T) {
	store, _ := newStore(t)

	assert.NoError(t, store.Remove("images-0-deadbeef.jpg"))
}

func TestDiskStore_Remove(t *testing.T) {
	store, dir := newStore(t)

	filename, err := store.Save("a.webp", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(filename))
	_, err = os.Stat(filepath.Join(dir, filename))
	assert.True(t, os.IsNotExist(err))
}

func TestDiskStore_URL(t *testing.T) {
	store := storage.NewDiskStore(config.UploadConfig{Dir: "uploads/gallery"})

	assert.Equal(t, "/uploads/gallery/images-1-abc.jpg", store.URL("images-1-abc.jpg"))
}
