package infrastructure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/gifsync/internal/domain"
)

func newTestStore(t *testing.T) (*FileAssetStore, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "gifs")
	store, err := NewFileAssetStore(dir, "gif", 1000)
	require.NoError(t, err)
	return store, dir
}

func TestFileAssetStore_PutAndExists(t *testing.T) {
	store, dir := newTestStore(t)

	assert.False(t, store.Exists("chest_bench_press"))
	require.NoError(t, store.Put("chest_bench_press", make([]byte, 1000)))

	assert.True(t, store.Exists("chest_bench_press"))
	assert.Equal(t, filepath.Join(dir, "chest_bench_press.gif"), store.Path("chest_bench_press"))

	data, err := os.ReadFile(store.Path("chest_bench_press"))
	require.NoError(t, err)
	assert.Len(t, data, 1000)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestFileAssetStore_RejectsSmallPayload(t *testing.T) {
	store, dir := newTestStore(t)

	err := store.Put("back_pull_up", make([]byte, 900))
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
	assert.False(t, store.Exists("back_pull_up"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileAssetStore_NeverOverwrites(t *testing.T) {
	store, _ := newTestStore(t)

	first := make([]byte, 1200)
	first[0] = 'A'
	require.NoError(t, store.Put("yoga_lotus", first))

	second := make([]byte, 2000)
	second[0] = 'B'
	err := store.Put("yoga_lotus", second)
	assert.ErrorIs(t, err, domain.ErrAlreadyStored)

	data, err := os.ReadFile(store.Path("yoga_lotus"))
	require.NoError(t, err)
	assert.Equal(t, first, data)
}

func TestFileAssetStore_InvalidIDs(t *testing.T) {
	store, _ := newTestStore(t)

	for _, id := range []string{"", "..", "a/b", `a\b`} {
		assert.ErrorIs(t, store.Put(id, make([]byte, 2000)), domain.ErrInvalidID, id)
		assert.False(t, store.Exists(id), id)
	}
}

func TestFileAssetStore_IgnoresDirectories(t *testing.T) {
	store, dir := newTestStore(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "abs_crunch.gif"), 0o755))

	assert.False(t, store.Exists("abs_crunch"))
}

func TestFileAssetStore_CountStored(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Put("a", make([]byte, 1000)))
	require.NoError(t, store.Put("b", make([]byte, 1000)))

	assert.Equal(t, 2, store.CountStored([]string{"a", "b", "c"}))
}

func TestFileAssetStore_PublishKeepsConcurrentWrite(t *testing.T) {
	store, dir := newTestStore(t)

	// another process stored the asset after our existence check
	target := store.Path("legs_squat")
	require.NoError(t, os.WriteFile(target, []byte("first writer"), 0o644))

	tmp := filepath.Join(dir, ".legs_squat-1.tmp")
	require.NoError(t, os.WriteFile(tmp, make([]byte, 2000), 0o644))

	err := store.publish(tmp, target)
	assert.ErrorIs(t, err, domain.ErrAlreadyStored)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "first writer", string(data))
}
