package fswatch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDelay = 50 * time.Millisecond

func startWatcher(t *testing.T, path string) *atomic.Int32 {
	t.Helper()

	w, err := NewWatcher(path, testDelay, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	var calls atomic.Int32

	go func() {
		defer close(done)
		_ = w.Run(ctx, func() { calls.Add(1) })
	}()

	t.Cleanup(func() {
		cancel()
		<-done
		_ = w.Close()
	})
	return &calls
}

func TestWatcher_ReportsWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Recipes.txt")
	require.NoError(t, os.WriteFile(path, []byte("[Recept]\nTe\n"), 0600))

	calls := startWatcher(t, path)

	require.NoError(t, os.WriteFile(path, []byte("[Recept]\nKaffe\n"), 0600))
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatcher_ReportsRenameOver(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Recipes.txt")
	require.NoError(t, os.WriteFile(path, []byte("[Recept]\nTe\n"), 0600))

	calls := startWatcher(t, path)

	tmp := filepath.Join(dir, ".Recipes.txt.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("[Recept]\nKaffe\n"), 0600))
	require.NoError(t, os.Rename(tmp, path))

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatcher_GroupsBurst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Recipes.txt")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	calls := startWatcher(t, path)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0600)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err := f.WriteString("[Recept]\nTe\n")
		require.NoError(t, err)
	}
	require.NoError(t, f.Close())

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(4 * testDelay)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Recipes.txt")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	calls := startWatcher(t, path)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0600))
	time.Sleep(6 * testDelay)
	assert.Zero(t, calls.Load())
}

func TestWatcher_RunStopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Recipes.txt")
	w, err := NewWatcher(path, testDelay, nil)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, w.Run(ctx, func() {}))
}

func TestNewWatcher_MissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "Recipes.txt"), testDelay, nil)
	assert.Error(t, err)
}
