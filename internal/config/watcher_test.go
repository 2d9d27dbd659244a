package config

import (
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	initial := &Settings{ThresholdGB: 10, AutoClean: true}
	require.NoError(t, initial.Save(path))

	var got atomic.Pointer[Settings]
	w, err := NewWatcher(path, func(s *Settings) {
		got.Store(s)
	})
	require.NoError(t, err)
	defer w.Stop()

	updated := &Settings{ThresholdGB: 25, AutoClean: false}
	require.NoError(t, updated.Save(path))

	require.Eventually(t, func() bool {
		return got.Load() != nil
	}, 5*time.Second, 50*time.Millisecond, "watcher never fired")

	assert.Equal(t, 25.0, got.Load().ThresholdGB)
	assert.False(t, got.Load().AutoClean)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, (&Settings{ThresholdGB: 10}).Save(path))

	var fired atomic.Bool
	w, err := NewWatcher(path, func(*Settings) {
		fired.Store(true)
	})
	require.NoError(t, err)
	defer w.Stop()

	other := &Settings{ThresholdGB: 99}
	require.NoError(t, other.Save(filepath.Join(dir, "unrelated.json")))

	time.Sleep(watchDebounce + 200*time.Millisecond)
	assert.False(t, fired.Load())
}
