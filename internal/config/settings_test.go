package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultThresholdGB, s.ThresholdGB)
	assert.Equal(t, DefaultAutoClean, s.AutoClean)
	assert.Empty(t, s.Protected)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	in := &Settings{
		ThresholdGB: 42.5,
		AutoClean:   false,
		Protected:   []string{"*.lock", "important.db"},
	}
	require.NoError(t, in.Save(path))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in.ThresholdGB, out.ThresholdGB)
	assert.Equal(t, in.AutoClean, out.AutoClean)
	assert.Equal(t, in.Protected, out.Protected)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	s := &Settings{ThresholdGB: 5, AutoClean: true}
	require.NoError(t, s.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "threshold_gb")
	assert.Contains(t, string(data), "auto_clean")
}
