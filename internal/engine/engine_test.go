package engine

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
}

func TestMeasureSumsAllRoots(t *testing.T) {
	r1 := t.TempDir()
	r2 := t.TempDir()
	writeFile(t, filepath.Join(r1, "a.bin"), 100)
	writeFile(t, filepath.Join(r2, "sub", "b.bin"), 200)

	eng := New([]string{r1, r2}, nil)
	report := eng.Measure()

	assert.Equal(t, int64(300), report.Bytes)
}

func TestMeasureMissingRootIsZero(t *testing.T) {
	eng := New([]string{filepath.Join(t.TempDir(), "gone")}, nil)
	assert.Equal(t, int64(0), eng.Measure().Bytes)
}

func TestSizeReportBinaryGB(t *testing.T) {
	report := SizeReport{Bytes: 1 << 30}
	assert.InDelta(t, 1.0, report.GB(), 1e-9)

	report = SizeReport{Bytes: 3 << 29} // 1.5 GiB
	assert.InDelta(t, 1.5, report.GB(), 1e-9)
}

func TestCleanStampsAndRemeasures(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.bin"), 64)

	eng := New([]string{root}, nil)

	_, ok := eng.LastCleanAge()
	assert.False(t, ok, "no clean has happened yet")

	outcome, report := eng.Clean()
	assert.Equal(t, int64(1), outcome.FilesRemoved)
	assert.Equal(t, int64(64), outcome.BytesReclaimed)
	assert.Equal(t, int64(0), report.Bytes, "re-measure after clean")

	age, ok := eng.LastCleanAge()
	require.True(t, ok)
	assert.Less(t, age, time.Minute)
}

func TestSecondCleanIsEmpty(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sub", "a.bin"), 32)

	eng := New([]string{root}, nil)

	first, _ := eng.Clean()
	assert.False(t, first.Empty())

	second, _ := eng.Clean()
	assert.True(t, second.Empty())
}

func TestEmptyCleanStillStamps(t *testing.T) {
	// A pass that reclaims nothing must still reset the cooldown,
	// otherwise locked files cause a tight retry loop.
	eng := New([]string{t.TempDir()}, nil)

	outcome, _ := eng.Clean()
	assert.True(t, outcome.Empty())

	_, ok := eng.LastCleanAge()
	assert.True(t, ok)
}

func TestRootsOrderPreserved(t *testing.T) {
	roots := []string{t.TempDir(), t.TempDir(), t.TempDir()}
	eng := New(roots, nil)
	assert.Equal(t, roots, eng.Roots())
}
