package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
}

func TestDirSizeMissingPath(t *testing.T) {
	assert.Equal(t, int64(0), DirSize(filepath.Join(t.TempDir(), "does-not-exist")))
}

func TestDirSizeEmptyDir(t *testing.T) {
	assert.Equal(t, int64(0), DirSize(t.TempDir()))
}

func TestDirSizeRecursive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.bin"), 100)
	writeFile(t, filepath.Join(root, "sub", "b.bin"), 200)
	writeFile(t, filepath.Join(root, "sub", "deep", "c.bin"), 300)

	assert.Equal(t, int64(600), DirSize(root))
}

func TestDirSizeAdditivity(t *testing.T) {
	// The tree total equals direct files plus each child subtree.
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "top.bin"), 50)
	writeFile(t, filepath.Join(root, "one", "a.bin"), 10)
	writeFile(t, filepath.Join(root, "one", "nested", "b.bin"), 20)
	writeFile(t, filepath.Join(root, "two", "c.bin"), 40)

	direct := int64(50)
	one := DirSize(filepath.Join(root, "one"))
	two := DirSize(filepath.Join(root, "two"))

	assert.Equal(t, int64(30), one)
	assert.Equal(t, int64(40), two)
	assert.Equal(t, direct+one+two, DirSize(root))
}

func TestTotalSizeSumsRoots(t *testing.T) {
	r1 := t.TempDir()
	r2 := t.TempDir()
	writeFile(t, filepath.Join(r1, "a.bin"), 7)
	writeFile(t, filepath.Join(r2, "b.bin"), 11)

	missing := filepath.Join(t.TempDir(), "gone")
	assert.Equal(t, int64(18), TotalSize([]string{r1, r2, missing}))
}

func TestRootSizesOrder(t *testing.T) {
	r1 := t.TempDir()
	r2 := t.TempDir()
	writeFile(t, filepath.Join(r1, "a.bin"), 3)
	writeFile(t, filepath.Join(r2, "b.bin"), 5)

	sizes := RootSizes([]string{r1, r2})
	assert.Equal(t, []int64{3, 5}, sizes)
}
