package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestAllocateDefaultRoot(t *testing.T) {
	chdir(t, t.TempDir())

	a := DirAllocator{}
	ws, err := a.Allocate(Options{Subdirs: []string{"ignored"}, Prefix: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, DefaultRoot, ws.Root())
	assert.Empty(t, ws.Subdirs())

	info, err := os.Stat(DefaultRoot)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// A second call must not fail or duplicate.
	_, err = a.Allocate(Options{})
	require.NoError(t, err)

	entries, err := os.ReadDir(".")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAllocateTimestamped(t *testing.T) {
	base := filepath.Join(t.TempDir(), "runs")
	a := DirAllocator{}

	first, err := a.Allocate(Options{BaseDir: base})
	require.NoError(t, err)
	second, err := a.Allocate(Options{BaseDir: base})
	require.NoError(t, err)

	tag := CurrentDateTag()
	assert.Equal(t, filepath.Join(base, tag+"_001"), first.Root())
	assert.Equal(t, filepath.Join(base, tag+"_002"), second.Root())
}

func TestAllocateNumbered(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(base, "models1"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(base, "models2"), 0o755))

	ws, err := DirAllocator{}.Allocate(Options{BaseDir: base, Prefix: "models"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "models3"), ws.Root())
}

func TestAllocateSubdirs(t *testing.T) {
	base := t.TempDir()
	ws, err := DirAllocator{}.Allocate(Options{BaseDir: base, Subdirs: []string{"a", "b"}})
	require.NoError(t, err)

	for _, name := range []string{"a", "b"} {
		p, err := ws.Subdir(name)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(ws.Root(), name), p)
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
	assert.Equal(t, []string{"a", "b"}, ws.Subdirs())
}

func TestSubdirUnknown(t *testing.T) {
	ws, err := DirAllocator{}.Allocate(Options{BaseDir: t.TempDir(), Subdirs: []string{"a", "b"}})
	require.NoError(t, err)

	_, err = ws.Subdir("c")
	var serr *SubdirError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "c", serr.Name)
	assert.Equal(t, []string{"a", "b"}, serr.Available)
	assert.Contains(t, err.Error(), `"c"`)
	assert.Contains(t, err.Error(), "a")
}

func TestAllocateBaseDirCreated(t *testing.T) {
	base := filepath.Join(t.TempDir(), "deep", "nested")
	_, err := DirAllocator{}.Allocate(Options{BaseDir: base})
	require.NoError(t, err)

	info, err := os.Stat(base)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
