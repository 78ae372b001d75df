package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0777))
	require.NoError(t, os.WriteFile(path, nil, 0666))
}

func TestGatherAllMidiPaths(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.mid"))
	touch(t, filepath.Join(dir, "b.txt"))
	touch(t, filepath.Join(dir, "sub", "c.MIDI"))
	touch(t, filepath.Join(dir, "sub", "d.midi"))

	all, err := GatherAllMidiPaths(dir, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.mid"),
		filepath.Join(dir, "sub", "c.MIDI"),
		filepath.Join(dir, "sub", "d.midi"),
	}, all)

	limited, err := GatherAllMidiPaths(dir, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	single, err := GatherAllMidiPaths(filepath.Join(dir, "a.mid"), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.mid")}, single)

	_, err = GatherAllMidiPaths(filepath.Join(dir, "missing"), 0)
	assert.Error(t, err)
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"minor": 1, "augmented": 2, "major": 3}
	assert.Equal(t, []string{"augmented", "major", "minor"}, SortedKeys(m))
	assert.Len(t, GetKeys(m), 3)
}

func TestMinAndSum(t *testing.T) {
	assert.Equal(t, 3, Min(3, 7))
	assert.Equal(t, uint8(2), Min(uint8(9), uint8(2)))
	assert.Equal(t, uint64(6), Sum([]int{1, 2, 3}))
}
