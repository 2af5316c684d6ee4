package atomicfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile_OsFs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	require.NoError(t, WriteFile(afero.NewOsFs(), path, []byte("first\n"), 0o644))
	require.NoError(t, WriteFile(afero.NewOsFs(), path, []byte("second\n"), 0o644))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestWriteFile_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.txt")

	err := WriteFile(afero.NewOsFs(), path, []byte("x"), 0o644)
	require.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestWriteFile_ReadOnlyLeavesNothing(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("/out", 0o755))
	fs := afero.NewReadOnlyFs(base)

	err := WriteFile(fs, "/out/catalog.txt", []byte("x"), 0o644)
	require.Error(t, err)

	exists, err := afero.Exists(base, "/out/catalog.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestWriteFile_RenameFailureKeepsOldFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/out/catalog.txt", []byte("old"), 0o644))

	err := WriteFile(renameFailFs{fs}, "/out/catalog.txt", []byte("new"), 0o644)
	require.Error(t, err)

	got, err := afero.ReadFile(fs, "/out/catalog.txt")
	require.NoError(t, err)
	assert.Equal(t, "old", string(got))

	entries, err := afero.ReadDir(fs, "/out")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

type renameFailFs struct{ afero.Fs }

func (renameFailFs) Rename(_, _ string) error { return os.ErrPermission }
