package check

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/symcat/internal/config"
)

type recordLogger struct {
	lines []string
}

func (r *recordLogger) add(level, format string, args ...interface{}) {
	r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
}

func (r *recordLogger) Info(f string, a ...interface{})    { r.add("INFO", f, a...) }
func (r *recordLogger) Success(f string, a ...interface{}) { r.add("OK", f, a...) }
func (r *recordLogger) Warn(f string, a ...interface{})    { r.add("WARN", f, a...) }
func (r *recordLogger) Error(f string, a ...interface{})   { r.add("ERROR", f, a...) }

func (r *recordLogger) has(prefix, substr string) bool {
	for _, l := range r.lines {
		if strings.HasPrefix(l, prefix+" ") && strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

func TestPreflight(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "old.cat")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0o644))

	cases := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"new file", filepath.Join(dir, "symbols.cat"), nil},
		{"existing file", existing, nil},
		{"missing dir", filepath.Join(dir, "nope", "symbols.cat"), ErrOutputDirMissing},
		{"path is dir", dir, ErrOutputIsDir},
		{"parent is file", filepath.Join(existing, "symbols.cat"), ErrOutputDirMissing},
		{"empty", "", ErrOutputDirMissing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Preflight(tc.path)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "preflight left a probe file behind")
}

func TestPreflight_ReadOnlyDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { os.Chmod(dir, 0o755) })

	err := Preflight(filepath.Join(dir, "symbols.cat"))
	assert.ErrorIs(t, err, ErrOutputNotWritable)
	assert.NoFileExists(t, filepath.Join(dir, "symbols.cat"))
}

func TestRunCheck(t *testing.T) {
	root := t.TempDir()
	maps := filepath.Join(root, "maps")
	require.NoError(t, os.Mkdir(maps, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(maps, "Orc 01.png"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(maps, "notes.txt"), nil, 0o644))

	cfg := config.DefaultConfig()
	cfg.SourceDirs = []string{maps, filepath.Join(root, "missing")}
	cfg.OutputFile = filepath.Join(root, "symbols.cat")

	log := &recordLogger{}
	assert.True(t, RunCheck(&cfg, log))
	assert.True(t, log.has("OK", "1 images"), log.lines)
	assert.True(t, log.has("ERROR", "missing: not found"), log.lines)
	assert.True(t, log.has("OK", "is writable"), log.lines)
	assert.True(t, log.has("INFO", "png"), log.lines)
}

func TestRunCheck_NothingUsable(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.SourceDirs = []string{filepath.Join(t.TempDir(), "missing")}

	log := &recordLogger{}
	assert.False(t, RunCheck(&cfg, log))
	assert.True(t, log.has("ERROR", "No valid source directories"), log.lines)
	assert.True(t, log.has("WARN", "No output file"), log.lines)
}
