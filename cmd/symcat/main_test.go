package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// isolate keeps config discovery away from the developer's files.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 40, 40))))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestRun_Success(t *testing.T) {
	root := isolate(t)
	src := filepath.Join(root, "src")
	require.NoError(t, os.Mkdir(src, 0o755))
	writePNG(t, filepath.Join(src, "Orc 01.png"))
	writePNG(t, filepath.Join(src, "Orc 02.png"))
	writePNG(t, filepath.Join(src, "Dinnér.png"))

	out := filepath.Join(root, "symbols.cat")
	rep := filepath.Join(root, "run.yaml")
	var stdout, stderr bytes.Buffer
	code := run([]string{"-s", src, "-o", out, "--report", rep, "--no-color"}, &stdout, &stderr)

	assert.Equal(t, 0, code, "skipped files must not fail the run; stderr:\n%s", stderr.String())
	assert.FileExists(t, out)
	assert.Contains(t, stdout.String(), "Symbols created: 2")
	assert.Contains(t, stderr.String(), "non-ascii-name")

	data, err := os.ReadFile(rep)
	require.NoError(t, err)
	var doc struct {
		RunID  string `yaml:"run_id"`
		Totals struct {
			Symbols int `yaml:"symbols"`
			Skipped int `yaml:"skipped"`
			Groups  int `yaml:"groups"`
		} `yaml:"totals"`
	}
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Len(t, doc.RunID, 36)
	assert.Equal(t, 2, doc.Totals.Symbols)
	assert.Equal(t, 1, doc.Totals.Skipped)
	assert.Equal(t, 1, doc.Totals.Groups)
}

func TestRun_PositionalSources(t *testing.T) {
	root := isolate(t)
	src := filepath.Join(root, "src")
	require.NoError(t, os.Mkdir(src, 0o755))
	writePNG(t, filepath.Join(src, "Goblin.png"))

	out := filepath.Join(root, "symbols.cat")
	var stdout, stderr bytes.Buffer
	code := run([]string{"-o", out, "--no-color", src}, &stdout, &stderr)
	assert.Equal(t, 0, code, stderr.String())
	assert.FileExists(t, out)
}

func TestRun_FatalErrors(t *testing.T) {
	root := isolate(t)
	src := filepath.Join(root, "src")
	require.NoError(t, os.Mkdir(src, 0o755))

	cases := []struct {
		name string
		args []string
	}{
		{"no sources", []string{"-o", filepath.Join(root, "a.cat")}},
		{"missing source", []string{"-s", filepath.Join(root, "missing"), "-o", filepath.Join(root, "b.cat")}},
		{"unwritable output", []string{"-s", src, "-o", filepath.Join(root, "nope", "c.cat")}},
		{"bad extension", []string{"-s", src, "-o", filepath.Join(root, "d.cat"), "--ext", "p/ng"}},
		{"unknown flag", []string{"--bogus"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(append(tc.args, "--no-color"), &stdout, &stderr)
			assert.Equal(t, 1, code)
		})
	}
	assert.NoFileExists(t, filepath.Join(root, "nope", "c.cat"))
}

func TestRun_Version(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer
	code := run([]string{"--version"}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), version)
}

func TestRun_Check(t *testing.T) {
	root := isolate(t)
	src := filepath.Join(root, "src")
	require.NoError(t, os.Mkdir(src, 0o755))

	var stdout, stderr bytes.Buffer
	code := run([]string{"--check", "-s", src, "-o", filepath.Join(root, "x.cat"), "--no-color"}, &stdout, &stderr)
	assert.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "System Check")
	assert.NoFileExists(t, filepath.Join(root, "x.cat"))
}
