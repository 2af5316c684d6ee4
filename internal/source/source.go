// Package source turns the user's directory arguments into an ordered list
// of source directories and enumerates the image files inside each one.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Kind classifies how a pattern contributed to the directory list.
type Kind int

const (
	Expanded    Kind = iota // glob match that is a directory
	Literal                 // no glob match, but the pattern itself is a directory
	SkippedFile             // glob match that is not a directory
	NotFound                // nothing matched
)

func (k Kind) String() string {
	switch k {
	case Expanded:
		return "expanded"
	case Literal:
		return "literal"
	case SkippedFile:
		return "skipped-file"
	default:
		return "not-found"
	}
}

// Expansion is one result of expanding a pattern.
type Expansion struct {
	Pattern string
	Path    string // cleaned; absolute for Expanded and Literal
	Kind    Kind
	Err     error // set for malformed patterns
}

// Accepted reports whether the expansion names a usable directory.
func (e Expansion) Accepted() bool {
	return e.Kind == Expanded || e.Kind == Literal
}

// Entry is one candidate image file.
type Entry struct {
	Name string // base name
	Path string // absolute path
}

// Source reads directories through an afero filesystem.
type Source struct {
	fs afero.Fs
}

// New returns a Source over fs.
func New(fs afero.Fs) *Source {
	return &Source{fs: fs}
}

// OS is the Source used by the command line.
var OS = New(afero.NewOsFs())

// ExpandDirs expands patterns on the OS filesystem.
func ExpandDirs(patterns []string) []Expansion { return OS.ExpandDirs(patterns) }

// List lists dir on the OS filesystem.
func List(dir string, exts []string) ([]Entry, error) { return OS.List(dir, exts) }

// ExpandDirs globs each pattern in order. Matches keep the glob's sorted
// order. A pattern with no matches is tried as a literal directory.
func (s *Source) ExpandDirs(patterns []string) []Expansion {
	var out []Expansion
	for _, p := range patterns {
		clean := filepath.Clean(p)
		matches, err := afero.Glob(s.fs, clean)
		if err != nil {
			out = append(out, Expansion{Pattern: p, Path: clean, Kind: NotFound, Err: err})
			continue
		}
		if len(matches) == 0 {
			out = append(out, s.literal(p, clean))
			continue
		}
		for _, m := range matches {
			kind := SkippedFile
			if s.isDir(m) {
				kind = Expanded
			}
			out = append(out, Expansion{Pattern: p, Path: absPath(m), Kind: kind})
		}
	}
	return out
}

func (s *Source) literal(pattern, clean string) Expansion {
	if s.isDir(clean) {
		return Expansion{Pattern: pattern, Path: absPath(clean), Kind: Literal}
	}
	return Expansion{Pattern: pattern, Path: clean, Kind: NotFound}
}

func (s *Source) isDir(path string) bool {
	ok, err := afero.IsDir(s.fs, path)
	return err == nil && ok
}

// Dirs returns the paths of accepted expansions in order.
func Dirs(expansions []Expansion) []string {
	var dirs []string
	for _, e := range expansions {
		if e.Accepted() {
			dirs = append(dirs, e.Path)
		}
	}
	return dirs
}

// List returns the regular files directly inside dir whose lower-cased
// extension is in exts, sorted by name. Symlinks to regular files count.
func (s *Source) List(dir string, exts []string) ([]Entry, error) {
	want := make(map[string]bool, len(exts))
	for _, e := range exts {
		want[strings.ToLower(e)] = true
	}

	infos, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	base := absPath(dir)
	var entries []Entry
	for _, fi := range infos {
		if !want[strings.ToLower(filepath.Ext(fi.Name()))] {
			continue
		}
		path := filepath.Join(base, fi.Name())
		if !s.isRegular(fi, path) {
			continue
		}
		entries = append(entries, Entry{Name: fi.Name(), Path: path})
	}
	return entries, nil
}

func (s *Source) isRegular(fi os.FileInfo, path string) bool {
	if fi.Mode()&os.ModeSymlink != 0 {
		target, err := s.fs.Stat(path)
		return err == nil && target.Mode().IsRegular()
	}
	return fi.Mode().IsRegular()
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
