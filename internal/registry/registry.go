// Package registry validates source files and turns the accepted ones into
// symbols, one scope per source directory.
//
// A symbol's id is its file stem, verbatim. Files are rejected when the stem
// or absolute path is not 7-bit ASCII, when the stem is empty, or when the
// stem is already owned by another file in the same directory. Rejections
// are recorded on the directory and never stop the run.
package registry

import (
	"fmt"

	"github.com/backmassage/symcat/internal/naming"
)

// Field widths of the consuming application, in bytes, excluding the
// terminating NUL.
const (
	MaxIDBytes   = 31
	MaxPathBytes = 255
)

// Symbol is one accepted image.
type Symbol struct {
	ID       string
	Filename string
	Path     string
	Name     naming.ClassifiedName

	// Pixel dimensions; zero when unknown.
	Width  int
	Height int
}

// HasSize reports whether the symbol carries known dimensions.
func (s Symbol) HasSize() bool { return s.Width > 0 && s.Height > 0 }

// WidthWarnings returns ErrIDTooLong and/or ErrPathTooLong (wrapped with the
// offending length) when the symbol would not fit the application's fields.
func WidthWarnings(s Symbol) []error {
	var warns []error
	if n := len(s.ID); n > MaxIDBytes {
		warns = append(warns, fmt.Errorf("%w: %d > %d bytes", ErrIDTooLong, n, MaxIDBytes))
	}
	if n := len(s.Path); n > MaxPathBytes {
		warns = append(warns, fmt.Errorf("%w: %d > %d bytes", ErrPathTooLong, n, MaxPathBytes))
	}
	return warns
}

// Skip records one rejected file.
type Skip struct {
	Filename string
	Reason   SkipReason
}

// Registry accumulates directory scopes in the order they were opened.
// It is not safe for concurrent use.
type Registry struct {
	dirs []*Directory
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// OpenDirectory appends a new scope for path and returns it. Its index is
// its 1-based position among opened directories.
func (r *Registry) OpenDirectory(path string) *Directory {
	d := &Directory{
		Index:  len(r.dirs) + 1,
		Path:   path,
		owners: make(map[string]string),
		byID:   make(map[string]int),
	}
	r.dirs = append(r.dirs, d)
	return d
}

// Directories returns every opened scope in order.
func (r *Registry) Directories() []*Directory {
	return r.dirs
}

// Directory is the registration scope of one source directory. Symbol ids
// are unique within it.
type Directory struct {
	Index int
	Path  string

	symbols []Symbol
	skips   []Skip
	owners  map[string]string // symbol id → filename that claimed it
	byID    map[string]int    // symbol id → index into symbols
}

// Register validates f and, when accepted, records a new Symbol. Rejected
// files return a *SkipError and are added to the skip list.
func (d *Directory) Register(f SourceFile) (Symbol, error) {
	if err := d.validate(f); err != nil {
		return Symbol{}, d.reject(err)
	}

	sym := Symbol{
		ID:       f.Stem,
		Filename: f.Filename,
		Path:     f.AbsPath,
		Name:     naming.Classify(f.Stem),
	}
	d.owners[sym.ID] = f.Filename
	d.byID[sym.ID] = len(d.symbols)
	d.symbols = append(d.symbols, sym)
	return sym, nil
}

// Reject records filename as skipped for a failure found before
// registration, such as a path that cannot be resolved. It returns the
// recorded *SkipError.
func (d *Directory) Reject(filename string, reason SkipReason, err error) error {
	return d.reject(&SkipError{Filename: filename, Reason: reason, Err: err})
}

func (d *Directory) reject(e *SkipError) error {
	d.skips = append(d.skips, Skip{Filename: e.Filename, Reason: e.Reason})
	return e
}

func (d *Directory) validate(f SourceFile) *SkipError {
	switch {
	case f.Stem == "":
		return &SkipError{Filename: f.Filename, Reason: ReasonEmptyName, Err: ErrEmptyName}
	case !isASCII(f.Stem):
		return &SkipError{Filename: f.Filename, Reason: ReasonNonASCIIName, Err: ErrNonASCII}
	case !isASCII(f.AbsPath):
		return &SkipError{Filename: f.Filename, Reason: ReasonNonASCIIPath, Err: ErrNonASCII}
	}
	if owner, taken := d.owners[f.Stem]; taken {
		return &SkipError{
			Filename: f.Filename,
			Reason:   ReasonDuplicateID,
			Err:      fmt.Errorf("%w: %q (owned by %s)", ErrDuplicateID, f.Stem, owner),
		}
	}
	return nil
}

// SetSize records pixel dimensions for an accepted symbol. It reports false
// when id is not registered here.
func (d *Directory) SetSize(id string, width, height int) bool {
	i, ok := d.byID[id]
	if !ok {
		return false
	}
	d.symbols[i].Width = width
	d.symbols[i].Height = height
	return true
}

// Symbols returns the accepted symbols in registration order.
func (d *Directory) Symbols() []Symbol {
	return d.symbols
}

// Names returns the classified names of accepted symbols in registration
// order.
func (d *Directory) Names() []naming.ClassifiedName {
	names := make([]naming.ClassifiedName, len(d.symbols))
	for i, s := range d.symbols {
		names[i] = s.Name
	}
	return names
}

// Skips returns the rejected files in the order they were seen.
func (d *Directory) Skips() []Skip {
	return d.skips
}

// Created is the number of accepted symbols.
func (d *Directory) Created() int { return len(d.symbols) }

// Skipped is the number of rejected files.
func (d *Directory) Skipped() int { return len(d.skips) }

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}
