package registry

import (
	"fmt"
	"path/filepath"

	"github.com/backmassage/symcat/internal/naming"
)

// SourceFile is one candidate image as enumerated from a source directory.
type SourceFile struct {
	DirIndex int
	Filename string
	Stem     string
	AbsPath  string
}

// NewSourceFile builds a SourceFile for filename inside dir. The path is
// made absolute and cleaned.
func NewSourceFile(dirIndex int, dir, filename string) (SourceFile, error) {
	abs, err := filepath.Abs(filepath.Join(dir, filename))
	if err != nil {
		return SourceFile{}, fmt.Errorf("resolve %s: %w", filename, err)
	}
	return SourceFile{
		DirIndex: dirIndex,
		Filename: filename,
		Stem:     naming.StripExt(filename),
		AbsPath:  abs,
	}, nil
}
