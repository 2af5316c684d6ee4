// Package check provides system diagnostics (--check mode) and the output
// preflight that runs before any source directory is processed.
package check

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/backmassage/symcat/internal/config"
	"github.com/backmassage/symcat/internal/probe"
	"github.com/backmassage/symcat/internal/source"
)

// Sentinel errors returned by Preflight.
var (
	ErrOutputDirMissing  = errors.New("output directory does not exist")
	ErrOutputIsDir       = errors.New("output path is a directory")
	ErrOutputNotWritable = errors.New("output directory is not writable")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// Preflight verifies that a catalog can be created at outputPath: its
// directory must exist and accept new files, and the path itself must not
// be a directory. An existing regular file is fine; it will be replaced.
func Preflight(outputPath string) error {
	if strings.TrimSpace(outputPath) == "" {
		return fmt.Errorf("%w: empty path", ErrOutputDirMissing)
	}
	if fi, err := os.Stat(outputPath); err == nil && fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrOutputIsDir, outputPath)
	}

	dir := filepath.Dir(outputPath)
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrOutputDirMissing, dir)
	}

	// The rename into place needs create permission on the directory, not
	// write permission on an existing file, so probe with a fresh file.
	f, err := os.CreateTemp(dir, ".symcat-preflight-*")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputNotWritable, dir, err)
	}
	name := f.Name()
	f.Close()
	if err := os.Remove(name); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputNotWritable, dir, err)
	}
	return nil
}

// RunCheck runs the interactive --check flow: source expansion, output
// preflight, registered image decoders and accepted extensions. It is
// informational only and reports whether everything needed for a run
// looked usable.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	ok := checkSources(cfg, log)
	ok = checkOutput(cfg, log) && ok

	log.Info("Image decoders: %s", strings.Join(probe.Formats(), ", "))
	log.Info("Extensions: %s", strings.Join(cfg.Extensions, ", "))
	return ok
}

// checkSources logs each pattern's expansion and how many images the
// accepted directories hold.
func checkSources(cfg *config.Config, log Logger) bool {
	if len(cfg.SourceDirs) == 0 {
		log.Warn("No source directories configured")
		return false
	}
	expansions := source.ExpandDirs(cfg.SourceDirs)
	for _, e := range expansions {
		switch e.Kind {
		case source.Expanded, source.Literal:
			entries, err := source.List(e.Path, cfg.Extensions)
			if err != nil {
				log.Error("%s: %v", e.Path, err)
				continue
			}
			log.Success("%s (%s, %d images)", e.Path, e.Kind, len(entries))
		case source.SkippedFile:
			log.Warn("%s: is a file", e.Path)
		case source.NotFound:
			if e.Err != nil {
				log.Error("%s: %v", e.Pattern, e.Err)
			} else {
				log.Error("%s: not found", e.Pattern)
			}
		}
	}
	if len(source.Dirs(expansions)) == 0 {
		log.Error("No valid source directories")
		return false
	}
	return true
}

func checkOutput(cfg *config.Config, log Logger) bool {
	if cfg.OutputFile == "" {
		log.Warn("No output file configured")
		return false
	}
	if err := Preflight(cfg.OutputFile); err != nil {
		log.Error("Output %s", err)
		return false
	}
	log.Success("Output %s is writable", cfg.OutputFile)
	return true
}
