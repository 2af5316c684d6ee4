// Package report writes a machine-readable YAML summary of a run.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/backmassage/symcat/internal/atomicfile"
	"github.com/backmassage/symcat/internal/pipeline"
)

// Report is the document root.
type Report struct {
	RunID       string      `yaml:"run_id,omitempty"`
	Generated   time.Time   `yaml:"generated"`
	Output      string      `yaml:"output"`
	DryRun      bool        `yaml:"dry_run"`
	Written     bool        `yaml:"written"`
	Bytes       int64       `yaml:"bytes,omitempty"`
	Directories []Directory `yaml:"directories"`
	Totals      Totals      `yaml:"totals"`
}

// Directory summarizes one source directory.
type Directory struct {
	Index          int    `yaml:"index"`
	Path           string `yaml:"path"`
	Symbols        int    `yaml:"symbols"`
	Skipped        int    `yaml:"skipped"`
	Groups         int    `yaml:"groups"`
	VaricolorPairs int    `yaml:"varicolor_pairs"`
	Error          string `yaml:"error,omitempty"`
	Skips          []Skip `yaml:"skips,omitempty"`
}

// Skip is one rejected file.
type Skip struct {
	File   string `yaml:"file"`
	Reason string `yaml:"reason"`
}

// Totals mirrors [pipeline.Totals].
type Totals struct {
	Directories    int `yaml:"directories"`
	Symbols        int `yaml:"symbols"`
	Skipped        int `yaml:"skipped"`
	Groups         int `yaml:"groups"`
	VaricolorPairs int `yaml:"varicolor_pairs"`
}

// Build converts run stats into a report stamped with now.
func Build(stats pipeline.RunStats, now time.Time) Report {
	r := Report{
		Generated: now.UTC().Truncate(time.Second),
		Output:    stats.OutputPath,
		DryRun:    stats.DryRun,
		Written:   stats.Written,
		Bytes:     stats.CatalogBytes,
	}
	for _, d := range stats.Dirs {
		dir := Directory{
			Index:          d.Index,
			Path:           d.Path,
			Symbols:        d.Created,
			Skipped:        d.Skipped,
			Groups:         d.Groups,
			VaricolorPairs: d.Pairs,
		}
		if d.ListErr != nil {
			dir.Error = d.ListErr.Error()
		}
		for _, s := range d.Skips {
			dir.Skips = append(dir.Skips, Skip{File: s.Filename, Reason: string(s.Reason)})
		}
		r.Directories = append(r.Directories, dir)
	}
	t := stats.Totals()
	r.Totals = Totals{
		Directories:    t.Dirs,
		Symbols:        t.Created,
		Skipped:        t.Skipped,
		Groups:         t.Groups,
		VaricolorPairs: t.Pairs,
	}
	return r
}

// Marshal renders r as YAML with two-space indentation.
func Marshal(r Report) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile replaces path with the YAML report atomically.
func WriteFile(path string, r Report) error {
	return WriteFileFs(afero.NewOsFs(), path, r)
}

// WriteFileFs is WriteFile on an arbitrary filesystem.
func WriteFileFs(fs afero.Fs, path string, r Report) error {
	data, err := Marshal(r)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := atomicfile.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
