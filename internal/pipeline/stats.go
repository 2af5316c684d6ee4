package pipeline

import "github.com/backmassage/symcat/internal/registry"

// DirStats records the outcome of one source directory.
type DirStats struct {
	Index   int
	Path    string
	Created int
	Skipped int
	Groups  int
	Pairs   int
	Skips   []registry.Skip
	ListErr error // set when the directory could not be read
}

// RunStats tracks per-directory counters and the catalog write across a run.
type RunStats struct {
	Dirs         []DirStats
	OutputPath   string
	DryRun       bool
	Written      bool
	CatalogBytes int64
}

// Totals sums the per-directory counters.
type Totals struct {
	Dirs    int
	Created int
	Skipped int
	Groups  int
	Pairs   int
}

// Totals returns the aggregate counters across all directories.
func (s *RunStats) Totals() Totals {
	t := Totals{Dirs: len(s.Dirs)}
	for _, d := range s.Dirs {
		t.Created += d.Created
		t.Skipped += d.Skipped
		t.Groups += d.Groups
		t.Pairs += d.Pairs
	}
	return t
}
