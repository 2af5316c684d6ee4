package pipeline

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/backmassage/symcat/internal/catalog"
	"github.com/backmassage/symcat/internal/check"
	"github.com/backmassage/symcat/internal/config"
	"github.com/backmassage/symcat/internal/display"
	"github.com/backmassage/symcat/internal/grouping"
	"github.com/backmassage/symcat/internal/logging"
	"github.com/backmassage/symcat/internal/probe"
	"github.com/backmassage/symcat/internal/registry"
	"github.com/backmassage/symcat/internal/source"
)

// ErrNoSourceDirs is returned when no pattern yields a usable directory.
var ErrNoSourceDirs = errors.New("no valid source directories")

// Run is the top-level batch entry point. It expands the configured sources,
// processes each directory sequentially, and writes the catalog unless this
// is a dry run. The returned stats are valid even when err is non-nil.
func Run(cfg *config.Config, log *logging.Logger) (RunStats, error) {
	stats := RunStats{OutputPath: cfg.OutputFile, DryRun: cfg.DryRun}

	dirs := expandSources(cfg, log)
	if len(dirs) == 0 {
		return stats, ErrNoSourceDirs
	}

	if !cfg.DryRun {
		if err := check.Preflight(cfg.OutputFile); err != nil {
			return stats, fmt.Errorf("output %s: %w", cfg.OutputFile, err)
		}
	}
	log.Info("")

	reg := registry.New()
	var cat catalog.Catalog
	for _, dir := range dirs {
		section, ds := processDirectory(cfg, log, reg.OpenDirectory(dir))
		cat.Add(section)
		stats.Dirs = append(stats.Dirs, ds)
	}

	logSummary(log, &stats)

	if cfg.DryRun {
		log.Warn("Dry run: catalog not written (%d symbols)", cat.SymbolCount())
		return stats, nil
	}
	n, err := catalog.WriteFile(cfg.OutputFile, &cat)
	if err != nil {
		return stats, err
	}
	stats.Written = true
	stats.CatalogBytes = int64(n)
	log.Success("Catalog written: %s (%s)", cfg.OutputFile, display.FormatBytes(stats.CatalogBytes))
	return stats, nil
}

// expandSources logs every pattern's expansion and returns the accepted
// directories in order.
func expandSources(cfg *config.Config, log *logging.Logger) []string {
	expansions := source.ExpandDirs(cfg.SourceDirs)
	for _, e := range expansions {
		switch e.Kind {
		case source.Expanded:
			log.Info("+ Expanded '%s' -> %s", e.Pattern, e.Path)
		case source.Literal:
			log.Info("+ Added literal directory: %s", e.Path)
		case source.SkippedFile:
			log.Warn("- Skipped (is a file): %s", e.Path)
		case source.NotFound:
			if e.Err != nil {
				log.Error("- Invalid pattern '%s': %v", e.Pattern, e.Err)
			} else {
				log.Warn("- Source directory not found: %s", e.Pattern)
			}
		}
	}
	return source.Dirs(expansions)
}

// processDirectory lists, registers and groups one directory. A directory
// that cannot be listed still yields an empty section.
func processDirectory(cfg *config.Config, log *logging.Logger, d *registry.Directory) (catalog.Section, DirStats) {
	dlog := log.With(zap.Int("dir_index", d.Index), zap.String("dir", d.Path))
	dlog.Info("Source Directory %d: %s", d.Index, d.Path)

	section := catalog.Section{Index: d.Index, Dir: d.Path}
	ds := DirStats{Index: d.Index, Path: d.Path}

	entries, err := source.List(d.Path, cfg.Extensions)
	if err != nil {
		dlog.Error("Cannot read directory: %v", err)
		ds.ListErr = err
		return section, ds
	}

	for _, e := range entries {
		registerFile(cfg, dlog, d, e)
	}

	names := d.Names()
	section.Symbols = d.Symbols()
	section.Groups = grouping.BuildGroups(names)
	section.Pairs = grouping.BuildVaricolorPairs(names)

	ds.Created = d.Created()
	ds.Skipped = d.Skipped()
	ds.Groups = len(section.Groups)
	ds.Pairs = len(section.Pairs)
	ds.Skips = d.Skips()

	if ds.Created == 0 {
		dlog.Warn("No valid image files in %s", d.Path)
	}
	dlog.Success("Symbols created: %d", ds.Created)
	if ds.Skipped > 0 {
		dlog.Warn("Files skipped: %d", ds.Skipped)
	}
	dlog.Debug("%s, %s", display.Plural(ds.Groups, "group"), display.Plural(ds.Pairs, "varicolor pair"))
	for _, g := range section.Groups {
		dlog.Debug("  group %q: %d members", g.Key, len(g.Members))
	}
	return section, ds
}

// registerFile registers one entry and probes its dimensions. Rejections
// are logged and left on the directory's skip list.
func registerFile(cfg *config.Config, log *logging.Logger, d *registry.Directory, e source.Entry) {
	flog := log.With(zap.String("file", e.Name))

	sf, err := registry.NewSourceFile(d.Index, d.Path, e.Name)
	if err != nil {
		flog.Error("Skipped %v", d.Reject(e.Name, registry.ReasonUnresolvedPath, err))
		return
	}
	sym, err := d.Register(sf)
	if err != nil {
		flog.Error("Skipped %v", err)
		return
	}
	for _, w := range registry.WidthWarnings(sym) {
		flog.Warn("%s: %v", sym.ID, w)
	}

	if !cfg.ProbeDimensions {
		return
	}
	size, err := probe.Dimensions(sym.Path)
	if err != nil {
		flog.Warn("No dimensions for %s: %v", e.Name, err)
		return
	}
	d.SetSize(sym.ID, size.Width, size.Height)
	w, h := size.Units()
	flog.Debug("%s: %dx%d %s (%s)", sym.ID, size.Width, size.Height, size.Format, display.FormatUnits(w, h))
}

// logSummary prints the per-run totals.
func logSummary(log *logging.Logger, stats *RunStats) {
	t := stats.Totals()
	log.Info("==============================")
	log.Info("Done: %d directories, %d symbols, %d skipped", t.Dirs, t.Created, t.Skipped)
	log.Info("  %s, %s", display.Plural(t.Groups, "group"), display.Plural(t.Pairs, "varicolor pair"))
}
