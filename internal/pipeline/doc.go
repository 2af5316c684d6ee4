// Package pipeline drives a catalog build: expand sources, preflight the
// output, then for each directory list images, register and probe them,
// build groups and varicolor pairs, and finally write the catalog once.
//
// Types:
//   - RunStats (per-directory DirStats, output path, bytes written; Totals)
//   - DirStats (symbols created, files skipped with reasons, group and pair
//     counts)
//
// Functions:
//   - Run(cfg, log) → RunStats, error
//
// Per-file problems are logged and counted; only an unusable source list or
// an unwritable output stops the run.
package pipeline
