// Command symcat is the CLI entrypoint for the symbol catalog builder.
//
// It loads configuration from flags, environment and an optional config
// file, then either runs system diagnostics (--check) or builds the catalog
// from the given source directories.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/backmassage/symcat/internal/check"
	"github.com/backmassage/symcat/internal/config"
	"github.com/backmassage/symcat/internal/display"
	"github.com/backmassage/symcat/internal/logging"
	"github.com/backmassage/symcat/internal/pipeline"
	"github.com/backmassage/symcat/internal/report"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	code := 0
	cmd, err := newRootCmd(&code)
	if err != nil {
		fmt.Fprintf(stderr, "symcat: %v\n", err)
		return 1
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	// Phase 1: Bootstrap. The logger doesn't exist yet, so flag, config and
	// validation errors go directly to stderr.
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "symcat: %v\n", err)
		return 1
	}
	return code
}

func newRootCmd(code *int) (*cobra.Command, error) {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "symcat [flags] [source-dir...]",
		Short: "Build a symbol catalog from directories of images",
		Long: `symcat scans source directories for image files and writes one text
catalog that references every image by absolute path. Numbered files
sharing a prefix become random-selection groups, and "vari" color variants
sharing a base label become varicolor pairs.

Source directories may be given with -s or as arguments, and may be glob
patterns.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cmd.Flags())
			if err != nil {
				return err
			}
			cfg.SourceDirs = append(cfg.SourceDirs, args...)
			if err := cfg.Validate(); err != nil {
				return err
			}
			*code = execute(&cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return nil
		},
	}
	config.DefineFlags(cmd.Flags())
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return nil, err
	}
	return cmd, nil
}

func execute(cfg *config.Config, stdout, stderr io.Writer) int {
	root, err := logging.NewLoggerTo(cfg, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "symcat: %v\n", err)
		return 1
	}
	defer root.Close()

	// Every log record of this run carries the same id as the report.
	runID := uuid.NewString()
	log := root.With(zap.String("run", runID))

	// Phase 2: Logger available. All output goes through log from here on.
	display.PrintBanner(stdout, version)

	if cfg.CheckOnly {
		if !check.RunCheck(cfg, log) {
			return 1
		}
		return 0
	}

	log.Info("=== symcat v%s (%s) ===", version, commit)
	log.Info("Out: %s", cfg.OutputFile)
	if cfg.DryRun {
		log.Warn("DRY RUN: the catalog will not be written")
	}
	log.Info("")

	// Phase 3: Run pipeline (expand → register → group → write).
	stats, err := pipeline.Run(cfg, log)
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	if cfg.ReportFile != "" {
		r := report.Build(stats, time.Now())
		r.RunID = runID
		if err := report.WriteFile(cfg.ReportFile, r); err != nil {
			log.Error("%v", err)
		} else {
			log.Info("Report written: %s", cfg.ReportFile)
		}
	}
	return 0
}
