// Package config holds runtime configuration: defaults, layered loading
// (config file, environment, CLI flags) and validation.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// overlaid by [Load] and then passed (by pointer) to packages that need it.
type Config struct {
	// Inputs and outputs.
	SourceDirs []string `mapstructure:"source_dirs"` // Directories or glob patterns, in order.
	OutputFile string   `mapstructure:"output"`      // Catalog path.
	ReportFile string   `mapstructure:"report"`      // Optional YAML run report.

	// Discovery.
	Extensions      []string `mapstructure:"extensions"` // Default: [".png"]. Normalized by Validate.
	ProbeDimensions bool     `mapstructure:"dimensions"` // Default: true.

	// Behavior flags.
	DryRun    bool `mapstructure:"dry_run"`
	CheckOnly bool `mapstructure:"check"` // Run --check diagnostics and exit.

	// Display and logging.
	Verbose   bool      `mapstructure:"verbose"`
	ColorMode ColorMode `mapstructure:"color"` // Default: "auto".
	LogFile   string    `mapstructure:"log"`   // Optional JSON log file path.
}

// DefaultConfig returns a Config with all defaults applied. Used as the base
// layer before [Load] applies file, environment and flag overrides.
func DefaultConfig() Config {
	return Config{
		Extensions:      []string{".png"},
		ProbeDimensions: true,
		DryRun:          false,
		CheckOnly:       false,
		Verbose:         false,
		ColorMode:       ColorAuto,
	}
}

// Validate checks enum fields and normalizes the extension list. When not in
// CheckOnly mode it also requires at least one source and an output path.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	exts, err := NormalizeExtensions(c.Extensions)
	if err != nil {
		return err
	}
	c.Extensions = exts

	if c.CheckOnly {
		return nil
	}
	if len(c.SourceDirs) == 0 {
		return errors.New("need at least one source directory (-s)")
	}
	if strings.TrimSpace(c.OutputFile) == "" {
		return errors.New("need an output file (-o)")
	}
	return nil
}

// NormalizeExtensions lowercases, dot-prefixes, dedupes and sorts extension
// names. Accepted forms: "png", ".png", "PNG", " .Png ". Comma-joined
// entries ("png,jpg") are split, since env vars arrive as one string.
func NormalizeExtensions(raw []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, entry := range raw {
		for _, part := range strings.Split(entry, ",") {
			s := strings.ToLower(strings.TrimSpace(part))
			s = strings.TrimPrefix(s, ".")
			if s == "" {
				continue
			}
			if strings.ContainsAny(s, `./\ `) {
				return nil, fmt.Errorf("invalid extension %q", part)
			}
			ext := "." + s
			if !seen[ext] {
				seen[ext] = true
				out = append(out, ext)
			}
		}
	}
	if len(out) == 0 {
		return nil, errors.New("need at least one image extension")
	}
	sort.Strings(out)
	return out, nil
}
