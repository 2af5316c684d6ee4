package config

// This file wires CLI flags, environment variables and an optional config
// file into one viper instance. Precedence, highest first: flag, env, file,
// default. Negated flags (--no-dimensions, --no-color) are applied after
// unmarshal so that defaults hold unless the user passes them.

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override (SYMCAT_OUTPUT, ...).
const EnvPrefix = "SYMCAT"

// negated flag names, read back after unmarshal.
const (
	flagNoDimensions = "no-dimensions"
	flagForceColor   = "force-color"
	flagNoColor      = "no-color"
	flagConfig       = "config"
)

// DefineFlags registers every flag on fs. Flag names map to config keys
// through [BindFlags].
func DefineFlags(fs *pflag.FlagSet) {
	def := DefaultConfig()

	fs.StringSliceP("source-dirs", "s", nil, "Source directories or glob patterns (repeatable)")
	fs.StringP("output", "o", "", "Output catalog file")
	fs.String("report", "", "Write a YAML run report to this file")
	fs.StringSlice("ext", def.Extensions, "Image extensions to include")
	fs.Bool(flagNoDimensions, false, "Do not read image dimensions")
	fs.BoolP("dry-run", "d", false, "Build and report only; do not write the catalog")

	fs.Bool(flagForceColor, false, "Force colored logs")
	fs.Bool(flagNoColor, false, "Disable colored logs")
	fs.BoolP("verbose", "v", false, "Verbose output")
	fs.BoolP("check", "c", false, "Run diagnostics and exit")
	fs.StringP("log", "l", "", "Append JSON logs to file")
	fs.String(flagConfig, "", "Config file (default: ./symcat.yaml or $HOME/.config/symcat/symcat.yaml)")
}

// BindFlags maps flag names onto config keys in v and sets the defaults
// layer. Call once, after [DefineFlags].
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	def := DefaultConfig()
	v.SetDefault("extensions", def.Extensions)
	v.SetDefault("dimensions", def.ProbeDimensions)
	v.SetDefault("color", string(def.ColorMode))

	bindings := map[string]string{
		"source_dirs": "source-dirs",
		"output":      "output",
		"report":      "report",
		"extensions":  "ext",
		"dry_run":     "dry-run",
		"verbose":     "verbose",
		"check":       "check",
		"log":         "log",
	}
	for key, name := range bindings {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return nil
}

// Load reads the optional config file and unmarshals every layer into a
// Config. A missing default config file is not an error; a missing file
// named explicitly by --config is.
func Load(v *viper.Viper, fs *pflag.FlagSet) (Config, error) {
	explicit, _ := fs.GetString(flagConfig)
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName("symcat")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "symcat"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	applyNegatedFlags(&cfg, fs)
	return cfg, nil
}

// applyNegatedFlags copies negated and override flag values into cfg.
func applyNegatedFlags(cfg *Config, fs *pflag.FlagSet) {
	if noDims, _ := fs.GetBool(flagNoDimensions); noDims {
		cfg.ProbeDimensions = false
	}
	noColor, _ := fs.GetBool(flagNoColor)
	forceColor, _ := fs.GetBool(flagForceColor)
	if noColor {
		cfg.ColorMode = ColorNever
	} else if forceColor {
		cfg.ColorMode = ColorAlways
	}
}
