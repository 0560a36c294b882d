// Package config loads the hyper command's settings from hyper.toml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"

	"github.com/hyper-lang/hyper/internal/astdump"
)

// LanguageVersion is the version of the Hyper language this front end
// accepts. Projects pin a range of it with the top-level language key.
const LanguageVersion = "0.1.0"

// FileName is the configuration file looked up by Find.
const FileName = "hyper.toml"

// Config holds the complete command configuration.
type Config struct {
	Language string       `toml:"language"`
	LogLevel string       `toml:"log_level"`
	Output   OutputConfig `toml:"output"`
	Check    CheckConfig  `toml:"check"`
	Watch    WatchConfig  `toml:"watch"`
}

// OutputConfig controls how dumps and diagnostics are printed.
type OutputConfig struct {
	Format    string `toml:"format"`
	Color     bool   `toml:"color"`
	Locations bool   `toml:"locations"`
}

// CheckConfig controls the check command.
type CheckConfig struct {
	// Jobs caps the number of files parsed at once; 0 means one per CPU.
	Jobs int `toml:"jobs"`
	// Include lists glob patterns matched against file base names when a
	// directory is checked.
	Include []string `toml:"include"`
}

// WatchConfig controls check --watch.
type WatchConfig struct {
	Debounce Duration `toml:"debounce"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no hyper.toml exists.
func Default() *Config {
	return &Config{
		Language: ">= " + LanguageVersion,
		LogLevel: "info",
		Output: OutputConfig{
			Format: string(astdump.FormatYAML),
			Color:  true,
		},
		Check: CheckConfig{
			Include: []string{"*.hy"},
		},
		Watch: WatchConfig{
			Debounce: Duration{200 * time.Millisecond},
		},
	}
}

// Load reads path over the defaults. A missing file is not an error and
// yields Default. Unknown keys are rejected so typos do not pass silently.
func Load(path string) (*Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Find walks up from dir looking for hyper.toml and returns its path.
func Find(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	for {
		path := filepath.Join(dir, FileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Validate checks every field and returns the first problem found.
func (c *Config) Validate() error {
	if _, err := astdump.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if c.Check.Jobs < 0 {
		return fmt.Errorf("check.jobs must not be negative, got %d", c.Check.Jobs)
	}
	for _, pattern := range c.Check.Include {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("check.include: bad pattern %q: %w", pattern, err)
		}
	}
	if c.Watch.Debounce.Duration < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %s", c.Watch.Debounce)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return c.checkLanguage()
}

// Level returns the slog level named by log_level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// Format returns the validated output format.
func (c *Config) Format() astdump.Format {
	return astdump.Format(c.Output.Format)
}

func (c *Config) checkLanguage() error {
	if c.Language == "" {
		return nil
	}

	constraint, err := semver.NewConstraint(c.Language)
	if err != nil {
		return fmt.Errorf("language: invalid constraint %q: %w", c.Language, err)
	}

	version := semver.MustParse(LanguageVersion)
	if !constraint.Check(version) {
		return fmt.Errorf("language: project requires %s but this front end implements %s", c.Language, LanguageVersion)
	}

	return nil
}
