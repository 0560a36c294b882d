package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hyper-lang/hyper/internal/astdump"
	"github.com/hyper-lang/hyper/internal/config"
	"github.com/hyper-lang/hyper/internal/diag"
	"github.com/hyper-lang/hyper/internal/source"
)

// errReported is returned once diagnostics have already been printed, so
// main only sets the exit status.
var errReported = errors.New("errors reported")

// app carries the state shared by all subcommands.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	verbose    bool
	noColor    bool
	format     string
	locations  bool

	cfg *config.Config
	log *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "hyper",
		Short: "Hyper language front end",
		Long: `hyper lexes and parses Hyper scripts.

Commands:
  tokens  - print the token stream of a script
  parse   - print the syntax tree of a script
  check   - parse many scripts and report syntax errors`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default: nearest "+config.FileName+")")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored diagnostics")

	root.AddCommand(a.tokensCmd(), a.parseCmd(), a.checkCmd(), a.versionCmd())

	return root
}

// setup loads the configuration, applies flag overrides and builds the
// logger.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" {
		if found, ok := config.Find("."); ok {
			path = found
		}
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		cfg.Output.Format = a.format
	}
	if a.locations {
		cfg.Output.Locations = true
	}
	if a.noColor {
		cfg.Output.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if a.verbose {
		level = slog.LevelDebug
	}

	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	a.log.Debug("configuration loaded", "path", path, "format", cfg.Output.Format, "language", cfg.Language)

	return nil
}

// outputFlags registers the dump flags shared by tokens and parse.
func (a *app) outputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&a.format, "format", "f", string(astdump.FormatYAML), "output format (yaml or json)")
	cmd.Flags().BoolVar(&a.locations, "locations", false, "include row:column for every entry")
}

func (a *app) dumpOptions() astdump.Options {
	return astdump.Options{Locations: a.cfg.Output.Locations}
}

// inputSource reads the single file argument, or uses the inline text given
// with --eval.
func inputSource(args []string, eval string) (source.Source, error) {
	if eval != "" {
		if len(args) > 0 {
			return source.Source{}, fmt.Errorf("--eval cannot be combined with a file argument")
		}
		return source.New("<eval>", eval), nil
	}
	if len(args) != 1 {
		return source.Source{}, fmt.Errorf("expected exactly one file, got %d", len(args))
	}
	return readSource(args[0])
}

func readSource(path string) (source.Source, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return source.Source{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return source.New(path, string(text)), nil
}

// report prints a front-end error with its source snippet. Other errors
// are returned unchanged.
func (a *app) report(err error, src source.Source) error {
	var de *diag.Error
	if !errors.As(err, &de) {
		return err
	}

	f := diag.NewFormatter(a.cfg.Output.Color)
	f.AddSource(src)
	f.Format(a.stderr, de)

	return errReported
}
