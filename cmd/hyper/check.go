package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hyper-lang/hyper/internal/diag"
	"github.com/hyper-lang/hyper/internal/parser"
	"github.com/hyper-lang/hyper/internal/source"
	"github.com/hyper-lang/hyper/internal/watch"
)

// checkResult is the outcome of parsing one file.
type checkResult struct {
	src   source.Source
	stmts int
	err   error
}

func (a *app) checkCmd() *cobra.Command {
	var (
		watchMode bool
		jobs      int
	)

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Parse scripts and report syntax errors",
		Long: `check parses every script under the given paths (default: the current
directory) and prints a diagnostic for each file that fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			if cmd.Flags().Changed("jobs") {
				if jobs < 0 {
					return fmt.Errorf("--jobs must not be negative, got %d", jobs)
				}
				a.cfg.Check.Jobs = jobs
			}

			if watchMode {
				return a.watch(cmd.Context(), args)
			}
			return a.check(cmd.Context(), args)
		},
	}

	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "re-check whenever a script changes")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "files parsed at once (default: one per CPU)")

	return cmd
}

// check parses every script under paths concurrently and reports the
// failures in file order.
func (a *app) check(ctx context.Context, paths []string) error {
	files, err := findSources(paths, a.cfg.Check.Include)
	if err != nil {
		return err
	}

	limit := a.cfg.Check.Jobs
	if limit == 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([]checkResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			text, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}

			src := source.New(file, string(text))
			prog, err := parser.Parse(src)

			results[i] = checkResult{src: src, err: err}
			if prog != nil {
				results[i].stmts = prog.Len()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	f := diag.NewFormatter(a.cfg.Output.Color)
	failed := 0
	for _, r := range results {
		if r.err == nil {
			a.log.Debug("ok", "file", r.src.Name, "statements", r.stmts)
			continue
		}

		failed++
		var de *diag.Error
		if !errors.As(r.err, &de) {
			fmt.Fprintf(a.stderr, "%s: %v\n", r.src.Name, r.err)
			continue
		}
		f.AddSource(r.src)
		f.Format(a.stderr, de)
	}

	fmt.Fprintf(a.stdout, "checked %d files, %d with errors\n", len(files), failed)
	if failed > 0 {
		return errReported
	}
	return nil
}

// watch runs check once and then again after every batch of changes until
// ctx is cancelled.
func (a *app) watch(ctx context.Context, paths []string) error {
	if err := a.check(ctx, paths); err != nil && !errors.Is(err, errReported) {
		return err
	}

	dirs, err := watchDirs(paths)
	if err != nil {
		return err
	}

	w, err := watch.New(dirs, watch.Options{
		Debounce: a.cfg.Watch.Debounce.Duration,
		Match: func(path string) bool {
			return matchesInclude(path, a.cfg.Check.Include)
		},
		Logger: a.log,
	})
	if err != nil {
		return err
	}

	a.log.Info("watching for changes", "dirs", len(dirs), "debounce", a.cfg.Watch.Debounce.Duration)

	return w.Run(ctx, func(ctx context.Context, change watch.Change) {
		a.log.Info("re-checking", "changed", change.Paths)
		if err := a.check(ctx, paths); err != nil && !errors.Is(err, errReported) {
			a.log.Error("check failed", "error", err)
		}
	})
}
