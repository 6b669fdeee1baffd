package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/evenfurther/aoc/internal/history"
	"github.com/evenfurther/aoc/internal/input"
	"github.com/evenfurther/aoc/internal/registry"
	"github.com/evenfurther/aoc/internal/runner"
)

// RunOptions holds the flags of the runner.
type RunOptions struct {
	*RootOptions
	All      bool
	Day      int
	Part     int
	Timing   bool
	MainOnly bool
	Input    string
}

func (o *RunOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolVarP(&o.All, "all", "a", false, "run every day")
	f.IntVarP(&o.Day, "day", "d", 0, "run a single day (1-25)")
	f.IntVarP(&o.Part, "part", "p", 0, "run a single part (1 or 2)")
	f.BoolVarP(&o.Timing, "timing", "t", false, "show timing information")
	f.BoolVarP(&o.MainOnly, "main-only", "m", false, "skip variant implementations")
	f.StringVarP(&o.Input, "input", "i", "", "alternate input for the day (file or literal string)")

	cmd.MarkFlagsMutuallyExclusive("all", "day")
	cmd.MarkFlagsMutuallyExclusive("all", "input")
}

// filter validates the flags and returns the execution filter.
func (o *RunOptions) filter(cmd *cobra.Command, app App) (runner.Filter, error) {
	f := runner.Filter{Part: o.Part, IncludeVariants: !o.MainOnly}

	if cmd.Flags().Changed("day") && (o.Day < 1 || o.Day > registry.MaxDay) {
		return f, NewExitError(ExitCommandError, fmt.Sprintf("--day %d out of range 1..%d", o.Day, registry.MaxDay))
	}
	if cmd.Flags().Changed("part") && (o.Part < 1 || o.Part > registry.MaxPart) {
		return f, NewExitError(ExitCommandError, fmt.Sprintf("--part %d out of range 1..%d", o.Part, registry.MaxPart))
	}

	switch {
	case o.All:
	case cmd.Flags().Changed("day"):
		f.Day = o.Day
	default:
		f.Day = app.Now().UTC().Day()
	}
	return f, nil
}

func runPuzzles(app App, opts *RunOptions, cmd *cobra.Command) error {
	logger := opts.logger

	filter, err := opts.filter(cmd, app)
	if err != nil {
		return err
	}
	timing := opts.Timing
	if !cmd.Flags().Changed("timing") {
		timing = opts.cfg.Timing
	}

	loader := opts.cfg.Loader(opts.Input)
	reg, err := register(app, loader)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	execOpts := runner.Options{Timing: timing, Clock: app.Clock, Logger: logger}
	if opts.History != "" {
		st, err := history.Open(opts.History)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open history", err)
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				logger.Error("error closing history", "error", closeErr)
			}
		}()
		run, err := st.BeginRun(ctx, app.IDs, app.Now(), opts.Input)
		if err != nil {
			return WrapExitError(ExitFailure, "failed to start history run", err)
		}
		logger.Debug("recording timings", "path", opts.History, "run", run.ID())
		execOpts.Recorder = run
	}

	logger.Debug("executing", "day", filter.Day, "part", filter.Part, "variants", filter.IncludeVariants)
	report, err := runner.New(reg, execOpts).Execute(ctx, filter)
	if _, werr := report.WriteTo(cmd.OutOrStdout()); werr != nil {
		return WrapExitError(ExitFailure, "failed to write report", werr)
	}
	if err != nil {
		return WrapExitError(ExitFailure, "interrupted", err)
	}
	if len(report.Blocks) == 0 {
		logger.Info("no registered solution matches", "day", filter.Day, "part", filter.Part)
	}
	return nil
}

// register builds the registry of app. Registration errors are generation
// errors and abort the run.
func register(app App, loader *input.Loader) (*registry.Registry, error) {
	reg := registry.New()
	if app.Register == nil {
		return nil, NewExitError(ExitFailure, "no solutions registered")
	}
	if err := app.Register(reg, loader); err != nil {
		return nil, WrapExitError(ExitFailure, "registration failed", err)
	}
	return reg, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
