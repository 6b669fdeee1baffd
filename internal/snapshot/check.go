package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/evenfurther/aoc/internal/registry"
	"github.com/evenfurther/aoc/internal/runner"
)

// RecordEnv is the environment variable that turns on recording mode.
const RecordEnv = "RECORD_RESULTS"

// Hint follows every printed diff.
const Hint = "Re-run with " + RecordEnv + "=1 to update reference files"

// Recording reports whether RecordEnv is set, whatever its value.
func Recording() bool {
	_, ok := os.LookupEnv(RecordEnv)
	return ok
}

// Options configure a Checker.
type Options struct {
	// Record rewrites references instead of comparing them.
	Record bool

	// Out receives the diff on mismatch. Defaults to os.Stdout.
	Out io.Writer

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Checker produces reports from a registry and compares them with
// reference files.
type Checker struct {
	reg  *registry.Registry
	opts Options
}

// New creates a Checker over reg.
func New(reg *registry.Registry, opts Options) *Checker {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Checker{reg: reg, opts: opts}
}

// Check runs every day and part, skipping variants when mainOnly is set, and
// compares the untimed report with the file at path.
func (c *Checker) Check(ctx context.Context, path string, mainOnly bool) (bool, error) {
	report, err := runner.New(c.reg, runner.Options{Logger: c.opts.Logger}).
		Execute(ctx, runner.Filter{IncludeVariants: !mainOnly})
	if err != nil {
		return false, err
	}
	return c.Compare(report.String(), path)
}

// Compare checks actual against the reference at path.
//
// In recording mode it returns true, writing actual to path when the file
// is missing, unreadable or different. Otherwise a read failure is a
// *ReferenceError, and a mismatch prints a diff and returns false with the
// file left untouched.
func (c *Checker) Compare(actual, path string) (bool, error) {
	expected, readErr := os.ReadFile(path)

	if c.opts.Record {
		if readErr == nil && string(expected) == actual {
			return true, nil
		}
		if err := os.WriteFile(path, []byte(actual), 0o644); err != nil {
			return false, fmt.Errorf("record reference: %w", err)
		}
		c.opts.Logger.Info("reference recorded", "path", path, "created", errors.Is(readErr, fs.ErrNotExist))
		return true, nil
	}

	if readErr != nil {
		return false, &ReferenceError{Path: path, Err: readErr}
	}
	if string(expected) == actual {
		return true, nil
	}
	fmt.Fprintf(c.opts.Out, "Actual does not meet expected:\n%s\n%s\n", Diff(string(expected), actual), Hint)
	return false, nil
}
