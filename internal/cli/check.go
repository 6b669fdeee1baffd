package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/evenfurther/aoc/internal/snapshot"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	MainOnly bool
	Record   bool
}

// NewCheckCommand creates the check command.
func NewCheckCommand(app App, rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <reference-file>",
		Short: "Compare the full report with a reference file",
		Long: `Run every day and part and compare the report with a reference file.

On mismatch a line diff is printed and the reference is left untouched.
With ` + snapshot.RecordEnv + ` set (or --record) the reference is rewritten
instead and the check passes.

Exit codes:
  0 - Report matches (or was recorded)
  1 - Report differs from the reference
  2 - Reference cannot be read`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(app, opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.MainOnly, "main-only", "m", false, "skip variant implementations")
	cmd.Flags().BoolVar(&opts.Record, "record", false, "rewrite the reference file ("+snapshot.RecordEnv+" does the same)")

	return cmd
}

func runCheck(app App, opts *CheckOptions, path string, cmd *cobra.Command) error {
	reg, err := register(app, opts.cfg.Loader(""))
	if err != nil {
		return err
	}

	checker := snapshot.New(reg, snapshot.Options{
		Record: opts.Record || snapshot.Recording(),
		Out:    cmd.OutOrStdout(),
		Logger: opts.logger,
	})
	ok, err := checker.Check(commandContext(cmd), path, opts.MainOnly)
	if err != nil {
		var refErr *snapshot.ReferenceError
		if errors.As(err, &refErr) {
			return WrapExitError(ExitCommandError, "cannot check", err)
		}
		return WrapExitError(ExitFailure, "check failed", err)
	}
	if !ok {
		return NewExitError(ExitFailure, "report does not match "+path)
	}
	return nil
}
