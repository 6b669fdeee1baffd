package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/evenfurther/aoc/internal/history"
	"github.com/evenfurther/aoc/internal/runner"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Day  int
	Part int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the best recorded time of every solution",
		Long: `Show the fastest successful time recorded for each day, part and variant.

Timings are recorded by runs made with a history database, set with
--history or the "history" key of the configuration file.

Examples:
  aoc history --history .aoc/history.db
  aoc history -d 4 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Day, "day", "d", 0, "restrict to one day")
	cmd.Flags().IntVarP(&opts.Part, "part", "p", 0, "restrict to one part")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.History == "" {
		return outputError(out, ErrCodeNoHistory, NewExitError(ExitCommandError, "no history database configured (use --history or the history key of the configuration file)"))
	}
	st, err := history.Open(opts.History)
	if err != nil {
		return outputError(out, ErrCodeNoHistory, WrapExitError(ExitCommandError, "failed to open history", err))
	}
	defer st.Close()

	best, err := st.Best(commandContext(cmd), history.Query{Day: opts.Day, Part: opts.Part})
	if err != nil {
		return outputError(out, ErrCodeNoHistory, WrapExitError(ExitFailure, "failed to read history", err))
	}
	if best == nil {
		best = []history.Best{}
	}

	return out.Success(best, func(w io.Writer) error {
		if len(best) == 0 {
			_, err := fmt.Fprintln(w, "No timings recorded.")
			return err
		}
		for _, b := range best {
			block := runner.Block{Day: b.Day, Part: b.Part, Variant: b.Variant}
			runs := "runs"
			if b.Runs == 1 {
				runs = "run"
			}
			if _, err := fmt.Fprintf(w, "%s%s (best of %d %s)\n", block.Header(), runner.FormatDuration(b.Elapsed), b.Runs, runs); err != nil {
				return err
			}
		}
		return nil
	})
}
