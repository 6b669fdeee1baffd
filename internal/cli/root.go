package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/evenfurther/aoc/internal/config"
	"github.com/evenfurther/aoc/internal/history"
	"github.com/evenfurther/aoc/internal/input"
	"github.com/evenfurther/aoc/internal/registry"
	"github.com/evenfurther/aoc/internal/runner"
)

// RegisterFunc adds the solutions of a puzzle package to reg. Generated
// registration files provide one.
type RegisterFunc func(reg *registry.Registry, loader *input.Loader) error

// App describes a puzzle binary.
type App struct {
	// Name is the command name shown in help.
	Name string

	Register RegisterFunc

	// Now picks the default day. Defaults to time.Now.
	Now func() time.Time

	// Clock times entries. Defaults to runner.SystemClock.
	Clock runner.Clock

	// IDs generates history run ids. Defaults to UUIDv7.
	IDs history.IDGenerator
}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Config  string
	History string

	logger *slog.Logger
	cfg    config.Config
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the puzzle runner command. Without a subcommand it
// runs the selected days and prints the report.
func NewRootCommand(app App) *cobra.Command {
	if app.Name == "" {
		app.Name = "aoc"
	}
	if app.Now == nil {
		app.Now = time.Now
	}
	if app.Clock == nil {
		app.Clock = runner.SystemClock{}
	}

	opts := &RootOptions{}
	runOpts := &RunOptions{RootOptions: opts}

	cmd := &cobra.Command{
		Use:   app.Name,
		Short: "Run Advent of Code solutions",
		Long: `Run the registered Advent of Code solutions and print their answers.

Without --all or --day, today's day of month (UTC) is run.

Examples:
  ` + app.Name + ` --day 3
  ` + app.Name + ` -a -m --timing
  ` + app.Name + ` -d 4 -p 1 -i "3,9,12"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPuzzles(app, runOpts, cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format for listings (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", config.DefaultFile, "project configuration file")
	cmd.PersistentFlags().StringVar(&opts.History, "history", "", "SQLite timing history (overrides the config file)")
	runOpts.bind(cmd)

	cmd.AddCommand(NewCheckCommand(app, opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// setup configures logging and loads the project file. It runs before
// every command.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	if !slices.Contains(ValidFormats, o.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}
	o.logger = newLogger(cmd.ErrOrStderr(), o.Verbose)
	slog.SetDefault(o.logger)

	cfg, err := config.Load(o.Config, cmd.Flags().Changed("config"))
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load configuration", err)
	}
	o.cfg = cfg
	if o.History == "" {
		o.History = cfg.History
	}
	o.logger.Debug("configuration loaded", "input_dir", cfg.Input.Dir, "pattern", cfg.Input.Pattern, "history", o.History)
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Execute runs cmd with args, renders a failure on stderr and returns the
// process exit code.
func Execute(cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil {
		RenderError(cmd.ErrOrStderr(), err)
	}
	return GetExitCode(err)
}
