package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/evenfurther/aoc/internal/scanner"
)

// GenerateOptions holds flags for the generator.
type GenerateOptions struct {
	Verbose bool
	Format  string
	Dir     string
	Output  string
	Check   bool
	List    bool
}

// listing is the JSON form of one discovery.
type listing struct {
	scanner.Discovery
	Entry string `json:"entry_point"`
}

// NewGenerateCommand creates the aocgen command, normally invoked through
// a go:generate directive in the solutions package.
func NewGenerateCommand() *cobra.Command {
	opts := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "aocgen",
		Short: "Generate the registration file of annotated solutions",
		Long: `Scan a package for functions annotated with

  //aoc:day<N>, part<P>[, separator=<literal>][, <variant>]

and write the file that registers them with the runner.

Exit codes:
  0 - File written or up to date
  1 - Invalid annotation, or --check found a stale file
  2 - Command error

Examples:
  //go:generate go run github.com/evenfurther/aoc/cmd/aocgen
  aocgen --dir ./year2015 --check
  aocgen --list --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "output format for --list (json|text)")
	cmd.Flags().StringVar(&opts.Dir, "dir", ".", "package directory to scan")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", scanner.DefaultOutput, "generated file, relative to --dir")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "fail if the generated file is out of date instead of writing it")
	cmd.Flags().BoolVar(&opts.List, "list", false, "print the discovered solutions instead of writing the file")
	cmd.MarkFlagsMutuallyExclusive("check", "list")

	return cmd
}

func runGenerate(opts *GenerateOptions, cmd *cobra.Command) error {
	if !slices.Contains(ValidFormats, opts.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
	}
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	output := opts.Output
	if !filepath.IsAbs(output) {
		output = filepath.Join(opts.Dir, output)
	}

	pkg, err := scanner.New(logger, output).ScanDir(opts.Dir)
	if err != nil {
		return outputError(out, ErrCodeScanFailed, WrapExitError(ExitFailure, "generation failed", err))
	}
	logger.Debug("discovered solutions", "package", pkg.Name, "count", len(pkg.Discoveries))

	switch {
	case opts.List:
		return listDiscoveries(out, pkg)

	case opts.Check:
		stale, err := scanner.Stale(pkg, output)
		if err != nil {
			return outputError(out, ErrCodeGeneric, WrapExitError(ExitCommandError, "cannot check generated file", err))
		}
		if stale {
			return outputError(out, ErrCodeStale, NewExitError(ExitFailure, fmt.Sprintf("%s is out of date; run go generate", output)))
		}
		logger.Info("generated file is up to date", "file", output)
		return nil

	default:
		changed, err := scanner.WriteFile(pkg, output)
		if err != nil {
			return outputError(out, ErrCodeWriteFailed, WrapExitError(ExitFailure, "generation failed", err))
		}
		logger.Debug("registration file", "file", output, "changed", changed, "solutions", len(pkg.Discoveries))
		return nil
	}
}

func listDiscoveries(out *OutputFormatter, pkg *scanner.Package) error {
	items := make([]listing, 0, len(pkg.Discoveries))
	for _, d := range pkg.Discoveries {
		items = append(items, listing{Discovery: d, Entry: d.EntryPoint()})
	}

	return out.Success(items, func(w io.Writer) error {
		for _, it := range items {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s -> %s\n", it.Entry, it.Pos(), it.Func, it.Input, it.Output); err != nil {
				return err
			}
		}
		return nil
	})
}
