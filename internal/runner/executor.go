package runner

import (
	"context"
	"log/slog"

	"github.com/evenfurther/aoc/internal/registry"
)

// Filter selects the entries to execute. Zero Day or Part matches any.
type Filter struct {
	Day  int
	Part int

	// IncludeVariants keeps named variants next to the main entry.
	IncludeVariants bool
}

// All selects every entry, variants included.
var All = Filter{IncludeVariants: true}

// Matches reports whether key passes the day and part restrictions.
func (f Filter) Matches(key registry.Key) bool {
	return (f.Day == 0 || key.Day == f.Day) && (f.Part == 0 || key.Part == f.Part)
}

// Recorder receives every executed block, e.g. to persist timings.
type Recorder interface {
	Record(ctx context.Context, b Block) error
}

// Options configure an Executor.
type Options struct {
	// Timing appends the elapsed time to every block.
	Timing bool

	// Clock defaults to SystemClock.
	Clock Clock

	// Recorder is optional. Its errors are logged, not returned.
	Recorder Recorder

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Executor runs registry entries and collects a Report.
type Executor struct {
	reg  *registry.Registry
	opts Options
}

// New creates an Executor over reg.
func New(reg *registry.Registry, opts Options) *Executor {
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Executor{reg: reg, opts: opts}
}

// Execute runs the entries selected by f in registry order.
//
// Entries run one at a time to completion. A cancelled ctx stops the loop
// before the next entry starts; the blocks executed so far are returned
// together with ctx.Err().
func (e *Executor) Execute(ctx context.Context, f Filter) (*Report, error) {
	report := &Report{Timing: e.opts.Timing}
	for _, key := range e.reg.Keys() {
		if !f.Matches(key) {
			continue
		}
		for _, entry := range e.reg.Entries(key) {
			if !f.IncludeVariants && !entry.IsMain() {
				continue
			}
			if err := ctx.Err(); err != nil {
				return report, err
			}

			b := e.run(key, entry)
			report.Blocks = append(report.Blocks, b)
			e.opts.Logger.Debug("entry executed",
				"day", b.Day, "part", b.Part, "variant", b.Variant,
				"elapsed", b.Elapsed, "ok", b.OK())

			if e.opts.Recorder != nil {
				if err := e.opts.Recorder.Record(ctx, b); err != nil {
					e.opts.Logger.Warn("failed to record timing", "day", b.Day, "part", b.Part, "error", err)
				}
			}
		}
	}
	return report, nil
}

func (e *Executor) run(key registry.Key, entry registry.Entry) Block {
	b := Block{Day: key.Day, Part: key.Part, Variant: entry.Variant}
	start := e.opts.Clock.Now()
	b.Output, b.Err = call(entry.Run)
	b.Elapsed = e.opts.Clock.Now().Sub(start)
	if b.Err != nil {
		b.Output = ""
	}
	return b
}

func call(run registry.EntryPoint) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()
	return run()
}
