package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evenfurther/aoc/internal/registry"
	"github.com/evenfurther/aoc/internal/testutil"
)

func answer(s string) registry.EntryPoint {
	return func() (string, error) { return s, nil }
}

func sample(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	// Registered out of key order on purpose.
	require.NoError(t, reg.Register(2, 1, "", answer("21")))
	require.NoError(t, reg.Register(1, 2, "", answer("12")))
	require.NoError(t, reg.Register(1, 1, "", answer("11")))
	require.NoError(t, reg.Register(1, 1, "alt", answer("11 again")))
	require.NoError(t, reg.Register(2, 2, "only_variant", answer("22")))
	return reg
}

type recorder struct {
	blocks []Block
	err    error
}

func (r *recorder) Record(_ context.Context, b Block) error {
	r.blocks = append(r.blocks, b)
	return r.err
}

func TestExecute_OrderAndVariants(t *testing.T) {
	report, err := New(sample(t), Options{}).Execute(context.Background(), All)
	require.NoError(t, err)

	assert.Equal(t, ""+
		"Day 1 - part 1: 11\n"+
		"Day 1 - part 1 — alt: 11 again\n"+
		"Day 1 - part 2: 12\n"+
		"Day 2 - part 1: 21\n"+
		"Day 2 - part 2 — only_variant: 22\n",
		report.String())
}

func TestExecute_Filters(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   string
	}{
		{
			name:   "main only",
			filter: Filter{},
			want:   "Day 1 - part 1: 11\nDay 1 - part 2: 12\nDay 2 - part 1: 21\n",
		},
		{
			name:   "one day",
			filter: Filter{Day: 2, IncludeVariants: true},
			want:   "Day 2 - part 1: 21\nDay 2 - part 2 — only_variant: 22\n",
		},
		{
			name:   "one part",
			filter: Filter{Part: 1, IncludeVariants: true},
			want:   "Day 1 - part 1: 11\nDay 1 - part 1 — alt: 11 again\nDay 2 - part 1: 21\n",
		},
		{
			name:   "day and part",
			filter: Filter{Day: 1, Part: 2},
			want:   "Day 1 - part 2: 12\n",
		},
		{
			name:   "unregistered day",
			filter: Filter{Day: 9, IncludeVariants: true},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := New(sample(t), Options{}).Execute(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, report.String())
		})
	}
}

func TestExecute_FailuresDoNotAbort(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register(1, 1, "", func() (string, error) { return "", errors.New("bad input") }))
	require.NoError(t, reg.Register(1, 2, "", func() (string, error) { panic("index out of range") }))
	require.NoError(t, reg.Register(2, 1, "", answer("ok")))

	report, err := New(reg, Options{}).Execute(context.Background(), All)
	require.NoError(t, err)

	assert.Equal(t, ""+
		"Day 1 - part 1: <error: bad input>\n"+
		"Day 1 - part 2: <error: panic: index out of range>\n"+
		"Day 2 - part 1: ok\n",
		report.String())
	assert.Equal(t, 2, report.Failed())

	var panicErr *PanicError
	assert.True(t, errors.As(report.Blocks[1].Err, &panicErr))
}

func TestExecute_Timing(t *testing.T) {
	clock := testutil.NewStepClock(1500 * time.Nanosecond)
	report, err := New(sample(t), Options{Timing: true, Clock: clock}).Execute(context.Background(), Filter{Day: 1})
	require.NoError(t, err)

	assert.Equal(t, "Day 1 - part 1: 11 (1.50 µs)\nDay 1 - part 2: 12 (1.50 µs)\n", report.String())
	assert.Equal(t, int64(4), clock.Ticks())
}

func TestExecute_Recorder(t *testing.T) {
	rec := &recorder{err: errors.New("disk full")}
	report, err := New(sample(t), Options{Recorder: rec}).Execute(context.Background(), Filter{Day: 1, IncludeVariants: true})
	require.NoError(t, err, "recorder errors are logged only")

	require.Len(t, rec.blocks, 3)
	assert.Equal(t, report.Blocks, rec.blocks)
	assert.Equal(t, "alt", rec.blocks[1].Variant)
}

func TestExecute_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	reg := registry.New()
	require.NoError(t, reg.Register(1, 1, "", func() (string, error) {
		cancel()
		return "first", nil
	}))
	require.NoError(t, reg.Register(1, 2, "", answer("second")))

	report, err := New(reg, Options{}).Execute(ctx, All)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "Day 1 - part 1: first\n", report.String())
}

func TestFilter_Matches(t *testing.T) {
	assert.True(t, Filter{}.Matches(registry.Key{Day: 3, Part: 2}))
	assert.True(t, Filter{Day: 3}.Matches(registry.Key{Day: 3, Part: 2}))
	assert.False(t, Filter{Day: 3, Part: 1}.Matches(registry.Key{Day: 3, Part: 2}))
}
