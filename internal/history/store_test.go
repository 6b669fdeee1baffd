package history

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evenfurther/aoc/internal/runner"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

var start = time.Date(2015, time.December, 1, 5, 0, 0, 0, time.UTC)

func TestOpen_CreatesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	for i := 0; i < 3; i++ {
		s, err := Open(path)
		require.NoError(t, err, "iteration %d", i)
		require.NoError(t, s.Close())
	}
}

func TestOpen_Pragmas(t *testing.T) {
	s := openStore(t)
	assert.NoError(t, s.verifyPragma("journal_mode", "wal"))
	assert.NoError(t, s.verifyPragma("foreign_keys", "1"))
	assert.NoError(t, s.verifyPragma("busy_timeout", "5000"))
	assert.NoError(t, s.verifyPragma("user_version", "1"))
}

func TestOpen_RejectsNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.db.Exec("PRAGMA user_version = 99")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = Open(path)
	assert.ErrorContains(t, err, "newer than supported")
}

func TestRun_RecordAndTimings(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	run, err := s.BeginRun(ctx, &SequenceGenerator{}, start, "")
	require.NoError(t, err)
	assert.Equal(t, "run-1", run.ID())

	require.NoError(t, run.Record(ctx, runner.Block{Day: 1, Part: 1, Output: "3", Elapsed: 1500 * time.Nanosecond}))
	require.NoError(t, run.Record(ctx, runner.Block{Day: 1, Part: 1, Variant: "alt", Output: "3", Elapsed: time.Millisecond}))
	require.NoError(t, run.Record(ctx, runner.Block{Day: 4, Part: 2, Err: assert.AnError, Elapsed: time.Microsecond}))

	timings, err := s.Timings(ctx, run.ID())
	require.NoError(t, err)
	assert.Equal(t, []Timing{
		{Day: 1, Part: 1, Elapsed: 1500 * time.Nanosecond, OK: true},
		{Day: 1, Part: 1, Variant: "alt", Elapsed: time.Millisecond, OK: true},
		{Day: 4, Part: 2, Elapsed: time.Microsecond, OK: false},
	}, timings)
}

func TestRun_RecordRejectsUnknownRun(t *testing.T) {
	s := openStore(t)
	orphan := &Run{store: s, id: "missing"}

	err := orphan.Record(context.Background(), runner.Block{Day: 1, Part: 1})
	assert.Error(t, err, "foreign key enforced")
}

func TestBest(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	gen := &SequenceGenerator{}

	first, err := s.BeginRun(ctx, gen, start, "")
	require.NoError(t, err)
	require.NoError(t, first.Record(ctx, runner.Block{Day: 2, Part: 1, Elapsed: 40 * time.Millisecond}))
	require.NoError(t, first.Record(ctx, runner.Block{Day: 1, Part: 2, Variant: "fast", Elapsed: 5 * time.Millisecond}))
	require.NoError(t, first.Record(ctx, runner.Block{Day: 1, Part: 2, Elapsed: 9 * time.Millisecond}))

	second, err := s.BeginRun(ctx, gen, start.Add(time.Hour), "3,9")
	require.NoError(t, err)
	require.NoError(t, second.Record(ctx, runner.Block{Day: 2, Part: 1, Elapsed: 30 * time.Millisecond}))
	require.NoError(t, second.Record(ctx, runner.Block{Day: 1, Part: 2, Elapsed: 12 * time.Millisecond}))
	// Failures never count as a best time.
	require.NoError(t, second.Record(ctx, runner.Block{Day: 3, Part: 1, Err: assert.AnError, Elapsed: time.Nanosecond}))

	best, err := s.Best(ctx, Query{})
	require.NoError(t, err)
	assert.Equal(t, []Best{
		{Day: 1, Part: 2, Elapsed: 9 * time.Millisecond, Runs: 2, RunID: "run-1"},
		{Day: 1, Part: 2, Variant: "fast", Elapsed: 5 * time.Millisecond, Runs: 1, RunID: "run-1"},
		{Day: 2, Part: 1, Elapsed: 30 * time.Millisecond, Runs: 2, RunID: "run-2"},
	}, best)

	best, err = s.Best(ctx, Query{Day: 2})
	require.NoError(t, err)
	require.Len(t, best, 1)
	assert.Equal(t, 2, best[0].Day)

	best, err = s.Best(ctx, Query{Part: 2})
	require.NoError(t, err)
	assert.Len(t, best, 2)

	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, runs)
}

func TestUUIDv7Generator(t *testing.T) {
	gen := UUIDv7Generator{}
	a, b := gen.Generate(), gen.Generate()

	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
	assert.Equal(t, byte('7'), a[14], "version nibble")
}
