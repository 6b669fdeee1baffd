package history

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/evenfurther/aoc/internal/runner"
)

// Run records the blocks of one runner invocation.
type Run struct {
	store *Store
	id    string

	mu  sync.Mutex
	seq int
}

// BeginRun inserts a run row. input is the override in effect, if any.
func (s *Store) BeginRun(ctx context.Context, gen IDGenerator, startedAt time.Time, input string) (*Run, error) {
	if gen == nil {
		gen = UUIDv7Generator{}
	}
	id := gen.Generate()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, input) VALUES (?, ?, ?)`,
		id, startedAt.UTC().Format(time.RFC3339Nano), input,
	)
	if err != nil {
		return nil, fmt.Errorf("begin run: %w", err)
	}
	return &Run{store: s, id: id}, nil
}

// ID returns the run identifier.
func (r *Run) ID() string {
	return r.id
}

// Record stores one executed block. It implements runner.Recorder.
func (r *Run) Record(ctx context.Context, b runner.Block) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	_, err := r.store.db.ExecContext(ctx, `
		INSERT INTO timings (run_id, seq, day, part, variant, elapsed_ns, ok)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, r.id, r.seq, b.Day, b.Part, b.Variant, b.Elapsed.Nanoseconds(), b.OK())
	if err != nil {
		r.seq--
		return fmt.Errorf("record day %d part %d: %w", b.Day, b.Part, err)
	}
	return nil
}

var _ runner.Recorder = (*Run)(nil)
