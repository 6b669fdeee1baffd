package history

import (
	"context"
	"fmt"
	"time"
)

// Query restricts listings. Zero fields match everything.
type Query struct {
	Day  int
	Part int
}

// Best is the fastest successful time of one (day, part, variant).
type Best struct {
	Day     int           `json:"day"`
	Part    int           `json:"part"`
	Variant string        `json:"variant,omitempty"`
	Elapsed time.Duration `json:"elapsed_ns"`
	Runs    int           `json:"runs"`
	RunID   string        `json:"run_id"`
}

// Timing is one stored block.
type Timing struct {
	Day     int
	Part    int
	Variant string
	Elapsed time.Duration
	OK      bool
}

// Best returns the fastest successful timing per (day, part, variant).
// Runs counts successful executions. RunID is taken from the row holding
// the minimum (SQLite bare-column semantics with a single MIN aggregate).
func (s *Store) Best(ctx context.Context, q Query) ([]Best, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT day, part, variant, MIN(elapsed_ns), COUNT(*), run_id
		FROM timings
		WHERE ok = 1 AND (? = 0 OR day = ?) AND (? = 0 OR part = ?)
		GROUP BY day, part, variant
		ORDER BY day ASC, part ASC, variant <> '' ASC, variant COLLATE BINARY ASC
	`, q.Day, q.Day, q.Part, q.Part)
	if err != nil {
		return nil, fmt.Errorf("query best timings: %w", err)
	}
	defer rows.Close()

	var out []Best
	for rows.Next() {
		var b Best
		var ns int64
		if err := rows.Scan(&b.Day, &b.Part, &b.Variant, &ns, &b.Runs, &b.RunID); err != nil {
			return nil, fmt.Errorf("scan best timing: %w", err)
		}
		b.Elapsed = time.Duration(ns)
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate best timings: %w", err)
	}
	return out, nil
}

// Timings returns the blocks of one run in execution order.
func (s *Store) Timings(ctx context.Context, runID string) ([]Timing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT day, part, variant, elapsed_ns, ok
		FROM timings
		WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query timings: %w", err)
	}
	defer rows.Close()

	var out []Timing
	for rows.Next() {
		var t Timing
		var ns int64
		if err := rows.Scan(&t.Day, &t.Part, &t.Variant, &ns, &t.OK); err != nil {
			return nil, fmt.Errorf("scan timing: %w", err)
		}
		t.Elapsed = time.Duration(ns)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate timings: %w", err)
	}
	return out, nil
}

// Runs returns the number of stored runs.
func (s *Store) Runs(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count runs: %w", err)
	}
	return n, nil
}
