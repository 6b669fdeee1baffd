// Package history stores entry timings in SQLite so that runs can be
// compared over time.
//
// Each runner invocation opens a Run identified by a UUIDv7. The Run
// implements runner.Recorder and appends one row per executed block. Best
// answers "what is the fastest successful time for each (day, part, variant)".
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait up to 5s for locks
//   - foreign_keys=ON: timings must reference a run
//
// Queries order by (day, part), main entry first, then variant name, so
// listings are stable.
package history
