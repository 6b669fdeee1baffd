package runner

import "time"

// Clock supplies the instants used to time entries.
//
// Tests use a stepping clock so that reports with timing are reproducible.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}
