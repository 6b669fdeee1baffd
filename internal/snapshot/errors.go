package snapshot

import "fmt"

// ReferenceError reports a reference file that cannot be read. It is a hard
// error, distinct from a mismatch.
type ReferenceError struct {
	Path string
	Err  error
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("cannot read reference %s: %v", e.Path, e.Err)
}

func (e *ReferenceError) Unwrap() error {
	return e.Err
}
