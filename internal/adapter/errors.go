package adapter

import "fmt"

// GenerationError reports an annotation or signature that cannot produce an
// entry point. It is fatal: it is raised before any entry runs.
type GenerationError struct {
	// Annotation is the marker text, e.g. "day26, part1".
	Annotation string

	// Pos locates the marker ("day3.go:12") when it comes from source.
	Pos string

	Message string
}

func (e *GenerationError) Error() string {
	if e.Pos != "" {
		return fmt.Sprintf("%s: invalid aoc annotation %q: %s", e.Pos, e.Annotation, e.Message)
	}
	return fmt.Sprintf("invalid aoc annotation %q: %s", e.Annotation, e.Message)
}

// NoOutputError is returned when an optional-output entry yields nothing.
type NoOutputError struct {
	Day     int
	Part    int
	Variant string
}

func (e *NoOutputError) Error() string {
	if e.Variant != "" {
		return fmt.Sprintf("no output for day %d part %d (variant %q)", e.Day, e.Part, e.Variant)
	}
	return fmt.Sprintf("no output for day %d part %d", e.Day, e.Part)
}
