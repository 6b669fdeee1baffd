package input

import (
	"fmt"
	"reflect"
)

// AcquisitionError reports that the input of a day could not be read.
type AcquisitionError struct {
	Day  int
	Path string
	Err  error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("cannot read input for day %d from %s: %v", e.Day, e.Path, e.Err)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}

// DecodeError reports input that is not valid UTF-8.
type DecodeError struct {
	Day    int
	Offset int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed UTF-8 in input for day %d at byte %d", e.Day, e.Offset)
}

// ParseError identifies the first token that failed to parse.
type ParseError struct {
	// Index is the zero-based position of the token.
	Index int
	Token string
	// Type is the name of the target type.
	Type string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse token %d (%q) as %s: %v", e.Index, e.Token, e.Type, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
