package input

import (
	"bytes"
	"strings"
)

// DefaultByteSeparator splits byte input when no separator is configured.
const DefaultByteSeparator byte = '\n'

// Lines splits text into lines. A final line terminator does not produce an
// empty trailing line, and a "\r" before each "\n" is dropped.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Tokens splits text for parsing. With a non-empty sep the text is trimmed
// and split on sep once; otherwise it is split into lines.
func Tokens(text, sep string) []string {
	if sep != "" {
		return strings.Split(strings.TrimSpace(text), sep)
	}
	return Lines(text)
}

// ParseSequence parses every token of text (see Tokens) with parse.
// The first failure is returned as a *ParseError.
func ParseSequence[T any](text, sep string, parse func(string) (T, error)) ([]T, error) {
	tokens := Tokens(text, sep)
	out := make([]T, 0, len(tokens))
	for i, tok := range tokens {
		v, err := parse(tok)
		if err != nil {
			return nil, &ParseError{Index: i, Token: tok, Type: typeName[T](), Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}

// SplitBytes splits raw on sep, removing exactly one trailing sep first.
// Segments alias raw; nothing is copied. Empty input has no segments.
func SplitBytes(raw []byte, sep byte) [][]byte {
	if len(raw) == 0 {
		return nil
	}
	if raw[len(raw)-1] == sep {
		raw = raw[:len(raw)-1]
	}
	return bytes.Split(raw, []byte{sep})
}
