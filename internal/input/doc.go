// Package input loads raw puzzle input for a numbered day and splits it into
// the shapes solution functions ask for.
//
// A Loader is built once per run from a Config. The override it carries is
// fixed at construction and shared by every later call, so no synchronization
// is needed once registration starts.
//
// # Sources
//
// Without an override, day N is read from Config.Dir joined with
// fmt.Sprintf(Config.Pattern, N), which defaults to input/dayN.txt.
//
// With an override, the override is first tried as a file path. If that file
// cannot be read, the override string itself becomes the input and a single
// trailing newline is appended, so `-i "3,9"` behaves like a one-line file.
//
// # Splitting
//
//   - Lines: line-based split, trailing newline dropped, "\r" stripped.
//   - Tokens: with a separator, the whole text is trimmed and split once on
//     it; without one, Lines is used.
//   - SplitBytes: zero-copy split of raw bytes on a separator byte, dropping
//     exactly one trailing separator.
//   - ParseSequence: Tokens followed by a per-token parse; the first failure
//     is reported as a ParseError naming the token.
package input
