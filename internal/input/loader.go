package input

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

const (
	// DefaultDir is the directory holding per-day input files.
	DefaultDir = "input"

	// DefaultPattern names the file of a day inside the input directory.
	DefaultPattern = "day%d.txt"
)

// Config describes where a Loader finds its input.
type Config struct {
	// Override replaces the input of every day when non-empty.
	// It is a file path, or literal input if no such file can be read.
	Override string

	// Dir is the directory of per-day files (DefaultDir when empty).
	Dir string

	// Pattern is a fmt pattern with a single %d for the day
	// (DefaultPattern when empty).
	Pattern string
}

// Loader reads puzzle input. It is immutable after construction and safe
// for concurrent use.
type Loader struct {
	cfg Config
}

// NewLoader creates a Loader, filling in defaults for empty fields.
func NewLoader(cfg Config) *Loader {
	if cfg.Dir == "" {
		cfg.Dir = DefaultDir
	}
	if cfg.Pattern == "" {
		cfg.Pattern = DefaultPattern
	}
	return &Loader{cfg: cfg}
}

// Config returns the effective configuration.
func (l *Loader) Config() Config {
	return l.cfg
}

// Path returns the file that holds the input of day when no override is set.
func (l *Loader) Path(day int) string {
	return filepath.Join(l.cfg.Dir, fmt.Sprintf(l.cfg.Pattern, day))
}

// Bytes returns the raw input of day.
func (l *Loader) Bytes(day int) ([]byte, error) {
	if l.cfg.Override != "" {
		data, err := os.ReadFile(l.cfg.Override)
		if err != nil {
			literal := make([]byte, 0, len(l.cfg.Override)+1)
			literal = append(literal, l.cfg.Override...)
			return append(literal, '\n'), nil
		}
		return data, nil
	}

	path := l.Path(day)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &AcquisitionError{Day: day, Path: path, Err: err}
	}
	return data, nil
}

// Text returns the input of day as validated UTF-8 text.
// A leading byte order mark is removed.
func (l *Loader) Text(day int) (string, error) {
	raw, err := l.Bytes(day)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", &DecodeError{Day: day, Offset: firstInvalid(raw)}
	}
	text, err := unicode.UTF8BOM.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode input for day %d: %w", day, err)
	}
	return string(text), nil
}

// firstInvalid returns the byte offset of the first invalid UTF-8 sequence.
func firstInvalid(raw []byte) int {
	for i := 0; i < len(raw); {
		r, size := utf8.DecodeRune(raw[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(raw)
}
