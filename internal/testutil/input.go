// Package testutil provides deterministic fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/evenfurther/aoc/internal/input"
)

// Inputs writes one input file per day into a fresh temporary directory and
// returns a loader reading from it.
func Inputs(t *testing.T, days map[int]string) *input.Loader {
	t.Helper()
	dir := t.TempDir()
	l := input.NewLoader(input.Config{Dir: dir})
	for day, content := range days {
		if err := os.WriteFile(l.Path(day), []byte(content), 0o644); err != nil {
			t.Fatalf("write input for day %d: %v", day, err)
		}
	}
	return l
}

// WriteFile writes content to name inside a fresh temporary directory and
// returns the full path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
