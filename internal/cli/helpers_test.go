package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/evenfurther/aoc/internal/adapter"
	"github.com/evenfurther/aoc/internal/input"
	"github.com/evenfurther/aoc/internal/registry"
	"github.com/evenfurther/aoc/internal/testutil"
)

// december2 is the fixed "today" of the tests.
var december2 = time.Date(2015, time.December, 2, 5, 0, 0, 0, time.UTC)

func sampleRegister(reg *registry.Registry, l *input.Loader) error {
	return adapter.Register(reg, l,
		adapter.Binding{
			Annotation: adapter.Annotation{Day: 1, Part: 1},
			Input:      adapter.InputText,
			Output:     adapter.OutputValue,
			Func:       func(s string) int { return strings.Count(s, "(") },
		},
		adapter.Binding{
			Annotation: adapter.Annotation{Day: 1, Part: 2},
			Input:      adapter.InputLines,
			Output:     adapter.OutputValue,
			Func:       func(lines []string) int { return len(lines) },
		},
		adapter.Binding{
			Annotation: adapter.Annotation{Day: 1, Part: 2, Variant: "fast"},
			Input:      adapter.InputNone,
			Output:     adapter.OutputValue,
			Func:       func() int { return 1 },
		},
		adapter.Binding{
			Annotation: adapter.Annotation{Day: 2, Part: 1, Separator: ","},
			Input:      adapter.InputParsed,
			Output:     adapter.OutputValue,
			Func: func(xs []int) int {
				total := 0
				for _, x := range xs {
					total += x
				}
				return total
			},
		},
	)
}

// project writes inputs and an aoc.yaml pointing at them, and returns the
// config path.
func project(t *testing.T, extra string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "input"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "input", "day1.txt"), []byte("(()\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "input", "day2.txt"), []byte("3,9\n"), 0o644))
	path := filepath.Join(dir, "aoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input:\n  dir: input\n"+extra), 0o644))
	return path
}

func testApp() App {
	return App{
		Name:     "aoc",
		Register: sampleRegister,
		Now:      func() time.Time { return december2 },
		Clock:    testutil.NewStepClock(1500 * time.Nanosecond),
	}
}

type result struct {
	stdout string
	stderr string
	code   int
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	code := Execute(cmd, args)
	return result{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

func failingRegister(*registry.Registry, *input.Loader) error {
	return &adapter.GenerationError{Annotation: "day26, part1", Message: "day out of range"}
}

