package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evenfurther/aoc/internal/input"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultFile), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "input", cfg.Input.Dir)
	assert.Equal(t, "day%d.txt", cfg.Input.Pattern)
}

func TestLoad_MissingRequiredFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "custom.yaml"), true)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_ResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(`
input:
  dir: inputs
  pattern: day%02d.txt
history: .aoc/history.db
timing: true
`), 0o644))

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Input:   InputConfig{Dir: filepath.Join(dir, "inputs"), Pattern: "day%02d.txt"},
		History: filepath.Join(dir, ".aoc", "history.db"),
		Timing:  true,
	}, cfg)
}

func TestParse_Partial(t *testing.T) {
	cfg, err := Parse([]byte("timing: true\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Timing)
	assert.Equal(t, input.DefaultDir, cfg.Input.Dir)
	assert.Equal(t, input.DefaultPattern, cfg.Input.Pattern)
	assert.Empty(t, cfg.History)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"unknown key", "inputs:\n  dir: x\n", "field inputs not found"},
		{"no verb", "input:\n  pattern: day.txt\n", "exactly one %d, found 0"},
		{"two verbs", "input:\n  pattern: day%d-%d.txt\n", "exactly one %d, found 2"},
		{"string verb", "input:\n  pattern: day%s.txt\n", "only %d is allowed"},
		{"incomplete verb", "input:\n  pattern: day%d%\n", "incomplete verb"},
		{"path", "input:\n  pattern: sub/day%d.txt\n", "not a path"},
		{"bad yaml", "input: [\n", "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidatePattern_Accepts(t *testing.T) {
	for _, p := range []string{"day%d.txt", "%02d", "day%d-100%%.txt", "%-3d.in"} {
		assert.NoError(t, validatePattern(p), p)
	}
}

func TestConfig_Loader(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day07.txt"), []byte("seven\n"), 0o644))

	cfg := Config{Input: InputConfig{Dir: dir, Pattern: "day%02d.txt"}}
	text, err := cfg.Loader("").Text(7)
	require.NoError(t, err)
	assert.Equal(t, "seven\n", text)

	text, err = cfg.Loader("literal").Text(7)
	require.NoError(t, err)
	assert.Equal(t, "literal\n", text)
}
