package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evenfurther/aoc/internal/history"
)

func TestHistory_RoundTrip(t *testing.T) {
	cfg := project(t, "")
	db := filepath.Join(t.TempDir(), "history.db")
	app := testApp()
	app.IDs = &history.SequenceGenerator{}

	for range 2 {
		res := execute(t, NewRootCommand(app), "--config", cfg, "--history", db, "-a")
		require.Equal(t, ExitSuccess, res.code, res.stderr)
	}

	res := execute(t, NewRootCommand(app), "--config", cfg, "history", "--history", db)
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, ""+
		"Day 1 - part 1: 1.50 µs (best of 2 runs)\n"+
		"Day 1 - part 2: 1.50 µs (best of 2 runs)\n"+
		"Day 1 - part 2 — fast: 1.50 µs (best of 2 runs)\n"+
		"Day 2 - part 1: 1.50 µs (best of 2 runs)\n",
		res.stdout)

	st, err := history.Open(db)
	require.NoError(t, err)
	defer st.Close()
	timings, err := st.Timings(t.Context(), "run-2")
	require.NoError(t, err)
	assert.Len(t, timings, 4)
}

func TestHistory_FromConfig(t *testing.T) {
	cfg := project(t, "history: timings.db\n")
	app := testApp()
	app.IDs = &history.SequenceGenerator{}

	res := execute(t, NewRootCommand(app), "--config", cfg, "-d", "2")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.FileExists(t, filepath.Join(filepath.Dir(cfg), "timings.db"))

	res = execute(t, NewRootCommand(app), "--config", cfg, "history", "-d", "2")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "Day 2 - part 1: 1.50 µs (best of 1 run)\n", res.stdout)
}

func TestHistory_JSON(t *testing.T) {
	cfg := project(t, "")
	db := filepath.Join(t.TempDir(), "history.db")
	app := testApp()
	app.IDs = &history.SequenceGenerator{}

	res := execute(t, NewRootCommand(app), "--config", cfg, "--history", db, "-d", "1")
	require.Equal(t, ExitSuccess, res.code, res.stderr)

	res = execute(t, NewRootCommand(app), "--config", cfg, "--history", db, "--format", "json", "history", "-p", "2")
	require.Equal(t, ExitSuccess, res.code, res.stderr)

	var resp struct {
		Status string         `json:"status"`
		Data   []history.Best `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "", resp.Data[0].Variant)
	assert.Equal(t, "fast", resp.Data[1].Variant)
	assert.Equal(t, "run-1", resp.Data[1].RunID)
}

func TestHistory_Empty(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")

	res := execute(t, NewRootCommand(testApp()), "--config", project(t, ""), "history", "--history", db)

	assert.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "No timings recorded.\n", res.stdout)
}

func TestHistory_NotConfigured(t *testing.T) {
	res := execute(t, NewRootCommand(testApp()), "--config", project(t, ""), "history")

	assert.Equal(t, ExitCommandError, res.code)
	assert.Contains(t, res.stderr, "no history database configured")
}

func TestHistory_NotConfiguredJSON(t *testing.T) {
	res := execute(t, NewRootCommand(testApp()), "--config", project(t, ""), "--format", "json", "history")

	assert.Equal(t, ExitCommandError, res.code)
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeNoHistory, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "no history database configured")
}
