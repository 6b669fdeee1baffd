package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand(testApp())
	require.NotNil(t, cmd)
	assert.Equal(t, "aoc", cmd.Use)
	assert.Contains(t, cmd.Long, "today's day of month")
}

func TestRootCommand_DefaultName(t *testing.T) {
	cmd := NewRootCommand(App{Register: sampleRegister})
	assert.Equal(t, "aoc", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(testApp())

	for _, name := range []string{"check", "history"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestRunFlags(t *testing.T) {
	cmd := NewRootCommand(testApp())

	shorthands := map[string]string{
		"all":       "a",
		"day":       "d",
		"part":      "p",
		"timing":    "t",
		"main-only": "m",
		"input":     "i",
	}
	for name, short := range shorthands {
		flag := cmd.Flags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, short, flag.Shorthand, name)
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand(testApp())

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "aoc.yaml", configFlag.DefValue)

	require.NotNil(t, cmd.PersistentFlags().Lookup("history"))
}

func TestInvalidFormat(t *testing.T) {
	res := execute(t, NewRootCommand(testApp()), "--format", "xml", "--config", project(t, ""))
	assert.Equal(t, ExitCommandError, res.code)
	assert.Contains(t, res.stderr, `invalid format "xml"`)
}
