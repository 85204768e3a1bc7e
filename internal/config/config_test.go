package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the user's own config file and environment out of the tests.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("MINES_CONFIG", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, Board{Rows: 9, Cols: 9, Mines: 10}, c.Board)
	assert.Equal(t, UI{Color: true, Auto: true}, c.UI)
	assert.Equal(t, Log{Level: "info", MaxSize: 10, MaxBackups: 3, MaxAge: 28}, c.Log)
	assert.False(t, c.Development)
	assert.Empty(t, c.Profile)
}

func TestLoadCommandLine(t *testing.T) {
	isolate(t)

	c, err := Load([]string{
		"--no-color", "--no-auto", "--plain", "--seed", "42",
		"--log-file", "/tmp/mines.log", "--log-level", "warn", "--debug",
		"16", "30", "99",
	})
	require.NoError(t, err)
	assert.Equal(t, Board{Rows: 16, Cols: 30, Mines: 99, Seed: 42}, c.Board)
	assert.Equal(t, UI{Color: false, Auto: false, Plain: true}, c.UI)
	assert.Equal(t, "/tmp/mines.log", c.Log.File)
	assert.Equal(t, "warn", c.Log.Level)
	assert.True(t, c.Development)
}

func TestLoadNegatedFlagFalse(t *testing.T) {
	isolate(t)

	c, err := Load([]string{"--no-color=false"})
	require.NoError(t, err)
	assert.True(t, c.UI.Color)
}

func TestLoadPositional(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"one", []string{"9"}, ErrPositional},
		{"two", []string{"9", "9"}, ErrPositional},
		{"four", []string{"9", "9", "10", "1"}, ErrPositional},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(test.args)
			assert.ErrorIs(t, err, test.want)
		})
	}

	_, err := Load([]string{"9", "nine", "10"})
	assert.ErrorContains(t, err, "cols must be an integer")

	// negative values are the board's business, not the config's
	c, err := Load([]string{"--", "-1", "5", "0"})
	require.NoError(t, err)
	assert.Equal(t, -1, c.Board.Rows)
}

func TestLoadHelp(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	usageOutput = &out
	t.Cleanup(func() { usageOutput = os.Stderr })

	_, err := Load([]string{"--help"})
	assert.ErrorIs(t, err, pflag.ErrHelp)
	assert.Contains(t, out.String(), "usage: mines [flags] [rows cols mines]")
	assert.Contains(t, out.String(), "--no-color")
}

func TestLoadFileAndEnv(t *testing.T) {
	home := isolate(t)

	dir := filepath.Join(home, ".config", "mines")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[board]
rows = 16
cols = 16
mines = 40

[ui]
color = false
`), 0o644))

	t.Setenv("MINES_BOARD_MINES", "50")

	c, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 16, c.Board.Rows)
	assert.Equal(t, 16, c.Board.Cols)
	assert.Equal(t, 50, c.Board.Mines)
	assert.False(t, c.UI.Color)

	c, err = Load([]string{"8", "8", "8"})
	require.NoError(t, err)
	assert.Equal(t, 8, c.Board.Mines)
}

func TestLoadExplicitConfigMissing(t *testing.T) {
	isolate(t)
	t.Setenv("MINES_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	_, err := Load(nil)
	assert.ErrorContains(t, err, "read config")
}

func TestFields(t *testing.T) {
	isolate(t)

	c, err := Load([]string{"--seed", "7"})
	require.NoError(t, err)
	f := c.Fields()
	assert.Equal(t, 9, f["rows"])
	assert.Equal(t, uint64(7), f["seed"])
	assert.Equal(t, true, f["color"])
}
