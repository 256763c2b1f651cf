package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"lockstep/internal/logging"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ecsdemo.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("overlays defined keys only", func(t *testing.T) {
		path := writeConfig(t, "initial_size = 4\nlog_level = \" debug \"\n")
		cfg, err := loadConfig(path, defaultConfig())
		require.NoError(t, err)
		require.Equal(t, 4, cfg.InitialSize)
		require.Equal(t, 1.0, cfg.Strength)
		require.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("explicit zero is kept", func(t *testing.T) {
		path := writeConfig(t, "strength = 0.0\n")
		cfg, err := loadConfig(path, defaultConfig())
		require.NoError(t, err)
		require.Equal(t, 0.0, cfg.Strength)
		require.Equal(t, 100, cfg.InitialSize)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		path := writeConfig(t, "initial_sise = 4\n")
		_, err := loadConfig(path, defaultConfig())
		require.ErrorContains(t, err, "initial_sise")
	})

	t.Run("negative size is rejected", func(t *testing.T) {
		path := writeConfig(t, "initial_size = -1\n")
		_, err := loadConfig(path, defaultConfig())
		require.ErrorContains(t, err, "initial_size")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"), defaultConfig())
		require.ErrorContains(t, err, "load ecsdemo config")
	})
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, config{InitialSize: 2, Strength: 1.5}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	require.Equal(t, []string{"iteration:", "id:", "available:", "sword.strength:", "shield.kind:"}, strings.Fields(lines[0]))
	require.Equal(t, []string{"0", "0", "1", "1.5", "r"}, strings.Fields(lines[1]))
	require.Equal(t, []string{"1", "1", "0", "1.5", "-"}, strings.Fields(lines[2]))
	// the registry doubles here
	require.Equal(t, []string{"2", "2", "1", "1.5", "k"}, strings.Fields(lines[3]))
	require.Equal(t, []string{"3", "3", "0", "1.5", "-"}, strings.Fields(lines[4]))
}

func TestRootCmd(t *testing.T) {
	t.Cleanup(func() { logging.SetGlobalLogger(zerolog.Nop()) })

	path := writeConfig(t, "initial_size = 8\nstrength = 3.0\n")

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--config", path, "--initial-size", "1", "--log-level", "debug"})
	require.NoError(t, cmd.Execute())

	// flag beats file for the size, file beats default for the strength
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, []string{"0", "0", "0", "3", "r"}, strings.Fields(lines[1]))
	require.Contains(t, errOut.String(), "registry storage grown")

	t.Run("bad log level", func(t *testing.T) {
		var errOut bytes.Buffer
		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&errOut)
		cmd.SetArgs([]string{"--log-level", "loud", "--initial-size", "0"})
		require.ErrorContains(t, cmd.Execute(), "configure logging")
		require.Contains(t, errOut.String(), "Error: configure logging")
	})

	// failures before logging is configured still reach the error writer
	for name, args := range map[string][]string{
		"negative size":  {"--initial-size", "-1"},
		"missing config": {"--config", filepath.Join(t.TempDir(), "missing.toml")},
	} {
		t.Run(name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			cmd := newRootCmd()
			cmd.SetOut(&out)
			cmd.SetErr(&errOut)
			cmd.SetArgs(args)

			err := cmd.Execute()
			require.Error(t, err)
			require.Contains(t, errOut.String(), "Error: "+err.Error())
			require.Empty(t, out.String())
		})
	}
}
