package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	require.Equal(t, 500, c.Inlet.X)
	require.Equal(t, 0, c.Inlet.Y)
	require.Equal(t, "-", c.Input)
}

func TestReadConfig(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "json",
			file: "config.json",
			content: `{
				"mode": "development",
				"input": "cave.txt",
				"inlet": {"x": 20, "y": 1},
				"max_drops": 500,
				"timeout": "1m30s"
			}`,
		},
		{
			name: "yaml",
			file: "config.yaml",
			content: "mode: development\n" +
				"input: cave.txt\n" +
				"inlet:\n  x: 20\n  y: 1\n" +
				"max_drops: 500\n" +
				"timeout: 1m30s\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := Default()
			require.NoError(t, ReadConfig(writeFile(t, test.file, test.content), c))
			require.NoError(t, c.Validate())
			require.Equal(t, ModeDevelopment, c.Mode)
			require.True(t, c.Development())
			require.Equal(t, "cave.txt", c.Input)
			require.Equal(t, InletConfig{X: 20, Y: 1}, c.Inlet)
			require.Equal(t, 500, c.MaxDrops)
			require.Equal(t, 90*time.Second, c.Timeout.Duration)
			require.Empty(t, c.LogFile)
		})
	}
}

func TestReadConfigNumericTimeout(t *testing.T) {
	c := Default()
	require.NoError(t, ReadConfig(writeFile(t, "c.json", `{"timeout": 2000000000}`), c))
	require.Equal(t, 2*time.Second, c.Timeout.Duration)
	require.Equal(t, ModeProduction, c.Mode, "missing fields keep their defaults")
}

func TestReadConfigErrors(t *testing.T) {
	c := Default()
	require.Error(t, ReadConfig(filepath.Join(t.TempDir(), "missing.json"), c))
	require.Error(t, ReadConfig(writeFile(t, "bad.json", `{"timeout": true}`), c))
	require.Error(t, ReadConfig(writeFile(t, "bad.yml", "inlet: [1, 2"), c))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"mode", func(c *Config) { c.Mode = "staging" }},
		{"inlet", func(c *Config) { c.Inlet.X = -1 }},
		{"max drops", func(c *Config) { c.MaxDrops = -5 }},
		{"timeout", func(c *Config) { c.Timeout.Duration = -time.Second }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := Default()
			test.mutate(c)
			require.Error(t, c.Validate())
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	c := Default()
	err := c.ApplyOverrides([]string{"inlet.x=7", "max_drops=42", "timeout=250ms", "log_file=cave.log"})
	require.NoError(t, err)
	require.Equal(t, 7, c.Inlet.X)
	require.Equal(t, 0, c.Inlet.Y)
	require.Equal(t, 42, c.MaxDrops)
	require.Equal(t, 250*time.Millisecond, c.Timeout.Duration)
	require.Equal(t, "cave.log", c.LogFile)
	require.Equal(t, ModeProduction, c.Mode)
}

func TestApplyOverridesErrors(t *testing.T) {
	for _, pairs := range [][]string{
		{"max_drops"},
		{"=5"},
		{"no_such_key=1"},
		{"max_drops=many"},
	} {
		c := Default()
		require.Error(t, c.ApplyOverrides(pairs), "%v", pairs)
	}
}

func TestDevelopmentEnv(t *testing.T) {
	t.Setenv("DEVELOPMENT", "1")
	require.True(t, Default().Development())

	t.Setenv("DEVELOPMENT", "0")
	require.False(t, Default().Development())
}
