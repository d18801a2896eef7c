package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFileMissingUsesDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadUsesDefaultPath(t *testing.T) {
	path := writeConfig(t, "[control]\nleft_title = \"Customers\"\n")
	t.Setenv("FORMCONTROLS_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "Customers", cfg.Control.LeftTitle)
	require.Equal(t, Default().Control.RightTitle, cfg.Control.RightTitle)
}

func TestLoadFileReadsControlSection(t *testing.T) {
	path := writeConfig(t, `
[control]
left_options = "A, B, C"
left_title = "Customers"
header_color = "#eb4034"
read_only = true

[log]
level = "debug"
format = "json"
`)
	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "A, B, C", cfg.Control.LeftOptions)
	require.Equal(t, "Customers", cfg.Control.LeftTitle)
	require.Equal(t, "Selected", cfg.Control.RightTitle)
	require.Equal(t, "#eb4034", cfg.Control.HeaderColor)
	require.True(t, cfg.Control.ReadOnly)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFileEnvOverride(t *testing.T) {
	t.Setenv("FORMCONTROLS_CONTROL_RIGHT_TITLE", "Chosen")
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	require.Equal(t, "Chosen", cfg.Control.RightTitle)
}

func TestLoadFileRejectsBadColor(t *testing.T) {
	path := writeConfig(t, `
[control]
header_color = "red"
`)
	_, err := LoadFile(path)
	require.ErrorContains(t, err, "control.header_color")
}

func TestLoadFileRejectsMalformedFile(t *testing.T) {
	path := writeConfig(t, "[control\nleft_title = ")
	_, err := LoadFile(path)
	require.ErrorContains(t, err, "read config")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := Default()
	want.Control.LeftOptions = "X, Y"
	want.Control.HeaderColor = "#123456"
	require.NoError(t, Save(want, path))

	got, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
