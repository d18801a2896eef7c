package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args []string, stdin string) (string, error) {
	t.Helper()
	t.Setenv("FORMCONTROLS_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestApplyPrintsEveryChange(t *testing.T) {
	script := writeFile(t, "scenario.txt", `
set leftOptions A, B, C
move available B
moveall available
set leftOptions X, Y
`)
	out, err := runCLI(t, []string{"apply", script}, "")
	require.NoError(t, err)
	require.Equal(t, "1\t\n2\tB\n3\tB,A,C\n4\t\n", out)
}

func TestApplyReadsStdin(t *testing.T) {
	out, err := runCLI(t, []string{"apply", "--final"}, "set leftOptions A, B\nmove left B\n")
	require.NoError(t, err)
	require.Equal(t, "B\n", out)
}

func TestApplySeedsFromConfig(t *testing.T) {
	cfg := writeFile(t, "config.toml", `
[control]
left_options = "Red, Green"
`)
	out, err := runCLI(t, []string{"--config", cfg, "apply", "-"}, "moveall available\n")
	require.NoError(t, err)
	require.Equal(t, "1\t\n2\tRed,Green\n", out)
}

func TestApplyReadOnlyConfigRejectsMoves(t *testing.T) {
	cfg := writeFile(t, "config.toml", `
[control]
left_options = "A"
read_only = true
`)
	_, err := runCLI(t, []string{"--config", cfg, "apply"}, "moveall available\n")
	require.ErrorContains(t, err, "read-only")
}

func TestApplyReportsParseErrors(t *testing.T) {
	_, err := runCLI(t, []string{"apply"}, "set leftOptions A\nshuffle\n")
	require.ErrorContains(t, err, "parse script")
	require.ErrorContains(t, err, "line 2")

	_, err = runCLI(t, []string{"apply", filepath.Join(t.TempDir(), "missing.txt")}, "")
	require.ErrorContains(t, err, "open script")
}

func TestMetaTable(t *testing.T) {
	out, err := runCLI(t, []string{"meta"}, "")
	require.NoError(t, err)
	require.Contains(t, out, "Dual Listbox v2 1.1.0 (Web Integrations)")
	require.Contains(t, out, "Property")
	require.Contains(t, out, "leftOptions")
	require.Contains(t, out, "Events: ntx-value-change")
}

func TestMetaJSON(t *testing.T) {
	out, err := runCLI(t, []string{"meta", "--json"}, "")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Equal(t, "1.1.0", decoded["version"])
	require.Contains(t, decoded["properties"], "rightOut")
}

func TestBadConfigFails(t *testing.T) {
	cfg := writeFile(t, "config.toml", "[control]\nheader_color = \"blue\"\n")
	_, err := runCLI(t, []string{"--config", cfg, "apply"}, "")
	require.ErrorContains(t, err, "header_color")
}

func TestConfigInitThenValidate(t *testing.T) {
	target := filepath.Join(t.TempDir(), "formcontrols", "config.toml")
	out, err := runCLI(t, []string{"config", "init", "--path", target}, "")
	require.NoError(t, err)
	require.Contains(t, out, "Wrote configuration")
	require.FileExists(t, target)

	_, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	require.ErrorContains(t, err, "already exists")

	out, err = runCLI(t, []string{"--config", target, "config", "validate"}, "")
	require.NoError(t, err)
	require.Contains(t, out, "Header color: #f0f0f0")
	require.Contains(t, out, "Configuration valid")
}
