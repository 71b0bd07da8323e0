package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msgdesk/internal/config"
	"msgdesk/internal/source"
)

const fixture = `
[[messages]]
id = 1
name = "Alice"
email = "alice@example.com"
body = "Hello there"
submitted_at = "2024-01-15 14:30"
status = "new"

[[messages]]
id = 2
name = "Bob"
email = "bob@example.org"
body = "Need help with billing"
submitted_at = "2024-01-14 09:15"
status = "read"

[[messages]]
id = 3
name = "Carol"
email = "carol@example.com"
body = "hello again"
status = "replied"
`

func setup(t *testing.T) (dataFile, configPath string) {
	t.Helper()
	t.Setenv(config.EnvDataFile, "")
	t.Setenv(config.EnvLanguage, "")
	t.Setenv(config.EnvDefaultFilter, "")

	dir := t.TempDir()
	dataFile = filepath.Join(dir, "messages.toml")
	require.NoError(t, os.WriteFile(dataFile, []byte(fixture), 0644))
	return dataFile, filepath.Join(dir, "config.toml")
}

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestQueryTable(t *testing.T) {
	data, cfg := setup(t)

	code, out, _ := runCLI(t, "-config", cfg, "-data", data, "-q", "HELLO")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "Carol")
	assert.NotContains(t, out, "Bob")
	assert.Less(t, strings.Index(out, "Alice"), strings.Index(out, "Carol"), "load order is kept")
}

func TestQueryWithStatus(t *testing.T) {
	data, cfg := setup(t)

	code, out, _ := runCLI(t, "-config", cfg, "-data", data, "-q", "hello", "-status", "replied")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "Carol")
	assert.NotContains(t, out, "Alice")

	code, out, _ = runCLI(t, "-config", cfg, "-data", data, "-q", "zzz")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "no messages\n", out)
}

func TestShowMessage(t *testing.T) {
	data, cfg := setup(t)

	code, out, _ := runCLI(t, "-config", cfg, "-data", data, "-id", "2")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "Name:      Bob")
	assert.Contains(t, out, "Status:    read")
	assert.Contains(t, out, "Need help with billing")
}

func TestUnknownIDFails(t *testing.T) {
	data, cfg := setup(t)

	code, _, errOut := runCLI(t, "-config", cfg, "-data", data, "-id", "99")
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "no message with id 99")
}

func TestStats(t *testing.T) {
	data, cfg := setup(t)

	code, out, _ := runCLI(t, "-config", cfg, "-data", data, "-stats")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "total    3\nnew      1\nread     1\nreplied  1\n", out)
}

func TestTOMLOutputRoundTrips(t *testing.T) {
	data, cfg := setup(t)

	code, out, _ := runCLI(t, "-config", cfg, "-data", data, "-status", "new", "-format", "toml")
	require.Equal(t, exitOK, code)

	messages, err := source.DecodeTOML(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "Alice", messages[0].Name)
}

func TestBuiltinDatasetByDefault(t *testing.T) {
	_, cfg := setup(t)

	code, out, _ := runCLI(t, "-config", cfg, "-stats")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "total    5")
}

func TestErrors(t *testing.T) {
	data, cfg := setup(t)

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"bad status", []string{"-config", cfg, "-data", data, "-status", "archived"}, exitUsage},
		{"bad format", []string{"-config", cfg, "-data", data, "-format", "xml"}, exitUsage},
		{"unknown flag", []string{"-nope"}, exitUsage},
		{"missing data file", []string{"-config", cfg, "-data", filepath.Join(t.TempDir(), "absent.toml")}, exitError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, _ := runCLI(t, tt.args...)
			assert.Equal(t, tt.code, code)
		})
	}
}
