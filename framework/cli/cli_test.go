package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-registry/framework/cli"
)

func writeValues(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "values.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := cli.NewRootCmd("test")
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestInspect_Table(t *testing.T) {
	path := writeValues(t, "region: eu\nport: 8080\n")

	out, err := run(t, "inspect", "--values", path)
	require.NoError(t, err)

	assert.Contains(t, out, "NAME")
	assert.Regexp(t, `port\s+int\s+8080`, out)
	assert.Regexp(t, `region\s+string\s+eu`, out)
}

func TestInspect_JSON(t *testing.T) {
	path := writeValues(t, "region: eu\n")

	out, err := run(t, "inspect", "--values", path, "--json")
	require.NoError(t, err)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "region", entries[0]["name"])
	assert.Equal(t, "string", entries[0]["type"])
	assert.Equal(t, "eu", entries[0]["value"])
}

func TestInspect_Empty(t *testing.T) {
	path := writeValues(t, "")

	out, err := run(t, "inspect", "--values", path)
	require.NoError(t, err)
	assert.Contains(t, out, "No bindings.")
}

func TestInspect_RequiresValues(t *testing.T) {
	_, err := run(t, "inspect")
	assert.Error(t, err)
}

func TestInspect_BadFile(t *testing.T) {
	_, err := run(t, "inspect", "--values", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "test")
}
