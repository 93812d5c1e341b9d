package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cli := NewCLI()
	cli.SetOut(&out)
	cli.SetErr(&out)
	cli.SetArgs(args)
	err := cli.Execute()
	return out.String(), err
}

func writeSchema(t *testing.T, schema string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, os.WriteFile(path, []byte(schema), 0o644))
	return path
}

func TestCompileCommand(t *testing.T) {
	path := writeSchema(t, `{"type": "object", "properties": {"ok": {"type": "boolean"}}}`)

	out, err := run(t, "compile", path)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "root ::= "), "got: %q", out)
	assert.Contains(t, out, `boolean ::= "true" | "false"`)
}

func TestCompileCommandLarkFormat(t *testing.T) {
	path := writeSchema(t, `{"type": "string", "enum": ["x"]}`)

	out, err := run(t, "compile", "--format", "lark", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "start: root\n"), "got: %q", out)
}

func TestCompileCommandUnknownFormat(t *testing.T) {
	path := writeSchema(t, `{"type": "null"}`)

	_, err := run(t, "compile", "--format", "nope", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "nope"`)
	assert.Contains(t, err.Error(), "known formats")
}

func TestCompileCommandBadSchema(t *testing.T) {
	path := writeSchema(t, `{"type": "object", "properties": {"x": {"type": "funky"}}}`)

	_, err := run(t, "compile", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported type")
}

func TestFormatsCommand(t *testing.T) {
	out, err := run(t, "formats")
	require.NoError(t, err)
	assert.Equal(t, "gbnf\nlark\n", out)
}
