package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test.
// Equivalent to t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

// execute runs the CLI with args against stdin and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRunFromStdin(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "select * from foo where id = 1;", "run")
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM foo WHERE id = 1;", out)
}

func TestRunRespectsBlacklistFlag(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "select name from users;", "run", "--blacklist", "name")
	require.NoError(t, err)
	assert.Equal(t, "SELECT name FROM users;", out)
}

func TestRunWithDialectFlag(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "EXECUTE 'select 1'", "run", "--dialect", "postgres")
	require.NoError(t, err)
	assert.Equal(t, "EXECUTE 'SELECT 1'", out)
}

func TestRunRejectsUnknownDialect(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t, "select 1", "run", "--dialect", "oracle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown dialect")
}

func TestRunWritesFilesInPlace(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "q.sql")
	require.NoError(t, os.WriteFile(path, []byte("select 1 from t;\n"), 0644))

	_, err := execute(t, "", "run", "--write", path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1 FROM t;\n", string(content))
}

func TestRegionFromStdin(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "select 1; select 2;", "region", "--begin", "0", "--end", "9")
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1; select 2;", out)
}

func TestConfigFileBlacklist(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sqlcaps.yaml"),
		[]byte("blacklist:\n  - from\n"), 0644))

	out, err := execute(t, "select x from t;", "run")
	require.NoError(t, err)
	assert.Equal(t, "SELECT x from t;", out)
}

func TestDialectsJSON(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "", "dialects", "--format", "json")
	require.NoError(t, err)

	var infos []struct {
		Name     string `json:"name"`
		Keywords int    `json:"keywords"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &infos))

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name)
		assert.Greater(t, info.Keywords, 0)
	}
	assert.Contains(t, names, "ansi")
	assert.Contains(t, names, "postgres")
	assert.Contains(t, names, "redis")
}

func TestVersionCommand(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sqlcaps")
	assert.Contains(t, out, Version)
}
