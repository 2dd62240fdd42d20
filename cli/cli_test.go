package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/odatauri/cli/cmd"
	"github.com/ardnew/odatauri/odata"
	"github.com/ardnew/odatauri/pkg"
)

func TestMain(m *testing.M) {
	root, err := os.MkdirTemp("", "odatauri-cli-test-*")
	if err != nil {
		panic(err)
	}

	os.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	os.Setenv("XDG_CACHE_HOME", filepath.Join(root, "cache"))

	code := m.Run()

	os.RemoveAll(root)
	os.Exit(code)
}

// exited is raised by testExit to stop kong after it requests an exit.
type exited int

func testExit(code int) { panic(exited(code)) }

func runCLI(t *testing.T, stdin string, args ...string) (out string, code int, err error) {
	t.Helper()

	var buf bytes.Buffer

	code = -1

	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exited)
			if !ok {
				panic(r)
			}

			code, out = int(c), buf.String()
		}
	}()

	err = run(context.Background(), testExit, strings.NewReader(stdin), &buf, args)

	return buf.String(), code, err
}

func TestRunDefaultParse(t *testing.T) {
	out, _, err := runCLI(t, "", "People?$top=2")
	require.NoError(t, err)
	assert.Equal(t, "ok "+odata.RuleRelativeURI+"\n", out)
}

func TestRunParseStdin(t *testing.T) {
	out, _, err := runCLI(t, "OData-Version: 4.0\nX-Custom: 1\n", "parse", "-r", odata.RuleHeader, "-")
	require.ErrorIs(t, err, cmd.ErrParse)
	assert.True(t, strings.HasPrefix(out, "ok header\n"))
	assert.Contains(t, out, "column")
}

func TestRunSourceFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs.txt")
	require.NoError(t, os.WriteFile(path, []byte("People\nAirports\n"), 0o600))

	out, _, err := runCLI(t, "", "--source", path, "parse")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("ok "+odata.RuleRelativeURI+"\n", 2), out)
}

func TestRunRules(t *testing.T) {
	out, _, err := runCLI(t, "", "rules", "odataUri")
	require.NoError(t, err)
	assert.Equal(t, odata.RuleURI, strings.Fields(out)[0])
}

func TestRunFmtText(t *testing.T) {
	out, _, err := runCLI(t, "People('x')\n", "fmt", "-")
	require.NoError(t, err)
	assert.Equal(t, "People('x')\n", out)
}

func TestRunVersion(t *testing.T) {
	out, code, _ := runCLI(t, "", "--version")
	assert.Zero(t, code)

	v := pkg.SemVer()
	require.NotNil(t, v)
	assert.Contains(t, out, v.String())
	assert.Equal(t, v.String(), version())
}

func TestRunConfigFile(t *testing.T) {
	path := configPath(baseConfig + ".yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("rule: header\n"), 0o600))

	t.Cleanup(func() { os.Remove(path) })

	out, _, err := runCLI(t, "", "parse", "OData-Version: 4.0")
	require.NoError(t, err)
	assert.Equal(t, "ok header\n", out)

	// Flags override the file.
	out, _, err = runCLI(t, "", "parse", "-r", odata.RuleRelativeURI, "People")
	require.NoError(t, err)
	assert.Equal(t, "ok "+odata.RuleRelativeURI+"\n", out)
}

func TestRunInit(t *testing.T) {
	path := configPath(baseConfig + ".yaml")

	t.Cleanup(func() { os.Remove(path) })

	_, _, err := runCLI(t, "", "init", "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "log-level: info")
	assert.NotContains(t, string(data), "pprof")

	_, _, err = runCLI(t, "", "init")
	require.ErrorIs(t, err, cmd.ErrFileExists)
}
