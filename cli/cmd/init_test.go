package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type initCLI struct {
	Rule    string   `default:"odataUri"`
	Depth   int      `default:"256"`
	Tags    []string `default:"a,b"`
	Empty   string
	Secret  string `default:"x"      hidden:""`
	Version kong.VersionFlag

	Init Init `cmd:""`
}

func initContext(t *testing.T, path string, args ...string) (context.Context, *initCLI) {
	t.Helper()

	var cli initCLI

	parser, err := kong.New(&cli,
		kong.Vars{ConfigIdentifier: path, "version": "test"},
		kong.Exit(func(int) { t.Fatal("unexpected exit") }),
	)
	require.NoError(t, err)

	ktx, err := parser.Parse(append([]string{"init"}, args...))
	require.NoError(t, err)

	return WithContext(context.Background(), ktx), &cli
}

func TestInitRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	ctx, cli := initContext(t, path)

	require.NoError(t, cli.Init.Run(ctx))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(data, &got))

	assert.Equal(t, "odataUri", got["rule"])
	assert.EqualValues(t, 256, got["depth"])
	assert.Equal(t, []any{"a", "b"}, got["tags"])
	assert.NotContains(t, got, "empty")
	assert.NotContains(t, got, "secret")
	assert.NotContains(t, got, "help")
	assert.NotContains(t, got, "version")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestInitRunExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("existing: true\n"), 0o600))

	ctx, cli := initContext(t, path)

	err := cli.Init.Run(ctx)
	require.ErrorIs(t, err, ErrWriteConfig)
	require.ErrorIs(t, err, ErrFileExists)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing: true\n", string(data))

	ctx, cli = initContext(t, path, "--force")
	require.NoError(t, cli.Init.Run(ctx))

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rule: odataUri")
}

func TestInitRunUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "config.yaml")
	ctx, cli := initContext(t, path)

	require.ErrorIs(t, cli.Init.Run(ctx), ErrWriteConfig)
}

func TestConfigValue(t *testing.T) {
	type named string

	assert.Nil(t, configValue(nil))
	assert.Nil(t, configValue(""))
	assert.Nil(t, configValue([]string{}))
	assert.Nil(t, configValue(named("")))
	assert.Equal(t, "info", configValue(named("info")))
	assert.Equal(t, true, configValue(true))
	assert.Equal(t, 3, configValue(3))
}
