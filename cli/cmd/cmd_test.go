package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestWithSourceFilesEmpty(t *testing.T) {
	assert.Nil(t, sourceFilesFrom(WithSourceFiles(context.Background(), nil)))
	assert.Nil(t, sourceFilesFrom(WithSourceFiles(context.Background(), []string{})))
	assert.Nil(t, sourceFilesFrom(context.Background()))
}

func TestWithSourceFilesOrder(t *testing.T) {
	first := writeTemp(t, "first.txt", "People\n")
	second := writeTemp(t, "second.txt", "Airports\n")

	ctx := WithInput(context.Background(), strings.NewReader("Airlines\n"))
	ctx = WithSourceFiles(ctx, []string{"-", first, second})

	src := sourceFilesFrom(ctx)
	require.NotNil(t, src)
	assert.False(t, src.IsZero())
	assert.NotNil(t, src.Stdin())

	data, err := io.ReadAll(src)
	require.NoError(t, err)
	assert.Equal(t, "People\nAirports\nAirlines\n", string(data))
}

func TestWithSourceFilesDeduplicates(t *testing.T) {
	path := writeTemp(t, "people.txt", "People\n")

	link := filepath.Join(filepath.Dir(path), "link.txt")
	require.NoError(t, os.Symlink(path, link))

	ctx := WithSourceFiles(context.Background(), []string{path, link, path})

	data, err := io.ReadAll(sourceFilesFrom(ctx))
	require.NoError(t, err)
	assert.Equal(t, "People\n", string(data))
}

func TestWithSourceFilesMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")

	assert.Nil(t, sourceFilesFrom(WithSourceFiles(context.Background(), []string{missing})))
}

func TestReadInputs(t *testing.T) {
	src := writeTemp(t, "inputs.txt", "Airports\r\n\n  \nAirlines\n")

	tests := []struct {
		name    string
		args    []string
		stdin   string
		sources []string
		want    []string
		wantErr error
	}{
		{"arguments", []string{"People", "Airports"}, "", nil, []string{"People", "Airports"}, nil},
		{"stdin", []string{"-"}, "People\r\n\nAirports", nil, []string{"People", "Airports"}, nil},
		{"mixed", []string{"Me", "-"}, "People\n", nil, []string{"Me", "People"}, nil},
		{"sources", nil, "", []string{src}, []string{"Airports", "Airlines"}, nil},
		{"arguments then sources", []string{"Me"}, "", []string{src}, []string{"Me", "Airports", "Airlines"}, nil},
		{"none", nil, "", nil, nil, ErrNoInput},
		{"blank stdin", []string{"-"}, "\n\n", nil, nil, ErrNoInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := WithInput(context.Background(), strings.NewReader(tt.stdin))
			ctx = WithSourceFiles(ctx, tt.sources)

			got, err := readInputs(ctx, tt.args)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKongVarFallback(t *testing.T) {
	assert.Equal(t, "fallback", kongVar(context.Background(), CacheIdentifier, "fallback"))
}
