package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadConfig(t *testing.T, doc string) kong.Resolver {
	t.Helper()

	r, err := resolve(context.Background())(strings.NewReader(doc))
	require.NoError(t, err)
	require.NoError(t, r.Validate(nil))

	return r
}

func resolveFlag(t *testing.T, r kong.Resolver, name string) any {
	t.Helper()

	v, err := r.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: name}})
	require.NoError(t, err)

	return v
}

func TestResolve(t *testing.T) {
	r := loadConfig(t, `
log:
  level: debug
  pretty: false
log_caller: true
rule: header
max-depth: 64
ratio: 0.5
source:
  - a.txt
  - b.txt
empty: null
`)

	tests := []struct {
		flag string
		want any
	}{
		{"log-level", "debug"},
		{"log-pretty", false},
		{"log-caller", true},
		{"rule", "header"},
		{"max-depth", "64"},
		{"ratio", "0.5"},
		{"source", "a.txt,b.txt"},
		{"empty", nil},
		{"missing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveFlag(t, r, tt.flag))
		})
	}
}

func TestResolveInvalidDocument(t *testing.T) {
	for _, doc := range []string{"", "- a\n- b\n", "key: [unterminated"} {
		r := loadConfig(t, doc)
		assert.Nil(t, resolveFlag(t, r, "key"), doc)
	}
}

func TestScalar(t *testing.T) {
	assert.Equal(t, "x", scalar("x"))
	assert.Equal(t, "-3", scalar(int64(-3)))
	assert.Equal(t, "18446744073709551615", scalar(uint64(18446744073709551615)))
	assert.Equal(t, "1.25", scalar(1.25))
	assert.Equal(t, "true", scalar(true))
}
