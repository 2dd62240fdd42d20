package cmd

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/odatauri/odata"
)

func TestReplFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		rule string
		tree bool
	}{
		{"defaults", nil, odata.RuleRelativeURI, true},
		{"no tree", []string{"--no-tree"}, odata.RuleRelativeURI, false},
		{"rule", []string{"-r", odata.RuleHeader}, odata.RuleHeader, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cli struct {
				Repl Repl `cmd:""`
			}

			parser, err := kong.New(&cli,
				kong.Vars{RuleIdentifier: odata.RuleRelativeURI},
				kong.Exit(func(int) { t.Fatal("unexpected exit") }),
			)
			require.NoError(t, err)

			_, err = parser.Parse(append([]string{"repl"}, tt.args...))
			require.NoError(t, err)

			assert.Equal(t, tt.rule, cli.Repl.Rule)
			assert.Equal(t, tt.tree, cli.Repl.Tree)
		})
	}
}
