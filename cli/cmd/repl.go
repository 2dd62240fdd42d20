package cmd

import (
	"context"
	"os"

	"github.com/ardnew/odatauri/cli/cmd/repl"
	"github.com/ardnew/odatauri/log"
)

// Repl starts an interactive shell that parses each line entered.
type Repl struct {
	Rule string `default:"${rule}" help:"Grammar rule to parse with (change with ':rule NAME')." short:"r"`
	Tree bool   `default:"true"    help:"Print the rule tree of accepted input."                negatable:""`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	return repl.Run(ctx, repl.Config{
		Rule:     r.Rule,
		Tree:     r.Tree,
		CacheDir: kongVar(ctx, CacheIdentifier, os.TempDir()),
		Logger:   log.Default(),
	})
}
