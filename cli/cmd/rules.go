package cmd

import (
	"context"
	"fmt"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/odatauri/grammar"
)

// Rules lists the names accepted by --rule.
type Rules struct {
	Pattern string `arg:"" help:"Fuzzy pattern to filter rule names, best match first." optional:""`
}

// Run executes the rules command.
func (r *Rules) Run(ctx context.Context) error {
	w := outputFrom(ctx)

	for _, name := range MatchRules(r.Pattern) {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	return nil
}

// MatchRules returns the registered rule names matching pattern, best match
// first. An empty pattern returns every name in natural order.
func MatchRules(pattern string) []string {
	names := grammar.Rules()
	if pattern == "" {
		return names
	}

	matches := fuzzy.Find(pattern, names)
	out := make([]string, len(matches))

	for i, m := range matches {
		out[i] = m.Str
	}

	return out
}
