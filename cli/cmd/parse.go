package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ardnew/odatauri/log"
	"github.com/ardnew/odatauri/odata"
)

// Parse checks each input against a grammar rule.
type Parse struct {
	Rule     string `default:"${rule}" help:"Grammar rule to parse with."                      short:"r"`
	Partial  bool   `                  help:"Accept inputs the rule matches only a prefix of."`
	MaxDepth int    `default:"256"     help:"Maximum nesting of recursive rules."`

	Input []string `arg:"" help:"Input text, or '-' to read lines from stdin." name:"input" optional:""`
}

// Run executes the parse command. It prints "ok <rule>" for each accepted
// input and the diagnostic for each rejected one, and fails if any input was
// rejected.
func (p *Parse) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	inputs, err := readInputs(ctx, p.Input)
	if err != nil {
		return err
	}

	w := outputFrom(ctx)
	opts := []odata.Option{
		odata.WithLogger(log.Default()),
		odata.WithPartial(p.Partial),
		odata.WithMaxDepth(p.MaxDepth),
	}

	rejected := 0

	for _, input := range inputs {
		doc, err := odata.Parse(ctx, p.Rule, input, opts...)

		var pe *odata.ParseError

		switch {
		case errors.As(err, &pe):
			rejected++

			_, err = fmt.Fprintln(w, strings.TrimSuffix(pe.Error(), "\n"))

		case err != nil:
			return ErrParse.Wrap(err).With(slog.String("rule", p.Rule))

		case doc.Rest != "":
			_, err = fmt.Fprintf(w, "ok %s (rest %q)\n", doc.Rule, doc.Rest)

		default:
			_, err = fmt.Fprintf(w, "ok %s\n", doc.Rule)
		}

		if err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	if rejected > 0 {
		return ErrParse.With(
			slog.String("rule", p.Rule),
			slog.Int("rejected", rejected),
			slog.Int("total", len(inputs)),
		)
	}

	return nil
}

// source selects the rule and the single input shared by fmt and nodes.
type source struct {
	Rule  string `default:"${rule}" help:"Grammar rule to parse with." short:"r"`
	Input string `arg:""            default:"-"                      help:"Input text, or '-' to read stdin." name:"input"`
}

// document parses the selected input. Standard input is read whole with one
// trailing line ending removed.
func (s source) document(ctx context.Context) (*odata.Document, error) {
	opts := []odata.Option{odata.WithLogger(log.Default())}

	if s.Input == stdinSource {
		return odata.ParseReader(ctx, s.Rule, inputFrom(ctx), opts...)
	}

	return odata.Parse(ctx, s.Rule, s.Input, opts...)
}
