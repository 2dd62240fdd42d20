package cmd

import (
	"context"
	"fmt"
	"log/slog"
)

// Fmt parses one input and prints its syntax tree in the chosen format.
type Fmt struct {
	Text Text `cmd:"" default:"withargs" help:"Print the source text re-emitted from the tree (default)."`
	Tree Tree `cmd:""                    help:"Print the rule tree, one node per line."`
	JSON JSON `cmd:""                    help:"Format as JSON."`
	YAML YAML `cmd:""                    help:"Format as YAML."`
}

// Text prints the source text re-emitted from the syntax tree.
type Text struct {
	In source `embed:""`
}

// Run executes the text command.
func (t *Text) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	doc, err := t.In.document(ctx)
	if err != nil {
		return ErrParse.Wrap(err).With(slog.String("format", "text"))
	}

	w := outputFrom(ctx)
	if err := doc.Format(w); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

// Tree prints the rule tree with one node per line.
type Tree struct {
	Indent int `default:"2" help:"Indent width per tree level" short:"i"`

	In source `embed:""`
}

// Run executes the tree command.
func (t *Tree) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	doc, err := t.In.document(ctx)
	if err != nil {
		return ErrParse.Wrap(err).With(slog.String("format", "tree"))
	}

	if err := doc.FormatTree(outputFrom(ctx), t.Indent); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

// JSON parses input and outputs the tree as JSON.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output, 0 for compact" short:"i"`

	In source `embed:""`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	doc, err := j.In.document(ctx)
	if err != nil {
		return ErrParse.Wrap(err).With(slog.String("format", "json"))
	}

	return doc.FormatJSON(ctx, outputFrom(ctx), j.Indent)
}

// YAML parses input and outputs the tree as YAML.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output, 0 for flow style" short:"i"`

	In source `embed:""`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	doc, err := y.In.document(ctx)
	if err != nil {
		return ErrParse.Wrap(err).With(slog.String("format", "yaml"))
	}

	return doc.FormatYAML(ctx, outputFrom(ctx), y.Indent)
}
