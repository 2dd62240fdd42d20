package odata

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/klauspost/readahead"

	"github.com/ardnew/odatauri/cst"
	"github.com/ardnew/odatauri/grammar"
	"github.com/ardnew/odatauri/log"
	"github.com/ardnew/odatauri/parse"
)

// Registered names of the rules behind the typed entry points.
const (
	RuleURI            = "odataUri"
	RuleRelativeURI    = "odataRelativeUri"
	RuleHeader         = "header"
	RulePrimitiveValue = "primitiveValue"
)

// Document is the result of a successful parse.
type Document struct {
	Rule   string // Name of the rule that was parsed
	Source string // The complete input
	Root   any    // Root node, a pointer to one of the cst types
	Rest   string // Input left unmatched, only with WithPartial
}

// Parse parses input with the rule registered under name.
// Unless [WithPartial] is given, the rule must match all of input.
func Parse(
	ctx context.Context,
	rule string,
	input string,
	opts ...Option,
) (*Document, error) {
	cfg := makeConfig(opts...)

	cfg.logger.TraceContext(
		ctx,
		"parse start",
		slog.String("rule", rule),
		slog.Int("source_length", len(input)),
		log.Input("source", input),
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, ok := grammar.Lookup(rule)
	if !ok {
		return nil, ErrUnknownRule.With(slog.String("rule", rule))
	}

	if !cfg.cacheable() {
		cfg.logger.TraceContext(
			ctx,
			"cache bypass",
			slog.Bool("cache", cfg.cache),
			slog.Bool("partial", cfg.partial),
			slog.Int("max_depth", cfg.maxDepth),
		)

		return run(ctx, cfg, rule, p, input)
	}

	return runCached(ctx, cfg, rule, p, input)
}

// ParseReader reads all of r and parses it with the rule registered under
// name. One trailing line ending ("\n" or "\r\n") is removed before parsing.
func ParseReader(
	ctx context.Context,
	rule string,
	r io.Reader,
	opts ...Option,
) (*Document, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	makeConfig(opts...).logger.TraceContext(
		ctx,
		"read input",
		slog.Int("source_bytes", len(data)),
		slog.Bool("read_ahead", true),
	)

	input := string(data)
	if s, ok := strings.CutSuffix(input, "\n"); ok {
		input = strings.TrimSuffix(s, "\r")
	}

	return Parse(ctx, rule, input, opts...)
}

// ParseURI parses an absolute OData URI.
func ParseURI(ctx context.Context, input string, opts ...Option) (*cst.ODataURI, error) {
	return parseRoot[*cst.ODataURI](ctx, RuleURI, input, opts)
}

// ParseRelativeURI parses an OData URI relative to the service root.
func ParseRelativeURI(ctx context.Context, input string, opts ...Option) (*cst.ODataRelativeURI, error) {
	return parseRoot[*cst.ODataRelativeURI](ctx, RuleRelativeURI, input, opts)
}

// ParseHeader parses one OData request header line.
func ParseHeader(ctx context.Context, input string, opts ...Option) (*cst.Header, error) {
	return parseRoot[*cst.Header](ctx, RuleHeader, input, opts)
}

// ParsePrimitiveValue parses a primitive literal as it appears in JSON
// payloads and in the path of a $value request.
func ParsePrimitiveValue(ctx context.Context, input string, opts ...Option) (*cst.PrimitiveValue, error) {
	return parseRoot[*cst.PrimitiveValue](ctx, RulePrimitiveValue, input, opts)
}

func parseRoot[T any](ctx context.Context, rule, input string, opts []Option) (T, error) {
	var zero T

	doc, err := Parse(ctx, rule, input, opts...)
	if err != nil {
		return zero, err
	}

	root, ok := doc.Root.(T)
	if !ok {
		return zero, ErrUnknownRule.With(slog.String("rule", rule))
	}

	return root, nil
}

// run parses input without consulting the cache.
func run(
	ctx context.Context,
	cfg config,
	rule string,
	p grammar.Rule,
	input string,
) (*Document, error) {
	c := parse.NewCursor(input, parse.WithMaxDepth(cfg.maxDepth))
	r := p(c)
	diag := c.Diagnostics()

	var err error

	switch {
	case diag.DepthExceeded:
		err = newParseError(ErrMaxDepthExceeded, rule, input, diag.Offset, nil)

	case !r.OK && input == "":
		err = newParseError(ErrEmptyInput, rule, input, 0, diag.Expected)

	case !r.OK:
		err = newParseError(ErrSyntax, rule, input, diag.Offset, diag.Expected)

	case !r.Rest.AtEnd() && !cfg.partial:
		offset, expected := r.Rest.Pos(), []string(nil)
		if diag.Offset >= offset {
			offset, expected = diag.Offset, diag.Expected
		}

		err = newParseError(ErrIncomplete, rule, input, offset, expected)
	}

	if err != nil {
		cfg.logger.TraceContext(
			ctx,
			"parse failed",
			slog.String("rule", rule),
			slog.Any("error", err),
		)

		return nil, err
	}

	cfg.logger.TraceContext(
		ctx,
		"parse complete",
		slog.String("rule", rule),
		log.Span("match", 0, r.Rest.Pos()),
	)

	return &Document{
		Rule:   rule,
		Source: input,
		Root:   r.Value,
		Rest:   r.Rest.Remaining(),
	}, nil
}
