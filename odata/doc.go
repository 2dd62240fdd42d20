// Package odata parses OData URLs, header values and primitive literals.
//
// It is the entry point programs use on top of the grammar. Each Parse
// function runs one grammar rule over a complete input and returns the
// concrete syntax tree it produced. The tree reproduces its input byte for
// byte.
//
// # Basic Usage
//
//	uri, err := odata.ParseRelativeURI(ctx, "People('russell')?$select=Name")
//	if err != nil {
//		var pe *odata.ParseError
//		if errors.As(err, &pe) {
//			fmt.Println(pe) // caret diagnostic
//		}
//	}
//
// Any registered rule can be parsed by name:
//
//	doc, err := odata.Parse(ctx, "commonExpr", "Price add 2.00 gt 10")
//
// # Errors
//
// Failures unwrap to one of the sentinel errors, so callers can test them
// with [errors.Is]:
//
//   - [ErrSyntax]: no alternative of the rule matched
//   - [ErrIncomplete]: the rule matched a proper prefix of the input
//   - [ErrMaxDepthExceeded]: the input nests deeper than [WithMaxDepth]
//   - [ErrEmptyInput]: the rule does not accept empty input
//   - [ErrUnknownRule]: the rule name is not registered
//
// # Caching
//
// Results of parses made with default options are kept in a bounded LRU
// cache keyed by the rule name and a hash of the input. Trees are never
// modified after construction, so cached trees are shared.
//
// # Output
//
// A [Document] can be written back as source text, as an indented rule tree,
// or as JSON or YAML, and flattened into [Node] values that [Query] filters
// with an expr-lang predicate such as:
//
//	Rule == "Filter" && Depth < 6
package odata
