// Package parse implements the parsing engine used by the OData grammar:
// an immutable input [Cursor], the [Result] of applying a [Parser], the
// ordered-choice and repetition combinators, terminal parsers for literals,
// percent-encoded delimiters and character classes, and the explicit-step
// sequencing helpers used by hot rules.
//
// # Contract
//
// A [Parser] never panics on mismatched input. A failed [Result] always
// carries the cursor it was given, so alternatives can be retried from the
// same position. Successful results carry the remainder.
//
// # Diagnostics
//
// Every cursor derived from one [NewCursor] call shares a small side table
// that records the furthest offset at which a terminal failed, the set of
// terminals expected there, and whether the recursion limit was exceeded.
// The table never influences which input is accepted; it only explains
// rejections after the fact (see [Cursor.Diagnostics]).
//
// # Sequencing
//
// Rules that are sequences of symbols are written with [Begin], [Step],
// [Maybe], [Opt], [Star], [Times] and [End]:
//
//	s := parse.Begin(c)
//	n := &Node{
//		Open:  parse.Step(&s, open),
//		Value: parse.Step(&s, value),
//		Close: parse.Step(&s, close),
//	}
//	return parse.End(&s, n)
//
// Once a step fails the remaining steps are skipped and [End] reports
// failure at the starting cursor.
package parse
