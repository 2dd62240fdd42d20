// Package cst defines the concrete syntax tree produced by package grammar.
//
// Every grammar rule has its own node type:
//
//   - A sequence rule is a struct with one field per symbol, in grammar
//     order. Optional symbols are pointers (nil when absent) and unbounded
//     repetitions are slices.
//   - An alternation rule is a struct with one pointer field per
//     alternative. Exactly one field is non-nil. An alternative that is
//     itself a sequence has its own nested node type.
//   - A bounded repetition is a [parse.Range], whose length is guaranteed by
//     the parser that built it.
//   - Rules that are plain identifiers are defined types of
//     [ODataIdentifier].
//
// Leaves are [Token] values holding the exact input text, so [Write] and
// [Text] reproduce the parsed input byte for byte, percent-encoding
// included. Nodes are immutable once returned by the parser.
package cst
