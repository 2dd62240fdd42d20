package odata

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Predefined errors (sentinel values).
var (
	ErrSyntax           = NewError("syntax error")
	ErrIncomplete       = NewError("unexpected trailing input")
	ErrMaxDepthExceeded = NewError("maximum nesting depth exceeded")
	ErrEmptyInput       = NewError("empty input")
	ErrReadInput        = NewError("failed to read input")
	ErrUnknownRule      = NewError("unknown rule")
	ErrQuery            = NewError("node query failed")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.err == nil && t.msg != "" && t.msg == e.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs,
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// ParseError describes input rejected by a rule.
type ParseError struct {
	Rule     string   // Name of the rule that was parsed
	Source   string   // The complete input
	Offset   int      // Byte offset of the failure
	Line     int      // 1-based line of Offset
	Column   int      // 1-based column (in runes) of Offset
	Expected []string // Quoted literals and class names accepted at Offset

	kind *Error
}

func newParseError(kind *Error, rule, source string, offset int, expected []string) *ParseError {
	offset = min(max(offset, 0), len(source))
	before := source[:offset]

	line := strings.Count(before, "\n") + 1
	column := utf8.RuneCountInString(before[strings.LastIndexByte(before, '\n')+1:]) + 1

	return &ParseError{
		Rule:     rule,
		Source:   source,
		Offset:   offset,
		Line:     line,
		Column:   column,
		Expected: expected,
		kind:     kind,
	}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg, snippet := e.formatWithContext()
	if len(e.Expected) == 0 {
		return msg + snippet
	}

	return msg + snippet + "\texpected: " + strings.Join(e.Expected, ", ")
}

// Unwrap returns the sentinel describing the kind of failure.
func (e *ParseError) Unwrap() error {
	if e.kind == nil {
		return ErrSyntax
	}

	return e.kind
}

// LogValue implements slog.LogValuer.
func (e *ParseError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", e.Unwrap().Error()),
		slog.String("rule", e.Rule),
		slog.Int("offset", e.Offset),
		slog.Int("line", e.Line),
		slog.Int("column", e.Column),
		slog.Any("expected", e.Expected),
	)
}

// formatWithContext formats the parse error with source code context.
func (e *ParseError) formatWithContext() (string, string) {
	var buf, src strings.Builder

	buf.WriteString(e.Unwrap().Error())

	if e.Rule != "" {
		buf.WriteString(" in ")
		buf.WriteString(e.Rule)
	}

	buf.WriteString(" at line ")
	buf.WriteString(strconv.Itoa(e.Line))
	buf.WriteString(", column ")
	buf.WriteString(strconv.Itoa(e.Column))
	buf.WriteString(":\n")

	lines := strings.Split(e.Source, "\n")
	if e.Line > 0 && e.Line <= len(lines) {
		src.WriteString("  ")
		src.WriteString(strconv.Itoa(e.Line))
		src.WriteString(" | ")
		src.WriteString(lines[e.Line-1])
		src.WriteRune('\n')

		// 2 leading spaces + " | "
		padding := strings.Repeat(" ", len(strconv.Itoa(e.Line))+5)
		if e.Column > 0 {
			padding += strings.Repeat(" ", e.Column-1)
		}

		src.WriteString(padding + "^\n")
	}

	return buf.String(), src.String()
}
