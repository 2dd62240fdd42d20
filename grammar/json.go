package grammar

import (
	"github.com/ardnew/odatauri/cst"
	"github.com/ardnew/odatauri/parse"
)

var (
	backslash   = parse.Delim(`\`, "%5C")
	jsonEscaped = parse.OneOf(true, "/", "b", "f", "n", "r", "t")
	unicodeMark = parse.Fold("u")
	jsonSign    = parse.OneOf(false, "-", "+")

	jsonKeyword = parse.Map(parse.OneOf(true, "true", "false", "null"), func(t token) *token { return &t })
)

func arrayOrObject(c parse.Cursor) parse.Result[*cst.ArrayOrObject] {
	var rest parse.Cursor

	n := new(cst.ArrayOrObject)

	switch {
	case parse.Try(c, &rest, &n.ComplexColInURI, complexColInURI):
	case parse.Try(c, &rest, &n.ComplexInURI, complexInURI):
	case parse.Try(c, &rest, &n.RootExprCol, rootExprCol):
	case parse.Try(c, &rest, &n.PrimitiveColInURI, primitiveColInURI):
	default:
		return parse.Fail[*cst.ArrayOrObject](c)
	}

	return parse.Ok(n, rest)
}

func complexColInURI(c parse.Cursor) parse.Result[*cst.ComplexColInURI] {
	s := parse.Begin(c)
	n := &cst.ComplexColInURI{Begin: parse.Step(&s, beginArray)}

	if n.First = parse.Maybe(&s, complexInURI); n.First != nil {
		n.Rest = parse.Star(&s, func(c parse.Cursor) parse.Result[cst.ComplexInURITail] {
			s := parse.Begin(c)
			t := cst.ComplexInURITail{
				Separator: parse.Step(&s, valueSeparator),
				Value:     parse.Step(&s, complexInURI),
			}

			return parse.End(&s, t)
		})
	}

	n.End = parse.Step(&s, endArray)

	return parse.End(&s, n)
}

// complexInURI nests arbitrarily and counts against the depth limit.
func complexInURI(c parse.Cursor) parse.Result[*cst.ComplexInURI] {
	if !c.Enter() {
		return parse.Fail[*cst.ComplexInURI](c)
	}
	defer c.Leave()

	s := parse.Begin(c)
	n := &cst.ComplexInURI{Begin: parse.Step(&s, beginObject)}

	if n.First = parse.Maybe(&s, memberInURI); n.First != nil {
		n.Rest = parse.Star(&s, memberInURITail)
	}

	n.End = parse.Step(&s, endObject)

	return parse.End(&s, n)
}

func memberInURITail(c parse.Cursor) parse.Result[cst.MemberInURITail] {
	s := parse.Begin(c)
	n := cst.MemberInURITail{
		Separator: parse.Step(&s, valueSeparator),
		Member:    parse.Step(&s, memberInURI),
	}

	return parse.End(&s, n)
}

func memberInURI(c parse.Cursor) parse.Result[*cst.MemberInURI] {
	var rest parse.Cursor

	n := new(cst.MemberInURI)

	switch {
	case parse.Try(c, &rest, &n.Annotation, annotationInURI):
	case parse.Try(c, &rest, &n.Property, propertyInURI):
	default:
		return parse.Fail[*cst.MemberInURI](c)
	}

	return parse.Ok(n, rest)
}

func annotationInURI(c parse.Cursor) parse.Result[*cst.AnnotationInURI] {
	s := parse.Begin(c)
	n := &cst.AnnotationInURI{
		Open:      parse.Step(&s, quotationMark),
		At:        parse.Step(&s, at),
		Namespace: parse.Step(&s, namespace),
		Dot:       parse.Step(&s, dot),
		Term:      parse.Step(&s, termName),
		Close:     parse.Step(&s, quotationMark),
		Separator: parse.Step(&s, nameSeparator),
		Value:     parse.Step(&s, valueInURI),
	}

	return parse.End(&s, n)
}

func propertyInURI(c parse.Cursor) parse.Result[*cst.PropertyInURI] {
	s := parse.Begin(c)
	n := &cst.PropertyInURI{
		Open:      parse.Step(&s, quotationMark),
		Name:      parse.Step(&s, odataIdentifier),
		Close:     parse.Step(&s, quotationMark),
		Separator: parse.Step(&s, nameSeparator),
		Value:     parse.Step(&s, valueInURI),
	}

	return parse.End(&s, n)
}

func valueInURI(c parse.Cursor) parse.Result[*cst.ValueInURI] {
	var rest parse.Cursor

	n := new(cst.ValueInURI)

	switch {
	case parse.Try(c, &rest, &n.Complex, complexInURI):
	case parse.Try(c, &rest, &n.ComplexCol, complexColInURI):
	case parse.Try(c, &rest, &n.PrimitiveCol, primitiveColInURI):
	case parse.Try(c, &rest, &n.Primitive, primitiveLiteralInJSON):
	default:
		return parse.Fail[*cst.ValueInURI](c)
	}

	return parse.Ok(n, rest)
}

func primitiveColInURI(c parse.Cursor) parse.Result[*cst.PrimitiveColInURI] {
	s := parse.Begin(c)
	n := &cst.PrimitiveColInURI{Begin: parse.Step(&s, beginArray)}

	if n.First = parse.Maybe(&s, primitiveLiteralInJSON); n.First != nil {
		n.Rest = parse.Star(&s, func(c parse.Cursor) parse.Result[cst.PrimitiveLiteralInJSONTail] {
			s := parse.Begin(c)
			t := cst.PrimitiveLiteralInJSONTail{
				Separator: parse.Step(&s, valueSeparator),
				Value:     parse.Step(&s, primitiveLiteralInJSON),
			}

			return parse.End(&s, t)
		})
	}

	n.End = parse.Step(&s, endArray)

	return parse.End(&s, n)
}

func rootExprCol(c parse.Cursor) parse.Result[*cst.RootExprCol] {
	s := parse.Begin(c)
	n := &cst.RootExprCol{Begin: parse.Step(&s, beginArray)}

	if n.First = parse.Maybe(&s, rootExpr); n.First != nil {
		n.Rest = parse.Star(&s, func(c parse.Cursor) parse.Result[cst.RootExprTail] {
			s := parse.Begin(c)
			t := cst.RootExprTail{
				Separator: parse.Step(&s, valueSeparator),
				Value:     parse.Step(&s, rootExpr),
			}

			return parse.End(&s, t)
		})
	}

	n.End = parse.Step(&s, endArray)

	return parse.End(&s, n)
}

func primitiveLiteralInJSON(c parse.Cursor) parse.Result[*cst.PrimitiveLiteralInJSON] {
	var rest parse.Cursor

	n := new(cst.PrimitiveLiteralInJSON)

	switch {
	case parse.Try(c, &rest, &n.String, stringInJSON):
	case parse.Try(c, &rest, &n.Number, numberInJSON):
	case parse.Try(c, &rest, &n.Keyword, jsonKeyword):
	default:
		return parse.Fail[*cst.PrimitiveLiteralInJSON](c)
	}

	return parse.Ok(n, rest)
}

func stringInJSON(c parse.Cursor) parse.Result[*cst.StringInJSON] {
	s := parse.Begin(c)
	n := &cst.StringInJSON{
		Open:  parse.Step(&s, quotationMark),
		Chars: parse.Star(&s, charInJSON),
		Close: parse.Step(&s, quotationMark),
	}

	return parse.End(&s, n)
}

func charInJSON(c parse.Cursor) parse.Result[cst.CharInJSON] {
	if e := escapeInJSON(c); e.OK {
		return parse.Ok(cst.CharInJSON{Escape: e.Value}, e.Rest)
	}

	if r := qcharUnescaped(c); r.OK {
		return parse.Ok(cst.CharInJSON{Char: &r.Value}, r.Rest)
	}

	return parse.Fail[cst.CharInJSON](c)
}

func escapeInJSON(c parse.Cursor) parse.Result[*cst.EscapeInJSON] {
	s := parse.Begin(c)
	n := &cst.EscapeInJSON{Backslash: parse.Step(&s, backslash)}

	if !s.OK() {
		return parse.Fail[*cst.EscapeInJSON](c)
	}

	switch cur := s.Cursor(); {
	case quotationMark(cur).OK:
		n.Char = parse.Step(&s, quotationMark)
	case backslash(cur).OK:
		n.Char = parse.Step(&s, backslash)
	case jsonEscaped(cur).OK:
		n.Char = parse.Step(&s, jsonEscaped)
	default:
		n.Char = parse.Step(&s, unicodeMark)
		n.Hex = parse.Times(&s, hexdig, 4, 4)
	}

	return parse.End(&s, n)
}

func numberInJSON(c parse.Cursor) parse.Result[*cst.NumberInJSON] {
	s := parse.Begin(c)
	n := &cst.NumberInJSON{
		Minus:    parse.Opt(&s, dash),
		Int:      parse.Step(&s, intInJSON),
		Fraction: parse.Maybe(&s, decimalFraction),
		Exponent: parse.Maybe(&s, exponentInJSON),
	}

	return parse.End(&s, n)
}

func intInJSON(c parse.Cursor) parse.Result[*cst.IntInJSON] {
	if z := zero(c); z.OK {
		return parse.Ok(&cst.IntInJSON{Zero: &z.Value}, z.Rest)
	}

	s := parse.Begin(c)
	n := &cst.IntInJSON{
		Lead:   parse.Opt(&s, oneToNine),
		Digits: parse.Star(&s, digit),
	}

	if n.Lead == nil {
		return parse.Fail[*cst.IntInJSON](c)
	}

	return parse.End(&s, n)
}

func exponentInJSON(c parse.Cursor) parse.Result[*cst.ExponentInJSON] {
	s := parse.Begin(c)
	n := &cst.ExponentInJSON{
		E:      parse.Step(&s, exponentMarker),
		Sign:   parse.Opt(&s, jsonSign),
		Digits: parse.Times(&s, digit, 1, parse.Unbounded),
	}

	return parse.End(&s, n)
}
