package grammar

import (
	"github.com/ardnew/odatauri/cst"
	"github.com/ardnew/odatauri/parse"
)

// PrimitiveValue parses a standalone primitive literal.
func PrimitiveValue(c parse.Cursor) parse.Result[*cst.PrimitiveValue] {
	var rest parse.Cursor

	n := new(cst.PrimitiveValue)

	switch {
	case parse.Try(c, &rest, &n.BooleanValue, booleanValue):
	case parse.Try(c, &rest, &n.GUIDValue, guidValue):
	case parse.Try(c, &rest, &n.DurationValue, durationValue):
	case parse.Try(c, &rest, &n.DateTimeOffsetValue, dateTimeOffsetValue):
	case parse.Try(c, &rest, &n.DateValue, dateValue):
	case parse.Try(c, &rest, &n.TimeOfDayValue, timeOfDayValue):
	case parse.Try(c, &rest, &n.FullCollectionLiteral, fullCollectionLiteral):
	case parse.Try(c, &rest, &n.FullLineStringLiteral, fullLineStringLiteral):
	case parse.Try(c, &rest, &n.FullMultiPointLiteral, fullMultiPointLiteral):
	case parse.Try(c, &rest, &n.FullMultiLineStringLiteral, fullMultiLineStringLiteral):
	case parse.Try(c, &rest, &n.FullMultiPolygonLiteral, fullMultiPolygonLiteral):
	case parse.Try(c, &rest, &n.FullPointLiteral, fullPointLiteral):
	case parse.Try(c, &rest, &n.FullPolygonLiteral, fullPolygonLiteral):
	case parse.Try(c, &rest, &n.Int32Value, int32Value):
	case parse.Try(c, &rest, &n.Int64Value, int64Value):
	case parse.Try(c, &rest, &n.DecimalValue, decimalValue):
	case parse.Try(c, &rest, &n.DoubleValue, doubleValue):
	case parse.Try(c, &rest, &n.SingleValue, singleValue):
	case parse.Try(c, &rest, &n.SByteValue, sbyteValue):
	case parse.Try(c, &rest, &n.ByteValue, byteValue):
	case parse.Try(c, &rest, &n.Int16Value, int16Value):
	case parse.Try(c, &rest, &n.EnumValue, unpaddedEnumValue):
	case parse.Try(c, &rest, &n.BinaryValue, binaryValue):
	default:
		return parse.Fail[*cst.PrimitiveValue](c)
	}

	return parse.Ok(n, rest)
}

func primitiveLiteral(c parse.Cursor) parse.Result[*cst.PrimitiveLiteral] {
	var rest parse.Cursor

	n := new(cst.PrimitiveLiteral)

	switch {
	case parse.Try(c, &rest, &n.NullValue, nullValue):
	case parse.Try(c, &rest, &n.BooleanValue, booleanValue):
	case parse.Try(c, &rest, &n.GUIDValue, guidValue):
	case parse.Try(c, &rest, &n.DateTimeOffsetValueInURL, dateTimeOffsetValueInURL):
	case parse.Try(c, &rest, &n.DateValue, dateValue):
	case parse.Try(c, &rest, &n.TimeOfDayValueInURL, timeOfDayValueInURL):
	case parse.Try(c, &rest, &n.Int32Value, int32Value):
	case parse.Try(c, &rest, &n.Int64Value, int64Value):
	case parse.Try(c, &rest, &n.DecimalValue, decimalValue):
	case parse.Try(c, &rest, &n.DoubleValue, doubleValue):
	case parse.Try(c, &rest, &n.SingleValue, singleValue):
	case parse.Try(c, &rest, &n.SByteValue, sbyteValue):
	case parse.Try(c, &rest, &n.ByteValue, byteValue):
	case parse.Try(c, &rest, &n.Int16Value, int16Value):
	case parse.Try(c, &rest, &n.String, stringLiteral):
	case parse.Try(c, &rest, &n.Duration, duration):
	case parse.Try(c, &rest, &n.Enum, enum):
	case parse.Try(c, &rest, &n.Binary, binary):
	case parse.Try(c, &rest, &n.GeographyCollection, geographyCollection):
	case parse.Try(c, &rest, &n.GeographyLineString, geographyLineString):
	case parse.Try(c, &rest, &n.GeographyMultiLineString, geographyMultiLineString):
	case parse.Try(c, &rest, &n.GeographyMultiPoint, geographyMultiPoint):
	case parse.Try(c, &rest, &n.GeographyMultiPolygon, geographyMultiPolygon):
	case parse.Try(c, &rest, &n.GeographyPoint, geographyPoint):
	case parse.Try(c, &rest, &n.GeographyPolygon, geographyPolygon):
	case parse.Try(c, &rest, &n.GeometryCollection, geometryCollection):
	case parse.Try(c, &rest, &n.GeometryLineString, geometryLineString):
	case parse.Try(c, &rest, &n.GeometryMultiLineString, geometryMultiLineString):
	case parse.Try(c, &rest, &n.GeometryMultiPoint, geometryMultiPoint):
	case parse.Try(c, &rest, &n.GeometryMultiPolygon, geometryMultiPolygon):
	case parse.Try(c, &rest, &n.GeometryPoint, geometryPoint):
	case parse.Try(c, &rest, &n.GeometryPolygon, geometryPolygon):
	default:
		return parse.Fail[*cst.PrimitiveLiteral](c)
	}

	return parse.Ok(n, rest)
}

var (
	nullKeyword    = parse.Lit("null")
	booleanKeyword = parse.OneOf(true, "true", "false")
	nanInfKeyword  = parse.OneOf(false, "NaN", "-INF", "INF")
)

func nullValue(c parse.Cursor) parse.Result[*cst.NullValue] {
	s := parse.Begin(c)
	n := &cst.NullValue{Null: parse.Step(&s, nullKeyword)}
	parse.Reject(&s, identChar)

	return parse.End(&s, n)
}

func booleanValue(c parse.Cursor) parse.Result[*cst.BooleanValue] {
	s := parse.Begin(c)
	n := &cst.BooleanValue{Value: parse.Step(&s, booleanKeyword)}
	parse.Reject(&s, identChar)

	return parse.End(&s, n)
}

func guidValue(c parse.Cursor) parse.Result[*cst.GUIDValue] {
	s := parse.Begin(c)
	n := &cst.GUIDValue{
		Group1: parse.Times(&s, hexdig, 8, 8),
		Dash1:  parse.Step(&s, dash),
		Group2: parse.Times(&s, hexdig, 4, 4),
		Dash2:  parse.Step(&s, dash),
		Group3: parse.Times(&s, hexdig, 4, 4),
		Dash3:  parse.Step(&s, dash),
		Group4: parse.Times(&s, hexdig, 4, 4),
		Dash4:  parse.Step(&s, dash),
		Group5: parse.Times(&s, hexdig, 12, 12),
	}
	parse.Reject(&s, hexdig)

	return parse.End(&s, n)
}

// numberChar may not follow an integer literal.
var numberChar = parse.Or(digit, dot, parse.Fold("e"))

type signedIntegerNode interface {
	~struct {
		Sign   *parse.Token
		Digits parse.Range[parse.Token]
	}
}

func signedInteger[N signedIntegerNode](c parse.Cursor, max int) parse.Result[*N] {
	s := parse.Begin(c)
	n := N(cst.SignedInteger{
		Sign:   parse.Opt(&s, sign),
		Digits: parse.Times(&s, digit, 1, max),
	})
	parse.Reject(&s, numberChar)

	return parse.End(&s, &n)
}

func sbyteValue(c parse.Cursor) parse.Result[*cst.SByteValue] {
	return signedInteger[cst.SByteValue](c, 3)
}

func int16Value(c parse.Cursor) parse.Result[*cst.Int16Value] {
	return signedInteger[cst.Int16Value](c, 5)
}

func int32Value(c parse.Cursor) parse.Result[*cst.Int32Value] {
	return signedInteger[cst.Int32Value](c, 10)
}

func int64Value(c parse.Cursor) parse.Result[*cst.Int64Value] {
	return signedInteger[cst.Int64Value](c, 19)
}

func enumMemberValue(c parse.Cursor) parse.Result[*cst.EnumMemberValue] {
	return signedInteger[cst.EnumMemberValue](c, 19)
}

func byteValue(c parse.Cursor) parse.Result[*cst.ByteValue] {
	s := parse.Begin(c)
	n := &cst.ByteValue{Digits: parse.Times(&s, digit, 1, 3)}
	parse.Reject(&s, numberChar)

	return parse.End(&s, n)
}

func decimalValue(c parse.Cursor) parse.Result[*cst.DecimalValue] {
	var rest parse.Cursor

	n := new(cst.DecimalValue)

	switch {
	case parse.Try(c, &rest, &n.Number, decimalNumber):
	case parse.Try(c, &rest, &n.NanInfinity, nanInfinity):
	default:
		return parse.Fail[*cst.DecimalValue](c)
	}

	return parse.Ok(n, rest)
}

func doubleValue(c parse.Cursor) parse.Result[*cst.DoubleValue] {
	return parse.As(decimalValue(c), func(v *cst.DecimalValue) *cst.DoubleValue {
		return (*cst.DoubleValue)(v)
	})
}

func singleValue(c parse.Cursor) parse.Result[*cst.SingleValue] {
	return parse.As(decimalValue(c), func(v *cst.DecimalValue) *cst.SingleValue {
		return (*cst.SingleValue)(v)
	})
}

func decimalNumber(c parse.Cursor) parse.Result[*cst.DecimalNumber] {
	s := parse.Begin(c)
	n := &cst.DecimalNumber{
		Sign:     parse.Opt(&s, sign),
		Integer:  parse.Times(&s, digit, 1, parse.Unbounded),
		Fraction: parse.Maybe(&s, decimalFraction),
		Exponent: parse.Maybe(&s, decimalExponent),
	}

	return parse.End(&s, n)
}

func decimalFraction(c parse.Cursor) parse.Result[*cst.DecimalFraction] {
	s := parse.Begin(c)
	n := &cst.DecimalFraction{
		Dot:    parse.Step(&s, dot),
		Digits: parse.Times(&s, digit, 1, parse.Unbounded),
	}

	return parse.End(&s, n)
}

var exponentMarker = parse.Fold("e")

func decimalExponent(c parse.Cursor) parse.Result[*cst.DecimalExponent] {
	s := parse.Begin(c)
	n := &cst.DecimalExponent{
		E:      parse.Step(&s, exponentMarker),
		Sign:   parse.Opt(&s, sign),
		Digits: parse.Times(&s, digit, 1, parse.Unbounded),
	}

	return parse.End(&s, n)
}

func nanInfinity(c parse.Cursor) parse.Result[*cst.NanInfinity] {
	s := parse.Begin(c)
	n := &cst.NanInfinity{Value: parse.Step(&s, nanInfKeyword)}
	parse.Reject(&s, identChar)

	return parse.End(&s, n)
}

// stringLiteral is hand-written: strings are the most common literal and
// are scanned character by character.
func stringLiteral(c parse.Cursor) parse.Result[*cst.StringLiteral] {
	open := squote(c)
	if !open.OK {
		return parse.Fail[*cst.StringLiteral](c)
	}

	n := &cst.StringLiteral{Open: open.Value}
	cur := open.Rest

	for {
		if q := squote(cur); q.OK {
			q2 := squote(q.Rest)
			if !q2.OK {
				n.Close = q.Value

				return parse.Ok(n, q.Rest)
			}

			n.Chars = append(n.Chars, cst.StringChar{
				Escaped: &cst.SQuoteInString{First: q.Value, Second: q2.Value},
			})
			cur = q2.Rest

			continue
		}

		ch := pcharNoSQUOTE(cur)
		if !ch.OK {
			return parse.Fail[*cst.StringLiteral](c)
		}

		t := ch.Value
		n.Chars = append(n.Chars, cst.StringChar{Char: &t})
		cur = ch.Rest
	}
}

var (
	zero          = parse.Lit("0")
	one           = parse.Lit("1")
	two           = parse.Lit("2")
	three         = parse.Lit("3")
	zeroOrOne     = parse.OneOf(false, "0", "1")
	oneOrTwo      = parse.OneOf(false, "1", "2")
	zeroToTwo     = parse.OneOf(false, "0", "1", "2")
	zeroToThree   = parse.OneOf(false, "0", "1", "2", "3")
	zeroToFive    = parse.Class(parse.NewCharset("%x30-35").AddRange('0', '5'))
	six           = parse.Lit("6")
	timeSeparator = parse.Fold("T")
	zulu          = parse.Fold("Z")
)

func year(c parse.Cursor) parse.Result[*cst.Year] {
	s := parse.Begin(c)
	n := &cst.Year{Minus: parse.Opt(&s, dash)}

	if !s.OK() {
		return parse.Fail[*cst.Year](c)
	}

	if zero(s.Cursor()).OK {
		n.Lead = parse.Step(&s, zero)
		n.Digits = parse.Times(&s, digit, 3, 3)
	} else {
		n.Lead = parse.Step(&s, oneToNine)
		n.Digits = parse.Times(&s, digit, 3, parse.Unbounded)
	}

	return parse.End(&s, n)
}

// twoDigits matches first followed by second.
func twoDigits(c parse.Cursor, first, second parse.Parser[token]) (cst.TwoDigits, parse.Cursor, bool) {
	s := parse.Begin(c)
	n := cst.TwoDigits{
		First:  parse.Step(&s, first),
		Second: parse.Step(&s, second),
	}

	return n, s.Cursor(), s.OK()
}

type pair [2]parse.Parser[token]

// choice returns the first of the given two-digit forms that matches.
func choice(c parse.Cursor, forms ...pair) parse.Result[cst.TwoDigits] {
	for _, f := range forms {
		if n, rest, ok := twoDigits(c, f[0], f[1]); ok {
			return parse.Ok(n, rest)
		}
	}

	return parse.Fail[cst.TwoDigits](c)
}

func month(c parse.Cursor) parse.Result[*cst.Month] {
	return parse.As(
		choice(c, pair{zero, oneToNine}, pair{one, zeroToTwo}),
		func(v cst.TwoDigits) *cst.Month { m := cst.Month(v); return &m },
	)
}

func day(c parse.Cursor) parse.Result[*cst.Day] {
	return parse.As(
		choice(c,
			pair{zero, oneToNine},
			pair{oneOrTwo, digit},
			pair{three, zeroOrOne},
		),
		func(v cst.TwoDigits) *cst.Day { d := cst.Day(v); return &d },
	)
}

func hour(c parse.Cursor) parse.Result[*cst.Hour] {
	return parse.As(
		choice(c, pair{zeroOrOne, digit}, pair{two, zeroToThree}),
		func(v cst.TwoDigits) *cst.Hour { h := cst.Hour(v); return &h },
	)
}

func minute(c parse.Cursor) parse.Result[*cst.Minute] {
	return parse.As(
		choice(c, pair{zeroToFive, digit}),
		func(v cst.TwoDigits) *cst.Minute { m := cst.Minute(v); return &m },
	)
}

func second(c parse.Cursor) parse.Result[*cst.Second] {
	return parse.As(
		choice(c, pair{zeroToFive, digit}, pair{six, zero}),
		func(v cst.TwoDigits) *cst.Second { s := cst.Second(v); return &s },
	)
}

func fractionalSeconds(c parse.Cursor) parse.Result[*cst.FractionalSeconds] {
	s := parse.Begin(c)
	n := &cst.FractionalSeconds{Digits: parse.Times(&s, digit, 1, 12)}

	return parse.End(&s, n)
}

func fractionalSecondsPart(c parse.Cursor) parse.Result[*cst.FractionalSecondsPart] {
	s := parse.Begin(c)
	n := &cst.FractionalSecondsPart{
		Dot:     parse.Step(&s, dot),
		Seconds: parse.Step(&s, fractionalSeconds),
	}

	return parse.End(&s, n)
}

func timeSeconds(sep parse.Parser[token]) parse.Parser[*cst.TimeSeconds] {
	return func(c parse.Cursor) parse.Result[*cst.TimeSeconds] {
		s := parse.Begin(c)
		n := &cst.TimeSeconds{
			Colon:    parse.Step(&s, sep),
			Second:   parse.Step(&s, second),
			Fraction: parse.Maybe(&s, fractionalSecondsPart),
		}

		return parse.End(&s, n)
	}
}

var (
	plainColon       = parse.Lit(":")
	plainTimeSeconds = timeSeconds(plainColon)
	urlTimeSeconds   = timeSeconds(colon)
)

func timeOfDay(c parse.Cursor, sep parse.Parser[token], secs parse.Parser[*cst.TimeSeconds]) parse.Result[*cst.TimeOfDayValue] {
	s := parse.Begin(c)
	n := &cst.TimeOfDayValue{
		Hour:    parse.Step(&s, hour),
		Colon:   parse.Step(&s, sep),
		Minute:  parse.Step(&s, minute),
		Seconds: parse.Maybe(&s, secs),
	}

	return parse.End(&s, n)
}

func timeOfDayValue(c parse.Cursor) parse.Result[*cst.TimeOfDayValue] {
	return timeOfDay(c, plainColon, plainTimeSeconds)
}

func timeOfDayValueInURL(c parse.Cursor) parse.Result[*cst.TimeOfDayValueInURL] {
	return parse.As(timeOfDay(c, colon, urlTimeSeconds), func(v *cst.TimeOfDayValue) *cst.TimeOfDayValueInURL {
		return (*cst.TimeOfDayValueInURL)(v)
	})
}

func dateValue(c parse.Cursor) parse.Result[*cst.DateValue] {
	s := parse.Begin(c)
	n := &cst.DateValue{
		Year:  parse.Step(&s, year),
		Dash1: parse.Step(&s, dash),
		Month: parse.Step(&s, month),
		Dash2: parse.Step(&s, dash),
		Day:   parse.Step(&s, day),
	}

	return parse.End(&s, n)
}

func zoneOffset(sep parse.Parser[token]) parse.Parser[*cst.ZoneOffset] {
	return func(c parse.Cursor) parse.Result[*cst.ZoneOffset] {
		s := parse.Begin(c)
		n := &cst.ZoneOffset{
			Sign:   parse.Step(&s, sign),
			Hour:   parse.Step(&s, hour),
			Colon:  parse.Step(&s, sep),
			Minute: parse.Step(&s, minute),
		}

		return parse.End(&s, n)
	}
}

func timeZone(offset parse.Parser[*cst.ZoneOffset]) parse.Parser[*cst.TimeZone] {
	return func(c parse.Cursor) parse.Result[*cst.TimeZone] {
		if z := zulu(c); z.OK {
			t := z.Value

			return parse.Ok(&cst.TimeZone{Z: &t}, z.Rest)
		}

		return parse.As(offset(c), func(o *cst.ZoneOffset) *cst.TimeZone {
			return &cst.TimeZone{Offset: o}
		})
	}
}

var (
	plainTimeZone = timeZone(zoneOffset(plainColon))
	urlTimeZone   = timeZone(zoneOffset(colon))
)

func dateTimeOffsetValue(c parse.Cursor) parse.Result[*cst.DateTimeOffsetValue] {
	s := parse.Begin(c)
	n := &cst.DateTimeOffsetValue{
		Year:  parse.Step(&s, year),
		Dash1: parse.Step(&s, dash),
		Month: parse.Step(&s, month),
		Dash2: parse.Step(&s, dash),
		Day:   parse.Step(&s, day),
		T:     parse.Step(&s, timeSeparator),
		Time:  parse.Step(&s, timeOfDayValue),
		Zone:  parse.Step(&s, plainTimeZone),
	}

	return parse.End(&s, n)
}

func dateTimeOffsetValueInURL(c parse.Cursor) parse.Result[*cst.DateTimeOffsetValueInURL] {
	s := parse.Begin(c)
	n := &cst.DateTimeOffsetValueInURL{
		Year:  parse.Step(&s, year),
		Dash1: parse.Step(&s, dash),
		Month: parse.Step(&s, month),
		Dash2: parse.Step(&s, dash),
		Day:   parse.Step(&s, day),
		T:     parse.Step(&s, timeSeparator),
		Time:  parse.Step(&s, timeOfDayValueInURL),
		Zone:  parse.Step(&s, urlTimeZone),
	}

	return parse.End(&s, n)
}

var (
	durationPrefix = parse.Fold("duration")
	periodMarker   = parse.Fold("P")
	dayUnit        = parse.Fold("D")
	hourUnit       = parse.Fold("H")
	minuteUnit     = parse.Fold("M")
	secondUnit     = parse.Fold("S")
)

func duration(c parse.Cursor) parse.Result[*cst.Duration] {
	s := parse.Begin(c)
	n := &cst.Duration{
		Prefix: parse.Opt(&s, durationPrefix),
		Open:   parse.Step(&s, squote),
		Value:  parse.Step(&s, durationValue),
		Close:  parse.Step(&s, squote),
	}

	return parse.End(&s, n)
}

func durationValue(c parse.Cursor) parse.Result[*cst.DurationValue] {
	s := parse.Begin(c)
	n := &cst.DurationValue{
		Sign: parse.Opt(&s, sign),
		P:    parse.Step(&s, periodMarker),
		Days: parse.Maybe(&s, durationPart(dayUnit)),
		Time: parse.Maybe(&s, durationTime),
	}

	// A lone "P" must not swallow the leading letter of Point or Polygon.
	if n.Days == nil && n.Time == nil {
		parse.Reject(&s, letter)
	}

	return parse.End(&s, n)
}

func durationPart(unit parse.Parser[token]) parse.Parser[*cst.DurationPart] {
	return func(c parse.Cursor) parse.Result[*cst.DurationPart] {
		s := parse.Begin(c)
		n := &cst.DurationPart{
			Digits: parse.Times(&s, digit, 1, parse.Unbounded),
			Unit:   parse.Step(&s, unit),
		}

		return parse.End(&s, n)
	}
}

var (
	hoursPart   = durationPart(hourUnit)
	minutesPart = durationPart(minuteUnit)
)

func durationTime(c parse.Cursor) parse.Result[*cst.DurationTime] {
	s := parse.Begin(c)
	n := &cst.DurationTime{
		T:       parse.Step(&s, timeSeparator),
		Hours:   parse.Maybe(&s, hoursPart),
		Minutes: parse.Maybe(&s, minutesPart),
		Seconds: parse.Maybe(&s, durationSeconds),
	}

	return parse.End(&s, n)
}

func durationSeconds(c parse.Cursor) parse.Result[*cst.DurationSeconds] {
	s := parse.Begin(c)
	n := &cst.DurationSeconds{
		Digits:   parse.Times(&s, digit, 1, parse.Unbounded),
		Fraction: parse.Maybe(&s, decimalFraction),
		Unit:     parse.Step(&s, secondUnit),
	}

	return parse.End(&s, n)
}

func enum(c parse.Cursor) parse.Result[*cst.Enum] {
	s := parse.Begin(c)
	n := &cst.Enum{
		Type:  parse.Maybe(&s, qualifiedEnumTypeName),
		Open:  parse.Step(&s, squote),
		Value: parse.Step(&s, enumValue),
		Close: parse.Step(&s, squote),
	}

	return parse.End(&s, n)
}

func enumValue(c parse.Cursor) parse.Result[*cst.EnumValue] {
	s := parse.Begin(c)
	n := &cst.EnumValue{
		First: parse.Step(&s, singleEnumValue),
		Rest:  parse.Star(&s, enumValueTail),
	}

	return parse.End(&s, n)
}

// unpaddedEnumValue is an enumValue that does not stop short of further
// base64 characters or padding, which leaves such input to binaryValue.
func unpaddedEnumValue(c parse.Cursor) parse.Result[*cst.EnumValue] {
	s := parse.Begin(c)
	n := parse.Step(&s, enumValue)
	parse.Reject(&s, base64OrPad)

	return parse.End(&s, n)
}

func enumValueTail(c parse.Cursor) parse.Result[cst.EnumValueTail] {
	s := parse.Begin(c)
	n := cst.EnumValueTail{
		Comma: parse.Step(&s, comma),
		Value: parse.Step(&s, singleEnumValue),
	}

	return parse.End(&s, n)
}

func singleEnumValue(c parse.Cursor) parse.Result[*cst.SingleEnumValue] {
	var rest parse.Cursor

	n := new(cst.SingleEnumValue)

	switch {
	case parse.Try(c, &rest, &n.Member, enumerationMember):
	case parse.Try(c, &rest, &n.Value, enumMemberValue):
	default:
		return parse.Fail[*cst.SingleEnumValue](c)
	}

	return parse.Ok(n, rest)
}

var (
	binaryPrefix = parse.Fold("binary")
	b16Last      = parse.OneOf(false, "A", "E", "I", "M", "Q", "U", "Y", "c", "g", "k", "o", "s", "w", "0", "4", "8")
	b8Last       = parse.OneOf(false, "A", "Q", "g", "w")
	pad1         = parse.Lit("=")
	pad2         = parse.Lit("==")
	base64OrPad  = parse.Or(base64, pad1)
)

func binary(c parse.Cursor) parse.Result[*cst.Binary] {
	s := parse.Begin(c)
	n := &cst.Binary{
		Prefix: parse.Step(&s, binaryPrefix),
		Open:   parse.Step(&s, squote),
		Value:  parse.Step(&s, binaryValue),
		Close:  parse.Step(&s, squote),
	}

	return parse.End(&s, n)
}

func binaryValue(c parse.Cursor) parse.Result[*cst.BinaryValue] {
	s := parse.Begin(c)
	n := &cst.BinaryValue{Quads: parse.Star(&s, base64Quad)}

	if n.B16 = parse.Maybe(&s, base64B16); n.B16 == nil {
		n.B8 = parse.Maybe(&s, base64B8)
	}

	return parse.End(&s, n)
}

func base64Quad(c parse.Cursor) parse.Result[cst.Base64Quad] {
	s := parse.Begin(c)
	n := cst.Base64Quad{Chars: parse.Times(&s, base64, 4, 4)}

	return parse.End(&s, n)
}

func base64B16(c parse.Cursor) parse.Result[*cst.Base64B16] {
	s := parse.Begin(c)
	n := &cst.Base64B16{
		Chars: parse.Times(&s, base64, 2, 2),
		Last:  parse.Step(&s, b16Last),
		Pad:   parse.Opt(&s, pad1),
	}

	return parse.End(&s, n)
}

func base64B8(c parse.Cursor) parse.Result[*cst.Base64B8] {
	s := parse.Begin(c)
	n := &cst.Base64B8{
		Char: parse.Step(&s, base64),
		Last: parse.Step(&s, b8Last),
		Pad:  parse.Opt(&s, pad2),
	}

	return parse.End(&s, n)
}
