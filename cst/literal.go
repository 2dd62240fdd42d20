package cst

import "github.com/ardnew/odatauri/parse"

// PrimitiveValue is a standalone literal, as found in a payload or header.
type PrimitiveValue struct {
	BooleanValue               *BooleanValue
	GUIDValue                  *GUIDValue
	DurationValue              *DurationValue
	DateTimeOffsetValue        *DateTimeOffsetValue
	DateValue                  *DateValue
	TimeOfDayValue             *TimeOfDayValue
	FullCollectionLiteral      *FullCollectionLiteral
	FullLineStringLiteral      *FullLineStringLiteral
	FullMultiPointLiteral      *FullMultiPointLiteral
	FullMultiLineStringLiteral *FullMultiLineStringLiteral
	FullMultiPolygonLiteral    *FullMultiPolygonLiteral
	FullPointLiteral           *FullPointLiteral
	FullPolygonLiteral         *FullPolygonLiteral
	Int32Value                 *Int32Value
	Int64Value                 *Int64Value
	DecimalValue               *DecimalValue
	DoubleValue                *DoubleValue
	SingleValue                *SingleValue
	SByteValue                 *SByteValue
	ByteValue                  *ByteValue
	Int16Value                 *Int16Value
	EnumValue                  *EnumValue
	BinaryValue                *BinaryValue
}

// PrimitiveLiteral is a literal embedded in a URL.
type PrimitiveLiteral struct {
	NullValue                *NullValue
	BooleanValue             *BooleanValue
	GUIDValue                *GUIDValue
	DateTimeOffsetValueInURL *DateTimeOffsetValueInURL
	DateValue                *DateValue
	TimeOfDayValueInURL      *TimeOfDayValueInURL
	Int32Value               *Int32Value
	Int64Value               *Int64Value
	DecimalValue             *DecimalValue
	DoubleValue              *DoubleValue
	SingleValue              *SingleValue
	SByteValue               *SByteValue
	ByteValue                *ByteValue
	Int16Value               *Int16Value
	String                   *StringLiteral
	Duration                 *Duration
	Enum                     *Enum
	Binary                   *Binary
	GeographyCollection      *GeographyCollection
	GeographyLineString      *GeographyLineString
	GeographyMultiLineString *GeographyMultiLineString
	GeographyMultiPoint      *GeographyMultiPoint
	GeographyMultiPolygon    *GeographyMultiPolygon
	GeographyPoint           *GeographyPoint
	GeographyPolygon         *GeographyPolygon
	GeometryCollection       *GeometryCollection
	GeometryLineString       *GeometryLineString
	GeometryMultiLineString  *GeometryMultiLineString
	GeometryMultiPoint       *GeometryMultiPoint
	GeometryMultiPolygon     *GeometryMultiPolygon
	GeometryPoint            *GeometryPoint
	GeometryPolygon          *GeometryPolygon
}

// NullValue is 'null'.
type NullValue struct {
	Null Token
}

// BooleanValue is "true" or "false".
type BooleanValue struct {
	Value Token
}

// GUIDValue is five hex digit groups of 8, 4, 4, 4 and 12 digits.
type GUIDValue struct {
	Group1 parse.Range[Token]
	Dash1  Token
	Group2 parse.Range[Token]
	Dash2  Token
	Group3 parse.Range[Token]
	Dash3  Token
	Group4 parse.Range[Token]
	Dash4  Token
	Group5 parse.Range[Token]
}

// SignedInteger is an optional sign followed by a bounded digit run.
type SignedInteger struct {
	Sign   *Token
	Digits parse.Range[Token]
}

// Integer literals. The digit bound of each is recorded in its Digits range.
type (
	SByteValue      SignedInteger
	Int16Value      SignedInteger
	Int32Value      SignedInteger
	Int64Value      SignedInteger
	EnumMemberValue SignedInteger
)

// ByteValue is one to three digits.
type ByteValue struct {
	Digits parse.Range[Token]
}

// DecimalValue is a decimal number or one of NaN, -INF and INF.
type DecimalValue struct {
	Number      *DecimalNumber
	NanInfinity *NanInfinity
}

// Floating point literals share the decimal syntax.
type (
	DoubleValue DecimalValue
	SingleValue DecimalValue
)

// DecimalNumber is [ SIGN ] 1*DIGIT [ fraction ] [ exponent ].
type DecimalNumber struct {
	Sign     *Token
	Integer  parse.Range[Token]
	Fraction *DecimalFraction
	Exponent *DecimalExponent
}

// DecimalFraction is "." 1*DIGIT.
type DecimalFraction struct {
	Dot    Token
	Digits parse.Range[Token]
}

// DecimalExponent is "e" [ SIGN ] 1*DIGIT.
type DecimalExponent struct {
	E      Token
	Sign   *Token
	Digits parse.Range[Token]
}

// NanInfinity is 'NaN', '-INF' or 'INF'.
type NanInfinity struct {
	Value Token
}

// StringLiteral is a single-quoted string with doubled quotes as escapes.
type StringLiteral struct {
	Open  Token
	Chars []StringChar
	Close Token
}

// StringChar is an escaped quote or one path character.
type StringChar struct {
	Escaped *SQuoteInString
	Char    *Token
}

// SQuoteInString is two consecutive quotes.
type SQuoteInString struct {
	First  Token
	Second Token
}

// Year is [ "-" ] followed by at least four digits.
type Year struct {
	Minus  *Token
	Lead   Token
	Digits parse.Range[Token]
}

// TwoDigits holds the two characters of a month, day, hour, minute or
// second.
type TwoDigits struct {
	First  Token
	Second Token
}

// Calendar and clock fields.
type (
	Month  TwoDigits
	Day    TwoDigits
	Hour   TwoDigits
	Minute TwoDigits
	Second TwoDigits
)

// DateValue is year "-" month "-" day.
type DateValue struct {
	Year  *Year
	Dash1 Token
	Month *Month
	Dash2 Token
	Day   *Day
}

// TimeOfDayValue is hour ":" minute [ ":" second [ "." fractionalSeconds ] ].
type TimeOfDayValue struct {
	Hour    *Hour
	Colon   Token
	Minute  *Minute
	Seconds *TimeSeconds
}

// TimeOfDayValueInURL is a time of day whose colons may be percent-encoded.
type TimeOfDayValueInURL TimeOfDayValue

// TimeSeconds is ":" second [ "." fractionalSeconds ].
type TimeSeconds struct {
	Colon    Token
	Second   *Second
	Fraction *FractionalSecondsPart
}

// FractionalSecondsPart is "." fractionalSeconds.
type FractionalSecondsPart struct {
	Dot     Token
	Seconds *FractionalSeconds
}

// FractionalSeconds is one to twelve digits.
type FractionalSeconds struct {
	Digits parse.Range[Token]
}

// DateTimeOffsetValue is a date, "T", a time of day and a zone.
type DateTimeOffsetValue struct {
	Year  *Year
	Dash1 Token
	Month *Month
	Dash2 Token
	Day   *Day
	T     Token
	Time  *TimeOfDayValue
	Zone  *TimeZone
}

// DateTimeOffsetValueInURL is a date-time whose colons may be
// percent-encoded.
type DateTimeOffsetValueInURL struct {
	Year  *Year
	Dash1 Token
	Month *Month
	Dash2 Token
	Day   *Day
	T     Token
	Time  *TimeOfDayValueInURL
	Zone  *TimeZone
}

// TimeZone is "Z" or a signed hour and minute offset.
type TimeZone struct {
	Z      *Token
	Offset *ZoneOffset
}

// ZoneOffset is SIGN hour ":" minute.
type ZoneOffset struct {
	Sign   Token
	Hour   *Hour
	Colon  Token
	Minute *Minute
}

// Duration is [ "duration" ] SQUOTE durationValue SQUOTE.
type Duration struct {
	Prefix *Token
	Open   Token
	Value  *DurationValue
	Close  Token
}

// DurationValue is an ISO 8601 day-time duration.
type DurationValue struct {
	Sign *Token
	P    Token
	Days *DurationPart
	Time *DurationTime
}

// DurationPart is a digit run followed by its unit designator.
type DurationPart struct {
	Digits parse.Range[Token]
	Unit   Token
}

// DurationTime is "T" with optional hours, minutes and seconds.
type DurationTime struct {
	T       Token
	Hours   *DurationPart
	Minutes *DurationPart
	Seconds *DurationSeconds
}

// DurationSeconds is 1*DIGIT [ "." 1*DIGIT ] "S".
type DurationSeconds struct {
	Digits   parse.Range[Token]
	Fraction *DecimalFraction
	Unit     Token
}

// Enum is [ qualifiedEnumTypeName ] SQUOTE enumValue SQUOTE.
type Enum struct {
	Type  *QualifiedEnumTypeName
	Open  Token
	Value *EnumValue
	Close Token
}

// EnumValue is a comma-separated list of enumeration members or values.
type EnumValue struct {
	First *SingleEnumValue
	Rest  []EnumValueTail
}

// EnumValueTail is COMMA singleEnumValue.
type EnumValueTail struct {
	Comma Token
	Value *SingleEnumValue
}

// SingleEnumValue is a member name or its integer value.
type SingleEnumValue struct {
	Member *EnumerationMember
	Value  *EnumMemberValue
}

// Binary is "binary" SQUOTE binaryValue SQUOTE.
type Binary struct {
	Prefix Token
	Open   Token
	Value  *BinaryValue
	Close  Token
}

// BinaryValue is base64url text.
type BinaryValue struct {
	Quads []Base64Quad
	B16   *Base64B16
	B8    *Base64B8
}

// Base64Quad is four base64 characters.
type Base64Quad struct {
	Chars parse.Range[Token]
}

// Base64B16 encodes the last two octets.
type Base64B16 struct {
	Chars parse.Range[Token]
	Last  Token
	Pad   *Token
}

// Base64B8 encodes the last octet.
type Base64B8 struct {
	Char Token
	Last Token
	Pad  *Token
}
