package cst

import "github.com/ardnew/odatauri/parse"

// ArrayOrObject is a JSON array or object embedded in a URL.
type ArrayOrObject struct {
	ComplexColInURI   *ComplexColInURI
	ComplexInURI      *ComplexInURI
	RootExprCol       *RootExprCol
	PrimitiveColInURI *PrimitiveColInURI
}

// ComplexColInURI is a JSON array of objects.
type ComplexColInURI struct {
	Begin *BeginArray
	First *ComplexInURI
	Rest  []ComplexInURITail
	End   *EndArray
}

type ComplexInURITail struct {
	Separator *ValueSeparator
	Value     *ComplexInURI
}

// ComplexInURI is a JSON object.
type ComplexInURI struct {
	Begin *BeginObject
	First *MemberInURI
	Rest  []MemberInURITail
	End   *EndObject
}

type MemberInURITail struct {
	Separator *ValueSeparator
	Member    *MemberInURI
}

// MemberInURI is an instance annotation or a property.
type MemberInURI struct {
	Annotation *AnnotationInURI
	Property   *PropertyInURI
}

// AnnotationInURI is "@namespace.term": value.
type AnnotationInURI struct {
	Open      Token
	At        Token
	Namespace *Namespace
	Dot       Token
	Term      *TermName
	Close     Token
	Separator *NameSeparator
	Value     *ValueInURI
}

// PropertyInURI is "name": value.
type PropertyInURI struct {
	Open      Token
	Name      *ODataIdentifier
	Close     Token
	Separator *NameSeparator
	Value     *ValueInURI
}

// ValueInURI is any JSON value.
type ValueInURI struct {
	Complex      *ComplexInURI
	ComplexCol   *ComplexColInURI
	PrimitiveCol *PrimitiveColInURI
	Primitive    *PrimitiveLiteralInJSON
}

// PrimitiveColInURI is a JSON array of primitive values.
type PrimitiveColInURI struct {
	Begin *BeginArray
	First *PrimitiveLiteralInJSON
	Rest  []PrimitiveLiteralInJSONTail
	End   *EndArray
}

type PrimitiveLiteralInJSONTail struct {
	Separator *ValueSeparator
	Value     *PrimitiveLiteralInJSON
}

// RootExprCol is a JSON array of $root references.
type RootExprCol struct {
	Begin *BeginArray
	First *RootExpr
	Rest  []RootExprTail
	End   *EndArray
}

type RootExprTail struct {
	Separator *ValueSeparator
	Value     *RootExpr
}

// PrimitiveLiteralInJSON is a JSON string, number, true, false or null.
type PrimitiveLiteralInJSON struct {
	String  *StringInJSON
	Number  *NumberInJSON
	Keyword *Token
}

// StringInJSON is a double-quoted JSON string.
type StringInJSON struct {
	Open  Token
	Chars []CharInJSON
	Close Token
}

type CharInJSON struct {
	Escape *EscapeInJSON
	Char   *Token
}

// EscapeInJSON is a backslash escape. Hex holds the four digits of a
// \u escape and is empty otherwise.
type EscapeInJSON struct {
	Backslash Token
	Char      Token
	Hex       parse.Range[Token]
}

// NumberInJSON is a JSON number.
type NumberInJSON struct {
	Minus    *Token
	Int      *IntInJSON
	Fraction *DecimalFraction
	Exponent *ExponentInJSON
}

// IntInJSON is "0" or a digit run without a leading zero.
type IntInJSON struct {
	Zero   *Token
	Lead   *Token
	Digits []Token
}

type ExponentInJSON struct {
	E      Token
	Sign   *Token
	Digits parse.Range[Token]
}
