package cst

import "github.com/ardnew/odatauri/parse"

// RWS is required whitespace: one or more spaces or tabs, either of which
// may be percent-encoded in URLs.
type RWS struct {
	Chars parse.Range[Token]
}

// BWS is optional ("bad") whitespace.
type BWS struct {
	Chars []Token
}

// OWS is optional whitespace in header values.
type OWS struct {
	Chars []Token
}

// BeginObject is an opening brace with surrounding whitespace.
type BeginObject struct {
	Lead  *BWS
	Brace Token
	Trail *BWS
}

// EndObject is a closing brace with leading whitespace.
type EndObject struct {
	Lead  *BWS
	Brace Token
}

// BeginArray is an opening bracket with surrounding whitespace.
type BeginArray struct {
	Lead    *BWS
	Bracket Token
	Trail   *BWS
}

// EndArray is a closing bracket with leading whitespace.
type EndArray struct {
	Lead    *BWS
	Bracket Token
}

// NameSeparator separates a JSON member name from its value.
type NameSeparator struct {
	Lead  *BWS
	Colon Token
	Trail *BWS
}

// ValueSeparator separates JSON array items and object members.
type ValueSeparator struct {
	Lead  *BWS
	Comma Token
	Trail *BWS
}
