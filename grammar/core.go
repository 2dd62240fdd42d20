package grammar

import (
	"strings"

	"github.com/ardnew/odatauri/cst"
	"github.com/ardnew/odatauri/parse"
)

type token = parse.Token

// Character classes.
var (
	setALPHA     = parse.NewCharset("ALPHA").AddRange('A', 'Z').AddRange('a', 'z')
	setDIGIT     = parse.NewCharset("DIGIT").AddRange('0', '9')
	setHEXDIG    = parse.NewCharset("HEXDIG").Union(setDIGIT).AddRange('A', 'F').AddRange('a', 'f')
	setOneToNine = parse.NewCharset("oneToNine").AddRange('1', '9')

	setUnreserved  = parse.NewCharset("unreserved").Union(setALPHA, setDIGIT).Add("-._~")
	setSubDelims   = parse.NewCharset("sub-delims").Add("$&'()*+,;=")
	setOtherDelims = parse.NewCharset("other-delims").Add("!()*+,;")

	setIdentLead = parse.NewCharset("identifierLeadingCharacter").Union(setALPHA).Add("_")
	setIdentChar = parse.NewCharset("identifierCharacter").Union(setALPHA, setDIGIT).Add("_")
	setBase64    = parse.NewCharset("base64char").Union(setALPHA, setDIGIT).Add("-_")

	setPchar = parse.NewCharset("pchar").Union(setUnreserved, setSubDelims).Add(":@")

	setPcharNoSQUOTE = parse.NewCharset("pchar-no-SQUOTE").
				Union(setUnreserved, setOtherDelims).Add("$&=:@")
	setQcharNoAMP = parse.NewCharset("qchar-no-AMP").
			Union(setUnreserved, setOtherDelims).Add(":@/?$'=")
	setQcharNoAMPEQ = parse.NewCharset("qchar-no-AMP-EQ").
			Union(setUnreserved, setOtherDelims).Add(":@/?$'")
	setQcharNoAMPEQATDOLLAR = parse.NewCharset("qchar-no-AMP-EQ-AT-DOLLAR").
				Union(setUnreserved, setOtherDelims).Add(":/?'")
	setQcharUnescaped = parse.NewCharset("qchar-unescaped").
				Union(setUnreserved, setOtherDelims).Add(":@/?$'= ")
	setSearchChar = parse.NewCharset("searchChar").
			Union(setALPHA, setDIGIT).Add("-._~,:@!*+'$/?=")

	setKeyPathChar = parse.NewCharset("keyPathChar").
			Union(setUnreserved).Add("$&'*+,;=:@")
	setVCHAR    = parse.NewCharset("VCHAR").AddRange(0x21, 0x7e)
	setIRIChar  = parse.NewCharset("IRI-in-header").Union(setVCHAR).AddRange(0x80, 0xff)
	setRegName  = parse.NewCharset("reg-name").Union(setUnreserved, setSubDelims)
	setCallback = parse.NewCharset("callbackURL").AddRange(0x21, 0x21).AddRange(0x23, 0x7e)
)

// Terminals.
var (
	letter    = parse.Class(setALPHA)
	digit     = parse.Class(setDIGIT)
	hexdig    = parse.Class(setHEXDIG)
	oneToNine = parse.Class(setOneToNine)
	base64    = parse.Class(setBase64)
	identChar = parse.Class(setIdentChar)

	at     = parse.Delim("@", "%40")
	colon  = parse.Delim(":", "%3A")
	comma  = parse.Delim(",", "%2C")
	eq     = parse.Lit("=")
	semi   = parse.Delim(";", "%3B")
	star   = parse.Delim("*", "%2A")
	squote = parse.Delim("'", "%27")
	lparen = parse.Delim("(", "%28")
	rparen = parse.Delim(")", "%29")
	sign   = parse.Or(parse.Delim("+", "%2B"), parse.Lit("-"))
	hash   = parse.Lit("#")
	slash  = parse.Delim("/", "%2F")
	dot    = parse.Lit(".")
	dash   = parse.Lit("-")
	amp    = parse.Lit("&")
	qmark  = parse.Lit("?")
	sp     = parse.Lit(" ")
	dquote = parse.Lit(`"`)

	quotationMark = parse.Delim(`"`, "%22")

	wsChar   = parse.Or(parse.Delim(" ", "%20"), parse.Delim("\t", "%09"))
	owsChar  = parse.OneOf(false, " ", "\t")
	notIdent = parse.Not(identChar)
	notOpen  = parse.Not(lparen)

	unreserved           = parse.Class(setUnreserved)
	pchar                = charOrPct(setPchar)
	pcharNoSQUOTE        = charOrPct(setPcharNoSQUOTE, "%27")
	qcharNoAMP           = charOrPct(setQcharNoAMP)
	qcharNoAMPEQ         = charOrPct(setQcharNoAMPEQ)
	qcharNoAMPEQATDOLLAR = charOrPct(setQcharNoAMPEQATDOLLAR)
	qcharNoAMPDQUOTE     = charOrPct(setQcharNoAMP, "%22")
	qcharUnescaped       = charOrPct(setQcharUnescaped, "%22", "%5C")
	searchChar           = charOrPct(setSearchChar, "%20", "%09", "%22", "%28", "%29")
	keyPathChar          = charOrPct(setKeyPathChar, "%28", "%29")
)

// pctEncoded matches "%" HEXDIG HEXDIG as one token.
func pctEncoded(c parse.Cursor) parse.Result[token] {
	rest := c.Remaining()
	if len(rest) >= 3 && rest[0] == '%' &&
		setHEXDIG.Has(rest[1]) && setHEXDIG.Has(rest[2]) {
		t := c.Token(3)
		t.Encoded = true

		return parse.Ok(t, c.Advance(3))
	}

	c.Expect("pct-encoded")

	return parse.Fail[token](c)
}

// charOrPct matches one member of set, or a percent-encoded octet other
// than those listed in exclude.
func charOrPct(set *parse.Charset, exclude ...string) parse.Parser[token] {
	return func(c parse.Cursor) parse.Result[token] {
		if b, ok := c.Peek(); ok && set.Has(b) {
			return parse.Ok(c.Token(1), c.Advance(1))
		}

		r := pctEncoded(c)
		if !r.OK {
			c.Expect(set.Name())

			return r
		}

		for _, x := range exclude {
			if strings.EqualFold(r.Value.Text, x) {
				return parse.Fail[token](c)
			}
		}

		return r
	}
}

func rws(c parse.Cursor) parse.Result[*cst.RWS] {
	s := parse.Begin(c)
	n := &cst.RWS{Chars: parse.Times(&s, wsChar, 1, parse.Unbounded)}

	return parse.End(&s, n)
}

func bws(c parse.Cursor) parse.Result[*cst.BWS] {
	s := parse.Begin(c)
	n := &cst.BWS{Chars: parse.Star(&s, wsChar)}

	return parse.End(&s, n)
}

func ows(c parse.Cursor) parse.Result[*cst.OWS] {
	s := parse.Begin(c)
	n := &cst.OWS{Chars: parse.Star(&s, owsChar)}

	return parse.End(&s, n)
}

var (
	brace        = parse.Delim("{", "%7B")
	braceClose   = parse.Delim("}", "%7D")
	bracket      = parse.Delim("[", "%5B")
	bracketClose = parse.Delim("]", "%5D")
)

func beginObject(c parse.Cursor) parse.Result[*cst.BeginObject] {
	s := parse.Begin(c)
	n := &cst.BeginObject{
		Lead:  parse.Step(&s, bws),
		Brace: parse.Step(&s, brace),
		Trail: parse.Step(&s, bws),
	}

	return parse.End(&s, n)
}

func endObject(c parse.Cursor) parse.Result[*cst.EndObject] {
	s := parse.Begin(c)
	n := &cst.EndObject{
		Lead:  parse.Step(&s, bws),
		Brace: parse.Step(&s, braceClose),
	}

	return parse.End(&s, n)
}

func beginArray(c parse.Cursor) parse.Result[*cst.BeginArray] {
	s := parse.Begin(c)
	n := &cst.BeginArray{
		Lead:    parse.Step(&s, bws),
		Bracket: parse.Step(&s, bracket),
		Trail:   parse.Step(&s, bws),
	}

	return parse.End(&s, n)
}

func endArray(c parse.Cursor) parse.Result[*cst.EndArray] {
	s := parse.Begin(c)
	n := &cst.EndArray{
		Lead:    parse.Step(&s, bws),
		Bracket: parse.Step(&s, bracketClose),
	}

	return parse.End(&s, n)
}

func nameSeparator(c parse.Cursor) parse.Result[*cst.NameSeparator] {
	s := parse.Begin(c)
	n := &cst.NameSeparator{
		Lead:  parse.Step(&s, bws),
		Colon: parse.Step(&s, colon),
		Trail: parse.Step(&s, bws),
	}

	return parse.End(&s, n)
}

func valueSeparator(c parse.Cursor) parse.Result[*cst.ValueSeparator] {
	s := parse.Begin(c)
	n := &cst.ValueSeparator{
		Lead:  parse.Step(&s, bws),
		Comma: parse.Step(&s, comma),
		Trail: parse.Step(&s, bws),
	}

	return parse.End(&s, n)
}
