package grammar

import (
	"github.com/ardnew/odatauri/cst"
	"github.com/ardnew/odatauri/parse"
)

var (
	scheme        = parse.OneOf(true, "https", "http")
	authorityMark = parse.Lit("://")
	setIPChar     = parse.NewCharset("IP-literal").Union(setHEXDIG).Add(":.")
	ipChar        = parse.Class(setIPChar)
	regNameChar   = charOrPct(setRegName)
	lbracket      = parse.Lit("[")
	rbracket      = parse.Lit("]")

	batchKeyword     = parse.Lit("$batch")
	entityKeyword    = parse.Lit("$entity")
	metadataKeyword  = parse.Lit("$metadata")
	crossjoinKeyword = parse.Lit("$crossjoin")
	allPathKeyword   = parse.Lit("$all")

	eachKeyword    = parse.Lit("/$each")
	countKeyword   = parse.Lit("/$count")
	refKeyword     = parse.Lit("/$ref")
	valueKeyword   = parse.Lit("/$value")
	queryKeyword   = parse.Lit("/$query")
	dollar         = parse.Lit("$")
	plus           = parse.Lit("+")
	selectListStop = parse.Or(slash, plus, lparen)

	contextKeyword = parse.OneOf(false,
		"Collection($ref)", "$ref",
		"Collection(Edm.EntityType)", "Collection(Edm.ComplexType)")
	contextSuffix = parse.OneOf(false,
		"/$entity", "/$delta", "/$deletedEntity", "/$link", "/$deletedLink")

	// pathEnd is what may follow a complete resource path.
	pathEnd = parse.Or(qmark, hash, parse.EOF)
)

func odataURI(c parse.Cursor) parse.Result[*cst.ODataURI] {
	s := parse.Begin(c)
	n := &cst.ODataURI{
		ServiceRoot: parse.Step(&s, serviceRoot),
		Relative:    parse.Maybe(&s, odataRelativeURI),
	}

	return parse.End(&s, n)
}

// serviceRoot takes every complete segment; the relative URI begins after
// the last "/".
func serviceRoot(c parse.Cursor) parse.Result[*cst.ServiceRoot] {
	s := parse.Begin(c)
	n := &cst.ServiceRoot{
		Scheme:    parse.Step(&s, scheme),
		Separator: parse.Step(&s, authorityMark),
		Host:      parse.Step(&s, host),
		Port:      parse.Maybe(&s, port),
		Slash:     parse.Step(&s, slash),
		Segments:  parse.Star(&s, serviceRootSegment),
	}

	return parse.End(&s, n)
}

func serviceRootSegment(c parse.Cursor) parse.Result[cst.ServiceRootSegment] {
	s := parse.Begin(c)
	n := cst.ServiceRootSegment{
		Segment: parse.Step(&s, segmentNZ),
		Slash:   parse.Step(&s, slash),
	}

	return parse.End(&s, n)
}

func segmentNZ(c parse.Cursor) parse.Result[*cst.SegmentNZ] {
	s := parse.Begin(c)
	n := &cst.SegmentNZ{Chars: parse.Times(&s, pchar, 1, parse.Unbounded)}

	return parse.End(&s, n)
}

func port(c parse.Cursor) parse.Result[*cst.Port] {
	s := parse.Begin(c)
	n := &cst.Port{
		Colon:  parse.Step(&s, colon),
		Digits: parse.Star(&s, digit),
	}

	return parse.End(&s, n)
}

func host(c parse.Cursor) parse.Result[*cst.Host] {
	var rest parse.Cursor

	n := new(cst.Host)

	switch {
	case parse.Try(c, &rest, &n.IPLiteral, ipLiteral):
	case parse.Try(c, &rest, &n.IPv4, ipv4Address):
	case parse.Try(c, &rest, &n.RegName, regName):
	default:
		return parse.Fail[*cst.Host](c)
	}

	return parse.Ok(n, rest)
}

func ipLiteral(c parse.Cursor) parse.Result[*cst.IPLiteral] {
	s := parse.Begin(c)
	n := &cst.IPLiteral{
		Open:  parse.Step(&s, lbracket),
		Chars: parse.Times(&s, ipChar, 1, parse.Unbounded),
		Close: parse.Step(&s, rbracket),
	}

	return parse.End(&s, n)
}

func ipv4Address(c parse.Cursor) parse.Result[*cst.IPv4Address] {
	s := parse.Begin(c)
	n := &cst.IPv4Address{
		First:  parse.Step(&s, decOctet),
		Dot1:   parse.Step(&s, dot),
		Second: parse.Step(&s, decOctet),
		Dot2:   parse.Step(&s, dot),
		Third:  parse.Step(&s, decOctet),
		Dot3:   parse.Step(&s, dot),
		Fourth: parse.Step(&s, decOctet),
	}
	parse.Reject(&s, regNameChar)

	return parse.End(&s, n)
}

// decOctet prefers the longest reading that stays within 0-255.
func decOctet(c parse.Cursor) parse.Result[*cst.DecOctet] {
	in := c.Remaining()
	d := func(i int) bool { return i < len(in) && setDIGIT.Has(in[i]) }
	between := func(i int, lo, hi byte) bool { return i < len(in) && in[i] >= lo && in[i] <= hi }

	var n int

	switch {
	case between(0, '2', '2') && between(1, '5', '5') && between(2, '0', '5'):
		n = 3
	case between(0, '2', '2') && between(1, '0', '4') && d(2):
		n = 3
	case between(0, '1', '1') && d(1) && d(2):
		n = 3
	case between(0, '1', '9') && d(1):
		n = 2
	case d(0):
		n = 1
	default:
		c.Expect("dec-octet")

		return parse.Fail[*cst.DecOctet](c)
	}

	return parse.Ok(&cst.DecOctet{Digits: c.Token(n)}, c.Advance(n))
}

func regName(c parse.Cursor) parse.Result[*cst.RegName] {
	s := parse.Begin(c)
	n := &cst.RegName{Chars: parse.Star(&s, regNameChar)}

	return parse.End(&s, n)
}

func odataRelativeURI(c parse.Cursor) parse.Result[*cst.ODataRelativeURI] {
	var rest parse.Cursor

	n := new(cst.ODataRelativeURI)

	switch {
	case parse.Try(c, &rest, &n.Batch, batchURI):
	case parse.Try(c, &rest, &n.Entity, entityURI):
	case parse.Try(c, &rest, &n.EntityCast, entityCastURI):
	case parse.Try(c, &rest, &n.Metadata, metadataURI):
	case parse.Try(c, &rest, &n.Resource, resourceURI):
	default:
		return parse.Fail[*cst.ODataRelativeURI](c)
	}

	return parse.Ok(n, rest)
}

func batchURI(c parse.Cursor) parse.Result[*cst.BatchURI] {
	s := parse.Begin(c)
	n := &cst.BatchURI{
		Keyword: parse.Step(&s, batchKeyword),
		Query:   parse.Maybe(&s, batchQuery),
	}

	return parse.End(&s, n)
}

func batchQuery(c parse.Cursor) parse.Result[*cst.BatchQuery] {
	s := parse.Begin(c)
	n := &cst.BatchQuery{
		QMark:   parse.Step(&s, qmark),
		Options: parse.Step(&s, batchOptions),
	}

	return parse.End(&s, n)
}

func entityURI(c parse.Cursor) parse.Result[*cst.EntityURI] {
	s := parse.Begin(c)
	n := &cst.EntityURI{
		Keyword: parse.Step(&s, entityKeyword),
		QMark:   parse.Step(&s, qmark),
		Options: parse.Step(&s, entityOptions),
	}

	return parse.End(&s, n)
}

func entityCastURI(c parse.Cursor) parse.Result[*cst.EntityCastURI] {
	s := parse.Begin(c)
	n := &cst.EntityCastURI{
		Keyword: parse.Step(&s, entityKeyword),
		Slash:   parse.Step(&s, slash),
		Type:    parse.Step(&s, qualifiedEntityTypeName),
		QMark:   parse.Step(&s, qmark),
		Options: parse.Step(&s, entityCastOptions),
	}

	return parse.End(&s, n)
}

func metadataURI(c parse.Cursor) parse.Result[*cst.MetadataURI] {
	s := parse.Begin(c)
	n := &cst.MetadataURI{
		Keyword: parse.Step(&s, metadataKeyword),
		Query:   parse.Maybe(&s, metadataQuery),
		Context: parse.Maybe(&s, context),
	}

	return parse.End(&s, n)
}

func metadataQuery(c parse.Cursor) parse.Result[*cst.MetadataQuery] {
	s := parse.Begin(c)
	n := &cst.MetadataQuery{
		QMark:   parse.Step(&s, qmark),
		Options: parse.Step(&s, metadataOptions),
	}

	return parse.End(&s, n)
}

func resourceURI(c parse.Cursor) parse.Result[*cst.ResourceURI] {
	s := parse.Begin(c)
	n := &cst.ResourceURI{
		Path:  parse.Step(&s, resourcePath),
		Query: parse.Maybe(&s, resourceQuery),
	}

	return parse.End(&s, n)
}

func resourceQuery(c parse.Cursor) parse.Result[*cst.ResourceQuery] {
	s := parse.Begin(c)
	n := &cst.ResourceQuery{
		QMark:   parse.Step(&s, qmark),
		Options: parse.Maybe(&s, queryOptions),
	}

	return parse.End(&s, n)
}

// resourcePath accepts an alternative only if the path ends where it
// stops, so a shorter reading never hides a longer one.
func resourcePath(c parse.Cursor) parse.Result[*cst.ResourcePath] {
	var rest parse.Cursor

	n := new(cst.ResourcePath)

	switch {
	case parse.Try(c, &rest, &n.EntitySet, entitySetPath):
	case parse.Try(c, &rest, &n.Singleton, singletonPath):
	case parse.Try(c, &rest, &n.ActionImport, actionImportPath):
	case parse.Try(c, &rest, &n, functionImportPath):
	case parse.Try(c, &rest, &n.FunctionImportNoParens, functionImportNoParensPath):
	case parse.Try(c, &rest, &n.Crossjoin, crossjoinPath):
	case parse.Try(c, &rest, &n.All, allPath):
	default:
		return parse.Fail[*cst.ResourcePath](c)
	}

	return parse.Ok(n, rest)
}

func entitySetPath(c parse.Cursor) parse.Result[*cst.EntitySetPath] {
	s := parse.Begin(c)
	n := &cst.EntitySetPath{
		Name:       parse.Step(&s, entitySetName),
		Navigation: parse.Maybe(&s, collectionNavigation),
	}
	parse.Expect(&s, pathEnd)

	return parse.End(&s, n)
}

func singletonPath(c parse.Cursor) parse.Result[*cst.SingletonPath] {
	s := parse.Begin(c)
	n := &cst.SingletonPath{
		Name:       parse.Step(&s, singletonEntity),
		Navigation: parse.Maybe(&s, singleNavigation),
	}
	parse.Expect(&s, pathEnd)

	return parse.End(&s, n)
}

func actionImportPath(c parse.Cursor) parse.Result[*cst.ActionImportCall] {
	s := parse.Begin(c)
	n := &cst.ActionImportCall{Import: parse.Step(&s, actionImport)}
	parse.Expect(&s, pathEnd)

	return parse.End(&s, n)
}

// functionImportPath reads the import call once and then classifies it by
// the first continuation that leads to the end of the path.
func functionImportPath(c parse.Cursor) parse.Result[*cst.ResourcePath] {
	s := parse.Begin(c)
	id := parse.Step(&s, odataIdentifier)
	params := parse.Step(&s, functionParameters)

	if !s.OK() {
		return parse.Fail[*cst.ResourcePath](c)
	}

	after := s.Cursor()
	n := new(cst.ResourcePath)

	if r := collectionNavigation(after); r.OK && atPathEnd(r.Rest) {
		n.EntityColFunctionImport = &cst.EntityColFunctionImportPath{
			Call: &cst.EntityColFunctionImportCall{
				Import: (*cst.EntityColFunctionImport)(id), Parameters: params,
			},
			Navigation: r.Value,
		}

		return parse.Ok(n, r.Rest)
	}

	if r := singleNavigation(after); r.OK && atPathEnd(r.Rest) {
		n.EntityFunctionImport = &cst.EntityFunctionImportPath{
			Call: &cst.EntityFunctionImportCall{
				Import: (*cst.EntityFunctionImport)(id), Parameters: params,
			},
			Navigation: r.Value,
		}

		return parse.Ok(n, r.Rest)
	}

	if r := complexColPath(after); r.OK && atPathEnd(r.Rest) {
		n.ComplexColFunctionImport = &cst.ComplexColFunctionImportPath{
			Call: &cst.ComplexColFunctionImportCall{
				Import: (*cst.ComplexColFunctionImport)(id), Parameters: params,
			},
			Path: r.Value,
		}

		return parse.Ok(n, r.Rest)
	}

	if r := complexPath(after); r.OK && atPathEnd(r.Rest) {
		n.ComplexFunctionImport = &cst.ComplexFunctionImportPath{
			Call: &cst.ComplexFunctionImportCall{
				Import: (*cst.ComplexFunctionImport)(id), Parameters: params,
			},
			Path: r.Value,
		}

		return parse.Ok(n, r.Rest)
	}

	if r := primitiveColPath(after); r.OK && atPathEnd(r.Rest) {
		n.PrimitiveColFunctionImport = &cst.PrimitiveColFunctionImportPath{
			Call: &cst.PrimitiveColFunctionImportCall{
				Import: (*cst.PrimitiveColFunctionImport)(id), Parameters: params,
			},
			Path: r.Value,
		}

		return parse.Ok(n, r.Rest)
	}

	if r := primitivePath(after); r.OK && atPathEnd(r.Rest) {
		n.PrimitiveFunctionImport = &cst.PrimitiveFunctionImportPath{
			Call: &cst.PrimitiveFunctionImportCall{
				Import: (*cst.PrimitiveFunctionImport)(id), Parameters: params,
			},
			Path: r.Value,
		}

		return parse.Ok(n, r.Rest)
	}

	if !atPathEnd(after) {
		return parse.Fail[*cst.ResourcePath](c)
	}

	n.EntityColFunctionImport = &cst.EntityColFunctionImportPath{
		Call: &cst.EntityColFunctionImportCall{
			Import: (*cst.EntityColFunctionImport)(id), Parameters: params,
		},
	}

	return parse.Ok(n, after)
}

func functionImportNoParensPath(c parse.Cursor) parse.Result[*cst.FunctionImportNoParensPath] {
	s := parse.Begin(c)
	n := &cst.FunctionImportNoParensPath{
		Call:  parse.Step(&s, functionImportCallNoParens),
		Query: parse.Maybe(&s, querySegment),
	}
	parse.Expect(&s, pathEnd)

	return parse.End(&s, n)
}

func functionImportCallNoParens(c parse.Cursor) parse.Result[*cst.FunctionImportCallNoParens] {
	s := parse.Begin(c)
	n := &cst.FunctionImportCallNoParens{Import: parse.Step(&s, entityFunctionImport)}

	return parse.End(&s, n)
}

func crossjoinPath(c parse.Cursor) parse.Result[*cst.CrossjoinPath] {
	s := parse.Begin(c)
	n := &cst.CrossjoinPath{
		Crossjoin: parse.Step(&s, crossjoin),
		Query:     parse.Maybe(&s, querySegment),
	}
	parse.Expect(&s, pathEnd)

	return parse.End(&s, n)
}

func allPath(c parse.Cursor) parse.Result[*cst.AllPath] {
	s := parse.Begin(c)
	n := &cst.AllPath{
		Keyword: parse.Step(&s, allPathKeyword),
		Cast:    parse.Maybe(&s, allCast),
	}
	parse.Expect(&s, pathEnd)

	return parse.End(&s, n)
}

func allCast(c parse.Cursor) parse.Result[*cst.AllCast] {
	s := parse.Begin(c)
	n := &cst.AllCast{
		Slash: parse.Step(&s, slash),
		Type:  parse.Step(&s, optionallyQualifiedEntityTypeName),
	}

	return parse.End(&s, n)
}

func atPathEnd(c parse.Cursor) bool { return pathEnd(c).OK }

func typeCastEntity(c parse.Cursor) parse.Result[*cst.TypeCastEntity] {
	s := parse.Begin(c)
	n := &cst.TypeCastEntity{
		Slash: parse.Step(&s, slash),
		Type:  parse.Step(&s, qualifiedEntityTypeName),
	}
	parse.Reject(&s, lparen)

	return parse.End(&s, n)
}

func typeCastComplex(c parse.Cursor) parse.Result[*cst.TypeCastComplex] {
	s := parse.Begin(c)
	n := &cst.TypeCastComplex{
		Slash: parse.Step(&s, slash),
		Type:  parse.Step(&s, qualifiedComplexTypeName),
	}
	parse.Reject(&s, lparen)

	return parse.End(&s, n)
}

func collectionNavigation(c parse.Cursor) parse.Result[*cst.CollectionNavigation] {
	if !c.EnterChain() {
		return parse.Fail[*cst.CollectionNavigation](c)
	}
	defer c.LeaveChain()

	s := parse.Begin(c)
	n := &cst.CollectionNavigation{
		Cast: parse.Maybe(&s, typeCastEntity),
		Path: parse.Maybe(&s, collectionNavPath),
	}

	if !s.Consumed() {
		return parse.Fail[*cst.CollectionNavigation](c)
	}

	return parse.End(&s, n)
}

func collectionNavPath(c parse.Cursor) parse.Result[*cst.CollectionNavPath] {
	var rest parse.Cursor

	n := new(cst.CollectionNavPath)

	switch {
	case parse.Try(c, &rest, &n.Filter, filterInPathNavigation):
	case parse.Try(c, &rest, &n.Each, eachPath):
	case parse.Try(c, &rest, &n.Count, count):
	case parse.Try(c, &rest, &n.Ref, ref):
	case parse.Try(c, &rest, &n.Query, querySegment):
	case parse.Try(c, &rest, &n.Operation, boundOperation):
	case parse.Try(c, &rest, &n.Key, keyNavigation):
	default:
		return parse.Fail[*cst.CollectionNavPath](c)
	}

	return parse.Ok(n, rest)
}

func filterInPathNavigation(c parse.Cursor) parse.Result[*cst.FilterInPathNavigation] {
	s := parse.Begin(c)
	n := &cst.FilterInPathNavigation{
		Filter: parse.Step(&s, filterInPath),
		Next:   parse.Maybe(&s, collectionNavigation),
	}

	return parse.End(&s, n)
}

func eachPath(c parse.Cursor) parse.Result[*cst.EachPath] {
	s := parse.Begin(c)
	n := &cst.EachPath{
		Each:      parse.Step(&s, each),
		Operation: parse.Maybe(&s, boundOperation),
	}

	return parse.End(&s, n)
}

func keyNavigation(c parse.Cursor) parse.Result[*cst.KeyNavigation] {
	s := parse.Begin(c)
	n := &cst.KeyNavigation{
		Key:        parse.Step(&s, keyPredicate),
		Navigation: parse.Maybe(&s, singleNavigation),
	}

	return parse.End(&s, n)
}

func keyPredicate(c parse.Cursor) parse.Result[*cst.KeyPredicate] {
	var rest parse.Cursor

	n := new(cst.KeyPredicate)

	switch {
	case parse.Try(c, &rest, &n.Simple, simpleKey):
	case parse.Try(c, &rest, &n.Compound, compoundKey):
	case parse.Try(c, &rest, &n.Path, keyPathSegments):
	default:
		return parse.Fail[*cst.KeyPredicate](c)
	}

	return parse.Ok(n, rest)
}

func simpleKey(c parse.Cursor) parse.Result[*cst.SimpleKey] {
	s := parse.Begin(c)
	n := &cst.SimpleKey{Open: parse.Step(&s, lparen)}

	if !s.OK() {
		return parse.Fail[*cst.SimpleKey](c)
	}

	if n.Alias = parse.Maybe(&s, parameterAlias); n.Alias == nil {
		n.Value = parse.Step(&s, keyPropertyValue)
	}

	n.Close = parse.Step(&s, rparen)

	return parse.End(&s, n)
}

func keyPropertyValue(c parse.Cursor) parse.Result[*cst.KeyPropertyValue] {
	return parse.As(primitiveLiteral(c), func(v *cst.PrimitiveLiteral) *cst.KeyPropertyValue {
		return (*cst.KeyPropertyValue)(v)
	})
}

func compoundKey(c parse.Cursor) parse.Result[*cst.CompoundKey] {
	s := parse.Begin(c)
	n := &cst.CompoundKey{
		Open:  parse.Step(&s, lparen),
		First: parse.Step(&s, keyValuePair),
		Rest:  parse.Star(&s, keyValuePairTail),
		Close: parse.Step(&s, rparen),
	}

	return parse.End(&s, n)
}

func keyValuePairTail(c parse.Cursor) parse.Result[cst.KeyValuePairTail] {
	s := parse.Begin(c)
	n := cst.KeyValuePairTail{
		Comma: parse.Step(&s, comma),
		Pair:  parse.Step(&s, keyValuePair),
	}

	return parse.End(&s, n)
}

// keyValuePair names the key by primitiveKeyProperty; an alias has the same
// spelling and is only recorded when that reading fails.
func keyValuePair(c parse.Cursor) parse.Result[*cst.KeyValuePair] {
	s := parse.Begin(c)
	n := &cst.KeyValuePair{Property: parse.Maybe(&s, primitiveKeyProperty)}

	if n.Property == nil {
		n.Alias = parse.Step(&s, keyPropertyAlias)
	}

	n.Eq = parse.Step(&s, eq)

	if !s.OK() {
		return parse.Fail[*cst.KeyValuePair](c)
	}

	if n.ParamRef = parse.Maybe(&s, parameterAlias); n.ParamRef == nil {
		n.Value = parse.Step(&s, keyPropertyValue)
	}

	return parse.End(&s, n)
}

func keyPathSegments(c parse.Cursor) parse.Result[*cst.KeyPathSegments] {
	s := parse.Begin(c)
	n := &cst.KeyPathSegments{
		Slash:   parse.Step(&s, slash),
		Literal: parse.Step(&s, keyPathLiteral),
	}

	return parse.End(&s, n)
}

func keyPathLiteral(c parse.Cursor) parse.Result[*cst.KeyPathLiteral] {
	s := parse.Begin(c)
	parse.Reject(&s, dollar)
	n := &cst.KeyPathLiteral{Chars: parse.Times(&s, keyPathChar, 1, parse.Unbounded)}

	return parse.End(&s, n)
}

func singleNavigation(c parse.Cursor) parse.Result[*cst.SingleNavigation] {
	if !c.EnterChain() {
		return parse.Fail[*cst.SingleNavigation](c)
	}
	defer c.LeaveChain()

	s := parse.Begin(c)
	n := &cst.SingleNavigation{Cast: parse.Maybe(&s, typeCastEntity)}

	var rest parse.Cursor

	switch cur := s.Cursor(); {
	case parse.Try(cur, &rest, &n.Operation, boundOperation):
	case parse.Try(cur, &rest, &n.Ref, ref):
	case parse.Try(cur, &rest, &n.Value, value):
	case parse.Try(cur, &rest, &n.Query, querySegment):
	case parse.Try(cur, &rest, &n.Property, propertyPathSegment):
	default:
		if n.Cast == nil {
			return parse.Fail[*cst.SingleNavigation](c)
		}

		rest = cur
	}

	return parse.Ok(n, rest)
}

func propertyPathSegment(c parse.Cursor) parse.Result[*cst.PropertyPathSegment] {
	s := parse.Begin(c)
	n := &cst.PropertyPathSegment{
		Slash: parse.Step(&s, slash),
		Path:  parse.Step(&s, propertyPath),
	}

	return parse.End(&s, n)
}

// propertyPath reads the property name once and classifies it by the first
// continuation that matches. A bare name is an entity collection
// navigation, the first kind whose continuation is optional.
func propertyPath(c parse.Cursor) parse.Result[*cst.PropertyPath] {
	if !c.EnterChain() {
		return parse.Fail[*cst.PropertyPath](c)
	}
	defer c.LeaveChain()

	id := odataIdentifier(c)
	if !id.OK {
		return parse.Fail[*cst.PropertyPath](c)
	}

	prop, after := id.Value, id.Rest
	n := new(cst.PropertyPath)

	if r := singleNavigation(after); r.OK {
		n.EntityNavigation = &cst.EntityNavigationPropertyPath{
			Property:   (*cst.EntityNavigationProperty)(prop),
			Navigation: r.Value,
		}

		return parse.Ok(n, r.Rest)
	}

	n.EntityColNavigation = &cst.EntityColNavigationPropertyPath{
		Property: (*cst.EntityColNavigationProperty)(prop),
	}

	if r := collectionNavigation(after); r.OK {
		n.EntityColNavigation.Navigation, after = r.Value, r.Rest
	}

	return parse.Ok(n, after)
}

func primitiveColPath(c parse.Cursor) parse.Result[*cst.PrimitiveColPath] {
	var rest parse.Cursor

	n := new(cst.PrimitiveColPath)

	switch {
	case parse.Try(c, &rest, &n.Count, count):
	case parse.Try(c, &rest, &n.Operation, boundOperation):
	case parse.Try(c, &rest, &n.Ordinal, ordinalIndex):
	case parse.Try(c, &rest, &n.Query, querySegment):
	default:
		return parse.Fail[*cst.PrimitiveColPath](c)
	}

	return parse.Ok(n, rest)
}

func primitivePath(c parse.Cursor) parse.Result[*cst.PrimitivePath] {
	var rest parse.Cursor

	n := new(cst.PrimitivePath)

	switch {
	case parse.Try(c, &rest, &n.Value, value):
	case parse.Try(c, &rest, &n.Operation, boundOperation):
	case parse.Try(c, &rest, &n.Query, querySegment):
	default:
		return parse.Fail[*cst.PrimitivePath](c)
	}

	return parse.Ok(n, rest)
}

func complexColPath(c parse.Cursor) parse.Result[*cst.ComplexColPath] {
	var rest parse.Cursor

	n := new(cst.ComplexColPath)

	switch {
	case parse.Try(c, &rest, &n.Ordinal, ordinalIndex):
	case parse.Try(c, &rest, &n.Cast, complexColCastPath):
	default:
		return parse.Fail[*cst.ComplexColPath](c)
	}

	return parse.Ok(n, rest)
}

func complexColCastPath(c parse.Cursor) parse.Result[*cst.ComplexColCastPath] {
	s := parse.Begin(c)
	n := &cst.ComplexColCastPath{Cast: parse.Maybe(&s, typeCastComplex)}
	rest := s.Cursor()

	switch cur := rest; {
	case parse.Try(cur, &rest, &n.Count, count):
	case parse.Try(cur, &rest, &n.Operation, boundOperation):
	case parse.Try(cur, &rest, &n.Query, querySegment):
	case n.Cast == nil:
		return parse.Fail[*cst.ComplexColCastPath](c)
	}

	return parse.Ok(n, rest)
}

func complexPath(c parse.Cursor) parse.Result[*cst.ComplexPath] {
	s := parse.Begin(c)
	n := &cst.ComplexPath{Cast: parse.Maybe(&s, typeCastComplex)}
	rest := s.Cursor()

	switch cur := rest; {
	case parse.Try(cur, &rest, &n.Operation, boundOperation):
	case parse.Try(cur, &rest, &n.Query, querySegment):
	case parse.Try(cur, &rest, &n.Property, propertyPathSegment):
	case n.Cast == nil:
		return parse.Fail[*cst.ComplexPath](c)
	}

	return parse.Ok(n, rest)
}

func filterInPath(c parse.Cursor) parse.Result[*cst.FilterInPath] {
	s := parse.Begin(c)
	n := &cst.FilterInPath{
		Keyword: parse.Step(&s, filterKeyword),
		Eq:      parse.Step(&s, eq),
		Alias:   parse.Step(&s, parameterAlias),
	}

	return parse.End(&s, n)
}

func each(c parse.Cursor) parse.Result[*cst.Each] {
	return parse.As(eachKeyword(c), func(t token) *cst.Each { return &cst.Each{Keyword: t} })
}

func count(c parse.Cursor) parse.Result[*cst.Count] {
	return parse.As(countKeyword(c), func(t token) *cst.Count { return &cst.Count{Keyword: t} })
}

func ref(c parse.Cursor) parse.Result[*cst.Ref] {
	return parse.As(refKeyword(c), func(t token) *cst.Ref { return &cst.Ref{Keyword: t} })
}

func value(c parse.Cursor) parse.Result[*cst.Value] {
	return parse.As(valueKeyword(c), func(t token) *cst.Value { return &cst.Value{Keyword: t} })
}

func querySegment(c parse.Cursor) parse.Result[*cst.QuerySegment] {
	return parse.As(queryKeyword(c), func(t token) *cst.QuerySegment {
		return &cst.QuerySegment{Keyword: t}
	})
}

func ordinalIndex(c parse.Cursor) parse.Result[*cst.OrdinalIndex] {
	s := parse.Begin(c)
	n := &cst.OrdinalIndex{
		Slash:  parse.Step(&s, slash),
		Digits: parse.Times(&s, digit, 1, parse.Unbounded),
	}

	return parse.End(&s, n)
}

// boundCall is the part shared by every bound function call.
type boundCall struct {
	ns     *cst.Namespace
	dot    token
	fn     *cst.ODataIdentifier
	params *cst.FunctionParameters
}

func boundOperation(c parse.Cursor) parse.Result[*cst.BoundOperation] {
	sl := slash(c)
	if !sl.OK {
		return parse.Fail[*cst.BoundOperation](c)
	}

	n := &cst.BoundOperation{Slash: sl.Value}

	if r := boundFunctionNoParensPath(sl.Rest); r.OK && r.Value.Query != nil {
		n.NoParens = r.Value

		return parse.Ok(n, r.Rest)
	}

	if r := boundActionCall(sl.Rest); r.OK && !lparen(r.Rest).OK {
		n.Action = r.Value

		return parse.Ok(n, r.Rest)
	}

	s := parse.Begin(sl.Rest)
	call := boundCall{
		ns:     parse.Step(&s, namespace),
		dot:    parse.Step(&s, dot),
		fn:     parse.Step(&s, odataIdentifier),
		params: parse.Step(&s, functionParameters),
	}

	if !s.OK() {
		return parse.Fail[*cst.BoundOperation](c)
	}

	after := s.Cursor()

	if r := collectionNavigation(after); r.OK {
		n.EntityCol = &cst.BoundEntityColFunctionPath{
			Call: &cst.BoundEntityColFunctionCall{
				Namespace: call.ns, Dot: call.dot,
				Function: (*cst.EntityColFunction)(call.fn), Parameters: call.params,
			},
			Navigation: r.Value,
		}

		return parse.Ok(n, r.Rest)
	}

	if r := singleNavigation(after); r.OK {
		n.Entity = &cst.BoundEntityFunctionPath{
			Call: &cst.BoundEntityFunctionCall{
				Namespace: call.ns, Dot: call.dot,
				Function: (*cst.EntityFunction)(call.fn), Parameters: call.params,
			},
			Navigation: r.Value,
		}

		return parse.Ok(n, r.Rest)
	}

	if r := complexColPath(after); r.OK {
		n.ComplexCol = &cst.BoundComplexColFunctionPath{
			Call: &cst.BoundComplexColFunctionCall{
				Namespace: call.ns, Dot: call.dot,
				Function: (*cst.ComplexColFunction)(call.fn), Parameters: call.params,
			},
			Path: r.Value,
		}

		return parse.Ok(n, r.Rest)
	}

	if r := complexPath(after); r.OK {
		n.Complex = &cst.BoundComplexFunctionPath{
			Call: &cst.BoundComplexFunctionCall{
				Namespace: call.ns, Dot: call.dot,
				Function: (*cst.ComplexFunction)(call.fn), Parameters: call.params,
			},
			Path: r.Value,
		}

		return parse.Ok(n, r.Rest)
	}

	if r := primitiveColPath(after); r.OK {
		n.PrimitiveCol = &cst.BoundPrimitiveColFunctionPath{
			Call: &cst.BoundPrimitiveColFunctionCall{
				Namespace: call.ns, Dot: call.dot,
				Function: (*cst.PrimitiveColFunction)(call.fn), Parameters: call.params,
			},
			Path: r.Value,
		}

		return parse.Ok(n, r.Rest)
	}

	if r := primitivePath(after); r.OK {
		n.Primitive = &cst.BoundPrimitiveFunctionPath{
			Call: &cst.BoundPrimitiveFunctionCall{
				Namespace: call.ns, Dot: call.dot,
				Function: (*cst.PrimitiveFunction)(call.fn), Parameters: call.params,
			},
			Path: r.Value,
		}

		return parse.Ok(n, r.Rest)
	}

	n.EntityCol = &cst.BoundEntityColFunctionPath{
		Call: &cst.BoundEntityColFunctionCall{
			Namespace: call.ns, Dot: call.dot,
			Function: (*cst.EntityColFunction)(call.fn), Parameters: call.params,
		},
	}

	return parse.Ok(n, after)
}

func boundActionCall(c parse.Cursor) parse.Result[*cst.BoundActionCall] {
	s := parse.Begin(c)
	n := &cst.BoundActionCall{
		Namespace: parse.Step(&s, namespace),
		Dot:       parse.Step(&s, dot),
		Action:    parse.Step(&s, action),
	}

	return parse.End(&s, n)
}

func boundFunctionNoParensPath(c parse.Cursor) parse.Result[*cst.BoundFunctionNoParensPath] {
	s := parse.Begin(c)
	n := &cst.BoundFunctionNoParensPath{
		Call:  parse.Step(&s, boundFunctionCallNoParens),
		Query: parse.Maybe(&s, querySegment),
	}

	return parse.End(&s, n)
}

func boundFunctionCallNoParens(c parse.Cursor) parse.Result[*cst.BoundFunctionCallNoParens] {
	s := parse.Begin(c)
	n := &cst.BoundFunctionCallNoParens{
		Namespace: parse.Step(&s, namespace),
		Dot:       parse.Step(&s, dot),
		Function:  parse.Step(&s, function),
	}

	return parse.End(&s, n)
}

func functionParameters(c parse.Cursor) parse.Result[*cst.FunctionParameters] {
	s := parse.Begin(c)
	n := &cst.FunctionParameters{Open: parse.Step(&s, lparen)}

	if n.First = parse.Maybe(&s, functionParameter); n.First != nil {
		n.Rest = parse.Star(&s, functionParameterTail)
	}

	n.Close = parse.Step(&s, rparen)

	return parse.End(&s, n)
}

func functionParameterTail(c parse.Cursor) parse.Result[cst.FunctionParameterTail] {
	s := parse.Begin(c)
	n := cst.FunctionParameterTail{
		Comma:     parse.Step(&s, comma),
		Parameter: parse.Step(&s, functionParameter),
	}

	return parse.End(&s, n)
}

func functionParameter(c parse.Cursor) parse.Result[*cst.FunctionParameter] {
	s := parse.Begin(c)
	n := &cst.FunctionParameter{
		Name: parse.Step(&s, parameterName),
		Eq:   parse.Step(&s, eq),
	}

	if !s.OK() {
		return parse.Fail[*cst.FunctionParameter](c)
	}

	if n.Alias = parse.Maybe(&s, parameterAlias); n.Alias == nil {
		n.Value = parse.Step(&s, primitiveLiteral)
	}

	return parse.End(&s, n)
}

func crossjoin(c parse.Cursor) parse.Result[*cst.Crossjoin] {
	s := parse.Begin(c)
	n := &cst.Crossjoin{
		Keyword: parse.Step(&s, crossjoinKeyword),
		Open:    parse.Step(&s, lparen),
		First:   parse.Step(&s, entitySetName),
		Rest:    parse.Star(&s, entitySetNameTail),
		Close:   parse.Step(&s, rparen),
	}

	return parse.End(&s, n)
}

func entitySetNameTail(c parse.Cursor) parse.Result[cst.EntitySetNameTail] {
	s := parse.Begin(c)
	n := cst.EntitySetNameTail{
		Comma: parse.Step(&s, comma),
		Name:  parse.Step(&s, entitySetName),
	}

	return parse.End(&s, n)
}

func context(c parse.Cursor) parse.Result[*cst.Context] {
	s := parse.Begin(c)
	n := &cst.Context{
		Hash:     parse.Step(&s, hash),
		Fragment: parse.Step(&s, contextFragment),
	}

	return parse.End(&s, n)
}

func contextFragment(c parse.Cursor) parse.Result[*cst.ContextFragment] {
	var rest parse.Cursor

	n := new(cst.ContextFragment)

	switch {
	case parse.Try(c, &rest, &n.Keyword, contextFragmentKeyword):
	case parse.Try(c, &rest, &n.Type, contextTypeFragment):
	case parse.Try(c, &rest, &n.EntitySet, contextEntitySetFragment):
	default:
		return parse.Fail[*cst.ContextFragment](c)
	}

	return parse.Ok(n, rest)
}

func contextFragmentKeyword(c parse.Cursor) parse.Result[*token] {
	return parse.As(contextKeyword(c), func(t token) *token { return &t })
}

func contextTypeFragment(c parse.Cursor) parse.Result[*cst.ContextTypeFragment] {
	s := parse.Begin(c)
	n := &cst.ContextTypeFragment{
		Type:   parse.Step(&s, qualifiedTypeName),
		Select: parse.Maybe(&s, selectList),
	}

	return parse.End(&s, n)
}

func contextEntitySetFragment(c parse.Cursor) parse.Result[*cst.ContextEntitySetFragment] {
	s := parse.Begin(c)
	n := &cst.ContextEntitySetFragment{
		Name:   parse.Step(&s, entitySetName),
		Key:    parse.Maybe(&s, keyPredicate),
		Select: parse.Maybe(&s, selectList),
		Suffix: parse.Opt(&s, contextSuffix),
	}

	return parse.End(&s, n)
}

func selectList(c parse.Cursor) parse.Result[*cst.SelectList] {
	s := parse.Begin(c)
	n := &cst.SelectList{
		Open:  parse.Step(&s, lparen),
		First: parse.Step(&s, selectListItem),
		Rest:  parse.Star(&s, selectListItemTail),
		Close: parse.Step(&s, rparen),
	}

	return parse.End(&s, n)
}

func selectListItemTail(c parse.Cursor) parse.Result[cst.SelectListItemTail] {
	s := parse.Begin(c)
	n := cst.SelectListItemTail{
		Comma: parse.Step(&s, comma),
		Item:  parse.Step(&s, selectListItem),
	}

	return parse.End(&s, n)
}

func selectListItem(c parse.Cursor) parse.Result[*cst.SelectListItem] {
	var rest parse.Cursor

	n := new(cst.SelectListItem)

	switch {
	case parse.Try(c, &rest, &n.Star, starToken):
	case parse.Try(c, &rest, &n.AllOperations, allOperationsInSchema):
	case parse.Try(c, &rest, &n.Qualified, qualifiedSelectListItem):
	default:
		return parse.Fail[*cst.SelectListItem](c)
	}

	return parse.Ok(n, rest)
}

func starToken(c parse.Cursor) parse.Result[*token] {
	return parse.As(star(c), func(t token) *token { return &t })
}

func qualifiedSelectListItem(c parse.Cursor) parse.Result[*cst.QualifiedSelectListItem] {
	s := parse.Begin(c)
	n := &cst.QualifiedSelectListItem{Cast: parse.Maybe(&s, selectListCast)}
	cur := s.Cursor()

	var rest parse.Cursor

	if r := qualifiedActionName(cur); r.OK && !lparen(r.Rest).OK {
		n.Action = r.Value

		return parse.Ok(n, r.Rest)
	}

	switch {
	case parse.Try(cur, &rest, &n.Function, qualifiedFunctionName):
	case parse.Try(cur, &rest, &n.Property, selectListProperty):
	default:
		return parse.Fail[*cst.QualifiedSelectListItem](c)
	}

	return parse.Ok(n, rest)
}

func selectListCast(c parse.Cursor) parse.Result[*cst.SelectListCast] {
	s := parse.Begin(c)
	n := &cst.SelectListCast{
		Type:  parse.Step(&s, qualifiedEntityTypeName),
		Slash: parse.Step(&s, slash),
	}

	return parse.End(&s, n)
}

func selectListProperty(c parse.Cursor) parse.Result[*cst.SelectListProperty] {
	if !c.EnterChain() {
		return parse.Fail[*cst.SelectListProperty](c)
	}
	defer c.LeaveChain()

	var rest parse.Cursor

	n := new(cst.SelectListProperty)

	switch {
	case parse.Try(c, &rest, &n.Primitive, selectListPrimitive):
	case parse.Try(c, &rest, &n.PrimitiveCol, selectListPrimitiveCol):
	case parse.Try(c, &rest, &n.Navigation, selectListNavigation):
	case parse.Try(c, &rest, &n.Path, selectListPath):
	default:
		return parse.Fail[*cst.SelectListProperty](c)
	}

	return parse.Ok(n, rest)
}

func selectListPrimitive(c parse.Cursor) parse.Result[*cst.PrimitiveProperty] {
	s := parse.Begin(c)
	n := parse.Step(&s, primitiveProperty)
	parse.Reject(&s, selectListStop)

	return parse.End(&s, n)
}

func selectListPrimitiveCol(c parse.Cursor) parse.Result[*cst.PrimitiveColProperty] {
	s := parse.Begin(c)
	n := parse.Step(&s, primitiveColProperty)
	parse.Reject(&s, selectListStop)

	return parse.End(&s, n)
}

func selectListNavigation(c parse.Cursor) parse.Result[*cst.SelectListNavigation] {
	s := parse.Begin(c)
	n := &cst.SelectListNavigation{
		Property: parse.Step(&s, navigationProperty),
		Plus:     parse.Opt(&s, plus),
		Select:   parse.Maybe(&s, selectList),
	}
	parse.Reject(&s, slash)

	return parse.End(&s, n)
}

func selectListPath(c parse.Cursor) parse.Result[*cst.SelectListPath] {
	s := parse.Begin(c)
	n := &cst.SelectListPath{
		Path: parse.Step(&s, selectPath),
		Next: parse.Maybe(&s, selectListPropertySegment),
	}

	return parse.End(&s, n)
}

func selectListPropertySegment(c parse.Cursor) parse.Result[*cst.SelectListPropertySegment] {
	s := parse.Begin(c)
	n := &cst.SelectListPropertySegment{
		Slash:    parse.Step(&s, slash),
		Property: parse.Step(&s, selectListProperty),
	}

	return parse.End(&s, n)
}

// selectPath records the property as complex; a complex collection has the
// same spelling.
func selectPath(c parse.Cursor) parse.Result[*cst.SelectPath] {
	s := parse.Begin(c)
	n := &cst.SelectPath{
		Complex: parse.Step(&s, complexProperty),
		Cast:    parse.Maybe(&s, typeCastComplex),
	}

	return parse.End(&s, n)
}
