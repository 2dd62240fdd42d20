package grammar

import (
	"github.com/ardnew/odatauri/cst"
	"github.com/ardnew/odatauri/parse"
)

var identLead = parse.Class(setIdentLead)

// odataIdentifier is on nearly every path through the grammar, so the
// leading character is checked before anything is allocated.
func odataIdentifier(c parse.Cursor) parse.Result[*cst.ODataIdentifier] {
	if b, ok := c.Peek(); !ok || !setIdentLead.Has(b) {
		c.Expect(setIdentLead.Name())

		return parse.Fail[*cst.ODataIdentifier](c)
	}

	s := parse.Begin(c)
	n := &cst.ODataIdentifier{
		Leading: parse.Step(&s, identLead),
		Rest:    parse.Times(&s, identChar, 0, 127),
	}
	parse.Reject(&s, identChar)

	return parse.End(&s, n)
}

type identifierNode interface {
	~struct {
		Leading parse.Token
		Rest    parse.Range[parse.Token]
	}
}

// name parses an identifier and retypes it as the rule N.
func name[N identifierNode](c parse.Cursor) parse.Result[*N] {
	r := odataIdentifier(c)
	if !r.OK {
		return parse.Fail[*N](c)
	}

	n := N(*r.Value)

	return parse.Ok(&n, r.Rest)
}

func namespacePart(c parse.Cursor) parse.Result[*cst.NamespacePart] {
	return name[cst.NamespacePart](c)
}

func entitySetName(c parse.Cursor) parse.Result[*cst.EntitySetName] {
	return name[cst.EntitySetName](c)
}

func singletonEntity(c parse.Cursor) parse.Result[*cst.SingletonEntity] {
	return name[cst.SingletonEntity](c)
}

func entityTypeName(c parse.Cursor) parse.Result[*cst.EntityTypeName] {
	return name[cst.EntityTypeName](c)
}

func complexTypeName(c parse.Cursor) parse.Result[*cst.ComplexTypeName] {
	return name[cst.ComplexTypeName](c)
}

func typeDefinitionName(c parse.Cursor) parse.Result[*cst.TypeDefinitionName] {
	return name[cst.TypeDefinitionName](c)
}

func enumerationTypeName(c parse.Cursor) parse.Result[*cst.EnumerationTypeName] {
	return name[cst.EnumerationTypeName](c)
}

func enumerationMember(c parse.Cursor) parse.Result[*cst.EnumerationMember] {
	return name[cst.EnumerationMember](c)
}

func termName(c parse.Cursor) parse.Result[*cst.TermName] {
	return name[cst.TermName](c)
}

func primitiveProperty(c parse.Cursor) parse.Result[*cst.PrimitiveProperty] {
	return name[cst.PrimitiveProperty](c)
}

func primitiveKeyProperty(c parse.Cursor) parse.Result[*cst.PrimitiveKeyProperty] {
	return name[cst.PrimitiveKeyProperty](c)
}

func primitiveColProperty(c parse.Cursor) parse.Result[*cst.PrimitiveColProperty] {
	return name[cst.PrimitiveColProperty](c)
}

func complexProperty(c parse.Cursor) parse.Result[*cst.ComplexProperty] {
	return name[cst.ComplexProperty](c)
}

func complexColProperty(c parse.Cursor) parse.Result[*cst.ComplexColProperty] {
	return name[cst.ComplexColProperty](c)
}

func streamProperty(c parse.Cursor) parse.Result[*cst.StreamProperty] {
	return name[cst.StreamProperty](c)
}

func navigationProperty(c parse.Cursor) parse.Result[*cst.NavigationProperty] {
	return name[cst.NavigationProperty](c)
}

func entityNavigationProperty(c parse.Cursor) parse.Result[*cst.EntityNavigationProperty] {
	return name[cst.EntityNavigationProperty](c)
}

func entityColNavigationProperty(c parse.Cursor) parse.Result[*cst.EntityColNavigationProperty] {
	return name[cst.EntityColNavigationProperty](c)
}

func action(c parse.Cursor) parse.Result[*cst.Action] {
	return name[cst.Action](c)
}

func actionImport(c parse.Cursor) parse.Result[*cst.ActionImport] {
	return name[cst.ActionImport](c)
}

func function(c parse.Cursor) parse.Result[*cst.Function] {
	return name[cst.Function](c)
}

func entityFunction(c parse.Cursor) parse.Result[*cst.EntityFunction] {
	return name[cst.EntityFunction](c)
}

func entityColFunction(c parse.Cursor) parse.Result[*cst.EntityColFunction] {
	return name[cst.EntityColFunction](c)
}

func complexFunction(c parse.Cursor) parse.Result[*cst.ComplexFunction] {
	return name[cst.ComplexFunction](c)
}

func complexColFunction(c parse.Cursor) parse.Result[*cst.ComplexColFunction] {
	return name[cst.ComplexColFunction](c)
}

func primitiveFunction(c parse.Cursor) parse.Result[*cst.PrimitiveFunction] {
	return name[cst.PrimitiveFunction](c)
}

func primitiveColFunction(c parse.Cursor) parse.Result[*cst.PrimitiveColFunction] {
	return name[cst.PrimitiveColFunction](c)
}

func entityFunctionImport(c parse.Cursor) parse.Result[*cst.EntityFunctionImport] {
	return name[cst.EntityFunctionImport](c)
}

func entityColFunctionImport(c parse.Cursor) parse.Result[*cst.EntityColFunctionImport] {
	return name[cst.EntityColFunctionImport](c)
}

func complexFunctionImport(c parse.Cursor) parse.Result[*cst.ComplexFunctionImport] {
	return name[cst.ComplexFunctionImport](c)
}

func complexColFunctionImport(c parse.Cursor) parse.Result[*cst.ComplexColFunctionImport] {
	return name[cst.ComplexColFunctionImport](c)
}

func primitiveFunctionImport(c parse.Cursor) parse.Result[*cst.PrimitiveFunctionImport] {
	return name[cst.PrimitiveFunctionImport](c)
}

func primitiveColFunctionImport(c parse.Cursor) parse.Result[*cst.PrimitiveColFunctionImport] {
	return name[cst.PrimitiveColFunctionImport](c)
}

func parameterName(c parse.Cursor) parse.Result[*cst.ParameterName] {
	return name[cst.ParameterName](c)
}

func lambdaVariableExpr(c parse.Cursor) parse.Result[*cst.LambdaVariableExpr] {
	return name[cst.LambdaVariableExpr](c)
}

func computedProperty(c parse.Cursor) parse.Result[*cst.ComputedProperty] {
	return name[cst.ComputedProperty](c)
}

func annotationQualifier(c parse.Cursor) parse.Result[*cst.AnnotationQualifier] {
	return name[cst.AnnotationQualifier](c)
}

func keyPropertyAlias(c parse.Cursor) parse.Result[*cst.KeyPropertyAlias] {
	return name[cst.KeyPropertyAlias](c)
}

// namespace stops before the last dotted part so that the caller can match
// the trailing "." and type or operation name.
func namespace(c parse.Cursor) parse.Result[*cst.Namespace] {
	first := namespacePart(c)
	if !first.OK {
		return parse.Fail[*cst.Namespace](c)
	}

	n := &cst.Namespace{First: first.Value}
	cur := first.Rest

	for {
		s := parse.Begin(cur)
		tail := cst.NamespaceTail{
			Dot:  parse.Step(&s, dot),
			Part: parse.Step(&s, namespacePart),
		}
		parse.Expect(&s, dot)

		if !s.OK() {
			break
		}

		n.Rest = append(n.Rest, tail)
		cur = s.Cursor()
	}

	return parse.Ok(n, cur)
}

func namespacePrefix(c parse.Cursor) parse.Result[*cst.NamespacePrefix] {
	s := parse.Begin(c)
	n := &cst.NamespacePrefix{
		Namespace: parse.Step(&s, namespace),
		Dot:       parse.Step(&s, dot),
	}

	return parse.End(&s, n)
}

func qualifiedEntityTypeName(c parse.Cursor) parse.Result[*cst.QualifiedEntityTypeName] {
	s := parse.Begin(c)
	n := &cst.QualifiedEntityTypeName{
		Namespace: parse.Step(&s, namespace),
		Dot:       parse.Step(&s, dot),
		Name:      parse.Step(&s, entityTypeName),
	}

	return parse.End(&s, n)
}

func qualifiedComplexTypeName(c parse.Cursor) parse.Result[*cst.QualifiedComplexTypeName] {
	s := parse.Begin(c)
	n := &cst.QualifiedComplexTypeName{
		Namespace: parse.Step(&s, namespace),
		Dot:       parse.Step(&s, dot),
		Name:      parse.Step(&s, complexTypeName),
	}

	return parse.End(&s, n)
}

func qualifiedTypeDefinitionName(c parse.Cursor) parse.Result[*cst.QualifiedTypeDefinitionName] {
	s := parse.Begin(c)
	n := &cst.QualifiedTypeDefinitionName{
		Namespace: parse.Step(&s, namespace),
		Dot:       parse.Step(&s, dot),
		Name:      parse.Step(&s, typeDefinitionName),
	}

	return parse.End(&s, n)
}

func qualifiedEnumTypeName(c parse.Cursor) parse.Result[*cst.QualifiedEnumTypeName] {
	s := parse.Begin(c)
	n := &cst.QualifiedEnumTypeName{
		Namespace: parse.Step(&s, namespace),
		Dot:       parse.Step(&s, dot),
		Name:      parse.Step(&s, enumerationTypeName),
	}

	return parse.End(&s, n)
}

func optionallyQualifiedEntityTypeName(c parse.Cursor) parse.Result[*cst.OptionallyQualifiedEntityTypeName] {
	s := parse.Begin(c)
	n := &cst.OptionallyQualifiedEntityTypeName{
		Prefix: parse.Maybe(&s, namespacePrefix),
		Name:   parse.Step(&s, entityTypeName),
	}

	return parse.End(&s, n)
}

func optionallyQualifiedComplexTypeName(c parse.Cursor) parse.Result[*cst.OptionallyQualifiedComplexTypeName] {
	s := parse.Begin(c)
	n := &cst.OptionallyQualifiedComplexTypeName{
		Prefix: parse.Maybe(&s, namespacePrefix),
		Name:   parse.Step(&s, complexTypeName),
	}

	return parse.End(&s, n)
}

var (
	edmPrefix    = parse.Lit("Edm.")
	edmPrimitive = parse.OneOf(false,
		"Binary", "Boolean", "Byte", "DateTimeOffset", "Date", "Decimal",
		"Double", "Duration", "Guid", "Int16", "Int32", "Int64", "SByte",
		"Single", "Stream", "String", "TimeOfDay",
	)
	concreteSpatialTypeName = parse.OneOf(false,
		"Collection", "LineString", "MultiLineString", "MultiPoint",
		"MultiPolygon", "Point", "Polygon",
	)
	abstractSpatial = parse.OneOf(false, "Geography", "Geometry")
)

func abstractSpatialTypeName(c parse.Cursor) parse.Result[*cst.AbstractSpatialTypeName] {
	return parse.As(abstractSpatial(c), func(t token) *cst.AbstractSpatialTypeName {
		return &cst.AbstractSpatialTypeName{Name: t}
	})
}

func primitiveTypeName(c parse.Cursor) parse.Result[*cst.PrimitiveTypeName] {
	s := parse.Begin(c)
	n := &cst.PrimitiveTypeName{Edm: parse.Step(&s, edmPrefix)}

	if n.Name = parse.Opt(&s, edmPrimitive); n.Name == nil {
		n.Spatial = parse.Step(&s, abstractSpatialTypeName)
		n.Concrete = parse.Opt(&s, concreteSpatialTypeName)
	}

	parse.Reject(&s, identChar)

	return parse.End(&s, n)
}

func singleQualifiedTypeName(c parse.Cursor) parse.Result[*cst.SingleQualifiedTypeName] {
	var rest parse.Cursor

	n := new(cst.SingleQualifiedTypeName)

	switch {
	case parse.Try(c, &rest, &n.PrimitiveTypeName, primitiveTypeName):
	case parse.Try(c, &rest, &n.QualifiedEntityTypeName, qualifiedEntityTypeName):
	case parse.Try(c, &rest, &n.QualifiedComplexTypeName, qualifiedComplexTypeName):
	case parse.Try(c, &rest, &n.QualifiedTypeDefinitionName, qualifiedTypeDefinitionName):
	case parse.Try(c, &rest, &n.QualifiedEnumTypeName, qualifiedEnumTypeName):
	default:
		return parse.Fail[*cst.SingleQualifiedTypeName](c)
	}

	return parse.Ok(n, rest)
}

var collectionKeyword = parse.Lit("Collection")

func qualifiedCollectionType(c parse.Cursor) parse.Result[*cst.QualifiedCollectionType] {
	s := parse.Begin(c)
	n := &cst.QualifiedCollectionType{
		Keyword: parse.Step(&s, collectionKeyword),
		Open:    parse.Step(&s, lparen),
		Type:    parse.Step(&s, singleQualifiedTypeName),
		Close:   parse.Step(&s, rparen),
	}

	return parse.End(&s, n)
}

func qualifiedTypeName(c parse.Cursor) parse.Result[*cst.QualifiedTypeName] {
	var rest parse.Cursor

	n := new(cst.QualifiedTypeName)

	switch {
	case parse.Try(c, &rest, &n.Collection, qualifiedCollectionType):
	case parse.Try(c, &rest, &n.Single, singleQualifiedTypeName):
	default:
		return parse.Fail[*cst.QualifiedTypeName](c)
	}

	return parse.Ok(n, rest)
}

func singleTypeName(c parse.Cursor) parse.Result[*cst.SingleTypeName] {
	var rest parse.Cursor

	n := new(cst.SingleTypeName)

	switch {
	case parse.Try(c, &rest, &n.Qualified, singleQualifiedTypeName):
	case parse.Try(c, &rest, &n.Identifier, odataIdentifier):
	default:
		return parse.Fail[*cst.SingleTypeName](c)
	}

	return parse.Ok(n, rest)
}

func collectionTypeName(c parse.Cursor) parse.Result[*cst.CollectionTypeName] {
	s := parse.Begin(c)
	n := &cst.CollectionTypeName{
		Keyword: parse.Step(&s, collectionKeyword),
		Open:    parse.Step(&s, lparen),
		Type:    parse.Step(&s, singleTypeName),
		Close:   parse.Step(&s, rparen),
	}

	return parse.End(&s, n)
}

func optionallyQualifiedTypeName(c parse.Cursor) parse.Result[*cst.OptionallyQualifiedTypeName] {
	var rest parse.Cursor

	n := new(cst.OptionallyQualifiedTypeName)

	switch {
	case parse.Try(c, &rest, &n.Collection, collectionTypeName):
	case parse.Try(c, &rest, &n.Single, singleTypeName):
	default:
		return parse.Fail[*cst.OptionallyQualifiedTypeName](c)
	}

	return parse.Ok(n, rest)
}

func parameterAlias(c parse.Cursor) parse.Result[*cst.ParameterAlias] {
	s := parse.Begin(c)
	n := &cst.ParameterAlias{
		At:         parse.Step(&s, at),
		Identifier: parse.Step(&s, odataIdentifier),
	}

	return parse.End(&s, n)
}

func qualifiedActionName(c parse.Cursor) parse.Result[*cst.QualifiedActionName] {
	s := parse.Begin(c)
	n := &cst.QualifiedActionName{
		Namespace: parse.Step(&s, namespace),
		Dot:       parse.Step(&s, dot),
		Action:    parse.Step(&s, action),
	}

	return parse.End(&s, n)
}

func qualifiedFunctionName(c parse.Cursor) parse.Result[*cst.QualifiedFunctionName] {
	s := parse.Begin(c)
	n := &cst.QualifiedFunctionName{
		Namespace:  parse.Step(&s, namespace),
		Dot:        parse.Step(&s, dot),
		Function:   parse.Step(&s, function),
		Parameters: parse.Maybe(&s, parameterNameList),
	}

	return parse.End(&s, n)
}

func parameterNameList(c parse.Cursor) parse.Result[*cst.ParameterNameList] {
	s := parse.Begin(c)
	n := &cst.ParameterNameList{
		Open:  parse.Step(&s, lparen),
		Names: parse.Step(&s, parameterNames),
		Close: parse.Step(&s, rparen),
	}

	return parse.End(&s, n)
}

func parameterNames(c parse.Cursor) parse.Result[*cst.ParameterNames] {
	s := parse.Begin(c)
	n := &cst.ParameterNames{
		First: parse.Step(&s, parameterName),
		Rest:  parse.Star(&s, parameterNameTail),
	}

	return parse.End(&s, n)
}

func parameterNameTail(c parse.Cursor) parse.Result[cst.ParameterNameTail] {
	s := parse.Begin(c)
	n := cst.ParameterNameTail{
		Comma: parse.Step(&s, comma),
		Name:  parse.Step(&s, parameterName),
	}

	return parse.End(&s, n)
}

func allOperationsInSchema(c parse.Cursor) parse.Result[*cst.AllOperationsInSchema] {
	s := parse.Begin(c)
	n := &cst.AllOperationsInSchema{
		Namespace: parse.Step(&s, namespace),
		Dot:       parse.Step(&s, dot),
		Star:      parse.Step(&s, star),
	}

	return parse.End(&s, n)
}
