package cst

import "github.com/ardnew/odatauri/parse"

// ODataIdentifier is a simple identifier of at most 128 characters.
type ODataIdentifier struct {
	Leading Token
	Rest    parse.Range[Token]
}

// Identifier rules. Without a schema they are syntactically identical; the
// type records the role the grammar assigned at that position.
type (
	NamespacePart               ODataIdentifier
	EntitySetName               ODataIdentifier
	SingletonEntity             ODataIdentifier
	EntityTypeName              ODataIdentifier
	ComplexTypeName             ODataIdentifier
	TypeDefinitionName          ODataIdentifier
	EnumerationTypeName         ODataIdentifier
	EnumerationMember           ODataIdentifier
	TermName                    ODataIdentifier
	PrimitiveProperty           ODataIdentifier
	PrimitiveKeyProperty        ODataIdentifier
	PrimitiveColProperty        ODataIdentifier
	ComplexProperty             ODataIdentifier
	ComplexColProperty          ODataIdentifier
	StreamProperty              ODataIdentifier
	NavigationProperty          ODataIdentifier
	EntityNavigationProperty    ODataIdentifier
	EntityColNavigationProperty ODataIdentifier
	Action                      ODataIdentifier
	ActionImport                ODataIdentifier
	Function                    ODataIdentifier
	EntityFunction              ODataIdentifier
	EntityColFunction           ODataIdentifier
	ComplexFunction             ODataIdentifier
	ComplexColFunction          ODataIdentifier
	PrimitiveFunction           ODataIdentifier
	PrimitiveColFunction        ODataIdentifier
	EntityFunctionImport        ODataIdentifier
	EntityColFunctionImport     ODataIdentifier
	ComplexFunctionImport       ODataIdentifier
	ComplexColFunctionImport    ODataIdentifier
	PrimitiveFunctionImport     ODataIdentifier
	PrimitiveColFunctionImport  ODataIdentifier
	ParameterName               ODataIdentifier
	LambdaVariableExpr          ODataIdentifier
	ComputedProperty            ODataIdentifier
	AnnotationQualifier         ODataIdentifier
	KeyPropertyAlias            ODataIdentifier
)

// Namespace is a dot-separated sequence of namespace parts.
type Namespace struct {
	First *NamespacePart
	Rest  []NamespaceTail
}

// NamespaceTail is one "." namespacePart continuation.
type NamespaceTail struct {
	Dot  Token
	Part *NamespacePart
}

// QualifiedEntityTypeName is namespace "." entityTypeName.
type QualifiedEntityTypeName struct {
	Namespace *Namespace
	Dot       Token
	Name      *EntityTypeName
}

// QualifiedComplexTypeName is namespace "." complexTypeName.
type QualifiedComplexTypeName struct {
	Namespace *Namespace
	Dot       Token
	Name      *ComplexTypeName
}

// QualifiedTypeDefinitionName is namespace "." typeDefinitionName.
type QualifiedTypeDefinitionName struct {
	Namespace *Namespace
	Dot       Token
	Name      *TypeDefinitionName
}

// QualifiedEnumTypeName is namespace "." enumerationTypeName.
type QualifiedEnumTypeName struct {
	Namespace *Namespace
	Dot       Token
	Name      *EnumerationTypeName
}

// NamespacePrefix is an optional namespace qualifier with its dot.
type NamespacePrefix struct {
	Namespace *Namespace
	Dot       Token
}

// OptionallyQualifiedEntityTypeName is [ namespace "." ] entityTypeName.
type OptionallyQualifiedEntityTypeName struct {
	Prefix *NamespacePrefix
	Name   *EntityTypeName
}

// OptionallyQualifiedComplexTypeName is [ namespace "." ] complexTypeName.
type OptionallyQualifiedComplexTypeName struct {
	Prefix *NamespacePrefix
	Name   *ComplexTypeName
}

// SingleQualifiedTypeName names one primitive or schema type.
type SingleQualifiedTypeName struct {
	PrimitiveTypeName           *PrimitiveTypeName
	QualifiedEntityTypeName     *QualifiedEntityTypeName
	QualifiedComplexTypeName    *QualifiedComplexTypeName
	QualifiedTypeDefinitionName *QualifiedTypeDefinitionName
	QualifiedEnumTypeName       *QualifiedEnumTypeName
}

// QualifiedTypeName is a single type or a collection of one.
type QualifiedTypeName struct {
	Collection *QualifiedCollectionType
	Single     *SingleQualifiedTypeName
}

// QualifiedCollectionType is 'Collection' OPEN singleQualifiedTypeName CLOSE.
type QualifiedCollectionType struct {
	Keyword Token
	Open    Token
	Type    *SingleQualifiedTypeName
	Close   Token
}

// SingleTypeName is a qualified type name or a bare identifier.
type SingleTypeName struct {
	Qualified  *SingleQualifiedTypeName
	Identifier *ODataIdentifier
}

// OptionallyQualifiedTypeName is used by cast and isof.
type OptionallyQualifiedTypeName struct {
	Collection *CollectionTypeName
	Single     *SingleTypeName
}

// CollectionTypeName is 'Collection' OPEN singleTypeName CLOSE.
type CollectionTypeName struct {
	Keyword Token
	Open    Token
	Type    *SingleTypeName
	Close   Token
}

// PrimitiveTypeName is an Edm primitive type.
type PrimitiveTypeName struct {
	Edm      Token
	Name     *Token
	Spatial  *AbstractSpatialTypeName
	Concrete *Token
}

// AbstractSpatialTypeName is 'Geography' or 'Geometry'.
type AbstractSpatialTypeName struct {
	Name Token
}

// ParameterAlias is AT odataIdentifier.
type ParameterAlias struct {
	At         Token
	Identifier *ODataIdentifier
}

// QualifiedActionName is namespace "." action.
type QualifiedActionName struct {
	Namespace *Namespace
	Dot       Token
	Action    *Action
}

// QualifiedFunctionName is namespace "." function with optional parameter
// names.
type QualifiedFunctionName struct {
	Namespace  *Namespace
	Dot        Token
	Function   *Function
	Parameters *ParameterNameList
}

// ParameterNameList is OPEN parameterNames CLOSE.
type ParameterNameList struct {
	Open  Token
	Names *ParameterNames
	Close Token
}

// ParameterNames is a comma-separated list of parameter names.
type ParameterNames struct {
	First *ParameterName
	Rest  []ParameterNameTail
}

// ParameterNameTail is COMMA parameterName.
type ParameterNameTail struct {
	Comma Token
	Name  *ParameterName
}

// AllOperationsInSchema is namespace "." STAR.
type AllOperationsInSchema struct {
	Namespace *Namespace
	Dot       Token
	Star      Token
}
