package cst

import "github.com/ardnew/odatauri/parse"

// ODataURI is serviceRoot [ odataRelativeUri ].
type ODataURI struct {
	ServiceRoot *ServiceRoot
	Relative    *ODataRelativeURI
}

// ServiceRoot is the scheme, authority and path prefix of a service.
type ServiceRoot struct {
	Scheme    Token
	Separator Token
	Host      *Host
	Port      *Port
	Slash     Token
	Segments  []ServiceRootSegment
}

// ServiceRootSegment is segment-nz "/".
type ServiceRootSegment struct {
	Segment *SegmentNZ
	Slash   Token
}

// SegmentNZ is a non-empty path segment.
type SegmentNZ struct {
	Chars parse.Range[Token]
}

// Port is ":" *DIGIT.
type Port struct {
	Colon  Token
	Digits []Token
}

// Host is an IP literal, an IPv4 address or a registered name.
type Host struct {
	IPLiteral *IPLiteral
	IPv4      *IPv4Address
	RegName   *RegName
}

// IPLiteral is a bracketed IPv6 or future address.
type IPLiteral struct {
	Open  Token
	Chars parse.Range[Token]
	Close Token
}

// IPv4Address is four dotted decimal octets.
type IPv4Address struct {
	First  *DecOctet
	Dot1   Token
	Second *DecOctet
	Dot2   Token
	Third  *DecOctet
	Dot3   Token
	Fourth *DecOctet
}

// DecOctet is a decimal number from 0 to 255.
type DecOctet struct {
	Digits Token
}

// RegName is a registered host name.
type RegName struct {
	Chars []Token
}

// ODataRelativeURI is a service-relative request target.
type ODataRelativeURI struct {
	Batch      *BatchURI
	Entity     *EntityURI
	EntityCast *EntityCastURI
	Metadata   *MetadataURI
	Resource   *ResourceURI
}

// BatchURI is '$batch' [ "?" batchOptions ].
type BatchURI struct {
	Keyword Token
	Query   *BatchQuery
}

type BatchQuery struct {
	QMark   Token
	Options *BatchOptions
}

// EntityURI is '$entity' "?" entityOptions.
type EntityURI struct {
	Keyword Token
	QMark   Token
	Options *EntityOptions
}

// EntityCastURI is '$entity' "/" qualifiedEntityTypeName "?" entityCastOptions.
type EntityCastURI struct {
	Keyword Token
	Slash   Token
	Type    *QualifiedEntityTypeName
	QMark   Token
	Options *EntityCastOptions
}

// MetadataURI is '$metadata' [ "?" metadataOptions ] [ context ].
type MetadataURI struct {
	Keyword Token
	Query   *MetadataQuery
	Context *Context
}

type MetadataQuery struct {
	QMark   Token
	Options *MetadataOptions
}

// ResourceURI is resourcePath [ "?" [ queryOptions ] ].
type ResourceURI struct {
	Path  *ResourcePath
	Query *ResourceQuery
}

type ResourceQuery struct {
	QMark   Token
	Options *QueryOptions
}

// ResourcePath addresses an entity set, singleton, operation import,
// cross join or all entities.
type ResourcePath struct {
	EntitySet                  *EntitySetPath
	Singleton                  *SingletonPath
	ActionImport               *ActionImportCall
	EntityColFunctionImport    *EntityColFunctionImportPath
	EntityFunctionImport       *EntityFunctionImportPath
	ComplexColFunctionImport   *ComplexColFunctionImportPath
	ComplexFunctionImport      *ComplexFunctionImportPath
	PrimitiveColFunctionImport *PrimitiveColFunctionImportPath
	PrimitiveFunctionImport    *PrimitiveFunctionImportPath
	FunctionImportNoParens     *FunctionImportNoParensPath
	Crossjoin                  *CrossjoinPath
	All                        *AllPath
}

type EntitySetPath struct {
	Name       *EntitySetName
	Navigation *CollectionNavigation
}

type SingletonPath struct {
	Name       *SingletonEntity
	Navigation *SingleNavigation
}

type EntityColFunctionImportPath struct {
	Call       *EntityColFunctionImportCall
	Navigation *CollectionNavigation
}

type EntityFunctionImportPath struct {
	Call       *EntityFunctionImportCall
	Navigation *SingleNavigation
}

type ComplexColFunctionImportPath struct {
	Call *ComplexColFunctionImportCall
	Path *ComplexColPath
}

type ComplexFunctionImportPath struct {
	Call *ComplexFunctionImportCall
	Path *ComplexPath
}

type PrimitiveColFunctionImportPath struct {
	Call *PrimitiveColFunctionImportCall
	Path *PrimitiveColPath
}

type PrimitiveFunctionImportPath struct {
	Call *PrimitiveFunctionImportCall
	Path *PrimitivePath
}

type FunctionImportNoParensPath struct {
	Call  *FunctionImportCallNoParens
	Query *QuerySegment
}

type CrossjoinPath struct {
	Crossjoin *Crossjoin
	Query     *QuerySegment
}

// AllPath is '$all' [ "/" optionallyQualifiedEntityTypeName ].
type AllPath struct {
	Keyword Token
	Cast    *AllCast
}

type AllCast struct {
	Slash Token
	Type  *OptionallyQualifiedEntityTypeName
}

// TypeCastEntity is "/" qualifiedEntityTypeName.
type TypeCastEntity struct {
	Slash Token
	Type  *QualifiedEntityTypeName
}

// TypeCastComplex is "/" qualifiedComplexTypeName.
type TypeCastComplex struct {
	Slash Token
	Type  *QualifiedComplexTypeName
}

// CollectionNavigation is [ typeCastEntity ] [ collectionNavPath ], never
// empty.
type CollectionNavigation struct {
	Cast *TypeCastEntity
	Path *CollectionNavPath
}

// CollectionNavPath continues a path addressing a collection of entities.
type CollectionNavPath struct {
	Filter    *FilterInPathNavigation
	Each      *EachPath
	Count     *Count
	Ref       *Ref
	Query     *QuerySegment
	Operation *BoundOperation
	Key       *KeyNavigation
}

type FilterInPathNavigation struct {
	Filter *FilterInPath
	Next   *CollectionNavigation
}

type EachPath struct {
	Each      *Each
	Operation *BoundOperation
}

type KeyNavigation struct {
	Key        *KeyPredicate
	Navigation *SingleNavigation
}

// KeyPredicate identifies a single entity within a collection.
type KeyPredicate struct {
	Simple   *SimpleKey
	Compound *CompoundKey
	Path     *KeyPathSegments
}

// SimpleKey is OPEN ( parameterAlias / keyPropertyValue ) CLOSE.
type SimpleKey struct {
	Open  Token
	Alias *ParameterAlias
	Value *KeyPropertyValue
	Close Token
}

// KeyPropertyValue is a primitive literal used as a key.
type KeyPropertyValue PrimitiveLiteral

// CompoundKey is OPEN keyValuePair *( COMMA keyValuePair ) CLOSE.
type CompoundKey struct {
	Open  Token
	First *KeyValuePair
	Rest  []KeyValuePairTail
	Close Token
}

type KeyValuePairTail struct {
	Comma Token
	Pair  *KeyValuePair
}

// KeyValuePair is a named key value.
type KeyValuePair struct {
	Property *PrimitiveKeyProperty
	Alias    *KeyPropertyAlias
	Eq       Token
	ParamRef *ParameterAlias
	Value    *KeyPropertyValue
}

// KeyPathSegments is a key given as a path segment.
type KeyPathSegments struct {
	Slash   Token
	Literal *KeyPathLiteral
}

type KeyPathLiteral struct {
	Chars parse.Range[Token]
}

// SingleNavigation continues a path addressing a single entity, never
// empty.
type SingleNavigation struct {
	Cast      *TypeCastEntity
	Operation *BoundOperation
	Ref       *Ref
	Value     *Value
	Query     *QuerySegment
	Property  *PropertyPathSegment
}

// PropertyPathSegment is "/" propertyPath.
type PropertyPathSegment struct {
	Slash Token
	Path  *PropertyPath
}

// PropertyPath is a property followed by the continuation its kind allows.
type PropertyPath struct {
	EntityNavigation    *EntityNavigationPropertyPath
	EntityColNavigation *EntityColNavigationPropertyPath
	ComplexCol          *ComplexColPropertyPath
	Complex             *ComplexPropertyPath
	PrimitiveCol        *PrimitiveColPropertyPath
	Primitive           *PrimitivePropertyPath
	Stream              *StreamPropertyPath
}

type EntityNavigationPropertyPath struct {
	Property   *EntityNavigationProperty
	Navigation *SingleNavigation
}

type EntityColNavigationPropertyPath struct {
	Property   *EntityColNavigationProperty
	Navigation *CollectionNavigation
}

type ComplexColPropertyPath struct {
	Property *ComplexColProperty
	Path     *ComplexColPath
}

type ComplexPropertyPath struct {
	Property *ComplexProperty
	Path     *ComplexPath
}

type PrimitiveColPropertyPath struct {
	Property *PrimitiveColProperty
	Path     *PrimitiveColPath
}

type PrimitivePropertyPath struct {
	Property *PrimitiveProperty
	Path     *PrimitivePath
}

type StreamPropertyPath struct {
	Property  *StreamProperty
	Operation *BoundOperation
}

// PrimitiveColPath continues a collection of primitive values.
type PrimitiveColPath struct {
	Count     *Count
	Operation *BoundOperation
	Ordinal   *OrdinalIndex
	Query     *QuerySegment
}

// PrimitivePath continues a primitive value.
type PrimitivePath struct {
	Value     *Value
	Operation *BoundOperation
	Query     *QuerySegment
}

// ComplexColPath continues a collection of complex values, never empty.
type ComplexColPath struct {
	Ordinal *OrdinalIndex
	Cast    *ComplexColCastPath
}

type ComplexColCastPath struct {
	Cast      *TypeCastComplex
	Count     *Count
	Operation *BoundOperation
	Query     *QuerySegment
}

// ComplexPath continues a complex value, never empty.
type ComplexPath struct {
	Cast      *TypeCastComplex
	Operation *BoundOperation
	Query     *QuerySegment
	Property  *PropertyPathSegment
}

// Path keywords.
type (
	// FilterInPath is '/$filter' EQ parameterAlias.
	FilterInPath struct {
		Keyword Token
		Eq      Token
		Alias   *ParameterAlias
	}
	Each struct {
		Keyword Token
	}
	Count struct {
		Keyword Token
	}
	Ref struct {
		Keyword Token
	}
	Value struct {
		Keyword Token
	}
	QuerySegment struct {
		Keyword Token
	}
)

// OrdinalIndex is "/" 1*DIGIT.
type OrdinalIndex struct {
	Slash  Token
	Digits parse.Range[Token]
}

// BoundOperation is "/" followed by a namespace-qualified action or
// function call and its continuation.
type BoundOperation struct {
	Slash        Token
	Action       *BoundActionCall
	EntityCol    *BoundEntityColFunctionPath
	Entity       *BoundEntityFunctionPath
	ComplexCol   *BoundComplexColFunctionPath
	Complex      *BoundComplexFunctionPath
	PrimitiveCol *BoundPrimitiveColFunctionPath
	Primitive    *BoundPrimitiveFunctionPath
	NoParens     *BoundFunctionNoParensPath
}

type BoundEntityColFunctionPath struct {
	Call       *BoundEntityColFunctionCall
	Navigation *CollectionNavigation
}

type BoundEntityFunctionPath struct {
	Call       *BoundEntityFunctionCall
	Navigation *SingleNavigation
}

type BoundComplexColFunctionPath struct {
	Call *BoundComplexColFunctionCall
	Path *ComplexColPath
}

type BoundComplexFunctionPath struct {
	Call *BoundComplexFunctionCall
	Path *ComplexPath
}

type BoundPrimitiveColFunctionPath struct {
	Call *BoundPrimitiveColFunctionCall
	Path *PrimitiveColPath
}

type BoundPrimitiveFunctionPath struct {
	Call *BoundPrimitiveFunctionCall
	Path *PrimitivePath
}

type BoundFunctionNoParensPath struct {
	Call  *BoundFunctionCallNoParens
	Query *QuerySegment
}

// BoundActionCall is namespace "." action.
type BoundActionCall struct {
	Namespace *Namespace
	Dot       Token
	Action    *Action
}

// BoundFunctionCallNoParens is namespace "." function.
type BoundFunctionCallNoParens struct {
	Namespace *Namespace
	Dot       Token
	Function  *Function
}

// Bound function calls are namespace "." function functionParameters.
type (
	BoundEntityColFunctionCall struct {
		Namespace  *Namespace
		Dot        Token
		Function   *EntityColFunction
		Parameters *FunctionParameters
	}
	BoundEntityFunctionCall struct {
		Namespace  *Namespace
		Dot        Token
		Function   *EntityFunction
		Parameters *FunctionParameters
	}
	BoundComplexColFunctionCall struct {
		Namespace  *Namespace
		Dot        Token
		Function   *ComplexColFunction
		Parameters *FunctionParameters
	}
	BoundComplexFunctionCall struct {
		Namespace  *Namespace
		Dot        Token
		Function   *ComplexFunction
		Parameters *FunctionParameters
	}
	BoundPrimitiveColFunctionCall struct {
		Namespace  *Namespace
		Dot        Token
		Function   *PrimitiveColFunction
		Parameters *FunctionParameters
	}
	BoundPrimitiveFunctionCall struct {
		Namespace  *Namespace
		Dot        Token
		Function   *PrimitiveFunction
		Parameters *FunctionParameters
	}
)

// ActionImportCall invokes an action import.
type ActionImportCall struct {
	Import *ActionImport
}

// FunctionImportCallNoParens names a function import without parameters.
type FunctionImportCallNoParens struct {
	Import *EntityFunctionImport
}

// Function import calls are functionImport functionParameters.
type (
	EntityColFunctionImportCall struct {
		Import     *EntityColFunctionImport
		Parameters *FunctionParameters
	}
	EntityFunctionImportCall struct {
		Import     *EntityFunctionImport
		Parameters *FunctionParameters
	}
	ComplexColFunctionImportCall struct {
		Import     *ComplexColFunctionImport
		Parameters *FunctionParameters
	}
	ComplexFunctionImportCall struct {
		Import     *ComplexFunctionImport
		Parameters *FunctionParameters
	}
	PrimitiveColFunctionImportCall struct {
		Import     *PrimitiveColFunctionImport
		Parameters *FunctionParameters
	}
	PrimitiveFunctionImportCall struct {
		Import     *PrimitiveFunctionImport
		Parameters *FunctionParameters
	}
)

// FunctionParameters is a parenthesized, possibly empty, parameter list.
type FunctionParameters struct {
	Open  Token
	First *FunctionParameter
	Rest  []FunctionParameterTail
	Close Token
}

type FunctionParameterTail struct {
	Comma     Token
	Parameter *FunctionParameter
}

// FunctionParameter is parameterName EQ ( parameterAlias / primitiveLiteral ).
type FunctionParameter struct {
	Name  *ParameterName
	Eq    Token
	Alias *ParameterAlias
	Value *PrimitiveLiteral
}

// Crossjoin is '$crossjoin' OPEN entitySetName *( COMMA entitySetName ) CLOSE.
type Crossjoin struct {
	Keyword Token
	Open    Token
	First   *EntitySetName
	Rest    []EntitySetNameTail
	Close   Token
}

type EntitySetNameTail struct {
	Comma Token
	Name  *EntitySetName
}

// Context is "#" contextFragment.
type Context struct {
	Hash     Token
	Fragment *ContextFragment
}

// ContextFragment describes the payload of a response.
type ContextFragment struct {
	Keyword   *Token
	Type      *ContextTypeFragment
	EntitySet *ContextEntitySetFragment
}

type ContextTypeFragment struct {
	Type   *QualifiedTypeName
	Select *SelectList
}

type ContextEntitySetFragment struct {
	Name   *EntitySetName
	Key    *KeyPredicate
	Select *SelectList
	Suffix *Token
}

// SelectList is OPEN selectListItem *( COMMA selectListItem ) CLOSE.
type SelectList struct {
	Open  Token
	First *SelectListItem
	Rest  []SelectListItemTail
	Close Token
}

type SelectListItemTail struct {
	Comma Token
	Item  *SelectListItem
}

// SelectListItem is one projected member of a context URL.
type SelectListItem struct {
	Star          *Token
	AllOperations *AllOperationsInSchema
	Qualified     *QualifiedSelectListItem
}

type QualifiedSelectListItem struct {
	Cast     *SelectListCast
	Action   *QualifiedActionName
	Function *QualifiedFunctionName
	Property *SelectListProperty
}

type SelectListCast struct {
	Type  *QualifiedEntityTypeName
	Slash Token
}

// SelectListProperty is a property projected in a context URL.
type SelectListProperty struct {
	Primitive    *PrimitiveProperty
	PrimitiveCol *PrimitiveColProperty
	Navigation   *SelectListNavigation
	Path         *SelectListPath
}

type SelectListNavigation struct {
	Property *NavigationProperty
	Plus     *Token
	Select   *SelectList
}

type SelectListPath struct {
	Path *SelectPath
	Next *SelectListPropertySegment
}

type SelectListPropertySegment struct {
	Slash    Token
	Property *SelectListProperty
}

// SelectPath is a complex property with an optional type cast.
type SelectPath struct {
	Complex    *ComplexProperty
	ComplexCol *ComplexColProperty
	Cast       *TypeCastComplex
}
