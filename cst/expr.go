package cst

// CommonExpr is a primary expression followed by optional arithmetic,
// comparison and logical operators. Each operator's right operand is again a
// CommonExpr, so precedence is encoded by nesting rather than by one rule
// per level.
type CommonExpr struct {
	PrimitiveLiteral *PrimitiveLiteral
	ArrayOrObject    *ArrayOrObject
	Root             *RootExpr
	MethodCall       *MethodCallExpr
	Cast             *CastExpr
	IsOf             *IsOfExpr
	Not              *NotExpr
	Function         *FunctionExpr
	FirstMember      *FirstMemberExpr
	Negate           *NegateExpr
	Paren            *ParenExpr
	List             *ListExpr

	Arithmetic *ArithmeticExpr
	Comparison *ComparisonExpr
	Logical    *LogicalExpr
}

// ArithmeticExpr is one of add, sub, mul, div, divby and mod.
type ArithmeticExpr struct {
	Add   *AddExpr
	Sub   *SubExpr
	Mul   *MulExpr
	Div   *DivExpr
	DivBy *DivByExpr
	Mod   *ModExpr
}

// ComparisonExpr is one of eq, ne, lt, le, gt, ge, has and in.
type ComparisonExpr struct {
	Eq  *EqExpr
	Ne  *NeExpr
	Lt  *LtExpr
	Le  *LeExpr
	Gt  *GtExpr
	Ge  *GeExpr
	Has *HasExpr
	In  *InExpr
}

// LogicalExpr is and or or.
type LogicalExpr struct {
	And *AndExpr
	Or  *OrExpr
}

// OperatorExpr is RWS operator RWS operand.
type OperatorExpr struct {
	Lead     *RWS
	Operator Token
	Trail    *RWS
	Right    *CommonExpr
}

// Infix operators.
type (
	AddExpr   OperatorExpr
	SubExpr   OperatorExpr
	MulExpr   OperatorExpr
	DivExpr   OperatorExpr
	DivByExpr OperatorExpr
	ModExpr   OperatorExpr
	EqExpr    OperatorExpr
	NeExpr    OperatorExpr
	LtExpr    OperatorExpr
	LeExpr    OperatorExpr
	GtExpr    OperatorExpr
	GeExpr    OperatorExpr
	InExpr    OperatorExpr
	AndExpr   OperatorExpr
	OrExpr    OperatorExpr
)

// HasExpr is RWS "has" RWS enum.
type HasExpr struct {
	Lead     *RWS
	Operator Token
	Trail    *RWS
	Right    *Enum
}

// RootExpr is '$root/' followed by an entity or singleton.
type RootExpr struct {
	Root       Token
	EntitySet  *EntitySetName
	Key        *KeyPredicate
	Singleton  *SingletonEntity
	Navigation *SingleNavigationExpr
}

// FirstMemberExpr is a member expression or an in-scope variable.
type FirstMemberExpr struct {
	Member  *MemberExpr
	InScope *InscopeMemberExpr
}

// InscopeMemberExpr is an in-scope variable with an optional member path.
type InscopeMemberExpr struct {
	Variable *InscopeVariableExpr
	Slash    *Token
	Member   *MemberExpr
}

// InscopeVariableExpr is $it, $this, a parameter alias or a lambda
// variable.
type InscopeVariableExpr struct {
	Implicit *ImplicitVariableExpr
	Alias    *ParameterAlias
	Lambda   *LambdaVariableExpr
}

// ImplicitVariableExpr is '$it' or '$this'.
type ImplicitVariableExpr struct {
	Name Token
}

// MemberExpr is an optionally type-cast function call, annotation or
// property path.
type MemberExpr struct {
	Cast          *MemberCast
	BoundFunction *BoundFunctionExpr
	Annotation    *AnnotationExpr
	PropertyPath  *PropertyPathExpr
}

// MemberCast is qualifiedEntityTypeName "/".
type MemberCast struct {
	Type  *QualifiedEntityTypeName
	Slash Token
}

// PropertyPathExpr is a property followed by the continuation its kind
// allows.
type PropertyPathExpr struct {
	EntityColNavigation *EntityColNavigationPropertyExpr
	EntityNavigation    *EntityNavigationPropertyExpr
	ComplexCol          *ComplexColPropertyExpr
	Complex             *ComplexPropertyExpr
	PrimitiveCol        *PrimitiveColPropertyExpr
	Primitive           *PrimitivePropertyExpr
	Stream              *StreamPropertyExpr
}

type EntityColNavigationPropertyExpr struct {
	Property   *EntityColNavigationProperty
	Navigation *CollectionNavigationExpr
}

type EntityNavigationPropertyExpr struct {
	Property   *EntityNavigationProperty
	Navigation *SingleNavigationExpr
}

type ComplexColPropertyExpr struct {
	Property *ComplexColProperty
	Path     *ComplexColPathExpr
}

type ComplexPropertyExpr struct {
	Property *ComplexProperty
	Path     *ComplexPathExpr
}

type PrimitiveColPropertyExpr struct {
	Property *PrimitiveColProperty
	Path     *CollectionPathExpr
}

type PrimitivePropertyExpr struct {
	Property *PrimitiveProperty
	Path     *PrimitivePathExpr
}

type StreamPropertyExpr struct {
	Property *StreamProperty
	Path     *PrimitivePathExpr
}

// AnnotationExpr is an annotation with an optional path continuation.
type AnnotationExpr struct {
	Annotation *Annotation
	Collection *CollectionPathExpr
	Single     *SingleNavigationExpr
	Complex    *ComplexPathExpr
	Primitive  *PrimitivePathExpr
}

// Annotation is AT namespace "." termName [ "#" annotationQualifier ].
type Annotation struct {
	At        Token
	Namespace *Namespace
	Dot       Token
	Term      *TermName
	Qualifier *QualifierSuffix
}

// QualifierSuffix is "#" annotationQualifier.
type QualifierSuffix struct {
	Hash      Token
	Qualifier *AnnotationQualifier
}

// CollectionNavigationExpr continues a collection-valued navigation.
type CollectionNavigationExpr struct {
	Cast   *TypeCastEntity
	Key    *KeyNavigationExpr
	Filter *FilterNavigationExpr
	Path   *CollectionPathExpr
}

// KeyNavigationExpr is keyPredicateInExpr [ singleNavigationExpr ].
type KeyNavigationExpr struct {
	Key        *KeyPredicateInExpr
	Navigation *SingleNavigationExpr
}

// FilterNavigationExpr is filterExpr [ collectionNavigationExpr ].
type FilterNavigationExpr struct {
	Filter *FilterExpr
	Next   *CollectionNavigationExpr
}

// KeyPredicateInExpr is a parenthesized key.
type KeyPredicateInExpr struct {
	Simple   *SimpleKey
	Compound *CompoundKey
}

// SingleNavigationExpr is "/" memberExpr.
type SingleNavigationExpr struct {
	Slash  Token
	Member *MemberExpr
}

// FilterExpr is '/$filter' OPEN boolCommonExpr CLOSE.
type FilterExpr struct {
	Keyword Token
	Open    Token
	Expr    *CommonExpr
	Close   Token
}

// ComplexColPathExpr is [ typeCastComplex ] collectionPathExpr.
type ComplexColPathExpr struct {
	Cast *TypeCastComplex
	Path *CollectionPathExpr
}

// CollectionPathExpr continues a collection-valued expression.
type CollectionPathExpr struct {
	Count  *CountPathExpr
	Filter *FilterPathExpr
	Member *CollectionMemberExpr
}

// CountPathExpr is count with optional parenthesized options.
type CountPathExpr struct {
	Count   *Count
	Options *ExpandCountOptions
}

// FilterPathExpr is filterExpr [ collectionPathExpr ].
type FilterPathExpr struct {
	Filter *FilterExpr
	Next   *CollectionPathExpr
}

// CollectionMemberExpr is "/" followed by a lambda, function or annotation.
type CollectionMemberExpr struct {
	Slash         Token
	Any           *AnyExpr
	All           *AllExpr
	BoundFunction *BoundFunctionExpr
	Annotation    *AnnotationExpr
}

// ComplexPathExpr continues a complex-valued expression.
type ComplexPathExpr struct {
	Cast          *TypeCastComplex
	Slash         *Token
	BoundFunction *BoundFunctionExpr
	Annotation    *AnnotationExpr
	Member        *MemberExpr
}

// PrimitivePathExpr is "/" [ annotationExpr / boundFunctionExpr ].
type PrimitivePathExpr struct {
	Slash         Token
	Annotation    *AnnotationExpr
	BoundFunction *BoundFunctionExpr
}

// FunctionExpr is an optionally qualified function call with the
// continuation its return kind allows.
type FunctionExpr struct {
	Prefix       *NamespacePrefix
	EntityCol    *EntityColFunctionExpr
	Entity       *EntityFunctionExpr
	ComplexCol   *ComplexColFunctionExpr
	Complex      *ComplexFunctionExpr
	PrimitiveCol *PrimitiveColFunctionExpr
	Primitive    *PrimitiveFunctionExpr
}

// BoundFunctionExpr is a function call applied to the preceding path.
type BoundFunctionExpr FunctionExpr

type EntityColFunctionExpr struct {
	Function   *EntityColFunction
	Parameters *FunctionExprParameters
	Navigation *CollectionNavigationExpr
}

type EntityFunctionExpr struct {
	Function   *EntityFunction
	Parameters *FunctionExprParameters
	Navigation *SingleNavigationExpr
}

type ComplexColFunctionExpr struct {
	Function   *ComplexColFunction
	Parameters *FunctionExprParameters
	Path       *ComplexColPathExpr
}

type ComplexFunctionExpr struct {
	Function   *ComplexFunction
	Parameters *FunctionExprParameters
	Path       *ComplexPathExpr
}

type PrimitiveColFunctionExpr struct {
	Function   *PrimitiveColFunction
	Parameters *FunctionExprParameters
	Path       *CollectionPathExpr
}

type PrimitiveFunctionExpr struct {
	Function   *PrimitiveFunction
	Parameters *FunctionExprParameters
	Path       *PrimitivePathExpr
}

// FunctionExprParameters is a parenthesized, possibly empty, parameter list.
type FunctionExprParameters struct {
	Open  Token
	First *FunctionExprParameter
	Rest  []FunctionExprParameterTail
	Close Token
}

type FunctionExprParameterTail struct {
	Comma     Token
	Parameter *FunctionExprParameter
}

// FunctionExprParameter is parameterName EQ ( parameterAlias / parameterValue ).
type FunctionExprParameter struct {
	Name  *ParameterName
	Eq    Token
	Alias *ParameterAlias
	Value *ParameterValue
}

// AnyExpr is 'any' OPEN BWS [ lambda ] BWS CLOSE.
type AnyExpr struct {
	Keyword Token
	Open    Token
	Lead    *BWS
	Lambda  *Lambda
	Trail   *BWS
	Close   Token
}

// AllExpr is 'all' with a mandatory lambda.
type AllExpr AnyExpr

// Lambda is lambdaVariableExpr BWS COLON BWS lambdaPredicateExpr.
type Lambda struct {
	Variable  *LambdaVariableExpr
	Lead      *BWS
	Colon     Token
	Trail     *BWS
	Predicate *CommonExpr
}

// ParenExpr is OPEN BWS commonExpr BWS CLOSE.
type ParenExpr struct {
	Open  Token
	Lead  *BWS
	Expr  *CommonExpr
	Trail *BWS
	Close Token
}

// ListExpr is a parenthesized list of primitive literals.
type ListExpr struct {
	Open  Token
	Lead  *BWS
	First *PrimitiveLiteral
	Trail *BWS
	Rest  []ListItem
	Close Token
}

type ListItem struct {
	Comma Token
	Lead  *BWS
	Value *PrimitiveLiteral
	Trail *BWS
}

// NegateExpr is "-" BWS commonExpr.
type NegateExpr struct {
	Minus   Token
	Space   *BWS
	Operand *CommonExpr
}

// NotExpr is 'not' RWS boolCommonExpr.
type NotExpr struct {
	Not     Token
	Space   *RWS
	Operand *CommonExpr
}

// CastExpr is 'cast' OPEN BWS [ commonExpr BWS COMMA BWS ]
// optionallyQualifiedTypeName BWS CLOSE.
type CastExpr struct {
	Keyword Token
	Open    Token
	Lead    *BWS
	Source  *CastSource
	Type    *OptionallyQualifiedTypeName
	Trail   *BWS
	Close   Token
}

// IsOfExpr has the layout of CastExpr.
type IsOfExpr CastExpr

// CastSource is the optional operand of cast and isof.
type CastSource struct {
	Expr  *CommonExpr
	Lead  *BWS
	Comma Token
	Trail *BWS
}
