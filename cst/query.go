package cst

import "github.com/ardnew/odatauri/parse"

// QueryOptions is queryOption *( "&" queryOption ).
type QueryOptions struct {
	First *QueryOption
	Rest  []QueryOptionTail
}

type QueryOptionTail struct {
	Amp    Token
	Option *QueryOption
}

// QueryOption is a system, alias, named or custom query option.
type QueryOption struct {
	System *SystemQueryOption
	Alias  *AliasAndValue
	Name   *NameAndValue
	Custom *CustomQueryOption
}

// SystemQueryOption is one of the $-prefixed options.
type SystemQueryOption struct {
	Compute       *Compute
	DeltaToken    *DeltaToken
	Expand        *Expand
	Filter        *Filter
	Format        *Format
	ID            *ID
	InlineCount   *InlineCount
	Index         *Index
	Levels        *Levels
	OrderBy       *OrderBy
	SchemaVersion *SchemaVersion
	Search        *Search
	Select        *Select
	Skip          *Skip
	SkipToken     *SkipToken
	Top           *Top
}

// BatchOptions is batchOption *( "&" batchOption ).
type BatchOptions struct {
	First *BatchOption
	Rest  []BatchOptionTail
}

type BatchOptionTail struct {
	Amp    Token
	Option *BatchOption
}

// BatchOption is format / customQueryOption.
type BatchOption struct {
	Format *Format
	Custom *CustomQueryOption
}

// MetadataOptions is metadataOption *( "&" metadataOption ).
type MetadataOptions struct {
	First *MetadataOption
	Rest  []MetadataOptionTail
}

type MetadataOptionTail struct {
	Amp    Token
	Option *MetadataOption
}

// MetadataOption is format / customQueryOption.
type MetadataOption struct {
	Format *Format
	Custom *CustomQueryOption
}

// EntityOptions surrounds a mandatory id with other entity options.
type EntityOptions struct {
	Before []EntityIDOptionHead
	ID     *ID
	After  []EntityIDOptionTail
}

type EntityIDOptionHead struct {
	Option *EntityIDOption
	Amp    Token
}

type EntityIDOptionTail struct {
	Amp    Token
	Option *EntityIDOption
}

// EntityIDOption is format / customQueryOption.
type EntityIDOption struct {
	Format *Format
	Custom *CustomQueryOption
}

// EntityCastOptions surrounds a mandatory id with other cast options.
type EntityCastOptions struct {
	Before []EntityCastOptionHead
	ID     *ID
	After  []EntityCastOptionTail
}

type EntityCastOptionHead struct {
	Option *EntityCastOption
	Amp    Token
}

type EntityCastOptionTail struct {
	Amp    Token
	Option *EntityCastOption
}

// EntityCastOption is entityIdOption / expand / select.
type EntityCastOption struct {
	IDOption *EntityIDOption
	Expand   *Expand
	Select   *Select
}

// ID is ( "$id" / "id" ) EQ IRI-in-query.
type ID struct {
	Keyword Token
	Eq      Token
	IRI     *IRIInQuery
}

type IRIInQuery struct {
	Chars parse.Range[Token]
}

// Compute is $compute EQ computeItem *( COMMA computeItem ).
type Compute struct {
	Keyword Token
	Eq      Token
	First   *ComputeItem
	Rest    []ComputeItemTail
}

type ComputeItemTail struct {
	Comma Token
	Item  *ComputeItem
}

// ComputeItem is commonExpr RWS "as" RWS computedProperty.
type ComputeItem struct {
	Expr     *CommonExpr
	Lead     *RWS
	As       Token
	Trail    *RWS
	Property *ComputedProperty
}

// DeltaToken is "$deltatoken" EQ 1*qchar-no-AMP.
type DeltaToken struct {
	Keyword Token
	Eq      Token
	Value   parse.Range[Token]
}

// SkipToken has the layout of DeltaToken.
type SkipToken DeltaToken

// Expand is $expand EQ expandItem *( COMMA expandItem ).
type Expand struct {
	Keyword Token
	Eq      Token
	First   *ExpandItem
	Rest    []ExpandItemTail
}

type ExpandItemTail struct {
	Comma Token
	Item  *ExpandItem
}

// ExpandItem is a star, $value or an expand path with options.
type ExpandItem struct {
	Star  *ExpandStar
	Value *Token
	Path  *ExpandPathItem
}

// ExpandStar is STAR [ ref / OPEN levels CLOSE ].
type ExpandStar struct {
	Star   Token
	Ref    *Ref
	Levels *ExpandLevels
}

type ExpandLevels struct {
	Open   Token
	Levels *Levels
	Close  Token
}

// ExpandPathItem is an expand path followed by $ref, $count or options.
type ExpandPathItem struct {
	Path    *ExpandPath
	Ref     *ExpandRef
	Count   *ExpandCount
	Options *ExpandOptions
}

type ExpandRef struct {
	Ref     *Ref
	Options *ExpandRefOptions
}

type ExpandCount struct {
	Count   *Count
	Options *ExpandCountOptions
}

// ExpandPath is a path to a navigation or stream property.
type ExpandPath struct {
	Cast       *ExpandPathCast
	Segments   []ExpandPathSegment
	Star       *Token
	Navigation *ExpandNavigation
	Stream     *StreamProperty
}

type ExpandPathCast struct {
	Entity  *QualifiedEntityTypeName
	Complex *QualifiedComplexTypeName
	Slash   Token
}

// ExpandPathSegment is a complex property "/" with an optional cast.
type ExpandPathSegment struct {
	Complex    *ComplexProperty
	ComplexCol *ComplexColProperty
	Slash      Token
	Cast       *ExpandSegmentCast
}

type ExpandSegmentCast struct {
	Type  *QualifiedComplexTypeName
	Slash Token
}

type ExpandNavigation struct {
	Property *NavigationProperty
	Cast     *TypeCastEntity
}

// Option lists are OPEN option *( SEMI option ) CLOSE.
type (
	ExpandCountOptions struct {
		Open  Token
		First *ExpandCountOption
		Rest  []ExpandCountOptionTail
		Close Token
	}
	ExpandCountOptionTail struct {
		Semi   Token
		Option *ExpandCountOption
	}
	ExpandRefOptions struct {
		Open  Token
		First *ExpandRefOption
		Rest  []ExpandRefOptionTail
		Close Token
	}
	ExpandRefOptionTail struct {
		Semi   Token
		Option *ExpandRefOption
	}
	ExpandOptions struct {
		Open  Token
		First *ExpandOption
		Rest  []ExpandOptionTail
		Close Token
	}
	ExpandOptionTail struct {
		Semi   Token
		Option *ExpandOption
	}
	SelectOptionsPC struct {
		Open  Token
		First *SelectOptionPC
		Rest  []SelectOptionPCTail
		Close Token
	}
	SelectOptionPCTail struct {
		Semi   Token
		Option *SelectOptionPC
	}
	SelectOptions struct {
		Open  Token
		First *SelectOption
		Rest  []SelectOptionTail
		Close Token
	}
	SelectOptionTail struct {
		Semi   Token
		Option *SelectOption
	}
)

// ExpandCountOption is filter / search.
type ExpandCountOption struct {
	Filter *Filter
	Search *Search
}

// ExpandRefOption is expandCountOption / orderby / skip / top / inlinecount.
type ExpandRefOption struct {
	Count       *ExpandCountOption
	OrderBy     *OrderBy
	Skip        *Skip
	Top         *Top
	InlineCount *InlineCount
}

// ExpandOption is an option applied to an expanded navigation property.
type ExpandOption struct {
	Ref     *ExpandRefOption
	Select  *Select
	Expand  *Expand
	Compute *Compute
	Levels  *Levels
	Alias   *AliasAndValue
}

// Levels is $levels EQ ( oneToNine *DIGIT / "max" ).
type Levels struct {
	Keyword Token
	Eq      Token
	Value   Token
}

// Filter is $filter EQ boolCommonExpr.
type Filter struct {
	Keyword Token
	Eq      Token
	Expr    *CommonExpr
}

// OrderBy is $orderby EQ orderbyItem *( COMMA orderbyItem ).
type OrderBy struct {
	Keyword Token
	Eq      Token
	First   *OrderByItem
	Rest    []OrderByItemTail
}

type OrderByItemTail struct {
	Comma Token
	Item  *OrderByItem
}

// OrderByItem is commonExpr [ RWS ( "asc" / "desc" ) ].
type OrderByItem struct {
	Expr      *CommonExpr
	Direction *OrderDirection
}

type OrderDirection struct {
	Space     *RWS
	Direction Token
}

// Skip is $skip EQ 1*DIGIT.
type Skip struct {
	Keyword Token
	Eq      Token
	Digits  parse.Range[Token]
}

// Top has the layout of Skip.
type Top Skip

// Index is $index EQ [ "-" ] 1*DIGIT.
type Index struct {
	Keyword Token
	Eq      Token
	Minus   *Token
	Digits  parse.Range[Token]
}

// Format is $format EQ followed by a format name or media type.
type Format struct {
	Keyword Token
	Eq      Token
	Name    *Token
	Media   *MediaType
}

// MediaType is 1*pchar "/" 1*pchar.
type MediaType struct {
	Type    parse.Range[Token]
	Slash   Token
	Subtype parse.Range[Token]
}

// InlineCount is $count EQ booleanValue.
type InlineCount struct {
	Keyword Token
	Eq      Token
	Value   *BooleanValue
}

// SchemaVersion is $schemaversion EQ ( STAR / 1*unreserved ).
type SchemaVersion struct {
	Keyword Token
	Eq      Token
	Star    *Token
	Version parse.Range[Token]
}

// Search is $search EQ BWS searchExpr.
type Search struct {
	Keyword Token
	Eq      Token
	Space   *BWS
	Expr    *SearchExpr
}

// SearchExpr is a search term followed by an optional OR or AND clause.
type SearchExpr struct {
	Paren  *SearchParenExpr
	Negate *SearchNegateExpr
	Phrase *SearchPhrase
	Word   *SearchWord
	Or     *SearchOrExpr
	And    *SearchAndExpr
}

type SearchParenExpr struct {
	Open  Token
	Lead  *BWS
	Expr  *SearchExpr
	Trail *BWS
	Close Token
}

type SearchNegateExpr struct {
	Not   Token
	Space *RWS
	Expr  *SearchExpr
}

type SearchOrExpr struct {
	Lead  *RWS
	Or    Token
	Trail *RWS
	Expr  *SearchExpr
}

// SearchAndExpr is RWS [ 'AND' RWS ] searchExpr.
type SearchAndExpr struct {
	Lead *RWS
	And  *SearchAndKeyword
	Expr *SearchExpr
}

type SearchAndKeyword struct {
	And   Token
	Space *RWS
}

type SearchPhrase struct {
	Open  Token
	Chars parse.Range[Token]
	Close Token
}

type SearchWord struct {
	Chars parse.Range[Token]
}

// Select is $select EQ selectItem *( COMMA selectItem ).
type Select struct {
	Keyword Token
	Eq      Token
	First   *SelectItem
	Rest    []SelectItemTail
}

type SelectItemTail struct {
	Comma Token
	Item  *SelectItem
}

// SelectItem is a star, all operations of a schema, or a qualified item.
type SelectItem struct {
	Star          *Token
	AllOperations *AllOperationsInSchema
	Qualified     *QualifiedSelectItem
}

type QualifiedSelectItem struct {
	Cast     *SelectItemCast
	Action   *QualifiedActionName
	Function *QualifiedFunctionName
	Property *SelectProperty
}

type SelectItemCast struct {
	Entity  *QualifiedEntityTypeName
	Complex *QualifiedComplexTypeName
	Slash   Token
}

// SelectProperty is a selected property with its options or sub-path.
type SelectProperty struct {
	Primitive    *PrimitiveProperty
	PrimitiveCol *SelectPrimitiveCol
	Navigation   *NavigationProperty
	Path         *SelectPathProperty
}

type SelectPrimitiveCol struct {
	Property *PrimitiveColProperty
	Options  *SelectOptionsPC
}

type SelectPathProperty struct {
	Path    *SelectPath
	Options *SelectOptions
	Next    *SelectPropertySegment
}

type SelectPropertySegment struct {
	Slash    Token
	Property *SelectProperty
}

// SelectOptionPC is an option of a selected primitive collection.
type SelectOptionPC struct {
	Filter      *Filter
	Search      *Search
	InlineCount *InlineCount
	OrderBy     *OrderBy
	Skip        *Skip
	Top         *Top
}

// SelectOption is an option of a selected complex property.
type SelectOption struct {
	PC      *SelectOptionPC
	Compute *Compute
	Select  *Select
	Expand  *Expand
	Alias   *AliasAndValue
}

// AliasAndValue is parameterAlias EQ parameterValue.
type AliasAndValue struct {
	Alias *ParameterAlias
	Eq    Token
	Value *ParameterValue
}

// NameAndValue is parameterName EQ parameterValue.
type NameAndValue struct {
	Name  *ParameterName
	Eq    Token
	Value *ParameterValue
}

// ParameterValue is arrayOrObject / commonExpr.
type ParameterValue struct {
	ArrayOrObject *ArrayOrObject
	Expr          *CommonExpr
}

// CustomQueryOption is customName [ EQ customValue ].
type CustomQueryOption struct {
	Name  *CustomName
	Value *CustomValueClause
}

type CustomName struct {
	Lead Token
	Rest []Token
}

type CustomValueClause struct {
	Eq    Token
	Value *CustomValue
}

type CustomValue struct {
	Chars []Token
}
