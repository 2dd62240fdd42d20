package cst

import "github.com/ardnew/odatauri/parse"

// Header is one supported HTTP header.
type Header struct {
	ContentID       *ContentID
	EntityID        *EntityID
	Isolation       *Isolation
	ODataMaxVersion *ODataMaxVersion
	ODataVersion    *ODataVersion
	Prefer          *Prefer
}

// ContentID is "Content-ID" ":" OWS 1*unreserved.
type ContentID struct {
	Name  Token
	Colon Token
	Space *OWS
	Value parse.Range[Token]
}

// EntityID is [ "OData-" ] "EntityID" ":" OWS IRI-in-header.
type EntityID struct {
	Prefix *Token
	Name   Token
	Colon  Token
	Space  *OWS
	IRI    *IRIInHeader
}

type IRIInHeader struct {
	Chars parse.Range[Token]
}

// Isolation is [ "OData-" ] "Isolation" ":" OWS "snapshot".
type Isolation struct {
	Prefix *Token
	Name   Token
	Colon  Token
	Space  *OWS
	Value  Token
}

// ODataMaxVersion is "OData-MaxVersion" ":" OWS 1*DIGIT "." 1*DIGIT.
type ODataMaxVersion struct {
	Name  Token
	Colon Token
	Space *OWS
	Major parse.Range[Token]
	Dot   Token
	Minor parse.Range[Token]
}

// ODataVersion is "OData-Version" ":" OWS "4.0" [ "1" ].
type ODataVersion struct {
	Name    Token
	Colon   Token
	Space   *OWS
	Version Token
	Minor   *Token
}

// Prefer is "Prefer" ":" OWS preference *( OWS "," OWS preference ).
type Prefer struct {
	Name  Token
	Colon Token
	Space *OWS
	First *Preference
	Rest  []PreferenceTail
}

type PreferenceTail struct {
	Lead       *OWS
	Comma      Token
	Trail      *OWS
	Preference *Preference
}

// Preference is one of the OData preferences.
type Preference struct {
	AllowEntityReferences *AllowEntityReferencesPreference
	Callback              *CallbackPreference
	ContinueOnError       *ContinueOnErrorPreference
	IncludeAnnotations    *IncludeAnnotationsPreference
	MaxPageSize           *MaxPageSizePreference
	OmitValues            *OmitValuesPreference
	RespondAsync          *RespondAsyncPreference
	Return                *ReturnPreference
	TrackChanges          *TrackChangesPreference
	Wait                  *WaitPreference
}

// EqH is OWS "=" OWS.
type EqH struct {
	Lead  *OWS
	Eq    Token
	Trail *OWS
}

// FlagPreference is [ "odata." ] name.
type FlagPreference struct {
	Prefix *Token
	Name   Token
}

// Preferences without a value.
type (
	AllowEntityReferencesPreference FlagPreference
	TrackChangesPreference          FlagPreference
)

// RespondAsyncPreference is "respond-async".
type RespondAsyncPreference struct {
	Name Token
}

// CallbackPreference is [ "odata." ] "callback" OWS ";" OWS "url" EQ-h
// DQUOTE callbackURL DQUOTE.
type CallbackPreference struct {
	Prefix *Token
	Name   Token
	Lead   *OWS
	Semi   Token
	Trail  *OWS
	URL    Token
	Eq     *EqH
	Open   Token
	Target *CallbackURL
	Close  Token
}

type CallbackURL struct {
	Chars parse.Range[Token]
}

// ContinueOnErrorPreference is [ "odata." ] "continue-on-error"
// [ EQ-h booleanValue ].
type ContinueOnErrorPreference struct {
	Prefix *Token
	Name   Token
	Value  *PreferenceBoolean
}

type PreferenceBoolean struct {
	Eq    *EqH
	Value *BooleanValue
}

// IncludeAnnotationsPreference lists the annotations to include.
type IncludeAnnotationsPreference struct {
	Prefix *Token
	Name   Token
	Eq     *EqH
	Open   Token
	List   *AnnotationsList
	Close  Token
}

// AnnotationsList is annotationIdentifier *( COMMA annotationIdentifier ).
type AnnotationsList struct {
	First *AnnotationIdentifier
	Rest  []AnnotationIdentifierTail
}

type AnnotationIdentifierTail struct {
	Comma      Token
	Identifier *AnnotationIdentifier
}

// AnnotationIdentifier selects annotations by term, namespace or star.
type AnnotationIdentifier struct {
	Exclude   *Token
	Star      *Token
	Term      *AnnotationTerm
	Qualifier *AnnotationIdentifierQualifier
}

type AnnotationTerm struct {
	Namespace *Namespace
	Dot       Token
	Term      *TermName
	Star      *Token
}

type AnnotationIdentifierQualifier struct {
	Hash      Token
	Qualifier *ODataIdentifier
}

// MaxPageSizePreference is [ "odata." ] "maxpagesize" EQ-h oneToNine *DIGIT.
type MaxPageSizePreference struct {
	Prefix *Token
	Name   Token
	Eq     *EqH
	Lead   Token
	Digits []Token
}

// OmitValuesPreference is "omit-values" EQ-h ( "nulls" / "defaults" ).
type OmitValuesPreference struct {
	Name  Token
	Eq    *EqH
	Value Token
}

// ReturnPreference is "return" EQ-h ( 'representation' / 'minimal' ).
type ReturnPreference struct {
	Name  Token
	Eq    *EqH
	Value Token
}

// WaitPreference is "wait" EQ-h 1*DIGIT.
type WaitPreference struct {
	Name   Token
	Eq     *EqH
	Digits parse.Range[Token]
}
