package cst

// MethodCallExpr is a call to one of the built-in functions.
type MethodCallExpr struct {
	IndexOf            *IndexOfMethodCallExpr
	ToLower            *ToLowerMethodCallExpr
	ToUpper            *ToUpperMethodCallExpr
	Trim               *TrimMethodCallExpr
	Substring          *SubstringMethodCallExpr
	Concat             *ConcatMethodCallExpr
	Length             *LengthMethodCallExpr
	MatchesPattern     *MatchesPatternMethodCallExpr
	Year               *YearMethodCallExpr
	Month              *MonthMethodCallExpr
	Day                *DayMethodCallExpr
	Hour               *HourMethodCallExpr
	Minute             *MinuteMethodCallExpr
	Second             *SecondMethodCallExpr
	FractionalSeconds  *FractionalSecondsMethodCallExpr
	TotalSeconds       *TotalSecondsMethodCallExpr
	Date               *DateMethodCallExpr
	Time               *TimeMethodCallExpr
	TotalOffsetMinutes *TotalOffsetMinutesMethodCallExpr
	MinDateTime        *MinDateTimeMethodCallExpr
	MaxDateTime        *MaxDateTimeMethodCallExpr
	Now                *NowMethodCallExpr
	Round              *RoundMethodCallExpr
	Floor              *FloorMethodCallExpr
	Ceiling            *CeilingMethodCallExpr
	Distance           *DistanceMethodCallExpr
	GeoLength          *GeoLengthMethodCallExpr
	Bool               *BoolMethodCallExpr
	Case               *CaseMethodCallExpr
}

// BoolMethodCallExpr is a built-in function returning a boolean.
type BoolMethodCallExpr struct {
	EndsWith       *EndsWithMethodCallExpr
	StartsWith     *StartsWithMethodCallExpr
	Contains       *ContainsMethodCallExpr
	Intersects     *IntersectsMethodCallExpr
	HasSubset      *HasSubsetMethodCallExpr
	HasSubsequence *HasSubsequenceMethodCallExpr
}

// UnaryMethodCallExpr is name OPEN BWS commonExpr BWS CLOSE.
type UnaryMethodCallExpr struct {
	Name  Token
	Open  Token
	Lead  *BWS
	Arg   *CommonExpr
	Trail *BWS
	Close Token
}

// Built-in functions of one argument.
type (
	LengthMethodCallExpr             UnaryMethodCallExpr
	ToLowerMethodCallExpr            UnaryMethodCallExpr
	ToUpperMethodCallExpr            UnaryMethodCallExpr
	TrimMethodCallExpr               UnaryMethodCallExpr
	YearMethodCallExpr               UnaryMethodCallExpr
	MonthMethodCallExpr              UnaryMethodCallExpr
	DayMethodCallExpr                UnaryMethodCallExpr
	HourMethodCallExpr               UnaryMethodCallExpr
	MinuteMethodCallExpr             UnaryMethodCallExpr
	SecondMethodCallExpr             UnaryMethodCallExpr
	FractionalSecondsMethodCallExpr  UnaryMethodCallExpr
	TotalSecondsMethodCallExpr       UnaryMethodCallExpr
	DateMethodCallExpr               UnaryMethodCallExpr
	TimeMethodCallExpr               UnaryMethodCallExpr
	TotalOffsetMinutesMethodCallExpr UnaryMethodCallExpr
	RoundMethodCallExpr              UnaryMethodCallExpr
	FloorMethodCallExpr              UnaryMethodCallExpr
	CeilingMethodCallExpr            UnaryMethodCallExpr
	GeoLengthMethodCallExpr          UnaryMethodCallExpr
)

// BinaryMethodCallExpr is name OPEN BWS commonExpr BWS COMMA BWS commonExpr
// BWS CLOSE.
type BinaryMethodCallExpr struct {
	Name   Token
	Open   Token
	Lead   *BWS
	First  *CommonExpr
	Trail  *BWS
	Second *MethodArgument
	Close  Token
}

// MethodArgument is COMMA BWS commonExpr BWS.
type MethodArgument struct {
	Comma Token
	Lead  *BWS
	Value *CommonExpr
	Trail *BWS
}

// Built-in functions of two arguments.
type (
	IndexOfMethodCallExpr        BinaryMethodCallExpr
	ConcatMethodCallExpr         BinaryMethodCallExpr
	ContainsMethodCallExpr       BinaryMethodCallExpr
	EndsWithMethodCallExpr       BinaryMethodCallExpr
	StartsWithMethodCallExpr     BinaryMethodCallExpr
	MatchesPatternMethodCallExpr BinaryMethodCallExpr
	DistanceMethodCallExpr       BinaryMethodCallExpr
	IntersectsMethodCallExpr     BinaryMethodCallExpr
	HasSubsetMethodCallExpr      BinaryMethodCallExpr
	HasSubsequenceMethodCallExpr BinaryMethodCallExpr
)

// SubstringMethodCallExpr takes two or three arguments.
type SubstringMethodCallExpr struct {
	Name   Token
	Open   Token
	Lead   *BWS
	First  *CommonExpr
	Trail  *BWS
	Second *MethodArgument
	Third  *MethodArgument
	Close  Token
}

// NullaryMethodCallExpr is name OPEN BWS CLOSE.
type NullaryMethodCallExpr struct {
	Name  Token
	Open  Token
	Space *BWS
	Close Token
}

// Built-in functions without arguments.
type (
	MinDateTimeMethodCallExpr NullaryMethodCallExpr
	MaxDateTimeMethodCallExpr NullaryMethodCallExpr
	NowMethodCallExpr         NullaryMethodCallExpr
)

// CaseMethodCallExpr is 'case' OPEN BWS casePair *( COMMA BWS casePair ) CLOSE.
type CaseMethodCallExpr struct {
	Name  Token
	Open  Token
	Lead  *BWS
	First *CasePair
	Rest  []CasePairTail
	Close Token
}

type CasePairTail struct {
	Comma Token
	Lead  *BWS
	Pair  *CasePair
}

// CasePair is boolCommonExpr BWS COLON BWS commonExpr BWS.
type CasePair struct {
	Condition *CommonExpr
	Lead      *BWS
	Colon     Token
	Trail     *BWS
	Value     *CommonExpr
	End       *BWS
}
