package grammar

import (
	"github.com/ardnew/odatauri/cst"
	"github.com/ardnew/odatauri/parse"
)

var setMethodName = parse.NewCharset("method name").Union(setALPHA).Add(".")

// methodName matches the longest run of letters and dots. Built-in function
// names are case-sensitive and resolved by the caller.
func methodName(c parse.Cursor) parse.Result[token] {
	n := setMethodName.Span(c.Remaining())
	if n == 0 {
		c.Expect(setMethodName.Name())

		return parse.Fail[token](c)
	}

	return parse.Ok(c.Token(n), c.Advance(n))
}

func methodCallExpr(c parse.Cursor) parse.Result[*cst.MethodCallExpr] {
	id := methodName(c)
	if !id.OK {
		return parse.Fail[*cst.MethodCallExpr](c)
	}

	var (
		rest parse.Cursor
		ok   bool
	)

	n := new(cst.MethodCallExpr)

	switch id.Value.Text {
	case "indexof":
		ok = parse.Try(c, &rest, &n.IndexOf, binaryCall[cst.IndexOfMethodCallExpr])
	case "tolower":
		ok = parse.Try(c, &rest, &n.ToLower, unaryCall[cst.ToLowerMethodCallExpr])
	case "toupper":
		ok = parse.Try(c, &rest, &n.ToUpper, unaryCall[cst.ToUpperMethodCallExpr])
	case "trim":
		ok = parse.Try(c, &rest, &n.Trim, unaryCall[cst.TrimMethodCallExpr])
	case "substring":
		ok = parse.Try(c, &rest, &n.Substring, substringMethodCallExpr)
	case "concat":
		ok = parse.Try(c, &rest, &n.Concat, binaryCall[cst.ConcatMethodCallExpr])
	case "length":
		ok = parse.Try(c, &rest, &n.Length, unaryCall[cst.LengthMethodCallExpr])
	case "matchesPattern":
		ok = parse.Try(c, &rest, &n.MatchesPattern, binaryCall[cst.MatchesPatternMethodCallExpr])
	case "year":
		ok = parse.Try(c, &rest, &n.Year, unaryCall[cst.YearMethodCallExpr])
	case "month":
		ok = parse.Try(c, &rest, &n.Month, unaryCall[cst.MonthMethodCallExpr])
	case "day":
		ok = parse.Try(c, &rest, &n.Day, unaryCall[cst.DayMethodCallExpr])
	case "hour":
		ok = parse.Try(c, &rest, &n.Hour, unaryCall[cst.HourMethodCallExpr])
	case "minute":
		ok = parse.Try(c, &rest, &n.Minute, unaryCall[cst.MinuteMethodCallExpr])
	case "second":
		ok = parse.Try(c, &rest, &n.Second, unaryCall[cst.SecondMethodCallExpr])
	case "fractionalseconds":
		ok = parse.Try(c, &rest, &n.FractionalSeconds, unaryCall[cst.FractionalSecondsMethodCallExpr])
	case "totalseconds":
		ok = parse.Try(c, &rest, &n.TotalSeconds, unaryCall[cst.TotalSecondsMethodCallExpr])
	case "date":
		ok = parse.Try(c, &rest, &n.Date, unaryCall[cst.DateMethodCallExpr])
	case "time":
		ok = parse.Try(c, &rest, &n.Time, unaryCall[cst.TimeMethodCallExpr])
	case "totaloffsetminutes":
		ok = parse.Try(c, &rest, &n.TotalOffsetMinutes, unaryCall[cst.TotalOffsetMinutesMethodCallExpr])
	case "mindatetime":
		ok = parse.Try(c, &rest, &n.MinDateTime, nullaryCall[cst.MinDateTimeMethodCallExpr])
	case "maxdatetime":
		ok = parse.Try(c, &rest, &n.MaxDateTime, nullaryCall[cst.MaxDateTimeMethodCallExpr])
	case "now":
		ok = parse.Try(c, &rest, &n.Now, nullaryCall[cst.NowMethodCallExpr])
	case "round":
		ok = parse.Try(c, &rest, &n.Round, unaryCall[cst.RoundMethodCallExpr])
	case "floor":
		ok = parse.Try(c, &rest, &n.Floor, unaryCall[cst.FloorMethodCallExpr])
	case "ceiling":
		ok = parse.Try(c, &rest, &n.Ceiling, unaryCall[cst.CeilingMethodCallExpr])
	case "geo.distance":
		ok = parse.Try(c, &rest, &n.Distance, binaryCall[cst.DistanceMethodCallExpr])
	case "geo.length":
		ok = parse.Try(c, &rest, &n.GeoLength, unaryCall[cst.GeoLengthMethodCallExpr])
	case "case":
		ok = parse.Try(c, &rest, &n.Case, caseMethodCallExpr)
	case "endswith", "startswith", "contains", "geo.intersects", "hassubset", "hassubsequence":
		ok = parse.Try(c, &rest, &n.Bool, boolMethodCallExpr)
	}

	if !ok {
		return parse.Fail[*cst.MethodCallExpr](c)
	}

	return parse.Ok(n, rest)
}

func boolMethodCallExpr(c parse.Cursor) parse.Result[*cst.BoolMethodCallExpr] {
	id := methodName(c)
	if !id.OK {
		return parse.Fail[*cst.BoolMethodCallExpr](c)
	}

	var (
		rest parse.Cursor
		ok   bool
	)

	n := new(cst.BoolMethodCallExpr)

	switch id.Value.Text {
	case "endswith":
		ok = parse.Try(c, &rest, &n.EndsWith, binaryCall[cst.EndsWithMethodCallExpr])
	case "startswith":
		ok = parse.Try(c, &rest, &n.StartsWith, binaryCall[cst.StartsWithMethodCallExpr])
	case "contains":
		ok = parse.Try(c, &rest, &n.Contains, binaryCall[cst.ContainsMethodCallExpr])
	case "geo.intersects":
		ok = parse.Try(c, &rest, &n.Intersects, binaryCall[cst.IntersectsMethodCallExpr])
	case "hassubset":
		ok = parse.Try(c, &rest, &n.HasSubset, binaryCall[cst.HasSubsetMethodCallExpr])
	case "hassubsequence":
		ok = parse.Try(c, &rest, &n.HasSubsequence, binaryCall[cst.HasSubsequenceMethodCallExpr])
	}

	if !ok {
		return parse.Fail[*cst.BoolMethodCallExpr](c)
	}

	return parse.Ok(n, rest)
}

type unaryCallNode interface {
	~struct {
		Name  parse.Token
		Open  parse.Token
		Lead  *cst.BWS
		Arg   *cst.CommonExpr
		Trail *cst.BWS
		Close parse.Token
	}
}

func unaryCall[N unaryCallNode](c parse.Cursor) parse.Result[*N] {
	s := parse.Begin(c)
	n := N(cst.UnaryMethodCallExpr{
		Name:  parse.Step(&s, methodName),
		Open:  parse.Step(&s, lparen),
		Lead:  parse.Step(&s, bws),
		Arg:   parse.Step(&s, commonExpr),
		Trail: parse.Step(&s, bws),
		Close: parse.Step(&s, rparen),
	})

	return parse.End(&s, &n)
}

type binaryCallNode interface {
	~struct {
		Name   parse.Token
		Open   parse.Token
		Lead   *cst.BWS
		First  *cst.CommonExpr
		Trail  *cst.BWS
		Second *cst.MethodArgument
		Close  parse.Token
	}
}

func binaryCall[N binaryCallNode](c parse.Cursor) parse.Result[*N] {
	s := parse.Begin(c)
	n := N(cst.BinaryMethodCallExpr{
		Name:   parse.Step(&s, methodName),
		Open:   parse.Step(&s, lparen),
		Lead:   parse.Step(&s, bws),
		First:  parse.Step(&s, commonExpr),
		Trail:  parse.Step(&s, bws),
		Second: parse.Step(&s, methodArgument),
		Close:  parse.Step(&s, rparen),
	})

	return parse.End(&s, &n)
}

type nullaryCallNode interface {
	~struct {
		Name  parse.Token
		Open  parse.Token
		Space *cst.BWS
		Close parse.Token
	}
}

func nullaryCall[N nullaryCallNode](c parse.Cursor) parse.Result[*N] {
	s := parse.Begin(c)
	n := N(cst.NullaryMethodCallExpr{
		Name:  parse.Step(&s, methodName),
		Open:  parse.Step(&s, lparen),
		Space: parse.Step(&s, bws),
		Close: parse.Step(&s, rparen),
	})

	return parse.End(&s, &n)
}

func methodArgument(c parse.Cursor) parse.Result[*cst.MethodArgument] {
	s := parse.Begin(c)
	n := &cst.MethodArgument{
		Comma: parse.Step(&s, comma),
		Lead:  parse.Step(&s, bws),
		Value: parse.Step(&s, commonExpr),
		Trail: parse.Step(&s, bws),
	}

	return parse.End(&s, n)
}

func substringMethodCallExpr(c parse.Cursor) parse.Result[*cst.SubstringMethodCallExpr] {
	s := parse.Begin(c)
	n := &cst.SubstringMethodCallExpr{
		Name:   parse.Step(&s, methodName),
		Open:   parse.Step(&s, lparen),
		Lead:   parse.Step(&s, bws),
		First:  parse.Step(&s, commonExpr),
		Trail:  parse.Step(&s, bws),
		Second: parse.Step(&s, methodArgument),
		Third:  parse.Maybe(&s, methodArgument),
		Close:  parse.Step(&s, rparen),
	}

	return parse.End(&s, n)
}

func caseMethodCallExpr(c parse.Cursor) parse.Result[*cst.CaseMethodCallExpr] {
	s := parse.Begin(c)
	n := &cst.CaseMethodCallExpr{
		Name:  parse.Step(&s, methodName),
		Open:  parse.Step(&s, lparen),
		Lead:  parse.Step(&s, bws),
		First: parse.Step(&s, casePair),
		Rest:  parse.Star(&s, casePairTail),
		Close: parse.Step(&s, rparen),
	}

	return parse.End(&s, n)
}

func casePairTail(c parse.Cursor) parse.Result[cst.CasePairTail] {
	s := parse.Begin(c)
	n := cst.CasePairTail{
		Comma: parse.Step(&s, comma),
		Lead:  parse.Step(&s, bws),
		Pair:  parse.Step(&s, casePair),
	}

	return parse.End(&s, n)
}

func casePair(c parse.Cursor) parse.Result[*cst.CasePair] {
	s := parse.Begin(c)
	n := &cst.CasePair{
		Condition: parse.Step(&s, commonExpr),
		Lead:      parse.Step(&s, bws),
		Colon:     parse.Step(&s, colon),
		Trail:     parse.Step(&s, bws),
		Value:     parse.Step(&s, commonExpr),
		End:       parse.Step(&s, bws),
	}

	return parse.End(&s, n)
}
