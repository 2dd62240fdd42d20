package grammar

import (
	"github.com/ardnew/odatauri/cst"
	"github.com/ardnew/odatauri/parse"
)

// System query option names may be written with or without the "$".
var (
	computeKeyword       = parse.OneOf(true, "$compute", "compute")
	deltaTokenKeyword    = parse.Fold("$deltatoken")
	expandKeyword        = parse.OneOf(true, "$expand", "expand")
	filterOptionKeyword  = parse.OneOf(true, "$filter", "filter")
	formatKeyword        = parse.OneOf(true, "$format", "format")
	idKeyword            = parse.OneOf(true, "$id", "id")
	inlineCountKeyword   = parse.OneOf(true, "$count", "count")
	indexKeyword         = parse.OneOf(true, "$index", "index")
	levelsKeyword        = parse.OneOf(true, "$levels", "levels")
	orderByKeyword       = parse.OneOf(true, "$orderby", "orderby")
	schemaVersionKeyword = parse.OneOf(true, "$schemaversion", "schemaversion")
	searchKeyword        = parse.OneOf(true, "$search", "search")
	selectKeyword        = parse.OneOf(true, "$select", "select")
	skipKeyword          = parse.OneOf(true, "$skip", "skip")
	skipTokenKeyword     = parse.Fold("$skiptoken")
	topKeyword           = parse.OneOf(true, "$top", "top")

	asKeyword         = parse.Fold("as")
	maxKeyword        = parse.Fold("max")
	expandValue       = parse.Fold("$value")
	formatName        = parse.OneOf(true, "atom", "json", "xml")
	orderDirection    = parse.OneOf(true, "asc", "desc")
	searchNotKeyword  = parse.Lit("NOT")
	searchOrKeyword   = parse.Lit("OR")
	searchAndKeyword  = parse.Lit("AND")
	searchOperator    = parse.OneOf(false, "AND", "OR", "NOT")
	selectPropertyEnd = parse.Or(slash, lparen)

	// optionEnd is what may follow a complete query option.
	optionEnd = parse.Or(amp, hash, parse.EOF)
)

func queryOptions(c parse.Cursor) parse.Result[*cst.QueryOptions] {
	s := parse.Begin(c)
	n := &cst.QueryOptions{
		First: parse.Step(&s, queryOption),
		Rest:  parse.Star(&s, queryOptionTail),
	}

	return parse.End(&s, n)
}

func queryOptionTail(c parse.Cursor) parse.Result[cst.QueryOptionTail] {
	s := parse.Begin(c)
	n := cst.QueryOptionTail{
		Amp:    parse.Step(&s, amp),
		Option: parse.Step(&s, queryOption),
	}

	return parse.End(&s, n)
}

// queryOption accepts an alternative only if the option ends where it
// stops, so that an expression cut short falls through to a custom option.
func queryOption(c parse.Cursor) parse.Result[*cst.QueryOption] {
	n := new(cst.QueryOption)

	if r := systemQueryOption(c); r.OK && optionEnd(r.Rest).OK {
		n.System = r.Value

		return parse.Ok(n, r.Rest)
	}

	if r := aliasAndValue(c); r.OK && optionEnd(r.Rest).OK {
		n.Alias = r.Value

		return parse.Ok(n, r.Rest)
	}

	if r := nameAndValue(c); r.OK && optionEnd(r.Rest).OK {
		n.Name = r.Value

		return parse.Ok(n, r.Rest)
	}

	if r := customQueryOption(c); r.OK && optionEnd(r.Rest).OK {
		n.Custom = r.Value

		return parse.Ok(n, r.Rest)
	}

	return parse.Fail[*cst.QueryOption](c)
}

func systemQueryOption(c parse.Cursor) parse.Result[*cst.SystemQueryOption] {
	var rest parse.Cursor

	n := new(cst.SystemQueryOption)

	switch {
	case parse.Try(c, &rest, &n.Compute, compute):
	case parse.Try(c, &rest, &n.DeltaToken, deltaToken):
	case parse.Try(c, &rest, &n.Expand, expand):
	case parse.Try(c, &rest, &n.Filter, filter):
	case parse.Try(c, &rest, &n.Format, format):
	case parse.Try(c, &rest, &n.ID, id):
	case parse.Try(c, &rest, &n.InlineCount, inlineCount):
	case parse.Try(c, &rest, &n.Index, index):
	case parse.Try(c, &rest, &n.Levels, levels):
	case parse.Try(c, &rest, &n.OrderBy, orderBy):
	case parse.Try(c, &rest, &n.SchemaVersion, schemaVersion):
	case parse.Try(c, &rest, &n.Search, search):
	case parse.Try(c, &rest, &n.Select, selectOption):
	case parse.Try(c, &rest, &n.Skip, skip):
	case parse.Try(c, &rest, &n.SkipToken, skipToken):
	case parse.Try(c, &rest, &n.Top, top):
	default:
		return parse.Fail[*cst.SystemQueryOption](c)
	}

	return parse.Ok(n, rest)
}

func batchOptions(c parse.Cursor) parse.Result[*cst.BatchOptions] {
	s := parse.Begin(c)
	n := &cst.BatchOptions{
		First: parse.Step(&s, batchOption),
		Rest:  parse.Star(&s, batchOptionTail),
	}

	return parse.End(&s, n)
}

func batchOptionTail(c parse.Cursor) parse.Result[cst.BatchOptionTail] {
	s := parse.Begin(c)
	n := cst.BatchOptionTail{
		Amp:    parse.Step(&s, amp),
		Option: parse.Step(&s, batchOption),
	}

	return parse.End(&s, n)
}

func batchOption(c parse.Cursor) parse.Result[*cst.BatchOption] {
	var rest parse.Cursor

	n := new(cst.BatchOption)

	switch {
	case parse.Try(c, &rest, &n.Format, format):
	case parse.Try(c, &rest, &n.Custom, customQueryOption):
	default:
		return parse.Fail[*cst.BatchOption](c)
	}

	return parse.Ok(n, rest)
}

func metadataOptions(c parse.Cursor) parse.Result[*cst.MetadataOptions] {
	s := parse.Begin(c)
	n := &cst.MetadataOptions{
		First: parse.Step(&s, metadataOption),
		Rest:  parse.Star(&s, metadataOptionTail),
	}

	return parse.End(&s, n)
}

func metadataOptionTail(c parse.Cursor) parse.Result[cst.MetadataOptionTail] {
	s := parse.Begin(c)
	n := cst.MetadataOptionTail{
		Amp:    parse.Step(&s, amp),
		Option: parse.Step(&s, metadataOption),
	}

	return parse.End(&s, n)
}

func metadataOption(c parse.Cursor) parse.Result[*cst.MetadataOption] {
	var rest parse.Cursor

	n := new(cst.MetadataOption)

	switch {
	case parse.Try(c, &rest, &n.Format, format):
	case parse.Try(c, &rest, &n.Custom, customQueryOption):
	default:
		return parse.Fail[*cst.MetadataOption](c)
	}

	return parse.Ok(n, rest)
}

func entityOptions(c parse.Cursor) parse.Result[*cst.EntityOptions] {
	s := parse.Begin(c)
	n := &cst.EntityOptions{
		Before: parse.Star(&s, entityIDOptionHead),
		ID:     parse.Step(&s, id),
		After:  parse.Star(&s, entityIDOptionTail),
	}

	return parse.End(&s, n)
}

func entityIDOptionHead(c parse.Cursor) parse.Result[cst.EntityIDOptionHead] {
	s := parse.Begin(c)
	parse.Reject(&s, id)
	n := cst.EntityIDOptionHead{
		Option: parse.Step(&s, entityIDOption),
		Amp:    parse.Step(&s, amp),
	}

	return parse.End(&s, n)
}

func entityIDOptionTail(c parse.Cursor) parse.Result[cst.EntityIDOptionTail] {
	s := parse.Begin(c)
	n := cst.EntityIDOptionTail{
		Amp:    parse.Step(&s, amp),
		Option: parse.Step(&s, entityIDOption),
	}

	return parse.End(&s, n)
}

func entityIDOption(c parse.Cursor) parse.Result[*cst.EntityIDOption] {
	var rest parse.Cursor

	n := new(cst.EntityIDOption)

	switch {
	case parse.Try(c, &rest, &n.Format, format):
	case parse.Try(c, &rest, &n.Custom, customQueryOption):
	default:
		return parse.Fail[*cst.EntityIDOption](c)
	}

	return parse.Ok(n, rest)
}

func entityCastOptions(c parse.Cursor) parse.Result[*cst.EntityCastOptions] {
	s := parse.Begin(c)
	n := &cst.EntityCastOptions{
		Before: parse.Star(&s, entityCastOptionHead),
		ID:     parse.Step(&s, id),
		After:  parse.Star(&s, entityCastOptionTail),
	}

	return parse.End(&s, n)
}

func entityCastOptionHead(c parse.Cursor) parse.Result[cst.EntityCastOptionHead] {
	s := parse.Begin(c)
	parse.Reject(&s, id)
	n := cst.EntityCastOptionHead{
		Option: parse.Step(&s, entityCastOption),
		Amp:    parse.Step(&s, amp),
	}

	return parse.End(&s, n)
}

func entityCastOptionTail(c parse.Cursor) parse.Result[cst.EntityCastOptionTail] {
	s := parse.Begin(c)
	n := cst.EntityCastOptionTail{
		Amp:    parse.Step(&s, amp),
		Option: parse.Step(&s, entityCastOption),
	}

	return parse.End(&s, n)
}

func entityCastOption(c parse.Cursor) parse.Result[*cst.EntityCastOption] {
	var rest parse.Cursor

	n := new(cst.EntityCastOption)

	switch {
	case parse.Try(c, &rest, &n.IDOption, entityIDOption):
	case parse.Try(c, &rest, &n.Expand, expand):
	case parse.Try(c, &rest, &n.Select, selectOption):
	default:
		return parse.Fail[*cst.EntityCastOption](c)
	}

	return parse.Ok(n, rest)
}

func id(c parse.Cursor) parse.Result[*cst.ID] {
	s := parse.Begin(c)
	n := &cst.ID{
		Keyword: parse.Step(&s, idKeyword),
		Eq:      parse.Step(&s, eq),
		IRI:     parse.Step(&s, iriInQuery),
	}

	return parse.End(&s, n)
}

func iriInQuery(c parse.Cursor) parse.Result[*cst.IRIInQuery] {
	s := parse.Begin(c)
	n := &cst.IRIInQuery{Chars: parse.Times(&s, qcharNoAMP, 1, parse.Unbounded)}

	return parse.End(&s, n)
}

func compute(c parse.Cursor) parse.Result[*cst.Compute] {
	s := parse.Begin(c)
	n := &cst.Compute{
		Keyword: parse.Step(&s, computeKeyword),
		Eq:      parse.Step(&s, eq),
		First:   parse.Step(&s, computeItem),
		Rest:    parse.Star(&s, computeItemTail),
	}

	return parse.End(&s, n)
}

func computeItemTail(c parse.Cursor) parse.Result[cst.ComputeItemTail] {
	s := parse.Begin(c)
	n := cst.ComputeItemTail{
		Comma: parse.Step(&s, comma),
		Item:  parse.Step(&s, computeItem),
	}

	return parse.End(&s, n)
}

func computeItem(c parse.Cursor) parse.Result[*cst.ComputeItem] {
	s := parse.Begin(c)
	n := &cst.ComputeItem{
		Expr:     parse.Step(&s, commonExpr),
		Lead:     parse.Step(&s, rws),
		As:       parse.Step(&s, asKeyword),
		Trail:    parse.Step(&s, rws),
		Property: parse.Step(&s, computedProperty),
	}

	return parse.End(&s, n)
}

func tokenValue(c parse.Cursor, keyword parse.Parser[token]) parse.Result[*cst.DeltaToken] {
	s := parse.Begin(c)
	n := &cst.DeltaToken{
		Keyword: parse.Step(&s, keyword),
		Eq:      parse.Step(&s, eq),
		Value:   parse.Times(&s, qcharNoAMP, 1, parse.Unbounded),
	}

	return parse.End(&s, n)
}

func deltaToken(c parse.Cursor) parse.Result[*cst.DeltaToken] {
	return tokenValue(c, deltaTokenKeyword)
}

func skipToken(c parse.Cursor) parse.Result[*cst.SkipToken] {
	return parse.As(tokenValue(c, skipTokenKeyword), func(v *cst.DeltaToken) *cst.SkipToken {
		return (*cst.SkipToken)(v)
	})
}

func expand(c parse.Cursor) parse.Result[*cst.Expand] {
	s := parse.Begin(c)
	n := &cst.Expand{
		Keyword: parse.Step(&s, expandKeyword),
		Eq:      parse.Step(&s, eq),
		First:   parse.Step(&s, expandItem),
		Rest:    parse.Star(&s, expandItemTail),
	}

	return parse.End(&s, n)
}

func expandItemTail(c parse.Cursor) parse.Result[cst.ExpandItemTail] {
	s := parse.Begin(c)
	n := cst.ExpandItemTail{
		Comma: parse.Step(&s, comma),
		Item:  parse.Step(&s, expandItem),
	}

	return parse.End(&s, n)
}

func expandItem(c parse.Cursor) parse.Result[*cst.ExpandItem] {
	if !c.Enter() {
		return parse.Fail[*cst.ExpandItem](c)
	}
	defer c.Leave()

	var rest parse.Cursor

	n := new(cst.ExpandItem)

	switch {
	case parse.Try(c, &rest, &n.Star, expandStar):
	case parse.Try(c, &rest, &n.Value, expandValueToken):
	case parse.Try(c, &rest, &n.Path, expandPathItem):
	default:
		return parse.Fail[*cst.ExpandItem](c)
	}

	return parse.Ok(n, rest)
}

func expandValueToken(c parse.Cursor) parse.Result[*token] {
	return parse.As(expandValue(c), func(t token) *token { return &t })
}

func expandStar(c parse.Cursor) parse.Result[*cst.ExpandStar] {
	s := parse.Begin(c)
	n := &cst.ExpandStar{Star: parse.Step(&s, star)}

	if n.Ref = parse.Maybe(&s, ref); n.Ref == nil {
		n.Levels = parse.Maybe(&s, expandLevels)
	}

	return parse.End(&s, n)
}

func expandLevels(c parse.Cursor) parse.Result[*cst.ExpandLevels] {
	s := parse.Begin(c)
	n := &cst.ExpandLevels{
		Open:   parse.Step(&s, lparen),
		Levels: parse.Step(&s, levels),
		Close:  parse.Step(&s, rparen),
	}

	return parse.End(&s, n)
}

func expandPathItem(c parse.Cursor) parse.Result[*cst.ExpandPathItem] {
	p := expandPath(c)
	if !p.OK {
		return parse.Fail[*cst.ExpandPathItem](c)
	}

	n := &cst.ExpandPathItem{Path: p.Value}
	rest := p.Rest

	switch {
	case parse.Try(p.Rest, &rest, &n.Ref, expandRef):
	case parse.Try(p.Rest, &rest, &n.Count, expandCount):
	case parse.Try(p.Rest, &rest, &n.Options, expandOptions):
	}

	return parse.Ok(n, rest)
}

func expandRef(c parse.Cursor) parse.Result[*cst.ExpandRef] {
	s := parse.Begin(c)
	n := &cst.ExpandRef{
		Ref:     parse.Step(&s, ref),
		Options: parse.Maybe(&s, expandRefOptions),
	}

	return parse.End(&s, n)
}

func expandCount(c parse.Cursor) parse.Result[*cst.ExpandCount] {
	s := parse.Begin(c)
	n := &cst.ExpandCount{
		Count:   parse.Step(&s, count),
		Options: parse.Maybe(&s, expandCountOptions),
	}

	return parse.End(&s, n)
}

func expandPath(c parse.Cursor) parse.Result[*cst.ExpandPath] {
	s := parse.Begin(c)
	n := &cst.ExpandPath{
		Cast:     parse.Maybe(&s, expandPathCast),
		Segments: parse.Star(&s, expandPathSegment),
	}

	if !s.OK() {
		return parse.Fail[*cst.ExpandPath](c)
	}

	var rest parse.Cursor

	switch cur := s.Cursor(); {
	case parse.Try(cur, &rest, &n.Star, starToken):
	case parse.Try(cur, &rest, &n.Navigation, expandNavigation):
	case parse.Try(cur, &rest, &n.Stream, streamProperty):
	default:
		return parse.Fail[*cst.ExpandPath](c)
	}

	return parse.Ok(n, rest)
}

func expandPathCast(c parse.Cursor) parse.Result[*cst.ExpandPathCast] {
	s := parse.Begin(c)
	n := &cst.ExpandPathCast{Entity: parse.Maybe(&s, qualifiedEntityTypeName)}

	if n.Entity == nil {
		n.Complex = parse.Step(&s, qualifiedComplexTypeName)
	}

	n.Slash = parse.Step(&s, slash)

	return parse.End(&s, n)
}

// expandPathSegment continues only into a plain property name or a star;
// a qualified name after the slash belongs to the navigation cast.
func expandPathSegment(c parse.Cursor) parse.Result[cst.ExpandPathSegment] {
	s := parse.Begin(c)
	n := cst.ExpandPathSegment{
		Complex: parse.Step(&s, complexProperty),
		Slash:   parse.Step(&s, slash),
		Cast:    parse.Maybe(&s, expandSegmentCast),
	}
	parse.Expect(&s, expandSegmentNext)

	return parse.End(&s, n)
}

func expandSegmentNext(c parse.Cursor) parse.Result[token] {
	if r := star(c); r.OK {
		return r
	}

	s := parse.Begin(c)
	parse.Step(&s, odataIdentifier)
	parse.Reject(&s, dot)

	return parse.End(&s, c.Span(s.Cursor()))
}

func expandSegmentCast(c parse.Cursor) parse.Result[*cst.ExpandSegmentCast] {
	s := parse.Begin(c)
	n := &cst.ExpandSegmentCast{
		Type:  parse.Step(&s, qualifiedComplexTypeName),
		Slash: parse.Step(&s, slash),
	}

	return parse.End(&s, n)
}

func expandNavigation(c parse.Cursor) parse.Result[*cst.ExpandNavigation] {
	s := parse.Begin(c)
	n := &cst.ExpandNavigation{
		Property: parse.Step(&s, navigationProperty),
		Cast:     parse.Maybe(&s, typeCastEntity),
	}

	return parse.End(&s, n)
}

type optionListNode[O, T any] interface {
	~struct {
		Open  parse.Token
		First *O
		Rest  []T
		Close parse.Token
	}
}

type optionTailNode[O any] interface {
	~struct {
		Semi   parse.Token
		Option *O
	}
}

// optionList parses OPEN option *( SEMI option ) CLOSE.
func optionList[N optionListNode[O, T], T optionTailNode[O], O any](
	c parse.Cursor, option parse.Parser[*O],
) parse.Result[*N] {
	tail := parse.Parser[T](func(c parse.Cursor) parse.Result[T] {
		s := parse.Begin(c)
		t := T(struct {
			Semi   parse.Token
			Option *O
		}{
			Semi:   parse.Step(&s, semi),
			Option: parse.Step(&s, option),
		})

		return parse.End(&s, t)
	})

	s := parse.Begin(c)
	n := N(struct {
		Open  parse.Token
		First *O
		Rest  []T
		Close parse.Token
	}{
		Open:  parse.Step(&s, lparen),
		First: parse.Step(&s, option),
		Rest:  parse.Star(&s, tail),
		Close: parse.Step(&s, rparen),
	})

	return parse.End(&s, &n)
}

func expandCountOptions(c parse.Cursor) parse.Result[*cst.ExpandCountOptions] {
	return optionList[cst.ExpandCountOptions, cst.ExpandCountOptionTail, cst.ExpandCountOption](c, expandCountOption)
}

func expandRefOptions(c parse.Cursor) parse.Result[*cst.ExpandRefOptions] {
	return optionList[cst.ExpandRefOptions, cst.ExpandRefOptionTail, cst.ExpandRefOption](c, expandRefOption)
}

func expandOptions(c parse.Cursor) parse.Result[*cst.ExpandOptions] {
	return optionList[cst.ExpandOptions, cst.ExpandOptionTail, cst.ExpandOption](c, expandOption)
}

func selectOptionsPC(c parse.Cursor) parse.Result[*cst.SelectOptionsPC] {
	return optionList[cst.SelectOptionsPC, cst.SelectOptionPCTail, cst.SelectOptionPC](c, selectOptionPC)
}

func selectOptions(c parse.Cursor) parse.Result[*cst.SelectOptions] {
	return optionList[cst.SelectOptions, cst.SelectOptionTail, cst.SelectOption](c, selectItemOption)
}

func expandCountOption(c parse.Cursor) parse.Result[*cst.ExpandCountOption] {
	var rest parse.Cursor

	n := new(cst.ExpandCountOption)

	switch {
	case parse.Try(c, &rest, &n.Filter, filter):
	case parse.Try(c, &rest, &n.Search, search):
	default:
		return parse.Fail[*cst.ExpandCountOption](c)
	}

	return parse.Ok(n, rest)
}

func expandRefOption(c parse.Cursor) parse.Result[*cst.ExpandRefOption] {
	var rest parse.Cursor

	n := new(cst.ExpandRefOption)

	switch {
	case parse.Try(c, &rest, &n.Count, expandCountOption):
	case parse.Try(c, &rest, &n.OrderBy, orderBy):
	case parse.Try(c, &rest, &n.Skip, skip):
	case parse.Try(c, &rest, &n.Top, top):
	case parse.Try(c, &rest, &n.InlineCount, inlineCount):
	default:
		return parse.Fail[*cst.ExpandRefOption](c)
	}

	return parse.Ok(n, rest)
}

func expandOption(c parse.Cursor) parse.Result[*cst.ExpandOption] {
	var rest parse.Cursor

	n := new(cst.ExpandOption)

	switch {
	case parse.Try(c, &rest, &n.Ref, expandRefOption):
	case parse.Try(c, &rest, &n.Select, selectOption):
	case parse.Try(c, &rest, &n.Expand, expand):
	case parse.Try(c, &rest, &n.Compute, compute):
	case parse.Try(c, &rest, &n.Levels, levels):
	case parse.Try(c, &rest, &n.Alias, aliasAndValue):
	default:
		return parse.Fail[*cst.ExpandOption](c)
	}

	return parse.Ok(n, rest)
}

func levels(c parse.Cursor) parse.Result[*cst.Levels] {
	s := parse.Begin(c)
	n := &cst.Levels{
		Keyword: parse.Step(&s, levelsKeyword),
		Eq:      parse.Step(&s, eq),
		Value:   parse.Step(&s, levelsValue),
	}

	return parse.End(&s, n)
}

// levelsValue is oneToNine *DIGIT / "max" as a single token.
func levelsValue(c parse.Cursor) parse.Result[token] {
	if r := maxKeyword(c); r.OK {
		return r
	}

	if r := oneToNine(c); r.OK {
		n := 1 + setDIGIT.Span(r.Rest.Remaining())

		return parse.Ok(c.Token(n), c.Advance(n))
	}

	return parse.Fail[token](c)
}

func filter(c parse.Cursor) parse.Result[*cst.Filter] {
	s := parse.Begin(c)
	n := &cst.Filter{
		Keyword: parse.Step(&s, filterOptionKeyword),
		Eq:      parse.Step(&s, eq),
		Expr:    parse.Step(&s, commonExpr),
	}

	return parse.End(&s, n)
}

func orderBy(c parse.Cursor) parse.Result[*cst.OrderBy] {
	s := parse.Begin(c)
	n := &cst.OrderBy{
		Keyword: parse.Step(&s, orderByKeyword),
		Eq:      parse.Step(&s, eq),
		First:   parse.Step(&s, orderByItem),
		Rest:    parse.Star(&s, orderByItemTail),
	}

	return parse.End(&s, n)
}

func orderByItemTail(c parse.Cursor) parse.Result[cst.OrderByItemTail] {
	s := parse.Begin(c)
	n := cst.OrderByItemTail{
		Comma: parse.Step(&s, comma),
		Item:  parse.Step(&s, orderByItem),
	}

	return parse.End(&s, n)
}

func orderByItem(c parse.Cursor) parse.Result[*cst.OrderByItem] {
	s := parse.Begin(c)
	n := &cst.OrderByItem{
		Expr:      parse.Step(&s, commonExpr),
		Direction: parse.Maybe(&s, orderByDirection),
	}

	return parse.End(&s, n)
}

func orderByDirection(c parse.Cursor) parse.Result[*cst.OrderDirection] {
	s := parse.Begin(c)
	n := &cst.OrderDirection{
		Space:     parse.Step(&s, rws),
		Direction: parse.Step(&s, orderDirection),
	}
	parse.Reject(&s, identChar)

	return parse.End(&s, n)
}

func skipLike(c parse.Cursor, keyword parse.Parser[token]) parse.Result[*cst.Skip] {
	s := parse.Begin(c)
	n := &cst.Skip{
		Keyword: parse.Step(&s, keyword),
		Eq:      parse.Step(&s, eq),
		Digits:  parse.Times(&s, digit, 1, parse.Unbounded),
	}

	return parse.End(&s, n)
}

func skip(c parse.Cursor) parse.Result[*cst.Skip] {
	return skipLike(c, skipKeyword)
}

func top(c parse.Cursor) parse.Result[*cst.Top] {
	return parse.As(skipLike(c, topKeyword), func(v *cst.Skip) *cst.Top {
		return (*cst.Top)(v)
	})
}

func index(c parse.Cursor) parse.Result[*cst.Index] {
	s := parse.Begin(c)
	n := &cst.Index{
		Keyword: parse.Step(&s, indexKeyword),
		Eq:      parse.Step(&s, eq),
		Minus:   parse.Opt(&s, dash),
		Digits:  parse.Times(&s, digit, 1, parse.Unbounded),
	}

	return parse.End(&s, n)
}

func format(c parse.Cursor) parse.Result[*cst.Format] {
	s := parse.Begin(c)
	n := &cst.Format{
		Keyword: parse.Step(&s, formatKeyword),
		Eq:      parse.Step(&s, eq),
	}

	if !s.OK() {
		return parse.Fail[*cst.Format](c)
	}

	if n.Media = parse.Maybe(&s, mediaType); n.Media == nil {
		n.Name = parse.Opt(&s, formatName)
		if n.Name == nil {
			s.Abort()
		}
	}

	return parse.End(&s, n)
}

func mediaType(c parse.Cursor) parse.Result[*cst.MediaType] {
	s := parse.Begin(c)
	n := &cst.MediaType{
		Type:    parse.Times(&s, pchar, 1, parse.Unbounded),
		Slash:   parse.Step(&s, slash),
		Subtype: parse.Times(&s, pchar, 1, parse.Unbounded),
	}

	return parse.End(&s, n)
}

func inlineCount(c parse.Cursor) parse.Result[*cst.InlineCount] {
	s := parse.Begin(c)
	n := &cst.InlineCount{
		Keyword: parse.Step(&s, inlineCountKeyword),
		Eq:      parse.Step(&s, eq),
		Value:   parse.Step(&s, booleanValue),
	}

	return parse.End(&s, n)
}

func schemaVersion(c parse.Cursor) parse.Result[*cst.SchemaVersion] {
	s := parse.Begin(c)
	n := &cst.SchemaVersion{
		Keyword: parse.Step(&s, schemaVersionKeyword),
		Eq:      parse.Step(&s, eq),
	}

	if n.Star = parse.Opt(&s, star); n.Star == nil {
		n.Version = parse.Times(&s, unreserved, 1, parse.Unbounded)
	}

	return parse.End(&s, n)
}

func search(c parse.Cursor) parse.Result[*cst.Search] {
	s := parse.Begin(c)
	n := &cst.Search{
		Keyword: parse.Step(&s, searchKeyword),
		Eq:      parse.Step(&s, eq),
		Space:   parse.Step(&s, bws),
		Expr:    parse.Step(&s, searchExpr),
	}

	return parse.End(&s, n)
}

func searchExpr(c parse.Cursor) parse.Result[*cst.SearchExpr] {
	if !c.EnterChain() {
		return parse.Fail[*cst.SearchExpr](c)
	}
	defer c.LeaveChain()

	var rest parse.Cursor

	n := new(cst.SearchExpr)

	switch {
	case parse.Try(c, &rest, &n.Paren, searchParenExpr):
	case parse.Try(c, &rest, &n.Negate, searchNegateExpr):
	case parse.Try(c, &rest, &n.Phrase, searchPhrase):
	case parse.Try(c, &rest, &n.Word, searchWord):
	default:
		return parse.Fail[*cst.SearchExpr](c)
	}

	switch cur := rest; {
	case parse.Try(cur, &rest, &n.Or, searchOrExpr):
	case parse.Try(cur, &rest, &n.And, searchAndExpr):
	}

	return parse.Ok(n, rest)
}

// searchParenExpr counts against the depth limit; searchExpr chains do not.
func searchParenExpr(c parse.Cursor) parse.Result[*cst.SearchParenExpr] {
	return parse.Nested(searchParenGroup)(c)
}

func searchParenGroup(c parse.Cursor) parse.Result[*cst.SearchParenExpr] {
	s := parse.Begin(c)
	n := &cst.SearchParenExpr{
		Open:  parse.Step(&s, lparen),
		Lead:  parse.Step(&s, bws),
		Expr:  parse.Step(&s, searchExpr),
		Trail: parse.Step(&s, bws),
		Close: parse.Step(&s, rparen),
	}

	return parse.End(&s, n)
}

func searchNegateExpr(c parse.Cursor) parse.Result[*cst.SearchNegateExpr] {
	s := parse.Begin(c)
	n := &cst.SearchNegateExpr{
		Not:   parse.Step(&s, searchNotKeyword),
		Space: parse.Step(&s, rws),
		Expr:  parse.Step(&s, searchExpr),
	}

	return parse.End(&s, n)
}

func searchOrExpr(c parse.Cursor) parse.Result[*cst.SearchOrExpr] {
	s := parse.Begin(c)
	n := &cst.SearchOrExpr{
		Lead:  parse.Step(&s, rws),
		Or:    parse.Step(&s, searchOrKeyword),
		Trail: parse.Step(&s, rws),
		Expr:  parse.Step(&s, searchExpr),
	}

	return parse.End(&s, n)
}

func searchAndExpr(c parse.Cursor) parse.Result[*cst.SearchAndExpr] {
	s := parse.Begin(c)
	n := &cst.SearchAndExpr{
		Lead: parse.Step(&s, rws),
		And:  parse.Maybe(&s, searchAnd),
		Expr: parse.Step(&s, searchExpr),
	}

	return parse.End(&s, n)
}

func searchAnd(c parse.Cursor) parse.Result[*cst.SearchAndKeyword] {
	s := parse.Begin(c)
	n := &cst.SearchAndKeyword{
		And:   parse.Step(&s, searchAndKeyword),
		Space: parse.Step(&s, rws),
	}

	return parse.End(&s, n)
}

func searchPhrase(c parse.Cursor) parse.Result[*cst.SearchPhrase] {
	s := parse.Begin(c)
	n := &cst.SearchPhrase{
		Open:  parse.Step(&s, quotationMark),
		Chars: parse.Times(&s, qcharNoAMPDQUOTE, 1, parse.Unbounded),
		Close: parse.Step(&s, quotationMark),
	}

	return parse.End(&s, n)
}

func searchWord(c parse.Cursor) parse.Result[*cst.SearchWord] {
	s := parse.Begin(c)
	parse.Reject(&s, searchOperatorWord)
	n := &cst.SearchWord{Chars: parse.Times(&s, searchChar, 1, parse.Unbounded)}

	return parse.End(&s, n)
}

// searchOperatorWord is an operator keyword standing alone.
func searchOperatorWord(c parse.Cursor) parse.Result[token] {
	s := parse.Begin(c)
	t := parse.Step(&s, searchOperator)
	parse.Reject(&s, searchChar)

	return parse.End(&s, t)
}

func selectOption(c parse.Cursor) parse.Result[*cst.Select] {
	s := parse.Begin(c)
	n := &cst.Select{
		Keyword: parse.Step(&s, selectKeyword),
		Eq:      parse.Step(&s, eq),
		First:   parse.Step(&s, selectItem),
		Rest:    parse.Star(&s, selectItemTail),
	}

	return parse.End(&s, n)
}

func selectItemTail(c parse.Cursor) parse.Result[cst.SelectItemTail] {
	s := parse.Begin(c)
	n := cst.SelectItemTail{
		Comma: parse.Step(&s, comma),
		Item:  parse.Step(&s, selectItem),
	}

	return parse.End(&s, n)
}

func selectItem(c parse.Cursor) parse.Result[*cst.SelectItem] {
	var rest parse.Cursor

	n := new(cst.SelectItem)

	switch {
	case parse.Try(c, &rest, &n.Star, starToken):
	case parse.Try(c, &rest, &n.AllOperations, allOperationsInSchema):
	case parse.Try(c, &rest, &n.Qualified, qualifiedSelectItem):
	default:
		return parse.Fail[*cst.SelectItem](c)
	}

	return parse.Ok(n, rest)
}

func qualifiedSelectItem(c parse.Cursor) parse.Result[*cst.QualifiedSelectItem] {
	s := parse.Begin(c)
	n := &cst.QualifiedSelectItem{Cast: parse.Maybe(&s, selectItemCast)}
	cur := s.Cursor()

	if r := qualifiedActionName(cur); r.OK && !lparen(r.Rest).OK {
		n.Action = r.Value

		return parse.Ok(n, r.Rest)
	}

	var rest parse.Cursor

	switch {
	case parse.Try(cur, &rest, &n.Function, qualifiedFunctionName):
	case parse.Try(cur, &rest, &n.Property, selectProperty):
	default:
		return parse.Fail[*cst.QualifiedSelectItem](c)
	}

	return parse.Ok(n, rest)
}

func selectItemCast(c parse.Cursor) parse.Result[*cst.SelectItemCast] {
	s := parse.Begin(c)
	n := &cst.SelectItemCast{Entity: parse.Maybe(&s, qualifiedEntityTypeName)}

	if n.Entity == nil {
		n.Complex = parse.Step(&s, qualifiedComplexTypeName)
	}

	n.Slash = parse.Step(&s, slash)

	return parse.End(&s, n)
}

func selectProperty(c parse.Cursor) parse.Result[*cst.SelectProperty] {
	if !c.EnterChain() {
		return parse.Fail[*cst.SelectProperty](c)
	}
	defer c.LeaveChain()

	var rest parse.Cursor

	n := new(cst.SelectProperty)

	switch {
	case parse.Try(c, &rest, &n.Primitive, selectPrimitive):
	case parse.Try(c, &rest, &n.PrimitiveCol, selectPrimitiveCol):
	case parse.Try(c, &rest, &n.Navigation, selectNavigation):
	case parse.Try(c, &rest, &n.Path, selectPathProperty):
	default:
		return parse.Fail[*cst.SelectProperty](c)
	}

	return parse.Ok(n, rest)
}

func selectPrimitive(c parse.Cursor) parse.Result[*cst.PrimitiveProperty] {
	s := parse.Begin(c)
	n := parse.Step(&s, primitiveProperty)
	parse.Reject(&s, selectPropertyEnd)

	return parse.End(&s, n)
}

// selectPrimitiveCol leaves a parenthesized list it cannot read to the
// complex reading.
func selectPrimitiveCol(c parse.Cursor) parse.Result[*cst.SelectPrimitiveCol] {
	s := parse.Begin(c)
	n := &cst.SelectPrimitiveCol{
		Property: parse.Step(&s, primitiveColProperty),
		Options:  parse.Maybe(&s, selectOptionsPC),
	}
	parse.Reject(&s, selectPropertyEnd)

	return parse.End(&s, n)
}

func selectNavigation(c parse.Cursor) parse.Result[*cst.NavigationProperty] {
	s := parse.Begin(c)
	n := parse.Step(&s, navigationProperty)
	parse.Reject(&s, selectPropertyEnd)

	return parse.End(&s, n)
}

func selectPathProperty(c parse.Cursor) parse.Result[*cst.SelectPathProperty] {
	s := parse.Begin(c)
	n := &cst.SelectPathProperty{Path: parse.Step(&s, selectPath)}

	if n.Options = parse.Maybe(&s, selectOptions); n.Options == nil {
		n.Next = parse.Maybe(&s, selectPropertySegment)
	}

	return parse.End(&s, n)
}

func selectPropertySegment(c parse.Cursor) parse.Result[*cst.SelectPropertySegment] {
	s := parse.Begin(c)
	n := &cst.SelectPropertySegment{
		Slash:    parse.Step(&s, slash),
		Property: parse.Step(&s, selectProperty),
	}

	return parse.End(&s, n)
}

func selectOptionPC(c parse.Cursor) parse.Result[*cst.SelectOptionPC] {
	var rest parse.Cursor

	n := new(cst.SelectOptionPC)

	switch {
	case parse.Try(c, &rest, &n.Filter, filter):
	case parse.Try(c, &rest, &n.Search, search):
	case parse.Try(c, &rest, &n.InlineCount, inlineCount):
	case parse.Try(c, &rest, &n.OrderBy, orderBy):
	case parse.Try(c, &rest, &n.Skip, skip):
	case parse.Try(c, &rest, &n.Top, top):
	default:
		return parse.Fail[*cst.SelectOptionPC](c)
	}

	return parse.Ok(n, rest)
}

func selectItemOption(c parse.Cursor) parse.Result[*cst.SelectOption] {
	var rest parse.Cursor

	n := new(cst.SelectOption)

	switch {
	case parse.Try(c, &rest, &n.PC, selectOptionPC):
	case parse.Try(c, &rest, &n.Compute, compute):
	case parse.Try(c, &rest, &n.Select, selectOption):
	case parse.Try(c, &rest, &n.Expand, expand):
	case parse.Try(c, &rest, &n.Alias, aliasAndValue):
	default:
		return parse.Fail[*cst.SelectOption](c)
	}

	return parse.Ok(n, rest)
}

func aliasAndValue(c parse.Cursor) parse.Result[*cst.AliasAndValue] {
	s := parse.Begin(c)
	n := &cst.AliasAndValue{
		Alias: parse.Step(&s, parameterAlias),
		Eq:    parse.Step(&s, eq),
		Value: parse.Step(&s, parameterValue),
	}

	return parse.End(&s, n)
}

func nameAndValue(c parse.Cursor) parse.Result[*cst.NameAndValue] {
	s := parse.Begin(c)
	n := &cst.NameAndValue{
		Name:  parse.Step(&s, parameterName),
		Eq:    parse.Step(&s, eq),
		Value: parse.Step(&s, parameterValue),
	}

	return parse.End(&s, n)
}

func parameterValue(c parse.Cursor) parse.Result[*cst.ParameterValue] {
	var rest parse.Cursor

	n := new(cst.ParameterValue)

	switch {
	case parse.Try(c, &rest, &n.ArrayOrObject, arrayOrObject):
	case parse.Try(c, &rest, &n.Expr, commonExpr):
	default:
		return parse.Fail[*cst.ParameterValue](c)
	}

	return parse.Ok(n, rest)
}

func customQueryOption(c parse.Cursor) parse.Result[*cst.CustomQueryOption] {
	s := parse.Begin(c)
	n := &cst.CustomQueryOption{
		Name:  parse.Step(&s, customName),
		Value: parse.Maybe(&s, customValueClause),
	}

	return parse.End(&s, n)
}

func customName(c parse.Cursor) parse.Result[*cst.CustomName] {
	s := parse.Begin(c)
	n := &cst.CustomName{
		Lead: parse.Step(&s, qcharNoAMPEQATDOLLAR),
		Rest: parse.Star(&s, qcharNoAMPEQ),
	}

	return parse.End(&s, n)
}

func customValueClause(c parse.Cursor) parse.Result[*cst.CustomValueClause] {
	s := parse.Begin(c)
	n := &cst.CustomValueClause{
		Eq:    parse.Step(&s, eq),
		Value: parse.Step(&s, customValue),
	}

	return parse.End(&s, n)
}

func customValue(c parse.Cursor) parse.Result[*cst.CustomValue] {
	s := parse.Begin(c)
	n := &cst.CustomValue{Chars: parse.Star(&s, qcharNoAMP)}

	return parse.End(&s, n)
}
