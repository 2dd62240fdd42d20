package grammar

import (
	"github.com/ardnew/odatauri/cst"
	"github.com/ardnew/odatauri/parse"
)

var (
	rootKeyword    = parse.Lit("$root/")
	filterKeyword  = parse.Lit("/$filter")
	anyKeyword     = parse.Lit("any")
	allKeyword     = parse.Lit("all")
	notKeyword     = parse.Lit("not")
	castKeyword    = parse.Lit("cast")
	isofKeyword    = parse.Lit("isof")
	implicitVarKey = parse.OneOf(false, "$it", "$this")

	addOp   = parse.Lit("add")
	subOp   = parse.Lit("sub")
	mulOp   = parse.Lit("mul")
	divByOp = parse.Lit("divby")
	divOp   = parse.Lit("div")
	modOp   = parse.Lit("mod")
	eqOp    = parse.Lit("eq")
	neOp    = parse.Lit("ne")
	ltOp    = parse.Lit("lt")
	leOp    = parse.Lit("le")
	gtOp    = parse.Lit("gt")
	geOp    = parse.Lit("ge")
	hasOp   = parse.Lit("has")
	inOp    = parse.Lit("in")
	andOp   = parse.Lit("and")
	orOp    = parse.Lit("or")
)

// commonExpr is the hottest rule of the grammar. Each operand is chosen by
// ordered alternation and the optional operator tails are attached in
// precedence order.
//
// A tail's right operand is itself a commonExpr, so a chain such as
// "a and b and c" nests to the right. The chain is walked with an explicit
// stack of open operands rather than by recursion, so only bracketed or
// argument nesting counts against the depth limit.
func commonExpr(c parse.Cursor) parse.Result[*cst.CommonExpr] {
	if !c.Enter() {
		return parse.Fail[*cst.CommonExpr](c)
	}
	defer c.Leave()

	root, rest, ok := operand(c)
	if !ok {
		return parse.Fail[*cst.CommonExpr](c)
	}

	stack := []openOperand{{node: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.group == len(operatorTails) {
			stack = stack[:len(stack)-1]

			continue
		}

		tails := operatorTails[top.group]
		top.group++

		if right, r, ok := attachTail(top.node, tails, rest); ok {
			rest = r

			if right != nil {
				stack = append(stack, openOperand{node: right})
			}
		}
	}

	return parse.Ok(root, rest)
}

// openOperand is an operand whose tails from group onward are still to be
// tried.
type openOperand struct {
	node  *cst.CommonExpr
	group int
}

// operatorTail is one alternative of an arithmetic, comparison or logical
// tail. Exactly one of op and leaf is set: op introduces a commonExpr
// operand, leaf parses a complete tail with its own operand.
type operatorTail struct {
	op     parse.Parser[token]
	attach func(*cst.CommonExpr, cst.OperatorExpr)
	leaf   func(*cst.CommonExpr, parse.Cursor) (parse.Cursor, bool)
}

var operatorTails = [...][]operatorTail{
	{
		{op: addOp, attach: func(n *cst.CommonExpr, e cst.OperatorExpr) {
			n.Arithmetic = &cst.ArithmeticExpr{Add: (*cst.AddExpr)(&e)}
		}},
		{op: subOp, attach: func(n *cst.CommonExpr, e cst.OperatorExpr) {
			n.Arithmetic = &cst.ArithmeticExpr{Sub: (*cst.SubExpr)(&e)}
		}},
		{op: mulOp, attach: func(n *cst.CommonExpr, e cst.OperatorExpr) {
			n.Arithmetic = &cst.ArithmeticExpr{Mul: (*cst.MulExpr)(&e)}
		}},
		{op: divOp, attach: func(n *cst.CommonExpr, e cst.OperatorExpr) {
			n.Arithmetic = &cst.ArithmeticExpr{Div: (*cst.DivExpr)(&e)}
		}},
		{op: divByOp, attach: func(n *cst.CommonExpr, e cst.OperatorExpr) {
			n.Arithmetic = &cst.ArithmeticExpr{DivBy: (*cst.DivByExpr)(&e)}
		}},
		{op: modOp, attach: func(n *cst.CommonExpr, e cst.OperatorExpr) {
			n.Arithmetic = &cst.ArithmeticExpr{Mod: (*cst.ModExpr)(&e)}
		}},
	},
	{
		{op: eqOp, attach: func(n *cst.CommonExpr, e cst.OperatorExpr) {
			n.Comparison = &cst.ComparisonExpr{Eq: (*cst.EqExpr)(&e)}
		}},
		{op: neOp, attach: func(n *cst.CommonExpr, e cst.OperatorExpr) {
			n.Comparison = &cst.ComparisonExpr{Ne: (*cst.NeExpr)(&e)}
		}},
		{op: ltOp, attach: func(n *cst.CommonExpr, e cst.OperatorExpr) {
			n.Comparison = &cst.ComparisonExpr{Lt: (*cst.LtExpr)(&e)}
		}},
		{op: leOp, attach: func(n *cst.CommonExpr, e cst.OperatorExpr) {
			n.Comparison = &cst.ComparisonExpr{Le: (*cst.LeExpr)(&e)}
		}},
		{op: gtOp, attach: func(n *cst.CommonExpr, e cst.OperatorExpr) {
			n.Comparison = &cst.ComparisonExpr{Gt: (*cst.GtExpr)(&e)}
		}},
		{op: geOp, attach: func(n *cst.CommonExpr, e cst.OperatorExpr) {
			n.Comparison = &cst.ComparisonExpr{Ge: (*cst.GeExpr)(&e)}
		}},
		{leaf: func(n *cst.CommonExpr, c parse.Cursor) (parse.Cursor, bool) {
			r := hasExpr(c)
			if r.OK {
				n.Comparison = &cst.ComparisonExpr{Has: r.Value}
			}

			return r.Rest, r.OK
		}},
		{op: inOp, attach: func(n *cst.CommonExpr, e cst.OperatorExpr) {
			n.Comparison = &cst.ComparisonExpr{In: (*cst.InExpr)(&e)}
		}},
	},
	{
		{op: andOp, attach: func(n *cst.CommonExpr, e cst.OperatorExpr) {
			n.Logical = &cst.LogicalExpr{And: (*cst.AndExpr)(&e)}
		}},
		{op: orOp, attach: func(n *cst.CommonExpr, e cst.OperatorExpr) {
			n.Logical = &cst.LogicalExpr{Or: (*cst.OrExpr)(&e)}
		}},
	},
}

// attachTail tries each alternative of one tail group at c. It returns the
// new right operand, which is nil for a leaf tail, and the position after
// the operand's own alternation.
func attachTail(
	n *cst.CommonExpr,
	tails []operatorTail,
	c parse.Cursor,
) (*cst.CommonExpr, parse.Cursor, bool) {
	for _, t := range tails {
		if t.leaf != nil {
			if rest, ok := t.leaf(n, c); ok {
				return nil, rest, true
			}

			continue
		}

		s := parse.Begin(c)
		e := cst.OperatorExpr{
			Lead:     parse.Step(&s, rws),
			Operator: parse.Step(&s, t.op),
			Trail:    parse.Step(&s, rws),
		}

		if !s.OK() {
			continue
		}

		right, rest, ok := operand(s.Cursor())
		if !ok {
			continue
		}

		e.Right = right
		t.attach(n, e)

		return right, rest, true
	}

	return nil, c, false
}

// operand parses the leading term of a commonExpr, without operator tails.
func operand(c parse.Cursor) (*cst.CommonExpr, parse.Cursor, bool) {
	var rest parse.Cursor

	n := new(cst.CommonExpr)

	switch {
	case parse.Try(c, &rest, &n.PrimitiveLiteral, primitiveLiteral):
	case parse.Try(c, &rest, &n.ArrayOrObject, arrayOrObject):
	case parse.Try(c, &rest, &n.Root, rootExpr):
	case parse.Try(c, &rest, &n.MethodCall, methodCallExpr):
	case parse.Try(c, &rest, &n.Cast, castExpr):
	case parse.Try(c, &rest, &n.IsOf, isofExpr):
	case parse.Try(c, &rest, &n.Not, notExpr):
	case parse.Try(c, &rest, &n.Function, functionExpr):
	case parse.Try(c, &rest, &n.FirstMember, firstMemberExpr):
	case parse.Try(c, &rest, &n.Negate, negateExpr):
	case parse.Try(c, &rest, &n.Paren, parenExpr):
	case parse.Try(c, &rest, &n.List, listExpr):
	default:
		return nil, c, false
	}

	return n, rest, true
}

func arithmeticExpr(c parse.Cursor) parse.Result[*cst.ArithmeticExpr] {
	var rest parse.Cursor

	n := new(cst.ArithmeticExpr)

	switch {
	case parse.Try(c, &rest, &n.Add, addExpr):
	case parse.Try(c, &rest, &n.Sub, subExpr):
	case parse.Try(c, &rest, &n.Mul, mulExpr):
	case parse.Try(c, &rest, &n.Div, divExpr):
	case parse.Try(c, &rest, &n.DivBy, divByExpr):
	case parse.Try(c, &rest, &n.Mod, modExpr):
	default:
		return parse.Fail[*cst.ArithmeticExpr](c)
	}

	return parse.Ok(n, rest)
}

func comparisonExpr(c parse.Cursor) parse.Result[*cst.ComparisonExpr] {
	var rest parse.Cursor

	n := new(cst.ComparisonExpr)

	switch {
	case parse.Try(c, &rest, &n.Eq, eqExpr):
	case parse.Try(c, &rest, &n.Ne, neExpr):
	case parse.Try(c, &rest, &n.Lt, ltExpr):
	case parse.Try(c, &rest, &n.Le, leExpr):
	case parse.Try(c, &rest, &n.Gt, gtExpr):
	case parse.Try(c, &rest, &n.Ge, geExpr):
	case parse.Try(c, &rest, &n.Has, hasExpr):
	case parse.Try(c, &rest, &n.In, inExpr):
	default:
		return parse.Fail[*cst.ComparisonExpr](c)
	}

	return parse.Ok(n, rest)
}

func logicalExpr(c parse.Cursor) parse.Result[*cst.LogicalExpr] {
	var rest parse.Cursor

	n := new(cst.LogicalExpr)

	switch {
	case parse.Try(c, &rest, &n.And, andExpr):
	case parse.Try(c, &rest, &n.Or, orExpr):
	default:
		return parse.Fail[*cst.LogicalExpr](c)
	}

	return parse.Ok(n, rest)
}

type operatorNode interface {
	~struct {
		Lead     *cst.RWS
		Operator parse.Token
		Trail    *cst.RWS
		Right    *cst.CommonExpr
	}
}

// infix parses RWS op RWS commonExpr.
func infix[N operatorNode](c parse.Cursor, op parse.Parser[token]) parse.Result[*N] {
	s := parse.Begin(c)
	n := N(cst.OperatorExpr{
		Lead:     parse.Step(&s, rws),
		Operator: parse.Step(&s, op),
		Trail:    parse.Step(&s, rws),
		Right:    parse.Step(&s, commonExpr),
	})

	return parse.End(&s, &n)
}

func addExpr(c parse.Cursor) parse.Result[*cst.AddExpr]     { return infix[cst.AddExpr](c, addOp) }
func subExpr(c parse.Cursor) parse.Result[*cst.SubExpr]     { return infix[cst.SubExpr](c, subOp) }
func mulExpr(c parse.Cursor) parse.Result[*cst.MulExpr]     { return infix[cst.MulExpr](c, mulOp) }
func divExpr(c parse.Cursor) parse.Result[*cst.DivExpr]     { return infix[cst.DivExpr](c, divOp) }
func divByExpr(c parse.Cursor) parse.Result[*cst.DivByExpr] { return infix[cst.DivByExpr](c, divByOp) }
func modExpr(c parse.Cursor) parse.Result[*cst.ModExpr]     { return infix[cst.ModExpr](c, modOp) }
func eqExpr(c parse.Cursor) parse.Result[*cst.EqExpr]       { return infix[cst.EqExpr](c, eqOp) }
func neExpr(c parse.Cursor) parse.Result[*cst.NeExpr]       { return infix[cst.NeExpr](c, neOp) }
func ltExpr(c parse.Cursor) parse.Result[*cst.LtExpr]       { return infix[cst.LtExpr](c, ltOp) }
func leExpr(c parse.Cursor) parse.Result[*cst.LeExpr]       { return infix[cst.LeExpr](c, leOp) }
func gtExpr(c parse.Cursor) parse.Result[*cst.GtExpr]       { return infix[cst.GtExpr](c, gtOp) }
func geExpr(c parse.Cursor) parse.Result[*cst.GeExpr]       { return infix[cst.GeExpr](c, geOp) }
func inExpr(c parse.Cursor) parse.Result[*cst.InExpr]       { return infix[cst.InExpr](c, inOp) }
func andExpr(c parse.Cursor) parse.Result[*cst.AndExpr]     { return infix[cst.AndExpr](c, andOp) }
func orExpr(c parse.Cursor) parse.Result[*cst.OrExpr]       { return infix[cst.OrExpr](c, orOp) }

func hasExpr(c parse.Cursor) parse.Result[*cst.HasExpr] {
	s := parse.Begin(c)
	n := &cst.HasExpr{
		Lead:     parse.Step(&s, rws),
		Operator: parse.Step(&s, hasOp),
		Trail:    parse.Step(&s, rws),
		Right:    parse.Step(&s, enum),
	}

	return parse.End(&s, n)
}

func rootExpr(c parse.Cursor) parse.Result[*cst.RootExpr] {
	s := parse.Begin(c)
	n := &cst.RootExpr{Root: parse.Step(&s, rootKeyword)}

	if !s.OK() {
		return parse.Fail[*cst.RootExpr](c)
	}

	if r := entitySetName(s.Cursor()); r.OK {
		if k := keyPredicate(r.Rest); k.OK {
			n.EntitySet = parse.Step(&s, entitySetName)
			n.Key = parse.Step(&s, keyPredicate)
		}
	}

	if n.EntitySet == nil {
		n.Singleton = parse.Step(&s, singletonEntity)
	}

	n.Navigation = parse.Maybe(&s, singleNavigationExpr)

	return parse.End(&s, n)
}

func firstMemberExpr(c parse.Cursor) parse.Result[*cst.FirstMemberExpr] {
	var rest parse.Cursor

	n := new(cst.FirstMemberExpr)

	switch {
	case parse.Try(c, &rest, &n.Member, memberExpr):
	case parse.Try(c, &rest, &n.InScope, inscopeMemberExpr):
	default:
		return parse.Fail[*cst.FirstMemberExpr](c)
	}

	return parse.Ok(n, rest)
}

func inscopeMemberExpr(c parse.Cursor) parse.Result[*cst.InscopeMemberExpr] {
	s := parse.Begin(c)
	n := &cst.InscopeMemberExpr{Variable: parse.Step(&s, inscopeVariableExpr)}

	if !s.OK() {
		return parse.Fail[*cst.InscopeMemberExpr](c)
	}

	if r := slash(s.Cursor()); r.OK {
		if m := memberExpr(r.Rest); m.OK {
			n.Slash = parse.Opt(&s, slash)
			n.Member = parse.Step(&s, memberExpr)
		}
	}

	return parse.End(&s, n)
}

func inscopeVariableExpr(c parse.Cursor) parse.Result[*cst.InscopeVariableExpr] {
	var rest parse.Cursor

	n := new(cst.InscopeVariableExpr)

	switch {
	case parse.Try(c, &rest, &n.Implicit, implicitVariableExpr):
	case parse.Try(c, &rest, &n.Alias, parameterAlias):
	case parse.Try(c, &rest, &n.Lambda, lambdaVariableExpr):
	default:
		return parse.Fail[*cst.InscopeVariableExpr](c)
	}

	return parse.Ok(n, rest)
}

func implicitVariableExpr(c parse.Cursor) parse.Result[*cst.ImplicitVariableExpr] {
	s := parse.Begin(c)
	n := &cst.ImplicitVariableExpr{Name: parse.Step(&s, implicitVarKey)}
	parse.Reject(&s, identChar)

	return parse.End(&s, n)
}

func memberExpr(c parse.Cursor) parse.Result[*cst.MemberExpr] {
	if !c.EnterChain() {
		return parse.Fail[*cst.MemberExpr](c)
	}
	defer c.LeaveChain()

	s := parse.Begin(c)
	n := &cst.MemberExpr{Cast: parse.Maybe(&s, memberCast)}
	cur := s.Cursor()

	var rest parse.Cursor

	switch {
	case parse.Try(cur, &rest, &n.BoundFunction, boundFunctionExpr):
	case parse.Try(cur, &rest, &n.Annotation, annotationExpr):
	case parse.Try(cur, &rest, &n.PropertyPath, propertyPathExpr):
	default:
		return parse.Fail[*cst.MemberExpr](c)
	}

	return parse.Ok(n, rest)
}

func memberCast(c parse.Cursor) parse.Result[*cst.MemberCast] {
	s := parse.Begin(c)
	n := &cst.MemberCast{
		Type:  parse.Step(&s, qualifiedEntityTypeName),
		Slash: parse.Step(&s, slash),
	}

	return parse.End(&s, n)
}

// propertyPathExpr reads the property name once and then picks the kind by
// the continuation that follows it. Navigation and structured kinds need a
// continuation; a bare name is a primitive property.
func propertyPathExpr(c parse.Cursor) parse.Result[*cst.PropertyPathExpr] {
	id := odataIdentifier(c)
	if !id.OK {
		return parse.Fail[*cst.PropertyPathExpr](c)
	}

	prop, after := id.Value, id.Rest
	n := new(cst.PropertyPathExpr)

	if r := collectionNavigationExpr(after); r.OK {
		n.EntityColNavigation = &cst.EntityColNavigationPropertyExpr{
			Property:   (*cst.EntityColNavigationProperty)(prop),
			Navigation: r.Value,
		}

		return parse.Ok(n, r.Rest)
	}

	if r := singleNavigationExpr(after); r.OK {
		n.EntityNavigation = &cst.EntityNavigationPropertyExpr{
			Property:   (*cst.EntityNavigationProperty)(prop),
			Navigation: r.Value,
		}

		return parse.Ok(n, r.Rest)
	}

	if r := complexColPathExpr(after); r.OK {
		n.ComplexCol = &cst.ComplexColPropertyExpr{
			Property: (*cst.ComplexColProperty)(prop),
			Path:     r.Value,
		}

		return parse.Ok(n, r.Rest)
	}

	if r := complexPathExpr(after); r.OK {
		n.Complex = &cst.ComplexPropertyExpr{
			Property: (*cst.ComplexProperty)(prop),
			Path:     r.Value,
		}

		return parse.Ok(n, r.Rest)
	}

	if r := collectionPathExpr(after); r.OK {
		n.PrimitiveCol = &cst.PrimitiveColPropertyExpr{
			Property: (*cst.PrimitiveColProperty)(prop),
			Path:     r.Value,
		}

		return parse.Ok(n, r.Rest)
	}

	n.Primitive = &cst.PrimitivePropertyExpr{Property: (*cst.PrimitiveProperty)(prop)}

	if r := primitivePathExpr(after); r.OK {
		n.Primitive.Path, after = r.Value, r.Rest
	}

	return parse.Ok(n, after)
}

func annotationExpr(c parse.Cursor) parse.Result[*cst.AnnotationExpr] {
	a := annotation(c)
	if !a.OK {
		return parse.Fail[*cst.AnnotationExpr](c)
	}

	n := &cst.AnnotationExpr{Annotation: a.Value}
	rest := a.Rest

	switch {
	case parse.Try(a.Rest, &rest, &n.Collection, collectionPathExpr):
	case parse.Try(a.Rest, &rest, &n.Single, singleNavigationExpr):
	case parse.Try(a.Rest, &rest, &n.Complex, complexPathExpr):
	case parse.Try(a.Rest, &rest, &n.Primitive, primitivePathExpr):
	}

	return parse.Ok(n, rest)
}

func annotation(c parse.Cursor) parse.Result[*cst.Annotation] {
	s := parse.Begin(c)
	n := &cst.Annotation{
		At:        parse.Step(&s, at),
		Namespace: parse.Step(&s, namespace),
		Dot:       parse.Step(&s, dot),
		Term:      parse.Step(&s, termName),
		Qualifier: parse.Maybe(&s, qualifierSuffix),
	}

	return parse.End(&s, n)
}

func qualifierSuffix(c parse.Cursor) parse.Result[*cst.QualifierSuffix] {
	s := parse.Begin(c)
	n := &cst.QualifierSuffix{
		Hash:      parse.Step(&s, hash),
		Qualifier: parse.Step(&s, annotationQualifier),
	}

	return parse.End(&s, n)
}

// collectionNavigationExpr never matches the empty string.
func collectionNavigationExpr(c parse.Cursor) parse.Result[*cst.CollectionNavigationExpr] {
	s := parse.Begin(c)
	n := &cst.CollectionNavigationExpr{Cast: parse.Maybe(&s, typeCastEntity)}
	cur := s.Cursor()

	var rest parse.Cursor

	switch {
	case parse.Try(cur, &rest, &n.Key, keyNavigationExpr):
	case parse.Try(cur, &rest, &n.Filter, filterNavigationExpr):
	case parse.Try(cur, &rest, &n.Path, collectionPathExpr):
	default:
		return parse.Fail[*cst.CollectionNavigationExpr](c)
	}

	return parse.Ok(n, rest)
}

func keyNavigationExpr(c parse.Cursor) parse.Result[*cst.KeyNavigationExpr] {
	s := parse.Begin(c)
	n := &cst.KeyNavigationExpr{
		Key:        parse.Step(&s, keyPredicateInExpr),
		Navigation: parse.Maybe(&s, singleNavigationExpr),
	}

	return parse.End(&s, n)
}

func filterNavigationExpr(c parse.Cursor) parse.Result[*cst.FilterNavigationExpr] {
	s := parse.Begin(c)
	n := &cst.FilterNavigationExpr{
		Filter: parse.Step(&s, filterExpr),
		Next:   parse.Maybe(&s, collectionNavigationExpr),
	}

	return parse.End(&s, n)
}

func keyPredicateInExpr(c parse.Cursor) parse.Result[*cst.KeyPredicateInExpr] {
	var rest parse.Cursor

	n := new(cst.KeyPredicateInExpr)

	switch {
	case parse.Try(c, &rest, &n.Simple, simpleKey):
	case parse.Try(c, &rest, &n.Compound, compoundKey):
	default:
		return parse.Fail[*cst.KeyPredicateInExpr](c)
	}

	return parse.Ok(n, rest)
}

func singleNavigationExpr(c parse.Cursor) parse.Result[*cst.SingleNavigationExpr] {
	s := parse.Begin(c)
	n := &cst.SingleNavigationExpr{
		Slash:  parse.Step(&s, slash),
		Member: parse.Step(&s, memberExpr),
	}

	return parse.End(&s, n)
}

func filterExpr(c parse.Cursor) parse.Result[*cst.FilterExpr] {
	s := parse.Begin(c)
	n := &cst.FilterExpr{
		Keyword: parse.Step(&s, filterKeyword),
		Open:    parse.Step(&s, lparen),
		Expr:    parse.Step(&s, commonExpr),
		Close:   parse.Step(&s, rparen),
	}

	return parse.End(&s, n)
}

func complexColPathExpr(c parse.Cursor) parse.Result[*cst.ComplexColPathExpr] {
	s := parse.Begin(c)
	n := &cst.ComplexColPathExpr{
		Cast: parse.Maybe(&s, typeCastComplex),
		Path: parse.Step(&s, collectionPathExpr),
	}

	return parse.End(&s, n)
}

func collectionPathExpr(c parse.Cursor) parse.Result[*cst.CollectionPathExpr] {
	var rest parse.Cursor

	n := new(cst.CollectionPathExpr)

	switch {
	case parse.Try(c, &rest, &n.Count, countPathExpr):
	case parse.Try(c, &rest, &n.Filter, filterPathExpr):
	case parse.Try(c, &rest, &n.Member, collectionMemberExpr):
	default:
		return parse.Fail[*cst.CollectionPathExpr](c)
	}

	return parse.Ok(n, rest)
}

func countPathExpr(c parse.Cursor) parse.Result[*cst.CountPathExpr] {
	s := parse.Begin(c)
	n := &cst.CountPathExpr{
		Count:   parse.Step(&s, count),
		Options: parse.Maybe(&s, expandCountOptions),
	}

	return parse.End(&s, n)
}

func filterPathExpr(c parse.Cursor) parse.Result[*cst.FilterPathExpr] {
	s := parse.Begin(c)
	n := &cst.FilterPathExpr{
		Filter: parse.Step(&s, filterExpr),
		Next:   parse.Maybe(&s, collectionPathExpr),
	}

	return parse.End(&s, n)
}

func collectionMemberExpr(c parse.Cursor) parse.Result[*cst.CollectionMemberExpr] {
	sl := slash(c)
	if !sl.OK {
		return parse.Fail[*cst.CollectionMemberExpr](c)
	}

	var rest parse.Cursor

	n := &cst.CollectionMemberExpr{Slash: sl.Value}

	switch cur := sl.Rest; {
	case parse.Try(cur, &rest, &n.Any, anyExpr):
	case parse.Try(cur, &rest, &n.All, allExpr):
	case parse.Try(cur, &rest, &n.BoundFunction, boundFunctionExpr):
	case parse.Try(cur, &rest, &n.Annotation, annotationExpr):
	default:
		return parse.Fail[*cst.CollectionMemberExpr](c)
	}

	return parse.Ok(n, rest)
}

// complexPathExpr never matches the empty string.
func complexPathExpr(c parse.Cursor) parse.Result[*cst.ComplexPathExpr] {
	s := parse.Begin(c)
	n := &cst.ComplexPathExpr{Cast: parse.Maybe(&s, typeCastComplex)}

	if sl := slash(s.Cursor()); sl.OK {
		var rest parse.Cursor

		switch {
		case parse.Try(sl.Rest, &rest, &n.BoundFunction, boundFunctionExpr):
		case parse.Try(sl.Rest, &rest, &n.Annotation, annotationExpr):
		case parse.Try(sl.Rest, &rest, &n.Member, memberExpr):
		}

		if n.BoundFunction != nil || n.Annotation != nil || n.Member != nil {
			n.Slash = &sl.Value

			return parse.Ok(n, rest)
		}
	}

	if n.Cast == nil {
		return parse.Fail[*cst.ComplexPathExpr](c)
	}

	return parse.End(&s, n)
}

func primitivePathExpr(c parse.Cursor) parse.Result[*cst.PrimitivePathExpr] {
	sl := slash(c)
	if !sl.OK {
		return parse.Fail[*cst.PrimitivePathExpr](c)
	}

	n := &cst.PrimitivePathExpr{Slash: sl.Value}
	rest := sl.Rest

	switch {
	case parse.Try(sl.Rest, &rest, &n.Annotation, annotationExpr):
	case parse.Try(sl.Rest, &rest, &n.BoundFunction, boundFunctionExpr):
	}

	return parse.Ok(n, rest)
}

func boundFunctionExpr(c parse.Cursor) parse.Result[*cst.BoundFunctionExpr] {
	return parse.As(functionExpr(c), func(v *cst.FunctionExpr) *cst.BoundFunctionExpr {
		return (*cst.BoundFunctionExpr)(v)
	})
}

// functionExpr reads the function name and parameters once, then picks the
// return kind by the continuation that follows. A call with no continuation
// is recorded as returning a collection of entities.
func functionExpr(c parse.Cursor) parse.Result[*cst.FunctionExpr] {
	s := parse.Begin(c)
	n := &cst.FunctionExpr{Prefix: parse.Maybe(&s, namespacePrefix)}
	fn := parse.Step(&s, odataIdentifier)
	params := parse.Step(&s, functionExprParameters)

	if !s.OK() {
		return parse.Fail[*cst.FunctionExpr](c)
	}

	after := s.Cursor()

	if r := collectionNavigationExpr(after); r.OK {
		n.EntityCol = &cst.EntityColFunctionExpr{
			Function:   (*cst.EntityColFunction)(fn),
			Parameters: params,
			Navigation: r.Value,
		}

		return parse.Ok(n, r.Rest)
	}

	if r := singleNavigationExpr(after); r.OK {
		n.Entity = &cst.EntityFunctionExpr{
			Function:   (*cst.EntityFunction)(fn),
			Parameters: params,
			Navigation: r.Value,
		}

		return parse.Ok(n, r.Rest)
	}

	if r := complexColPathExpr(after); r.OK {
		n.ComplexCol = &cst.ComplexColFunctionExpr{
			Function:   (*cst.ComplexColFunction)(fn),
			Parameters: params,
			Path:       r.Value,
		}

		return parse.Ok(n, r.Rest)
	}

	if r := complexPathExpr(after); r.OK {
		n.Complex = &cst.ComplexFunctionExpr{
			Function:   (*cst.ComplexFunction)(fn),
			Parameters: params,
			Path:       r.Value,
		}

		return parse.Ok(n, r.Rest)
	}

	if r := collectionPathExpr(after); r.OK {
		n.PrimitiveCol = &cst.PrimitiveColFunctionExpr{
			Function:   (*cst.PrimitiveColFunction)(fn),
			Parameters: params,
			Path:       r.Value,
		}

		return parse.Ok(n, r.Rest)
	}

	if r := primitivePathExpr(after); r.OK {
		n.Primitive = &cst.PrimitiveFunctionExpr{
			Function:   (*cst.PrimitiveFunction)(fn),
			Parameters: params,
			Path:       r.Value,
		}

		return parse.Ok(n, r.Rest)
	}

	n.EntityCol = &cst.EntityColFunctionExpr{
		Function:   (*cst.EntityColFunction)(fn),
		Parameters: params,
	}

	return parse.Ok(n, after)
}

func functionExprParameters(c parse.Cursor) parse.Result[*cst.FunctionExprParameters] {
	s := parse.Begin(c)
	n := &cst.FunctionExprParameters{Open: parse.Step(&s, lparen)}

	if n.First = parse.Maybe(&s, functionExprParameter); n.First != nil {
		n.Rest = parse.Star(&s, functionExprParameterTail)
	}

	n.Close = parse.Step(&s, rparen)

	return parse.End(&s, n)
}

func functionExprParameterTail(c parse.Cursor) parse.Result[cst.FunctionExprParameterTail] {
	s := parse.Begin(c)
	n := cst.FunctionExprParameterTail{
		Comma:     parse.Step(&s, comma),
		Parameter: parse.Step(&s, functionExprParameter),
	}

	return parse.End(&s, n)
}

func functionExprParameter(c parse.Cursor) parse.Result[*cst.FunctionExprParameter] {
	s := parse.Begin(c)
	n := &cst.FunctionExprParameter{
		Name: parse.Step(&s, parameterName),
		Eq:   parse.Step(&s, eq),
	}

	if !s.OK() {
		return parse.Fail[*cst.FunctionExprParameter](c)
	}

	var rest parse.Cursor

	switch cur := s.Cursor(); {
	case parse.Try(cur, &rest, &n.Alias, parameterAlias):
	case parse.Try(cur, &rest, &n.Value, parameterValue):
	default:
		return parse.Fail[*cst.FunctionExprParameter](c)
	}

	return parse.Ok(n, rest)
}

func anyExpr(c parse.Cursor) parse.Result[*cst.AnyExpr] {
	s := parse.Begin(c)
	n := &cst.AnyExpr{
		Keyword: parse.Step(&s, anyKeyword),
		Open:    parse.Step(&s, lparen),
		Lead:    parse.Step(&s, bws),
		Lambda:  parse.Maybe(&s, lambda),
		Trail:   parse.Step(&s, bws),
		Close:   parse.Step(&s, rparen),
	}

	return parse.End(&s, n)
}

func allExpr(c parse.Cursor) parse.Result[*cst.AllExpr] {
	s := parse.Begin(c)
	n := &cst.AllExpr{
		Keyword: parse.Step(&s, allKeyword),
		Open:    parse.Step(&s, lparen),
		Lead:    parse.Step(&s, bws),
		Lambda:  parse.Step(&s, lambda),
		Trail:   parse.Step(&s, bws),
		Close:   parse.Step(&s, rparen),
	}

	return parse.End(&s, n)
}

func lambda(c parse.Cursor) parse.Result[*cst.Lambda] {
	s := parse.Begin(c)
	n := &cst.Lambda{
		Variable:  parse.Step(&s, lambdaVariableExpr),
		Lead:      parse.Step(&s, bws),
		Colon:     parse.Step(&s, colon),
		Trail:     parse.Step(&s, bws),
		Predicate: parse.Step(&s, commonExpr),
	}

	return parse.End(&s, n)
}

func parenExpr(c parse.Cursor) parse.Result[*cst.ParenExpr] {
	s := parse.Begin(c)
	n := &cst.ParenExpr{
		Open:  parse.Step(&s, lparen),
		Lead:  parse.Step(&s, bws),
		Expr:  parse.Step(&s, commonExpr),
		Trail: parse.Step(&s, bws),
		Close: parse.Step(&s, rparen),
	}

	return parse.End(&s, n)
}

func listExpr(c parse.Cursor) parse.Result[*cst.ListExpr] {
	s := parse.Begin(c)
	n := &cst.ListExpr{
		Open:  parse.Step(&s, lparen),
		Lead:  parse.Step(&s, bws),
		First: parse.Step(&s, primitiveLiteral),
		Trail: parse.Step(&s, bws),
		Rest:  parse.Star(&s, listItem),
		Close: parse.Step(&s, rparen),
	}

	return parse.End(&s, n)
}

func listItem(c parse.Cursor) parse.Result[cst.ListItem] {
	s := parse.Begin(c)
	n := cst.ListItem{
		Comma: parse.Step(&s, comma),
		Lead:  parse.Step(&s, bws),
		Value: parse.Step(&s, primitiveLiteral),
		Trail: parse.Step(&s, bws),
	}

	return parse.End(&s, n)
}

func negateExpr(c parse.Cursor) parse.Result[*cst.NegateExpr] {
	s := parse.Begin(c)
	n := &cst.NegateExpr{
		Minus:   parse.Step(&s, dash),
		Space:   parse.Step(&s, bws),
		Operand: parse.Step(&s, commonExpr),
	}

	return parse.End(&s, n)
}

func notExpr(c parse.Cursor) parse.Result[*cst.NotExpr] {
	s := parse.Begin(c)
	n := &cst.NotExpr{
		Not:     parse.Step(&s, notKeyword),
		Space:   parse.Step(&s, rws),
		Operand: parse.Step(&s, commonExpr),
	}

	return parse.End(&s, n)
}

func castLike(c parse.Cursor, keyword parse.Parser[token]) parse.Result[*cst.CastExpr] {
	s := parse.Begin(c)
	n := &cst.CastExpr{
		Keyword: parse.Step(&s, keyword),
		Open:    parse.Step(&s, lparen),
		Lead:    parse.Step(&s, bws),
		Source:  parse.Maybe(&s, castSource),
		Type:    parse.Step(&s, optionallyQualifiedTypeName),
		Trail:   parse.Step(&s, bws),
		Close:   parse.Step(&s, rparen),
	}

	return parse.End(&s, n)
}

func castExpr(c parse.Cursor) parse.Result[*cst.CastExpr] {
	return castLike(c, castKeyword)
}

func isofExpr(c parse.Cursor) parse.Result[*cst.IsOfExpr] {
	return parse.As(castLike(c, isofKeyword), func(v *cst.CastExpr) *cst.IsOfExpr {
		return (*cst.IsOfExpr)(v)
	})
}

func castSource(c parse.Cursor) parse.Result[*cst.CastSource] {
	s := parse.Begin(c)
	n := &cst.CastSource{
		Expr:  parse.Step(&s, commonExpr),
		Lead:  parse.Step(&s, bws),
		Comma: parse.Step(&s, comma),
		Trail: parse.Step(&s, bws),
	}

	return parse.End(&s, n)
}
