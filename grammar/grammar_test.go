package grammar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/odatauri/cst"
	"github.com/ardnew/odatauri/parse"
)

// complete applies p to input and requires it to consume everything.
func complete[T any](t *testing.T, p parse.Parser[T], input string) T {
	t.Helper()

	r := p(parse.NewCursor(input))
	require.True(t, r.OK, "rejected %q", input)
	require.True(t, r.Rest.AtEnd(), "unparsed remainder %q", r.Rest.Remaining())
	require.Equal(t, input, cst.Text(r.Value))

	return r.Value
}

func TestEntitySetWithSimpleKey(t *testing.T) {
	uri := complete(t, ODataRelativeURI, "Users('1')")

	require.NotNil(t, uri.Resource)
	assert.Nil(t, uri.Resource.Query)

	set := uri.Resource.Path.EntitySet
	require.NotNil(t, set)
	assert.Equal(t, "Users", cst.Text(set.Name))

	key := set.Navigation.Path.Key
	require.NotNil(t, key)
	require.NotNil(t, key.Key.Simple)
	assert.Nil(t, key.Navigation)

	value := key.Key.Simple.Value
	require.NotNil(t, value.String)
	assert.Equal(t, "'1'", cst.Text(value.String))
}

func TestNavigationWithFilter(t *testing.T) {
	uri := complete(t, ODataRelativeURI,
		"Users/MyId/Calendar/Events?$filter=Id eq 'ThisIsATest'")

	set := uri.Resource.Path.EntitySet
	require.NotNil(t, set)
	assert.Equal(t, "Users", cst.Text(set.Name))

	key := set.Navigation.Path.Key
	require.NotNil(t, key)
	require.NotNil(t, key.Key.Path)
	assert.Equal(t, "MyId", cst.Text(key.Key.Path.Literal))

	calendar := key.Navigation.Property.Path.EntityNavigation
	require.NotNil(t, calendar)
	assert.Equal(t, "Calendar", cst.Text(calendar.Property))

	events := calendar.Navigation.Property.Path.EntityColNavigation
	require.NotNil(t, events)
	assert.Equal(t, "Events", cst.Text(events.Property))
	assert.Nil(t, events.Navigation)

	opts := uri.Resource.Query.Options
	require.NotNil(t, opts)
	assert.Empty(t, opts.Rest)

	filter := opts.First.System.Filter
	require.NotNil(t, filter)

	expr := filter.Expr
	require.NotNil(t, expr.FirstMember)
	require.NotNil(t, expr.FirstMember.Member)

	prop := expr.FirstMember.Member.PropertyPath
	require.NotNil(t, prop.Primitive)
	assert.Equal(t, "Id", cst.Text(prop.Primitive.Property))

	require.NotNil(t, expr.Comparison)
	require.NotNil(t, expr.Comparison.Eq)

	right := expr.Comparison.Eq.Right
	require.NotNil(t, right.PrimitiveLiteral)
	require.NotNil(t, right.PrimitiveLiteral.String)
	assert.Equal(t, "'ThisIsATest'", cst.Text(right.PrimitiveLiteral.String))
}

func TestPrimitiveValueAlternationOrder(t *testing.T) {
	v := complete(t, PrimitiveValue, "42")

	require.NotNil(t, v.Int32Value)
	assert.Nil(t, v.Int64Value)
	assert.Nil(t, v.DoubleValue)
	assert.Nil(t, v.DecimalValue)

	v = complete(t, PrimitiveValue, "12345678901")
	require.NotNil(t, v.Int64Value, "eleven digits exceed int32Value")

	v = complete(t, PrimitiveValue, "true")
	require.NotNil(t, v.BooleanValue)
}

func TestPrimitiveValueShadowing(t *testing.T) {
	v := complete(t, PrimitiveValue, "Point(1 2)")
	assert.Nil(t, v.DurationValue)
	require.NotNil(t, v.FullPointLiteral)

	v = complete(t, PrimitiveValue, "Polygon((1 2,3 4,1 2))")
	require.NotNil(t, v.FullPolygonLiteral)

	v = complete(t, PrimitiveValue, "AA==")
	assert.Nil(t, v.EnumValue)
	require.NotNil(t, v.BinaryValue)
	require.NotNil(t, v.BinaryValue.B8)

	v = complete(t, PrimitiveValue, "Red,Blue")
	require.NotNil(t, v.EnumValue)

	v = complete(t, PrimitiveValue, "P")
	require.NotNil(t, v.DurationValue)
}

func TestFilterRequiresExpression(t *testing.T) {
	opts := complete(t, QueryOptions, "$filter=true")
	require.NotNil(t, opts.First.System.Filter)

	r := QueryOptions(parse.NewCursor("$filter="))
	assert.False(t, r.OK)
}

func TestBoundedRepetition(t *testing.T) {
	const guid = "3F2504E0-4F89-11D3-9A0C-0305E82C3301"

	g := complete(t, guidValue, guid)
	assert.Equal(t, 8, g.Group1.Len())
	assert.Equal(t, 12, g.Group5.Len())

	for _, bad := range []string{
		"3F2504E-4F89-11D3-9A0C-0305E82C3301",
		"3F2504E0-4F8-11D3-9A0C-0305E82C3301",
		"3F2504E0-4F89-11D3-9A0C-0305E82C330",
		"3F2504E0-4F89-11D3-9A0C-0305E82C33011",
	} {
		assert.False(t, guidValue(parse.NewCursor(bad)).OK, bad)
	}

	assert.True(t, sbyteValue(parse.NewCursor("-128")).OK)
	assert.False(t, sbyteValue(parse.NewCursor("1234")).OK)

	ident := "A" + strings.Repeat("b", 127)
	id := complete(t, odataIdentifier, ident)
	assert.Equal(t, 127, id.Rest.Len())
	assert.False(t, odataIdentifier(parse.NewCursor(ident+"c")).OK)
}

func TestPercentEncodingPreserved(t *testing.T) {
	uri := complete(t, ODataRelativeURI, "Users%28'1'%29")

	key := uri.Resource.Path.EntitySet.Navigation.Path.Key.Key.Simple
	require.NotNil(t, key)
	assert.Equal(t, "%28", key.Open.Text)
	assert.True(t, key.Open.Encoded)
	assert.Equal(t, "%29", key.Close.Text)
}

func TestEncodedSlash(t *testing.T) {
	uri := complete(t, ODataRelativeURI, "People('a')%2FFriends")

	seg := uri.Resource.Path.EntitySet.Navigation.Path.Key.Navigation.Property
	require.NotNil(t, seg)
	assert.Equal(t, "%2F", seg.Slash.Text)
	assert.True(t, seg.Slash.Encoded)

	uri = complete(t, ODataRelativeURI, "People('a')/Friends")
	assert.False(t, uri.Resource.Path.EntitySet.Navigation.Path.Key.Navigation.Property.Slash.Encoded)
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		rule  string
		input string
	}{
		{"odataUri", "https://host.example.com/service/People"},
		{"odataUri", "http://127.0.0.1:8080/odata/Products?$top=1"},
		{"odataRelativeUri", "$metadata"},
		{"odataRelativeUri", "$batch"},
		{"odataRelativeUri", "$entity?$id=Products(1)"},
		{"odataRelativeUri", "People?$top=10&$skip=20&$count=true"},
		{"odataRelativeUri", "People?$select=FirstName,LastName&$orderby=LastName desc"},
		{"odataRelativeUri", "People?$filter=Age gt 21 and Age lt 65"},
		{"odataRelativeUri", "People?$filter=contains(Name,'ann')"},
		{"odataRelativeUri", "People?$expand=Trips($filter=Budget gt 1000;$top=2)"},
		{"odataRelativeUri", "People?$search=blue OR green"},
		{"odataRelativeUri", "People?$format=json"},
		{"odataRelativeUri", "People?custom=value&@p=1"},
		{"odataRelativeUri", "People/$count"},
		{"odataRelativeUri", "Orders(OrderID=1,ProductID=2)"},
		{"odataRelativeUri", "$crossjoin(Products,Sales)"},
		{"odataRelativeUri", "$all"},
		{"queryOptions", "$filter=(Price add 5) mul 2 ge 100"},
		{"queryOptions", "$filter=not endswith(Name,'z')"},
		{"queryOptions", "$filter=Tags/any(t:t eq 'x')"},
		{"queryOptions", "$filter=Name in ('a','b')"},
		{"header", "Content-ID: 1"},
		{"header", "OData-Version: 4.01"},
		{"header", "OData-MaxVersion: 4.0"},
		{"header", "Isolation: snapshot"},
		{"header", "OData-EntityID: http://host/service/Customers(1)"},
		{"header", "Prefer: odata.maxpagesize=50, return=minimal, respond-async"},
		{"header", `Prefer: odata.include-annotations="display.*,-Core.Description"`},
		{"header", `Prefer: odata.callback; url="http://host/callback"`},
		{"header", "Prefer: wait=10,odata.track-changes"},
		{"primitiveValue", "3F2504E0-4F89-11D3-9A0C-0305E82C3301"},
		{"primitiveValue", "-3.25e10"},
		{"primitiveValue", "2024-01-15T10:30:00Z"},
		{"primitiveValue", "P1DT2H30M"},
		{"primitiveValue", "Point(1 2)"},
		{"primitiveValue", "Polygon((1 2,3 4,1 2))"},
		{"primitiveValue", "AA=="},
		{"primitiveValue", "AAA="},
		{"odataRelativeUri", "People('a')%2FFriends"},
		{"odataRelativeUri", "People%2FFriends"},
		{"odataRelativeUri", "People?$filter=Address%2FCity eq 'Oslo'"},
	}

	for _, tt := range tests {
		t.Run(tt.rule+"/"+tt.input, func(t *testing.T) {
			rule, ok := Lookup(tt.rule)
			require.True(t, ok)

			r := rule(parse.NewCursor(tt.input))
			require.True(t, r.OK, "rejected")
			require.True(t, r.Rest.AtEnd(), "unparsed remainder %q", r.Rest.Remaining())
			assert.Equal(t, tt.input, cst.Text(r.Value))
		})
	}
}

func TestDeterminism(t *testing.T) {
	const input = "People('x')/Friends?$filter=Age ge 18 or Name eq 'root'&$top=3"

	a := ODataRelativeURI(parse.NewCursor(input))
	b := ODataRelativeURI(parse.NewCursor(input))

	require.True(t, a.OK)
	require.True(t, b.OK)
	assert.Equal(t, a.Value, b.Value)
	assert.Equal(t, cst.Tree(a.Value), cst.Tree(b.Value))
}

func TestFailureLeavesCursor(t *testing.T) {
	tests := []struct {
		name  string
		rule  string
		input string
	}{
		{"short guid", "guidValue", "3F2504E0-4F89"},
		{"unterminated string", "stringLiteral", "'abc"},
		{"dangling operator", "commonExpr", "("},
		{"unknown header", "header", "X-Custom: 1"},
		{"bad version", "odata-version", "OData-Version: 3.0"},
		{"empty filter", "queryOptions", "$filter="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := Lookup(tt.rule)
			require.True(t, ok)

			c := parse.NewCursor(tt.input)
			r := rule(c)
			require.False(t, r.OK)
			assert.True(t, r.Rest.Equal(c))
		})
	}
}

func TestDepthLimit(t *testing.T) {
	nest := func(n int) string {
		return strings.Repeat("(", n) + "1" + strings.Repeat(")", n)
	}

	c := parse.NewCursor(nest(100))
	r := commonExpr(c)
	require.True(t, r.OK)
	assert.False(t, c.Diagnostics().DepthExceeded)

	c = parse.NewCursor(nest(400))
	r = commonExpr(c)
	require.False(t, r.OK)
	assert.True(t, c.Diagnostics().DepthExceeded)

	c = parse.NewCursor(nest(10), parse.WithMaxDepth(5))
	require.False(t, commonExpr(c).OK)
	assert.True(t, c.Diagnostics().DepthExceeded)
}

func TestFlatChainsIgnoreDepth(t *testing.T) {
	tests := []struct {
		name  string
		rule  string
		input string
	}{
		{"and clauses", "commonExpr", strings.Repeat("A eq 1 and ", 300) + "A eq 1"},
		{"add terms", "commonExpr", strings.Repeat("1 add ", 1000) + "1"},
		{"has then compare", "commonExpr", "A add B has Sales.Color'Red' eq true"},
		{"member path", "commonExpr", strings.Repeat("A/", 400) + "B eq 1"},
		{"navigation", "odataRelativeUri", "People('1')" + strings.Repeat("/Friends('1')", 300)},
		{"search", "queryOptions", "$search=" + strings.Repeat("a OR ", 400) + "b"},
		{"select path", "queryOptions", "$select=" + strings.Repeat("A/", 400) + "B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := Lookup(tt.rule)
			require.True(t, ok)

			c := parse.NewCursor(tt.input)
			r := rule(c)
			require.True(t, r.OK, "rejected")
			assert.True(t, r.Rest.AtEnd(), "unparsed remainder %q", r.Rest.Remaining())
			assert.Equal(t, tt.input, cst.Text(r.Value))
			assert.False(t, c.Diagnostics().DepthExceeded)
		})
	}
}

func TestOperatorChainShape(t *testing.T) {
	e := complete(t, commonExpr, "A eq 1 and B eq 2")

	eq := e.Comparison.Eq
	require.NotNil(t, eq)

	one := eq.Right
	assert.Equal(t, "1", cst.Text(one.PrimitiveLiteral))
	require.NotNil(t, one.Logical)
	require.NotNil(t, one.Logical.And)

	b := one.Logical.And.Right
	require.NotNil(t, b.Comparison.Eq)
	assert.Equal(t, "2", cst.Text(b.Comparison.Eq.Right))

	e = complete(t, commonExpr, "A has Sales.Color'Red' and B")
	require.NotNil(t, e.Comparison.Has)
	require.NotNil(t, e.Logical.And)
	assert.Equal(t, "B", cst.Text(e.Logical.And.Right))
}

func TestContinuationAllowance(t *testing.T) {
	input := "People('1')" + strings.Repeat("/Friends('1')", 200)

	c := parse.NewCursor(input, parse.WithMaxDepth(2))
	r := ODataRelativeURI(c)
	assert.False(t, r.OK && r.Rest.AtEnd())
	assert.True(t, c.Diagnostics().DepthExceeded)

	c = parse.NewCursor(input, parse.WithMaxDepth(16))
	r = ODataRelativeURI(c)
	require.True(t, r.OK)
	assert.True(t, r.Rest.AtEnd())
}

func TestHeaders(t *testing.T) {
	h := complete(t, Header, "OData-Version: 4.01")
	require.NotNil(t, h.ODataVersion)
	assert.Equal(t, "4.1.0", h.ODataVersion.Semver().String())

	h = complete(t, Header, "OData-Version:4.0")
	require.NotNil(t, h.ODataVersion)
	assert.Nil(t, h.ODataVersion.Minor)

	h = complete(t, Header, "odata-maxversion: 4.01")
	require.NotNil(t, h.ODataMaxVersion)

	v, err := h.ODataMaxVersion.Semver()
	require.NoError(t, err)
	assert.Equal(t, "4.1.0", v.String())

	h = complete(t, Header, "Prefer: odata.maxpagesize=50, return=minimal, respond-async")
	require.NotNil(t, h.Prefer)
	require.NotNil(t, h.Prefer.First.MaxPageSize)
	require.Len(t, h.Prefer.Rest, 2)
	assert.Equal(t, "minimal", h.Prefer.Rest[0].Preference.Return.Value.Text)
	assert.NotNil(t, h.Prefer.Rest[1].Preference.RespondAsync)

	h = complete(t, Header, `Prefer: include-annotations="*,-display.*#Short"`)
	list := h.Prefer.First.IncludeAnnotations.List
	assert.NotNil(t, list.First.Star)
	require.Len(t, list.Rest, 1)

	excluded := list.Rest[0].Identifier
	assert.NotNil(t, excluded.Exclude)
	assert.NotNil(t, excluded.Term.Star)
	assert.Equal(t, "Short", cst.Text(excluded.Qualifier.Qualifier))

	assert.False(t, Header(parse.NewCursor("Prefer: maxpagesize=0")).OK)
	assert.False(t, Header(parse.NewCursor(`Prefer: odata.callback; url=""`)).OK)
}

func TestRegistry(t *testing.T) {
	for _, name := range []string{
		"odataUri", "odataRelativeUri", "header", "primitiveValue",
		"queryOptions", "commonExpr", "odataIdentifier", "content-id",
		"IRI-in-header", "select", "orderby",
	} {
		_, ok := Lookup(name)
		assert.True(t, ok, name)
	}

	_, ok := Lookup("noSuchRule")
	assert.False(t, ok)

	names := Rules()
	assert.Len(t, names, len(registry()))
	assert.Contains(t, names, "guidValue")
	assert.NotContains(t, names, "queryOptionTail")
}

func BenchmarkCommonExpr(b *testing.B) {
	const input = "Price mul 2 gt 100 and (contains(Name,'blue') or Category/Name eq 'Tools')"

	b.ReportAllocs()

	for b.Loop() {
		if !commonExpr(parse.NewCursor(input)).OK {
			b.Fatal("rejected")
		}
	}
}

func BenchmarkODataIdentifier(b *testing.B) {
	const input = "EntityColNavigationProperty_1234"

	b.ReportAllocs()

	for b.Loop() {
		odataIdentifier(parse.NewCursor(input))
	}
}

func FuzzODataRelativeURI(f *testing.F) {
	for _, seed := range []string{
		"Users('1')",
		"Users/MyId/Calendar/Events?$filter=Id eq 'ThisIsATest'",
		"People?$expand=Trips($select=Name)&$top=1",
		"$metadata#People",
		"$batch?$format=json",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		r := ODataRelativeURI(parse.NewCursor(input, parse.WithMaxDepth(64)))
		if !r.OK {
			return
		}

		require.Equal(t, input[:r.Rest.Pos()], cst.Text(r.Value))
	})
}
