package odata_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/odatauri/cst"
	"github.com/ardnew/odatauri/log"
	"github.com/ardnew/odatauri/odata"
)

const people = "People('x')?$filter=Age gt 21"

func TestParse_TypedEntryPoints(t *testing.T) {
	ctx := context.Background()

	rel, err := odata.ParseRelativeURI(ctx, people)
	require.NoError(t, err)
	assert.Equal(t, people, cst.Text(rel))

	const abs = "http://127.0.0.1:8080/odata/Products?$top=1"

	uri, err := odata.ParseURI(ctx, abs)
	require.NoError(t, err)
	assert.Equal(t, abs, cst.Text(uri))

	h, err := odata.ParseHeader(ctx, "OData-Version: 4.0")
	require.NoError(t, err)
	require.NotNil(t, h.ODataVersion)
	assert.Equal(t, "4.0.0", h.ODataVersion.Semver().String())

	v, err := odata.ParsePrimitiveValue(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "42", cst.Text(v))
}

func TestParse_Errors(t *testing.T) {
	nest := strings.Repeat("(", 10) + "1" + strings.Repeat(")", 10)

	tests := []struct {
		name  string
		rule  string
		input string
		opts  []odata.Option
		want  error
	}{
		{"trailing", odata.RuleRelativeURI, "People?$top=x", nil, odata.ErrIncomplete},
		{"trailing operator", "commonExpr", "Age gt", nil, odata.ErrIncomplete},
		{"empty", odata.RuleRelativeURI, "", nil, odata.ErrEmptyInput},
		{"syntax", odata.RuleHeader, "X-Custom: 1", nil, odata.ErrSyntax},
		{"bad version", odata.RuleHeader, "OData-Version: 3.0", nil, odata.ErrSyntax},
		{"unknown rule", "noSuchRule", "x", nil, odata.ErrUnknownRule},
		{"depth", "commonExpr", nest, []odata.Option{odata.WithMaxDepth(5)}, odata.ErrMaxDepthExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := odata.Parse(context.Background(), tt.rule, tt.input, tt.opts...)
			require.Error(t, err)
			assert.Nil(t, doc)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParsePrimitiveValue_Shapes(t *testing.T) {
	ctx := context.Background()

	for _, input := range []string{
		"Point(1 2)",
		"SRID=4326;Polygon((1 2,3 4,1 2))",
		"AA==",
		"P1DT2H",
	} {
		v, err := odata.ParsePrimitiveValue(ctx, input)
		require.NoError(t, err, input)
		assert.Equal(t, input, cst.Text(v))
	}
}

func TestParse_LongFlatInput(t *testing.T) {
	ctx := context.Background()

	filter := "People?$filter=" + strings.Repeat("Age eq 1 and ", 400) + "Age eq 1"
	_, err := odata.Parse(ctx, odata.RuleRelativeURI, filter)
	require.NoError(t, err)

	path := "People('1')" + strings.Repeat("/Friends('1')", 300)
	_, err = odata.Parse(ctx, odata.RuleRelativeURI, path)
	require.NoError(t, err)
}

func TestParseError_Diagnostic(t *testing.T) {
	_, err := odata.Parse(context.Background(), odata.RuleRelativeURI, "People?$top=x")

	var pe *odata.ParseError
	require.ErrorAs(t, err, &pe)

	assert.Equal(t, odata.RuleRelativeURI, pe.Rule)
	assert.Equal(t, 12, pe.Offset)
	assert.Equal(t, 1, pe.Line)
	assert.Equal(t, 13, pe.Column)
	assert.NotEmpty(t, pe.Expected)

	want := "unexpected trailing input in odataRelativeUri at line 1, column 13:\n" +
		"  1 | People?$top=x\n" +
		strings.Repeat(" ", 18) + "^\n"
	assert.True(t, strings.HasPrefix(pe.Error(), want), pe.Error())
	assert.Contains(t, pe.Error(), "\texpected: ")
}

func TestParse_Partial(t *testing.T) {
	doc, err := odata.Parse(context.Background(), "commonExpr", "Age gt", odata.WithPartial(true))
	require.NoError(t, err)
	assert.Equal(t, " gt", doc.Rest)
	assert.Equal(t, "Age", cst.Text(doc.Root))
}

func TestParse_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := odata.Parse(ctx, odata.RuleRelativeURI, people)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParse_Cache(t *testing.T) {
	ctx := context.Background()

	odata.ClearCache()
	require.Zero(t, odata.CacheLen())

	first, err := odata.Parse(ctx, odata.RuleRelativeURI, people)
	require.NoError(t, err)

	second, err := odata.Parse(ctx, odata.RuleRelativeURI, people)
	require.NoError(t, err)

	assert.Equal(t, 1, odata.CacheLen())
	assert.NotSame(t, first, second)
	assert.Same(t, first.Root, second.Root)

	// Same input, different rule.
	_, err = odata.Parse(ctx, "resourcePath", "People('x')")
	require.NoError(t, err)
	assert.Equal(t, 2, odata.CacheLen())

	_, err = odata.Parse(ctx, odata.RuleRelativeURI, "People?$top=1", odata.WithCache(false))
	require.NoError(t, err)
	_, err = odata.Parse(ctx, "commonExpr", "Age gt", odata.WithPartial(true))
	require.NoError(t, err)
	assert.Equal(t, 2, odata.CacheLen())

	_, err1 := odata.Parse(ctx, odata.RuleHeader, "X-Custom: 1")
	_, err2 := odata.Parse(ctx, odata.RuleHeader, "X-Custom: 1")
	require.Error(t, err1)
	assert.Same(t, err1, err2)

	odata.ClearCache()
	assert.Zero(t, odata.CacheLen())
}

func TestParseReader(t *testing.T) {
	ctx := context.Background()

	doc, err := odata.ParseReader(ctx, odata.RuleRelativeURI, strings.NewReader(people))
	require.NoError(t, err)
	assert.Equal(t, people, doc.Source)
	assert.Equal(t, odata.RuleRelativeURI, doc.Rule)

	for _, eol := range []string{"\n", "\r\n"} {
		doc, err = odata.ParseReader(ctx, odata.RuleRelativeURI, strings.NewReader(people+eol))
		require.NoError(t, err)
		assert.Equal(t, people, doc.Source)
	}

	_, err = odata.ParseReader(ctx, odata.RuleRelativeURI, strings.NewReader(people+"\n\n"))
	assert.ErrorIs(t, err, odata.ErrIncomplete)

	_, err = odata.ParseReader(ctx, odata.RuleRelativeURI, iotest.ErrReader(errors.New("boom")))
	assert.ErrorIs(t, err, odata.ErrReadInput)
	assert.ErrorContains(t, err, "boom")
}

func TestDocument_Format(t *testing.T) {
	ctx := context.Background()

	doc, err := odata.Parse(ctx, odata.RuleRelativeURI, people)
	require.NoError(t, err)

	var buf bytes.Buffer

	require.NoError(t, doc.Format(&buf))
	assert.Equal(t, people, buf.String())

	buf.Reset()
	require.NoError(t, doc.FormatTree(&buf, 2))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, `ODataRelativeURI "People('x')?$filter=Age gt 21"`, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  ResourceURI "))

	for _, indent := range []int{0, 2} {
		buf.Reset()
		require.NoError(t, doc.FormatJSON(ctx, &buf, indent))

		var tree cst.TreeNode
		require.NoError(t, json.Unmarshal(buf.Bytes(), &tree))
		assert.Equal(t, "ODataRelativeURI", tree.Rule)
		assert.Equal(t, people, tree.Text)

		buf.Reset()
		require.NoError(t, doc.FormatYAML(ctx, &buf, indent))

		tree = cst.TreeNode{}
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &tree))
		assert.Equal(t, "ODataRelativeURI", tree.Rule)
		assert.Equal(t, people, tree.Text)
	}
}

func TestQuery(t *testing.T) {
	doc, err := odata.Parse(context.Background(), odata.RuleRelativeURI, people)
	require.NoError(t, err)

	all, err := odata.Query(doc, "")
	require.NoError(t, err)
	require.NotEmpty(t, all)
	assert.Equal(t, "ODataRelativeURI", all[0].Rule)
	assert.Zero(t, all[0].Depth)
	assert.Equal(t, len(people), all[0].End)

	match, err := odata.Query(doc, `Rule == "Filter"`)
	require.NoError(t, err)
	require.Len(t, match, 1)
	assert.Equal(t, "$filter=Age gt 21", match[0].Text)
	assert.Equal(t, len("People('x')?"), match[0].Offset)
	assert.Equal(t, len(people), match[0].End)
	assert.Positive(t, match[0].Depth)

	match, err = odata.Query(doc, `Depth == 0 || Text startsWith "$filter"`)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(match), 2)

	for _, where := range []string{"Rule ==", "Offset", "Missing > 1"} {
		_, err = odata.Query(doc, where)
		assert.ErrorIs(t, err, odata.ErrQuery, where)
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := log.Make(&buf,
		log.WithLevel(log.LevelTrace),
		log.WithFormat(log.FormatJSON),
		log.WithPretty(false))

	odata.ClearCache()

	_, err := odata.Parse(context.Background(), odata.RuleRelativeURI, people, odata.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "parse start")
	assert.Contains(t, out, "cache lookup")
	assert.Contains(t, out, "parse complete")

	buf.Reset()

	_, err = odata.Parse(context.Background(), odata.RuleRelativeURI, people,
		odata.WithLogger(logger), odata.WithMaxDepth(32))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "cache bypass")
}

func TestError(t *testing.T) {
	cause := errors.New("cause")
	err := odata.ErrReadInput.Wrap(cause).With(slog.String("source", "stdin"))

	assert.Equal(t, "failed to read input: cause", err.Error())
	assert.ErrorIs(t, err, odata.ErrReadInput)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, odata.ErrSyntax)

	v := err.LogValue()
	assert.Equal(t, slog.KindGroup, v.Kind())
	assert.Len(t, v.Group(), 3)

	assert.Same(t, err, odata.WrapError(err))
	assert.Equal(t, "plain", odata.WrapError(errors.New("plain")).Error())
}
