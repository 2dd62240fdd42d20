package cmd

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/odatauri/grammar"
	"github.com/ardnew/odatauri/odata"
)

const people = "People('x')?$filter=Age gt 21"

func peopleSource() source {
	return source{Rule: odata.RuleRelativeURI, Input: people}
}

func TestTextRun(t *testing.T) {
	ctx, out := testContext("")

	require.NoError(t, (&Text{In: peopleSource()}).Run(ctx))
	assert.Equal(t, people+"\n", out.String())
}

func TestTextRunStdin(t *testing.T) {
	ctx, out := testContext(people + "\n")

	require.NoError(t, (&Text{In: source{Rule: odata.RuleRelativeURI, Input: "-"}}).Run(ctx))
	assert.Equal(t, people+"\n", out.String())
}

func TestTreeRun(t *testing.T) {
	ctx, out := testContext("")

	require.NoError(t, (&Tree{Indent: 4, In: peopleSource()}).Run(ctx))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "ODataRelativeURI "))
	assert.Contains(t, out.String(), "\n    ")
}

func TestJSONRun(t *testing.T) {
	ctx, out := testContext("")

	require.NoError(t, (&JSON{Indent: 2, In: peopleSource()}).Run(ctx))

	var tree struct {
		Rule string `json:"rule"`
		Text string `json:"text"`
	}

	require.NoError(t, json.Unmarshal(out.Bytes(), &tree))
	assert.Equal(t, "ODataRelativeURI", tree.Rule)
	assert.Equal(t, people, tree.Text)
}

func TestYAMLRun(t *testing.T) {
	ctx, out := testContext("")

	require.NoError(t, (&YAML{Indent: 2, In: peopleSource()}).Run(ctx))

	var tree struct {
		Rule string `yaml:"rule"`
		Text string `yaml:"text"`
	}

	require.NoError(t, yaml.Unmarshal(out.Bytes(), &tree))
	assert.Equal(t, "ODataRelativeURI", tree.Rule)
	assert.Equal(t, people, tree.Text)
}

func TestFmtRejected(t *testing.T) {
	ctx, out := testContext("")
	in := source{Rule: odata.RuleRelativeURI, Input: "People?$top=x"}

	for _, run := range []func() error{
		func() error { return (&Text{In: in}).Run(ctx) },
		func() error { return (&Tree{In: in}).Run(ctx) },
		func() error { return (&JSON{In: in}).Run(ctx) },
		func() error { return (&YAML{In: in}).Run(ctx) },
	} {
		err := run()
		require.ErrorIs(t, err, ErrParse)
		require.ErrorIs(t, err, odata.ErrIncomplete)
	}

	assert.Zero(t, out.Len())
}

func TestNodesRun(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		ctx, out := testContext("")

		require.NoError(t, (&Nodes{Format: "table", In: peopleSource()}).Run(ctx))
		assert.Contains(t, out.String(), "RULE")
		assert.Contains(t, out.String(), "ODataRelativeURI")
		assert.Contains(t, out.String(), `"$filter=Age gt 21"`)
	})

	t.Run("json", func(t *testing.T) {
		ctx, out := testContext("")

		require.NoError(t, (&Nodes{Where: `Rule == "Filter"`, Format: "json", In: peopleSource()}).Run(ctx))

		var nodes []odata.Node
		require.NoError(t, json.Unmarshal(out.Bytes(), &nodes))
		require.Len(t, nodes, 1)
		assert.Equal(t, "$filter=Age gt 21", nodes[0].Text)
		assert.Equal(t, len(people), nodes[0].End)
	})

	t.Run("yaml", func(t *testing.T) {
		ctx, out := testContext("")

		require.NoError(t, (&Nodes{Where: "Depth == 0", Format: "yaml", In: peopleSource()}).Run(ctx))

		var nodes []odata.Node
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &nodes))
		require.Len(t, nodes, 1)
		assert.Equal(t, "ODataRelativeURI", nodes[0].Rule)
	})

	t.Run("bad predicate", func(t *testing.T) {
		ctx, _ := testContext("")

		err := (&Nodes{Where: "Rule ==", Format: "table", In: peopleSource()}).Run(ctx)
		require.ErrorIs(t, err, odata.ErrQuery)
	})
}

func TestRulesRun(t *testing.T) {
	ctx, out := testContext("")

	require.NoError(t, (&Rules{}).Run(ctx))
	assert.Equal(t, grammar.Rules(), strings.Fields(out.String()))

	ctx, out = testContext("")

	require.NoError(t, (&Rules{Pattern: "odataUri"}).Run(ctx))
	assert.Equal(t, odata.RuleURI, strings.Fields(out.String())[0])
}

func TestMatchRules(t *testing.T) {
	assert.Equal(t, grammar.Rules(), MatchRules(""))
	assert.Empty(t, MatchRules("zzzzzzqqqqq"))
	assert.Contains(t, MatchRules("header"), odata.RuleHeader)
}
