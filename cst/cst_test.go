package cst_test

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/odatauri/cst"
	"github.com/ardnew/odatauri/grammar"
	"github.com/ardnew/odatauri/parse"
)

func relative(t *testing.T, input string) *cst.ODataRelativeURI {
	t.Helper()

	r := grammar.ODataRelativeURI(parse.NewCursor(input))
	require.True(t, r.OK)
	require.True(t, r.Rest.AtEnd())

	return r.Value
}

func TestTextAndWrite(t *testing.T) {
	const input = "Users%28'1'%29?$top=5"

	root := relative(t, input)
	assert.Equal(t, input, cst.Text(root))

	var buf bytes.Buffer
	require.NoError(t, cst.Write(&buf, root))
	assert.Equal(t, input, buf.String())

	assert.Empty(t, cst.Text(nil))
	assert.Empty(t, cst.Text((*cst.ODataRelativeURI)(nil)))
}

func TestLeavesInInputOrder(t *testing.T) {
	root := relative(t, "People?$top=10")

	var (
		texts   []string
		offsets []int
	)

	for tok := range cst.Leaves(root) {
		texts = append(texts, tok.Text)
		offsets = append(offsets, tok.Offset)
	}

	assert.Equal(t, "People?$top=10", strings.Join(texts, ""))
	assert.True(t, slices.IsSorted(offsets))
}

func TestRuleAndChildren(t *testing.T) {
	root := relative(t, "People")

	assert.Equal(t, "ODataRelativeURI", cst.Rule(root))
	assert.Equal(t, "", cst.Rule(parse.Token{Text: "x"}))
	assert.Equal(t, "", cst.Rule(nil))

	var fields []string
	for name, child := range cst.Children(root) {
		fields = append(fields, name)
		assert.Equal(t, "ResourceURI", cst.Rule(child))
	}

	assert.Equal(t, []string{"Resource"}, fields)
}

func TestTree(t *testing.T) {
	root := relative(t, "People('x')?$filter=Age gt 21")

	tree := cst.Tree(root)
	require.NotNil(t, tree)
	assert.Equal(t, "ODataRelativeURI", tree.Rule)
	assert.Equal(t, "People('x')?$filter=Age gt 21", tree.Text)
	assert.Equal(t, 0, tree.Offset)

	filter := tree.Find("Filter")
	require.NotNil(t, filter)
	assert.Equal(t, "$filter=Age gt 21", filter.Text)
	assert.Equal(t, len("People('x')?"), filter.Offset)

	key := tree.Find("SimpleKey")
	require.NotNil(t, key)
	assert.Equal(t, "('x')", key.Text)

	assert.Nil(t, tree.Find("Expand"))

	depth := map[string]int{}
	tree.Walk(func(n *cst.TreeNode, d int) bool {
		if _, seen := depth[n.Rule]; !seen {
			depth[n.Rule] = d
		}

		return n.Rule != "SimpleKey"
	})

	assert.Zero(t, depth["ODataRelativeURI"])
	assert.Greater(t, depth["Filter"], depth["ResourceQuery"])

	assert.Nil(t, cst.Tree(nil))
}

func TestGUIDValueUUID(t *testing.T) {
	r := grammar.PrimitiveValue(parse.NewCursor("3F2504E0-4F89-11D3-9A0C-0305E82C3301"))
	require.True(t, r.OK)
	require.NotNil(t, r.Value.GUIDValue)

	id, err := r.Value.GUIDValue.UUID()
	require.NoError(t, err)
	assert.Equal(t, uuid.MustParse("3f2504e0-4f89-11d3-9a0c-0305e82c3301"), id)
}

func TestVersionHeaders(t *testing.T) {
	r := grammar.Header(parse.NewCursor("OData-Version: 4.0"))
	require.True(t, r.OK)
	assert.Equal(t, "4.0.0", r.Value.ODataVersion.Semver().String())

	r = grammar.Header(parse.NewCursor("OData-MaxVersion: 04.010"))
	require.True(t, r.OK)

	v, err := r.Value.ODataMaxVersion.Semver()
	require.NoError(t, err)
	assert.Equal(t, uint64(4), v.Major())
	assert.Equal(t, uint64(10), v.Minor())
}
