package cst

// TreeNode is a generic rendering of a node used for display and export.
// Nodes whose children are all tokens are collapsed into a single leaf.
type TreeNode struct {
	Rule     string      `json:"rule"               yaml:"rule"`
	Field    string      `json:"field,omitempty"    yaml:"field,omitempty"`
	Text     string      `json:"text"               yaml:"text"`
	Children []*TreeNode `json:"children,omitempty" yaml:"children,omitempty"`
	Offset   int         `json:"offset"             yaml:"offset"`
}

// Tree renders node as a [TreeNode]. It returns nil for a nil node.
func Tree(node any) *TreeNode {
	if Rule(node) == "" {
		return nil
	}

	return tree("", node)
}

func tree(field string, node any) *TreeNode {
	n := &TreeNode{Rule: Rule(node), Field: field, Offset: -1}

	var text []byte

	leafOnly := true

	for name, child := range Children(node) {
		var sub *TreeNode

		if t, ok := child.(Token); ok {
			sub = &TreeNode{Field: name, Text: t.Text, Offset: t.Offset}
		} else {
			sub = tree(name, child)
			leafOnly = false
		}

		if sub.Text == "" {
			continue
		}

		if n.Offset < 0 {
			n.Offset = sub.Offset
		}

		text = append(text, sub.Text...)
		n.Children = append(n.Children, sub)
	}

	n.Text = string(text)

	if leafOnly {
		n.Children = nil
	}

	if n.Offset < 0 {
		n.Offset = 0
	}

	return n
}

// Walk calls fn for n and each descendant in depth-first order, passing the
// node's depth below n. Returning false from fn skips the node's children.
func (n *TreeNode) Walk(fn func(node *TreeNode, depth int) bool) {
	n.walk(0, fn)
}

func (n *TreeNode) walk(depth int, fn func(*TreeNode, int) bool) {
	if n == nil || !fn(n, depth) {
		return
	}

	for _, c := range n.Children {
		c.walk(depth+1, fn)
	}
}

// Find returns the first node, in depth-first order, whose rule is rule.
func (n *TreeNode) Find(rule string) *TreeNode {
	var found *TreeNode

	n.Walk(func(t *TreeNode, _ int) bool {
		if found == nil && t.Rule == rule {
			found = t
		}

		return found == nil
	})

	return found
}
