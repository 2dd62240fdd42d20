package odata

import (
	"log/slog"

	"github.com/expr-lang/expr"

	"github.com/ardnew/odatauri/cst"
)

// Node is one rule node of a flattened tree.
type Node struct {
	Rule   string `json:"rule"            yaml:"rule"`
	Field  string `json:"field,omitempty" yaml:"field,omitempty"`
	Text   string `json:"text"            yaml:"text"`
	Offset int    `json:"offset"          yaml:"offset"`
	End    int    `json:"end"             yaml:"end"`
	Depth  int    `json:"depth"           yaml:"depth"`
}

// Nodes returns the document's rule nodes in depth-first order. Depth is
// zero for the root. Tokens are folded into the Text of their parent.
func (d *Document) Nodes() []Node {
	var nodes []Node

	cst.Tree(d.Root).Walk(func(n *cst.TreeNode, depth int) bool {
		if n.Rule != "" {
			nodes = append(nodes, Node{
				Rule:   n.Rule,
				Field:  n.Field,
				Text:   n.Text,
				Offset: n.Offset,
				End:    n.Offset + len(n.Text),
				Depth:  depth,
			})
		}

		return true
	})

	return nodes
}

// Query returns the nodes of doc for which the expr-lang predicate where
// evaluates to true. The fields of [Node] are the predicate's variables.
// An empty predicate matches every node.
func Query(doc *Document, where string) ([]Node, error) {
	nodes := doc.Nodes()
	if where == "" {
		return nodes, nil
	}

	program, err := expr.Compile(where, expr.Env(Node{}), expr.AsBool())
	if err != nil {
		return nil, ErrQuery.Wrap(err).With(slog.String("where", where))
	}

	var match []Node

	for _, n := range nodes {
		out, err := expr.Run(program, n)
		if err != nil {
			return nil, ErrQuery.Wrap(err).With(
				slog.String("where", where),
				slog.String("rule", n.Rule),
				slog.Int("offset", n.Offset),
			)
		}

		if ok, _ := out.(bool); ok {
			match = append(match, n)
		}
	}

	return match, nil
}
