package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/odatauri/odata"
)

// Nodes lists the rule nodes of the syntax tree that satisfy an expression.
type Nodes struct {
	Where  string `help:"Boolean expression over Rule, Field, Text, Offset, End and Depth." short:"w"`
	Format string `default:"table" enum:"table,json,yaml" help:"Output format."              short:"f"`

	In source `embed:""`
}

// Run executes the nodes command.
func (n *Nodes) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	doc, err := n.In.document(ctx)
	if err != nil {
		return ErrParse.Wrap(err).With(slog.String("command", "nodes"))
	}

	nodes, err := odata.Query(doc, n.Where)
	if err != nil {
		return err
	}

	var out []byte

	switch n.Format {
	case "json":
		out, err = json.MarshalIndent(nodes, "", "  ")
		if err == nil {
			out = append(out, '\n')
		}

	case "yaml":
		out, err = yaml.Marshal(nodes)

	default:
		out = []byte(nodeTable(nodes) + "\n")
	}

	if err != nil {
		return ErrWriteOutput.Wrap(err).With(slog.String("format", n.Format))
	}

	if _, err := outputFrom(ctx).Write(out); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

// nodeTable renders nodes as a table with the rule name indented by depth.
func nodeTable(nodes []odata.Node) string {
	rows := make([][]string, len(nodes))

	for i, node := range nodes {
		rows[i] = []string{
			strings.Repeat("  ", node.Depth) + node.Rule,
			node.Field,
			fmt.Sprintf("%d-%d", node.Offset, node.End),
			strconv.Quote(node.Text),
		}
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("RULE", "FIELD", "SPAN", "TEXT").
		Rows(rows...).
		String()
}
