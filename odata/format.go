package odata

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/odatauri/cst"
)

// Format writes the source text matched by the document's root.
func (d *Document) Format(w io.Writer) error {
	return cst.Write(w, d.Root)
}

// FormatTree writes the document as an indented rule tree, one node per line.
func (d *Document) FormatTree(w io.Writer, indent int) error {
	var err error

	cst.Tree(d.Root).Walk(func(n *cst.TreeNode, depth int) bool {
		label := n.Rule
		if label == "" {
			label = "." + n.Field
		}

		_, err = fmt.Fprintf(w, "%s%s %q\n", strings.Repeat(" ", depth*indent), label, n.Text)

		return err == nil
	})

	return err
}

// FormatJSON writes the document's tree as JSON to the writer.
func (d *Document) FormatJSON(ctx context.Context, w io.Writer, indent int) error {
	var (
		jsonData []byte
		err      error
	)

	if indent > 0 {
		jsonData, err = json.MarshalIndent(cst.Tree(d.Root), "", strings.Repeat(" ", indent))
	} else {
		jsonData, err = json.MarshalContext(ctx, cst.Tree(d.Root))
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

// FormatYAML writes the document's tree as YAML to the writer.
func (d *Document) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(ctx, cst.Tree(d.Root), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}
