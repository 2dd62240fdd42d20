package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/odatauri/odata"
)

func testContext(stdin string) (context.Context, *bytes.Buffer) {
	var out bytes.Buffer

	ctx := WithInput(context.Background(), strings.NewReader(stdin))
	ctx = WithOutput(ctx, &out)

	return ctx, &out
}

func TestParseRun(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Parse
		stdin   string
		want    []string
		wantErr error
	}{
		{
			name: "accepted",
			cmd:  Parse{Rule: odata.RuleRelativeURI, MaxDepth: 256, Input: []string{"People?$top=2"}},
			want: []string{"ok odataRelativeUri"},
		},
		{
			name:  "stdin lines",
			cmd:   Parse{Rule: odata.RuleHeader, MaxDepth: 256, Input: []string{"-"}},
			stdin: "OData-Version: 4.0\r\nOData-MaxVersion: 4.01\n",
			want:  []string{"ok header", "ok header"},
		},
		{
			name:    "rejected",
			cmd:     Parse{Rule: odata.RuleRelativeURI, MaxDepth: 256, Input: []string{"People", "People?$top=x"}},
			want:    []string{"ok odataRelativeUri", "column"},
			wantErr: ErrParse,
		},
		{
			name: "partial",
			cmd:  Parse{Rule: "commonExpr", Partial: true, MaxDepth: 256, Input: []string{"Age gt"}},
			want: []string{`ok commonExpr (rest " gt")`},
		},
		{
			name:    "depth",
			cmd:     Parse{Rule: "commonExpr", MaxDepth: 4, Input: []string{strings.Repeat("(", 10) + "1" + strings.Repeat(")", 10)}},
			want:    []string{"depth"},
			wantErr: ErrParse,
		},
		{
			name:    "unknown rule",
			cmd:     Parse{Rule: "noSuchRule", MaxDepth: 256, Input: []string{"People"}},
			wantErr: odata.ErrUnknownRule,
		},
		{
			name:    "no input",
			cmd:     Parse{Rule: odata.RuleRelativeURI, MaxDepth: 256},
			wantErr: ErrNoInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := testContext(tt.stdin)

			err := tt.cmd.Run(ctx)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			for _, want := range tt.want {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestSourceDocument(t *testing.T) {
	ctx, _ := testContext("People?$top=2\r\n")

	doc, err := source{Rule: odata.RuleRelativeURI, Input: "-"}.document(ctx)
	require.NoError(t, err)
	assert.Equal(t, "People?$top=2", doc.Source)

	doc, err = source{Rule: odata.RuleRelativeURI, Input: "Airports"}.document(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Airports", doc.Source)

	_, err = source{Rule: odata.RuleRelativeURI, Input: "Airports?$top=x"}.document(ctx)
	require.ErrorIs(t, err, odata.ErrIncomplete)
}
