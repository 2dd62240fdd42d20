package repl

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/odatauri/grammar"
	"github.com/ardnew/odatauri/log"
	"github.com/ardnew/odatauri/odata"
)

func TestWordBounds(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		cursor    int
		wantWord  string
		wantStart int
		wantEnd   int
	}{
		{"simple", "People", 6, "People", 0, 6},
		{"query option", "People?$fil", 11, "$fil", 7, 11},
		{"after ampersand", "People?$top=2&$sk", 17, "$sk", 14, 17},
		{"after space", "$filter=Name eq", 15, "eq", 13, 15},
		{"dotted function", "geo.dist", 8, "geo.dist", 0, 8},
		{"after paren", "contains(Na", 11, "Na", 9, 11},
		{"after quote", "Name eq 'Ru", 11, "Ru", 9, 11},
		{"after slash", "People('x')/Fri", 15, "Fri", 12, 15},
		{"mid word", "toupper", 3, "toupper", 0, 7},
		{"empty at boundary", "People(", 7, "", 7, 7},
		{"control prefix", ":rul", 4, "rul", 1, 4},
		{"cursor clamped", "top", 10, "top", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)

			assert.Equal(t, tt.wantWord, word)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestCtrlCandidates(t *testing.T) {
	assert.Equal(t, ctrlCommands, ctrlCandidates("", 0))
	assert.Equal(t, ctrlCommands, ctrlCandidates("ru", 0))
	assert.Equal(t, grammar.Rules(), ctrlCandidates("rule ", 5))
	assert.Equal(t, grammar.Rules(), ctrlCandidates("rules od", 6))
	assert.Nil(t, ctrlCandidates("rule odataUri ", 14))
	assert.Nil(t, ctrlCandidates("tree ", 5))
}

func testModel(t *testing.T) model {
	t.Helper()

	history := NewHistory(filepath.Join(t.TempDir(), baseHistory))

	return newModel(context.Background(), Config{
		Rule:   odata.RuleRelativeURI,
		Tree:   true,
		Logger: log.Make(io.Discard, log.WithLevel(log.LevelError)),
	}, history)
}

func TestComputeMatches(t *testing.T) {
	t.Run("parse keyword", func(t *testing.T) {
		m := testModel(t)
		m.input.SetValue("People?$filt")

		matches, _, start, end := m.computeMatches()
		require.NotEmpty(t, matches)
		assert.Equal(t, "$filter", matches[0].Str)
		assert.Equal(t, 7, start)
		assert.Equal(t, 12, end)
	})

	t.Run("parse function", func(t *testing.T) {
		m := testModel(t)
		m.input.SetValue("$filter=geo.dista")

		matches, _, _, _ := m.computeMatches()
		require.NotEmpty(t, matches)
		assert.Equal(t, "geo.distance", matches[0].Str)
	})

	t.Run("empty word in parse mode", func(t *testing.T) {
		m := testModel(t)
		m.input.SetValue("People(")

		matches, _, _, _ := m.computeMatches()
		assert.Empty(t, matches)
	})

	t.Run("control prefix", func(t *testing.T) {
		m := testModel(t)
		m.input.SetValue(":tr")

		matches, _, start, _ := m.computeMatches()
		require.NotEmpty(t, matches)
		assert.Equal(t, "tree", matches[0].Str)
		assert.Equal(t, 1, start)
	})

	t.Run("control argument lists every rule", func(t *testing.T) {
		m := testModel(t)
		m.mode = modeCtrl
		m.input.SetValue("rule ")

		matches, candidates, _, _ := m.computeMatches()
		assert.Len(t, matches, len(grammar.Rules()))
		assert.Equal(t, grammar.Rules(), candidates)
	})

	t.Run("control argument fuzzy", func(t *testing.T) {
		m := testModel(t)
		m.input.SetValue(":rule odataRelative")

		matches, _, _, _ := m.computeMatches()
		require.NotEmpty(t, matches)
		assert.Equal(t, odata.RuleRelativeURI, matches[0].Str)
	})
}

func TestRenderCandidateBar(t *testing.T) {
	m := testModel(t)
	m.input.SetValue("to")

	matches, _, _, _ := m.computeMatches()
	require.NotEmpty(t, matches)

	assert.Empty(t, renderCandidateBar(matches, 0, false, 0))

	bar := renderCandidateBar(matches, 0, true, 200)
	assert.Contains(t, bar, "()")

	narrow := renderCandidateBar(matches, 0, false, 12)
	if len(matches) > 1 {
		assert.Contains(t, narrow, "...")
	}
}
