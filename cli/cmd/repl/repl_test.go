package repl

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/odatauri/odata"
)

func TestRunUnknownRule(t *testing.T) {
	m := testModel(t)

	err := Run(context.Background(), Config{
		Rule:     "noSuchRule",
		CacheDir: t.TempDir(),
		Logger:   m.logger,
	})
	require.ErrorIs(t, err, ErrUnknownRule)
}

func TestEvaluate(t *testing.T) {
	m := testModel(t)

	out := m.evaluate("People?$top=2")
	assert.Contains(t, out, "ODataRelativeURI")
	assert.Contains(t, out, "\n")

	m.tree = false
	assert.Contains(t, m.evaluate("People?$top=2"), "ok "+odata.RuleRelativeURI)

	out = m.evaluate("People?$top=two")
	assert.Contains(t, out, "column")
	assert.NotContains(t, out, "ok ")
}

func TestEvaluateWithoutTree(t *testing.T) {
	m := newModel(context.Background(), Config{
		Rule:   odata.RuleRelativeURI,
		Logger: testModel(t).logger,
	}, NewHistory(filepath.Join(t.TempDir(), baseHistory)))

	out := m.evaluate("People")
	assert.Contains(t, out, "ok "+odata.RuleRelativeURI)
	assert.NotContains(t, out, "ODataRelativeURI")
}

func TestLiveStatus(t *testing.T) {
	m := testModel(t)

	assert.Empty(t, m.liveStatus())

	m.input.SetValue("People")
	assert.Contains(t, m.liveStatus(), "✔ "+odata.RuleRelativeURI)

	m.input.SetValue("People?$top=")
	assert.Contains(t, m.liveStatus(), "✘")

	m.input.SetValue(":rules")
	assert.Empty(t, m.liveStatus())

	m.mode = modeCtrl
	m.input.SetValue("People")
	assert.Empty(t, m.liveStatus())
}

func TestSwitchRule(t *testing.T) {
	m := testModel(t)

	m, out := m.switchRule(nil)
	assert.Contains(t, out, odata.RuleRelativeURI)

	m, out = m.switchRule([]string{odata.RuleHeader})
	assert.Equal(t, odata.RuleHeader, m.rule)
	assert.Contains(t, out, odata.RuleHeader)

	m, out = m.switchRule([]string{"noSuchRule"})
	assert.Equal(t, odata.RuleHeader, m.rule)
	assert.Contains(t, out, ErrUnknownRule.Error())
}

func TestListRules(t *testing.T) {
	m := testModel(t)

	assert.Contains(t, m.listRules("odataUri"), odata.RuleURI)
	assert.Contains(t, m.listRules("zzzzzzqqq"), "no rules match")
}

func TestExecuteInput(t *testing.T) {
	t.Run("parse line", func(t *testing.T) {
		m := testModel(t)
		m.input.SetValue("People")

		m, cmd := m.executeInput()
		assert.NotNil(t, cmd)
		assert.Empty(t, m.input.Value())
		assert.Equal(t, []HistoryEntry{{Line: "People", Mode: modeParse}}, m.history.Entries())
	})

	t.Run("control prefix", func(t *testing.T) {
		m := testModel(t)
		require.True(t, m.tree)
		m.input.SetValue(":tree")

		m, _ = m.executeInput()
		assert.False(t, m.tree)
		assert.Equal(t, modeParse, m.mode)
		assert.Equal(t, []HistoryEntry{{Line: "tree", Mode: modeCtrl}}, m.history.Entries())
	})

	t.Run("switch rule", func(t *testing.T) {
		m := testModel(t)
		m = m.switchToMode(modeCtrl)
		m.input.SetValue("rule " + odata.RuleURI)

		m, _ = m.executeInput()
		assert.Equal(t, odata.RuleURI, m.rule)
	})

	t.Run("quit", func(t *testing.T) {
		m := testModel(t)
		m.input.SetValue(":quit")

		m, _ = m.executeInput()
		assert.True(t, m.quitting)
		assert.Empty(t, m.View())
	})

	t.Run("blank", func(t *testing.T) {
		m := testModel(t)
		m.input.SetValue("  ")

		_, cmd := m.executeInput()
		assert.Nil(t, cmd)
		assert.Zero(t, m.history.Len())
	})
}

func TestToggleModeKeepsInput(t *testing.T) {
	m := testModel(t)
	m.input.SetValue("People")

	m = m.toggleMode()
	assert.Equal(t, modeCtrl, m.mode)
	assert.Empty(t, m.input.Value())

	m.input.SetValue("help")

	m = m.toggleMode()
	assert.Equal(t, modeParse, m.mode)
	assert.Equal(t, "People", m.input.Value())

	m = m.toggleMode()
	assert.Equal(t, "help", m.input.Value())
}

func TestHistoryNavigation(t *testing.T) {
	m := testModel(t)

	for _, e := range []HistoryEntry{
		{Line: "People", Mode: modeParse},
		{Line: "tree", Mode: modeCtrl},
		{Line: "Airports", Mode: modeParse},
	} {
		_, err := m.history.WriteWithMode(e.Line, e.Mode)
		require.NoError(t, err)
	}

	m.historyIdx = m.history.Len()

	m = m.historyStep(-1)
	assert.Equal(t, "Airports", m.input.Value())

	m = m.historyStep(-1)
	assert.Equal(t, "tree", m.input.Value())
	assert.Equal(t, modeCtrl, m.mode)

	m = m.historyStep(+1)
	assert.Equal(t, "Airports", m.input.Value())
	assert.Equal(t, modeParse, m.mode)

	m = m.historyStep(+1)
	assert.Empty(t, m.input.Value())
	assert.Equal(t, m.history.Len(), m.historyIdx)

	m = m.historyInMode(-1)
	assert.Equal(t, "Airports", m.input.Value())

	m = m.historyInMode(-1)
	assert.Equal(t, "People", m.input.Value())
	assert.Equal(t, modeParse, m.mode)

	m = m.clearHistoryView()
	m.input.SetValue("draft")

	m = m.historyCtrl(-1)
	assert.Equal(t, modeCtrl, m.mode)
	assert.Equal(t, "tree", m.input.Value())

	m = m.historyCtrl(+1)
	assert.Equal(t, modeParse, m.mode)
	assert.Equal(t, "draft", m.input.Value())
}

func TestTabCycling(t *testing.T) {
	m := testModel(t)
	m.input.SetValue(":rule odataRelativeU")
	m.input.CursorEnd()
	refreshMatches(&m, false)
	require.NotEmpty(t, m.matches)

	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, strings.HasPrefix(next.input.Value(), ":rule "))
	assert.Contains(t, next.input.Value(), "odataRelativeUri")

	restored, _ := next.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if next.tabActive {
		assert.Equal(t, ":rule odataRelativeU", restored.input.Value())
	}
}
