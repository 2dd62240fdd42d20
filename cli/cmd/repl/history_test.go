package repl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)
	require.NoError(t, h.Load())
	assert.Zero(t, h.Len())

	_, err := h.Write("People?$top=2")
	require.NoError(t, err)
	_, err = h.WriteWithMode("rule header", modeCtrl)
	require.NoError(t, err)
	_, err = h.Write("   ")
	require.NoError(t, err)

	loaded := NewHistory(path)
	require.NoError(t, loaded.Load())

	assert.Equal(t, []HistoryEntry{
		{Line: "People?$top=2", Mode: modeParse},
		{Line: "rule header", Mode: modeCtrl},
	}, loaded.Entries())
}

func TestHistoryDeduplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)
	h := NewHistory(path)

	for _, line := range []string{"a", "b", "b", "a"} {
		_, err := h.Write(line)
		require.NoError(t, err)
	}

	// Same line, other mode, is a distinct entry.
	_, err := h.WriteWithMode("a", modeCtrl)
	require.NoError(t, err)

	want := []HistoryEntry{
		{Line: "b", Mode: modeParse},
		{Line: "a", Mode: modeParse},
		{Line: "a", Mode: modeCtrl},
	}
	assert.Equal(t, want, h.Entries())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "P:b\nP:a\nC:a\n", string(data))
}

func TestHistoryLoadUnprefixed(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)
	require.NoError(t, os.WriteFile(path, []byte("People\n\nC:quit\n"), 0o600))

	h := NewHistory(path)
	require.NoError(t, h.Load())

	entry, err := h.GetEntry(0)
	require.NoError(t, err)
	assert.Equal(t, HistoryEntry{Line: "People", Mode: modeParse}, entry)

	entry, err = h.GetEntry(1)
	require.NoError(t, err)
	assert.Equal(t, HistoryEntry{Line: "quit", Mode: modeCtrl}, entry)

	_, err = h.GetEntry(2)
	require.ErrorIs(t, err, ErrOutOfBounds)

	_, err = h.GetEntry(-1)
	require.ErrorIs(t, err, ErrOutOfBounds)
}
