package repl

import (
	"bufio"
	"os"
	"slices"
	"strings"
	"sync"
)

const baseHistory = "history.utf8"

// historyPrefix marks the mode of each line in the history file.
var historyPrefix = map[inputMode]string{
	modeParse: "P:",
	modeCtrl:  "C:",
}

// HistoryEntry represents a single history entry with its mode.
type HistoryEntry struct {
	Line string
	Mode inputMode
}

func (e HistoryEntry) encode() string { return historyPrefix[e.Mode] + e.Line + "\n" }

func decodeEntry(line string) HistoryEntry {
	for mode, prefix := range historyPrefix {
		if s, ok := strings.CutPrefix(line, prefix); ok {
			return HistoryEntry{Line: s, Mode: mode}
		}
	}

	return HistoryEntry{Line: line, Mode: modeParse}
}

// History manages input history persisted to a file, one entry per line.
type History struct {
	path    string
	entries []HistoryEntry
	mu      sync.RWMutex
}

// NewHistory creates a new History backed by the file at path.
func NewHistory(path string) *History {
	return &History{path: path}
}

// Load reads history entries from the history file. A missing file is an
// empty history.
func (h *History) Load() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	file, err := os.Open(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return err
	}
	defer file.Close()

	h.entries = nil

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		h.entries = append(h.entries, decodeEntry(line))
	}

	return scanner.Err()
}

// Write appends a parse-mode entry to the history.
func (h *History) Write(entry string) (int, error) {
	return h.WriteWithMode(entry, modeParse)
}

// WriteWithMode appends entry to the history. An older identical entry (same
// line and mode) is moved to the end instead of repeated.
func (h *History) WriteWithMode(line string, mode inputMode) (int, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	entry := HistoryEntry{Line: line, Mode: mode}

	if n := len(h.entries); n > 0 && h.entries[n-1] == entry {
		return len(line), nil
	}

	if i := slices.Index(h.entries, entry); i >= 0 {
		h.entries = append(slices.Delete(h.entries, i, i+1), entry)

		return h.rewriteFile()
	}

	h.entries = append(h.entries, entry)

	file, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	return file.WriteString(entry.encode())
}

// GetEntry retrieves a historic entry by index, 0 being the oldest.
func (h *History) GetEntry(i int) (HistoryEntry, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if i < 0 || i >= len(h.entries) {
		return HistoryEntry{}, ErrOutOfBounds
	}

	return h.entries[i], nil
}

// Len returns the number of history entries.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.entries)
}

// Entries returns a copy of all history entries.
func (h *History) Entries() []HistoryEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return slices.Clone(h.entries)
}

// rewriteFile rewrites the entire history file with current entries.
// Must be called with h.mu held.
func (h *History) rewriteFile() (int, error) {
	file, err := os.OpenFile(h.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	total := 0

	for _, entry := range h.entries {
		n, err := file.WriteString(entry.encode())
		if err != nil {
			return total, err
		}

		total += n
	}

	return total, nil
}
