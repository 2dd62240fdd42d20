package repl

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/odatauri/grammar"
)

// ctrlCommands are the available control-mode commands.
var ctrlCommands = []string{"help", "rule", "rules", "tree", "edit", "clear", "quit"}

// keywords are the fixed words of OData URLs offered for completion in parse
// mode, besides the canonical function names.
var keywords = []string{
	// system query options
	"$filter", "$select", "$expand", "$orderby", "$top", "$skip", "$count",
	"$search", "$format", "$compute", "$apply", "$skiptoken", "$deltatoken",
	"$levels", "$schemaversion", "$index", "$id",
	// resource path segments
	"$metadata", "$batch", "$entity", "$crossjoin", "$all", "$ref", "$value",
	"$each", "$query", "$root", "$it", "$this",
	// operators
	"eq", "ne", "lt", "le", "gt", "ge", "has", "in",
	"and", "or", "not",
	"add", "sub", "mul", "div", "divby", "mod",
	"asc", "desc", "any", "all",
	// literals
	"true", "false", "null", "INF", "NaN",
}

// isWordBoundary reports whether r separates completion words. '$' and '.'
// belong to words so that "$filter" and "geo.distance" complete whole.
func isWordBoundary(r rune) bool {
	switch r {
	case ' ', '\t',
		'(', ')', '[', ']', '{', '}',
		'/', '?', '&', '=', ',', ';', ':', '\'', '"', '@', '#':
		return true
	}

	return false
}

// wordBounds returns the word at cursor and its byte boundaries in input.
// The word is empty when the cursor sits between two boundaries.
func wordBounds(input string, cursor int) (word string, start, end int) {
	cursor = min(max(cursor, 0), len(input))

	start = cursor
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	end = cursor
	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// parseCandidates returns the completion candidates in parse mode.
func parseCandidates() []string {
	return slices.Concat(keywords, MethodNames())
}

// ctrlCandidates returns the completion candidates for the word starting at
// wordStart of a control-mode input. Arguments of "rule" and "rules" complete
// to rule names.
func ctrlCandidates(input string, wordStart int) []string {
	fields := strings.Fields(input[:wordStart])
	if len(fields) == 0 {
		return ctrlCommands
	}

	switch fields[0] {
	case "rule", "rules":
		if len(fields) == 1 {
			return grammar.Rules()
		}
	}

	return nil
}

// computeMatches calculates the fuzzy matches for the word at the cursor,
// ranked best first. An empty word has no matches, except for the argument of
// a control command, where every candidate is listed.
func (m model) computeMatches() (
	matches fuzzy.Matches,
	candidates []string,
	wordStart, wordEnd int,
) {
	input := m.input.Value()

	word, wordStart, wordEnd := wordBounds(input, m.input.Position())

	// A leading ':' runs a control command from parse mode.
	ctrl, line, at := m.mode == modeCtrl, input, wordStart
	if body, ok := strings.CutPrefix(input, ":"); ok && !ctrl {
		ctrl, line, at = true, body, wordStart-1
	}

	if ctrl {
		candidates = ctrlCandidates(line, at)
	} else {
		candidates = parseCandidates()
	}

	switch {
	case len(candidates) == 0:
		return nil, nil, wordStart, wordEnd

	case word == "":
		if !ctrl || at == 0 {
			return nil, nil, wordStart, wordEnd
		}

		matches = make(fuzzy.Matches, len(candidates))
		for i, c := range candidates {
			matches[i] = fuzzy.Match{Str: c, Index: i}
		}

		return matches, candidates, wordStart, wordEnd
	}

	return fuzzy.Find(word, candidates), candidates, wordStart, wordEnd
}

// renderCandidateBar builds the single-line completion bar, ellipsized to fit
// within width. Matched characters are highlighted and the selected candidate
// (when tabbing) uses the selected style.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		rendered := renderCandidate(match, tabActive && i == suggIdx)

		entryWidth := lipgloss.Width(rendered)
		if i > 0 {
			entryWidth += sepWidth
		}

		if i > 0 && used+entryWidth+ellipsisWidth > width {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth
	}

	return b.String()
}

// renderCandidate renders a single candidate with matched characters
// highlighted. Canonical functions are displayed with a "()" suffix.
func renderCandidate(match fuzzy.Match, selected bool) string {
	baseStyle := suggestionStyle
	highlightStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("4")).
		Bold(true)

	if selected {
		baseStyle = selectedStyle
		highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4")).
			Bold(true)
	}

	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matched[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		if matched[i] {
			b.WriteString(highlightStyle.Render(string(r)))
		} else {
			b.WriteString(baseStyle.Render(string(r)))
		}
	}

	if _, ok := methodSignatures[match.Str]; ok {
		b.WriteString(baseStyle.Render("()"))
	}

	return b.String()
}
