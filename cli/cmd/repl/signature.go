package repl

import (
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// methodSignatures lists the parameters of the canonical functions accepted
// in expressions. A parameter prefixed with "..." may repeat.
var methodSignatures = map[string][]string{
	"concat":             {"string", "string"},
	"contains":           {"string", "substring"},
	"endswith":           {"string", "suffix"},
	"indexof":            {"string", "substring"},
	"length":             {"string"},
	"matchesPattern":     {"string", "pattern"},
	"startswith":         {"string", "prefix"},
	"substring":          {"string", "start", "length?"},
	"tolower":            {"string"},
	"toupper":            {"string"},
	"trim":               {"string"},
	"hassubset":          {"collection", "subset"},
	"hassubsequence":     {"collection", "subsequence"},
	"year":               {"date"},
	"month":              {"date"},
	"day":                {"date"},
	"hour":               {"time"},
	"minute":             {"time"},
	"second":             {"time"},
	"fractionalseconds":  {"time"},
	"totalseconds":       {"duration"},
	"date":               {"datetime"},
	"time":               {"datetime"},
	"totaloffsetminutes": {"datetime"},
	"mindatetime":        {},
	"maxdatetime":        {},
	"now":                {},
	"round":              {"number"},
	"floor":              {"number"},
	"ceiling":            {"number"},
	"geo.distance":       {"point", "point"},
	"geo.intersects":     {"point", "polygon"},
	"geo.length":         {"linestring"},
	"case":               {"...condition:value"},
	"cast":               {"expression?", "type"},
	"isof":               {"expression?", "type"},
}

// MethodNames returns the sorted names of all canonical functions.
func MethodNames() []string {
	return slices.Sorted(maps.Keys(methodSignatures))
}

var (
	signatureStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	signatureNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("6")).
				Bold(true)
	currentParamStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11")).
				Bold(true)
)

// functionCall describes the call whose parameter list holds the cursor.
type functionCall struct {
	name     string // function name, e.g. "geo.distance"
	argIndex int    // 0-based index of the argument at the cursor
	inCall   bool   // whether the cursor is inside a parameter list
}

// isNameRune reports whether r can appear in a function name.
func isNameRune(r byte) bool {
	return r == '.' || r == '_' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// detectFunctionCall finds the innermost unclosed parenthesis before cursor
// and the name preceding it. Parentheses and commas inside single-quoted
// string literals are ignored.
func detectFunctionCall(input string, cursor int) functionCall {
	cursor = min(max(cursor, 0), len(input))

	// Open parentheses and the commas seen inside each, outside quotes.
	type frame struct{ open, commas int }

	var (
		stack  []frame
		quoted bool
	)

	for i := range cursor {
		switch ch := input[i]; {
		case ch == '\'':
			quoted = !quoted
		case quoted:
		case ch == '(':
			stack = append(stack, frame{open: i})
		case ch == ')' && len(stack) > 0:
			stack = stack[:len(stack)-1]
		case ch == ',' && len(stack) > 0:
			stack[len(stack)-1].commas++
		}
	}

	if len(stack) == 0 {
		return functionCall{}
	}

	top := stack[len(stack)-1]

	start := top.open
	for start > 0 && isNameRune(input[start-1]) {
		start--
	}

	name := input[start:top.open]
	if name == "" {
		return functionCall{}
	}

	return functionCall{name: name, argIndex: top.commas, inCall: true}
}

// signature returns the parameters of the named canonical function.
func signature(name string) ([]string, bool) {
	params, ok := methodSignatures[name]

	return params, ok
}

// renderSignatureHint renders name(params...) with the parameter at argIdx
// highlighted. A repeating parameter is highlighted for every index past it.
func renderSignatureHint(name string, params []string, argIdx int) string {
	var b strings.Builder

	b.WriteString(signatureNameStyle.Render(name))
	b.WriteString(signatureStyle.Render("("))

	for i, param := range params {
		if i > 0 {
			b.WriteString(signatureStyle.Render(", "))
		}

		repeats := strings.HasPrefix(param, "...")
		if argIdx == i || (repeats && argIdx > i) {
			b.WriteString(currentParamStyle.Render(param))
		} else {
			b.WriteString(signatureStyle.Render(param))
		}
	}

	b.WriteString(signatureStyle.Render(")"))

	return b.String()
}
