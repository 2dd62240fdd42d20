package repl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFunctionCall(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		cursor     int
		wantName   string
		wantIndex  int
		wantInCall bool
	}{
		{"no call", "Name eq 'x'", 11, "", 0, false},
		{"first argument", "contains(", 9, "contains", 0, true},
		{"first argument typed", "contains(Name", 13, "contains", 0, true},
		{"second argument", "contains(Name,", 14, "contains", 1, true},
		{"dotted name", "geo.distance(Location,", 22, "geo.distance", 1, true},
		{"closed call", "tolower(Name) eq", 16, "", 0, false},
		{"nested outer", "concat(tolower(Name),", 21, "concat", 1, true},
		{"nested inner", "concat(tolower(Name), 'x')", 15, "tolower", 0, true},
		{"quoted comma", "concat('a,b',", 13, "concat", 1, true},
		{"quoted paren", "contains(Name,'(", 16, "contains", 1, true},
		{"grouping paren", "(Age gt 3", 9, "", 0, false},
		{"cursor past end", "trim(", 99, "trim", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectFunctionCall(tt.input, tt.cursor)

			assert.Equal(t, tt.wantName, got.name)
			assert.Equal(t, tt.wantIndex, got.argIndex)
			assert.Equal(t, tt.wantInCall, got.inCall)
		})
	}
}

func TestSignature(t *testing.T) {
	params, ok := signature("substring")
	assert.True(t, ok)
	assert.Equal(t, []string{"string", "start", "length?"}, params)

	params, ok = signature("now")
	assert.True(t, ok)
	assert.Empty(t, params)

	_, ok = signature("Namespace.Action")
	assert.False(t, ok)
}

func TestMethodNames(t *testing.T) {
	names := MethodNames()

	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "geo.distance")
	assert.Contains(t, names, "matchesPattern")
	assert.Len(t, names, len(methodSignatures))
}

func TestRenderSignatureHint(t *testing.T) {
	hint := renderSignatureHint("substring", []string{"string", "start", "length?"}, 1)

	for _, want := range []string{"substring", "string", "start", "length?", "(", ")"} {
		assert.Contains(t, hint, want)
	}

	assert.Contains(t, renderSignatureHint("case", []string{"...condition:value"}, 4), "...condition:value")
}
