package parse

// Token is a leaf of the concrete syntax tree: the exact input text matched
// by a terminal parser.
type Token struct {
	// Text is the matched input, byte for byte.
	Text string
	// Offset is the byte offset of Text in the parsed input.
	Offset int
	// Encoded is set when a delimiter matched its percent-encoded spelling
	// (for example "%2F" instead of "/").
	Encoded bool
}

// String returns the matched text.
func (t Token) String() string { return t.Text }

// End returns the offset immediately following the token.
func (t Token) End() int { return t.Offset + len(t.Text) }

// IsZero reports whether t matched nothing.
func (t Token) IsZero() bool { return t.Text == "" && t.Offset == 0 && !t.Encoded }
