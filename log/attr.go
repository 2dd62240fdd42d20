package log

import (
	"log/slog"
	"unicode/utf8"
)

// MaxInputAttr is the number of bytes of input text kept by [Input].
const MaxInputAttr = 96

// Input returns an attribute holding s, cut at a rune boundary after
// [MaxInputAttr] bytes with "..." appended.
func Input(key, s string) slog.Attr {
	if len(s) <= MaxInputAttr {
		return slog.String(key, s)
	}

	n := MaxInputAttr
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}

	return slog.String(key, s[:n]+"...")
}

// Span returns a group attribute locating the input bytes [offset, end).
func Span(key string, offset, end int) slog.Attr {
	return slog.Group(key, slog.Int("offset", offset), slog.Int("end", end))
}
