package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

// ANSI color codes for pretty printing.
const (
	colorReset   = "\033[0m"
	colorGray    = "\033[90m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
)

// prettyBase holds the state shared by both pretty handlers.
type prettyBase struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	attrs  []slog.Attr
	prefix string
}

func (h *prettyBase) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

// header returns the attributes written before the message attributes:
// time, level, source and message.
func (h *prettyBase) header(r slog.Record) []slog.Attr {
	var out []slog.Attr

	if !r.Time.IsZero() {
		if t := h.replace(slog.Time(slog.TimeKey, r.Time)); t.Key != "" {
			out = append(out, t)
		}
	}

	out = append(out, slog.String(slog.LevelKey, levelLabel(r.Level)))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			out = append(out, slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	return append(out, slog.String(slog.MessageKey, r.Message))
}

// body returns the handler's own attributes followed by the record's, with
// keys qualified by any open groups.
func (h *prettyBase) body(r slog.Record) []slog.Attr {
	out := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	out = append(out, h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		a.Key = h.prefix + a.Key
		out = append(out, a)

		return true
	})

	return out
}

func (h *prettyBase) replace(a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	return h.opts.ReplaceAttr(nil, a)
}

func (h *prettyBase) write(buf *bytes.Buffer) error {
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyBase) withAttrs(attrs []slog.Attr) prettyBase {
	c := *h
	c.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	c.attrs = append(c.attrs, h.attrs...)

	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		c.attrs = append(c.attrs, a)
	}

	return c
}

func (h *prettyBase) withGroup(name string) prettyBase {
	c := *h
	if name != "" {
		c.prefix += name + "."
	}

	return c
}

func levelLabel(level slog.Level) string {
	return strings.ToUpper(Level(level).String())
}

func levelColor(label string) string {
	switch label {
	case "ERROR":
		return colorRed
	case "WARN":
		return colorYellow
	case "INFO":
		return colorGreen
	default:
		return colorBlue
	}
}

// prettyTextHandler implements a colorized text handler for log messages.
type prettyTextHandler struct{ prettyBase }

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyTextHandler {
	return &prettyTextHandler{prettyBase{opts: *opts, mu: &sync.Mutex{}, w: w}}
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	for _, a := range h.header(r) {
		h.writeAttr(buf, "", a)
	}

	for _, a := range h.body(r) {
		h.writeAttr(buf, "", a)
	}

	return h.write(buf)
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyTextHandler{h.withAttrs(attrs)}
}

func (h *prettyTextHandler) WithGroup(name string) slog.Handler {
	return &prettyTextHandler{h.withGroup(name)}
}

func (h *prettyTextHandler) writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, g := range a.Value.Group() {
			h.writeAttr(buf, prefix, g)
		}

		return
	}

	if a.Equal(slog.Attr{}) {
		return
	}

	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(colorGray)
	buf.WriteString(prefix + a.Key)
	buf.WriteString(colorReset)
	buf.WriteByte('=')

	if a.Key == slog.LevelKey && prefix == "" {
		label := a.Value.String()
		buf.WriteString(levelColor(label) + label + colorReset)

		return
	}

	writeValue(buf, a.Value)
}

func writeValue(buf *bytes.Buffer, v slog.Value) {
	switch v.Kind() {
	case slog.KindInt64:
		buf.WriteString(colorYellow + strconv.FormatInt(v.Int64(), 10) + colorReset)

	case slog.KindUint64:
		buf.WriteString(colorYellow + strconv.FormatUint(v.Uint64(), 10) + colorReset)

	case slog.KindFloat64:
		buf.WriteString(colorYellow + strconv.FormatFloat(v.Float64(), 'g', -1, 64) + colorReset)

	case slog.KindBool:
		if v.Bool() {
			buf.WriteString(colorGreen + "true" + colorReset)
		} else {
			buf.WriteString(colorRed + "false" + colorReset)
		}

	case slog.KindDuration:
		buf.WriteString(colorMagenta + v.Duration().String() + colorReset)

	case slog.KindTime:
		buf.WriteString(colorBlue + v.Time().String() + colorReset)

	default:
		// Strings and everything else in cyan, no quotes.
		buf.WriteString(colorCyan + v.String() + colorReset)
	}
}

// prettyJSONHandler implements a pretty-printed JSON handler for log messages.
type prettyJSONHandler struct{ prettyBase }

func newPrettyJSONHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyJSONHandler {
	return &prettyJSONHandler{prettyBase{opts: *opts, mu: &sync.Mutex{}, w: w}}
}

func (h *prettyJSONHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	buf.WriteString("{")
	h.writeObject(buf, append(h.header(r), h.body(r)...), 1)
	buf.WriteString("\n}")

	return h.write(buf)
}

func (h *prettyJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyJSONHandler{h.withAttrs(attrs)}
}

func (h *prettyJSONHandler) WithGroup(name string) slog.Handler {
	return &prettyJSONHandler{h.withGroup(name)}
}

func (h *prettyJSONHandler) writeObject(buf *bytes.Buffer, attrs []slog.Attr, depth int) {
	indent := strings.Repeat("  ", depth)
	first := true

	for _, a := range attrs {
		a.Value = a.Value.Resolve()
		if a.Equal(slog.Attr{}) {
			continue
		}

		if !first {
			buf.WriteByte(',')
		}

		first = false

		buf.WriteString("\n" + indent)
		buf.WriteString(colorGray + a.Key + colorReset + ": ")

		switch {
		case a.Value.Kind() == slog.KindGroup:
			buf.WriteString("{")
			h.writeObject(buf, a.Value.Group(), depth+1)
			buf.WriteString("\n" + indent + "}")

		case a.Key == slog.LevelKey && depth == 1:
			label := a.Value.String()
			buf.WriteString(levelColor(label) + label + colorReset)

		case a.Value.Kind() == slog.KindAny && a.Value.Any() == nil:
			buf.WriteString(colorGray + "null" + colorReset)

		default:
			writeValue(buf, a.Value)
		}
	}
}
