package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useDefault(t *testing.T, opts ...Option) *bytes.Buffer {
	t.Helper()

	original := defaultLog

	t.Cleanup(func() { defaultLog = original })

	var buf bytes.Buffer

	defaultLog = Make(&buf, append([]Option{
		WithLevel(LevelTrace), WithFormat(FormatJSON), WithPretty(false),
	}, opts...)...)

	return &buf
}

func TestPackage_LogFunctions(t *testing.T) {
	buf := useDefault(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		fn    func()
		level string
	}{
		{"Trace", func() { Trace("m", slog.String("key", "value")) }, "TRACE"},
		{"TraceContext", func() { TraceContext(ctx, "m", slog.String("key", "value")) }, "TRACE"},
		{"Debug", func() { Debug("m", slog.String("key", "value")) }, "DEBUG"},
		{"Info", func() { Info("m", slog.String("key", "value")) }, "INFO"},
		{"WarnContext", func() { WarnContext(ctx, "m", slog.String("key", "value")) }, "WARN"},
		{"Error", func() { Error("m", slog.String("key", "value")) }, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn()

			var rec map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
			assert.Equal(t, tt.level, rec["level"])
			assert.Equal(t, "m", rec["msg"])
			assert.Equal(t, "value", rec["key"])
		})
	}
}

func TestPackage_CallerIsLogSite(t *testing.T) {
	buf := useDefault(t, WithCaller(true))

	Info("package")
	Default().Info("method")
	Default().InfoContext(context.Background(), "method context")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	for _, line := range lines {
		var rec struct {
			Source struct {
				File string `json:"file"`
			} `json:"source"`
		}

		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		assert.True(t, strings.HasSuffix(rec.Source.File, "pkg_test.go"), rec.Source.File)
	}
}

func TestPackage_Config(t *testing.T) {
	buf := useDefault(t)

	Config(WithLevel(LevelWarn))
	assert.Equal(t, LevelWarn, Default().Level())

	Info("hidden")
	Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	With(slog.String("rule", "odataUri")).Error("tagged")
	assert.Contains(t, buf.String(), `"rule":"odataUri"`)
}
