package log

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	c := apply(config{},
		WithLevel(LevelWarn),
		WithFormat(FormatText),
		WithCaller(true),
		WithPretty(false),
	)

	assert.NotNil(t, c.mutex)
	assert.Equal(t, LevelWarn, c.level)
	assert.Equal(t, FormatText, c.format)
	assert.True(t, c.caller)
	assert.False(t, c.pretty)

	c = WithDefaults(nil)(c)

	assert.Equal(t, DefaultLevel, c.level)
	assert.Equal(t, DefaultFormat, c.format)
	assert.Equal(t, DefaultCaller, c.caller)
	assert.Equal(t, DefaultPretty, c.pretty)
	assert.NotNil(t, c.output)
}

func TestClone_SeparatesMutex(t *testing.T) {
	c := makeConfig(nil, WithLevel(LevelDebug))
	d := c.clone(WithLevel(LevelError))

	assert.NotSame(t, c.mutex, d.mutex)
	assert.Equal(t, LevelDebug, c.level)
	assert.Equal(t, LevelError, d.level)
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "trace", LevelTrace.String())
	assert.Equal(t, "error", LevelError.String())
	assert.Equal(t, "info+1", Level(1).String())
	assert.Equal(t, []string{"trace", "debug", "info", "warn", "error"}, slices.Collect(Levels()))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"warn", LevelWarn},
		{"ERROR", LevelError},
		{"info+2", Level(2)},
		{"verbose", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "text", FormatText.String())
	assert.Equal(t, "Format(7)", Format(7).String())
	assert.Equal(t, []string{"json", "text"}, slices.Collect(Formats()))

	assert.Equal(t, FormatText, ParseFormat(" Text "))
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, DefaultFormat, ParseFormat("xml"))
}

func TestFormatTime(t *testing.T) {
	now := time.Date(2023, 10, 15, 14, 30, 45, 123456789, time.UTC)

	tests := []struct {
		layout string
		want   string
	}{
		{"RFC3339", "2023-10-15T14:30:45Z"},
		{"rfc-3339-nano", "2023-10-15T14:30:45.123456789Z"},
		{"ms", "Oct 15 14:30:45.123"},
		{"Kitchen", "2:30PM"},
		{"2006-01-02 15:04", "2023-10-15 14:30"},
		{"", ""},
		{" \t ", ""},
		{"none", ""},
	}

	for _, tt := range tests {
		c := WithTimeLayout(tt.layout)(config{})
		assert.Equal(t, tt.want, c.formatTime(now), tt.layout)
	}
}

func BenchmarkFormatTime(b *testing.B) {
	c := WithTimeLayout("RFC3339Nano")(config{})
	now := time.Now()

	for b.Loop() {
		_ = c.formatTime(now)
	}
}
