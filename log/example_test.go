package log_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/odatauri/log"
)

func Example_basic() {
	logger := log.Make(os.Stdout)
	logger.Info("parse start", slog.String("rule", "odataRelativeUri"))
}

func Example_configuration() {
	logger := log.Make(os.Stdout,
		log.WithLevel(log.LevelTrace),
		log.WithTimeLayout("RFC3339Nano"),
		log.WithCaller(true))

	logger.Trace("cache lookup", slog.Bool("cache_hit", false))
}

func Example_levels() {
	logger := log.Make(os.Stdout, log.WithLevel(log.LevelWarn))

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("deprecated rule name", slog.String("rule", "inlinecount"))
	logger.Error("parse failed", slog.String("error", "syntax error"))
}

func Example_textFormat() {
	logger := log.Make(os.Stdout, log.WithFormat(log.FormatText))
	logger.Info("parse complete", log.Span("match", 0, 14))
}

func Example_withAttributes() {
	logger := log.Make(os.Stdout)
	logger = logger.With(log.Input("source", "People('russell')?$select=Name"))

	logger.Info("parse start")
	logger.Debug("parse complete", slog.String("rule", "odataRelativeUri"))
}

func Example_withContext() {
	type requestIDKey struct{}

	ctx := context.WithValue(context.Background(), requestIDKey{}, "req-789")

	logger := log.Make(os.Stdout)

	logger.InfoContext(ctx, "parse start")
	logger.DebugContext(ctx, "cache bypass", slog.Bool("partial", true))
}
