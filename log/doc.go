// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable time formatting, caller information,
// and output formats that are applied at logger creation time using
// functional options.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("parse complete", slog.String("rule", "odataUri"))
//	logger.Error("parse failed", slog.Any("error", err))
//
// # Configuration
//
// Configure the logger using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// The process logger used by the package-level functions is configured
// with [Config].
//
// # Adding Attributes
//
// Attributes can be added to the logger to be included in all subsequent
// log messages using the [Logger.With] method:
//
//	logger = logger.With(slog.String("rule", "commonExpr"))
//	logger.Trace("cache lookup") // includes rule=commonExpr
//
// [Input] and [Span] build attributes for parser input text and byte ranges.
//
// # Context-Aware Logging
//
// Each logging level has both a context-aware and context-unaware variant.
// Context-unaware functions internally call their context-aware counterparts
// using [DefaultContextProvider], which returns [context.TODO] by default.
//
// # Supported Levels
//
// The package supports five log levels: [LevelTrace], [LevelDebug],
// [LevelInfo], [LevelWarn], and [LevelError]. Messages below the configured
// level are discarded.
//
// # Time Formatting
//
// Time formatting is configurable using [WithTimeLayout]. You can
// specify any named layout supported by the [time] package (such as
// "RFC3339" or "RFC3339Nano") or provide a custom layout string.
// The layout "none" omits timestamps.
//
// # Output Formats
//
// Two output formats are supported: [FormatJSON] (default) and
// [FormatText]. Either can be pretty printed with colors using [WithPretty].
package log
