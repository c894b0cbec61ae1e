// Package logging provides the minimal logging facade used around the LSSS core.
//
// The core itself never logs: splitting and reconstruction are pure functions.
// Logging enters only through lsss.NewLogTracer and the lsss command, both of
// which accept the Logger interface defined here.
//
// # Logger Interface
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// # Implementations
//
//	logger := logging.New(nil)                            // slog.Default()
//	logger = logging.NewText(os.Stderr, slog.LevelDebug)  // text handler
//	logger = logging.Nop()                                // discards everything
//
// # Redaction
//
// Shares and secrets must never reach a log record. When a record refers to
// one, log the placeholder instead:
//
//	logger.Debug(ctx, "split done", logging.Redacted("shares"), "rows", 3)
//	// shares="[redacted]" rows=3
package logging
