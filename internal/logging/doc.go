// Package logging provides structured logging for the mcpdeck CLI.
//
// It builds on log/slog with a TTY-optimized text handler (colorized when
// the output supports it), a JSON handler for machine consumption, and a
// multi handler for writing to several sinks at once (e.g. stderr plus a
// log file).
//
// # Usage
//
//	logger := logging.New(logging.Config{
//	    Level:  slog.LevelDebug,
//	    Format: logging.FormatText,
//	})
//	logger.Info("deployed", "template", "codex_config.toml", "paths", 2)
//
// Loggers travel through context using [NewContext] and [FromContext] so
// commands and the deployment engine share one configured logger.
package logging
