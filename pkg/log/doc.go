// Package log provides the structured logging facade for yyid binaries.
//
// # Overview
//
// The package exposes a small leveled Logger with a typed Field API for
// structured context, backed by Go's standard library slog with either a
// text or JSON handler. The yyid library itself never logs; this facade
// exists for the CLI and other command glue.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.DebugLevel),
//	    log.WithFormat(log.JSONFormat),
//	)
//	l = l.With(log.Component("cli"))
//	l.Info("generated", log.Int("count", 3))
package log
