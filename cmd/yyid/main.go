package main

import (
	"os"

	"github.com/rzbill/yyid/internal/cli"
	logpkg "github.com/rzbill/yyid/pkg/log"
)

func main() {
	// Respect YYID_LOG_LEVEL / YYID_LOG_FORMAT for CLI diagnostics.
	level := os.Getenv("YYID_LOG_LEVEL")
	parsed, err := logpkg.ParseLevel(level)
	if err != nil || level == "" {
		parsed = logpkg.InfoLevel
	}
	format, _ := logpkg.ParseFormat(os.Getenv("YYID_LOG_FORMAT"))
	logger := logpkg.NewLogger(logpkg.WithLevel(parsed), logpkg.WithFormat(format))

	if err := cli.NewRootCommand(logger).Execute(); err != nil {
		logger.Error("command failed", logpkg.Err(err))
		os.Exit(1)
	}
}
