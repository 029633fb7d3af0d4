package logger

import (
	"log/slog"
	"os"
)

// Log has a usable default so packages can log before Init runs (tests, scripts).
var Log = newLogger()

func Init() {
	Log = newLogger()
}

func newLogger() *slog.Logger {
	// JSON handler for production-ready logging
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
