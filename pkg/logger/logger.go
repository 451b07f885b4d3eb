package logger

import (
	"log/slog"
	"os"
)

// Log is replaced by Init at startup; the default keeps early callers safe
var Log = slog.Default()

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}
