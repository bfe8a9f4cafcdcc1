package main

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Shengwang-Community/ShengwangBeautyView/config"
)

// NewLogger returns a structured slog.Logger with the given level writing
// JSON to w.
func NewLogger(level slog.Leveler, w io.Writer) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}

// logWriter returns out, teed into a rotating file when cfg.LogFile is set.
func logWriter(cfg *config.Config, out io.Writer) io.Writer {
	if out == nil {
		out = os.Stdout
	}
	if cfg == nil || cfg.LogFile == "" {
		return out
	}
	return io.MultiWriter(out, &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    10, // megabytes
		MaxBackups: 2,
		MaxAge:     28, // days
		Compress:   true,
	})
}
