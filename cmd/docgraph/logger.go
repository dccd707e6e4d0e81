package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/lmittmann/tint"
	"github.com/viant/docgraph/config"
)

func rewriteLogLevel(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey && len(groups) == 0 {
		level, ok := a.Value.Any().(slog.Level)
		if !ok {
			return a
		}
		var levelText string
		switch {
		case level < slog.LevelInfo:
			levelText = "DEBUG"
		case level < slog.LevelWarn:
			levelText = color.GreenString("INFO")
		case level < slog.LevelError:
			levelText = color.YellowString("WARN")
		default:
			levelText = color.RedString("ERROR")
		}
		a.Value = slog.StringValue(levelText)
	}
	return a
}

// newLogger creates logr logger backed by a human readable or JSON slog handler
func newLogger(w io.Writer, options config.Log) (logr.Logger, error) {
	level := slog.LevelInfo
	if options.Level != "" {
		if err := level.UnmarshalText([]byte(options.Level)); err != nil {
			return logr.Discard(), fmt.Errorf("invalid log level %v: %w", options.Level, err)
		}
	}
	var handler slog.Handler
	switch strings.ToLower(options.Format) {
	case config.LogFormatJSON:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	default:
		handler = tint.NewHandler(w, &tint.Options{
			Level:       level,
			TimeFormat:  time.DateTime,
			ReplaceAttr: rewriteLogLevel,
		})
	}
	return logr.FromSlogHandler(handler), nil
}
