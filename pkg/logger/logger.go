package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/limbo/lifeboard/pkg/cleanup"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logger configuration
type Config struct {
	// debug, info, warn or error
	Level string
	// text or json
	Format string
	// File additionally receives every record, rotated by size. Empty disables it
	File string
}

// New builds a slog logger backed by charmbracelet/log.
func New(cfg Config, stderr io.Writer) (*slog.Logger, error) {
	writer := stderr
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return nil, err
		}
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		cleanup.Register(&cleanup.Job{
			Name: "closing log file",
			F:    fileWriter.Close,
		})
		writer = io.MultiWriter(stderr, fileWriter)
	}

	handler := log.NewWithOptions(writer, log.Options{
		ReportTimestamp: true,
		Level:           parseLevel(cfg.Level),
		Prefix:          "lifeboard",
	})
	if strings.EqualFold(cfg.Format, "json") {
		handler.SetFormatter(log.JSONFormatter)
	} else {
		handler.SetFormatter(log.TextFormatter)
	}
	return slog.New(handler), nil
}

// Init builds the logger and makes it the slog default.
func Init(cfg Config) error {
	logger, err := New(cfg, os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}

func parseLevel(s string) log.Level {
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel
	}
	return level
}
