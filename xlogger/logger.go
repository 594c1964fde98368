package xlogger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config describes the diagnostic logger. Reports go to stdout, so logs are
// written to stderr unless another writer is given.
type Config struct {
	Level      string `yaml:"level" json:"level" default:"info"`
	LogType    string `yaml:"log_type" json:"log_type" default:"text"`
	AddSource  bool   `yaml:"add_source" json:"add_source"`
	SourcePath string `yaml:"source_path" json:"source_path"`
}

// New creates a logger writing to stderr.
func New(conf Config) *slog.Logger {
	return NewWithWriter(conf, os.Stderr)
}

// NewWithWriter creates a logger writing to w. Level "off" discards everything.
func NewWithWriter(conf Config, w io.Writer) *slog.Logger {
	if isOff(conf.Level) {
		w = io.Discard
	}

	opts := &slog.HandlerOptions{
		AddSource:   conf.AddSource,
		Level:       getLogLevel(conf.Level),
		ReplaceAttr: replaceAttr(conf),
	}

	return slog.New(getHandler(conf.LogType, w, opts))
}

func isOff(logLevel string) bool {
	switch strings.ToLower(logLevel) {
	case "off", "none", "disabled":
		return true
	default:
		return false
	}
}

func getLogLevel(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getHandler(logType string, w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	switch strings.ToLower(logType) {
	case "json":
		return slog.NewJSONHandler(w, opts)

	default:
		return slog.NewTextHandler(w, opts)
	}
}

func replaceAttr(conf Config) func(groups []string, a slog.Attr) slog.Attr {
	return func(_ []string, attr slog.Attr) slog.Attr {
		if attr.Key != slog.SourceKey {
			return attr
		}

		source, ok := attr.Value.Any().(*slog.Source)
		if !ok || source == nil {
			return attr
		}

		file := source.File
		if len(conf.SourcePath) > 0 {
			if strings.HasPrefix(file, conf.SourcePath) {
				file = strings.TrimPrefix(file, conf.SourcePath)
			} else if index := strings.Index(file, conf.SourcePath); index > 0 {
				file = file[index+len(conf.SourcePath):]
			}
		}

		return slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", file, source.Line))
	}
}
