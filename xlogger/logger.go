// Package xlogger builds the slog loggers used by the shamirkit tools.
package xlogger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Level   string `yaml:"level" json:"level" default:"info"`
	LogType string `yaml:"log_type" json:"log_type" default:"text"`
	// Output is "stderr" or "stdout". Results go to stdout, so logs default to stderr.
	Output     string `yaml:"output" json:"output" default:"stderr"`
	AddSource  bool   `yaml:"add_source" json:"add_source"`
	SourcePath string `yaml:"source_path" json:"source_path"`
}

func New(conf Config) *slog.Logger {
	return NewWithWriter(conf, getWriter(conf.Output))
}

// NewWithWriter is New with an explicit destination; conf.Output is ignored.
func NewWithWriter(conf Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource:   conf.AddSource,
		Level:       getLogLevel(conf.Level),
		ReplaceAttr: replaceAttr(conf),
	}

	return slog.New(getHandler(conf.LogType, w, opts))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ValidLevel reports whether level is one of the recognised level names.
func ValidLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

func getLogLevel(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getWriter(output string) io.Writer {
	if strings.ToLower(output) == "stdout" {
		return os.Stdout
	}
	return os.Stderr
}

func getHandler(logType string, w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	if strings.ToLower(logType) == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
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

		return slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", trimSource(source.File, conf.SourcePath), source.Line))
	}
}

// trimSource cuts everything up to and including prefix from file.
func trimSource(file, prefix string) string {
	if prefix == "" {
		return file
	}

	if strings.HasPrefix(file, prefix) {
		return strings.TrimPrefix(file, prefix)
	}

	if index := strings.Index(file, prefix); index > 0 {
		return file[index+len(prefix):]
	}

	return file
}
