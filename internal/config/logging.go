package config

import (
	"log/slog"

	"git.home.luguber.info/inful/apidocgen/internal/foundation/normalization"
)

// LogLevel enumerates the supported logging levels.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

var logLevelNormalizer = normalization.NewNormalizer(map[string]LogLevel{
	"debug": LogLevelDebug,
	"info":  LogLevelInfo,
	"warn":  LogLevelWarn,
	"error": LogLevelError,
}, LogLevelInfo)

func NormalizeLogLevel(raw string) LogLevel {
	return logLevelNormalizer.Normalize(raw)
}

// SlogLevel maps a LogLevel to its slog equivalent.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	}
	return slog.LevelInfo
}

// LogFormat enumerates the supported log output formats.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

var logFormatNormalizer = normalization.NewNormalizer(map[string]LogFormat{
	"json": LogFormatJSON,
	"text": LogFormatText,
}, LogFormatText)

func NormalizeLogFormat(raw string) LogFormat {
	return logFormatNormalizer.Normalize(raw)
}

// Newline enumerates the output newline styles.
type Newline string

const (
	NewlineLF   Newline = "lf"
	NewlineCRLF Newline = "crlf"
)

var newlineNormalizer = normalization.NewNormalizer(map[string]Newline{
	"lf":   NewlineLF,
	"crlf": NewlineCRLF,
}, NewlineLF)

func NormalizeNewline(raw string) Newline {
	return newlineNormalizer.Normalize(raw)
}
