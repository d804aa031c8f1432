// Package slogx carries small helpers for building slog attributes.
package slogx

import "log/slog"

// KeyLoggerName is the attribute key identifying a named logger.
const KeyLoggerName = "logger"

// Error returns an attribute with key "error" and the error's message.
func Error(err error) slog.Attr {
	return slog.String("error", err.Error())
}

// LoggerName returns an attribute naming the logger that produced a record.
func LoggerName(name string) slog.Attr {
	return slog.String(KeyLoggerName, name)
}
