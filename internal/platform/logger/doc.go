// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels. Request-scoped loggers are carried in the context
// so handlers log with the trace id attached by the trace middleware.
package logger
