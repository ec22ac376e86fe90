// Package logger provides structured logging functionality for the
// application, built on log/slog with a JSON handler. Loggers travel on
// the request context so lower layers inherit request-scoped attributes.
package logger
