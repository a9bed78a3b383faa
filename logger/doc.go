// Package logger provides leveled logging for the toolkit. The Logger
// interface decouples callers from the zerolog-backed implementation, and a
// Factory caches configured loggers by name and output directory.
package logger
