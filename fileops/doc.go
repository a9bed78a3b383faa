// Package fileops searches for files by glob pattern or extension and copies
// or moves them while preserving their directory layout relative to a base
// directory. Every transfer stamps the destination with a small plain-text
// metadata file describing the operation.
package fileops
