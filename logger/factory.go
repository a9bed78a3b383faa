package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Factory creates and caches loggers. The cache is keyed by name and log
// directory so repeated lookups return the same handle; it belongs to the
// Factory instance rather than the process.
type Factory struct {
	cache map[string]Logger
}

// NewFactory returns a Factory with an empty cache.
func NewFactory() *Factory {
	return &Factory{cache: make(map[string]Logger)}
}

// Create returns a logger writing to the console and, when logDir is
// non-empty, also to logDir/<name>.log as JSON lines. Dots in the name are
// replaced with underscores for the file name. The log directory must exist;
// a file open failure propagates.
func (f *Factory) Create(name, logDir string, level Level) (Logger, error) {
	key := name + ":" + logDir
	if l, ok := f.cache[key]; ok {
		return l, nil
	}

	var sink *os.File
	if logDir != "" {
		path := filepath.Join(logDir, strings.ReplaceAll(name, ".", "_")+".log")
		fh, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		sink = fh
	}

	var l Logger
	if sink != nil {
		l = newZerolog(name, sink, level)
	} else {
		l = newZerolog(name, nil, level)
	}
	f.cache[key] = l
	return l, nil
}
