package fileops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FindOptions selects files either by glob pattern or by extension. At least
// one must be set; Pattern wins when both are given.
type FindOptions struct {
	// Pattern is a glob relative to the search directory; ** matches across
	// directory boundaries.
	Pattern string
	// Extensions filters a recursive walk by file suffix. The leading dot is
	// optional.
	Extensions []string
}

// Finder searches directories for files.
type Finder interface {
	Find(dir string, opts FindOptions) ([]string, error)
}

// GlobFinder is the default Finder, backed by doublestar globbing.
type GlobFinder struct{}

// Find returns the matching regular files under dir, sorted.
func (GlobFinder) Find(dir string, opts FindOptions) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("search dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}
	if opts.Pattern == "" && len(opts.Extensions) == 0 {
		return nil, errors.New("find: either Pattern or Extensions is required")
	}

	var files []string
	if opts.Pattern != "" {
		files, err = findByPattern(dir, opts.Pattern)
	} else {
		files, err = findByExtension(dir, opts.Extensions)
	}
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func findByPattern(dir, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	var files []string
	for _, m := range matches {
		full := filepath.Join(dir, filepath.FromSlash(m))
		if fi, err := os.Stat(full); err == nil && fi.Mode().IsRegular() {
			files = append(files, full)
		}
	}
	return files, nil
}

func findByExtension(dir string, extensions []string) ([]string, error) {
	exts := make([]string, 0, len(extensions))
	for _, e := range extensions {
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts = append(exts, strings.ToLower(e))
	}
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if slices.Contains(exts, strings.ToLower(filepath.Ext(path))) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	return files, nil
}
