package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultRoot is the directory created when Allocate is called without a
// base directory.
const DefaultRoot = "outputs"

// Options controls how a workspace directory is allocated.
type Options struct {
	// BaseDir is the parent directory for the new workspace root. When empty
	// a plain "outputs" directory is created instead and Subdirs and Prefix
	// are ignored.
	BaseDir string
	// Subdirs are created inside the workspace root, in order.
	Subdirs []string
	// Prefix switches naming from "yyyymmdd_NNN" to "<prefix>1", "<prefix>2", ...
	Prefix string
}

// Allocator creates uniquely named workspace directories.
type Allocator interface {
	Allocate(opts Options) (*Workspace, error)
}

// DirAllocator is the default filesystem-backed Allocator.
type DirAllocator struct{}

// Allocate creates a fresh workspace directory under opts.BaseDir, named
// either by prefix probing or by date tag and index, then creates the
// requested subdirectories inside it. Directory creation is idempotent;
// filesystem errors propagate without retry.
func (DirAllocator) Allocate(opts Options) (*Workspace, error) {
	if opts.BaseDir == "" {
		if err := os.MkdirAll(DefaultRoot, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", DefaultRoot, err)
		}
		return newWorkspace(DefaultRoot, nil), nil
	}
	if err := os.MkdirAll(opts.BaseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create base dir %s: %w", opts.BaseDir, err)
	}

	var root string
	var err error
	if opts.Prefix != "" {
		root, err = nextNumberedDir(opts.BaseDir, opts.Prefix)
	} else {
		root, err = nextTimestampedDir(opts.BaseDir)
	}
	if err != nil {
		return nil, err
	}

	for _, name := range opts.Subdirs {
		if err := os.Mkdir(filepath.Join(root, name), 0o755); err != nil && !errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("create subdir %s: %w", name, err)
		}
	}
	return newWorkspace(root, opts.Subdirs), nil
}

func nextTimestampedDir(baseDir string) (string, error) {
	tag := CurrentDateTag()
	name := FormatName(tag, NextIndex(baseDir, tag))
	path := filepath.Join(baseDir, name)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", fmt.Errorf("create workspace %s: %w", name, err)
	}
	return path, nil
}

// nextNumberedDir probes <prefix>1, <prefix>2, ... for the first name that
// does not exist yet. The check and the create are not atomic; two processes
// racing on the same baseDir and prefix may pick the same slot.
func nextNumberedDir(baseDir, prefix string) (string, error) {
	for i := 1; ; i++ {
		path := filepath.Join(baseDir, fmt.Sprintf("%s%d", prefix, i))
		_, err := os.Stat(path)
		if err == nil {
			continue
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", path, err)
		}
		if err := os.MkdirAll(path, 0o755); err != nil {
			return "", fmt.Errorf("create workspace %s: %w", filepath.Base(path), err)
		}
		return path, nil
	}
}
