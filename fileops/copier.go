package fileops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Copier transfers files while preserving their directory structure relative
// to a base directory.
type Copier interface {
	Copy(files []string, dest, baseDir string) ([]string, error)
	Move(files []string, dest, baseDir string) ([]string, error)
	// MirrorStructure creates only the directory skeleton under dest and
	// returns the resolved (source, destination) path pairs.
	MirrorStructure(files []string, dest, baseDir string) ([]string, []string, error)
}

// StructureCopier is the default Copier. Every Copy or Move writes a
// plain-text metadata stamp into the destination root recording the source,
// destination, time, file count and an operation id.
type StructureCopier struct{}

// Copy copies files into dest. Each file's path relative to baseDir is
// recreated under dest; files outside baseDir, or all files when baseDir is
// empty, land in dest under their base name. Mode and mtime are preserved.
func (StructureCopier) Copy(files []string, dest, baseDir string) ([]string, error) {
	return transfer(files, dest, baseDir, false)
}

// Move behaves like Copy but removes the source files. A plain rename is
// attempted first, with a copy-and-remove fallback across devices.
func (StructureCopier) Move(files []string, dest, baseDir string) ([]string, error) {
	return transfer(files, dest, baseDir, true)
}

func transfer(files []string, dest, baseDir string, move bool) ([]string, error) {
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return nil, fmt.Errorf("create dest %s: %w", dest, err)
	}
	transferred := make([]string, 0, len(files))
	for _, src := range files {
		dst, err := destPath(src, dest, baseDir)
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return nil, fmt.Errorf("create parent for %s: %w", dst, err)
		}
		if move {
			err = moveFile(src, dst)
		} else {
			err = copyFile(src, dst)
		}
		if err != nil {
			return nil, err
		}
		transferred = append(transferred, dst)
	}
	op := "copy"
	if move {
		op = "move"
	}
	if err := writeStamp(dest, baseDir, op, len(transferred)); err != nil {
		return nil, err
	}
	return transferred, nil
}

// MirrorStructure resolves every file against baseDir like Copy does but
// creates only the parent directories, leaving the files untouched.
func (StructureCopier) MirrorStructure(files []string, dest, baseDir string) ([]string, []string, error) {
	srcs := make([]string, 0, len(files))
	dsts := make([]string, 0, len(files))
	for _, src := range files {
		abs, err := filepath.Abs(src)
		if err != nil {
			return nil, nil, err
		}
		dst, err := destPath(src, dest, baseDir)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create parent for %s: %w", dst, err)
		}
		srcs = append(srcs, abs)
		dsts = append(dsts, dst)
	}
	return srcs, dsts, nil
}

func destPath(src, dest, baseDir string) (string, error) {
	abs, err := filepath.Abs(src)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", src, err)
	}
	rel := filepath.Base(abs)
	if baseDir != "" {
		base, err := filepath.Abs(baseDir)
		if err != nil {
			return "", fmt.Errorf("resolve base dir %s: %w", baseDir, err)
		}
		if r, err := filepath.Rel(base, abs); err == nil && !strings.HasPrefix(r, "..") {
			rel = r
		}
	}
	return filepath.Join(dest, rel), nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dst, err)
	}
	return os.Chtimes(dst, time.Now(), info.ModTime())
}

func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

func writeStamp(dest, baseDir, op string, count int) error {
	src := baseDir
	if src == "" {
		src = "(unset)"
	}
	content := fmt.Sprintf("operation: %s\nid: %s\nsource: %s\ndestination: %s\ntime: %s\nfiles: %d\n",
		op, uuid.NewString(), src, dest, time.Now().Format("2006-01-02 15:04:05"), count)
	name := fmt.Sprintf("_%s_metadata.txt", op)
	if err := os.WriteFile(filepath.Join(dest, name), []byte(content), 0o644); err != nil {
		return fmt.Errorf("write metadata stamp: %w", err)
	}
	return nil
}
