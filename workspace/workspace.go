package workspace

import (
	"fmt"
	"path/filepath"
)

// Workspace is a handle to an allocated root directory and its named
// subdirectories. Values are immutable once returned by an Allocator; the
// directories on disk outlive the handle.
type Workspace struct {
	root    string
	order   []string
	subdirs map[string]string
}

func newWorkspace(root string, subdirs []string) *Workspace {
	w := &Workspace{root: root, subdirs: make(map[string]string, len(subdirs))}
	for _, name := range subdirs {
		if _, ok := w.subdirs[name]; ok {
			continue
		}
		w.order = append(w.order, name)
		w.subdirs[name] = filepath.Join(root, name)
	}
	return w
}

// Root returns the workspace root directory.
func (w *Workspace) Root() string { return w.root }

// Subdir resolves a named subdirectory to its path. Names the workspace was
// not allocated with yield a *SubdirError listing the available names.
func (w *Workspace) Subdir(name string) (string, error) {
	if p, ok := w.subdirs[name]; ok {
		return p, nil
	}
	return "", &SubdirError{Name: name, Available: w.Subdirs()}
}

// Subdirs returns the subdirectory names in allocation order.
func (w *Workspace) Subdirs() []string {
	return append([]string(nil), w.order...)
}

func (w *Workspace) String() string {
	return fmt.Sprintf("Workspace(root=%s, subdirs=%v)", w.root, w.order)
}

// SubdirError reports a lookup of a subdirectory the workspace does not have.
type SubdirError struct {
	Name      string
	Available []string
}

func (e *SubdirError) Error() string {
	return fmt.Sprintf("workspace has no subdir %q, available: %v", e.Name, e.Available)
}
