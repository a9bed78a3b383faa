package pochi

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pochi-dev/pochi/config"
	"github.com/pochi-dev/pochi/fileops"
	"github.com/pochi-dev/pochi/logger"
	"github.com/pochi-dev/pochi/timer"
	"github.com/pochi-dev/pochi/workspace"
)

// DirMaker creates directories.
type DirMaker interface {
	// Make creates path, with missing parents when recursive is set, and
	// returns the path. An already existing directory is not an error.
	Make(path string, recursive bool) (string, error)
}

type osDirMaker struct{}

func (osDirMaker) Make(path string, recursive bool) (string, error) {
	var err error
	if recursive {
		err = os.MkdirAll(path, 0o755)
	} else {
		err = os.Mkdir(path, 0o755)
		if errors.Is(err, fs.ErrExist) {
			err = nil
		}
	}
	if err != nil {
		return "", fmt.Errorf("mkdir %s: %w", path, err)
	}
	return path, nil
}

// Pochi is the toolkit façade. New fills any collaborator left unset with
// its default implementation.
type Pochi struct {
	dirs      DirMaker
	allocator workspace.Allocator
	config    *config.Facade
	loggers   *logger.Factory
	finder    fileops.Finder
	copier    fileops.Copier
}

// New returns a façade with the given options applied.
func New(opts ...Option) *Pochi {
	p := &Pochi{}
	for _, o := range opts {
		o(p)
	}
	if p.dirs == nil {
		p.dirs = osDirMaker{}
	}
	if p.allocator == nil {
		p.allocator = workspace.DirAllocator{}
	}
	if p.config == nil {
		p.config = config.NewFacade()
	}
	if p.loggers == nil {
		p.loggers = logger.NewFactory()
	}
	if p.finder == nil {
		p.finder = fileops.GlobFinder{}
	}
	if p.copier == nil {
		p.copier = fileops.StructureCopier{}
	}
	return p
}

// Mkdir creates path together with any missing parents and returns it.
func (p *Pochi) Mkdir(path string) (string, error) {
	return p.dirs.Make(path, true)
}

// MkdirFlat creates path without creating parents.
func (p *Pochi) MkdirFlat(path string) (string, error) {
	return p.dirs.Make(path, false)
}

// NewWorkspace allocates a fresh uniquely named workspace directory.
func (p *Pochi) NewWorkspace(opts workspace.Options) (*workspace.Workspace, error) {
	return p.allocator.Allocate(opts)
}

// Config returns the configuration loader façade, for typed loads through
// config.Load.
func (p *Pochi) Config() *config.Facade { return p.config }

// LoadConfigMap loads a configuration file as a raw key/value map.
func (p *Pochi) LoadConfigMap(path string) (map[string]any, error) {
	return p.config.LoadMap(path)
}

// Logger returns a cached console logger, with a file sink when logDir is
// non-empty.
func (p *Pochi) Logger(name, logDir string, level logger.Level) (logger.Logger, error) {
	return p.loggers.Create(name, logDir, level)
}

// StartTimer begins a wall-clock measurement reporting through log.
func (p *Pochi) StartTimer(name string, log logger.Logger) *timer.Timer {
	return timer.Start(name, log)
}

// FindFiles searches dir for files by glob pattern or extension.
func (p *Pochi) FindFiles(dir string, opts fileops.FindOptions) ([]string, error) {
	return p.finder.Find(dir, opts)
}

// CopyFiles copies files into dest, recreating their layout relative to baseDir.
func (p *Pochi) CopyFiles(files []string, dest, baseDir string) ([]string, error) {
	return p.copier.Copy(files, dest, baseDir)
}

// MoveFiles moves files into dest, recreating their layout relative to baseDir.
func (p *Pochi) MoveFiles(files []string, dest, baseDir string) ([]string, error) {
	return p.copier.Move(files, dest, baseDir)
}
