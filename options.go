package pochi

import (
	"github.com/pochi-dev/pochi/config"
	"github.com/pochi-dev/pochi/fileops"
	"github.com/pochi-dev/pochi/logger"
	"github.com/pochi-dev/pochi/workspace"
)

// Option injects a collaborator into the façade.
type Option func(*Pochi)

// WithDirMaker substitutes the directory creation collaborator.
func WithDirMaker(d DirMaker) Option {
	return func(p *Pochi) { p.dirs = d }
}

// WithAllocator substitutes the workspace allocator.
func WithAllocator(a workspace.Allocator) Option {
	return func(p *Pochi) { p.allocator = a }
}

// WithConfig substitutes the configuration loader façade.
func WithConfig(f *config.Facade) Option {
	return func(p *Pochi) { p.config = f }
}

// WithLoggerFactory substitutes the logger factory.
func WithLoggerFactory(f *logger.Factory) Option {
	return func(p *Pochi) { p.loggers = f }
}

// WithFinder substitutes the file finder.
func WithFinder(f fileops.Finder) Option {
	return func(p *Pochi) { p.finder = f }
}

// WithCopier substitutes the file copier.
func WithCopier(c fileops.Copier) Option {
	return func(p *Pochi) { p.copier = c }
}
