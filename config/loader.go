package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	ktoml "github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Loader reads one configuration file format into a map. The root of the
// document must be an object.
type Loader interface {
	Load(path string) (map[string]any, error)
	// Supports reports whether this loader handles the file at path.
	Supports(path string) bool
	// Name identifies the loader in error messages.
	Name() string
}

type parserLoader struct {
	name   string
	exts   []string
	parser koanf.Parser
}

// NewJSONLoader reads .json files.
func NewJSONLoader() Loader {
	return &parserLoader{name: "json", exts: []string{".json"}, parser: kjson.Parser()}
}

// NewYAMLLoader reads .yaml and .yml files.
func NewYAMLLoader() Loader {
	return &parserLoader{name: "yaml", exts: []string{".yaml", ".yml"}, parser: kyaml.Parser()}
}

// NewTOMLLoader reads .toml files.
func NewTOMLLoader() Loader {
	return &parserLoader{name: "toml", exts: []string{".toml"}, parser: ktoml.Parser()}
}

func (l *parserLoader) Name() string { return l.name }

func (l *parserLoader) Supports(path string) bool {
	return slices.Contains(l.exts, strings.ToLower(filepath.Ext(path)))
}

func (l *parserLoader) Load(path string) (map[string]any, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), l.parser); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("parse %s config %s: %w", l.name, path, err)
	}
	return k.Raw(), nil
}
