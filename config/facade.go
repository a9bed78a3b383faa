package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/mitchellh/mapstructure"
)

// Facade selects a loader by file extension and applies strict schema
// validation on top. The zero loader set is replaced with the JSON, YAML and
// TOML loaders.
type Facade struct {
	loaders   []Loader
	envPrefix string
}

// Option configures a Facade.
type Option func(*Facade)

// WithLoaders replaces the default loader set.
func WithLoaders(loaders ...Loader) Option {
	return func(f *Facade) { f.loaders = loaders }
}

// WithEnvOverride overlays environment variables on every loaded file.
// A variable PREFIX_SERVER__PORT overrides the "server.port" key.
func WithEnvOverride(prefix string) Option {
	return func(f *Facade) { f.envPrefix = prefix }
}

// NewFacade returns a Facade with the given options applied.
func NewFacade(opts ...Option) *Facade {
	f := &Facade{}
	for _, o := range opts {
		o(f)
	}
	if len(f.loaders) == 0 {
		f.loaders = []Loader{NewJSONLoader(), NewYAMLLoader(), NewTOMLLoader()}
	}
	return f
}

// RegisterLoader appends a loader to the lookup order.
func (f *Facade) RegisterLoader(l Loader) {
	f.loaders = append(f.loaders, l)
}

// LoadMap loads path with the first loader that supports it and returns the
// raw key/value map without schema validation.
func (f *Facade) LoadMap(path string) (map[string]any, error) {
	var loader Loader
	for _, l := range f.loaders {
		if l.Supports(path) {
			loader = l
			break
		}
	}
	if loader == nil {
		return nil, &UnsupportedFormatError{Path: path, Supported: f.loaderNames()}
	}
	m, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	if f.envPrefix != "" {
		return overlayEnv(m, f.envPrefix)
	}
	return m, nil
}

func (f *Facade) loaderNames() []string {
	names := make([]string, 0, len(f.loaders))
	for _, l := range f.loaders {
		names = append(names, l.Name())
	}
	return names
}

// overlayEnv merges matching environment variables over the loaded map.
// Double underscores become key separators, mirroring env naming limits.
func overlayEnv(m map[string]any, prefix string) (map[string]any, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(m, "."), nil); err != nil {
		return nil, err
	}
	err := k.Load(env.Provider(prefix, "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(prefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("env override: %w", err)
	}
	return k.Raw(), nil
}

// Defaulter fills unset fields before validation.
type Defaulter interface{ SetDefaults() }

// Validator checks a decoded configuration.
type Validator interface{ Validate() error }

// Load reads path through the façade and decodes it into T with strict type
// checking: unknown keys and type mismatches are rejected, and strings are
// never coerced into numbers or booleans. When *T implements Defaulter or
// Validator the hooks run after decoding, defaults first.
func Load[T any](f *Facade, path string) (*T, error) {
	m, err := f.LoadMap(path)
	if err != nil {
		return nil, err
	}
	var cfg T
	if err := decodeStrict(m, &cfg); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	if d, ok := any(&cfg).(Defaulter); ok {
		d.SetDefaults()
	}
	if v, ok := any(&cfg).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("validate %s: %w", path, err)
		}
	}
	return &cfg, nil
}

func decodeStrict(m map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(m)
}

// UnsupportedFormatError reports a path no registered loader can read.
type UnsupportedFormatError struct {
	Path      string
	Supported []string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported config format: %s (supported loaders: %v)", e.Path, e.Supported)
}
