package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMapJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"epochs": 100, "model": {"name": "resnet"}}`)
	m, err := NewFacade().LoadMap(path)
	require.NoError(t, err)
	assert.EqualValues(t, 100, m["epochs"])
	model, ok := m["model"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "resnet", model["name"])
}

func TestLoadMapYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", "epochs: 100\nlr: 0.01\n")
	m, err := NewFacade().LoadMap(path)
	require.NoError(t, err)
	assert.EqualValues(t, 100, m["epochs"])
	assert.EqualValues(t, 0.01, m["lr"])
}

func TestLoadMapYML(t *testing.T) {
	path := writeFile(t, "config.yml", "name: run\n")
	m, err := NewFacade().LoadMap(path)
	require.NoError(t, err)
	assert.Equal(t, "run", m["name"])
}

func TestLoadMapTOML(t *testing.T) {
	path := writeFile(t, "config.toml", "epochs = 100\n\n[model]\nname = \"resnet\"\n")
	m, err := NewFacade().LoadMap(path)
	require.NoError(t, err)
	assert.EqualValues(t, 100, m["epochs"])
}

func TestLoadMapUnsupportedFormat(t *testing.T) {
	path := writeFile(t, "config.ini", "[section]\nkey=value\n")
	_, err := NewFacade().LoadMap(path)
	var uerr *UnsupportedFormatError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, []string{"json", "yaml", "toml"}, uerr.Supported)
	assert.Contains(t, err.Error(), "config.ini")
}

func TestLoadMapMissingFile(t *testing.T) {
	_, err := NewFacade().LoadMap(filepath.Join(t.TempDir(), "nope.json"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadMapMalformed(t *testing.T) {
	path := writeFile(t, "config.json", `{"broken":`)
	_, err := NewFacade().LoadMap(path)
	assert.Error(t, err)
}

func TestLoadMapNonObjectRoot(t *testing.T) {
	path := writeFile(t, "config.json", `[1, 2, 3]`)
	_, err := NewFacade().LoadMap(path)
	assert.Error(t, err)
}

type trainConfig struct {
	Epochs int     `json:"epochs"`
	LR     float64 `json:"lr"`
	Name   string  `json:"name"`
}

func TestLoadTyped(t *testing.T) {
	path := writeFile(t, "train.yaml", "epochs: 10\nlr: 0.1\nname: run\n")
	cfg, err := Load[trainConfig](NewFacade(), path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Epochs)
	assert.Equal(t, 0.1, cfg.LR)
	assert.Equal(t, "run", cfg.Name)
}

func TestLoadRejectsStringForInt(t *testing.T) {
	path := writeFile(t, "train.json", `{"epochs": "100", "lr": 0.1, "name": "run"}`)
	_, err := Load[trainConfig](NewFacade(), path)
	assert.Error(t, err)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, "train.yaml", "epochs: 10\nlr: 0.1\nname: run\nbogus: 1\n")
	_, err := Load[trainConfig](NewFacade(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}

type hookedConfig struct {
	Backend string `json:"backend"`
}

func (c *hookedConfig) SetDefaults() {
	if c.Backend == "" {
		c.Backend = "local"
	}
}

func (c *hookedConfig) Validate() error {
	if c.Backend != "local" && c.Backend != "remote" {
		return errors.New("unknown backend " + c.Backend)
	}
	return nil
}

func TestLoadHooks(t *testing.T) {
	path := writeFile(t, "hooked.json", `{}`)
	cfg, err := Load[hookedConfig](NewFacade(), path)
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Backend)

	bad := writeFile(t, "bad.json", `{"backend": "ftp"}`)
	_, err = Load[hookedConfig](NewFacade(), bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown backend")
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("POCHI_NAME", "from-env")
	path := writeFile(t, "config.yaml", "name: from-file\nepochs: 3\n")
	m, err := NewFacade(WithEnvOverride("POCHI_")).LoadMap(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", m["name"])
	assert.EqualValues(t, 3, m["epochs"])
}

type extraLoader struct{}

func (extraLoader) Name() string              { return "extra" }
func (extraLoader) Supports(path string) bool { return filepath.Ext(path) == ".extra" }
func (extraLoader) Load(path string) (map[string]any, error) {
	return map[string]any{"loaded": true}, nil
}

func TestRegisterLoader(t *testing.T) {
	f := NewFacade()
	f.RegisterLoader(extraLoader{})
	m, err := f.LoadMap("anything.extra")
	require.NoError(t, err)
	assert.Equal(t, true, m["loaded"])
}
