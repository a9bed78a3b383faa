// Package config loads structured configuration files. A Facade picks the
// right loader by file extension (JSON, YAML or TOML by default, more can be
// registered) and the generic Load decodes the result into a typed struct
// with strict validation. Environment variable overrides can be layered on
// top of any file.
package config
