package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/cursorrules/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"
)

const (
	// ProjectFile is the optional per-project configuration file.
	ProjectFile = ".cursorrules.toml"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "CURSORRULES_"
)

// Configuration keys, usable in overrides.
const (
	KeyTargetDir     = "target_dir"
	KeySourceDir     = "source_dir"
	KeyDefaultBundle = "default_bundle"
	KeyStatusBundle  = "status_bundle"
	KeyNoColor       = "no_color"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config is the effective configuration of one run.
type Config struct {
	TargetDir     string `koanf:"target_dir" toml:"target_dir"`
	SourceDir     string `koanf:"source_dir" toml:"source_dir"`
	DefaultBundle string `koanf:"default_bundle" toml:"default_bundle"`
	StatusBundle  string `koanf:"status_bundle" toml:"status_bundle"`
	NoColor       bool   `koanf:"no_color" toml:"no_color"`
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Load builds the configuration for projectDir. overrides may be nil.
func Load(projectDir string, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Project file
	path := filepath.Join(projectDir, ProjectFile)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load project config from %s", path).
				WithDetail("path", path)
		}
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.TargetDir = strings.TrimSpace(c.TargetDir)
	c.DefaultBundle = strings.TrimSpace(c.DefaultBundle)
	c.StatusBundle = strings.TrimSpace(c.StatusBundle)

	if c.TargetDir == "" {
		return errors.New(errors.ErrConfigParse, "target_dir must not be empty")
	}
	if c.DefaultBundle == "" {
		return errors.New(errors.ErrConfigParse, "default_bundle must not be empty")
	}
	if c.StatusBundle == "" {
		c.StatusBundle = c.DefaultBundle
	}
	return nil
}

// TargetPath resolves the rules directory against projectDir.
func (c *Config) TargetPath(projectDir string) string {
	if filepath.IsAbs(c.TargetDir) {
		return filepath.Clean(c.TargetDir)
	}
	return filepath.Join(projectDir, c.TargetDir)
}

// TOML renders the configuration in project-file format.
func (c *Config) TOML() (string, error) {
	data, err := gotoml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return string(data), nil
}
