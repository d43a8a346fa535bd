package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix is the default prefix of environment overrides,
	// e.g. SHORTEST_ENGINE_MAX_POPS → engine.max_pops.
	EnvPrefix = "SHORTEST_"
	// ConfigPathEnv names a YAML file that takes precedence over the search paths.
	ConfigPathEnv = "SHORTEST_CONFIG_PATH"
)

// Loader merges configuration sources, lowest precedence first:
// defaults, the first YAML file found, environment variables.
type Loader struct {
	k           *koanf.Koanf
	configPaths []string
	envPrefix   string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithConfigPaths replaces the YAML search paths.
func WithConfigPaths(paths ...string) LoaderOption {
	return func(l *Loader) { l.configPaths = paths }
}

// WithEnvPrefix replaces EnvPrefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) { l.envPrefix = prefix }
}

// NewLoader returns a Loader searching shortest.yaml and config/shortest.yaml.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k:           koanf.New("."),
		configPaths: []string{"shortest.yaml", "config/shortest.yaml"},
		envPrefix:   EnvPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load merges all sources, unmarshals and validates the result.
// A missing YAML file is not an error; an unreadable or malformed one is.
func (l *Loader) Load() (*Config, error) {
	if err := l.k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}
	if err := l.loadFile(); err != nil {
		return nil, err
	}
	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load is NewLoader().Load().
func Load() (*Config, error) {
	return NewLoader().Load()
}

func defaults() map[string]any {
	return map[string]any{
		"engine.max_pops": 0,
		"engine.workers":  0,

		"log.level":       "warn",
		"log.format":      "json",
		"log.output":      "stderr",
		"log.max_size":    100,
		"log.max_backups": 3,
		"log.max_age":     7,
		"log.compress":    true,

		"metrics.enabled":   false,
		"metrics.namespace": "shortest",
		"metrics.subsystem": "dijkstra",
	}
}

func (l *Loader) loadFile() error {
	paths := l.configPaths
	if p := os.Getenv(ConfigPathEnv); p != "" {
		paths = append([]string{p}, paths...)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: stat %s: %w", path, err)
		}
		if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("config: load %s: %w", path, err)
		}

		return nil
	}

	return nil
}

// loadEnv maps PREFIX_SECTION_FIELD_NAME to section.field_name: only the
// first underscore after the prefix separates the section.
func (l *Loader) loadEnv() error {
	return l.k.Load(env.ProviderWithValue(l.envPrefix, ".", func(key, value string) (string, any) {
		key = strings.ToLower(strings.TrimPrefix(key, l.envPrefix))
		section, field, ok := strings.Cut(key, "_")
		if !ok {
			return "", nil
		}

		return section + "." + field, value
	}), nil)
}
