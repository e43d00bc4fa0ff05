package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix    = "MINCUT_"
	configEnvVar = "MINCUT_CONFIG"
)

// Loader layers configuration sources.
type Loader struct {
	k           *koanf.Koanf
	configPaths []string
	explicit    string
	envPrefix   string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// NewLoader creates a loader searching ./mincut.yaml and ./config/mincut.yaml.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k:           koanf.New("."),
		configPaths: []string{"mincut.yaml", "config/mincut.yaml"},
		envPrefix:   envPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// WithConfigPaths replaces the optional search paths.
func WithConfigPaths(paths ...string) LoaderOption {
	return func(l *Loader) {
		l.configPaths = paths
	}
}

// WithFile requires the given file; a missing file is an error.
func WithFile(path string) LoaderOption {
	return func(l *Loader) {
		l.explicit = path
	}
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// Load resolves configuration with priority defaults < file < environment,
// then validates it.
func (l *Loader) Load() (*Config, error) {
	if err := l.k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if err := l.loadConfigFile(); err != nil {
		return nil, err
	}
	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaults() map[string]any {
	return map[string]any{
		"log.level":       "info",
		"log.format":      "text",
		"log.output":      "stderr",
		"log.file_path":   "logs/mincut.log",
		"log.max_size":    10,
		"log.max_backups": 3,
		"log.max_age":     7,
		"log.compress":    false,

		"input.format": "adjacency",

		"generate.clusters":     2,
		"generate.cluster_size": 8,
		"generate.bridges":      3,
		"generate.probability":  0.3,
		"generate.vertices":     12,
		"generate.max_weight":   1,
		"generate.seed":         1,
	}
}

// loadConfigFile loads the explicit file, then $MINCUT_CONFIG, then the
// first existing search path. Only the explicit file is mandatory.
func (l *Loader) loadConfigFile() error {
	if l.explicit != "" {
		if err := l.k.Load(file.Provider(l.explicit), yaml.Parser()); err != nil {
			return fmt.Errorf("failed to load config %s: %w", l.explicit, err)
		}
		return nil
	}

	candidates := l.configPaths
	if p := os.Getenv(configEnvVar); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("failed to load config %s: %w", path, err)
		}
		return nil
	}

	return nil
}

// loadEnv maps MINCUT_LOG_LEVEL → log.level and MINCUT_GENERATE_MAX_WEIGHT →
// generate.max_weight: the first underscore separates section and key.
func (l *Loader) loadEnv() error {
	return l.k.Load(env.ProviderWithValue(l.envPrefix, ".", func(envKey string, value string) (string, interface{}) {
		key := strings.ToLower(strings.TrimPrefix(envKey, l.envPrefix))
		if key == "config" {
			return "", nil
		}
		section, rest, ok := strings.Cut(key, "_")
		if !ok {
			return key, value
		}

		return section + "." + rest, value
	}), nil)
}
