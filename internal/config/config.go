// Package config holds the mincut command configuration and its loader.
package config

import (
	"fmt"
	"strings"
)

// Config is the top-level configuration.
type Config struct {
	Log      LogConfig      `koanf:"log"`
	Input    InputConfig    `koanf:"input"`
	Generate GenerateConfig `koanf:"generate"`
}

// LogConfig controls the slog handler and its destination.
type LogConfig struct {
	Level      string `koanf:"level"`     // debug, info, warn, error
	Format     string `koanf:"format"`    // json, text
	Output     string `koanf:"output"`    // stdout, stderr, file
	FilePath   string `koanf:"file_path"` // used when output is file
	MaxSize    int    `koanf:"max_size"`  // MB
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"` // days
	Compress   bool   `koanf:"compress"`
}

// InputConfig selects how graph files are parsed.
type InputConfig struct {
	Format string `koanf:"format"` // adjacency, triples
}

// GenerateConfig drives the generate command.
type GenerateConfig struct {
	Clusters    int     `koanf:"clusters"`     // number of dense clusters
	ClusterSize int     `koanf:"cluster_size"` // nodes per cluster
	Bridges     int     `koanf:"bridges"`      // unit edges between consecutive clusters
	Probability float64 `koanf:"probability"`  // random-sparse mode when clusters < 2
	Vertices    int     `koanf:"vertices"`     // random-sparse node count
	MaxWeight   int64   `koanf:"max_weight"`   // weights drawn from [1, max_weight]
	Seed        int64   `koanf:"seed"`
}

// Validate checks value domains and collects every violation.
func (c *Config) Validate() error {
	var errs []string

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level must be one of: debug, info, warn, error, got %q", c.Log.Level))
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		errs = append(errs, fmt.Sprintf("log.format must be json or text, got %q", c.Log.Format))
	}
	switch c.Log.Output {
	case "stdout", "stderr", "file":
	default:
		errs = append(errs, fmt.Sprintf("log.output must be one of: stdout, stderr, file, got %q", c.Log.Output))
	}

	if c.Input.Format != "adjacency" && c.Input.Format != "triples" {
		errs = append(errs, fmt.Sprintf("input.format must be adjacency or triples, got %q", c.Input.Format))
	}

	errs = append(errs, c.Generate.problems()...)

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}

	return nil
}

// Validate checks the generate section on its own, e.g. after command-line
// overrides have been merged into it.
func (g GenerateConfig) Validate() error {
	if errs := g.problems(); len(errs) > 0 {
		return fmt.Errorf("invalid generate settings: %s", strings.Join(errs, "; "))
	}

	return nil
}

func (g GenerateConfig) problems() []string {
	var errs []string
	if g.Clusters == 1 || g.Clusters < 0 {
		errs = append(errs, fmt.Sprintf("generate.clusters must be 0 or >= 2, got %d", g.Clusters))
	}
	if g.Probability < 0 || g.Probability > 1 {
		errs = append(errs, fmt.Sprintf("generate.probability must be in [0,1], got %g", g.Probability))
	}
	if g.MaxWeight < 1 {
		errs = append(errs, fmt.Sprintf("generate.max_weight must be >= 1, got %d", g.MaxWeight))
	}

	return errs
}
