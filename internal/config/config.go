// Package config provides configuration loading and structs for the Vekta server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug      bool             `yaml:"debug"`
	Server     ServerConfig     `yaml:"server"`
	Embedding  EmbeddingConfig  `yaml:"embedding"`
	Projection ProjectionConfig `yaml:"projection"`
	Similarity SimilarityConfig `yaml:"similarity"`
	Watch      WatchConfig      `yaml:"watch"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// EmbeddingConfig holds vectorizer settings.
type EmbeddingConfig struct {
	// Dimensions is the vector length shared by every record. Values below
	// 1 are clamped up to 1.
	Dimensions int `yaml:"dimensions"`
	// Strategy selects the vectorizer: "charhash" or "wordpos".
	Strategy string `yaml:"strategy"`
}

// ProjectionConfig holds the 3D projection partition bounds and spread.
type ProjectionConfig struct {
	BoundA int     `yaml:"bound_a"`
	BoundB int     `yaml:"bound_b"`
	Scale  float64 `yaml:"scale"`
}

// SimilarityConfig holds similarity and ranking settings.
type SimilarityConfig struct {
	// DefaultMetric is one of cosine, euclidean, manhattan, dot.
	// Unrecognized values fall back to cosine.
	DefaultMetric string `yaml:"default_metric"`
	DefaultLimit  int    `yaml:"default_limit"`
	MaxLimit      int    `yaml:"max_limit"`
}

// WatchConfig holds the optional samples file to watch in serve mode.
type WatchConfig struct {
	SamplesPath string `yaml:"samples_path"`
}

// Load reads and parses the config file at path, expands the samples path,
// and applies defaults. Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	if cfg.Watch.SamplesPath != "" {
		cfg.Watch.SamplesPath = expandPath(cfg.Watch.SamplesPath, filepath.Dir(path))
	}
	return &cfg, nil
}

// expandPath converts a path to absolute. Paths starting with "./" are
// relative to configDir; other relative paths are relative to the home
// directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
