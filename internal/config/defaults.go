package config

import (
	"github.com/hyperjump/vekta/internal/project"
	"github.com/hyperjump/vekta/internal/similarity"
	"github.com/hyperjump/vekta/internal/vectorize"
)

// Default returns a config with every default applied, for callers with no
// config file.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults sets default values for any zero values in cfg and clamps
// out-of-range ones.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Embedding.Dimensions == 0 {
		cfg.Embedding.Dimensions = 128
	}
	if cfg.Embedding.Dimensions < 1 {
		cfg.Embedding.Dimensions = 1
	}
	if cfg.Embedding.Strategy == "" {
		cfg.Embedding.Strategy = vectorize.StrategyWordPosition
	}
	if cfg.Projection.BoundA == 0 {
		cfg.Projection.BoundA = project.DefaultBoundA
	}
	if cfg.Projection.BoundB == 0 {
		cfg.Projection.BoundB = project.DefaultBoundB
	}
	if cfg.Projection.Scale == 0 {
		cfg.Projection.Scale = project.DefaultScale
	}
	if cfg.Similarity.DefaultMetric == "" {
		cfg.Similarity.DefaultMetric = string(similarity.Cosine)
	}
	if cfg.Similarity.DefaultLimit == 0 {
		cfg.Similarity.DefaultLimit = 10
	}
	if cfg.Similarity.MaxLimit == 0 {
		cfg.Similarity.MaxLimit = 100
	}
}
