package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/dilutedml/dknn"
)

// fileConfig mirrors dknn.toml. Keys absent from the file keep the library
// defaults, so a partial config is fine.
type fileConfig struct {
	Classes        int     `toml:"classes"`
	BatchSize      int     `toml:"batch_size"`
	Epochs         int     `toml:"epochs"`
	Spread         float64 `toml:"spread"`
	Overconfidence float64 `toml:"overconfidence"`
	SpreadStep     float64 `toml:"spread_step"`
	RadiusStep     float64 `toml:"radius_step"`
}

func defaultConfig() fileConfig {
	return fileConfig{
		Classes:        3,
		BatchSize:      dknn.DefaultBatchSize,
		Epochs:         1, // a single pass keeps the certainty radii close to their defaults
		Spread:         dknn.DefaultSpread,
		Overconfidence: dknn.DefaultOverconfidence,
		SpreadStep:     dknn.DefaultSpreadStep,
		RadiusStep:     dknn.DefaultRadiusStep,
	}
}

func loadConfig(path string) (fileConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if cfg.Classes < 1 {
		return fileConfig{}, fmt.Errorf("%s: classes must be positive, got %d", path, cfg.Classes)
	}
	if cfg.Epochs < 1 {
		return fileConfig{}, fmt.Errorf("%s: epochs must be positive, got %d", path, cfg.Epochs)
	}
	return cfg, nil
}

func newModel(cfg fileConfig) (*dknn.Model, error) {
	return dknn.New(cfg.Classes,
		dknn.WithDefaults(cfg.Spread, cfg.Overconfidence),
		dknn.WithAdaptSteps(cfg.SpreadStep, cfg.RadiusStep),
		dknn.WithBatchSize(cfg.BatchSize),
	)
}
