package config

import (
	"os"
	"strconv"

	"roottrace/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Quantum  QuantumConfig
	Weights  WeightsConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	Workers int // background analysis workers
}

// DatabaseConfig holds optional job-store database settings. An empty URL
// selects the in-memory job repository.
type DatabaseConfig struct {
	URL string
}

// QuantumConfig holds pathway simulator settings
type QuantumConfig struct {
	Mode   string // "auto", "sampling" or "fallback"
	Shots  int
	Layers int
	Seed   int64 // 0 means time-seeded
}

// WeightsConfig names the empirical weighting constants of the resolution
// pipeline. The values are preserved from the calibrated system; they are
// configuration so tests and experiments can vary them.
type WeightsConfig struct {
	SurnameWeight    float64 // classical mix
	CulturalWeight   float64
	GeographicWeight float64
	ClassicalMix     float64 // synthesis mix
	PathwayMix       float64
	SharpenHigh      float64 // fallback sharpening exponents
	SharpenLow       float64
	BoostThreshold   float64 // amplitude amplification cutoff
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			Workers: getEnvInt("ANALYSIS_WORKERS", 4),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Quantum: QuantumConfig{
			Mode:   getEnv("QUANTUM_BACKEND", "auto"),
			Shots:  getEnvInt("QUANTUM_SHOTS", 8192),
			Layers: getEnvInt("QUANTUM_LAYERS", 6),
			Seed:   int64(getEnvInt("QUANTUM_SEED", 0)),
		},
		Weights: DefaultWeights(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultWeights returns the calibrated weighting constants.
func DefaultWeights() WeightsConfig {
	return WeightsConfig{
		SurnameWeight:    0.4,
		CulturalWeight:   0.35,
		GeographicWeight: 0.25,
		ClassicalMix:     0.3,
		PathwayMix:       0.7,
		SharpenHigh:      0.7,
		SharpenLow:       1.3,
		BoostThreshold:   0.15,
	}
}

// Validate checks configuration invariants
func (c *Config) Validate() error {
	switch c.Quantum.Mode {
	case "auto", "sampling", "fallback":
	default:
		return errors.ConfigInvalid("QUANTUM_BACKEND must be auto, sampling or fallback")
	}
	if c.Quantum.Shots <= 0 {
		return errors.ConfigInvalid("QUANTUM_SHOTS must be positive")
	}
	if c.Quantum.Layers <= 0 {
		return errors.ConfigInvalid("QUANTUM_LAYERS must be positive")
	}
	if c.Server.Workers <= 0 {
		return errors.ConfigInvalid("ANALYSIS_WORKERS must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
