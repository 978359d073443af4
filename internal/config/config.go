// Package config holds chaperone configuration, read from CHAPERONE_* env
// vars with an optional YAML file overlay.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all chaperone configuration.
type Config struct {
	KeywordsPath string       `yaml:"keywords_path"`
	LogLevel     string       `yaml:"log_level"`
	Engine       EngineConfig `yaml:"engine"`
	Output       OutputConfig `yaml:"output"`
}

// EngineConfig holds moderation engine settings.
type EngineConfig struct {
	Workers int `yaml:"workers"` // parallel utterance scanners; 1 = serial
}

// OutputConfig holds report destination settings.
type OutputConfig struct {
	Path      string `yaml:"path"` // NDJSON results file; empty = stdout only
	Verbosity string `yaml:"verbosity"`
	Pretty    bool   `yaml:"pretty"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		KeywordsPath: os.Getenv("CHAPERONE_KEYWORDS_PATH"),
		LogLevel:     getenv("CHAPERONE_LOG_LEVEL", "info"),
		Engine: EngineConfig{
			Workers: getenvInt("CHAPERONE_WORKERS", 1),
		},
		Output: OutputConfig{
			Path:      os.Getenv("CHAPERONE_OUTPUT_PATH"),
			Verbosity: getenv("CHAPERONE_VERBOSITY", "standard"),
			Pretty:    getenvBool("CHAPERONE_OUTPUT_PRETTY", false),
		},
	}
}

// LoadFile reads env configuration, then overlays values from a YAML file.
// Keys absent from the file keep their env-derived values.
func LoadFile(path string) (Config, error) {
	cfg := Load()

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
