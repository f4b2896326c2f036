package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type EnrichmentConfig struct {
	Concurrency int `yaml:"concurrency"`
}

type ExamplesConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Provider string `yaml:"provider"` // "api" or "mock"
	Model    string `yaml:"model"`
}

type Config struct {
	Port           string           `yaml:"port"`
	JWTSecret      string           `yaml:"jwt_secret"`
	LogLevel       string           `yaml:"log_level"`
	AllowedOrigins []string         `yaml:"allowed_origins"`
	Enrichment     EnrichmentConfig `yaml:"enrichment"`
	Examples       ExamplesConfig   `yaml:"examples"`
}

func defaults() *Config {
	return &Config{
		Port:           "8080",
		JWTSecret:      "mandarin-prep-staging-signing-key-2026",
		LogLevel:       "info",
		AllowedOrigins: []string{"*"},
		Enrichment:     EnrichmentConfig{Concurrency: 4},
		Examples:       ExamplesConfig{Provider: "mock", Model: "claude-sonnet-4-5-20250929"},
	}
}

// Load reads an optional yaml file and applies environment overrides on
// top of built-in defaults. A missing file is not an error; a malformed
// one is.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path == "" {
		path = "config.yaml"
	}
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("EXAMPLES_PROVIDER"); v != "" {
		cfg.Examples.Provider = v
		cfg.Examples.Enabled = true
	}
	if v := os.Getenv("ANTHROPIC_MODEL"); v != "" {
		cfg.Examples.Model = v
	}

	return cfg, nil
}
