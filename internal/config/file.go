package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the optional YAML override for model and media tunables, so
// deployments can swap models without touching the environment.
type fileConfig struct {
	Chat struct {
		Provider string `yaml:"provider"`
		Model    string `yaml:"model"`
		BaseURL  string `yaml:"base_url"`
	} `yaml:"chat"`
	Transcription struct {
		Model       string   `yaml:"model"`
		Language    string   `yaml:"language"`
		Temperature *float64 `yaml:"temperature"`
	} `yaml:"transcription"`
	Media struct {
		Quality int    `yaml:"quality"`
		MaxAge  string `yaml:"max_age"`
	} `yaml:"media"`
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}

	if fc.Chat.Provider != "" {
		cfg.LLM.Provider = fc.Chat.Provider
	}
	if fc.Chat.Model != "" {
		cfg.LLM.Model = fc.Chat.Model
	}
	if fc.Chat.BaseURL != "" {
		cfg.LLM.BaseURL = fc.Chat.BaseURL
	}

	if fc.Transcription.Model != "" {
		cfg.Transcription.Model = fc.Transcription.Model
	}
	if fc.Transcription.Language != "" {
		cfg.Transcription.Language = fc.Transcription.Language
	}
	if fc.Transcription.Temperature != nil {
		cfg.Transcription.Temperature = *fc.Transcription.Temperature
	}

	if fc.Media.Quality > 0 {
		cfg.Media.Quality = fc.Media.Quality
	}
	if fc.Media.MaxAge != "" {
		d, err := time.ParseDuration(fc.Media.MaxAge)
		if err != nil {
			return fmt.Errorf("config file %s: invalid media.max_age: %w", path, err)
		}
		cfg.Media.MaxAge = d
	}

	return nil
}
