// Package config loads the optional ~/.gnomemode.yaml file. A missing file
// yields defaults; the API key can always be supplied via environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DBPath       string `yaml:"db_path"`
	GeminiAPIKey string `yaml:"gemini_api_key"`
	GeminiModel  string `yaml:"gemini_model"`
	Tone         string `yaml:"tone"`
	Debug        bool   `yaml:"debug"`
}

func Default() Config {
	return Config{
		GeminiModel: "gemini-2.0-flash",
		Tone:        "spicy",
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".gnomemode.yaml"), nil
}

// Load reads the config at path, layering it over defaults. A missing file
// is not an error. GEMINI_API_KEY in the environment overrides the file.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No file; defaults apply.
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.GeminiAPIKey = key
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = Default().GeminiModel
	}
	return cfg, nil
}
