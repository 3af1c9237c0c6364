package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultBaseURL = "http://localhost:8001"

type Config struct {
	BaseURL  string `yaml:"base_url"`
	StateDir string `yaml:"state_dir"`
	DBPath   string `yaml:"-"`
	LogPath  string `yaml:"-"`
}

// Load resolves configuration in ascending priority: built-in defaults, the
// YAML file in the state directory, .env, then real environment variables.
func Load(stateDir string) (Config, error) {
	_ = godotenv.Load()

	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		stateDir = filepath.Join(home, ".eduterm")
	}

	cfg := Config{BaseURL: defaultBaseURL, StateDir: stateDir}
	if raw, err := os.ReadFile(filepath.Join(stateDir, "config.yaml")); err == nil {
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config.yaml: %w", err)
		}
		if cfg.StateDir == "" {
			cfg.StateDir = stateDir
		}
	}
	if v := os.Getenv("EDUTERM_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}

	cfg.DBPath = filepath.Join(cfg.StateDir, "eduterm.db")
	cfg.LogPath = filepath.Join(cfg.StateDir, "eduterm.log")
	return cfg, nil
}
