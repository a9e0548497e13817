// Package config loads the YAML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/poyhsiao/notekeep/internal/errors"
)

// Config holds server and collaborator settings. User preferences that
// belong to the data (theme, sync identifiers) live in the persisted
// state; this file configures the process.
type Config struct {
	ListenAddr string `yaml:"listen_addr"`
	DataDir    string `yaml:"data_dir"`
	Storage    string `yaml:"storage"` // "sqlite" or "file"

	Sync struct {
		Enable   bool   `yaml:"enable"`
		Endpoint string `yaml:"endpoint"`
		Interval int    `yaml:"interval_minutes"`
	} `yaml:"sync"`

	Improve struct {
		Provider  string `yaml:"provider"`
		Endpoint  string `yaml:"endpoint"`
		Model     string `yaml:"model"`
		MaxTokens int    `yaml:"max_tokens"`
	} `yaml:"improve"`
}

// Default returns the default configuration.
func Default() Config {
	cfg := Config{
		ListenAddr: "localhost:8090",
		DataDir:    defaultDataDir(),
		Storage:    "sqlite",
	}
	cfg.Sync.Interval = 5
	cfg.Improve.MaxTokens = 1000
	return cfg
}

// Load reads the config file at path, applying defaults for anything not
// set. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrConfig, "failed to read config file", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrConfig, "failed to parse config file", err)
	}

	if cfg.Storage != "sqlite" && cfg.Storage != "file" {
		return cfg, errors.New(errors.ErrConfig,
			fmt.Sprintf("unknown storage backend: %q", cfg.Storage))
	}
	if cfg.Sync.Interval <= 0 {
		cfg.Sync.Interval = 5
	}
	return cfg, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./data"
	}
	return filepath.Join(home, ".notekeep")
}
