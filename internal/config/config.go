package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for keysift.
type FileConfig struct {
	Input    *string `yaml:"input,omitempty"`
	Output   *string `yaml:"output,omitempty"`
	NoColor  *bool   `yaml:"no_color,omitempty"`
	Audit    *bool   `yaml:"audit,omitempty"`
	LogFile  *string `yaml:"log_file,omitempty"`
	LogLevel *string `yaml:"log_level,omitempty"`

	// scan subcommand
	Include  *string `yaml:"include,omitempty"`
	Exclude  *string `yaml:"exclude,omitempty"`
	MaxBytes *int64  `yaml:"max_bytes,omitempty"`
}

// LocalNames are the repo-local config file names, in search order.
var LocalNames = []string{".keysift.yml", ".keysift.yaml", "keysift.yml", "keysift.yaml"}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadLocal searches for a local config file in dir.
func LoadLocal(dir string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range LocalNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// GlobalPath returns $XDG_CONFIG_HOME/keysift/config.yml, falling back to
// ~/.config.
func GlobalPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return "", errors.New("no config dir")
	}
	return filepath.Join(base, "keysift", "config.yml"), nil
}

// LoadGlobal loads the global config file.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	p, err := GlobalPath()
	if err != nil {
		return cfg, err
	}
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}

// Marshal encodes cfg as YAML, omitting unset fields.
func Marshal(cfg FileConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
