package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user preferences loaded from the optional TOML config
// file at ~/.config/c2draw/config.toml.
type Config struct {
	// Formats is the default export format list used when --format is
	// not given.
	Formats []string `toml:"formats"`

	// OutputDir is the default directory for exported artifacts.
	// Empty means the current directory.
	OutputDir string `toml:"output_dir"`
}

// defaultConfig is used when no config file exists or it fails to parse.
func defaultConfig() Config {
	return Config{
		Formats: []string{"puml"},
	}
}

// LoadConfig reads the user config file, falling back to defaults on
// any error. A broken config file must never make the CLI unusable.
func LoadConfig() Config {
	cfg := defaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg
	}
	if _, err := os.Stat(path); err != nil {
		return cfg
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return defaultConfig()
	}
	if len(cfg.Formats) == 0 {
		cfg.Formats = defaultConfig().Formats
	}
	return cfg
}

// configPath returns the config file path using XDG standard
// (~/.config/c2draw/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
