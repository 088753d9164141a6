// Package config handles global configuration and data file resolution.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/shelf/config.yml.
type GlobalConfig struct {
	LibraryPath string `yaml:"library_path,omitempty"` // Path to the books JSON file
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "shelf"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
	// LibraryEnvVar overrides the data file path when set.
	LibraryEnvVar = "SHELF_LIBRARY"
	// DefaultLibraryPath is the data file path when nothing is configured.
	DefaultLibraryPath = "data/books.json"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/shelf/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	if cfg.LibraryPath != "" {
		cfg.LibraryPath = ExpandTilde(cfg.LibraryPath)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// Save writes the global configuration file, creating its directory
// if needed, and refreshes the cache.
func (c *GlobalConfig) Save() error {
	path := GlobalConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	globalConfigCache = c
	return nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// ResolveLibraryPath determines the data file path for this invocation.
// Precedence: the explicit flag value, the SHELF_LIBRARY environment
// variable (a .env file in the working directory is loaded first), the
// global config library_path, then DefaultLibraryPath.
func ResolveLibraryPath(flagValue string) (string, error) {
	if flagValue != "" {
		return ExpandTilde(flagValue), nil
	}

	// Ignore a missing .env; an existing SHELF_LIBRARY wins either way.
	_ = godotenv.Load()
	if env := os.Getenv(LibraryEnvVar); env != "" {
		return ExpandTilde(env), nil
	}

	cfg, err := LoadGlobalConfig()
	if err != nil {
		return "", err
	}
	if cfg.LibraryPath != "" {
		return cfg.LibraryPath, nil
	}

	return DefaultLibraryPath, nil
}

// ExpandTilde expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandTilde(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
