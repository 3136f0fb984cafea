package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"
)

// Environment variables honored at load time. They take precedence over
// the config file, which takes precedence over defaults.
const (
	EnvRoot = "GITLOGVIEW_ROOT"
	EnvPort = "GITLOGVIEW_PORT"
)

// Config is the process-wide configuration, read once at startup.
type Config struct {
	// RootDir is the directory under which repository names are resolved.
	RootDir string `json:"rootDir"`
	// Port is the TCP port the HTTP server listens on.
	Port string `json:"port"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		RootDir: ".",
		Port:    "8080",
	}
}

// LoadConfig loads configuration from a file, merging with defaults and
// applying environment overrides. An empty path checks the default
// locations; a missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		candidates := []string{".gitlogview.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".gitlogview.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
		} else if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv(EnvRoot); v != "" {
		cfg.RootDir = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		cfg.Port = v
	}

	return cfg, nil
}

// ResolveRepo resolves a repository name to a path under the configured
// root. The name is joined with securejoin, so traversal sequences can
// never escape the root directory.
func (c *Config) ResolveRepo(name string) (string, error) {
	if name == "" {
		return "", errors.New("repository name is empty")
	}
	return securejoin.SecureJoin(c.RootDir, name)
}
