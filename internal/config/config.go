package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the client configuration. It deliberately holds no user data:
// the only durable per-user state is the token file next to it.
type Config struct {
	// Server is the EventHive API base URL.
	Server string `yaml:"server"`

	// PageSize is the events-list page size.
	PageSize int `yaml:"page_size"`

	// Theme forces the TUI palette ("light", "dark", or "" for auto).
	Theme string `yaml:"theme,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Server:   "http://localhost:4000/api",
		PageSize: 12,
	}
}

// Normalize fills missing/zero values so partially-filled configs behave.
func (c *Config) Normalize() {
	if strings.TrimSpace(c.Server) == "" {
		c.Server = "http://localhost:4000/api"
	}
	c.Server = strings.TrimRight(strings.TrimSpace(c.Server), "/")
	if c.PageSize <= 0 {
		c.PageSize = 12
	}
	switch c.Theme {
	case "light", "dark", "":
	default:
		c.Theme = ""
	}
}

// Dir returns the config directory.
//
// EVENTHIVE_CONFIG_DIR overrides it (keeps unit tests from touching ~/.eventhive).
func Dir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("EVENTHIVE_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".eventhive"), nil
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config, creating a default file on first run.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes the config atomically (temp file + rename) with 0600 perms.
func Save(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	cfg.Normalize()

	path, err := Path()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
