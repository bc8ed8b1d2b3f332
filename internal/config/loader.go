package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the standard config location.
const DefaultPath = "~/.jumprocket/config.yaml"

// Load reads the configuration from path. A missing file yields the default
// configuration (not an error); a corrupt file yields defaults plus an
// error for logging. All loaded values are clamped.
func Load(path string) (System, error) {
	cfg := Default()

	resolved, err := ExpandHome(path)
	if err != nil {
		return cfg, fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: cannot read %s: %w", resolved, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: cannot parse %s: %w", resolved, err)
	}
	cfg.Clamp()
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func Save(cfg System, path string) error {
	resolved, err := ExpandHome(path)
	if err != nil {
		return fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("config: cannot create directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: cannot marshal: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("config: cannot write %s: %w", resolved, err)
	}
	return nil
}

// ExpandHome resolves a leading ~ to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
