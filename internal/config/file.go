package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tbragis/refmark/internal/naming"
)

// fileConfig mirrors Config with pointer fields so we can distinguish
// "not set" from zero values when merging TOML.
type fileConfig struct {
	VaultPath *string `toml:"vault_path"`
	Naming    *string `toml:"naming"`
	Extension *string `toml:"extension"`
	IndexPath *string `toml:"index_path"`
}

// ConfigDir returns the refmark config directory, respecting XDG_CONFIG_HOME.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "refmark")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "refmark")
}

// ConfigPath returns the full path to config.toml.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// LoadFile reads config.toml and merges non-nil fields into cfg.
// Returns true if the file existed, false otherwise.
func LoadFile(cfg *Config) (bool, error) {
	path := ConfigPath()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return true, err
	}

	if fc.VaultPath != nil {
		cfg.VaultPath = ExpandHome(*fc.VaultPath)
	}
	if fc.Naming != nil {
		strategy, err := naming.ParseStrategy(*fc.Naming)
		if err != nil {
			return true, fmt.Errorf("%s: %w", path, err)
		}
		cfg.Strategy = strategy
	}
	if fc.Extension != nil {
		ext := *fc.Extension
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		cfg.Extension = ext
	}
	if fc.IndexPath != nil {
		cfg.IndexPath = ExpandHome(*fc.IndexPath)
	}

	return true, nil
}

// SaveFile writes a minimal config.toml with the given vault path and
// naming strategy.
func SaveFile(vaultPath string, strategy naming.Strategy) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Store with ~ for readability if under home dir.
	home, _ := os.UserHomeDir()
	display := vaultPath
	if home != "" && strings.HasPrefix(vaultPath, home+string(os.PathSeparator)) {
		display = "~" + vaultPath[len(home):]
	}

	name := strategy.String()
	fc := fileConfig{VaultPath: &display, Naming: &name}
	f, err := os.Create(filepath.Join(dir, "config.toml"))
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(fc)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, _ := os.UserHomeDir()
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
