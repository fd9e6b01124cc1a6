package config

import (
	"os"
	"path/filepath"

	"github.com/tbragis/refmark/internal/naming"
)

type Config struct {
	VaultPath string
	Strategy  naming.Strategy
	Extension string
	IndexPath string
}

func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		VaultPath: filepath.Join(home, "notes"),
		Strategy:  naming.StrategyPassthrough,
		Extension: ".md",
	}
}

// ResolvedIndexPath returns the index database location, defaulting to
// .refmark/index.db inside the vault.
func (c Config) ResolvedIndexPath() string {
	if c.IndexPath != "" {
		return c.IndexPath
	}
	return filepath.Join(c.VaultPath, ".refmark", "index.db")
}
