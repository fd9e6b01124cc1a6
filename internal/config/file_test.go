package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tbragis/refmark/internal/naming"
)

func TestExpandHome(t *testing.T) {
	home, _ := os.UserHomeDir()
	tests := []struct {
		input string
		want  string
	}{
		{"~/notes", filepath.Join(home, "notes")},
		{"~", home},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ExpandHome(tt.input)
			if got != tt.want {
				t.Errorf("ExpandHome(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	cfg := Default()
	exists, err := LoadFile(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Error("LoadFile should return false for missing file")
	}
}

func TestLoadFile_Partial(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	dir := filepath.Join(tmp, "refmark")
	os.MkdirAll(dir, 0755)
	os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`naming = "kebab-case"`+"\n"), 0644)

	cfg := Default()
	exists, err := LoadFile(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Error("LoadFile should return true for existing file")
	}
	if cfg.Strategy != naming.StrategyKebab {
		t.Errorf("Strategy = %v, want %v", cfg.Strategy, naming.StrategyKebab)
	}
	// VaultPath should remain the default since it wasn't in the file.
	home, _ := os.UserHomeDir()
	if cfg.VaultPath != filepath.Join(home, "notes") {
		t.Errorf("VaultPath changed unexpectedly: %q", cfg.VaultPath)
	}
	if cfg.Extension != ".md" {
		t.Errorf("Extension changed unexpectedly: %q", cfg.Extension)
	}
}

func TestLoadFile_Full(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	dir := filepath.Join(tmp, "refmark")
	os.MkdirAll(dir, 0755)
	content := `vault_path = "~/docs"
naming = "snake_case"
extension = "markdown"
index_path = "~/state/index.db"
`
	os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644)

	cfg := Default()
	exists, err := LoadFile(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Error("LoadFile should return true")
	}

	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, "docs"); cfg.VaultPath != want {
		t.Errorf("VaultPath = %q, want %q", cfg.VaultPath, want)
	}
	if cfg.Strategy != naming.StrategySnake {
		t.Errorf("Strategy = %v, want %v", cfg.Strategy, naming.StrategySnake)
	}
	if cfg.Extension != ".markdown" {
		t.Errorf("Extension = %q, want %q", cfg.Extension, ".markdown")
	}
	if want := filepath.Join(home, "state", "index.db"); cfg.IndexPath != want {
		t.Errorf("IndexPath = %q, want %q", cfg.IndexPath, want)
	}
}

func TestLoadFile_BadStrategy(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	dir := filepath.Join(tmp, "refmark")
	os.MkdirAll(dir, 0755)
	os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`naming = "PascalCase"`+"\n"), 0644)

	cfg := Default()
	if _, err := LoadFile(&cfg); err == nil {
		t.Fatal("expected error for unknown naming strategy")
	}
}

func TestSaveFile(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	home, _ := os.UserHomeDir()
	vaultPath := filepath.Join(home, "my-vault")

	if err := SaveFile(vaultPath, naming.StrategyKebab); err != nil {
		t.Fatal(err)
	}

	// Verify the file was created and can be loaded back.
	cfg := Default()
	exists, err := LoadFile(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Error("config file should exist after SaveFile")
	}
	if cfg.VaultPath != vaultPath {
		t.Errorf("VaultPath = %q, want %q", cfg.VaultPath, vaultPath)
	}
	if cfg.Strategy != naming.StrategyKebab {
		t.Errorf("Strategy = %v, want %v", cfg.Strategy, naming.StrategyKebab)
	}
}

func TestResolvedIndexPath(t *testing.T) {
	cfg := Config{VaultPath: "/v"}
	if got := cfg.ResolvedIndexPath(); got != filepath.Join("/v", ".refmark", "index.db") {
		t.Errorf("ResolvedIndexPath() = %q", got)
	}

	cfg.IndexPath = "/elsewhere/idx.db"
	if got := cfg.ResolvedIndexPath(); got != "/elsewhere/idx.db" {
		t.Errorf("ResolvedIndexPath() = %q", got)
	}
}

func TestConfigDir_XDG(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	want := filepath.Join(tmp, "refmark")
	if got := ConfigDir(); got != want {
		t.Errorf("ConfigDir() = %q, want %q", got, want)
	}
}

func TestConfigDir_Default(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	home, _ := os.UserHomeDir()
	want := filepath.Join(home, ".config", "refmark")
	if got := ConfigDir(); got != want {
		t.Errorf("ConfigDir() = %q, want %q", got, want)
	}
}
