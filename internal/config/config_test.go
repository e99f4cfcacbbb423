package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SearchLimit != 20 {
		t.Errorf("SearchLimit = %d, want 20", cfg.SearchLimit)
	}
	if cfg.Exam.DefaultCount != 10 || cfg.Exam.DefaultMinutes != 10 {
		t.Errorf("exam defaults = %+v", cfg.Exam)
	}
	if cfg.DBPath != "" {
		t.Errorf("DBPath = %q, want empty (store resolves its own default)", cfg.DBPath)
	}
}

func TestFileOverridesDefaults(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "drill")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := "SEARCH_LIMIT: 5\nEXAM:\n  DEFAULT_COUNT: 3\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", base)
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SearchLimit != 5 {
		t.Errorf("SearchLimit = %d, want 5 from file", cfg.SearchLimit)
	}
	if cfg.Exam.DefaultCount != 3 {
		t.Errorf("Exam.DefaultCount = %d, want 3 from file", cfg.Exam.DefaultCount)
	}
	if cfg.Exam.DefaultMinutes != 10 {
		t.Errorf("Exam.DefaultMinutes = %d, want untouched default", cfg.Exam.DefaultMinutes)
	}
}

func TestEnvWinsOverFile(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "drill")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("SEARCH_LIMIT: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", base)
	t.Setenv("DRILL_SEARCH_LIMIT", "50")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SearchLimit != 50 {
		t.Errorf("SearchLimit = %d, want env override 50", cfg.SearchLimit)
	}
}
