package config

import (
	"os"
	"path/filepath"
	"testing"
)

func withTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("EVENTHIVE_CONFIG_DIR", dir)
	return dir
}

func TestLoad_FirstRunCreatesDefault(t *testing.T) {
	dir := withTempConfigDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server != "http://localhost:4000/api" {
		t.Fatalf("server=%q", cfg.Server)
	}
	if cfg.PageSize != 12 {
		t.Fatalf("page size=%d", cfg.PageSize)
	}

	st, err := os.Stat(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("expected config file to be created: %v", err)
	}
	if perm := st.Mode().Perm(); perm != 0o600 {
		t.Fatalf("perm=%o want 0600", perm)
	}
}

func TestLoad_NormalizesPartialConfig(t *testing.T) {
	dir := withTempConfigDir(t)
	raw := "server: https://hive.example.com/api/\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server != "https://hive.example.com/api" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.Server)
	}
	if cfg.PageSize != 12 {
		t.Fatalf("expected default page size, got %d", cfg.PageSize)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	withTempConfigDir(t)

	in := &Config{Server: "http://127.0.0.1:9999/api", PageSize: 24, Theme: "dark"}
	if err := Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.Server != in.Server || out.PageSize != 24 || out.Theme != "dark" {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}
