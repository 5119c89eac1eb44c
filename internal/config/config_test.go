package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.PageSize != 20 {
		t.Fatalf("default page size = %d, want 20", cfg.PageSize)
	}
	if cfg.DataFile == "" {
		t.Fatal("default data file should be set")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if cfg != Default() {
		t.Fatalf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "data_file: /tmp/wl.json\nexport_dir: /tmp/out\npage_size: 5\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path)
	if cfg.DataFile != "/tmp/wl.json" {
		t.Fatalf("data_file = %q", cfg.DataFile)
	}
	if cfg.ExportDir != "/tmp/out" {
		t.Fatalf("export_dir = %q", cfg.ExportDir)
	}
	if cfg.PageSize != 5 {
		t.Fatalf("page_size = %d", cfg.PageSize)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("page_size: 50\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path)
	if cfg.PageSize != 50 {
		t.Fatalf("page_size = %d, want 50", cfg.PageSize)
	}
	if cfg.DataFile != Default().DataFile {
		t.Fatalf("unset keys must keep defaults, got %q", cfg.DataFile)
	}
}

func TestLoadMalformedFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path)
	if cfg != Default() {
		t.Fatalf("malformed config should yield defaults, got %+v", cfg)
	}
}
