package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadParsesAllFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "editor.yaml")
	content := []byte(`grid_size: 25
snap_to_grid: false
snap_angles: [0, 90]
default_thickness: 15
show_grid: false
show_measurements: true
show_angles: false
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.GridSize != 25 || cfg.SnapToGrid || cfg.DefaultThickness != 15 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if len(cfg.SnapAngles) != 2 || cfg.SnapAngles[1] != 90 {
		t.Fatalf("unexpected snap angles: %v", cfg.SnapAngles)
	}
	if cfg.ShowGrid || !cfg.ShowMeasurements || cfg.ShowAngles {
		t.Fatalf("unexpected display flags: %+v", cfg)
	}
}

func TestLoadKeepsDefaultsForUnsetFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "editor.yaml")
	if err := os.WriteFile(path, []byte("grid_size: 20\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.GridSize != 20 {
		t.Fatalf("expected grid size 20, got %v", cfg.GridSize)
	}
	if cfg.DefaultThickness != Default().DefaultThickness {
		t.Fatalf("unset fields should keep defaults, got %+v", cfg)
	}
}

func TestLoadRejectsBadGridSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "editor.yaml")
	if err := os.WriteFile(path, []byte("grid_size: -5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for a negative grid size")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
