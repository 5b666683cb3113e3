package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ImagePath != DefaultImagePath {
		t.Errorf("ImagePath = %q, want %q", cfg.ImagePath, DefaultImagePath)
	}
	if cfg.Probe != (Probe{Row: 100, Col: 100}) {
		t.Errorf("Probe = %+v, want {100 100}", cfg.Probe)
	}
}

func TestLoadFile(t *testing.T) {
	dir := writeConfig(t, "image_path: testdata/lena.png\nprobe:\n  row: 3\n  col: 4\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ImagePath != "testdata/lena.png" {
		t.Errorf("ImagePath = %q", cfg.ImagePath)
	}
	if cfg.Probe != (Probe{Row: 3, Col: 4}) {
		t.Errorf("Probe = %+v, want {3 4}", cfg.Probe)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := writeConfig(t, "image_path: from-file.png\n")
	t.Setenv("IMGARRAY_IMAGE_PATH", "from-env.png")
	t.Setenv("IMGARRAY_PROBE_ROW", "7")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ImagePath != "from-env.png" {
		t.Errorf("ImagePath = %q, want from-env.png", cfg.ImagePath)
	}
	if cfg.Probe.Row != 7 || cfg.Probe.Col != 100 {
		t.Errorf("Probe = %+v, want {7 100}", cfg.Probe)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative probe", "probe:\n  row: -1\n"},
		{"empty path", "image_path: \"\"\n"},
		{"malformed yaml", "image_path: [unterminated\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Error("Load succeeded, want error")
			}
		})
	}
}
