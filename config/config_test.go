package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "smith.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("missing file should yield defaults (-want +got):\n%s", diff)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, "favicon:\n  sizes: [16, 32]\npalette:\n  colors: 3\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff([]int{16, 32}, cfg.Favicon.Sizes); diff != "" {
		t.Errorf("sizes (-want +got):\n%s", diff)
	}
	if cfg.Palette.Colors != 3 {
		t.Errorf("palette colors = %d, want 3", cfg.Palette.Colors)
	}
	// Untouched sections keep their defaults.
	if cfg.Mock.Rows != Default().Mock.Rows {
		t.Errorf("mock rows = %d, want default %d", cfg.Mock.Rows, Default().Mock.Rows)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "favicn:\n  sizes: [16]\n")
	if _, err := Load(path); err == nil {
		t.Error("typo key should fail to load")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	for name, content := range map[string]string{
		"oversize favicon": "favicon:\n  sizes: [512]\n",
		"zero size":        "favicon:\n  sizes: [0]\n",
		"empty sizes":      "favicon:\n  sizes: []\n",
		"palette too big":  "palette:\n  colors: 100\n",
		"negative context": "diff:\n  context: -1\n",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, content)); err == nil {
				t.Errorf("config %q should be rejected", content)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SMITH_FAVICON_SIZES", "16, 48")
	t.Setenv("SMITH_PALETTE_COLORS", "9")
	t.Setenv("SMITH_MOCK_SEED", "77")

	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if diff := cmp.Diff([]int{16, 48}, cfg.Favicon.Sizes); diff != "" {
		t.Errorf("sizes (-want +got):\n%s", diff)
	}
	if cfg.Palette.Colors != 9 {
		t.Errorf("palette colors = %d, want 9", cfg.Palette.Colors)
	}
	if cfg.Mock.Seed != 77 {
		t.Errorf("mock seed = %d, want 77", cfg.Mock.Seed)
	}
}

func TestApplyEnvBadValues(t *testing.T) {
	t.Setenv("SMITH_FAVICON_SIZES", "16,big")
	if err := Default().ApplyEnv(); err == nil {
		t.Error("non-numeric size should fail")
	}

	t.Setenv("SMITH_FAVICON_SIZES", "")
	t.Setenv("SMITH_PALETTE_COLORS", "0")
	if err := Default().ApplyEnv(); err == nil {
		t.Error("out-of-range palette colors should fail validation")
	}
}
