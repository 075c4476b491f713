package commands

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir stands in for t.Chdir, which needs Go 1.24; the toolchain here is older.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		config      string
		wantNoColor bool
	}{
		{
			name:        "no config file",
			config:      "",
			wantNoColor: false,
		},
		{
			name:        "no_color set",
			config:      "no_color: true\n",
			wantNoColor: true,
		},
		{
			name:        "no_color off",
			config:      "no_color: false\n",
			wantNoColor: false,
		},
		{
			name:        "unrelated settings ignored",
			config:      "something_else: 42\n",
			wantNoColor: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.config != "" {
				if err := os.WriteFile(filepath.Join(dir, "quill.yml"), []byte(tt.config), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			chdir(t, dir)

			cfg := LoadConfig()
			if cfg.NoColor != tt.wantNoColor {
				t.Errorf("LoadConfig().NoColor = %v, want %v", cfg.NoColor, tt.wantNoColor)
			}
		})
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("QUILL_NO_COLOR", "true")

	cfg := LoadConfig()
	if !cfg.NoColor {
		t.Error("QUILL_NO_COLOR env override was ignored")
	}
}
