package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

const sampleHCL = `
stylesheet = "theme/theme.less"
output_dir = "dist"
authors    = ["Test Author"]
accent     = "mauve"
minify     = true

logo {
  light = "assets/light.png"
}

palette {
  source  = "remote"
  timeout = "5s"
}
`

func writeTempHCL(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "themepack.hcl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(writeTempHCL(t, sampleHCL))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	def := Default()
	want := &Config{
		Stylesheet: "theme/theme.less",
		Manifest:   def.Manifest,
		Readme:     def.Readme,
		OutputDir:  "dist",
		Authors:    []string{"Test Author"},
		Accent:     "mauve",
		Minify:     true,
		Logo: &Logo{
			Light: "assets/light.png",
			Dark:  def.Logo.Dark,
		},
		Palette: &Palette{
			Source:  "remote",
			URL:     def.Palette.URL,
			Timeout: "5s",
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	timeout, err := cfg.FetchTimeout()
	if err != nil {
		t.Fatal(err)
	}
	if timeout != 5*time.Second {
		t.Errorf("FetchTimeout() = %v, want 5s", timeout)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"syntax error", `stylesheet = `, "parsing HCL"},
		{"unknown attribute", `colour = "blue"`, "decoding config"},
		{"wrong type", `minify = "yes please"`, "decoding config"},
		{"unknown source", `palette { source = "ftp" }`, "unknown source"},
		{"bad timeout", `palette { timeout = "soon" }`, "palette.timeout"},
		{"negative timeout", `palette { timeout = "-1s" }`, "must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeTempHCL(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLogoFor(t *testing.T) {
	cfg := Default()
	if got := cfg.LogoFor(true); got != "src/wlogo.png" {
		t.Errorf("LogoFor(light) = %q", got)
	}
	if got := cfg.LogoFor(false); got != "src/logo.png" {
		t.Errorf("LogoFor(dark) = %q", got)
	}
}

func TestPaletteOptions(t *testing.T) {
	cfg := Default()
	opts, err := cfg.PaletteOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Kind != "bundled" || opts.Timeout != 30*time.Second {
		t.Errorf("PaletteOptions() = %+v", opts)
	}
}
