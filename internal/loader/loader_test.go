package loader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	css := writeFile(t, dir, "theme.less", `"appearance" .a { color: @text; }`)
	manifest := writeFile(t, dir, "manifest.template.json", `{"name": "<theme name>"}`)

	got, err := Load(css, manifest)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := Templates{
		Stylesheet: `"appearance" .a { color: @text; }`,
		Manifest:   `{"name": "<theme name>"}`,
	}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestLoadMissingFiles(t *testing.T) {
	dir := t.TempDir()
	css := writeFile(t, dir, "theme.less", ".a {}")
	manifest := writeFile(t, dir, "manifest.template.json", "{}")
	missing := filepath.Join(dir, "missing")

	tests := []struct {
		name       string
		stylesheet string
		manifest   string
	}{
		{"stylesheet", missing, manifest},
		{"manifest", css, missing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.stylesheet, tt.manifest)
			if !errors.Is(err, fs.ErrNotExist) {
				t.Errorf("Load() error = %v, want fs.ErrNotExist", err)
			}
		})
	}
}
