// Package loader reads the stylesheet and manifest templates once per run.
package loader

import (
	"fmt"
	"os"
)

// Templates is the immutable template text shared by every variant
// render. It is passed by value; renders work on their own copies.
type Templates struct {
	Stylesheet string
	Manifest   string
}

// Load reads both templates. Either file being unreadable is fatal for
// the build.
func Load(stylesheetPath, manifestPath string) (Templates, error) {
	stylesheet, err := os.ReadFile(stylesheetPath)
	if err != nil {
		return Templates{}, fmt.Errorf("reading stylesheet template: %w", err)
	}
	manifest, err := os.ReadFile(manifestPath)
	if err != nil {
		return Templates{}, fmt.Errorf("reading manifest template: %w", err)
	}
	return Templates{
		Stylesheet: string(stylesheet),
		Manifest:   string(manifest),
	}, nil
}
