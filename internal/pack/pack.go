// Package pack writes a variant's rendered files and static assets into
// its output directory.
package pack

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jsvensson/themepack/internal/palette"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("themepack.pack")

// Names of the four files in every variant directory.
const (
	StylesheetFile = "theme.css"
	ManifestFile   = "manifest.json"
	LogoFile       = "logo.png"
	ReadmeFile     = "README.md"
)

// Output is everything written for one variant. Logo and Readme are
// source paths copied as-is.
type Output struct {
	Stylesheet string
	Manifest   string
	Logo       string
	Readme     string
}

// FileResult is the outcome of writing one file.
type FileResult struct {
	Name string
	Err  error
}

// Report lists per-file outcomes for one variant, in write order.
type Report struct {
	Variant palette.Variant
	Dir     string
	Files   []FileResult
}

// Written returns the names of files that were written.
func (r Report) Written() []string {
	var names []string
	for _, f := range r.Files {
		if f.Err == nil {
			names = append(names, f.Name)
		}
	}
	return names
}

// Failed returns the results that carry an error.
func (r Report) Failed() []FileResult {
	var failed []FileResult
	for _, f := range r.Files {
		if f.Err != nil {
			failed = append(failed, f)
		}
	}
	return failed
}

// OK reports whether all four files were written.
func (r Report) OK() bool {
	return len(r.Files) == 4 && len(r.Failed()) == 0
}

// Packager writes variant directories under OutputDir.
type Packager struct {
	OutputDir string
}

// Write creates the variant directory and writes the stylesheet,
// manifest, logo and README. Each file is attempted regardless of
// earlier failures, so the directory may end up with a subset.
func (p *Packager) Write(v palette.Variant, out Output) Report {
	dir := filepath.Join(p.OutputDir, string(v))
	report := Report{Variant: v, Dir: dir}

	log.Infof("%s: creating theme folder %s", v, dir)
	dirErr := os.MkdirAll(dir, 0o755)
	if dirErr != nil {
		dirErr = fmt.Errorf("creating theme folder: %w", dirErr)
	}

	steps := []struct {
		name  string
		write func(dst string) error
	}{
		{StylesheetFile, func(dst string) error { return writeFile(dst, out.Stylesheet) }},
		{ManifestFile, func(dst string) error { return writeFile(dst, out.Manifest) }},
		{LogoFile, func(dst string) error { return copyFile(out.Logo, dst) }},
		{ReadmeFile, func(dst string) error { return copyFile(out.Readme, dst) }},
	}

	for _, step := range steps {
		err := dirErr
		if err == nil {
			log.Infof("%s: writing %s", v, step.name)
			err = step.write(filepath.Join(dir, step.name))
		}
		if err != nil {
			log.Errorf("%s: %s: %s", v, step.name, err.Error())
		}
		report.Files = append(report.Files, FileResult{Name: step.name, Err: err})
	}

	return report
}

func writeFile(dst, content string) error {
	if err := os.WriteFile(dst, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("copying %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("copying %s: %w", src, err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("copying %s: %w", src, cerr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return nil
}
