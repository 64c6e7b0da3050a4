package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsvensson/themepack/internal/engine"
)

// Mocha roles, same as the ones the packages are built from.
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cba6f7")) // Mauve
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))            // Green
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))            // Red
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9399b2"))            // Overlay2
)

func printSummary(w io.Writer, outDir string, s *engine.Summary) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("themepack %s", s.Version)))

	for _, r := range s.Results {
		name := fmt.Sprintf("%-10s", r.Variant)
		if r.OK() {
			fmt.Fprintf(w, "  %s %s %s\n",
				okStyle.Render("✓"), name,
				mutedStyle.Render(filepath.Join(outDir, string(r.Variant))))
			continue
		}

		fmt.Fprintf(w, "  %s %s %s\n", failStyle.Render("✗"), name, failStyle.Render(failureReason(r)))
	}

	built := len(s.Results) - len(s.Failed())
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d of %d variants built", built, len(s.Results))))
}

func failureReason(r engine.Result) string {
	var parts []string
	for _, f := range r.Report.Failed() {
		parts = append(parts, fmt.Sprintf("%s: %v", f.Name, f.Err))
	}
	if len(parts) > 0 {
		return strings.Join(parts, "; ")
	}
	if r.Err != nil {
		return r.Err.Error()
	}
	return "failed"
}
