package format

import (
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "equals signs aligned",
			input:    "stylesheet = \"theme.less\"\noutput_dir=\"built\"\n",
			expected: "stylesheet = \"theme.less\"\noutput_dir = \"built\"\n",
		},
		{
			name:     "block body indented",
			input:    "logo {\nlight = \"src/wlogo.png\"\n}\n",
			expected: "logo {\n  light = \"src/wlogo.png\"\n}\n",
		},
		{
			name: "already formatted stays same",
			input: `variant "mocha" {
  base = "#1e1e2e"
}
`,
			expected: `variant "mocha" {
  base = "#1e1e2e"
}
`,
		},
		{
			name:     "empty content",
			input:    "",
			expected: "",
		},
		{
			name:     "multiple blank lines collapsed to one",
			input:    "accent = \"blue\"\n\n\n\nminify = true\n",
			expected: "accent = \"blue\"\n\nminify = true\n",
		},
		{
			name:     "blank lines inside braces removed",
			input:    "palette {\n\n  source = \"remote\"\n\n}\n",
			expected: "palette {\n  source = \"remote\"\n}\n",
		},
		{
			name:     "nested variant blocks",
			input:    "variant \"latte\" {\n\n  base = \"#eff1f5\"\n}\n\n\n\nvariant \"mocha\" {\n  base = \"#1e1e2e\"\n\n}\n",
			expected: "variant \"latte\" {\n  base = \"#eff1f5\"\n}\n\nvariant \"mocha\" {\n  base = \"#1e1e2e\"\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Format("test.hcl", tt.input)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}

			result = strings.TrimSuffix(result, "\n")
			expected := strings.TrimSuffix(tt.expected, "\n")

			if result != expected {
				t.Errorf("Format() = %q, want %q", result, expected)
			}
		})
	}
}

func TestFormatInvalidHCL(t *testing.T) {
	if _, err := Format("broken.hcl", `palette { source = "remote"`); err == nil {
		t.Error("Format() should reject HCL that does not parse")
	}
}
