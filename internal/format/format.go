// Package format normalizes themepack.hcl and palette data files.
package format

import (
	"fmt"
	"regexp"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
)

var (
	multipleBlankLines        = regexp.MustCompile(`\n{3,}`)
	blankLineAfterOpenBrace   = regexp.MustCompile(`\{\n\s*\n`)
	blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)
)

// Format returns content in canonical HCL style: hclwrite indentation
// and alignment, at most one blank line in a row, and no blank lines
// just inside braces. Content that does not parse is rejected so a
// broken file is never rewritten.
func Format(filename, content string) (string, error) {
	if _, diags := hclsyntax.ParseConfig([]byte(content), filename, hcl.Pos{Line: 1, Column: 1}); diags.HasErrors() {
		return "", fmt.Errorf("parsing %s: %s", filename, diags.Error())
	}

	formatted := string(hclwrite.Format([]byte(content)))
	formatted = multipleBlankLines.ReplaceAllString(formatted, "\n\n")
	formatted = blankLineAfterOpenBrace.ReplaceAllString(formatted, "{\n")
	formatted = blankLineBeforeCloseBrace.ReplaceAllString(formatted, "\n${1}")
	return formatted, nil
}
