package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jsvensson/themepack/internal/palette"
	"github.com/jsvensson/themepack/internal/version"
)

// Manifest template tokens.
const (
	TokenThemeName    = "<theme name>"
	TokenThemeNameCap = "<theme name cap>"
	TokenAppearance   = "<appearance>"
	TokenVersion      = `"<version>"`
	TokenAuthors      = "<authors>"
)

// ManifestTokens builds the substitution map for one variant.
func ManifestTokens(v palette.Variant, ver version.Version, authors []string) (Tokens, error) {
	verJSON, err := json.Marshal(ver)
	if err != nil {
		return nil, fmt.Errorf("encoding version: %w", err)
	}
	return Tokens{
		TokenThemeName:    string(v),
		TokenThemeNameCap: v.Capitalized(),
		TokenAppearance:   v.Appearance(),
		TokenVersion:      string(verJSON),
		TokenAuthors:      strings.Join(authors, ", "),
	}, nil
}

// Manifest substitutes every manifest token in template. Unknown or
// missing tokens and output that is not valid JSON are errors.
func Manifest(v palette.Variant, template string, ver version.Version, authors []string) (string, error) {
	tokens, err := ManifestTokens(v, ver, authors)
	if err != nil {
		return "", err
	}
	if err := tokens.validate(); err != nil {
		return "", err
	}

	out, err := tokens.ApplyAll(template)
	if err != nil {
		return "", fmt.Errorf("%s manifest: %w", v, err)
	}
	if !json.Valid([]byte(out)) {
		return "", fmt.Errorf("%s manifest: rendered output is not valid JSON", v)
	}
	return out, nil
}
