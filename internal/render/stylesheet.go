// Package render produces the per-variant stylesheet and manifest text.
package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/jsvensson/themepack/internal/palette"
)

// AppearanceToken is replaced in the stylesheet template with the
// variant's appearance selector (.light or .dark).
const AppearanceToken = `"appearance"`

// AccentRole is the extra role bound to the configured accent color.
const AccentRole = "accent"

// Compiler compiles preprocessor source to CSS.
type Compiler interface {
	Compile(ctx context.Context, name, src string) (string, error)
}

// Stylesheet renders the theme stylesheet for one variant.
type Stylesheet struct {
	Compiler Compiler
	// Accent is the palette role every variant's accent resolves to.
	Accent string
}

// Source returns the preprocessor input for v: the palette block
// followed by the template with its appearance token substituted.
func (s *Stylesheet) Source(v palette.Variant, template string, p *palette.Palette) (string, error) {
	block, err := PaletteBlock(p, s.Accent)
	if err != nil {
		return "", fmt.Errorf("%s: %w", v, err)
	}
	return block + strings.ReplaceAll(template, AppearanceToken, v.Selector()), nil
}

// Render builds the source for v and compiles it.
func (s *Stylesheet) Render(ctx context.Context, v palette.Variant, template string, p *palette.Palette) (string, error) {
	src, err := s.Source(v, template, p)
	if err != nil {
		return "", err
	}
	css, err := s.Compiler.Compile(ctx, string(v), src)
	if err != nil {
		return "", err
	}
	return css, nil
}

// PaletteBlock declares four variables per role, in palette order, and
// then the same four for the accent role bound to accent:
//
//	@blue-raw: 30, 102, 245;
//	@blue-hsl: hsl(220, 91%, 54%);
//	@blue-rgb: rgb(30, 102, 245);
//	@blue: #1e66f5;
func PaletteBlock(p *palette.Palette, accent string) (string, error) {
	var sb strings.Builder
	for _, role := range p.Roles {
		writeRole(&sb, role, p.Entries[role])
	}

	e, err := p.Lookup(accent)
	if err != nil {
		return "", fmt.Errorf("accent color: %w", err)
	}
	writeRole(&sb, AccentRole, e)

	return sb.String(), nil
}

func writeRole(sb *strings.Builder, role string, e palette.Entry) {
	fmt.Fprintf(sb, "@%s-raw: %s;\n", role, e.Raw)
	fmt.Fprintf(sb, "@%s-hsl: %s;\n", role, e.HSL)
	fmt.Fprintf(sb, "@%s-rgb: %s;\n", role, e.RGB)
	fmt.Fprintf(sb, "@%s: %s;\n", role, e.Hex)
}
