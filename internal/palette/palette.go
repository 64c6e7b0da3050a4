// Package palette supplies per-variant color palettes, either from the
// bundled Catppuccin data set or from remote preprocessor fragments.
package palette

import (
	"context"
	"fmt"

	"github.com/jsvensson/themepack/internal/color"
)

// Entry is one palette role in every encoding the stylesheet can use.
type Entry struct {
	Raw string // "30, 102, 245"
	HSL string // "hsl(220, 91%, 54%)"
	RGB string // "rgb(30, 102, 245)"
	Hex string // "#1e66f5"
}

// NewEntry derives all encodings from a single color.
func NewEntry(c color.Color) Entry {
	return Entry{
		Raw: c.Raw(),
		HSL: c.HSL(),
		RGB: c.RGB(),
		Hex: c.Hex(),
	}
}

// Palette maps role names to entries. Roles keeps the source order so
// generated output is deterministic.
type Palette struct {
	Roles   []string
	Entries map[string]Entry
}

// New returns an empty palette.
func New() *Palette {
	return &Palette{Entries: make(map[string]Entry)}
}

// Set adds or replaces a role, appending it to Roles on first use.
func (p *Palette) Set(role string, e Entry) {
	if _, ok := p.Entries[role]; !ok {
		p.Roles = append(p.Roles, role)
	}
	p.Entries[role] = e
}

// Lookup returns the entry for role.
func (p *Palette) Lookup(role string) (Entry, error) {
	e, ok := p.Entries[role]
	if !ok {
		return Entry{}, fmt.Errorf("palette has no role %q", role)
	}
	return e, nil
}

// Len returns the number of roles.
func (p *Palette) Len() int {
	return len(p.Roles)
}

// Source supplies the palette for a variant.
type Source interface {
	Palette(ctx context.Context, v Variant) (*Palette, error)
}
