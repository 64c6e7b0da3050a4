package palette

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/themepack/internal/color"
	"github.com/zclconf/go-cty/cty"
)

//go:embed palette.hcl
var bundledData []byte

// dataFile is the layout of a palette data file.
type dataFile struct {
	Variants []variantBlock `hcl:"variant,block"`
}

type variantBlock struct {
	Name   string   `hcl:"name,label"`
	Colors hcl.Body `hcl:",remain"`
}

// Bundled serves palettes parsed once from an HCL data file. Lookups
// perform no I/O.
type Bundled struct {
	palettes map[Variant]*Palette
}

// NewBundled parses the palette data compiled into the binary.
func NewBundled() (*Bundled, error) {
	return parseBundled(bundledData, "palette.hcl")
}

// LoadBundled parses a palette data file from disk.
func LoadBundled(path string) (*Bundled, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading palette data: %w", err)
	}
	return parseBundled(src, path)
}

func parseBundled(src []byte, filename string) (*Bundled, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing palette data: %s", diags.Error())
	}

	var data dataFile
	if diags := gohcl.DecodeBody(file.Body, nil, &data); diags.HasErrors() {
		return nil, fmt.Errorf("decoding palette data: %s", diags.Error())
	}

	b := &Bundled{palettes: make(map[Variant]*Palette, len(data.Variants))}
	for _, block := range data.Variants {
		v, err := ParseVariant(block.Name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		if _, dup := b.palettes[v]; dup {
			return nil, fmt.Errorf("%s: variant %q defined twice", filename, v)
		}
		p, err := parseVariantBody(block.Colors)
		if err != nil {
			return nil, fmt.Errorf("variant %q: %w", v, err)
		}
		b.palettes[v] = p
	}

	for _, v := range Variants() {
		if _, ok := b.palettes[v]; !ok {
			return nil, fmt.Errorf("%s: missing variant %q", filename, v)
		}
	}

	return b, nil
}

func parseVariantBody(body hcl.Body) (*Palette, error) {
	syntaxBody, ok := body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("variant block is not an hclsyntax.Body")
	}
	if len(syntaxBody.Blocks) > 0 {
		return nil, fmt.Errorf("nested blocks are not allowed in a variant")
	}

	// Attributes is a map; order roles by their position in the file.
	attrs := make([]*hclsyntax.Attribute, 0, len(syntaxBody.Attributes))
	for _, attr := range syntaxBody.Attributes {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].SrcRange.Start.Byte < attrs[j].SrcRange.Start.Byte
	})

	p := New()
	for _, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluating %s: %s", attr.Name, diags.Error())
		}
		if val.IsNull() || val.Type() != cty.String {
			return nil, fmt.Errorf("%s: expected a hex color string, got %s", attr.Name, val.Type().FriendlyName())
		}
		c, err := color.ParseHex(val.AsString())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", attr.Name, err)
		}
		p.Set(attr.Name, NewEntry(c))
	}

	if p.Len() == 0 {
		return nil, fmt.Errorf("no colors defined")
	}
	return p, nil
}

// Palette returns a copy of the variant's palette.
func (b *Bundled) Palette(_ context.Context, v Variant) (*Palette, error) {
	p, ok := b.palettes[v]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownVariant, v)
	}
	return p.clone(), nil
}

func (p *Palette) clone() *Palette {
	c := &Palette{
		Roles:   append([]string(nil), p.Roles...),
		Entries: make(map[string]Entry, len(p.Entries)),
	}
	for k, e := range p.Entries {
		c.Entries[k] = e
	}
	return c
}
