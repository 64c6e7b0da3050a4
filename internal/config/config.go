// Package config loads the optional themepack.hcl build configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/themepack/internal/palette"
)

// DefaultPath is the config file read when no --config flag is given.
const DefaultPath = "themepack.hcl"

// Config describes one build. Zero values are replaced by Default().
type Config struct {
	Stylesheet string   `hcl:"stylesheet,optional"`
	Manifest   string   `hcl:"manifest,optional"`
	Readme     string   `hcl:"readme,optional"`
	OutputDir  string   `hcl:"output_dir,optional"`
	Authors    []string `hcl:"authors,optional"`
	Accent     string   `hcl:"accent,optional"`
	Version    string   `hcl:"version,optional"`
	Minify     bool     `hcl:"minify,optional"`

	Logo    *Logo    `hcl:"logo,block"`
	Palette *Palette `hcl:"palette,block"`
}

// Logo holds the two logo assets, picked by variant appearance.
type Logo struct {
	Light string `hcl:"light,optional"`
	Dark  string `hcl:"dark,optional"`
}

// Palette selects where palette data comes from.
type Palette struct {
	Source  string `hcl:"source,optional"`
	Data    string `hcl:"data,optional"`
	URL     string `hcl:"url,optional"`
	Timeout string `hcl:"timeout,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Stylesheet: "../public/theme.less",
		Manifest:   "src/manifest.template.json",
		Readme:     "README.md",
		OutputDir:  "built",
		Authors:    []string{"justTOBBI", "coldenate"},
		Accent:     "blue",
		Logo: &Logo{
			Light: "src/wlogo.png",
			Dark:  "src/logo.png",
		},
		Palette: &Palette{
			Source:  palette.KindBundled,
			URL:     palette.DefaultRemoteURL,
			Timeout: "30s",
		},
	}
}

// Load reads the config at path. A missing file yields Default().
func Load(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes HCL source and fills unset fields from Default().
func Parse(src []byte, filename string) (*Config, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("decoding config: %s", diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	setDefault(&c.Stylesheet, def.Stylesheet)
	setDefault(&c.Manifest, def.Manifest)
	setDefault(&c.Readme, def.Readme)
	setDefault(&c.OutputDir, def.OutputDir)
	setDefault(&c.Accent, def.Accent)
	if c.Authors == nil {
		c.Authors = def.Authors
	}

	if c.Logo == nil {
		c.Logo = def.Logo
	} else {
		setDefault(&c.Logo.Light, def.Logo.Light)
		setDefault(&c.Logo.Dark, def.Logo.Dark)
	}

	if c.Palette == nil {
		c.Palette = def.Palette
	} else {
		setDefault(&c.Palette.Source, def.Palette.Source)
		setDefault(&c.Palette.URL, def.Palette.URL)
		setDefault(&c.Palette.Timeout, def.Palette.Timeout)
	}
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// Validate checks values that cannot be caught by decoding.
func (c *Config) Validate() error {
	if c.Palette != nil {
		switch c.Palette.Source {
		case palette.KindBundled, palette.KindRemote:
		default:
			return fmt.Errorf("palette.source: unknown source %q (valid: %s, %s)",
				c.Palette.Source, palette.KindBundled, palette.KindRemote)
		}
		if _, err := c.FetchTimeout(); err != nil {
			return err
		}
	}
	return nil
}

// FetchTimeout parses palette.timeout.
func (c *Config) FetchTimeout() (time.Duration, error) {
	if c.Palette == nil || c.Palette.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Palette.Timeout)
	if err != nil {
		return 0, fmt.Errorf("palette.timeout: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("palette.timeout: must not be negative")
	}
	return d, nil
}

// PaletteOptions converts the palette block for palette.NewSource.
func (c *Config) PaletteOptions() (palette.Options, error) {
	timeout, err := c.FetchTimeout()
	if err != nil {
		return palette.Options{}, err
	}
	return palette.Options{
		Kind:    c.Palette.Source,
		Data:    c.Palette.Data,
		URL:     c.Palette.URL,
		Timeout: timeout,
	}, nil
}

// LogoFor returns the logo asset for the given appearance.
func (c *Config) LogoFor(light bool) string {
	if light {
		return c.Logo.Light
	}
	return c.Logo.Dark
}
