// Package engine runs the theme build: load templates, resolve the
// version, then render and package every variant concurrently.
package engine

import (
	"context"
	"fmt"
	"slices"

	"github.com/jsvensson/themepack/internal/config"
	"github.com/jsvensson/themepack/internal/less"
	"github.com/jsvensson/themepack/internal/loader"
	"github.com/jsvensson/themepack/internal/pack"
	"github.com/jsvensson/themepack/internal/palette"
	"github.com/jsvensson/themepack/internal/render"
	"github.com/jsvensson/themepack/internal/version"
	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"
)

var log = commonlog.GetLogger("themepack.engine")

// VersionResolver supplies the version written into every manifest.
type VersionResolver interface {
	Resolve(ctx context.Context) (version.Version, error)
}

// Engine builds theme packages as described by Config.
type Engine struct {
	Config   *config.Config
	Source   palette.Source
	Resolver VersionResolver
	Compiler render.Compiler
	Variants []palette.Variant // if non-empty, only build these
}

// New returns an Engine wired to the palette source, git and the
// compiler selected by cfg.
func New(cfg *config.Config) (*Engine, error) {
	opts, err := cfg.PaletteOptions()
	if err != nil {
		return nil, err
	}
	src, err := palette.NewSource(opts)
	if err != nil {
		return nil, fmt.Errorf("creating palette source: %w", err)
	}
	return &Engine{
		Config:   cfg,
		Source:   src,
		Resolver: version.NewResolver(),
		Compiler: less.New(less.Options{Minify: cfg.Minify}),
	}, nil
}

// Result is the outcome of one variant. Err is set when the variant was
// aborted before packaging or when any file failed to write.
type Result struct {
	Variant palette.Variant
	Report  pack.Report
	Err     error
}

// OK reports whether the variant produced all four files.
func (r Result) OK() bool {
	return r.Err == nil && r.Report.OK()
}

// Summary collects the results of a run, in variant order.
type Summary struct {
	Version version.Version
	Results []Result
}

// Failed returns the results that did not fully succeed.
func (s *Summary) Failed() []Result {
	var failed []Result
	for _, r := range s.Results {
		if !r.OK() {
			failed = append(failed, r)
		}
	}
	return failed
}

// Run builds every selected variant. Template and version failures stop
// the whole run; everything else is recorded per variant and logged, and
// never affects the other variants.
func (e *Engine) Run(ctx context.Context) (*Summary, error) {
	templates, err := loader.Load(e.Config.Stylesheet, e.Config.Manifest)
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}

	ver, err := e.resolveVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving version: %w", err)
	}
	log.Noticef("building version %s", ver)

	variants := e.selected()
	summary := &Summary{Version: ver, Results: make([]Result, len(variants))}

	var g errgroup.Group
	for i, v := range variants {
		g.Go(func() error {
			summary.Results[i] = e.buildVariant(ctx, v, templates, ver)
			return nil
		})
	}
	_ = g.Wait()

	return summary, nil
}

func (e *Engine) resolveVersion(ctx context.Context) (version.Version, error) {
	if e.Config.Version != "" {
		return version.Parse(e.Config.Version)
	}
	return e.Resolver.Resolve(ctx)
}

func (e *Engine) selected() []palette.Variant {
	var out []palette.Variant
	for _, v := range palette.Variants() {
		// If no variants are specified, build all.
		if len(e.Variants) == 0 || slices.Contains(e.Variants, v) {
			out = append(out, v)
		}
	}
	return out
}

// buildVariant runs palette → stylesheet → manifest → package for v.
func (e *Engine) buildVariant(ctx context.Context, v palette.Variant, t loader.Templates, ver version.Version) Result {
	res := Result{Variant: v}
	fail := func(step string, err error) Result {
		res.Err = fmt.Errorf("%s: %w", step, err)
		log.Errorf("%s: %s", v, res.Err.Error())
		return res
	}

	log.Infof("%s: loading palette", v)
	p, err := e.Source.Palette(ctx, v)
	if err != nil {
		return fail("loading palette", err)
	}

	log.Infof("%s: compiling stylesheet", v)
	sheet := &render.Stylesheet{Compiler: e.Compiler, Accent: e.Config.Accent}
	css, err := sheet.Render(ctx, v, t.Stylesheet, p)
	if err != nil {
		return fail("rendering stylesheet", err)
	}

	log.Infof("%s: rendering manifest", v)
	manifest, err := render.Manifest(v, t.Manifest, ver, e.Config.Authors)
	if err != nil {
		return fail("rendering manifest", err)
	}

	pk := &pack.Packager{OutputDir: e.Config.OutputDir}
	res.Report = pk.Write(v, pack.Output{
		Stylesheet: css,
		Manifest:   manifest,
		Logo:       e.Config.LogoFor(v.IsLight()),
		Readme:     e.Config.Readme,
	})
	if failed := res.Report.Failed(); len(failed) > 0 {
		res.Err = fmt.Errorf("%d of %d files failed", len(failed), len(res.Report.Files))
		return res
	}

	log.Noticef("%s: done", v)
	return res
}
