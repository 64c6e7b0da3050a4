// Package less compiles the LESS subset used by theme templates:
// block-scoped @variables, @{interpolation} (also inside strings),
// ~"escapes", // comments and the lighten/darken/fade color functions.
// The expanded stylesheet is passed through esbuild, which lowers
// nesting for the target browsers and reports syntax errors.
package less

import (
	"context"
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("themepack.less")

// DefaultEngines are the browser targets nesting is lowered for.
var DefaultEngines = []api.Engine{
	{Name: api.EngineChrome, Version: "100"},
	{Name: api.EngineFirefox, Version: "100"},
	{Name: api.EngineSafari, Version: "15"},
}

// Message is one compile diagnostic. Line is 1-based; Column is 0-based
// and zero when unknown.
type Message struct {
	Line   int
	Column int
	Text   string
}

func (m Message) String() string {
	if m.Line == 0 {
		return m.Text
	}
	return fmt.Sprintf("line %d: %s", m.Line, m.Text)
}

// CompileError carries every diagnostic of a failed compilation.
type CompileError struct {
	Name     string
	Messages []Message
}

func (e *CompileError) Error() string {
	var sb strings.Builder
	sb.WriteString("compiling")
	if e.Name != "" {
		sb.WriteString(" " + e.Name)
	}
	sb.WriteString(": ")
	if len(e.Messages) == 0 {
		sb.WriteString("unknown error")
		return sb.String()
	}
	sb.WriteString(e.Messages[0].String())
	if n := len(e.Messages) - 1; n > 0 {
		fmt.Fprintf(&sb, " (and %d more)", n)
	}
	return sb.String()
}

// Options controls compilation output.
type Options struct {
	Minify  bool
	Engines []api.Engine
}

// Compiler turns template source into CSS. It holds no per-call state
// and is safe for concurrent use.
type Compiler struct {
	opts Options
}

// New returns a Compiler. Empty Engines means DefaultEngines.
func New(opts Options) *Compiler {
	if len(opts.Engines) == 0 {
		opts.Engines = DefaultEngines
	}
	return &Compiler{opts: opts}
}

// Compile expands and compiles src. name labels diagnostics.
func (c *Compiler) Compile(ctx context.Context, name, src string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	expanded, err := expand(src)
	if err != nil {
		if ce, ok := err.(*CompileError); ok {
			ce.Name = name
		}
		return "", err
	}

	result := api.Transform(expanded, api.TransformOptions{
		Loader:           api.LoaderCSS,
		Sourcefile:       name,
		MinifyWhitespace: c.opts.Minify,
		Engines:          c.opts.Engines,
		LogLevel:         api.LogLevelSilent,
	})

	for _, w := range result.Warnings {
		log.Warningf("%s: %s", name, fromESBuild(w))
	}

	if len(result.Errors) > 0 {
		msgs := make([]Message, 0, len(result.Errors))
		for _, e := range result.Errors {
			msgs = append(msgs, fromESBuild(e))
		}
		return "", &CompileError{Name: name, Messages: msgs}
	}

	return string(result.Code), nil
}

func fromESBuild(m api.Message) Message {
	msg := Message{Text: m.Text}
	if m.Location != nil {
		msg.Line = m.Location.Line
		msg.Column = m.Location.Column
	}
	return msg
}
