package less

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jsvensson/themepack/internal/color"
)

var (
	refPattern    = regexp.MustCompile(`@\{([A-Za-z_][\w-]*)\}|@([A-Za-z_][\w-]*)`)
	interpPattern = regexp.MustCompile(`@\{([A-Za-z_][\w-]*)\}`)
	colorFuncRe   = regexp.MustCompile(`\b(lighten|darken|fade)\(\s*(#[0-9A-Fa-f]{6})\s*,\s*(-?\d+(?:\.\d+)?)%\s*\)`)
)

// atRules are left untouched when no variable of the same name exists.
var atRules = map[string]bool{
	"charset": true, "container": true, "counter-style": true, "document": true,
	"font-face": true, "font-feature-values": true, "import": true, "keyframes": true,
	"layer": true, "media": true, "namespace": true, "page": true, "property": true,
	"scope": true, "starting-style": true, "supports": true, "viewport": true,
}

// scope holds the variables declared directly inside one block.
type scope struct {
	parent *scope
	vars   map[string]*declaration
}

func newScope(parent *scope) *scope {
	return &scope{parent: parent, vars: make(map[string]*declaration)}
}

func (s *scope) lookup(name string) *declaration {
	for ; s != nil; s = s.parent {
		if d, ok := s.vars[name]; ok {
			return d
		}
	}
	return nil
}

type declaration struct {
	name  string
	value string
	line  int
	scope *scope

	resolved string
	done     bool
	visiting bool
}

// expand removes variable declarations and line comments, substitutes
// variable references and evaluates color functions.
//
// Variables are visible in the block that declares them and in nested
// blocks; the last declaration in a block wins, even after a use.
// Quoted strings only take @{name} interpolation and ~"..." escapes
// are emitted without their quotes. Block comments are left alone.
// Newlines inside removed text are kept so line numbers still match the
// input.
func expand(src string) (string, error) {
	toks := lex(src, 1, true)

	root := newScope(nil)
	var blocks []*scope
	cur := root
	for _, tok := range toks {
		switch tok.kind {
		case tokOpen:
			cur = newScope(cur)
			blocks = append(blocks, cur)
		case tokClose:
			if cur.parent != nil {
				cur = cur.parent
			}
		case tokDecl:
			cur.vars[tok.name] = &declaration{name: tok.name, value: tok.text, line: tok.line, scope: cur}
		}
	}

	var (
		sb   strings.Builder
		errs []Message
		next int
	)
	cur = root
	for _, tok := range toks {
		switch tok.kind {
		case tokOpen:
			cur = blocks[next]
			next++
			sb.WriteString(tok.text)
		case tokClose:
			if cur.parent != nil {
				cur = cur.parent
			}
			sb.WriteString(tok.text)
		case tokDecl:
			sb.WriteString(strings.Repeat("\n", tok.lines))
		default:
			out, err := expandToken(tok, cur)
			if err != nil {
				errs = append(errs, messageFrom(err, tok.line))
				continue
			}
			sb.WriteString(out)
		}
	}

	if len(errs) > 0 {
		return "", &CompileError{Messages: errs}
	}
	return sb.String(), nil
}

func expandToken(tok token, sc *scope) (string, error) {
	switch tok.kind {
	case tokText:
		out, err := substitute(tok.text, tok.line, sc, refPattern)
		if err != nil {
			return "", err
		}
		return evalColorFuncs(out)
	case tokString, tokEscape:
		return substitute(tok.text, tok.line, sc, interpPattern)
	default:
		return tok.text, nil
	}
}

// substitute replaces the references pattern finds in text. Group 1 of
// pattern is an @{name} interpolation, group 2 (if any) a bare @name.
func substitute(text string, line int, sc *scope, pattern *regexp.Regexp) (string, error) {
	var sb strings.Builder
	last := 0
	for _, m := range pattern.FindAllStringSubmatchIndex(text, -1) {
		sb.WriteString(text[last:m[0]])
		last = m[1]

		name, interpolated := "", true
		if m[2] >= 0 {
			name = text[m[2]:m[3]]
		} else {
			name, interpolated = text[m[4]:m[5]], false
		}

		d := sc.lookup(name)
		if d == nil {
			if !interpolated && atRules[name] {
				sb.WriteString(text[m[0]:m[1]])
				continue
			}
			refLine := line + strings.Count(text[:m[0]], "\n")
			return "", &lineError{line: refLine, err: fmt.Errorf("variable @%s is undefined", name)}
		}

		val, err := resolve(d)
		if err != nil {
			return "", err
		}
		if interpolated {
			val = unquote(val)
		}
		sb.WriteString(val)
	}
	sb.WriteString(text[last:])
	return sb.String(), nil
}

// resolve returns the fully expanded value of d, evaluated in the scope
// d was declared in.
func resolve(d *declaration) (string, error) {
	if d.done {
		return d.resolved, nil
	}
	if d.visiting {
		return "", &lineError{line: d.line, err: fmt.Errorf("recursive variable definition for @%s", d.name)}
	}

	d.visiting = true
	defer func() { d.visiting = false }()

	var sb strings.Builder
	for _, tok := range lex(d.value, d.line, false) {
		out, err := expandToken(tok, d.scope)
		if err != nil {
			return "", err
		}
		sb.WriteString(out)
	}

	d.resolved, d.done = sb.String(), true
	return d.resolved, nil
}

func unquote(s string) string {
	if len(s) >= 2 && isQuote(s[0]) && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

func evalColorFuncs(text string) (string, error) {
	var firstErr error
	out := colorFuncRe.ReplaceAllStringFunc(text, func(call string) string {
		m := colorFuncRe.FindStringSubmatch(call)
		c, err := color.ParseHex(m[2])
		if err != nil {
			firstErr = err
			return call
		}
		pct, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			firstErr = fmt.Errorf("%s: invalid amount %q", m[1], m[3])
			return call
		}
		amount := pct / 100

		switch m[1] {
		case "lighten":
			return color.Brighten(c, amount).Hex()
		case "darken":
			return color.Darken(c, amount).Hex()
		default:
			return color.Fade(c, amount)
		}
	})
	return out, firstErr
}

type lineError struct {
	line int
	err  error
}

func (e *lineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.line, e.err)
}

func messageFrom(err error, line int) Message {
	if le, ok := err.(*lineError); ok {
		return Message{Line: le.line, Text: le.err.Error()}
	}
	return Message{Line: line, Text: err.Error()}
}
