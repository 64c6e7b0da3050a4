package less

import (
	"regexp"
	"strings"
)

type tokenKind int

const (
	tokText    tokenKind = iota
	tokString            // quoted string, quotes included
	tokEscape            // ~"..." escape; text holds the contents only
	tokComment           // /* block comment */
	tokOpen
	tokClose
	tokDecl // @name: value; text holds the value
)

type token struct {
	kind  tokenKind
	text  string
	name  string // tokDecl only
	line  int
	lines int // newlines consumed by a tokDecl
}

var (
	declStart = regexp.MustCompile(`^@([A-Za-z_][\w-]*)\s*:`)
	urlStart  = regexp.MustCompile(`(?i)^url\(\s*`)
)

// lexer splits stylesheet source into the pieces the expander treats
// differently. Line comments are dropped; everything else is kept so
// the source can be reassembled byte for byte.
type lexer struct {
	src  string
	pos  int
	line int

	// stmtStart is set after {, } and ; until the next non-space
	// character, the only places a variable declaration can begin.
	stmtStart bool

	buf     strings.Builder
	bufLine int
	toks    []token
}

func lex(src string, line int, stmtStart bool) []token {
	l := &lexer{src: src, line: line, stmtStart: stmtStart}
	for l.pos < len(l.src) {
		l.step()
	}
	l.flush()
	return l.toks
}

func (l *lexer) step() {
	rest := l.src[l.pos:]

	switch {
	case strings.HasPrefix(rest, "/*"):
		n := len(rest)
		if end := strings.Index(rest[2:], "*/"); end >= 0 {
			n = end + 4
		}
		l.emit(token{kind: tokComment, text: rest[:n]}, n)

	case strings.HasPrefix(rest, "//"):
		n := strings.IndexByte(rest, '\n')
		if n < 0 {
			n = len(rest)
		}
		l.pos += n

	case rest[0] == '~' && len(rest) > 1 && isQuote(rest[1]):
		n, closed := quotedLen(rest[1:])
		inner := rest[2 : 1+n]
		if closed {
			inner = rest[2:n]
		}
		l.emit(token{kind: tokEscape, text: inner}, 1+n)
		l.stmtStart = false

	case isQuote(rest[0]):
		n, _ := quotedLen(rest)
		l.emit(token{kind: tokString, text: rest[:n]}, n)
		l.stmtStart = false

	case rest[0] == '{':
		l.emit(token{kind: tokOpen, text: "{"}, 1)
		l.stmtStart = true

	case rest[0] == '}':
		l.emit(token{kind: tokClose, text: "}"}, 1)
		l.stmtStart = true

	case l.stmtStart && declStart.MatchString(rest):
		m := declStart.FindStringSubmatch(rest)
		n := len(m[0]) + valueLen(rest[len(m[0]):])
		value := strings.TrimSpace(strings.TrimSuffix(rest[len(m[0]):n], ";"))
		l.emit(token{kind: tokDecl, name: m[1], text: value, lines: strings.Count(rest[:n], "\n")}, n)
		l.stmtStart = true

	case urlStart.MatchString(rest):
		n := len(urlStart.FindString(rest))
		if n < len(rest) && !isQuote(rest[n]) {
			// Unquoted url() may contain //, copy it through to the paren.
			if end := strings.IndexByte(rest, ')'); end >= 0 {
				n = end + 1
			} else {
				n = len(rest)
			}
		}
		l.text(rest[:n])
		l.stmtStart = false

	default:
		c := rest[0]
		l.text(rest[:1])
		switch {
		case c == ';':
			l.stmtStart = true
		case !isSpace(c):
			l.stmtStart = false
		}
	}
}

func (l *lexer) text(s string) {
	if l.buf.Len() == 0 {
		l.bufLine = l.line
	}
	l.buf.WriteString(s)
	l.pos += len(s)
	l.line += strings.Count(s, "\n")
}

func (l *lexer) emit(tok token, n int) {
	l.flush()
	tok.line = l.line
	l.toks = append(l.toks, tok)
	l.line += strings.Count(l.src[l.pos:l.pos+n], "\n")
	l.pos += n
}

func (l *lexer) flush() {
	if l.buf.Len() == 0 {
		return
	}
	l.toks = append(l.toks, token{kind: tokText, text: l.buf.String(), line: l.bufLine})
	l.buf.Reset()
}

// quotedLen returns the length of the string literal at the start of s,
// including both quotes, and whether it was terminated.
func quotedLen(s string) (int, bool) {
	q := s[0]
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case q:
			return i + 1, true
		}
	}
	return len(s), false
}

// valueLen returns how much of s belongs to a declaration value: up to
// and including the first ; outside strings and parentheses, or up to
// a closing brace.
func valueLen(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case isQuote(c):
			n, _ := quotedLen(s[i:])
			i += n - 1
		case c == '(':
			depth++
		case c == ')' && depth > 0:
			depth--
		case c == ';' && depth == 0:
			return i + 1
		case c == '}' && depth == 0:
			return i
		}
	}
	return len(s)
}

func isQuote(c byte) bool {
	return c == '"' || c == '\''
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
