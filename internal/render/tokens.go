package render

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// tokenPattern matches <lower case words>, optionally wrapped in double
// quotes so a token can replace a whole JSON string value.
var tokenPattern = regexp.MustCompile(`"<[a-z][a-z ]*>"|<[a-z][a-z ]*>`)

// TokenError reports tokens found in a template that have no value, and
// values whose token never appeared.
type TokenError struct {
	Unknown []string
	Missing []string
}

func (e *TokenError) Error() string {
	var parts []string
	if len(e.Unknown) > 0 {
		parts = append(parts, "unknown tokens "+strings.Join(e.Unknown, ", "))
	}
	if len(e.Missing) > 0 {
		parts = append(parts, "tokens not found in template "+strings.Join(e.Missing, ", "))
	}
	return "substituting template: " + strings.Join(parts, "; ")
}

// Tokens maps literal placeholders to replacement text. A key written
// with surrounding quotes, like `"<version>"`, replaces the quotes too;
// an unquoted key matches both bare and quoted occurrences.
type Tokens map[string]string

// Apply replaces every token in one pass and returns the set of keys
// that were used. Unknown tokens are an error. Apply is idempotent as
// long as no replacement value itself contains a token.
func (t Tokens) Apply(text string) (string, map[string]bool, error) {
	used := make(map[string]bool, len(t))
	unknown := make(map[string]bool)

	out := tokenPattern.ReplaceAllStringFunc(text, func(tok string) string {
		if val, ok := t[tok]; ok {
			used[tok] = true
			return val
		}
		if bare := strings.Trim(tok, `"`); bare != tok {
			if val, ok := t[bare]; ok {
				used[bare] = true
				return `"` + val + `"`
			}
		}
		unknown[strings.Trim(tok, `"`)] = true
		return tok
	})

	if len(unknown) > 0 {
		return "", used, &TokenError{Unknown: sortedKeys(unknown)}
	}
	return out, used, nil
}

// ApplyAll is Apply that also requires every token to be present.
func (t Tokens) ApplyAll(text string) (string, error) {
	out, used, err := t.Apply(text)
	if err != nil {
		return "", err
	}

	missing := make(map[string]bool)
	for k := range t {
		if !used[k] {
			missing[k] = true
		}
	}
	if len(missing) > 0 {
		return "", &TokenError{Missing: sortedKeys(missing)}
	}
	return out, nil
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// validate checks that every key is a well-formed token.
func (t Tokens) validate() error {
	for k := range t {
		if !tokenPattern.MatchString(k) || tokenPattern.FindString(k) != k {
			return fmt.Errorf("malformed token %q", k)
		}
	}
	return nil
}
