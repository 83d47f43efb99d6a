package render

import "strings"

const (
	openDelim  = "{{"
	closeDelim = "}}"
)

// Params binds placeholder names to substitution values.
//
// A placeholder whose name is not bound renders as the empty string. Templates
// rely on this for optional tokens, so it is not reported as an error here;
// use Unknown to find such names ahead of rendering.
type Params map[string]string

// Render returns tmpl with every well-formed placeholder replaced by its value
// in params. Text outside placeholders is copied byte for byte.
func Render(tmpl string, params Params) string {
	var b strings.Builder
	b.Grow(len(tmpl))
	walk(tmpl,
		func(text string) { b.WriteString(text) },
		func(name string) { b.WriteString(params[name]) },
	)
	return b.String()
}

// Placeholders returns the names of all well-formed placeholders in tmpl, in
// order of first appearance, without duplicates.
func Placeholders(tmpl string) []string {
	var names []string
	seen := make(map[string]bool)
	walk(tmpl, func(string) {}, func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	})
	return names
}

// Unknown returns the placeholder names in tmpl that params does not bind.
func Unknown(tmpl string, params Params) []string {
	var unknown []string
	for _, name := range Placeholders(tmpl) {
		if _, ok := params[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// walk splits tmpl into literal text and placeholder names, calling onText
// and onToken in source order. Literal runs may be split across several
// onText calls.
func walk(tmpl string, onText func(string), onToken func(string)) {
	rest := tmpl
	for {
		i := strings.Index(rest, openDelim)
		if i < 0 {
			if rest != "" {
				onText(rest)
			}
			return
		}

		name, n, ok := scanToken(rest[i:])
		if !ok {
			// Not a token here; a token may still start at the next brace.
			onText(rest[:i+1])
			rest = rest[i+1:]
			continue
		}

		if i > 0 {
			onText(rest[:i])
		}
		onToken(name)
		rest = rest[i+n:]
	}
}

// scanToken matches a placeholder at the start of s, which must begin with
// the open delimiter. It returns the identifier and the length of the token.
func scanToken(s string) (name string, n int, ok bool) {
	i := len(openDelim)
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	start := i
	if i >= len(s) || !isIdentStart(s[i]) {
		return "", 0, false
	}
	i++
	for i < len(s) && isIdentPart(s[i]) {
		i++
	}
	name = s[start:i]

	for i < len(s) && isSpace(s[i]) {
		i++
	}
	if !strings.HasPrefix(s[i:], closeDelim) {
		return "", 0, false
	}
	return name, i + len(closeDelim), true
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || ('0' <= c && c <= '9')
}
