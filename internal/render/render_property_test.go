package render

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestRenderProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	padding := gen.OneConstOf("", " ", "  ", "\t", "\n ", " \r\n")

	// Property: text without an open delimiter passes through unchanged
	properties.Property("literal text is preserved", prop.ForAll(
		func(text string) bool {
			return Render(text, Params{"name": "ein"}) == text
		},
		gen.AnyString().SuchThat(func(s string) bool {
			return !strings.Contains(s, openDelim)
		}),
	))

	// Property: bound placeholders are replaced regardless of inner whitespace
	properties.Property("bound placeholder is substituted", prop.ForAll(
		func(prefix, name, value, suffix, left, right string) bool {
			tmpl := prefix + "{{" + left + name + right + "}}" + suffix
			return Render(tmpl, Params{name: value}) == prefix+value+suffix
		},
		gen.AlphaString(),
		gen.Identifier(),
		gen.AnyString(),
		gen.AlphaString(),
		padding,
		padding,
	))

	// Property: unbound placeholders render as the empty string
	properties.Property("unbound placeholder is removed", prop.ForAll(
		func(prefix, name, suffix, left string) bool {
			tmpl := prefix + "{{" + left + name + "}}" + suffix
			return Render(tmpl, Params{}) == prefix+suffix
		},
		gen.AlphaString(),
		gen.Identifier(),
		gen.AlphaString(),
		padding,
	))

	// Property: a token whose identifier starts with a digit is left alone
	properties.Property("digit-leading token is literal", prop.ForAll(
		func(digits, tail string) bool {
			tmpl := "{{ " + digits + tail + " }}"
			return Render(tmpl, Params{tail: "x", digits: "y"}) == tmpl
		},
		gen.NumString().SuchThat(func(s string) bool { return s != "" }),
		gen.AlphaString(),
	))

	// Property: an unterminated token is left alone
	properties.Property("unterminated token is literal", prop.ForAll(
		func(prefix, name string) bool {
			tmpl := prefix + "{{ " + name
			return Render(tmpl, Params{name: "x"}) == tmpl
		},
		gen.AlphaString(),
		gen.Identifier(),
	))

	// Property: rendering is deterministic
	properties.Property("render is deterministic", prop.ForAll(
		func(tmpl string) bool {
			p := Params{"group": "us", "name": "ein"}
			return Render(tmpl, p) == Render(tmpl, p)
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
