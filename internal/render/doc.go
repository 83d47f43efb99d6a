// Package render substitutes {{ name }} placeholders in template text. It is
// deliberately not a templating language: there are no conditionals, loops or
// pipelines, only one token shape scanned in a single left-to-right pass.
//
// A placeholder is "{{", optional whitespace, an identifier (ASCII letter or
// underscore followed by letters, digits or underscores), optional whitespace
// and "}}". Anything else, including malformed tokens, is copied through
// untouched.
package render
