// Package templates loads the pair of template files a validator skeleton is
// rendered from. The default set is embedded in the binary; a directory with
// the same layout can replace it. A set may carry a template.yaml manifest,
// which is checked against an embedded JSON Schema and may pin the range of
// tool versions it works with.
package templates
