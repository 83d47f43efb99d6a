// Package scaffold stamps out a new validator module: it parses a
// "country/tin" identifier, renders the implementation and spec templates
// into <root>/<country>/, and registers the module in that directory's
// index.ts barrel. Existing files are never overwritten and the index is only
// ever appended to.
package scaffold
