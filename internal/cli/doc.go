// Package cli defines the Cobra command tree for create-validator. The root
// command takes the "country/tin" identifier and generates the module; the
// remaining commands inspect templates and settings. Commands only parse
// input and format output, the work happens in internal packages.
package cli
