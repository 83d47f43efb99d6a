// Package config manages project-level settings stored in
// .create-validator.yaml in the working directory. Every setting can also be
// supplied through a CREATE_VALIDATOR_* environment variable. With neither
// present the defaults reproduce the fixed layout: validators under src/ and
// the templates embedded in the binary.
package config
