// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	EnvPrefix   string `yaml:"env_prefix"`
	ConfigName  string `yaml:"config_name"`
	DefaultRoot string `yaml:"default_root"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "create-validator",
			DisplayName: "create-validator",
			Description: "Scaffold a new TIN validator module from templates",
			EnvPrefix:   "CREATE_VALIDATOR",
			ConfigName:  ".create-validator",
			DefaultRoot: "src",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "create-validator").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "CREATE_VALIDATOR").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ConfigName returns the project config file name without extension.
func ConfigName() string { load(); return defaults.ConfigName }

// DefaultRoot returns the project-relative directory validators live in.
func DefaultRoot() string { load(); return defaults.DefaultRoot }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("root") → "CREATE_VALIDATOR_ROOT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
