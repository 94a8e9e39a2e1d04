// Package branding provides compile-time identity values for the installer.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork can rename the CLI and the extension
// without touching code.
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
	CLIName       string `yaml:"cli_name"`
	DisplayName   string `yaml:"display_name"`
	Description   string `yaml:"description"`
	HomeDir       string `yaml:"home_dir"`
	EnvPrefix     string `yaml:"env_prefix"`
	ExtensionName string `yaml:"extension_name"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:       "beakerx-install",
			DisplayName:   "BeakerX",
			Description:   "Install BeakerX kernels, notebook extension and assets",
			HomeDir:       ".beakerx",
			EnvPrefix:     "BEAKERX",
			ExtensionName: "beakerx",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "beakerx-install").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "BeakerX").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".beakerx").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "BEAKERX").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ExtensionName returns the notebook extension package registered with
// `jupyter nbextension` (e.g., "beakerx").
func ExtensionName() string { load(); return defaults.ExtensionName }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("prefix") → "BEAKERX_PREFIX".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
