// Package config manages installer settings stored at ~/.beakerx/config.yaml
// and overridable with BEAKERX_* environment variables and command-line
// flags. Resolve flattens them into the Settings struct the install
// pipeline receives, so no component reads global state.
package config
