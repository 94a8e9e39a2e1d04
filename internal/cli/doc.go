// Package cli defines the Cobra command tree for the installer. The root
// command runs the installation; each other file registers one subcommand
// (kernels, config, version) with the root command. Commands delegate to
// internal packages and only handle flags, output formatting and exit codes.
package cli
