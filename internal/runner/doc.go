// Package runner executes the external toolchain commands the installer
// drives (jupyter, python). The Runner interface lets the install steps be
// tested with a recording fake; Exec is the os/exec implementation used by
// the CLI.
package runner
